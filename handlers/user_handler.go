package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotilike/api/auth"
	"github.com/spotilike/api/models"
	"github.com/spotilike/api/store"
)

func (a *API) ListUsers(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}
	users, err := store.ListUsers(a.session(c), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (a *API) GetUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	user, err := store.GetUser(a.session(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser provisions an account on behalf of an authenticated
// caller; the password is hashed before it reaches the store.
func (a *API) CreateUser(c *gin.Context) {
	var in models.UserInput
	if !bindJSON(c, &in) {
		return
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	user, err := store.CreateUser(a.session(c), in.Username, in.Email, hash)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (a *API) UpdateUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in models.UserInput
	if !bindJSON(c, &in) {
		return
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	user, err := store.UpdateUser(a.session(c), id, in.Username, in.Email, hash)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a *API) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := store.DeleteUser(a.session(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
