package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotilike/api/auth"
	"github.com/spotilike/api/models"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary Create an account and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/auth/signup [post]
func (a *API) Signup(c *gin.Context) {
	var in models.UserInput
	if !bindJSON(c, &in) {
		return
	}
	token, err := auth.Signup(a.session(c), in.Username, in.Email, in.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"access_token": token, "token_type": "bearer"})
}

// Login authenticates through the active strategy. The token strategy
// answers with a fresh session token; the legacy strategy answers
// with the bare account record.
func (a *API) Login(c *gin.Context) {
	var in loginRequest
	if !bindJSON(c, &in) {
		return
	}
	result, err := a.auth.Login(a.session(c), in.Username, in.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if result.Token != "" {
		c.JSON(http.StatusOK, gin.H{"access_token": result.Token, "token_type": "bearer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": result.Account})
}
