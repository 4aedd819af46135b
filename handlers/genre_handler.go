package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotilike/api/models"
	"github.com/spotilike/api/store"
)

func (a *API) ListGenres(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}
	genres, err := store.ListGenres(a.session(c), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

func (a *API) GetGenre(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	genre, err := store.GetGenre(a.session(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (a *API) CreateGenre(c *gin.Context) {
	var in models.GenreInput
	if !bindJSON(c, &in) {
		return
	}
	genre, err := store.CreateGenre(a.session(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, genre)
}

func (a *API) UpdateGenre(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in models.GenreInput
	if !bindJSON(c, &in) {
		return
	}
	genre, err := store.UpdateGenre(a.session(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (a *API) DeleteGenre(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := store.DeleteGenre(a.session(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
