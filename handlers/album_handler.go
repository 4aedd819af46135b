package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotilike/api/models"
	"github.com/spotilike/api/store"
)

func (a *API) ListAlbums(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}
	albums, err := store.ListAlbums(a.session(c), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

func (a *API) GetAlbum(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	album, err := store.GetAlbum(a.session(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

func (a *API) CreateAlbum(c *gin.Context) {
	var in models.AlbumInput
	if !bindJSON(c, &in) {
		return
	}
	album, err := store.CreateAlbum(a.session(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, album)
}

func (a *API) UpdateAlbum(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in models.AlbumInput
	if !bindJSON(c, &in) {
		return
	}
	album, err := store.UpdateAlbum(a.session(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

func (a *API) DeleteAlbum(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := store.DeleteAlbum(a.session(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSongsOfAlbum returns the album's songs with artist and album
// names resolved.
func (a *API) ListSongsOfAlbum(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}
	songs, err := store.SongsOfAlbum(a.session(c), id, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

// CreateSongInAlbum adds a song to the album from the path; the path
// id overrides any album_id in the payload.
func (a *API) CreateSongInAlbum(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in models.SongInput
	if !bindJSON(c, &in) {
		return
	}
	song, err := store.CreateSongInAlbum(a.session(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, song)
}
