package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotilike/api/models"
	"github.com/spotilike/api/store"
)

// ListArtists godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Param limit query int false "Page size (1-200, default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Artist
// @Router /api/artists [get]
func (a *API) ListArtists(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}
	artists, err := store.ListArtists(a.session(c), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (a *API) GetArtist(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	artist, err := store.GetArtist(a.session(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (a *API) CreateArtist(c *gin.Context) {
	var in models.ArtistInput
	if !bindJSON(c, &in) {
		return
	}
	artist, err := store.CreateArtist(a.session(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artist)
}

func (a *API) UpdateArtist(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in models.ArtistInput
	if !bindJSON(c, &in) {
		return
	}
	artist, err := store.UpdateArtist(a.session(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (a *API) DeleteArtist(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := store.DeleteArtist(a.session(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) ListAlbumsOfArtist(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}
	albums, err := store.AlbumsOfArtist(a.session(c), id, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

// ListSongsOfArtist returns the artist's songs with album titles
// resolved.
func (a *API) ListSongsOfArtist(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}
	songs, err := store.SongsOfArtist(a.session(c), id, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}
