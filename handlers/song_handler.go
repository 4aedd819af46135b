package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotilike/api/models"
	"github.com/spotilike/api/store"
)

// ListSongs godoc
// @Summary List songs with composable filters
// @Description Filters compose conjunctively: free-text title search,
// @Description artist/album equality, genre membership. Rows carry
// @Description artist_name and album_title resolved in one join.
// @Tags songs
// @Produce json
// @Param q query string false "Case-insensitive substring of the title"
// @Param artist_id query int false "Keep songs of this artist"
// @Param album_id query int false "Keep songs of this album"
// @Param genre_id query int false "Keep songs linked to this genre"
// @Param limit query int false "Page size (1-200, default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.SongWithNames
// @Router /api/songs [get]
func (a *API) ListSongs(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}
	filter := store.SongFilter{Page: page, Query: c.Query("q")}
	if filter.ArtistID, ok = uintQuery(c, "artist_id"); !ok {
		return
	}
	if filter.AlbumID, ok = uintQuery(c, "album_id"); !ok {
		return
	}
	if filter.GenreID, ok = uintQuery(c, "genre_id"); !ok {
		return
	}
	songs, err := store.ListSongs(a.session(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (a *API) GetSong(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	song, err := store.GetSong(a.session(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

func (a *API) CreateSong(c *gin.Context) {
	var in models.SongInput
	if !bindJSON(c, &in) {
		return
	}
	song, err := store.CreateSong(a.session(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, song)
}

func (a *API) UpdateSong(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in models.SongInput
	if !bindJSON(c, &in) {
		return
	}
	song, err := store.UpdateSong(a.session(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

func (a *API) DeleteSong(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := store.DeleteSong(a.session(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) ListGenresOfSong(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	titles, err := store.GenresOfSong(a.session(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, titles)
}

func (a *API) AddGenreToSong(c *gin.Context) {
	songID, ok := idParam(c, "id")
	if !ok {
		return
	}
	genreID, ok := idParam(c, "genreID")
	if !ok {
		return
	}
	if err := store.AddGenreToSong(a.session(c), songID, genreID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) RemoveGenreFromSong(c *gin.Context) {
	songID, ok := idParam(c, "id")
	if !ok {
		return
	}
	genreID, ok := idParam(c, "genreID")
	if !ok {
		return
	}
	if err := store.RemoveGenreFromSong(a.session(c), songID, genreID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
