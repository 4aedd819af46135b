package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotilike/api/importer"
)

// ImportTrack godoc
// @Summary Fetch track metadata from Spotify by ISRC and store it
// @Tags import
// @Produce json
// @Param isrc query string true "ISRC code of the track"
// @Success 201 {object} models.Song
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/import/track [post]
func (a *API) ImportTrack(c *gin.Context) {
	if a.spotify == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Spotify import is not configured"})
		return
	}
	isrc := c.Query("isrc")
	if isrc == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isrc parameter is required"})
		return
	}
	song, err := a.spotify.ImportTrack(c.Request.Context(), a.session(c), isrc)
	if err != nil {
		if errors.Is(err, importer.ErrNoMatch) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, song)
}
