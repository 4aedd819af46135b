package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spotilike/api/auth"
	"github.com/spotilike/api/importer"
	"gorm.io/gorm"
)

// API bundles the collaborators the handlers need: the root database
// handle, the active authentication strategy, and the optional
// Spotify importer.
type API struct {
	db      *gorm.DB
	auth    auth.Strategy
	spotify *importer.Client
}

// session derives a request-scoped handle that is passed explicitly
// into every store call.
func (a *API) session(c *gin.Context) *gorm.DB {
	return a.db.WithContext(c.Request.Context())
}

// requireAuth gates account mutations behind a valid session proof.
func (a *API) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		writeError(c, auth.ErrInvalidProof)
		c.Abort()
		return
	}
	if _, err := auth.CurrentUser(a.session(c), token); err != nil {
		writeError(c, err)
		c.Abort()
		return
	}
	c.Next()
}

// SetupRouter wires every route. spotifyClient may be nil, in which
// case the import endpoint reports the feature as unavailable.
func SetupRouter(db *gorm.DB, strategy auth.Strategy, spotifyClient *importer.Client) *gin.Engine {
	r := gin.Default()
	a := &API{db: db, auth: strategy, spotify: spotifyClient}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Spotilike API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	artists := api.Group("/artists")
	artists.GET("", a.ListArtists)
	artists.POST("", a.CreateArtist)
	artists.GET("/:id", a.GetArtist)
	artists.PUT("/:id", a.UpdateArtist)
	artists.DELETE("/:id", a.DeleteArtist)
	artists.GET("/:id/albums", a.ListAlbumsOfArtist)
	artists.GET("/:id/songs", a.ListSongsOfArtist)

	albums := api.Group("/albums")
	albums.GET("", a.ListAlbums)
	albums.POST("", a.CreateAlbum)
	albums.GET("/:id", a.GetAlbum)
	albums.PUT("/:id", a.UpdateAlbum)
	albums.DELETE("/:id", a.DeleteAlbum)
	albums.GET("/:id/songs", a.ListSongsOfAlbum)
	albums.POST("/:id/songs", a.CreateSongInAlbum)

	songs := api.Group("/songs")
	songs.GET("", a.ListSongs)
	songs.POST("", a.CreateSong)
	songs.GET("/:id", a.GetSong)
	songs.PUT("/:id", a.UpdateSong)
	songs.DELETE("/:id", a.DeleteSong)
	songs.GET("/:id/genres", a.ListGenresOfSong)
	songs.POST("/:id/genres/:genreID", a.AddGenreToSong)
	songs.DELETE("/:id/genres/:genreID", a.RemoveGenreFromSong)

	genres := api.Group("/genres")
	genres.GET("", a.ListGenres)
	genres.POST("", a.CreateGenre)
	genres.GET("/:id", a.GetGenre)
	genres.PUT("/:id", a.UpdateGenre)
	genres.DELETE("/:id", a.DeleteGenre)

	users := api.Group("/users")
	users.GET("", a.ListUsers)
	users.GET("/:id", a.GetUser)
	users.POST("", a.requireAuth, a.CreateUser)
	users.PUT("/:id", a.requireAuth, a.UpdateUser)
	users.DELETE("/:id", a.requireAuth, a.DeleteUser)

	// signup/login plus the /api/users aliases the web client uses
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", a.Signup)
	authGroup.POST("/login", a.Login)
	users.POST("/signup", a.Signup)
	users.POST("/login", a.Login)

	api.POST("/import/track", a.ImportTrack)

	return r
}
