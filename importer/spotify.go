// Package importer pulls track metadata from the Spotify Web API and
// stores it as catalog rows.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spotilike/api/models"
	"github.com/zmb3/spotify"
	"golang.org/x/oauth2/clientcredentials"
	"gorm.io/gorm"
)

// ErrNoMatch is returned when Spotify has no track for the ISRC.
var ErrNoMatch = errors.New("no track found for the given ISRC")

// Client holds Spotify client credentials.
type Client struct {
	clientID     string
	clientSecret string
}

// FromEnv builds a client from SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET,
// or nil when the import feature is unconfigured.
func FromEnv() *Client {
	id := os.Getenv("SPOTIFY_CLIENT_ID")
	secret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if id == "" || secret == "" {
		return nil
	}
	return &Client{clientID: id, clientSecret: secret}
}

// ImportTrack searches Spotify for the ISRC, keeps the most popular
// match, and stores it as artist, album, and song rows in one
// transaction. Artist and album rows are reused by name when they
// already exist; the song row is always created.
func (cl *Client) ImportTrack(ctx context.Context, db *gorm.DB, isrc string) (*models.Song, error) {
	cfg := &clientcredentials.Config{
		ClientID:     cl.clientID,
		ClientSecret: cl.clientSecret,
		TokenURL:     spotify.TokenURL,
	}
	token, err := cfg.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Spotify API token: %w", err)
	}

	client := spotify.Authenticator{}.NewClient(token)

	results, err := client.Search(isrc, spotify.SearchTypeTrack)
	if err != nil {
		return nil, fmt.Errorf("failed to search for track: %w", err)
	}
	tracks := results.Tracks.Tracks
	if len(tracks) == 0 {
		return nil, ErrNoMatch
	}

	best := tracks[0]
	for _, t := range tracks {
		if t.Popularity > best.Popularity {
			best = t
		}
	}
	if len(best.Artists) == 0 {
		return nil, ErrNoMatch
	}

	var song *models.Song
	err = db.Transaction(func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.Where(&models.Artist{Name: best.Artists[0].Name}).
			FirstOrCreate(&artist).Error; err != nil {
			return err
		}

		album := models.Album{Title: best.Album.Name, ArtistID: artist.ID}
		if len(best.Album.Images) > 0 {
			cover := best.Album.Images[0].URL
			album.Cover = &cover
		}
		if err := tx.Where("title = ? AND artist_id = ?", best.Album.Name, artist.ID).
			FirstOrCreate(&album).Error; err != nil {
			return err
		}

		duration := float64(best.Duration) / 1000.0
		song = &models.Song{
			Title:    best.Name,
			Duration: &duration,
			ArtistID: &artist.ID,
			AlbumID:  &album.ID,
		}
		return tx.Create(song).Error
	})
	if err != nil {
		return nil, err
	}
	return song, nil
}
