package store

import (
	"errors"

	"github.com/spotilike/api/models"
	"gorm.io/gorm"
)

func artistExists(tx *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := tx.Model(&models.Artist{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateArtist inserts a new artist and returns it with its generated
// id.
func CreateArtist(db *gorm.DB, in models.ArtistInput) (*models.Artist, error) {
	artist := &models.Artist{Name: in.Name, Avatar: in.Avatar, Bio: in.Bio}
	if err := db.Create(artist).Error; err != nil {
		return nil, err
	}
	return artist, nil
}

// GetArtist looks up one artist by id.
func GetArtist(db *gorm.DB, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := db.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "artist", ID: id}
		}
		return nil, err
	}
	return &artist, nil
}

// ListArtists returns one page of artists ordered by id.
func ListArtists(db *gorm.DB, page Page) ([]models.Artist, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	artists := []models.Artist{}
	if err := page.apply(db).Order("id").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// UpdateArtist replaces every field of an existing artist.
func UpdateArtist(db *gorm.DB, id uint, in models.ArtistInput) (*models.Artist, error) {
	var artist *models.Artist
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		artist, err = GetArtist(tx, id)
		if err != nil {
			return err
		}
		artist.Name = in.Name
		artist.Avatar = in.Avatar
		artist.Bio = in.Bio
		return tx.Save(artist).Error
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

// DeleteArtist removes an artist. The database cascades the delete to
// the artist's albums and their songs, clears artist references on
// songs outside those albums, and drops affected genre links.
func DeleteArtist(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetArtist(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Artist{}, id).Error
	})
}

// AlbumsOfArtist lists one page of an artist's albums. A missing
// artist is an error, not an empty result.
func AlbumsOfArtist(db *gorm.DB, artistID uint, page Page) ([]models.Album, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	if _, err := GetArtist(db, artistID); err != nil {
		return nil, err
	}
	albums := []models.Album{}
	err := page.apply(db.Where("artist_id = ?", artistID)).Order("id").Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}

// SongsOfArtist lists one page of an artist's songs with their album
// titles resolved through a single join.
func SongsOfArtist(db *gorm.DB, artistID uint, page Page) ([]models.SongWithAlbum, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	if _, err := GetArtist(db, artistID); err != nil {
		return nil, err
	}
	rows := []models.SongWithAlbum{}
	q := db.Model(&models.Song{}).
		Select("songs.id, songs.title, songs.duration, songs.artist_id, songs.album_id, albums.title AS album_title").
		Joins("LEFT JOIN albums ON albums.id = songs.album_id").
		Where("songs.artist_id = ?", artistID).
		Order("songs.id")
	if err := page.apply(q).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
