package store

import (
	"errors"

	"github.com/spotilike/api/models"
	"gorm.io/gorm"
)

const albumWithArtistSelect = "albums.id, albums.title, albums.cover, albums.release_date, albums.artist_id, artists.name AS artist_name"

func albumExists(tx *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := tx.Model(&models.Album{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// checkAlbumRefs gates a write carrying the mandatory artist foreign
// key.
func checkAlbumRefs(tx *gorm.DB, in models.AlbumInput) error {
	ok, err := artistExists(tx, in.ArtistID)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferenceNotFoundError{Kind: "artist", ID: in.ArtistID}
	}
	return nil
}

// CreateAlbum inserts a new album after verifying its artist exists.
// The check and the insert share one transaction.
func CreateAlbum(db *gorm.DB, in models.AlbumInput) (*models.Album, error) {
	album := &models.Album{
		Title:       in.Title,
		Cover:       in.Cover,
		ReleaseDate: in.ReleaseDate,
		ArtistID:    in.ArtistID,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := checkAlbumRefs(tx, in); err != nil {
			return err
		}
		return tx.Create(album).Error
	})
	if err != nil {
		return nil, err
	}
	return album, nil
}

// GetAlbum looks up one album with its artist name resolved.
func GetAlbum(db *gorm.DB, id uint) (*models.AlbumWithArtist, error) {
	var row models.AlbumWithArtist
	res := db.Model(&models.Album{}).
		Select(albumWithArtistSelect).
		Joins("LEFT JOIN artists ON artists.id = albums.artist_id").
		Where("albums.id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &NotFoundError{Kind: "album", ID: id}
	}
	return &row, nil
}

// ListAlbums returns one page of albums, each carrying its artist
// name from a single join rather than per-row lookups.
func ListAlbums(db *gorm.DB, page Page) ([]models.AlbumWithArtist, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	rows := []models.AlbumWithArtist{}
	q := db.Model(&models.Album{}).
		Select(albumWithArtistSelect).
		Joins("LEFT JOIN artists ON artists.id = albums.artist_id").
		Order("albums.id")
	if err := page.apply(q).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateAlbum replaces every field of an existing album, re-checking
// the artist reference.
func UpdateAlbum(db *gorm.DB, id uint, in models.AlbumInput) (*models.Album, error) {
	var album models.Album
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&album, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Kind: "album", ID: id}
			}
			return err
		}
		if err := checkAlbumRefs(tx, in); err != nil {
			return err
		}
		album.Title = in.Title
		album.Cover = in.Cover
		album.ReleaseDate = in.ReleaseDate
		album.ArtistID = in.ArtistID
		return tx.Save(&album).Error
	})
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// DeleteAlbum removes an album; its songs and their genre links go
// with it.
func DeleteAlbum(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		ok, err := albumExists(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return &NotFoundError{Kind: "album", ID: id}
		}
		return tx.Delete(&models.Album{}, id).Error
	})
}

// SongsOfAlbum lists one page of an album's songs with both display
// names resolved. A missing album is an error, not an empty result.
func SongsOfAlbum(db *gorm.DB, albumID uint, page Page) ([]models.SongWithNames, error) {
	ok, err := albumExists(db, albumID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Kind: "album", ID: albumID}
	}
	return ListSongs(db, SongFilter{Page: page, AlbumID: &albumID})
}

// CreateSongInAlbum inserts a song scoped to an album; the album id
// from the path wins over whatever the payload carries.
func CreateSongInAlbum(db *gorm.DB, albumID uint, in models.SongInput) (*models.Song, error) {
	var song *models.Song
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := albumExists(tx, albumID)
		if err != nil {
			return err
		}
		if !ok {
			return &NotFoundError{Kind: "album", ID: albumID}
		}
		in.AlbumID = &albumID
		song, err = createSong(tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return song, nil
}
