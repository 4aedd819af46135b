package store

import (
	"errors"
	"strings"

	"github.com/spotilike/api/models"
	"gorm.io/gorm"
)

const songWithNamesSelect = "songs.id, songs.title, songs.duration, songs.artist_id, songs.album_id, artists.name AS artist_name, albums.title AS album_title"

// SongFilter composes the optional predicates of a song listing. Set
// fields apply conjunctively.
type SongFilter struct {
	Page Page
	// Query matches song titles by case-insensitive substring.
	Query    string
	ArtistID *uint
	AlbumID  *uint
	// GenreID keeps only songs holding at least one link to the genre.
	GenreID *uint
}

// checkSongRefs gates a write carrying the optional foreign keys.
func checkSongRefs(tx *gorm.DB, in models.SongInput) error {
	if in.ArtistID != nil {
		ok, err := artistExists(tx, *in.ArtistID)
		if err != nil {
			return err
		}
		if !ok {
			return &ReferenceNotFoundError{Kind: "artist", ID: *in.ArtistID}
		}
	}
	if in.AlbumID != nil {
		ok, err := albumExists(tx, *in.AlbumID)
		if err != nil {
			return err
		}
		if !ok {
			return &ReferenceNotFoundError{Kind: "album", ID: *in.AlbumID}
		}
	}
	if in.Duration != nil && *in.Duration < 0 {
		return &ValidationError{Msg: "duration must not be negative"}
	}
	return nil
}

func createSong(tx *gorm.DB, in models.SongInput) (*models.Song, error) {
	if err := checkSongRefs(tx, in); err != nil {
		return nil, err
	}
	song := &models.Song{
		Title:    in.Title,
		Duration: in.Duration,
		ArtistID: in.ArtistID,
		AlbumID:  in.AlbumID,
	}
	if err := tx.Create(song).Error; err != nil {
		return nil, err
	}
	return song, nil
}

// CreateSong inserts a new song after verifying any supplied foreign
// keys resolve; the checks and the insert share one transaction.
func CreateSong(db *gorm.DB, in models.SongInput) (*models.Song, error) {
	var song *models.Song
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		song, err = createSong(tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return song, nil
}

// GetSong looks up one song by id. The base record carries foreign
// keys only; ListSongs and friends resolve display names.
func GetSong(db *gorm.DB, id uint) (*models.Song, error) {
	var song models.Song
	if err := db.First(&song, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "song", ID: id}
		}
		return nil, err
	}
	return &song, nil
}

// ListSongs returns one page of songs matching the filter, enriched
// with artist and album names through a single two-way join.
func ListSongs(db *gorm.DB, f SongFilter) ([]models.SongWithNames, error) {
	if err := f.Page.validate(); err != nil {
		return nil, err
	}
	q := db.Model(&models.Song{}).
		Select(songWithNamesSelect).
		Joins("LEFT JOIN artists ON artists.id = songs.artist_id").
		Joins("LEFT JOIN albums ON albums.id = songs.album_id")
	if f.Query != "" {
		q = q.Where("LOWER(songs.title) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
	}
	if f.ArtistID != nil {
		q = q.Where("songs.artist_id = ?", *f.ArtistID)
	}
	if f.AlbumID != nil {
		q = q.Where("songs.album_id = ?", *f.AlbumID)
	}
	if f.GenreID != nil {
		q = q.Joins("JOIN song_genres ON song_genres.song_id = songs.id").
			Where("song_genres.genre_id = ?", *f.GenreID)
	}
	rows := []models.SongWithNames{}
	if err := f.Page.apply(q.Order("songs.id")).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateSong replaces every field of an existing song, re-checking
// any supplied foreign keys.
func UpdateSong(db *gorm.DB, id uint, in models.SongInput) (*models.Song, error) {
	var song models.Song
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&song, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Kind: "song", ID: id}
			}
			return err
		}
		if err := checkSongRefs(tx, in); err != nil {
			return err
		}
		song.Title = in.Title
		song.Duration = in.Duration
		song.ArtistID = in.ArtistID
		song.AlbumID = in.AlbumID
		return tx.Save(&song).Error
	})
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// DeleteSong removes a song and its genre links; genres themselves
// stay intact.
func DeleteSong(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetSong(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Song{}, id).Error
	})
}

// AddGenreToSong links a genre to a song. Linking an already linked
// pair is a no-op, never a duplicate row.
func AddGenreToSong(db *gorm.DB, songID, genreID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		song, err := GetSong(tx, songID)
		if err != nil {
			return err
		}
		genre, err := GetGenre(tx, genreID)
		if err != nil {
			return err
		}
		var n int64
		if err := tx.Table("song_genres").
			Where("song_id = ? AND genre_id = ?", songID, genreID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		return tx.Model(song).Association("Genres").Append(genre)
	})
}

// RemoveGenreFromSong unlinks a genre from a song. Unlinking an
// absent pair is a no-op.
func RemoveGenreFromSong(db *gorm.DB, songID, genreID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		song, err := GetSong(tx, songID)
		if err != nil {
			return err
		}
		genre, err := GetGenre(tx, genreID)
		if err != nil {
			return err
		}
		return tx.Model(song).Association("Genres").Delete(genre)
	})
}

// GenresOfSong returns the titles of every genre linked to a song.
// No ordering is guaranteed beyond being stable per call.
func GenresOfSong(db *gorm.DB, songID uint) ([]string, error) {
	if _, err := GetSong(db, songID); err != nil {
		return nil, err
	}
	titles := []string{}
	err := db.Table("genres").
		Joins("JOIN song_genres ON song_genres.genre_id = genres.id").
		Where("song_genres.song_id = ?", songID).
		Pluck("genres.title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}
