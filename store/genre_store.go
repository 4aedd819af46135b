package store

import (
	"errors"

	"github.com/spotilike/api/models"
	"gorm.io/gorm"
)

// CreateGenre inserts a new genre.
func CreateGenre(db *gorm.DB, in models.GenreInput) (*models.Genre, error) {
	genre := &models.Genre{Title: in.Title, Description: in.Description}
	if err := db.Create(genre).Error; err != nil {
		return nil, err
	}
	return genre, nil
}

// GetGenre looks up one genre by id.
func GetGenre(db *gorm.DB, id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := db.First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "genre", ID: id}
		}
		return nil, err
	}
	return &genre, nil
}

// ListGenres returns one page of genres ordered by id.
func ListGenres(db *gorm.DB, page Page) ([]models.Genre, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	genres := []models.Genre{}
	if err := page.apply(db).Order("id").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

// UpdateGenre replaces every field of an existing genre.
func UpdateGenre(db *gorm.DB, id uint, in models.GenreInput) (*models.Genre, error) {
	var genre *models.Genre
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		genre, err = GetGenre(tx, id)
		if err != nil {
			return err
		}
		genre.Title = in.Title
		genre.Description = in.Description
		return tx.Save(genre).Error
	})
	if err != nil {
		return nil, err
	}
	return genre, nil
}

// DeleteGenre removes a genre and its song links; the songs stay.
func DeleteGenre(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetGenre(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Genre{}, id).Error
	})
}
