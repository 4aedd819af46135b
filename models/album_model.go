package models

import "time"

// Album groups songs under one artist. ArtistID is mandatory and must
// resolve at write time.
type Album struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:100;not null"`
	Cover       *string    `json:"cover" gorm:"size:255"`
	ReleaseDate *time.Time `json:"release_date"`
	ArtistID    uint       `json:"artist_id" gorm:"not null;index"`

	Songs []Song `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// AlbumInput is the full replacement record for create and update.
type AlbumInput struct {
	Title       string     `json:"title" binding:"required"`
	Cover       *string    `json:"cover"`
	ReleaseDate *time.Time `json:"release_date"`
	ArtistID    uint       `json:"artist_id" binding:"required"`
}

// AlbumWithArtist is an album row joined with the resolved artist
// name. ArtistName stays null when the artist cannot be resolved.
type AlbumWithArtist struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Cover       *string    `json:"cover"`
	ReleaseDate *time.Time `json:"release_date"`
	ArtistID    uint       `json:"artist_id"`
	ArtistName  *string    `json:"artist_name"`
}
