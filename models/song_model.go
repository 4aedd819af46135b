package models

// Song is an individual track. Both foreign keys are optional; an
// unattached song is a valid state, not an error.
type Song struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Title    string   `json:"title" gorm:"size:100;not null"`
	Duration *float64 `json:"duration"`
	ArtistID *uint    `json:"artist_id" gorm:"index"`
	AlbumID  *uint    `json:"album_id" gorm:"index"`

	Genres []Genre `json:"-" gorm:"many2many:song_genres;constraint:OnDelete:CASCADE"`
}

// SongInput is the full replacement record for create and update.
// Duration is in seconds and must not be negative.
type SongInput struct {
	Title    string   `json:"title" binding:"required"`
	Duration *float64 `json:"duration" binding:"omitempty,gte=0"`
	ArtistID *uint    `json:"artist_id"`
	AlbumID  *uint    `json:"album_id"`
}

// SongWithAlbum is a song row joined with its album title, used when
// listing an artist's songs.
type SongWithAlbum struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Duration   *float64 `json:"duration"`
	ArtistID   *uint    `json:"artist_id"`
	AlbumID    *uint    `json:"album_id"`
	AlbumTitle *string  `json:"album_title"`
}

// SongWithNames is a song row joined with both display names. The
// enrichment fields are null, never omitted, when the matching foreign
// key is null or unresolved.
type SongWithNames struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Duration   *float64 `json:"duration"`
	ArtistID   *uint    `json:"artist_id"`
	ArtistName *string  `json:"artist_name"`
	AlbumID    *uint    `json:"album_id"`
	AlbumTitle *string  `json:"album_title"`
}
