package models

// Genre is an independent classification label. Deleting a genre only
// removes its song links.
type Genre struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"size:100;not null"`
	Description *string `json:"description"`
}

// GenreInput is the full replacement record for create and update.
type GenreInput struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}
