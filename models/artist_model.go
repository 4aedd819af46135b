package models

// Artist owns zero or more albums. Deleting an artist cascades to its
// albums (and through them to their songs); songs that reference the
// artist directly keep existing with the reference cleared.
type Artist struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Name   string  `json:"name" gorm:"size:100;not null"`
	Avatar *string `json:"avatar" gorm:"size:255"`
	Bio    *string `json:"bio"`

	Albums []Album `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Songs  []Song  `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}

// ArtistInput is the full replacement record for create and update.
type ArtistInput struct {
	Name   string  `json:"name" binding:"required"`
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
}
