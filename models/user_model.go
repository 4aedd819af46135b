package models

// User is an account record. The password column holds a one-way hash
// under the token strategy and is never serialized either way.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Email    string `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Password string `json:"-" gorm:"size:255;not null"`
}

// UserInput is the full replacement record for create and update. The
// password arrives in plaintext and is hashed before it reaches the
// store.
type UserInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
