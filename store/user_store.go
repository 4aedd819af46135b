package store

import (
	"errors"

	"github.com/spotilike/api/models"
	"gorm.io/gorm"
)

// identityTaken reports whether another user already holds the
// username or the email. Comparison is exact-match as stored.
func identityTaken(tx *gorm.DB, username, email string, excludeID uint) (bool, error) {
	var n int64
	q := tx.Model(&models.User{}).Where("username = ? OR email = ?", username, email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateUser inserts a new account with an already-prepared password
// credential. The uniqueness pre-check runs in the same transaction
// as the insert, and the unique indexes catch whatever races past it.
func CreateUser(db *gorm.DB, username, email, password string) (*models.User, error) {
	user := &models.User{Username: username, Email: email, Password: password}
	err := db.Transaction(func(tx *gorm.DB) error {
		taken, err := identityTaken(tx, username, email, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateIdentity
		}
		return tx.Create(user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return user, nil
}

// GetUser looks up one account by id.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "user", ID: id}
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername looks up one account by its exact username.
func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "user"}
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns one page of accounts ordered by id.
func ListUsers(db *gorm.DB, page Page) ([]models.User, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := page.apply(db).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser replaces every field of an existing account, re-checking
// identity uniqueness against all other rows.
func UpdateUser(db *gorm.DB, id uint, username, email, password string) (*models.User, error) {
	var user *models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = GetUser(tx, id)
		if err != nil {
			return err
		}
		taken, err := identityTaken(tx, username, email, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateIdentity
		}
		user.Username = username
		user.Email = email
		user.Password = password
		return tx.Save(user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account.
func DeleteUser(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetUser(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
