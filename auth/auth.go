// Package auth issues and validates session proofs and implements the
// two authentication strategies the deployment can run with.
package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spotilike/api/models"
	"github.com/spotilike/api/store"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned on any login mismatch; it does
	// not reveal whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidProof is returned when a session token is malformed,
	// expired, or bound to an account that no longer exists.
	ErrInvalidProof = errors.New("invalid or expired token")
)

// proofTTL bounds how long an issued session proof stays valid.
const proofTTL = 24 * time.Hour

func secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("spotilike-dev-secret")
}

// HashPassword derives a one-way bcrypt credential from a plaintext
// password.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword reports whether the plaintext password matches the
// stored credential.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueProof signs a self-contained session token bound to one
// account id with an expiry. No server-side session table exists.
func IssueProof(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(proofTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// DecodeProof resolves a session token back to the account id it was
// issued for.
func DecodeProof(token string) (uint, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidProof
		}
		return secret(), nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidProof
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidProof
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidProof
	}
	return uint(id), nil
}

// CurrentUser validates a proof and confirms the bound account still
// exists. A deleted account invalidates its outstanding proofs.
func CurrentUser(db *gorm.DB, token string) (*models.User, error) {
	id, err := DecodeProof(token)
	if err != nil {
		return nil, err
	}
	user, err := store.GetUser(db, id)
	if err != nil {
		var nf *store.NotFoundError
		if errors.As(err, &nf) {
			return nil, ErrInvalidProof
		}
		return nil, err
	}
	return user, nil
}

// Signup creates an account with a hashed credential and issues a
// proof bound to the new account id. Identity collisions surface as
// store.ErrDuplicateIdentity and leave nothing behind.
func Signup(db *gorm.DB, username, email, password string) (string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	user, err := store.CreateUser(db, username, email, hash)
	if err != nil {
		return "", err
	}
	return IssueProof(user.ID)
}

// LoginResult carries the outcome of a strategy login. TokenStrategy
// fills Token; LegacyStrategy fills Account and leaves Token empty.
type LoginResult struct {
	Token   string
	Account *models.User
}

// Strategy is the authentication capability the router is built with.
// Exactly one implementation is active per deployment; the two modes
// are never mixed.
type Strategy interface {
	Name() string
	Login(db *gorm.DB, username, password string) (*LoginResult, error)
}

// TokenStrategy is the default and authoritative mode: bcrypt-hashed
// credentials, a fresh JWT session proof on every successful login.
type TokenStrategy struct{}

func (TokenStrategy) Name() string { return "token" }

func (TokenStrategy) Login(db *gorm.DB, username, password string) (*LoginResult, error) {
	user, err := store.GetUserByUsername(db, username)
	if err != nil {
		var nf *store.NotFoundError
		if errors.As(err, &nf) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	token, err := IssueProof(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token}, nil
}

// LegacyStrategy compares passwords in plaintext and returns the
// account summary with no session proof.
//
// Deprecated: kept only for older deployments that never hashed their
// credentials. TokenStrategy is the production mode.
type LegacyStrategy struct{}

func (LegacyStrategy) Name() string { return "legacy" }

func (LegacyStrategy) Login(db *gorm.DB, username, password string) (*LoginResult, error) {
	user, err := store.GetUserByUsername(db, username)
	if err != nil {
		var nf *store.NotFoundError
		if errors.As(err, &nf) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return &LoginResult{Account: user}, nil
}

// FromEnv selects the active strategy; AUTH_STRATEGY=legacy opts into
// the deprecated plaintext mode.
func FromEnv() Strategy {
	if os.Getenv("AUTH_STRATEGY") == "legacy" {
		return LegacyStrategy{}
	}
	return TokenStrategy{}
}
