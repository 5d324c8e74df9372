package identity

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cargolink/backend/internal/domain/shared"
)

// Role separates content editors from the site admin. Admin additionally
// reads feedback and manages surcharges.
type Role string

const (
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

var (
	ErrEmptyEmail   = shared.NewDomainError("EMPTY_EMAIL", "Email is required")
	ErrWeakPassword = shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 8 characters")
	ErrInvalidRole  = shared.NewDomainError("INVALID_ROLE", "Unknown role")
)

// Editor is a staff account for the CMS. There is no public signup;
// accounts are seeded by migration or created by the admin.
type Editor struct {
	shared.BaseAggregateRoot
	Email        string     `gorm:"not null;uniqueIndex;size:200"`
	Name         string     `gorm:"not null;size:100"`
	PasswordHash string     `gorm:"not null;size:80" json:"-"`
	Role         Role       `gorm:"not null;size:12;default:editor"`
	LastLoginAt  *time.Time
}

// NewEditor hashes the password and builds an account.
func NewEditor(email, name, password string, role Role) (*Editor, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrEmptyEmail
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}
	if role != RoleEditor && role != RoleAdmin {
		return nil, ErrInvalidRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Editor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Name:              strings.TrimSpace(name),
		PasswordHash:      string(hash),
		Role:              role,
	}, nil
}

// VerifyPassword compares the candidate against the stored hash.
func (e *Editor) VerifyPassword(candidate string) error {
	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(candidate)) != nil {
		return shared.ErrWrongPassword
	}
	return nil
}

// RecordLogin stamps the last successful login time.
func (e *Editor) RecordLogin(now time.Time) {
	t := now.UTC()
	e.LastLoginAt = &t
}

// Repository is the persistence port for editor accounts.
type Repository interface {
	shared.Repository[Editor]
	FindByEmail(ctx context.Context, email string) (*Editor, error)
}
