package community

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargolink/backend/internal/domain/shared"
)

var (
	ErrEmptyTitle    = shared.NewDomainError("EMPTY_TITLE", "Title is required")
	ErrEmptyContent  = shared.NewDomainError("EMPTY_CONTENT", "Content is required")
	ErrEmptyNickname = shared.NewDomainError("EMPTY_NICKNAME", "Nickname is required")
	ErrShortPassword = shared.NewDomainError("SHORT_PASSWORD", "Password must be at least 4 characters")
)

// Post is an anonymous board entry. There are no accounts; ownership is
// proven by the per-post password chosen at creation time.
type Post struct {
	shared.BaseAggregateRoot
	Title        string `gorm:"not null;size:200"`
	Content      string `gorm:"not null;type:text"`
	Nickname     string `gorm:"not null;size:40"`
	PasswordHash string `gorm:"not null;size:80" json:"-"`
	ViewCount    int64  `gorm:"not null;default:0"`
	CommentCount int    `gorm:"not null;default:0"`
}

// NewPost hashes the password with bcrypt and stores only the hash.
func NewPost(title, content, nickname, password string) (*Post, error) {
	title = strings.TrimSpace(title)
	nickname = strings.TrimSpace(nickname)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if nickname == "" {
		return nil, ErrEmptyNickname
	}
	if len(password) < 4 {
		return nil, ErrShortPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Post{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Content:           content,
		Nickname:          nickname,
		PasswordHash:      string(hash),
	}, nil
}

// VerifyPassword compares the candidate against the stored hash.
// A mismatch is the WRONG_PASSWORD domain error, an expected outcome.
func (p *Post) VerifyPassword(candidate string) error {
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(candidate)) != nil {
		return shared.ErrWrongPassword
	}
	return nil
}

// Update edits the post after the password has been verified by the caller.
func (p *Post) Update(title, content string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	p.Title = title
	p.Content = content
	p.IncrementVersion()
	return nil
}

// Comment is a reply on a post. Comments carry their own password so the
// author can delete them later.
type Comment struct {
	shared.BaseEntity
	PostID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Nickname     string    `gorm:"not null;size:40"`
	Content      string    `gorm:"not null;size:1000"`
	PasswordHash string    `gorm:"not null;size:80" json:"-"`
}

// NewComment hashes the password and validates required fields.
func NewComment(postID uuid.UUID, nickname, content, password string) (*Comment, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, ErrEmptyNickname
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if len(password) < 4 {
		return nil, ErrShortPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Comment{
		BaseEntity:   shared.NewBaseEntity(),
		PostID:       postID,
		Nickname:     nickname,
		Content:      content,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword compares the candidate against the stored hash.
func (c *Comment) VerifyPassword(candidate string) error {
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(candidate)) != nil {
		return shared.ErrWrongPassword
	}
	return nil
}
