package insight

import (
	"regexp"
	"strings"
	"time"

	"github.com/cargolink/backend/internal/domain/shared"
)

// Status is the publication lifecycle state of an insight.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Category buckets insights for the listing page filter.
type Category string

const (
	CategoryMarket     Category = "market"
	CategoryRegulation Category = "regulation"
	CategoryGuide      Category = "guide"
	CategoryNews       Category = "news"
)

// IsValid reports whether the category belongs to the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMarket, CategoryRegulation, CategoryGuide, CategoryNews:
		return true
	}
	return false
}

var (
	ErrEmptyTitle      = shared.NewDomainError("EMPTY_TITLE", "Title is required")
	ErrEmptyContent    = shared.NewDomainError("EMPTY_CONTENT", "Content is required")
	ErrInvalidCategory = shared.NewDomainError("INVALID_CATEGORY", "Unknown insight category")
	ErrNotPublished    = shared.NewDomainError("NOT_PUBLISHED", "Insight is not published")
)

// Insight is a CMS article. Slug is derived from the title at creation and
// stays stable across edits so shared links keep working.
type Insight struct {
	shared.BaseAggregateRoot
	Title       string     `gorm:"not null;size:200"`
	Slug        string     `gorm:"not null;uniqueIndex;size:220"`
	Excerpt     string     `gorm:"size:500"`
	Content     string     `gorm:"not null;type:text"`
	Category    Category   `gorm:"not null;size:20;index"`
	Tags        string     `gorm:"size:300"`
	CoverURL    string     `gorm:"size:500"`
	Status      Status     `gorm:"not null;size:12;index;default:draft"`
	PublishedAt *time.Time `gorm:"index"`
	ViewCount   int64      `gorm:"not null;default:0"`
}

// NewInsight creates a draft.
func NewInsight(title, excerpt, content string, category Category) (*Insight, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return &Insight{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Slug:              Slugify(title),
		Excerpt:           strings.TrimSpace(excerpt),
		Content:           content,
		Category:          category,
		Status:            StatusDraft,
	}, nil
}

// Update edits the editable fields. The slug is not regenerated.
func (i *Insight) Update(title, excerpt, content string, category Category) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	i.Title = title
	i.Excerpt = strings.TrimSpace(excerpt)
	i.Content = content
	i.Category = category
	i.IncrementVersion()
	return nil
}

// Publish moves a draft to published and stamps PublishedAt once.
// Re-publishing keeps the original timestamp.
func (i *Insight) Publish(now time.Time) {
	if i.Status == StatusPublished {
		return
	}
	i.Status = StatusPublished
	if i.PublishedAt == nil {
		t := now.UTC()
		i.PublishedAt = &t
	}
	i.IncrementVersion()
}

// Unpublish returns the insight to draft.
func (i *Insight) Unpublish() {
	if i.Status == StatusDraft {
		return
	}
	i.Status = StatusDraft
	i.IncrementVersion()
}

// IsPublished reports whether the insight is publicly visible.
func (i *Insight) IsPublished() bool {
	return i.Status == StatusPublished
}

var slugStrip = regexp.MustCompile(`[^a-z0-9가-힣]+`)

// Slugify lowercases the title and collapses everything outside
// [a-z0-9, Hangul syllables] into single hyphens. Korean titles keep their
// Hangul; browsers percent-encode it in URLs.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if r := []rune(s); len(r) > 80 {
		s = strings.Trim(string(r[:80]), "-")
	}
	return s
}
