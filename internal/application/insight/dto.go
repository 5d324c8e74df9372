package insight

import "github.com/cargolink/backend/internal/domain/insight"

// CreateInput carries the editor form for a new draft.
type CreateInput struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	Tags     string
	CoverURL string
}

// UpdateInput carries the editable fields of an existing insight.
type UpdateInput struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	Tags     string
	CoverURL string
}

// ListInput narrows insight listings.
type ListInput struct {
	Page     int
	PageSize int
	Search   string
	Category string
	Status   string
}

func (in ListInput) normalized() (page, pageSize int) {
	page = in.Page
	if page < 1 {
		page = 1
	}
	pageSize = in.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// ReadResult is what the public article page renders.
type ReadResult struct {
	Insight *insight.Insight `json:"insight"`
	Counted bool             `json:"counted"`
}
