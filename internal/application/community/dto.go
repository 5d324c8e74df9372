package community

// CreatePostInput carries the anonymous write form.
type CreatePostInput struct {
	Title    string
	Content  string
	Nickname string
	Password string
}

// UpdatePostInput edits a post after proving ownership with the password.
type UpdatePostInput struct {
	Title    string
	Content  string
	Password string
}

// CreateCommentInput carries a new reply.
type CreateCommentInput struct {
	Nickname string
	Content  string
	Password string
}

// ListInput narrows the board listing.
type ListInput struct {
	Page     int
	PageSize int
	Search   string
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
