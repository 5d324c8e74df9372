package carrier

// Category classifies a carrier by the kind of identifier it issues.
// The set is closed; the category decides which parsing ruleset applies.
type Category string

const (
	CategoryContainer Category = "container"
	CategoryAir       Category = "air"
	CategoryCourier   Category = "courier"
	CategoryPost      Category = "post"
	CategoryRail      Category = "rail"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryContainer,
		CategoryAir,
		CategoryCourier,
		CategoryPost,
		CategoryRail,
	}
}

// IsValid reports whether the category belongs to the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryContainer, CategoryAir, CategoryCourier, CategoryPost, CategoryRail:
		return true
	}
	return false
}

// Carrier is one tracking-capable organization. Records are immutable
// reference data compiled into the binary; there is no create/update/delete
// lifecycle and no persistence.
type Carrier struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	TrackingURL string   `json:"tracking_url"`
	Category    Category `json:"category"`
	Region      string   `json:"region,omitempty"`
	IsMajor     bool     `json:"is_major,omitempty"`
}
