package carrier

import (
	"sort"
	"strings"
)

// Query narrows the directory listing. Zero value means no filtering.
type Query struct {
	Search    string
	Category  Category
	MajorOnly bool
}

// FilterCarriers applies the query to the given records and returns them
// sorted with major carriers first, then by name. Search matches name, code
// and region case-insensitively, so both "머스크" and "maersk" hit.
func FilterCarriers(carriers []Carrier, q Query) []Carrier {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]Carrier, 0, len(carriers))
	for _, c := range carriers {
		if q.Category != "" && c.Category != q.Category {
			continue
		}
		if q.MajorOnly && !c.IsMajor {
			continue
		}
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsMajor != out[j].IsMajor {
			return out[i].IsMajor
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func matchesSearch(c Carrier, search string) bool {
	return strings.Contains(strings.ToLower(c.Name), search) ||
		strings.Contains(strings.ToLower(c.Code), search) ||
		strings.Contains(strings.ToLower(c.Region), search)
}
