package prospects

import "go-outreach-automation/internal/models"

// Any matches every value; an empty field does the same.
const Any = "All"

// Query holds zero or more equality filters over the record set.
type Query struct {
	Company string
	Role    string
	Stage   string
}

// Filter narrows records by exact-match equality on each present field.
// Filters commute: applying Company then Role equals applying both at once.
func Filter(records []models.Prospect, q Query) []models.Prospect {
	out := make([]models.Prospect, 0, len(records))
	for _, r := range records {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matches(p models.Prospect, q Query) bool {
	if !passes(q.Company, p.Company) {
		return false
	}
	if !passes(q.Role, p.Role) {
		return false
	}
	if !passes(q.Stage, string(p.Stage)) {
		return false
	}
	return true
}

func passes(want, got string) bool {
	return want == "" || want == Any || want == got
}
