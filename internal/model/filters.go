package model

import "strings"

// TutorFilters is a sparse filter specification: the zero value of each
// field means unconstrained. All active predicates are ANDed.
type TutorFilters struct {
	University string   `query:"university"`
	Department string   `query:"department"`
	Session    string   `query:"session"`
	Subject    string   `query:"subject"`
	Area       string   `query:"area"`
	Mode       Mode     `query:"mode"`
	Q          string   `query:"q"`
	RateMin    *float64 `query:"rateMin"`
	RateMax    *float64 `query:"rateMax"`
	Page       int      `query:"page"`
	Limit      int      `query:"limit"`
}

// Match reports whether the tutor satisfies every active predicate.
func (f TutorFilters) Match(t TutorProfile) bool {
	if f.University != "" && t.University != f.University {
		return false
	}
	if f.Department != "" && t.Department != f.Department {
		return false
	}
	if f.Session != "" && t.Session != f.Session {
		return false
	}
	if f.Subject != "" && !contains(t.Subjects, f.Subject) {
		return false
	}
	if f.Area != "" && !contains(t.Areas, f.Area) {
		return false
	}
	if f.Mode != "" && t.Mode != f.Mode && t.Mode != ModeHybrid {
		return false
	}
	if f.Q != "" && !matchesQuery(t, f.Q) {
		return false
	}
	if f.RateMin != nil && rateOrZero(t.HourlyRate) < *f.RateMin {
		return false
	}
	if f.RateMax != nil && rateOrZero(t.HourlyRate) > *f.RateMax {
		return false
	}
	return true
}

// PostFilters is the sparse filter specification for tuition posts.
type PostFilters struct {
	Area      string     `query:"area"`
	Subject   string     `query:"subject"`
	Mode      Mode       `query:"mode"`
	Status    PostStatus `query:"status"`
	BudgetMin *float64   `query:"budgetMin"`
	BudgetMax *float64   `query:"budgetMax"`
	Page      int        `query:"page"`
	Limit     int        `query:"limit"`
}

// Match reports whether the post satisfies every active predicate. The
// budget predicates keep posts whose own budget range intersects the
// requested inclusive range.
func (f PostFilters) Match(p TuitionPost) bool {
	if f.Area != "" && p.Area != f.Area {
		return false
	}
	if f.Subject != "" && !contains(p.Subjects, f.Subject) {
		return false
	}
	if f.Mode != "" && p.Mode != f.Mode && p.Mode != ModeHybrid {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.BudgetMin != nil && p.BudgetMax != nil && *p.BudgetMax < *f.BudgetMin {
		return false
	}
	if f.BudgetMax != nil && p.BudgetMin != nil && *p.BudgetMin > *f.BudgetMax {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match across the tutor's
// name, subjects and areas.
func matchesQuery(t TutorProfile, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(t.FullName), q) {
		return true
	}
	for _, s := range t.Subjects {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	for _, a := range t.Areas {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func rateOrZero(rate *float64) float64 {
	if rate == nil {
		return 0
	}
	return *rate
}
