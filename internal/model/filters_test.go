package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(f float64) *float64 { return &f }

func TestTutorFilters_Match(t *testing.T) {
	tutor := TutorProfile{
		FullName:   "Nabila Rahman",
		University: "BUET",
		Department: "EEE",
		Session:    "2021-22",
		Subjects:   []string{"Physics", "Math"},
		Mode:       ModeHybrid,
		HourlyRate: fp(500),
		Areas:      []string{"Dhanmondi", "Mirpur"},
	}

	tests := []struct {
		name    string
		filters TutorFilters
		want    bool
	}{
		{name: "empty filter matches", filters: TutorFilters{}, want: true},
		{name: "university match", filters: TutorFilters{University: "BUET"}, want: true},
		{name: "university mismatch", filters: TutorFilters{University: "DU"}, want: false},
		{name: "subject membership", filters: TutorFilters{Subject: "Math"}, want: true},
		{name: "subject absent", filters: TutorFilters{Subject: "Biology"}, want: false},
		{name: "area membership", filters: TutorFilters{Area: "Mirpur"}, want: true},
		{name: "hybrid satisfies online", filters: TutorFilters{Mode: ModeOnline}, want: true},
		{name: "hybrid satisfies offline", filters: TutorFilters{Mode: ModeOffline}, want: true},
		{name: "all predicates ANDed", filters: TutorFilters{University: "BUET", Subject: "Biology"}, want: false},
		{name: "query on name case-insensitive", filters: TutorFilters{Q: "nabila"}, want: true},
		{name: "query on subject", filters: TutorFilters{Q: "phys"}, want: true},
		{name: "query miss", filters: TutorFilters{Q: "chemistry"}, want: false},
		{name: "rate inside range", filters: TutorFilters{RateMin: fp(400), RateMax: fp(600)}, want: true},
		{name: "rate below min", filters: TutorFilters{RateMin: fp(600)}, want: false},
		{name: "rate above max", filters: TutorFilters{RateMax: fp(400)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Match(tutor))
		})
	}
}

func TestTutorFilters_Match_StrictModeOnNonHybrid(t *testing.T) {
	tutor := TutorProfile{Mode: ModeOnline}
	assert.True(t, TutorFilters{Mode: ModeOnline}.Match(tutor))
	assert.False(t, TutorFilters{Mode: ModeOffline}.Match(tutor))
}

func TestTutorFilters_Match_NilRate(t *testing.T) {
	tutor := TutorProfile{}
	assert.True(t, TutorFilters{RateMax: fp(100)}.Match(tutor), "missing rate counts as zero")
	assert.False(t, TutorFilters{RateMin: fp(100)}.Match(tutor))
}

func TestPostFilters_Match(t *testing.T) {
	post := TuitionPost{
		Subjects:  []string{"English"},
		Mode:      ModeOffline,
		Area:      "Uttara",
		Status:    PostOpen,
		BudgetMin: fp(400),
		BudgetMax: fp(700),
	}

	tests := []struct {
		name    string
		filters PostFilters
		want    bool
	}{
		{name: "empty filter matches", filters: PostFilters{}, want: true},
		{name: "area match", filters: PostFilters{Area: "Uttara"}, want: true},
		{name: "status mismatch", filters: PostFilters{Status: PostClosed}, want: false},
		{name: "budget ranges intersect", filters: PostFilters{BudgetMin: fp(600), BudgetMax: fp(900)}, want: true},
		{name: "requested range below", filters: PostFilters{BudgetMax: fp(300)}, want: false},
		{name: "requested range above", filters: PostFilters{BudgetMin: fp(800)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Match(post))
		})
	}
}
