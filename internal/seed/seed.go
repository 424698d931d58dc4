// Package seed generates the deterministic fixture snapshot the directory
// falls back to when no persisted state exists.
package seed

import (
	"fmt"
	"strings"
	"time"

	"tutorhub/internal/model"
)

var (
	universities = []string{"RUET", "BUET", "DU", "KUET"}
	departments  = []string{"CSE", "EEE", "ME", "CE", "Physics", "Math"}
	sessions     = []string{"2018-19", "2019-20", "2020-21", "2021-22", "2022-23", "2023-24", "2024-25"}
	subjects     = []string{"Math", "Physics", "Chemistry", "Biology", "English", "ICT"}
	areas        = []string{"Dhanmondi", "Uttara", "Mirpur", "Banani", "Mohammadpur", "Gulshan", "Bashundhara"}
	modes        = []model.Mode{model.ModeOnline, model.ModeOffline, model.ModeHybrid}
	grades       = []string{"Class 6", "Class 7", "Class 8", "Class 9", "Class 10", "SSC", "HSC"}

	names = []string{
		"Rafiq Ahmed", "Sabina Yasmin", "Kamal Hassan", "Nasrin Sultana", "Jahangir Alam",
		"Fatima Begum", "Rahim Uddin", "Shahnaz Parvin", "Habibur Rahman", "Roksana Akter",
		"Milon Kumar", "Shapla Khatun", "Farhan Israk", "Tahsin Zaman", "Nusrat Jahan",
		"Iftekhar Mahmud", "Sadia Islam", "Mehedi Hasan", "Anika Rahman", "Tanvir Ahmed",
		"Faria Tabassum", "Shakib Al Hasan", "Ayesha Siddika", "Rakib Hassan", "Sumona Akter",
		"Imran Khan", "Nadia Afrin", "Sajid Rahman", "Rupa Khatun", "Limon Ahmed",
		"Monika Rani", "Shahidul Islam", "Nafisa Anjum", "Rubel Hossain", "Sultana Razia",
		"Masum Billah", "Sharmin Akter", "Javed Iqbal", "Mahfuza Begum", "Aziz Mahmud",
	}
)

// Tutor population per verification state. The public directory shows the
// approved slice only.
const (
	tutorCount    = 36
	approvedCount = 30
	pendingCount  = 4
)

// Snapshot builds the full fixture. The same inputs always produce the
// same snapshot, so tests can rely on exact counts.
func Snapshot() *model.Snapshot {
	return &model.Snapshot{
		Users:        Users(),
		Tutors:       Tutors(),
		Parents:      Parents(),
		Posts:        Posts(),
		Applications: Applications(),
	}
}

// Users returns the three fixed demo accounts.
func Users() []model.User {
	return []model.User{
		{ID: "user-parent-1", Email: "parent@test.com", Name: "Parent User", Role: model.RoleParent, Status: model.UserActive},
		{ID: "user-tutor-1", Email: "tutor@test.com", Name: "Tutor User", Role: model.RoleTutor, Status: model.UserActive},
		{ID: "user-admin-1", Email: "admin@test.com", Name: "Admin User", Role: model.RoleAdmin, Status: model.UserActive},
	}
}

// Tutors generates 36 profiles: 30 approved, then 4 pending, then 2 rejected.
func Tutors() []model.TutorProfile {
	tutors := make([]model.TutorProfile, 0, tutorCount)
	for i := 0; i < tutorCount; i++ {
		verify := model.VerifyRejected
		switch {
		case i < approvedCount:
			verify = model.VerifyApproved
		case i < approvedCount+pendingCount:
			verify = model.VerifyPending
		}

		tutorSubjects := subjects[:2+i%3]
		tutorAreas := areas[:1+i%2]
		rate := float64(300 + (i*50)%500)

		t := model.TutorProfile{
			ID:         fmt.Sprintf("tutor-%d", i+1),
			UserID:     fmt.Sprintf("user-tutor-%d", i+1),
			FullName:   names[i],
			University: universities[i%len(universities)],
			Department: departments[i%len(departments)],
			Session:    sessions[(i/5)%len(sessions)],
			Subjects:   tutorSubjects,
			Mode:       modes[i%len(modes)],
			HourlyRate: &rate,
			Areas:      tutorAreas,
			Bio:        fmt.Sprintf("Experienced tutor in %s. Passionate about teaching and helping students achieve their goals.", strings.Join(tutorSubjects, ", ")),
			AvatarURL:  fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", strings.ReplaceAll(names[i], " ", "")),
			Verify:     verify,
			CreatedAt:  time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC),
		}
		if verify == model.VerifyApproved {
			avg := 4.0 + float64(i%10)/10
			t.RatingAvg = &avg
			t.RatingCount = 5 + (i*7)%20
		}
		tutors = append(tutors, t)
	}
	return tutors
}

// Parents returns the single fixed parent profile owning the seed posts.
func Parents() []model.ParentProfile {
	return []model.ParentProfile{
		{
			ID:        "parent-1",
			UserID:    "user-parent-1",
			FullName:  "Parent User",
			Phone:     "+8801711111111",
			Area:      "Dhanmondi",
			CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Posts generates 10 tuition posts: 7 open, 2 assigned, 1 closed. The
// applications counter is consistent with Applications(): posts 1-8 carry
// one seed application each.
func Posts() []model.TuitionPost {
	posts := make([]model.TuitionPost, 0, 10)
	for i := 0; i < 10; i++ {
		status := model.PostClosed
		switch {
		case i < 7:
			status = model.PostOpen
		case i < 9:
			status = model.PostAssigned
		}

		schedule := "2 days/week, weekends"
		if i%2 == 0 {
			schedule = "3 days/week, evenings"
		}
		budgetMin := float64(400 + (i*100)%300)
		budgetMax := float64(600 + (i*100)%400)

		count := 0
		if i < 8 {
			count = 1
		}

		posts = append(posts, model.TuitionPost{
			ID:                fmt.Sprintf("post-%d", i+1),
			ParentID:          "parent-1",
			ParentName:        "Parent User",
			Grade:             grades[i%len(grades)],
			Subjects:          subjects[:1+i%3],
			Mode:              modes[i%len(modes)],
			Area:              areas[i%len(areas)],
			Schedule:          schedule,
			BudgetMin:         &budgetMin,
			BudgetMax:         &budgetMax,
			Note:              fmt.Sprintf("Looking for an experienced tutor for %s.", grades[i%len(grades)]),
			Status:            status,
			ApplicationsCount: count,
			CreatedAt:         time.Date(2024, time.October, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return posts
}

// Applications generates 8 applications: 4 applied, 2 shortlisted, 1 hired,
// 1 rejected, by tutors 1-8 against posts 1-8.
func Applications() []model.TutorApplication {
	tutors := Tutors()
	posts := Posts()

	apps := make([]model.TutorApplication, 0, 8)
	for i := 0; i < 8; i++ {
		status := model.AppRejected
		switch {
		case i < 4:
			status = model.AppApplied
		case i < 6:
			status = model.AppShortlisted
		case i < 7:
			status = model.AppHired
		}

		rate := float64(500 + (i*50)%300)
		post := posts[i%len(posts)]

		apps = append(apps, model.TutorApplication{
			ID:           fmt.Sprintf("app-%d", i+1),
			TutorID:      tutors[i].ID,
			TutorName:    tutors[i].FullName,
			PostID:       post.ID,
			PostGrade:    post.Grade,
			ExpectedRate: &rate,
			CoverNote:    fmt.Sprintf("I am interested in teaching %s for %s.", strings.Join(post.Subjects, ", "), post.Grade),
			Status:       status,
			CreatedAt:    time.Date(2024, time.October, 2+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return apps
}
