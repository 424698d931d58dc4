package service

import (
	"context"
	"fmt"

	"tutorhub/internal/cache"
	"tutorhub/internal/directory"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

// AdminService exposes the privileged moderation surface: unrestricted
// listings and status transitions. Transitions are unconditional field
// overwrites; there is no guard against skipping states, matching the
// admin UI's re-decide workflow.
type AdminService interface {
	ListTutors(ctx context.Context, verify model.VerifyStatus) ([]model.TutorProfile, error)
	UpdateVerify(ctx context.Context, tutorID string, status model.VerifyStatus) (*model.TutorProfile, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	SetUserStatus(ctx context.Context, userID string, status model.UserStatus) (*model.User, error)
	ListPosts(ctx context.Context, status model.PostStatus) ([]model.TuitionPost, error)
	SetPostStatus(ctx context.Context, postID string, status model.PostStatus) (*model.TuitionPost, error)
	ListPostApplications(ctx context.Context, postID string) ([]model.TutorApplication, error)
	SetApplicationStatus(ctx context.Context, appID string, status model.AppStatus) (*model.TutorApplication, error)
	KPIs(ctx context.Context) (*model.KPIReport, error)
}

type adminService struct {
	dir   *directory.Directory
	cache *cache.Client
}

// NewAdminService creates a new admin service.
func NewAdminService(dir *directory.Directory, cacheClient *cache.Client) AdminService {
	return &adminService{dir: dir, cache: cacheClient}
}

// ListTutors returns all tutors, optionally restricted to one verification
// state. Unlike the public directory this sees pending and rejected
// profiles too.
func (s *adminService) ListTutors(ctx context.Context, verify model.VerifyStatus) ([]model.TutorProfile, error) {
	var tutors []model.TutorProfile
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		tutors = make([]model.TutorProfile, 0, len(snap.Tutors))
		for _, t := range snap.Tutors {
			if verify != "" && t.Verify != verify {
				continue
			}
			tutors = append(tutors, t)
		}
		return nil
	})
	return tutors, err
}

// UpdateVerify overwrites a tutor's verification status.
func (s *adminService) UpdateVerify(ctx context.Context, tutorID string, status model.VerifyStatus) (*model.TutorProfile, error) {
	var tutor model.TutorProfile
	err := s.dir.Update(ctx, func(snap *model.Snapshot) error {
		t := snap.TutorByID(tutorID)
		if t == nil {
			return fmt.Errorf("%w: tutor %s", apperrors.ErrNotFound, tutorID)
		}
		t.Verify = status
		tutor = *t
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, tutorCacheKey(tutorID))
	return &tutor, nil
}

// ListUsers returns every identity record, passwords redacted.
func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		users = make([]model.User, 0, len(snap.Users))
		for _, u := range snap.Users {
			users = append(users, u.Redacted())
		}
		return nil
	})
	return users, err
}

// SetUserStatus bans or unbans a user. Already-issued tokens stay valid
// until expiry; the ban bites at the next login.
func (s *adminService) SetUserStatus(ctx context.Context, userID string, status model.UserStatus) (*model.User, error) {
	var user model.User
	err := s.dir.Update(ctx, func(snap *model.Snapshot) error {
		u := snap.UserByID(userID)
		if u == nil {
			return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		u.Status = status
		user = u.Redacted()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListPosts returns all posts, optionally restricted to one status. Unlike
// the public feed this sees assigned and closed posts, which is how the
// moderation screen finds its targets.
func (s *adminService) ListPosts(ctx context.Context, status model.PostStatus) ([]model.TuitionPost, error) {
	var posts []model.TuitionPost
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		posts = make([]model.TuitionPost, 0, len(snap.Posts))
		for _, p := range snap.Posts {
			if status != "" && p.Status != status {
				continue
			}
			posts = append(posts, p)
		}
		return nil
	})
	return posts, err
}

// SetPostStatus overwrites a post's status (approve reopens, close closes).
func (s *adminService) SetPostStatus(ctx context.Context, postID string, status model.PostStatus) (*model.TuitionPost, error) {
	var post model.TuitionPost
	err := s.dir.Update(ctx, func(snap *model.Snapshot) error {
		p := snap.PostByID(postID)
		if p == nil {
			return fmt.Errorf("%w: post %s", apperrors.ErrNotFound, postID)
		}
		p.Status = status
		post = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPostApplications returns the applicants for one post.
func (s *adminService) ListPostApplications(ctx context.Context, postID string) ([]model.TutorApplication, error) {
	var apps []model.TutorApplication
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		if snap.PostByID(postID) == nil {
			return fmt.Errorf("%w: post %s", apperrors.ErrNotFound, postID)
		}
		apps = make([]model.TutorApplication, 0)
		for _, a := range snap.Applications {
			if a.PostID == postID {
				apps = append(apps, a)
			}
		}
		return nil
	})
	return apps, err
}

// SetApplicationStatus overwrites an application's status.
func (s *adminService) SetApplicationStatus(ctx context.Context, appID string, status model.AppStatus) (*model.TutorApplication, error) {
	var app model.TutorApplication
	err := s.dir.Update(ctx, func(snap *model.Snapshot) error {
		a := snap.ApplicationByID(appID)
		if a == nil {
			return fmt.Errorf("%w: application %s", apperrors.ErrNotFound, appID)
		}
		a.Status = status
		app = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// KPIs computes the dashboard summary over the current snapshot.
func (s *adminService) KPIs(ctx context.Context) (*model.KPIReport, error) {
	report := &model.KPIReport{
		ModeDist:    map[string]int{},
		SubjectDist: map[string]int{},
	}
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		report.TotalTutors = len(snap.Tutors)
		for _, t := range snap.Tutors {
			switch t.Verify {
			case model.VerifyApproved:
				report.ApprovedTutors++
			case model.VerifyPending:
				report.PendingTutors++
			case model.VerifyRejected:
				report.RejectedTutors++
			}
			report.ModeDist[string(t.Mode)]++
			for _, subj := range t.Subjects {
				report.SubjectDist[subj]++
			}
		}

		report.TotalPosts = len(snap.Posts)
		for _, p := range snap.Posts {
			if p.Status == model.PostOpen {
				report.OpenPosts++
			}
		}

		report.TotalApplications = len(snap.Applications)
		hired := 0
		for _, a := range snap.Applications {
			if a.Status == model.AppHired {
				hired++
			}
		}
		if report.TotalApplications > 0 {
			report.HireRate = float64(hired) / float64(report.TotalApplications)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
