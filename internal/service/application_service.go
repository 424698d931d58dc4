package service

import (
	"context"
	"fmt"
	"time"

	"tutorhub/internal/directory"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

// ApplicationService lets tutors apply to posts and review their
// applications.
type ApplicationService interface {
	Create(ctx context.Context, userID string, draft model.ApplicationDraft) (*model.TutorApplication, error)
	MyApplications(ctx context.Context, userID string) ([]model.TutorApplication, error)
}

type applicationService struct {
	dir *directory.Directory
}

// NewApplicationService creates a new application service.
func NewApplicationService(dir *directory.Directory) ApplicationService {
	return &applicationService{dir: dir}
}

// Create records an application by the session user's tutor profile
// against an existing post, copying the tutor name and post grade for
// display and bumping the post's applications counter. A failed check
// leaves both collections untouched.
func (s *applicationService) Create(ctx context.Context, userID string, draft model.ApplicationDraft) (*model.TutorApplication, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	var result model.TutorApplication
	err := s.dir.Update(ctx, func(snap *model.Snapshot) error {
		tutor := snap.TutorByUserID(userID)
		if tutor == nil {
			return fmt.Errorf("%w: tutor profile", apperrors.ErrProfileRequired)
		}

		post := snap.PostByID(draft.PostID)
		if post == nil {
			return fmt.Errorf("%w: post %s", apperrors.ErrNotFound, draft.PostID)
		}

		app := model.TutorApplication{
			ID:           "app-" + newID(),
			TutorID:      tutor.ID,
			TutorName:    tutor.FullName,
			PostID:       post.ID,
			PostGrade:    post.Grade,
			ExpectedRate: draft.ExpectedRate,
			CoverNote:    draft.CoverNote,
			Status:       model.AppApplied,
			CreatedAt:    time.Now().UTC(),
		}

		snap.Applications = append(snap.Applications, app)
		post.ApplicationsCount++
		result = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MyApplications returns every application made by the session user's
// tutor profile. No profile means no applications, not an error.
func (s *applicationService) MyApplications(ctx context.Context, userID string) ([]model.TutorApplication, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	var apps []model.TutorApplication
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		tutor := snap.TutorByUserID(userID)
		if tutor == nil {
			apps = []model.TutorApplication{}
			return nil
		}
		for _, a := range snap.Applications {
			if a.TutorID == tutor.ID {
				apps = append(apps, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []model.TutorApplication{}
	}
	return apps, nil
}
