package service

import (
	"context"
	"time"

	"tutorhub/internal/directory"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

// ParentService manages parent profiles.
type ParentService interface {
	UpsertProfile(ctx context.Context, userID string, patch model.ParentProfilePatch) (*model.ParentProfile, error)
	MyProfile(ctx context.Context, userID string) (*model.ParentProfile, error)
}

type parentService struct {
	dir *directory.Directory
}

// NewParentService creates a new parent service.
func NewParentService(dir *directory.Directory) ParentService {
	return &parentService{dir: dir}
}

// UpsertProfile creates the session user's parent profile on first save
// and patches it in place afterwards.
func (s *parentService) UpsertProfile(ctx context.Context, userID string, patch model.ParentProfilePatch) (*model.ParentProfile, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	var result model.ParentProfile
	err := s.dir.Update(ctx, func(snap *model.Snapshot) error {
		if existing := snap.ParentByUserID(userID); existing != nil {
			patch.Apply(existing)
			result = *existing
			return nil
		}

		profile := model.ParentProfile{
			ID:        "parent-" + newID(),
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		patch.Apply(&profile)
		snap.Parents = append(snap.Parents, profile)
		result = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MyProfile returns the session user's parent profile, or (nil, nil) when
// none exists yet.
func (s *parentService) MyProfile(ctx context.Context, userID string) (*model.ParentProfile, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	var profile *model.ParentProfile
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		if p := snap.ParentByUserID(userID); p != nil {
			c := *p
			profile = &c
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
