package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tutorhub/internal/cache"
	"tutorhub/internal/directory"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

const tutorCacheTTL = 30 * time.Second

// TutorService serves the tutor directory: public listings, detail lookups
// and profile upserts.
type TutorService interface {
	List(ctx context.Context, filters model.TutorFilters) (model.Page[model.TutorProfile], error)
	Get(ctx context.Context, id string) (*model.TutorProfile, error)
	UpsertProfile(ctx context.Context, userID string, patch model.TutorProfilePatch) (*model.TutorProfile, error)
	MyProfile(ctx context.Context, userID string) (*model.TutorProfile, error)
}

type tutorService struct {
	dir   *directory.Directory
	cache *cache.Client
}

// NewTutorService creates a new tutor service.
func NewTutorService(dir *directory.Directory, cacheClient *cache.Client) TutorService {
	return &tutorService{dir: dir, cache: cacheClient}
}

func tutorCacheKey(id string) string {
	return "tutor:" + id
}

// List returns one page of approved tutors matching every active filter
// predicate. Result order is snapshot insertion order.
func (s *tutorService) List(ctx context.Context, filters model.TutorFilters) (model.Page[model.TutorProfile], error) {
	var page model.Page[model.TutorProfile]
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		matched := make([]model.TutorProfile, 0, len(snap.Tutors))
		for _, t := range snap.Tutors {
			if t.Verify != model.VerifyApproved {
				continue
			}
			if filters.Match(t) {
				matched = append(matched, t)
			}
		}
		page = model.Paginate(matched, filters.Page, filters.Limit)
		return nil
	})
	return page, err
}

// Get returns one tutor by id, approved or not; detail pages deep-link to
// pending profiles from the admin review screen. Reads go through the
// fail-safe cache.
func (s *tutorService) Get(ctx context.Context, id string) (*model.TutorProfile, error) {
	if data, _ := s.cache.Get(ctx, tutorCacheKey(id)); data != nil {
		var cached model.TutorProfile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	var tutor model.TutorProfile
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		t := snap.TutorByID(id)
		if t == nil {
			return fmt.Errorf("%w: tutor %s", apperrors.ErrNotFound, id)
		}
		tutor = *t
		return nil
	})
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tutor); err == nil {
		_ = s.cache.Set(ctx, tutorCacheKey(id), data, tutorCacheTTL)
	}
	return &tutor, nil
}

// UpsertProfile creates the session user's profile on first save and
// patches it in place afterwards. New profiles start PENDING with a zeroed
// rating aggregate.
func (s *tutorService) UpsertProfile(ctx context.Context, userID string, patch model.TutorProfilePatch) (*model.TutorProfile, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	var result model.TutorProfile
	err := s.dir.Update(ctx, func(snap *model.Snapshot) error {
		if existing := snap.TutorByUserID(userID); existing != nil {
			patch.Apply(existing)
			result = *existing
			return nil
		}

		profile := model.TutorProfile{
			ID:        "tutor-" + newID(),
			UserID:    userID,
			Subjects:  []string{},
			Mode:      model.ModeOnline,
			Areas:     []string{},
			Verify:    model.VerifyPending,
			CreatedAt: time.Now().UTC(),
		}
		patch.Apply(&profile)
		snap.Tutors = append(snap.Tutors, profile)
		result = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, tutorCacheKey(result.ID))
	return &result, nil
}

// MyProfile returns the session user's profile, or (nil, nil) when the
// user has not created one yet.
func (s *tutorService) MyProfile(ctx context.Context, userID string) (*model.TutorProfile, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	var profile *model.TutorProfile
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		if t := snap.TutorByUserID(userID); t != nil {
			p := *t
			profile = &p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
