package service

import (
	"context"
	"fmt"
	"time"

	"tutorhub/internal/directory"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

// PostService serves tuition posts: public listings, creation, owner views.
type PostService interface {
	List(ctx context.Context, filters model.PostFilters) (model.Page[model.TuitionPost], error)
	Get(ctx context.Context, id string) (*model.TuitionPost, error)
	Create(ctx context.Context, userID string, draft model.PostDraft) (*model.TuitionPost, error)
	MyPosts(ctx context.Context, userID string) ([]model.TuitionPost, error)
}

type postService struct {
	dir *directory.Directory
}

// NewPostService creates a new post service.
func NewPostService(dir *directory.Directory) PostService {
	return &postService{dir: dir}
}

// List returns one page of open posts matching every active filter
// predicate. Posts are prepended at creation, so listings come back
// most-recent-first.
func (s *postService) List(ctx context.Context, filters model.PostFilters) (model.Page[model.TuitionPost], error) {
	var page model.Page[model.TuitionPost]
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		matched := make([]model.TuitionPost, 0, len(snap.Posts))
		for _, p := range snap.Posts {
			if p.Status != model.PostOpen {
				continue
			}
			if filters.Match(p) {
				matched = append(matched, p)
			}
		}
		page = model.Paginate(matched, filters.Page, filters.Limit)
		return nil
	})
	return page, err
}

// Get returns one post by id.
func (s *postService) Get(ctx context.Context, id string) (*model.TuitionPost, error) {
	var post model.TuitionPost
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		p := snap.PostByID(id)
		if p == nil {
			return fmt.Errorf("%w: post %s", apperrors.ErrNotFound, id)
		}
		post = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create makes a new open post owned by the session user's parent profile.
// The parent's display name is copied onto the post at this point and not
// kept in sync afterwards.
func (s *postService) Create(ctx context.Context, userID string, draft model.PostDraft) (*model.TuitionPost, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	var result model.TuitionPost
	err := s.dir.Update(ctx, func(snap *model.Snapshot) error {
		parent := snap.ParentByUserID(userID)
		if parent == nil {
			return fmt.Errorf("%w: parent profile", apperrors.ErrProfileRequired)
		}

		post := model.TuitionPost{
			ID:         "post-" + newID(),
			ParentID:   parent.ID,
			ParentName: parent.FullName,
			Grade:      draft.Grade,
			Subjects:   draft.Subjects,
			Mode:       draft.Mode,
			Area:       draft.Area,
			Schedule:   draft.Schedule,
			BudgetMin:  draft.BudgetMin,
			BudgetMax:  draft.BudgetMax,
			Note:       draft.Note,
			Status:     model.PostOpen,
			CreatedAt:  time.Now().UTC(),
		}

		snap.Posts = append([]model.TuitionPost{post}, snap.Posts...)
		result = post
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MyPosts returns every post owned by the session user's parent profile,
// regardless of status. No profile means no posts, not an error.
func (s *postService) MyPosts(ctx context.Context, userID string) ([]model.TuitionPost, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	var posts []model.TuitionPost
	err := s.dir.View(ctx, func(snap *model.Snapshot) error {
		parent := snap.ParentByUserID(userID)
		if parent == nil {
			posts = []model.TuitionPost{}
			return nil
		}
		for _, p := range snap.Posts {
			if p.ParentID == parent.ID {
				posts = append(posts, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []model.TuitionPost{}
	}
	return posts, nil
}
