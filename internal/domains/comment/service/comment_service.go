package service

import (
	"context"
	"errors"

	"posterdeck-backend/internal/domains/comment"
	"posterdeck-backend/internal/domains/poster"
)

type CommentService struct {
	repo    comment.Repository
	posters poster.Repository
}

func NewCommentService(repo comment.Repository, posters poster.Repository) *CommentService {
	return &CommentService{repo: repo, posters: posters}
}

func (s *CommentService) ListByPoster(ctx context.Context, posterID string) ([]comment.Comment, error) {
	return s.repo.ListByPoster(ctx, posterID)
}

// Create validates the request, checks the target poster is live, and
// bounds the page when the poster recorded its page count at upload.
func (s *CommentService) Create(ctx context.Context, req *comment.CreateCommentReq) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.posters.GetByID(ctx, req.PosterID)
	if err != nil {
		if errors.Is(err, poster.ErrNotFound) {
			return nil, comment.ErrPosterNotFound
		}
		return nil, err
	}

	if p.PageCount > 0 && req.Page > p.PageCount {
		return nil, comment.ErrPageOutOfRange
	}

	cm := comment.NewComment(req.PosterID, req.Page, req.Text, req.Author)

	if err := s.repo.Create(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
