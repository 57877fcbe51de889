package comment

import "context"

// Service is the business logic contract for comments.
type Service interface {
	ListByPoster(ctx context.Context, posterID string) ([]Comment, error)
	Create(ctx context.Context, req *CreateCommentReq) (*Comment, error)
	Delete(ctx context.Context, id string) error
}
