package poster

import "context"

// Service is the business logic contract for posters.
type Service interface {
	List(ctx context.Context) ([]Poster, error)
	Create(ctx context.Context, req *CreatePosterReq) (*Poster, error)
	GetByID(ctx context.Context, id string) (*Poster, error)
	Delete(ctx context.Context, id string) error
}
