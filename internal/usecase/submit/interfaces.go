package submit

import (
	"context"

	"github.com/futig/shortlist-web/internal/entity"
)

type FilterConnector interface {
	Filter(ctx context.Context, req *entity.FilterRequest) (*entity.FilterResponse, error)
}

type SubmitValidator interface {
	ValidateSubmit(input *entity.SubmitInput) error
}
