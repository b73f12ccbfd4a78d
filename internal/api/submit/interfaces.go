package submit

import (
	"context"

	"github.com/futig/shortlist-web/internal/entity"
)

type SubmitUsecase interface {
	State(ctx context.Context, sessionID string) entity.UIState
	Prepare(ctx context.Context, sessionID string, input *entity.SubmitInput) (*entity.FilterRequest, error)
	Dispatch(ctx context.Context, sessionID string, req *entity.FilterRequest) error
}
