package actions

import (
	"context"

	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

// IAction is one unit of work run by an operator lane. Results are written
// back onto the action itself.
type IAction interface {
	Perform(ctx context.Context, repo *repository.Repository) error
}
