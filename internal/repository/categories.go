package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/gm3197/CSE437s-group-4/internal/apierr"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/transport"
)

type ICategoryResource interface {
	List(ctx context.Context, year, month *int) ([]model.Category, error)
	Create(ctx context.Context, name string, monthlyGoal decimal.Decimal) (int, error)
	Delete(ctx context.Context, categoryID int) error
}

type CategoryResource struct {
	sender Sender
}

// CategoriesPath builds the listing path. Year and month must be given
// together or not at all.
func CategoriesPath(year, month *int) (string, error) {
	switch {
	case year == nil && month == nil:
		return "/categories", nil
	case year != nil && month != nil:
		if *month < 1 || *month > 12 {
			return "", fmt.Errorf("%w: month %d out of range", apierr.ErrInvalidURL, *month)
		}
		return fmt.Sprintf("/categories/%d/%d", *year, *month), nil
	default:
		return "", fmt.Errorf("%w: year and month must be given together", apierr.ErrInvalidURL)
	}
}

func (r *CategoryResource) List(ctx context.Context, year, month *int) ([]model.Category, error) {
	const op = "categories.List"
	path, err := CategoriesPath(year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := call(ctx, r.sender, op, &transport.Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}
	return decode[[]model.Category](op, resp)
}

// Create returns the new category's id, or zero when the server does not
// report one.
func (r *CategoryResource) Create(ctx context.Context, name string, monthlyGoal decimal.Decimal) (int, error) {
	const op = "categories.Create"
	resp, err := jsonCall(ctx, r.sender, op, http.MethodPost, "/categories", model.NewCategory{
		Name:        name,
		MonthlyGoal: monthlyGoal,
	})
	if err != nil {
		return 0, err
	}
	if len(resp.Body) == 0 {
		return 0, nil
	}

	var created model.NewCategoryResponse
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return 0, &apierr.DecodeError{Op: op, Err: err}
	}
	return created.CategoryID, nil
}

func (r *CategoryResource) Delete(ctx context.Context, categoryID int) error {
	_, err := call(ctx, r.sender, "categories.Delete", &transport.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/categories/%d", categoryID),
	})
	return err
}
