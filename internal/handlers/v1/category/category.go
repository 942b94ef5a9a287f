package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
	"github.com/gm3197/CSE437s-group-4/internal/logging"
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// categoryStore is the interface for category bookkeeping.
type categoryStore interface {
	v1.Authenticator
	Categories(user int, year, month *int) ([]model.Category, error)
	CreateCategory(user int, category model.NewCategory) (int, error)
	DeleteCategory(user, categoryID int) error
}

// Handler serves /categories.
type Handler struct {
	Store categoryStore
}

func NewHandler(store categoryStore) *Handler {
	return &Handler{Store: store}
}

// ListCategoriesInput is the Huma input for the current month.
type ListCategoriesInput struct {
	Authorization string `header:"Authorization" doc:"Session token"`
}

// ListMonthInput is the Huma input for a given month.
type ListMonthInput struct {
	Authorization string `header:"Authorization" doc:"Session token"`
	Year          int    `path:"year" doc:"Four digit year"`
	Month         int    `path:"month" minimum:"1" maximum:"12" doc:"Month, 1 to 12"`
}

// ListCategoriesOutput is a plain JSON array of categories.
type ListCategoriesOutput struct {
	Body []model.Category
}

// CreateCategoryInput is the Huma input for adding a category.
type CreateCategoryInput struct {
	Authorization string `header:"Authorization" doc:"Session token"`
	Body          CreateCategoryBody
}

// CreateCategoryBody is the request body for adding a category.
type CreateCategoryBody struct {
	Name        string   `json:"name" minLength:"1" doc:"Category name"`
	MonthlyGoal v1.Money `json:"monthly_goal" doc:"Monthly spending goal"`
}

// CreateCategoryOutput carries the id of the new category.
type CreateCategoryOutput struct {
	Status int
	Body   model.NewCategoryResponse
}

// DeleteCategoryInput identifies one category.
type DeleteCategoryInput struct {
	Authorization string `header:"Authorization" doc:"Session token"`
	CategoryID    int    `path:"category_id" doc:"Category id"`
}

// Register registers the category endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "Returns every category with its spend for the current month.",
		Tags:        []string{"Categories"},
	}, h.listCurrent)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories-month",
		Method:      http.MethodGet,
		Path:        "/categories/{year}/{month}",
		Summary:     "List categories for a month",
		Tags:        []string{"Categories"},
	}, h.listMonth)

	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/categories",
		Summary:     "Create category",
		Tags:        []string{"Categories"},
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/categories/{category_id}",
		Summary:       "Delete category",
		Description:   "Deletes a category. Its items become uncategorized.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) listCurrent(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	return h.list(ctx, input.Authorization, nil, nil)
}

func (h *Handler) listMonth(ctx context.Context, input *ListMonthInput) (*ListCategoriesOutput, error) {
	return h.list(ctx, input.Authorization, &input.Year, &input.Month)
}

func (h *Handler) list(ctx context.Context, token string, year, month *int) (*ListCategoriesOutput, error) {
	user, err := v1.Authorize(h.Store, token)
	if err != nil {
		return nil, err
	}

	categories, err := h.Store.Categories(user, year, month)
	if err != nil {
		return nil, v1.StoreError("failed to list categories", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryCount", len(categories))
	}
	return &ListCategoriesOutput{Body: categories}, nil
}

func (h *Handler) create(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}
	id, err := h.Store.CreateCategory(user, model.NewCategory{
		Name:        input.Body.Name,
		MonthlyGoal: input.Body.MonthlyGoal.Decimal,
	})
	if err != nil {
		return nil, v1.StoreError("failed to create category", err)
	}
	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   model.NewCategoryResponse{CategoryID: id},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *DeleteCategoryInput) (*struct{}, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}
	if err := h.Store.DeleteCategory(user, input.CategoryID); err != nil {
		return nil, v1.StoreError("failed to delete category", err)
	}
	return &struct{}{}, nil
}
