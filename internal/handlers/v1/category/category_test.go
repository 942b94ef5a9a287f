package category

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/sandbox"
)

func newTestAPI(t *testing.T) (humatest.TestAPI, string) {
	t.Helper()
	store := sandbox.NewStoreWithClock(func() time.Time {
		return time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	})
	token, err := store.Login("google-id")
	require.NoError(t, err)

	_, api := humatest.New(t)
	NewHandler(store).Register(api)
	return api, "Authorization: " + token
}

func decodeCategories(t *testing.T, body []byte) []model.Category {
	t.Helper()
	var categories []model.Category
	require.NoError(t, json.Unmarshal(body, &categories))
	return categories
}

func TestHTTP_CategoryLifecycle(t *testing.T) {
	api, auth := newTestAPI(t)

	resp := api.Post("/categories", auth, map[string]any{"name": "Groceries", "monthly_goal": 200})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created model.NewCategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Positive(t, created.CategoryID)

	resp = api.Get("/categories", auth)
	require.Equal(t, http.StatusOK, resp.Code)
	categories := decodeCategories(t, resp.Body.Bytes())
	require.Len(t, categories, 1)
	assert.Equal(t, "Groceries", categories[0].Name)
	assert.True(t, decimal.NewFromInt(200).Equal(categories[0].MonthlyGoal))
	assert.True(t, categories[0].MonthSpend.IsZero())

	resp = api.Delete("/categories/"+strconv.Itoa(created.CategoryID), auth)
	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestHTTP_ListMonth(t *testing.T) {
	api, auth := newTestAPI(t)

	resp := api.Get("/categories/2025/2", auth)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, decodeCategories(t, resp.Body.Bytes()))
}

func TestHTTP_ListMonth_OutOfRange(t *testing.T) {
	api, auth := newTestAPI(t)

	resp := api.Get("/categories/2025/13", auth)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateCategory_MissingName(t *testing.T) {
	api, auth := newTestAPI(t)

	resp := api.Post("/categories", auth, map[string]any{"monthly_goal": 10})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateCategory_EmptyName(t *testing.T) {
	api, auth := newTestAPI(t)

	resp := api.Post("/categories", auth, map[string]any{"name": "", "monthly_goal": 10})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp = api.Get("/categories", auth)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, decodeCategories(t, resp.Body.Bytes()))
}

func TestHTTP_CreateCategory_GoalMustBeNumber(t *testing.T) {
	api, auth := newTestAPI(t)

	resp := api.Post("/categories", auth, map[string]any{"name": "Rent", "monthly_goal": "lots"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateCategory_FractionalGoal(t *testing.T) {
	api, auth := newTestAPI(t)

	resp := api.Post("/categories", auth, map[string]any{"name": "Coffee", "monthly_goal": 42.5})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = api.Get("/categories", auth)
	require.Equal(t, http.StatusOK, resp.Code)
	categories := decodeCategories(t, resp.Body.Bytes())
	require.Len(t, categories, 1)
	assert.True(t, decimal.RequireFromString("42.5").Equal(categories[0].MonthlyGoal))
}

func TestHTTP_DeleteCategory_Unknown(t *testing.T) {
	api, auth := newTestAPI(t)

	assert.Equal(t, http.StatusNotFound, api.Delete("/categories/9", auth).Code)
}

func TestHTTP_Categories_Unauthorized(t *testing.T) {
	api, _ := newTestAPI(t)

	assert.Equal(t, http.StatusUnauthorized, api.Get("/categories").Code)
}
