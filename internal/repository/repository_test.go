package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gm3197/CSE437s-group-4/internal/apierr"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/transport"
)

type staticToken string

func (s staticToken) Token() (string, bool) {
	return string(s), s != ""
}

// newTestRepository serves handler and counts the requests it receives.
func newTestRepository(t *testing.T, handler http.HandlerFunc) (*Repository, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	client := transport.NewClient(transport.Config{BaseURL: server.URL, Timeout: 5 * time.Second}, staticToken("TOKEN"), logger)
	return New(client), &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func intPtr(v int) *int { return &v }

// -- Receipts tests --

func TestReceipts_List(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/receipts", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"receipts":[{"id":1,"date":"2025-01-02","merchant":"Target","total":12.5,"clean":true}]}`)
	})

	receipts, err := repo.Receipts.List(context.Background())
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "Target", receipts[0].Merchant.Name)
	assert.True(t, receipts[0].Total.Equal(decimal.RequireFromString("12.5")))
}

func TestReceipts_GetStatusGatedBeforeDecode(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"id":42}`)
	})

	details, err := repo.Receipts.Get(context.Background(), 42)
	assert.Nil(t, details)
	assert.True(t, apierr.IsStatus(err, http.StatusNotFound))
}

func TestReceipts_GetDecodeError(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"forty-two"`)
	})

	_, err := repo.Receipts.Get(context.Background(), 42)

	var decodeErr *apierr.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "receipts.Get", decodeErr.Op)

	var transportErr *apierr.TransportError
	assert.False(t, errors.As(err, &transportErr))
}

func TestReceipts_GetEmptyBody(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := repo.Receipts.Get(context.Background(), 42)
	assert.ErrorIs(t, err, apierr.ErrNoData)
}

func TestReceipts_UpdateDetails(t *testing.T) {
	var body model.ReceiptDetails
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/receipts/42", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	})

	err := repo.Receipts.UpdateDetails(context.Background(), &model.ReceiptDetails{
		ID:            42,
		PaymentMethod: "cash",
		Tax:           decimal.RequireFromString("1.10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cash", body.PaymentMethod)
	assert.True(t, body.Tax.Equal(decimal.RequireFromString("1.1")))
}

func TestReceipts_Delete(t *testing.T) {
	repo, calls := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/receipts/9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, repo.Receipts.Delete(context.Background(), 9))
	assert.Equal(t, int32(1), calls.Load())
}

func TestReceipts_Upload(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/receipts/auto", r.URL.Path)
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		assert.Equal(t, "TOKEN", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"success":true,"receipt_id":77}`)
	})

	result, err := repo.Receipts.Upload(context.Background(), []byte{0xFF, 0xD8, 0xFF})
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.ReceiptID)
	assert.Equal(t, 77, *result.ReceiptID)
}

// -- Items tests --

func TestItems_Create(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/receipts/42/items", r.URL.Path)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Eggs", body["description"])
		assert.Equal(t, 4.5, body["price"])
		writeJSON(w, http.StatusOK, `{"item_id":12}`)
	})

	id, err := repo.Items.Create(context.Background(), 42, model.NewItem{
		Description: "Eggs",
		Price:       decimal.RequireFromString("4.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, id)
}

func TestItems_CreateMissingID(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := repo.Items.Create(context.Background(), 42, model.NewItem{Description: "Eggs"})
	var decodeErr *apierr.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestItems_UpdateAndDelete(t *testing.T) {
	var paths []string
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	require.NoError(t, repo.Items.Update(ctx, 42, model.ReceiptItem{ID: 7, Description: "Milk", Category: intPtr(3)}))
	require.NoError(t, repo.Items.Delete(ctx, 42, 7))

	assert.Equal(t, []string{"PATCH /receipts/42/items/7", "DELETE /receipts/42/items/7"}, paths)
}

func TestItems_DeleteFailure(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := repo.Items.Delete(context.Background(), 42, 7)
	assert.True(t, apierr.IsStatus(err, http.StatusForbidden))
}

// -- Categories tests --

func TestCategories_ListCurrent(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id":1,"name":"Food","monthly_goal":200,"month_spend":12.5}]`)
	})

	categories, err := repo.Categories.List(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.True(t, categories[0].MonthSpend.Equal(decimal.RequireFromString("12.5")))
}

func TestCategories_ListScoped(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories/2025/3", r.URL.Path)
		writeJSON(w, http.StatusOK, `[]`)
	})

	categories, err := repo.Categories.List(context.Background(), intPtr(2025), intPtr(3))
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategories_ListHalfScopeMakesNoRequest(t *testing.T) {
	repo, calls := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	ctx := context.Background()

	_, err := repo.Categories.List(ctx, intPtr(2025), nil)
	assert.ErrorIs(t, err, apierr.ErrInvalidURL)

	_, err = repo.Categories.List(ctx, nil, intPtr(3))
	assert.ErrorIs(t, err, apierr.ErrInvalidURL)

	assert.Equal(t, int32(0), calls.Load())
}

func TestCategoriesPath(t *testing.T) {
	path, err := CategoriesPath(nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "/categories", path)

	_, err = CategoriesPath(intPtr(2025), intPtr(13))
	assert.ErrorIs(t, err, apierr.ErrInvalidURL)
}

func TestCategories_Create(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		var body model.NewCategory
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Food", body.Name)
		assert.True(t, body.MonthlyGoal.Equal(decimal.RequireFromString("250")))
		writeJSON(w, http.StatusCreated, `{"category_id":5}`)
	})

	id, err := repo.Categories.Create(context.Background(), "Food", decimal.RequireFromString("250"))
	require.NoError(t, err)
	assert.Equal(t, 5, id)
}

func TestCategories_CreateWithoutBody(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	id, err := repo.Categories.Create(context.Background(), "Food", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, 0, id)
}

func TestCategories_CreateGarbageBody(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, "<html>oops</html>")
	})

	id, err := repo.Categories.Create(context.Background(), "Food", decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, 0, id)

	var decodeErr *apierr.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "categories.Create", decodeErr.Op)
}

func TestCategories_Delete(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories/5", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, repo.Categories.Delete(context.Background(), 5))
}

// -- Images tests --

func TestImages_ItemScan(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n")
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/receipts/42/items/7/scan.png", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	})

	data, err := repo.Images.ItemScan(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestImages_WrongMediaTypeIsNoDataRegardlessOfStatus(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
		repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(status)
			_, _ = w.Write([]byte("<html></html>"))
		})

		_, err := repo.Images.ReceiptScan(context.Background(), 42)
		assert.ErrorIs(t, err, apierr.ErrNoData, "status %d", status)
	}
}

func TestImages_EmptyPNG(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
	})

	_, err := repo.Images.ReceiptScan(context.Background(), 42)
	assert.ErrorIs(t, err, apierr.ErrNoData)
}

func TestImages_PNGWithErrorStatus(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("x"))
	})

	_, err := repo.Images.ReceiptScan(context.Background(), 42)
	assert.True(t, apierr.IsStatus(err, http.StatusNotFound))
}

// -- Auth tests --

func TestAuth_ExchangeGoogleToken(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/google/token", r.URL.Path)
		var body model.AuthRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "google-id-token", body.IDToken)
		writeJSON(w, http.StatusOK, `{"session":"ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"}`)
	})

	token, err := repo.Auth.ExchangeGoogleToken(context.Background(), "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345", token)
}

func TestAuth_ExchangeRejected(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Unauthorized"))
	})

	_, err := repo.Auth.ExchangeGoogleToken(context.Background(), "google-id-token")
	assert.True(t, apierr.IsStatus(err, http.StatusForbidden))
}

func TestAuth_ExchangeEmptySession(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"session":""}`)
	})

	_, err := repo.Auth.ExchangeGoogleToken(context.Background(), "google-id-token")
	assert.ErrorIs(t, err, apierr.ErrNoData)
}
