package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/gm3197/CSE437s-group-4/internal/dispatch"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

// Scope selects the month categories are reported for. The zero value is
// the server's current month.
type Scope struct {
	Year  *int
	Month *int
}

// CategoryService owns the category list for one scope.
type CategoryService struct {
	repo       *repository.Repository
	loop       dispatch.Dispatcher
	logger     *logrus.Logger
	scope      Scope
	categories []model.Category
}

func NewCategoryService(repo *repository.Repository, loop dispatch.Dispatcher, logger *logrus.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		loop:   loop,
		logger: logger,
	}
}

func (s *CategoryService) Categories() []model.Category {
	return append([]model.Category(nil), s.categories...)
}

func (s *CategoryService) Scope() Scope {
	return s.scope
}

// Fetch loads the categories for scope and makes it the current scope.
func (s *CategoryService) Fetch(ctx context.Context, scope Scope) *dispatch.Future[[]model.Category] {
	return dispatch.Submit(s.loop, func() ([]model.Category, error) {
		return s.repo.Categories.List(ctx, scope.Year, scope.Month)
	}, func(categories []model.Category, err error) ([]model.Category, error) {
		if err != nil {
			s.logger.WithError(err).Error("CategoryService.Fetch.Error")
			return nil, err
		}
		s.scope = scope
		s.categories = categories
		return s.Categories(), nil
	})
}

// Create adds a category and re-fetches the current scope.
func (s *CategoryService) Create(ctx context.Context, name string, monthlyGoal decimal.Decimal) *dispatch.Future[[]model.Category] {
	return s.writeThenFetch(ctx, "Create", func() error {
		_, err := s.repo.Categories.Create(ctx, name, monthlyGoal)
		return err
	})
}

// Delete removes a category and re-fetches the current scope.
func (s *CategoryService) Delete(ctx context.Context, categoryID int) *dispatch.Future[[]model.Category] {
	return s.writeThenFetch(ctx, "Delete", func() error {
		return s.repo.Categories.Delete(ctx, categoryID)
	})
}

func (s *CategoryService) writeThenFetch(ctx context.Context, op string, write func() error) *dispatch.Future[[]model.Category] {
	scope := s.scope
	return dispatch.Submit(s.loop, func() ([]model.Category, error) {
		if err := write(); err != nil {
			return nil, err
		}
		return s.repo.Categories.List(ctx, scope.Year, scope.Month)
	}, func(categories []model.Category, err error) ([]model.Category, error) {
		if err != nil {
			s.logger.WithError(err).Errorf("CategoryService.%s.Error", op)
			return nil, err
		}
		if s.scope == scope {
			s.categories = categories
		}
		return append([]model.Category(nil), categories...), nil
	})
}
