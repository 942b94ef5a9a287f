package sandbox

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// Categories lists the user's categories with month_spend computed for the
// given month, or the current one when year and month are nil.
func (s *Store) Categories(user int, year, month *int) ([]model.Category, error) {
	if (year == nil) != (month == nil) {
		return nil, fmt.Errorf("%w: year and month go together", ErrInvalid)
	}
	if month != nil && (*month < 1 || *month > 12) {
		return nil, fmt.Errorf("%w: month %d", ErrInvalid, *month)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var prefix string
	if year == nil {
		prefix = s.now().Format("2006-01")
	} else {
		prefix = fmt.Sprintf("%04d-%02d", *year, *month)
	}

	spend := make(map[int]decimal.Decimal)
	for _, record := range s.receipts {
		if record.owner != user || !strings.HasPrefix(record.details.Date, prefix) {
			continue
		}
		for _, item := range record.details.Items {
			if item.Category != nil {
				spend[*item.Category] = spend[*item.Category].Add(item.Price)
			}
		}
	}

	categories := []model.Category{}
	for _, record := range s.categories {
		if record.owner != user {
			continue
		}
		category := record.category
		category.MonthSpend = spend[category.ID]
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *Store) CreateCategory(user int, category model.NewCategory) (int, error) {
	if category.Name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.nextCategory++
	s.categories[s.nextCategory] = &categoryRecord{
		owner: user,
		category: model.Category{
			ID:          s.nextCategory,
			Name:        category.Name,
			MonthlyGoal: category.MonthlyGoal,
		},
	}
	return s.nextCategory, nil
}

// DeleteCategory removes a category and uncategorizes its items.
func (s *Store) DeleteCategory(user, categoryID int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.categories[categoryID]
	if !ok || record.owner != user {
		return fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
	}
	delete(s.categories, categoryID)

	for _, receipt := range s.receipts {
		if receipt.owner != user {
			continue
		}
		for i, item := range receipt.details.Items {
			if item.Category != nil && *item.Category == categoryID {
				receipt.details.Items[i].Category = nil
			}
		}
	}
	return nil
}
