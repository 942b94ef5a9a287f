package model

import (
	"github.com/shopspring/decimal"
)

// Category is a spending bucket. MonthSpend is computed by the server for
// the requested month and is never changed locally.
type Category struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	MonthlyGoal decimal.Decimal `json:"monthly_goal"`
	MonthSpend  decimal.Decimal `json:"month_spend"`
}

// NewCategory is the body of POST /categories.
type NewCategory struct {
	Name        string          `json:"name"`
	MonthlyGoal decimal.Decimal `json:"monthly_goal"`
}

// NewCategoryResponse is returned by POST /categories when the server
// reports the new id.
type NewCategoryResponse struct {
	CategoryID int `json:"category_id"`
}
