package model

import (
	"github.com/shopspring/decimal"
)

// =====================================================
// ANALYTICS MODELS
// =====================================================

// Summary is the headline count block served by the commerce API.
type Summary struct {
	TotalOrders   int `json:"totalOrders"`
	TotalProducts int `json:"totalProducts"`
	TotalUsers    int `json:"totalUsers"`
}

// MonthlyRevenue aggregates one calendar month of orders.
type MonthlyRevenue struct {
	Month   string          `json:"month"` // "2026-08"
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
	Tax     decimal.Decimal `json:"tax"`
}

// DashboardReport is the full admin dashboard payload.
type DashboardReport struct {
	Summary Summary          `json:"summary"`
	Monthly []MonthlyRevenue `json:"monthly"` // oldest first

	CurrentMonthRevenue  decimal.Decimal `json:"currentMonthRevenue"`
	PreviousMonthRevenue decimal.Decimal `json:"previousMonthRevenue"`

	// RevenueChangePercent is nil when the previous month had no revenue,
	// so the dashboard can show "n/a" instead of a misleading number.
	RevenueChangePercent *decimal.Decimal `json:"revenueChangePercent"`
}
