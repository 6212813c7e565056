package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"nirvana-admin-backend/internal/domains/analytics/model"
	"nirvana-admin-backend/internal/domains/analytics/repository"
	ordermodel "nirvana-admin-backend/internal/domains/orders/model"
	orderrepo "nirvana-admin-backend/internal/domains/orders/repository"
	"nirvana-admin-backend/pkg/cache"
)

// =====================================================
// ANALYTICS SERVICE
// =====================================================

// AnalyticsService builds the admin dashboard report.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*model.DashboardReport, error)
}

type analyticsService struct {
	repo   repository.Repository
	orders orderrepo.Repository
	cache  cache.Cache
	ttl    time.Duration
	now    func() time.Time
}

const dashboardCacheKey = "analytics:dashboard"

// NewAnalyticsService creates a new analytics service. The report is cached
// for ttl so dashboard refreshes do not hammer the commerce API.
func NewAnalyticsService(repo repository.Repository, orders orderrepo.Repository, c cache.Cache, ttl time.Duration) AnalyticsService {
	return &analyticsService{
		repo:   repo,
		orders: orders,
		cache:  c,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *analyticsService) Dashboard(ctx context.Context) (*model.DashboardReport, error) {
	if s.cache != nil {
		var cached model.DashboardReport
		found, err := s.cache.Get(ctx, dashboardCacheKey, &cached)
		if err != nil {
			// Cache trouble never fails the dashboard.
			log.Warn().Err(err).Msg("dashboard cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.List(ctx, ordermodel.ListOrdersQuery{})
	if err != nil {
		return nil, err
	}

	report := s.buildReport(*summary, orders)

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, report, s.ttl); err != nil {
			log.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}

	return report, nil
}

const monthKeyLayout = "2006-01"

// buildReport aggregates revenue and tax per calendar month. Cancelled
// orders never count toward revenue.
func (s *analyticsService) buildReport(summary model.Summary, orders []ordermodel.Order) *model.DashboardReport {
	byMonth := make(map[string]*model.MonthlyRevenue)
	for i := range orders {
		order := &orders[i]
		if order.Status == ordermodel.StatusCancelled {
			continue
		}
		key := order.CreatedAt.UTC().Format(monthKeyLayout)
		bucket, ok := byMonth[key]
		if !ok {
			bucket = &model.MonthlyRevenue{Month: key}
			byMonth[key] = bucket
		}
		bucket.Orders++
		bucket.Revenue = bucket.Revenue.Add(order.Total)
		bucket.Tax = bucket.Tax.Add(order.Tax)
	}

	monthly := make([]model.MonthlyRevenue, 0, len(byMonth))
	for _, bucket := range byMonth {
		monthly = append(monthly, *bucket)
	}
	sort.Slice(monthly, func(i, j int) bool {
		return monthly[i].Month < monthly[j].Month
	})

	now := s.now().UTC()
	currentKey := now.Format(monthKeyLayout)
	// Step back from the first of the month: AddDate on the 29th-31st
	// normalizes through shorter months and lands back in the current one.
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previousKey := firstOfMonth.AddDate(0, -1, 0).Format(monthKeyLayout)

	current := decimal.Zero
	previous := decimal.Zero
	if bucket, ok := byMonth[currentKey]; ok {
		current = bucket.Revenue
	}
	if bucket, ok := byMonth[previousKey]; ok {
		previous = bucket.Revenue
	}

	report := &model.DashboardReport{
		Summary:              summary,
		Monthly:              monthly,
		CurrentMonthRevenue:  current,
		PreviousMonthRevenue: previous,
	}

	if previous.IsPositive() {
		change := current.Sub(previous).
			Div(previous).
			Mul(decimal.NewFromInt(100)).
			Round(1)
		report.RevenueChangePercent = &change
	}

	return report
}
