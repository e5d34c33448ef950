package queries

import (
	"errors"
	"time"

	"booking/internal/pkg/guard"
)

var (
	ErrGetRevenueStatisticsQueryIsNotConstructed = errors.New(
		"GetRevenueStatisticsQuery must be created via NewGetRevenueStatisticsQuery constructor",
	)
	ErrPeriodIsInvalid = errors.New("period end must not be before period start")
)

// GetRevenueStatisticsQuery aggregates paid order revenue per currency.
// The period is optional on both ends: a zero From means "from the
// beginning", a zero To means "until now".
//
// Example:
//
//	from := time.Now().AddDate(0, -1, 0)
//	query, err := NewGetRevenueStatisticsQuery(from, time.Time{})
//	if err != nil {
//	    return err
//	}
//
//	stats, err := handler.Handle(ctx, query)
//	for _, s := range stats {
//	    fmt.Printf("%s: %d orders, %.2f total\n", s.Currency, s.OrderCount, s.TotalRevenue)
//	}
type GetRevenueStatisticsQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetRevenueStatisticsQuery creates a revenue query for the given period.
func NewGetRevenueStatisticsQuery(from, to time.Time) (GetRevenueStatisticsQuery, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return GetRevenueStatisticsQuery{}, ErrPeriodIsInvalid
	}

	return GetRevenueStatisticsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// From returns the inclusive period start. Zero means unbounded.
func (q GetRevenueStatisticsQuery) From() time.Time {
	return q.from
}

// To returns the inclusive period end. Zero means unbounded.
func (q GetRevenueStatisticsQuery) To() time.Time {
	return q.to
}

// Validate ensures the query was created through the constructor.
func (q GetRevenueStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueStatisticsQueryIsNotConstructed)
}

// GetRevenueStatisticsQueryResponse holds aggregated revenue for one currency.
// Revenue only counts orders whose payment has actually settled.
type GetRevenueStatisticsQueryResponse struct {
	Currency          string
	OrderCount        int64
	TotalRevenue      float64
	AverageOrderValue float64
}
