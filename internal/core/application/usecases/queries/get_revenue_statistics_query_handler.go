package queries

import (
	"context"
	"time"

	"booking/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRevenueStatisticsQueryHandler computes revenue aggregates in the database.
// Grouping and averaging happen in SQL so the handler never materializes
// individual orders.
type GetRevenueStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetRevenueStatisticsQueryHandler creates a handler for revenue queries.
func NewGetRevenueStatisticsQueryHandler(db *gorm.DB) GetRevenueStatisticsQueryHandler {
	return GetRevenueStatisticsQueryHandler{db: db}
}

// Handle returns revenue statistics per currency for the query period.
// Only orders with settled payments count towards revenue. Partially
// refunded orders still count with their full recorded total.
func (h GetRevenueStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetRevenueStatisticsQuery,
) ([]GetRevenueStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]GetRevenueStatisticsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			currency,
			COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(AVG(total_amount), 0)
		FROM orders
		WHERE payment_status IN (?, ?)
		  AND (?::timestamptz IS NULL OR created_at >= ?)
		  AND (?::timestamptz IS NULL OR created_at <= ?)
		GROUP BY currency
		ORDER BY currency
	`,
		order.PaymentPaid.String(),
		order.PaymentPartiallyRefunded.String(),
		nullableTime(query.From()), nullableTime(query.From()),
		nullableTime(query.To()), nullableTime(query.To()),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRevenueStatisticsQueryResponse

		err = rows.Scan(
			&resp.Currency,
			&resp.OrderCount,
			&resp.TotalRevenue,
			&resp.AverageOrderValue,
		)
		if err != nil {
			return nil, err
		}

		stats = append(stats, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// nullableTime maps a zero time to SQL NULL so the period filter collapses
// to always-true for unbounded ends.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
