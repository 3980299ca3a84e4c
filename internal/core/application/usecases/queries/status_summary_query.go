package queries

import (
	"context"

	"snackshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// StatusSummaryRow aggregates active orders of one fulfillment stage.
type StatusSummaryRow struct {
	Status      string `json:"status"`
	Orders      int64  `json:"orders"`
	Unpaid      int64  `json:"unpaid"`
	TotalAmount int64  `json:"totalAmount"`
	NetProfit   int64  `json:"netProfit"`
}

// StatusSummaryQueryHandler powers the operator CLI overview. Stages without
// orders are reported with zeros so the table always has every row.
type StatusSummaryQueryHandler struct {
	db *gorm.DB
}

func NewStatusSummaryQueryHandler(db *gorm.DB) StatusSummaryQueryHandler {
	return StatusSummaryQueryHandler{db: db}
}

func (h StatusSummaryQueryHandler) Handle(ctx context.Context) ([]StatusSummaryRow, error) {
	var found []StatusSummaryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			count(*) AS orders,
			count(*) FILTER (WHERE payment_status = ?) AS unpaid,
			coalesce(sum(total_amount), 0) AS total_amount,
			coalesce(sum(net_profit), 0) AS net_profit
		FROM orders
		WHERE is_deleted = false
		GROUP BY status
	`, order.PaymentPending.String()).Scan(&found).Error
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]StatusSummaryRow, len(found))
	for _, r := range found {
		byStatus[r.Status] = r
	}

	rows := make([]StatusSummaryRow, 0, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		r, ok := byStatus[s.String()]
		if !ok {
			r = StatusSummaryRow{Status: s.String()}
		}
		rows = append(rows, r)
	}
	return rows, nil
}
