package pricing

import "snackshop/internal/core/domain/model/settings"

// CostSnapshot freezes the unit costs at the time an order is priced so
// later settings changes do not rewrite historical profit.
type CostSnapshot struct {
	SmallBoxCost int64
	LargeBoxCost int64
	WrappingCost int64
}

func SnapshotCosts(p settings.Pricing) CostSnapshot {
	return CostSnapshot{
		SmallBoxCost: p.SmallBoxCost,
		LargeBoxCost: p.LargeBoxCost,
		WrappingCost: p.WrappingCost,
	}
}

// TotalCost is the sum of unit costs times quantities.
func (c CostSnapshot) TotalCost(q Quantities) int64 {
	return int64(q.SmallBoxes)*c.SmallBoxCost +
		int64(q.LargeBoxes)*c.LargeBoxCost +
		int64(q.Wrappings)*c.WrappingCost
}

// NetProfit subtracts cost and the shipping fee from revenue. Revenue is the
// amount actually paid once recorded, else the billed total.
func NetProfit(total int64, actualPaid *int64, totalCost, shippingFee int64) int64 {
	revenue := total
	if actualPaid != nil {
		revenue = *actualPaid
	}
	return revenue - totalCost - shippingFee
}
