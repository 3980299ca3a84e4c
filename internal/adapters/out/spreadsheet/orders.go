// Package spreadsheet reads customer import files and writes order exports
// in the .xlsx format staff open in Excel.
package spreadsheet

import (
	"fmt"
	"io"
	"time"

	"snackshop/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const ordersSheet = "주문"

var orderHeaders = []string{
	"주문번호", "주문일시", "고객명", "연락처", "우편번호", "주소", "상세주소",
	"받는분", "받는분 연락처", "받는분 주소", "입금자명",
	"소박스", "대박스", "보자기", "배송비", "할인", "결제금액", "실입금액",
	"주문상태", "결제상태", "발송예정일", "배송완료일",
	"원가", "순이익", "요청사항",
}

// WriteOrders writes one row per order under a bold header row.
func WriteOrders(w io.Writer, orders []queries.OrderView) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), ordersSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &orderHeaders); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(orderHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ordersSheet, "A1", last, bold); err != nil {
		return err
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := orderRow(o)
		if err := f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetPanes(ordersSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func orderRow(o queries.OrderView) []any {
	var totalCost, netProfit any
	if o.Costs != nil {
		totalCost, netProfit = o.Costs.TotalCost, o.Costs.NetProfit
	}

	return []any{
		o.OrderNumber,
		o.CreatedAt.In(seoul).Format("2006-01-02 15:04"),
		o.CustomerName,
		o.Phone,
		o.PostalCode,
		o.Address1,
		o.Address2,
		o.RecipientName,
		o.RecipientPhone,
		joinAddress(o.RecipientAddress1, o.RecipientAddress2),
		o.DepositorName,
		o.SmallBoxQuantity,
		o.LargeBoxQuantity,
		o.WrappingQuantity,
		o.ShippingFee,
		o.DiscountAmount,
		o.TotalAmount,
		optionalInt(o.ActualPaidAmount),
		o.Status,
		o.PaymentStatus,
		date(o.ScheduledDate),
		date(o.DeliveredDate),
		totalCost,
		netProfit,
		o.SpecialRequests,
	}
}

var seoul = time.FixedZone("KST", 9*60*60)

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func optionalInt(v *int64) any {
	if v == nil {
		return ""
	}
	return *v
}

func joinAddress(line1, line2 string) string {
	if line2 == "" {
		return line1
	}
	return line1 + " " + line2
}
