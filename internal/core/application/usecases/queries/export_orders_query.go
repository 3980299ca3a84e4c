package queries

import (
	"context"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// MaxExportRows bounds a single spreadsheet export.
const MaxExportRows = 10000

// ExportOrdersQueryHandler returns every order matching a filter, oldest
// first, for the spreadsheet export.
type ExportOrdersQueryHandler struct {
	db *gorm.DB
}

func NewExportOrdersQueryHandler(db *gorm.DB) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{db: db}
}

func (h ExportOrdersQueryHandler) Handle(ctx context.Context, actor access.Actor, filter OrderFilter) ([]OrderView, error) {
	if _, err := access.RequireStaff(actor); err != nil {
		return nil, err
	}

	var total int64
	if err := filter.apply(h.db.WithContext(ctx).Table("orders")).Count(&total).Error; err != nil {
		return nil, err
	}
	if total > MaxExportRows {
		return nil, errs.NewValueIsOutOfRangeError("export rows", total, 0, MaxExportRows)
	}

	var rows []orderRow
	err := filter.apply(h.db.WithContext(ctx).Table("orders")).
		Select(orderColumns).
		Order("created_at, id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.view(true))
	}
	return items, nil
}
