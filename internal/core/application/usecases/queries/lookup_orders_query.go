package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrLookupOrdersQueryIsNotConstructed = errors.New(
	"LookupOrdersQuery must be created via NewLookupOrdersQuery constructor",
)

// LookupOrdersQuery is the public "find my order" search. Either the phone
// or the name alone is enough; a row matches when either equals the stored
// value exactly.
type LookupOrdersQuery struct {
	phone string
	name  string

	guard guard.ConstructorGuard
}

func NewLookupOrdersQuery(phone, name string) (LookupOrdersQuery, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)
	if phone == "" && name == "" {
		return LookupOrdersQuery{}, errs.NewValueIsRequiredError("phone or name")
	}

	q := LookupOrdersQuery{name: name, guard: guard.NewConstructorGuard()}
	if phone != "" {
		p, err := kernel.NewPhone(phone)
		if err != nil {
			return LookupOrdersQuery{}, err
		}
		q.phone = p.String()
	}
	return q, nil
}

func (q LookupOrdersQuery) Validate() error {
	return q.guard.Validate(ErrLookupOrdersQueryIsNotConstructed)
}

// LookupOrdersQueryResponse is the minimum a customer needs to pick an order
// and then open it with its password.
type LookupOrdersQueryResponse struct {
	ID            int64     `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalAmount   int64     `json:"totalAmount"`
	HasPassword   bool      `json:"hasPassword"`
	CreatedAt     time.Time `json:"createdAt"`
}

type LookupOrdersQueryHandler struct {
	db *gorm.DB
}

func NewLookupOrdersQueryHandler(db *gorm.DB) LookupOrdersQueryHandler {
	return LookupOrdersQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when nothing matches.
func (h LookupOrdersQueryHandler) Handle(
	ctx context.Context,
	query LookupOrdersQuery,
) ([]LookupOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			status,
			payment_status,
			total_amount,
			password_hash <> '' AS has_password,
			created_at
		FROM orders
		WHERE is_deleted = false
		  AND ((? <> '' AND phone = ?) OR (? <> '' AND customer_name = ?))
		ORDER BY created_at DESC, id DESC
	`, query.phone, query.phone, query.name, query.name).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]LookupOrdersQueryResponse, 0)
	for rows.Next() {
		var r LookupOrdersQueryResponse
		if err := rows.Scan(
			&r.ID,
			&r.OrderNumber,
			&r.CustomerName,
			&r.Status,
			&r.PaymentStatus,
			&r.TotalAmount,
			&r.HasPassword,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, errs.NewObjectNotFoundError("orders matching", lookupKey(query))
	}
	return result, nil
}

func lookupKey(q LookupOrdersQuery) string {
	if q.phone != "" && q.name != "" {
		return q.phone + "/" + q.name
	}
	return q.phone + q.name
}
