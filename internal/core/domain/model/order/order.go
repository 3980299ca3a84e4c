package order

import (
	"errors"
	"fmt"
	"time"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/pricing"
	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/domain/model/trash"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is one customer purchase. It is the aggregate root for the customer
// details, the priced quantities, the staff cost snapshot and both state
// machines.
//
// Order follows these invariants:
//   - Details are valid and contain at least one box
//   - TotalAmount equals the pricing of the quantities minus the discount
//   - NetProfit is derived from total, actual paid amount, cost and shipping
//   - DeliveredDate is only set while the status is delivered
//   - SellerShippedDate is only set while the seller-shipped flag is on
//
// The id and version are assigned by the repository. Every successful update
// bumps the version and stale versions are rejected as conflicts.
type Order struct {
	id      int64
	version int64
	number  Number

	details      Details
	passwordHash kernel.PasswordHash
	ownerID      *int64

	shippingFee      int64
	totalAmount      int64
	actualPaidAmount *int64
	discountAmount   int64
	discountReason   string

	costs     pricing.CostSnapshot
	totalCost int64
	netProfit int64

	status             Status
	paymentStatus      PaymentStatus
	paymentConfirmedAt *time.Time

	scheduledDate     *time.Time
	sellerShipped     bool
	sellerShippedDate *time.Time
	deliveredDate     *time.Time

	createdAt time.Time
	updatedAt time.Time

	trash.State

	guard guard.ConstructorGuard
}

// Placement is the input of NewOrder.
type Placement struct {
	Number  Number
	Details Details

	// Password lets an anonymous customer reopen the order. Optional.
	Password string

	// OwnerID is set when a logged-in user places the order.
	OwnerID *int64

	Pricing settings.Pricing

	// SubmittedTotal is the total the form displayed. When present it must
	// match the recomputed total.
	SubmittedTotal *int64

	PlacedAt time.Time
}

// NewOrder validates a placement and prices it with the given settings.
// The order starts pending on both machines.
//
// Example:
//
//	o, err := order.NewOrder(order.Placement{
//	    Number:   order.NewNumber(now),
//	    Details:  details,
//	    Pricing:  settings.DefaultPricing(),
//	    PlacedAt: now,
//	})
func NewOrder(p Placement) (*Order, error) {
	if p.Number == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	details := p.Details.Normalize()
	if err := details.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		number:        p.Number,
		details:       details,
		ownerID:       p.OwnerID,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     p.PlacedAt,
		updatedAt:     p.PlacedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if p.Password != "" {
		hash, err := kernel.NewPasswordHash(p.Password)
		if err != nil {
			return nil, err
		}
		o.passwordHash = hash
	}

	if err := o.reprice(p.Pricing, p.SubmittedTotal); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the flat persisted form of an Order.
type Snapshot struct {
	ID      int64
	Version int64
	Number  Number

	Details      Details
	PasswordHash kernel.PasswordHash
	OwnerID      *int64

	ShippingFee      int64
	TotalAmount      int64
	ActualPaidAmount *int64
	DiscountAmount   int64
	DiscountReason   string

	Costs     pricing.CostSnapshot
	TotalCost int64
	NetProfit int64

	Status             Status
	PaymentStatus      PaymentStatus
	PaymentConfirmedAt *time.Time

	ScheduledDate     *time.Time
	SellerShipped     bool
	SellerShippedDate *time.Time
	DeliveredDate     *time.Time

	IsDeleted bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder rebuilds an order loaded from storage. Stored totals are kept
// as they are; only enumerations are checked.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(s.Status.Validate(), s.PaymentStatus.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                 s.ID,
		version:            s.Version,
		number:             s.Number,
		details:            s.Details,
		passwordHash:       s.PasswordHash,
		ownerID:            s.OwnerID,
		shippingFee:        s.ShippingFee,
		totalAmount:        s.TotalAmount,
		actualPaidAmount:   s.ActualPaidAmount,
		discountAmount:     s.DiscountAmount,
		discountReason:     s.DiscountReason,
		costs:              s.Costs,
		totalCost:          s.TotalCost,
		netProfit:          s.NetProfit,
		status:             s.Status,
		paymentStatus:      s.PaymentStatus,
		paymentConfirmedAt: s.PaymentConfirmedAt,
		scheduledDate:      s.ScheduledDate,
		sellerShipped:      s.SellerShipped,
		sellerShippedDate:  s.SellerShippedDate,
		deliveredDate:      s.DeliveredDate,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		State:              trash.RestoreState(s.IsDeleted, s.DeletedAt),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Snapshot exports the current state for persistence and read models.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                 o.id,
		Version:            o.version,
		Number:             o.number,
		Details:            o.details,
		PasswordHash:       o.passwordHash,
		OwnerID:            o.ownerID,
		ShippingFee:        o.shippingFee,
		TotalAmount:        o.totalAmount,
		ActualPaidAmount:   o.actualPaidAmount,
		DiscountAmount:     o.discountAmount,
		DiscountReason:     o.discountReason,
		Costs:              o.costs,
		TotalCost:          o.totalCost,
		NetProfit:          o.netProfit,
		Status:             o.status,
		PaymentStatus:      o.paymentStatus,
		PaymentConfirmedAt: o.paymentConfirmedAt,
		ScheduledDate:      o.scheduledDate,
		SellerShipped:      o.sellerShipped,
		SellerShippedDate:  o.sellerShippedDate,
		DeliveredDate:      o.deliveredDate,
		IsDeleted:          o.IsDeleted(),
		DeletedAt:          o.DeletedAt(),
		CreatedAt:          o.createdAt,
		UpdatedAt:          o.updatedAt,
	}
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() int64                         { return o.id }
func (o *Order) Version() int64                    { return o.version }
func (o *Order) Number() Number                    { return o.number }
func (o *Order) Details() Details                  { return o.details }
func (o *Order) PasswordHash() kernel.PasswordHash { return o.passwordHash }
func (o *Order) OwnerID() *int64                   { return o.ownerID }
func (o *Order) ShippingFee() int64                { return o.shippingFee }
func (o *Order) TotalAmount() int64                { return o.totalAmount }
func (o *Order) ActualPaidAmount() *int64          { return o.actualPaidAmount }
func (o *Order) DiscountAmount() int64             { return o.discountAmount }
func (o *Order) DiscountReason() string            { return o.discountReason }
func (o *Order) TotalCost() int64                  { return o.totalCost }
func (o *Order) NetProfit() int64                  { return o.netProfit }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) PaymentStatus() PaymentStatus      { return o.paymentStatus }
func (o *Order) PaymentConfirmedAt() *time.Time    { return o.paymentConfirmedAt }
func (o *Order) ScheduledDate() *time.Time         { return o.scheduledDate }
func (o *Order) SellerShipped() bool               { return o.sellerShipped }
func (o *Order) SellerShippedDate() *time.Time     { return o.sellerShippedDate }
func (o *Order) DeliveredDate() *time.Time         { return o.deliveredDate }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
func (o *Order) UpdatedAt() time.Time              { return o.updatedAt }

// IsOwnedBy reports whether userID placed the order while logged in.
func (o *Order) IsOwnedBy(userID int64) bool {
	return o.ownerID != nil && *o.ownerID == userID
}

// MarkPersisted records the identity and version written by the repository.
func (o *Order) MarkPersisted(id, version int64) {
	o.id = id
	o.version = version
}

// EnsureCustomerEditable returns a ConflictError once the order left the
// state in which its customer may change or cancel it.
func (o *Order) EnsureCustomerEditable() error {
	if o.IsDeleted() {
		return errs.NewConflictError("order", "is in trash")
	}
	if o.status != StatusPending || o.paymentStatus != PaymentPending {
		return errs.NewConflictError("order", "is no longer editable")
	}
	return nil
}

// EditDetails replaces the customer details and reprices the order with the
// current settings. Editability is decided by the caller's access policy;
// staff may edit in any state.
func (o *Order) EditDetails(details Details, p settings.Pricing, submittedTotal *int64, now time.Time) error {
	if o.IsDeleted() {
		return errs.NewConflictError("order", "is in trash")
	}

	details = details.Normalize()
	if err := details.Validate(); err != nil {
		return err
	}

	previous := o.details
	o.details = details
	if err := o.reprice(p, submittedTotal); err != nil {
		o.details = previous
		return err
	}

	o.updatedAt = now
	return nil
}

// ChangeStatus moves the order to next on behalf of a staff role. It reports
// whether anything changed; re-applying the current status is a no-op.
//
// Side effects:
//   - entering Delivered stamps the delivered date when unset
//   - leaving Delivered clears the delivered date
//   - entering SellerShipped turns on the seller-shipped flag and stamps its date
func (o *Order) ChangeStatus(next Status, role user.Role, now time.Time) (bool, error) {
	if !role.IsStaff() {
		return false, errs.NewForbiddenError("change order status")
	}
	if err := next.Validate(); err != nil {
		return false, err
	}
	if next == StatusDelivered && !role.CanSetDelivered() {
		return false, errs.NewForbiddenError(fmt.Sprintf("set status %s as %s", next, role))
	}
	if o.IsDeleted() {
		return false, errs.NewConflictError("order", "is in trash")
	}
	if next == o.status {
		return false, nil
	}

	if next == StatusDelivered && o.deliveredDate == nil {
		o.deliveredDate = &now
	}
	if next != StatusDelivered {
		o.deliveredDate = nil
	}
	if next == StatusSellerShipped && !o.sellerShipped {
		o.sellerShipped = true
		if o.sellerShippedDate == nil {
			o.sellerShippedDate = &now
		}
	}

	o.status = next
	o.updatedAt = now
	return true, nil
}

// ChangePaymentStatus moves the payment machine. It reports whether anything
// changed.
func (o *Order) ChangePaymentStatus(next PaymentStatus, role user.Role, now time.Time) (bool, error) {
	if !role.IsStaff() {
		return false, errs.NewForbiddenError("change payment status")
	}
	if o.IsDeleted() {
		return false, errs.NewConflictError("order", "is in trash")
	}
	if err := o.paymentStatus.ValidateTransition(next); err != nil {
		return false, err
	}
	if next == o.paymentStatus {
		return false, nil
	}

	switch next {
	case PaymentConfirmed:
		o.paymentConfirmedAt = &now
	case PaymentPending:
		o.paymentConfirmedAt = nil
	}

	o.paymentStatus = next
	o.updatedAt = now
	return true, nil
}

// UpdateFulfillment applies staff date edits. All checks run against the
// resulting state before anything is written, so a rejected change leaves
// the order untouched.
func (o *Order) UpdateFulfillment(f Fulfillment, role user.Role, now time.Time) error {
	if !role.IsStaff() {
		return errs.NewForbiddenError("change fulfillment dates")
	}
	if o.IsDeleted() {
		return errs.NewConflictError("order", "is in trash")
	}

	sellerShipped := o.sellerShipped
	if f.SellerShipped != nil {
		sellerShipped = *f.SellerShipped
	}

	sellerShippedDate := f.SellerShippedDate.apply(o.sellerShippedDate)
	switch {
	case !sellerShipped:
		if f.SellerShippedDate.IsSet() {
			return errs.NewConflictError("order", "cannot set seller shipped date before marking it seller shipped")
		}
		sellerShippedDate = nil
	case sellerShippedDate == nil && !f.SellerShippedDate.IsPresent() && !o.sellerShipped:
		sellerShippedDate = &now
	}

	deliveredDate := f.DeliveredDate.apply(o.deliveredDate)
	if f.DeliveredDate.IsSet() && o.status != StatusDelivered {
		return errs.NewConflictError("order", "cannot set delivered date before it is delivered")
	}

	o.scheduledDate = f.ScheduledDate.apply(o.scheduledDate)
	o.sellerShipped = sellerShipped
	o.sellerShippedDate = sellerShippedDate
	o.deliveredDate = deliveredDate
	o.updatedAt = now
	return nil
}

// ApplyDiscount sets the staff discount and reason. The discount applies to
// the already priced gross amount.
func (o *Order) ApplyDiscount(amount int64, reason string, role user.Role, now time.Time) error {
	if !role.IsStaff() {
		return errs.NewForbiddenError("apply discount")
	}
	if o.IsDeleted() {
		return errs.NewConflictError("order", "is in trash")
	}

	gross := o.totalAmount + o.discountAmount
	if amount < 0 || amount > gross {
		return errs.NewValueIsOutOfRangeError("discountAmount", amount, 0, gross)
	}
	if amount > 0 && reason == "" {
		return errs.NewValueIsRequiredError("discountReason")
	}

	o.discountAmount = amount
	o.discountReason = reason
	o.totalAmount = gross - amount
	o.recomputeProfit()
	o.updatedAt = now
	return nil
}

// RecordActualPaid stores what the customer actually transferred. nil
// removes the record and profit falls back to the billed total.
func (o *Order) RecordActualPaid(amount *int64, role user.Role, now time.Time) error {
	if !role.IsStaff() {
		return errs.NewForbiddenError("record paid amount")
	}
	if amount != nil && *amount < 0 {
		return errs.NewValueIsOutOfRangeError("actualPaidAmount", *amount, 0, "unbounded")
	}
	if amount != nil {
		v := *amount
		amount = &v
	}

	o.actualPaidAmount = amount
	o.recomputeProfit()
	o.updatedAt = now
	return nil
}

// Cancel moves an order to trash on behalf of its customer.
func (o *Order) Cancel(now time.Time) error {
	if err := o.EnsureCustomerEditable(); err != nil {
		return err
	}
	return o.MoveToTrash(now)
}

func (o *Order) reprice(p settings.Pricing, submittedTotal *int64) error {
	q := o.details.Quantities

	var (
		quote pricing.Quote
		err   error
	)
	if submittedTotal != nil {
		quote, err = pricing.Verify(q, p, o.discountAmount, *submittedTotal)
	} else {
		quote, err = pricing.Calculate(q, p, o.discountAmount)
	}
	if err != nil {
		return err
	}

	o.shippingFee = quote.ShippingFee
	o.totalAmount = quote.Total
	o.costs = pricing.SnapshotCosts(p)
	o.totalCost = o.costs.TotalCost(q)
	o.recomputeProfit()
	return nil
}

func (o *Order) recomputeProfit() {
	o.netProfit = pricing.NetProfit(o.totalAmount, o.actualPaidAmount, o.totalCost, o.shippingFee)
}
