package order

import "time"

// DateChange is a tri-state edit of an optional date: leave it alone, clear
// it, or set it. The zero value keeps the current date.
type DateChange struct {
	present bool
	value   *time.Time
}

func KeepDate() DateChange {
	return DateChange{}
}

func ClearDate() DateChange {
	return DateChange{present: true}
}

func SetDate(t time.Time) DateChange {
	return DateChange{present: true, value: &t}
}

// IsPresent reports whether the change touches the field at all.
func (c DateChange) IsPresent() bool {
	return c.present
}

// IsSet reports whether the change assigns a value.
func (c DateChange) IsSet() bool {
	return c.present && c.value != nil
}

// IsClear reports whether the change removes the value.
func (c DateChange) IsClear() bool {
	return c.present && c.value == nil
}

func (c DateChange) apply(current *time.Time) *time.Time {
	if !c.present {
		return current
	}
	if c.value == nil {
		return nil
	}
	v := *c.value
	return &v
}

// Fulfillment groups the staff-editable dates.
type Fulfillment struct {
	ScheduledDate DateChange

	// SellerShipped nil keeps the flag. Clearing the flag clears its date.
	SellerShipped     *bool
	SellerShippedDate DateChange

	DeliveredDate DateChange
}
