package queries

import "snackshop/internal/pkg/errs"

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// NewPage fills defaults for zero values and rejects out of range values.
func NewPage(number, size int) (Page, error) {
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if number < 1 {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, "unbounded")
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("pageSize", size, 1, MaxPageSize)
	}
	return Page{Number: number, Size: size}, nil
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }
