package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"snackshop/internal/pkg/errs"

	"github.com/google/uuid"
)

const numberPrefix = "HG"

var numberPattern = regexp.MustCompile(`^HG-\d{6}-[0-9A-F]{8}$`)

// Number is the order number shown to customers, for example
// "HG-241031-9F86D081". The middle part is the placement date.
type Number string

// NewNumber builds a number for an order placed at now. The suffix comes from
// a random UUID; uniqueness is finally enforced by the database index.
func NewNumber(now time.Time) Number {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return Number(fmt.Sprintf("%s-%s-%s", numberPrefix, now.Format("060102"), suffix))
}

// ParseNumber validates a number received from a client or storage.
func ParseNumber(s string) (Number, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !numberPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("orderNumber", fmt.Errorf("%q has an unexpected format", s))
	}
	return Number(s), nil
}

func (n Number) String() string {
	return string(n)
}
