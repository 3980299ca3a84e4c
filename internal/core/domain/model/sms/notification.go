package sms

import (
	"strings"
	"time"
	"unicode/utf8"

	"snackshop/internal/pkg/errs"
)

// MessageMaxLength is the LMS limit in characters.
const MessageMaxLength = 2000

// Message is a composed text ready for dispatch.
type Message struct {
	OrderID int64
	Phone   string
	Text    string
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.Phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	n := utf8.RuneCountInString(strings.TrimSpace(m.Text))
	if n == 0 {
		return errs.NewValueIsRequiredError("message")
	}
	if n > MessageMaxLength {
		return errs.NewValueIsOutOfRangeError("message length", n, 1, MessageMaxLength)
	}
	return nil
}

// Notification is one logged dispatch attempt. Rows are never updated.
type Notification struct {
	ID        int64
	OrderID   int64
	Phone     string
	Message   string
	SentAt    time.Time
	Succeeded bool
	Error     string
}

// Attempt builds the log row for a dispatch of m that ended with err.
func Attempt(m Message, sentAt time.Time, err error) Notification {
	n := Notification{
		OrderID:   m.OrderID,
		Phone:     m.Phone,
		Message:   m.Text,
		SentAt:    sentAt,
		Succeeded: err == nil,
	}
	if err != nil {
		n.Error = err.Error()
	}
	return n
}
