package sms_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Validate(t *testing.T) {
	require.NoError(t, sms.Message{Phone: "01011112222", Text: "안녕하세요"}.Validate())
	require.ErrorIs(t, sms.Message{Text: "x"}.Validate(), errs.ErrValueIsRequired)
	require.ErrorIs(t, sms.Message{Phone: "01011112222", Text: "  "}.Validate(), errs.ErrValueIsRequired)

	long := sms.Message{Phone: "01011112222", Text: strings.Repeat("가", sms.MessageMaxLength+1)}
	require.ErrorIs(t, long.Validate(), errs.ErrValueIsOutOfRange)
}

func TestAttempt(t *testing.T) {
	at := time.Date(2024, 12, 24, 8, 0, 0, 0, time.UTC)
	m := sms.Message{OrderID: 3, Phone: "01011112222", Text: "hi"}

	ok := sms.Attempt(m, at, nil)
	assert.True(t, ok.Succeeded)
	assert.Empty(t, ok.Error)
	assert.Equal(t, int64(3), ok.OrderID)

	failed := sms.Attempt(m, at, errors.New("broker down"))
	assert.False(t, failed.Succeeded)
	assert.Equal(t, "broker down", failed.Error)
}

func TestParseTemplate(t *testing.T) {
	tpl, err := sms.ParseTemplate("Payment_Confirmed")
	require.NoError(t, err)
	assert.Equal(t, sms.TemplatePaymentConfirmed, tpl)

	_, err = sms.ParseTemplate("promo")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
