package smsqueue_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"snackshop/internal/adapters/out/smsqueue"
	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_Send(t *testing.T) {
	var buf bytes.Buffer
	n := smsqueue.NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := n.Send(context.Background(), sms.Message{OrderID: 4, Phone: "010-1234-5678", Text: "입금 확인되었습니다"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"orderId":4`)
	assert.Contains(t, buf.String(), `"component":"sms-log"`)
}

func TestLogNotifier_RejectsEmptyMessage(t *testing.T) {
	n := smsqueue.NewLogNotifier(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	err := n.Send(context.Background(), sms.Message{OrderID: 4, Phone: "010-1234-5678"})

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
