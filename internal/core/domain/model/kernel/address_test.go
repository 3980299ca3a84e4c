package kernel_test

import (
	"testing"

	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("full address", func(t *testing.T) {
		a, err := kernel.NewAddress("03154", "서울 종로구 세종대로 175", "2층")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "03154", a.PostalCode())
		assert.True(t, a.HasPostalCode())
		assert.Equal(t, "(03154) 서울 종로구 세종대로 175 2층", a.String())
	})

	t.Run("postal code is optional", func(t *testing.T) {
		a, err := kernel.NewAddress("", "부산 해운대구 우동 1", "")

		require.NoError(t, err)
		assert.False(t, a.HasPostalCode())
		assert.Equal(t, "부산 해운대구 우동 1", a.String())
	})

	t.Run("first line is required", func(t *testing.T) {
		_, err := kernel.NewAddress("03154", "  ", "2층")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("postal code must be five digits", func(t *testing.T) {
		for _, code := range []string{"1234", "123456", "12a45"} {
			_, err := kernel.NewAddress(code, "line", "")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, code)
		}
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewAddress("03154", "세종대로 175", "2층")
	b, _ := kernel.NewAddress("03154", "세종대로 175", "3층")
	c, _ := kernel.NewAddress("03155", "세종대로 175", "2층")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
