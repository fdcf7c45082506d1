//go:build unit

package transfer_test

import (
	"testing"

	"transfer-engine/internal/domain/transfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTime(t *testing.T) {
	t.Run("parses 24-hour times", func(t *testing.T) {
		cases := []struct {
			input  string
			hour   int
			minute int
		}{
			{"00:00", 0, 0},
			{"09:05", 9, 5},
			{"9:05", 9, 5},
			{"23:59", 23, 59},
		}
		for _, tc := range cases {
			ct, err := transfer.NewClockTime(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.hour, ct.Hour())
			assert.Equal(t, tc.minute, ct.Minute())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, bad := range []string{"", "24:00", "12:60", "12", "12:5", "ab:cd", "12:30:00", "-1:00"} {
			_, err := transfer.NewClockTime(bad)
			assert.ErrorIs(t, err, transfer.ErrInvalidClockTime, "input %q", bad)
		}
	})

	t.Run("formats with leading zeros", func(t *testing.T) {
		assert.Equal(t, "09:05", transfer.MustClockTime("9:05").String())
	})
}

func TestHourInterval(t *testing.T) {
	t.Run("same-day interval is inclusive at both ends", func(t *testing.T) {
		iv := transfer.NewHourInterval(transfer.MustClockTime("07:00"), transfer.MustClockTime("09:00"))
		assert.False(t, iv.Contains(6))
		assert.True(t, iv.Contains(7))
		assert.True(t, iv.Contains(8))
		assert.True(t, iv.Contains(9))
		assert.False(t, iv.Contains(10))
	})

	t.Run("overnight interval wraps midnight", func(t *testing.T) {
		iv := transfer.NewHourInterval(transfer.MustClockTime("22:00"), transfer.MustClockTime("06:00"))
		assert.True(t, iv.Contains(22))
		assert.True(t, iv.Contains(23))
		assert.True(t, iv.Contains(0))
		assert.True(t, iv.Contains(2))
		assert.True(t, iv.Contains(6))
		assert.False(t, iv.Contains(7))
		assert.False(t, iv.Contains(12))
		assert.False(t, iv.Contains(21))
	})
}

func TestParseDate(t *testing.T) {
	d, err := transfer.ParseDate("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	_, err = transfer.ParseDate("03/06/2024")
	assert.ErrorIs(t, err, transfer.ErrInvalidDate)
}
