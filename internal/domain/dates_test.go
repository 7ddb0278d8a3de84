package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-06-10", "2025-06-10"},
		{"10.06.2025", "2025-06-10"},
		{"2025-06-10T08:30:00Z", "2025-06-10"},
		{"2025-06-10T08:30:00", "2025-06-10"},
		{"1749513600000", "2025-06-10"}, // epoch millis
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFlexibleDate(tc.in)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, FormatDate(got))
			// Normalized to day granularity.
			assert.Equal(t, 0, got.Hour())
			assert.Equal(t, 0, got.Minute())
		})
	}
}

func TestParseFlexibleDateEmpty(t *testing.T) {
	got, err := ParseFlexibleDate("   ")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseFlexibleDateInvalid(t *testing.T) {
	for _, in := range []string{"next tuesday", "2025-13-01", "31.02", "-5"} {
		_, err := ParseFlexibleDate(in)
		assert.Error(t, err, in)
	}
}

func TestFormatDateUA(t *testing.T) {
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01.06.2025", FormatDateUA(&d))
	assert.Equal(t, "", FormatDateUA(nil))
}
