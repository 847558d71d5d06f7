package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDateFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid date", "2026-06-01", true},
		{"valid leap day", "2024-02-29", true},
		{"day overflow rejected", "2026-02-31", false},
		{"month overflow rejected", "2026-13-01", false},
		{"wrong grouping", "2026-6-1", false},
		{"slashes", "2026/06/01", false},
		{"empty", "", false},
		{"datetime", "2026-06-01T00:00:00Z", false},
		{"trailing garbage", "2026-06-01x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDateFormat(tt.input))
		})
	}
}

func TestIsValidDateRange(t *testing.T) {
	assert.True(t, IsValidDateRange("2026-06-01", "2026-06-01"), "same-day trips are valid")
	assert.True(t, IsValidDateRange("2026-06-01", "2026-06-05"))
	assert.False(t, IsValidDateRange("2026-06-05", "2026-06-01"))
	assert.False(t, IsValidDateRange("not-a-date", "2026-06-01"))
	assert.False(t, IsValidDateRange("2026-06-01", "not-a-date"))
}

func TestIsPositiveNumber(t *testing.T) {
	assert.False(t, IsPositiveNumber(0))
	assert.False(t, IsPositiveNumber(-1))
	assert.False(t, IsPositiveNumber(math.NaN()))
	assert.True(t, IsPositiveNumber(5))
	assert.True(t, IsPositiveNumber(0.001))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jumper@example.com"))
	assert.False(t, IsValidEmail("jumper.example.com"))
	assert.False(t, IsValidEmail("jumper@example"))
	assert.False(t, IsValidEmail(""))
}

func TestIsNonEmptyString(t *testing.T) {
	assert.True(t, IsNonEmptyString("dz"))
	assert.False(t, IsNonEmptyString(""))
	assert.False(t, IsNonEmptyString("   "))
	assert.False(t, IsNonEmptyString("\t\n"))
}

func TestCoordinateBounds(t *testing.T) {
	assert.True(t, IsValidLongitude(-76.78))
	assert.False(t, IsValidLongitude(181))
	assert.False(t, IsValidLongitude(math.NaN()))
	assert.True(t, IsValidLatitude(42.62))
	assert.False(t, IsValidLatitude(-91))
}
