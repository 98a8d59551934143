package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerceDecimal(t *testing.T) {
	cases := []struct {
		name string
		cell string
		want string
	}{
		{"plain number", "1234.5", "1234.5"},
		{"thousands separator", "1,234.5", "1234.5"},
		{"surrounding whitespace", "  42 ", "42"},
		{"empty cell", "", "0"},
		{"whitespace only", "   ", "0"},
		{"formula marker", "=D2*F2", "0"},
		{"garbage", "three bags", "0"},
		{"negative", "-15.25", "-15.25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := coerceDecimal(tc.cell)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"coerceDecimal(%q) = %s, want %s", tc.cell, got, tc.want)
		})
	}
}

func TestCoerceDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 13, 45, 12, 0, time.UTC)

	t.Run("valid date", func(t *testing.T) {
		got := coerceDate("2023-12-01", now)
		assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("empty falls back to today", func(t *testing.T) {
		got := coerceDate("", now)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("malformed falls back to today", func(t *testing.T) {
		got := coerceDate("15/03/2024", now)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestIsBlankRow(t *testing.T) {
	assert.True(t, isBlankRow(nil))
	assert.True(t, isBlankRow([]string{"", "  ", "\t"}))
	assert.False(t, isBlankRow([]string{"", "Acme", ""}))
}
