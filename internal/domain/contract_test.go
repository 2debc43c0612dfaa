package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalCost(t *testing.T) {
	// Both the start and the end day are billed.
	cost := RentalCost(decimal.NewFromInt(50), 5, 7)
	assert.True(t, cost.Equal(decimal.NewFromInt(150)), "got %s", cost)

	oneDay := RentalCost(decimal.NewFromInt(50), 5, 5)
	assert.True(t, oneDay.Equal(decimal.NewFromInt(50)), "got %s", oneDay)

	fractional := RentalCost(decimal.RequireFromString("12.50"), 0, 3)
	assert.True(t, fractional.Equal(decimal.NewFromInt(50)), "got %s", fractional)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd int
		want                           bool
	}{
		{"Disjoint Before", 1, 3, 5, 7, false},
		{"Disjoint After", 8, 10, 5, 7, false},
		{"Touching End", 7, 9, 5, 7, true},
		{"Touching Start", 3, 5, 5, 7, true},
		{"Contained", 6, 6, 5, 7, true},
		{"Containing", 4, 8, 5, 7, true},
		{"Identical", 5, 7, 5, 7, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
		})
	}
}

func TestContract_DueOn(t *testing.T) {
	c := Contract{StartDay: 5, EndDay: 7, Status: ContractStatusActive}
	assert.False(t, c.DueOn(6))
	assert.True(t, c.DueOn(7))
	assert.True(t, c.DueOn(100))

	c.Status = ContractStatusProcessed
	assert.False(t, c.DueOn(100))
}

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory("  tool ")
	require.NoError(t, err)
	assert.Equal(t, ItemCategoryTool, cat)

	cat, err = ParseCategory("VEHICLE")
	require.NoError(t, err)
	assert.Equal(t, ItemCategoryVehicle, cat)

	_, err = ParseCategory("spaceship")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseCategory("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
