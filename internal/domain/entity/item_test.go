package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItemDerivesDefaultBand(t *testing.T) {
	item, err := NewItem("MTR_001", "Vario 150", "Well maintained", 1000, 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, 850.0, item.TargetPrice)
	assert.Equal(t, 700.0, item.MinimumPrice)
	assert.True(t, item.IsActive)
	assert.Equal(t, 1, item.Stock)
}

func TestNewItemKeepsExplicitBand(t *testing.T) {
	item, err := NewItem("MTR_001", "Vario 150", "", 100, 85, 70)

	assert.NoError(t, err)
	assert.Equal(t, PriceBand{Minimum: 70, Target: 85, Listing: 100}, item.Band())
}

func TestNewItemValidation(t *testing.T) {
	tests := []struct {
		name                     string
		id, itemName             string
		listing, target, minimum float64
	}{
		{"missing id", "", "Bike", 100, 85, 70},
		{"missing name", "MTR_001", "", 100, 85, 70},
		{"negative listing", "MTR_001", "Bike", -1, 0, 0},
		{"minimum above target", "MTR_001", "Bike", 100, 70, 85},
		{"target above listing", "MTR_001", "Bike", 100, 120, 70},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewItem(tc.id, tc.itemName, "", tc.listing, tc.target, tc.minimum)
			assert.Error(t, err)
		})
	}
}
