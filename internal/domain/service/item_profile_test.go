package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"negobot/internal/domain/entity"
)

func TestProfileItemFromDescription(t *testing.T) {
	item := &entity.Item{
		Description: "Well maintained mountain bike. Small scratch on the frame. Original receipt included. Pickup only in Jakarta.",
	}

	profile := ProfileItem(item)

	assert.Equal(t, "Good condition", profile.Condition)
	assert.Equal(t, "Small scratch on the frame", profile.KnownFlaws)
	assert.Equal(t, "Original receipt included", profile.SellingPoints)
	assert.Equal(t, "Pickup available", profile.DeliveryInfo)
}

func TestProfileItemExplicitConditionWins(t *testing.T) {
	item := &entity.Item{
		Description: "Like new, barely used.",
		Condition:   "Refurbished",
	}

	assert.Equal(t, "Refurbished", ProfileItem(item).Condition)
}

func TestProfileItemFallbacks(t *testing.T) {
	profile := ProfileItem(&entity.Item{Description: "A bicycle."})

	assert.Equal(t, "Used condition", profile.Condition)
	assert.Equal(t, "No major flaws mentioned", profile.KnownFlaws)
	assert.Equal(t, "Good quality item", profile.SellingPoints)
	assert.Equal(t, "Contact seller for delivery options", profile.DeliveryInfo)
}

func TestProfileItemIndonesianIndicators(t *testing.T) {
	item := &entity.Item{
		Description: "Kondisi baik, ada sedikit lecet. Barang asli dan lengkap. Bisa kirim ke seluruh Indonesia.",
	}

	profile := ProfileItem(item)

	assert.Equal(t, "Kondisi baik", profile.Condition)
	assert.Contains(t, profile.KnownFlaws, "lecet")
	assert.Contains(t, profile.SellingPoints, "asli")
	assert.Equal(t, "Shipping/delivery available", profile.DeliveryInfo)
}
