//go:build unit

package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-checkout/internal/usecase/shared"
)

func TestCouponTermsPayload(t *testing.T) {
	limit := int32(5)
	maxDiscount := int64(500)
	startsAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := &shared.CouponSnapshot{
		ID:               uuid.New(),
		Code:             "WELCOME10",
		DiscountType:     "percentage",
		DiscountValue:    10,
		MinAmountCents:   1000,
		MaxDiscountCents: &maxDiscount,
		StartsAt:         &startsAt,
		Status:           "active",
		Stackable:        true,
		UsageLimit:       &limit,
		UsedCount:        4,
		MaxUsagePerUser:  1,
	}

	t.Run("cached payload carries terms only, never the redemption counter", func(t *testing.T) {
		payload, err := json.Marshal(termsFromSnapshot(snap))
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(payload, &fields))
		assert.NotContains(t, fields, "usedCount")
		assert.NotContains(t, fields, "usageLimit")
		assert.Equal(t, "WELCOME10", fields["code"])
		assert.Equal(t, float64(10), fields["discountValue"])
	})

	t.Run("a cache hit reports zero usage and keeps every term", func(t *testing.T) {
		payload, err := json.Marshal(termsFromSnapshot(snap))
		require.NoError(t, err)

		var terms couponTerms
		require.NoError(t, json.Unmarshal(payload, &terms))

		restored := terms.toSnapshot()
		assert.Nil(t, restored.UsageLimit)
		assert.Zero(t, restored.UsedCount)
		assert.Equal(t, snap.ID, restored.ID)
		assert.Equal(t, snap.DiscountValue, restored.DiscountValue)
		assert.Equal(t, snap.MinAmountCents, restored.MinAmountCents)
		require.NotNil(t, restored.MaxDiscountCents)
		assert.Equal(t, maxDiscount, *restored.MaxDiscountCents)
		require.NotNil(t, restored.StartsAt)
		assert.True(t, restored.StartsAt.Equal(startsAt))
		assert.Equal(t, snap.MaxUsagePerUser, restored.MaxUsagePerUser)
	})
}
