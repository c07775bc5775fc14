package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"storefront-checkout/internal/usecase/shared"
)

const couponKeyPrefix = "coupon:code:"

// couponTerms is the cached shape: the coupon's configured terms without the
// redemption counter. used_count lives in Postgres only; a cache hit reports
// it as zero and the commit-time ledger enforces the real cap.
type couponTerms struct {
	ID               uuid.UUID  `json:"id"`
	Code             string     `json:"code"`
	DiscountType     string     `json:"discountType"`
	DiscountValue    float64    `json:"discountValue"`
	MinAmountCents   int64      `json:"minAmountCents"`
	MaxDiscountCents *int64     `json:"maxDiscountCents,omitempty"`
	StartsAt         *time.Time `json:"startsAt,omitempty"`
	EndsAt           *time.Time `json:"endsAt,omitempty"`
	Status           string     `json:"status"`
	Stackable        bool       `json:"stackable"`
	MaxUsagePerUser  int32      `json:"maxUsagePerUser"`
}

func termsFromSnapshot(snap *shared.CouponSnapshot) couponTerms {
	return couponTerms{
		ID:               snap.ID,
		Code:             snap.Code,
		DiscountType:     snap.DiscountType,
		DiscountValue:    snap.DiscountValue,
		MinAmountCents:   snap.MinAmountCents,
		MaxDiscountCents: snap.MaxDiscountCents,
		StartsAt:         snap.StartsAt,
		EndsAt:           snap.EndsAt,
		Status:           snap.Status,
		Stackable:        snap.Stackable,
		MaxUsagePerUser:  snap.MaxUsagePerUser,
	}
}

func (t couponTerms) toSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:               t.ID,
		Code:             t.Code,
		DiscountType:     t.DiscountType,
		DiscountValue:    t.DiscountValue,
		MinAmountCents:   t.MinAmountCents,
		MaxDiscountCents: t.MaxDiscountCents,
		StartsAt:         t.StartsAt,
		EndsAt:           t.EndsAt,
		Status:           t.Status,
		Stackable:        t.Stackable,
		MaxUsagePerUser:  t.MaxUsagePerUser,
	}
}

// CachedCommandReads fronts the coupon-terms lookup with Redis. Only the
// preview path uses it: commit always reads Postgres directly, so a stale
// cached coupon can at worst make a preview optimistic, never an order wrong.
// Every other read passes straight through.
type CachedCommandReads struct {
	inner shared.CommandReads
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedCommandReads(inner shared.CommandReads, rdb *redis.Client, ttl time.Duration) shared.CommandReads {
	return &CachedCommandReads{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedCommandReads) CartByCustomer(ctx context.Context, customerID uuid.UUID) (*shared.CartSnapshot, error) {
	return c.inner.CartByCustomer(ctx, customerID)
}

func (c *CachedCommandReads) ApplicableOffers(ctx context.Context, productIDs, categoryIDs []uuid.UUID) ([]shared.OfferSnapshot, error) {
	return c.inner.ApplicableOffers(ctx, productIDs, categoryIDs)
}

func (c *CachedCommandReads) CouponByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	key := couponKeyPrefix + strings.ToUpper(strings.TrimSpace(code))

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var terms couponTerms
		if unmarshalErr := json.Unmarshal([]byte(cached), &terms); unmarshalErr == nil {
			return terms.toSnapshot(), nil
		}
		// Poisoned entry; drop it and fall through to the source read
		c.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		slog.Debug("coupon cache read failed", "error", err.Error())
	}

	snap, err := c.inner.CouponByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(termsFromSnapshot(snap)); marshalErr == nil {
		if setErr := c.rdb.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			slog.Debug("coupon cache write failed", "error", setErr.Error())
		}
	}

	return snap, nil
}

func (c *CachedCommandReads) CouponUsageCount(ctx context.Context, couponID, customerID uuid.UUID) (int64, error) {
	return c.inner.CouponUsageCount(ctx, couponID, customerID)
}

func (c *CachedCommandReads) AddressByID(ctx context.Context, addressID uuid.UUID) (*shared.AddressSnapshot, error) {
	return c.inner.AddressByID(ctx, addressID)
}
