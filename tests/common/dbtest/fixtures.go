//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront-checkout/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCustomer(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO customers (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		customerID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
	}

	return customerID
}

func CreateTestAddress(t *testing.T, db DBLike, customerID uuid.UUID) uuid.UUID {
	t.Helper()

	addressID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO addresses (id, customer_id, line1, city, postal_code) VALUES ($1, $2, '1-2-3 Test', 'Tokyo', '100-0001')",
		addressID, customerID)
	require.NoError(t, err)

	return addressID
}

func CreateTestCart(t *testing.T, db DBLike, customerID uuid.UUID) uuid.UUID {
	t.Helper()

	cartID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO carts (id, customer_id) VALUES ($1, $2) ON CONFLICT (customer_id) DO NOTHING",
		cartID, customerID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM carts WHERE customer_id = $1", customerID).Scan(&cartID)
	}

	return cartID
}

func AddCartItem(t *testing.T, db DBLike, cartID uuid.UUID, item *builder.CartItemBuilder) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO cart_items
		(id, cart_id, product_id, variant_id, category_id, name, unit_price_cents, compare_at_unit_price_cents, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		itemID, cartID, item.ProductID, item.VariantID, item.CategoryID, item.Name,
		item.UnitPriceCents, item.CompareAtUnitPriceCents, item.Quantity)
	require.NoError(t, err)

	return itemID
}

func CreateTestOffer(t *testing.T, db DBLike, o *builder.OfferBuilder) uuid.UUID {
	t.Helper()

	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO offers
		(id, name, discount_type, discount_value, min_purchase_cents, max_discount_cents, priority,
		 starts_at, ends_at, status, stackable, product_ids, category_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID, o.Name, o.DiscountType, o.DiscountValue, o.MinPurchaseCents, o.MaxDiscountCents,
		o.Priority, o.StartsAt, o.EndsAt, o.Status, o.Stackable, o.ProductIDs, o.CategoryIDs)
	require.NoError(t, err)

	return o.ID
}

func CreateTestCoupon(t *testing.T, db DBLike, c *builder.CouponBuilder) uuid.UUID {
	t.Helper()

	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO coupons
		(id, code, discount_type, discount_value, min_amount_cents, max_discount_cents,
		 starts_at, ends_at, status, stackable, usage_limit, used_count, max_usage_per_user)
		VALUES ($1, upper($2), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.Code, c.DiscountType, c.DiscountValue, c.MinAmountCents, c.MaxDiscountCents,
		c.StartsAt, c.EndsAt, c.Status, c.Stackable, c.UsageLimit, c.UsedCount, c.MaxUsagePerUser)
	require.NoError(t, err)

	return c.ID
}

func CouponUsedCount(t *testing.T, db DBLike, couponID uuid.UUID) int32 {
	t.Helper()

	var usedCount int32
	err := db.QueryRow(context.Background(), "SELECT used_count FROM coupons WHERE id = $1", couponID).Scan(&usedCount)
	require.NoError(t, err)
	return usedCount
}

func CartItemCount(t *testing.T, db DBLike, cartID uuid.UUID) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM cart_items WHERE cart_id = $1", cartID).Scan(&count)
	require.NoError(t, err)
	return count
}

// SeedReferenceData is a hook for reference rows shared by every test. The
// checkout schema has no global reference tables today; fixtures create what
// they need per test.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
