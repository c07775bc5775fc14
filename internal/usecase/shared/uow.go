package shared

import (
	"context"

	"github.com/google/uuid"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	CouponUsage() CouponUsageRepository
	Carts() CartRepository
	Customers() CustomerRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	CartByCustomer(ctx context.Context, customerID uuid.UUID) (*CartSnapshot, error)
	ApplicableOffers(ctx context.Context, productIDs, categoryIDs []uuid.UUID) ([]OfferSnapshot, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	CouponUsageCount(ctx context.Context, couponID, customerID uuid.UUID) (int64, error)
	AddressByID(ctx context.Context, addressID uuid.UUID) (*AddressSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, o *order.Order) (uuid.UUID, error)
}

// UsageLimitKind reports which cap stopped a usage recording. Hitting a cap
// is an expected outcome of the ledger race, not a database failure.
type UsageLimitKind int

const (
	UsageLimitNone UsageLimitKind = iota
	UsageLimitGlobal
	UsageLimitPerUser
)

type CouponUsageResult struct {
	NewUsedCount int32
	Limit        UsageLimitKind
}

type CouponUsageRepository interface {
	// TryRecordUsage atomically checks both caps and records one redemption.
	// The global check-and-increment is a single conditional update under the
	// coupon row lock; the per-user count is read inside the same transaction
	// after that lock is held, so racing commits observe each other.
	TryRecordUsage(ctx context.Context, dbtx db.DBTX, couponID, customerID, orderID uuid.UUID, discountAppliedCents int64) (CouponUsageResult, error)
}

type CartRepository interface {
	Clear(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID) error
}

type CustomerRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, customerID uuid.UUID) error
}
