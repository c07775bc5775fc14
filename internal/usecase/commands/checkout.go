package commands

import (
	"context"

	"github.com/google/uuid"

	"storefront-checkout/internal/domain/order"
	reqdto "storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"
)

var (
	ErrAddressNotFound         = errs.New("shipping address not found")
	ErrCouponUsageConflict     = errs.New("coupon usage limit reached")
	ErrCouponUserLimitConflict = errs.New("coupon per-user limit reached")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CommitResult struct {
	Order *queries.OrderView
}

type CheckoutCommands interface {
	Commit(ctx context.Context, customerID uuid.UUID, req reqdto.CommitCheckoutRequest) (*CommitResult, error)
}

type checkoutCommandsImpl struct {
	uow          shared.UnitOfWork
	pricer       *usecase.CartPricer
	orderQueries queries.OrderQueries
}

func NewCheckoutCommands(uow shared.UnitOfWork, pricer *usecase.CartPricer, orderQueries queries.OrderQueries) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:          uow,
		pricer:       pricer,
		orderQueries: orderQueries,
	}
}

// Commit revalidates and reprices the cart inside one transaction, then
// persists the order, records coupon usage through the ledger, and clears
// the cart. Preview state is never trusted: everything is read fresh here,
// so a preview that succeeded can still fail at commit.
func (c *checkoutCommandsImpl) Commit(ctx context.Context, customerID uuid.UUID, req reqdto.CommitCheckoutRequest) (*CommitResult, error) {
	domainReq, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.validateAddress(ctx, domainReq.ShippingAddressID, customerID); err != nil {
		return nil, err
	}

	var orderID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		priced, err := c.pricer.Price(ctx, tx.Reads(), usecase.PriceCartInput{
			CustomerID: customerID,
			Source:     domainReq.Source,
			CouponCode: domainReq.CouponCode,
		})
		if err != nil {
			return err
		}

		entity, err := order.NewOrder(
			customerID,
			domainReq.Source,
			domainReq.ShippingAddressID,
			domainReq.PaymentMethod,
			priced.Result.Snapshot,
			priced.Result.Lines,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		orderID, err = tx.Orders().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrAddressNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if priced.Coupon != nil {
			usage, err := tx.CouponUsage().TryRecordUsage(
				ctx, tx.DB(),
				priced.Coupon.ID(), customerID, orderID,
				priced.Result.Snapshot.CouponDiscount,
			)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			switch usage.Limit {
			case shared.UsageLimitGlobal:
				// A concurrent commit consumed the last redemption between
				// validation and here; roll the whole order back.
				return ErrCouponUsageConflict
			case shared.UsageLimitPerUser:
				return ErrCouponUserLimitConflict
			}
		}

		if domainReq.Source == order.SourceCart {
			if err := tx.Carts().Clear(ctx, tx.DB(), priced.Cart.ID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: serve the committed order from the read store
	view, err := c.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CommitResult{Order: view}, nil
}

func (c *checkoutCommandsImpl) validateAddress(ctx context.Context, addressID, customerID uuid.UUID) error {
	address, err := c.uow.CommandReads().AddressByID(ctx, addressID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAddressNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Someone else's address is indistinguishable from a missing one
	if address.CustomerID != customerID {
		return ErrAddressNotFound
	}
	return nil
}
