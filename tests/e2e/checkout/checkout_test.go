//go:build e2e

package checkout_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"storefront-checkout/internal/domain/customer"
	"storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/tests/common/authtest"
	"storefront-checkout/tests/common/builder"
	"storefront-checkout/tests/common/dbtest"
	"storefront-checkout/tests/common/httptest"
	"storefront-checkout/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	previewURL = "/api/checkout/preview"
	commitURL  = "/api/checkout/commit"
	ordersURL  = "/api/orders"
)

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

// テスト用のショッピング環境一式（顧客・住所・カート）を作成
type shopper struct {
	customerID uuid.UUID
	addressID  uuid.UUID
	cartID     uuid.UUID
	token      string
}

func (s *checkoutSuite) createShopper(email string, items ...*builder.CartItemBuilder) shopper {
	t := s.T()
	customerID := dbtest.CreateTestCustomer(t, s.DB, email, string(customer.RoleCustomer))
	addressID := dbtest.CreateTestAddress(t, s.DB, customerID)
	cartID := dbtest.CreateTestCart(t, s.DB, customerID)
	for _, item := range items {
		dbtest.AddCartItem(t, s.DB, cartID, item)
	}
	token := authtest.LoginCustomer(t, s.Router, email, "password123")
	return shopper{customerID: customerID, addressID: addressID, cartID: cartID, token: token}
}

func strPtr(s string) *string { return &s }

func (s *checkoutSuite) TestPreview() {
	s.Run("オファーとクーポンを含む見積もりが返ること", func() {
		t := s.T()

		categoryID := uuid.New()
		item := builder.NewCartItemBuilder().WithCategoryID(categoryID).WithUnitPriceCents(1000)
		sh := s.createShopper("shopper@example.com", item)

		dbtest.CreateTestOffer(t, s.DB, builder.NewOfferBuilder().
			WithDiscountValue(10).
			WithCategoryIDs(categoryID))
		dbtest.CreateTestCoupon(t, s.DB, builder.NewCouponBuilder().
			WithCode("SAVE200").
			AsFixed(200).
			WithMaxDiscountCents(150))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			request.PreviewCheckoutRequest{Source: "CART", CouponCode: strPtr("save200")}, sh.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var preview resdto.CheckoutPreviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &preview))

		require.Equal(t, int64(1000), preview.Subtotal)
		require.Equal(t, int64(100), preview.OfferDiscount)
		require.Equal(t, int64(150), preview.CouponDiscount)
		require.Equal(t, int64(500), preview.ShippingCharge)
		// 課税対象は 750 + 送料 500 の 10%
		require.Equal(t, int64(125), preview.Tax)
		require.Equal(t, int64(1375), preview.Total)
		require.NotNil(t, preview.CouponSnapshot)
		require.Equal(t, "SAVE200", preview.CouponSnapshot.Code)
		require.Equal(t, int64(150), preview.CouponSnapshot.DiscountApplied)

		// プレビューは一切書き込まないこと
		var orderCount int64
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM orders").Scan(&orderCount))
		require.Zero(t, orderCount)
		require.Equal(t, int64(1), dbtest.CartItemCount(t, s.DB, sh.cartID))

		// 同一カートなら何度実行しても同じ内訳になること
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			request.PreviewCheckoutRequest{Source: "CART", CouponCode: strPtr("save200")}, sh.token)
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

		var second resdto.CheckoutPreviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &second))
		require.Empty(t, cmp.Diff(preview, second,
			cmpopts.IgnoreFields(resdto.CheckoutPreviewResponse{}, "PricedAt")))
	})

	s.Run("空のカートは拒否されること", func() {
		t := s.T()

		sh := s.createShopper("empty@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			request.PreviewCheckoutRequest{Source: "CART"}, sh.token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("存在しないクーポンは404になること", func() {
		t := s.T()

		sh := s.createShopper("nocoupon@example.com", builder.NewCartItemBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			request.PreviewCheckoutRequest{Source: "CART", CouponCode: strPtr("NOSUCHCODE")}, sh.token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("期限切れクーポンは拒否されること", func() {
		t := s.T()

		sh := s.createShopper("expired@example.com", builder.NewCartItemBuilder())

		now := time.Now()
		dbtest.CreateTestCoupon(t, s.DB, builder.NewCouponBuilder().
			WithCode("OLDCODE").
			WithWindow(now.Add(-48*time.Hour), now.Add(-24*time.Hour)))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			request.PreviewCheckoutRequest{Source: "CART", CouponCode: strPtr("OLDCODE")}, sh.token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *checkoutSuite) TestCommit() {
	s.Run("注文確定でスナップショットが永続化されカートが空になること", func() {
		t := s.T()

		categoryID := uuid.New()
		item := builder.NewCartItemBuilder().WithCategoryID(categoryID).WithUnitPriceCents(1000).WithQuantity(2)
		sh := s.createShopper("buyer@example.com", item)

		dbtest.CreateTestOffer(t, s.DB, builder.NewOfferBuilder().
			WithDiscountValue(10).
			WithCategoryIDs(categoryID))
		couponID := dbtest.CreateTestCoupon(t, s.DB, builder.NewCouponBuilder().
			WithCode("COMMIT10").
			WithDiscountValue(10))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL,
			request.CommitCheckoutRequest{
				Source:            "CART",
				ShippingAddressID: sh.addressID,
				PaymentMethod:     "card",
				CouponCode:        strPtr("COMMIT10"),
			}, sh.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var order resdto.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &order))

		// 2000 - 200 (オファー) - 180 (クーポン10%) = 1620、送料500、税212
		require.Equal(t, int64(2000), order.Subtotal)
		require.Equal(t, int64(200), order.OfferDiscount)
		require.Equal(t, int64(180), order.CouponDiscount)
		require.Equal(t, int64(500), order.ShippingCharge)
		require.Equal(t, int64(212), order.Tax)
		require.Equal(t, int64(2332), order.Total)
		require.Len(t, order.Lines, 1)
		require.NotNil(t, order.CouponSnapshot)

		// 台帳が1回分加算されること
		require.Equal(t, int32(1), dbtest.CouponUsedCount(t, s.DB, couponID))

		var usageCount int64
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM coupon_usage WHERE coupon_id = $1 AND customer_id = $2", couponID, sh.customerID).Scan(&usageCount))
		require.Equal(t, int64(1), usageCount)

		// カートがクリアされること
		require.Zero(t, dbtest.CartItemCount(t, s.DB, sh.cartID))
	})

	s.Run("他人の配送先住所は404になること", func() {
		t := s.T()

		sh := s.createShopper("victim@example.com", builder.NewCartItemBuilder())
		other := s.createShopper("other@example.com", builder.NewCartItemBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL,
			request.CommitCheckoutRequest{
				Source:            "CART",
				ShippingAddressID: other.addressID,
				PaymentMethod:     "card",
			}, sh.token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

		// 何も書き込まれないこと
		var orderCount int64
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM orders").Scan(&orderCount))
		require.Zero(t, orderCount)
	})

	s.Run("ユーザー毎の上限超過は2回目の確定で拒否されること", func() {
		t := s.T()

		couponID := dbtest.CreateTestCoupon(t, s.DB, builder.NewCouponBuilder().
			WithCode("ONCEONLY").
			WithMaxUsagePerUser(1))

		sh := s.createShopper("repeat@example.com", builder.NewCartItemBuilder())

		commitReq := request.CommitCheckoutRequest{
			Source:            "CART",
			ShippingAddressID: sh.addressID,
			PaymentMethod:     "card",
			CouponCode:        strPtr("ONCEONLY"),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL, commitReq, sh.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// カートを補充して再確定
		dbtest.AddCartItem(t, s.DB, sh.cartID, builder.NewCartItemBuilder())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL, commitReq, sh.token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		require.Equal(t, int32(1), dbtest.CouponUsedCount(t, s.DB, couponID))
	})

	s.Run("大域上限1のクーポンを並行確定しても1件だけ成功すること", func() {
		t := s.T()

		const concurrency = 5

		couponID := dbtest.CreateTestCoupon(t, s.DB, builder.NewCouponBuilder().
			WithCode("LASTONE").
			WithUsageLimit(1))

		shoppers := make([]shopper, concurrency)
		for i := range shoppers {
			email := "racer" + string(rune('a'+i)) + "@example.com"
			shoppers[i] = s.createShopper(email, builder.NewCartItemBuilder())
		}

		statuses := make([]int, concurrency)
		var wg sync.WaitGroup
		for i := range shoppers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL,
					request.CommitCheckoutRequest{
						Source:            "CART",
						ShippingAddressID: shoppers[i].addressID,
						PaymentMethod:     "card",
						CouponCode:        strPtr("LASTONE"),
					}, shoppers[i].token)
				statuses[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range statuses {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict, http.StatusBadRequest:
				// 台帳で負けたか、勝者確定後に検証で弾かれたか
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created, "ちょうど1件だけ成功すること")

		// 台帳はちょうど1回分だけ進むこと
		require.Equal(t, int32(1), dbtest.CouponUsedCount(t, s.DB, couponID))

		var usageRows int64
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM coupon_usage WHERE coupon_id = $1", couponID).Scan(&usageRows))
		require.Equal(t, int64(1), usageRows)

		// 失敗した確定の注文はロールバックされていること
		var orderCount int64
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM orders").Scan(&orderCount))
		require.Equal(t, int64(1), orderCount)
	})
}

func (s *checkoutSuite) TestOrders() {
	s.Run("確定した注文を取得・一覧できること", func() {
		t := s.T()

		sh := s.createShopper("orders@example.com", builder.NewCartItemBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL,
			request.CommitCheckoutRequest{
				Source:            "CART",
				ShippingAddressID: sh.addressID,
				PaymentMethod:     "cod",
			}, sh.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+created.ID.String(), nil, sh.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var fetched resdto.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, created.Total, fetched.Total)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, sh.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("他人の注文は見えないこと", func() {
		t := s.T()

		owner := s.createShopper("owner@example.com", builder.NewCartItemBuilder())
		stranger := s.createShopper("stranger@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commitURL,
			request.CommitCheckoutRequest{
				Source:            "CART",
				ShippingAddressID: owner.addressID,
				PaymentMethod:     "card",
			}, owner.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+created.ID.String(), nil, stranger.token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}
