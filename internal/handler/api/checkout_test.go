//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/handler/api"
	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/tests/common/httptest"
	"storefront-checkout/tests/common/testutil"
	commandsmock "storefront-checkout/tests/mock/commands"
	queriesmock "storefront-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCheckoutQueries
	handler      *api.CheckoutHandler
	customerID   uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCheckoutQueries(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands, s.mockQueries)
	s.customerID = uuid.New()

	// Simulate the auth middleware setting the customer context
	authed := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("customer_id", s.customerID)
			c.Set("customer_role", "customer")
			handler(c)
		}
	}
	s.router.POST("/checkout/preview", authed(s.handler.Preview))
	s.router.POST("/checkout/commit", authed(s.handler.Commit))
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) previewView() *queries.CheckoutPreviewView {
	return &queries.CheckoutPreviewView{
		Source:          "CART",
		Subtotal:        1000,
		ProductDiscount: 0,
		OfferDiscount:   100,
		CouponDiscount:  150,
		ShippingCharge:  500,
		Tax:             125,
		Total:           1375,
		PricedAt:        time.Now(),
	}
}

func (s *CheckoutHandlerTestSuite) TestPreview() {
	url := "/checkout/preview"
	couponCode := "SAVE200"
	reqBody := reqdto.PreviewCheckoutRequest{Source: "CART", CouponCode: &couponCode}

	s.Run("success: returns 200 OK with the pricing breakdown", func() {
		s.mockQueries.EXPECT().
			Preview(gomock.Any(), s.customerID, order.SourceCart, gomock.Any()).
			Return(s.previewView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CheckoutPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1375), response.Total)
		s.Equal(int64(150), response.CouponDiscount)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing field: source (required)", mutate: testutil.Field("source", nil), expectCode: http.StatusBadRequest},
			{name: "empty source", mutate: testutil.Field("source", ""), expectCode: http.StatusBadRequest},
			{name: "unknown source", mutate: testutil.Field("source", "WISHLIST"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty cart",
				queriesError:   usecase.ErrCartEmpty,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cart is empty",
			},
			{
				name:           "unknown coupon",
				queriesError:   usecase.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Coupon not found",
			},
			{
				name:           "malformed coupon code",
				queriesError:   usecase.ErrInvalidCoupon,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid coupon",
			},
			{
				name:           "internal error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().
					Preview(gomock.Any(), s.customerID, order.SourceCart, gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CheckoutHandlerTestSuite) TestCommit() {
	url := "/checkout/commit"
	addressID := uuid.New()
	reqBody := reqdto.CommitCheckoutRequest{
		Source:            "CART",
		ShippingAddressID: addressID,
		PaymentMethod:     "card",
	}

	orderView := &queries.OrderView{
		ID:        uuid.New(),
		Source:    "CART",
		Status:    "placed",
		Subtotal:  1000,
		Total:     1375,
		CreatedAt: time.Now(),
	}

	s.Run("success: returns 201 Created with the persisted order", func() {
		s.mockCommands.EXPECT().
			Commit(gomock.Any(), s.customerID, gomock.Any()).
			Return(&commands.CommitResult{Order: orderView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(orderView.ID, response.ID)
		s.Equal(int64(1375), response.Total)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: source (required)", mutate: testutil.Field("source", nil)},
			{name: "missing field: shippingAddressId (required)", mutate: testutil.Field("shippingAddressId", nil)},
			{name: "missing field: paymentMethod (required)", mutate: testutil.Field("paymentMethod", nil)},
			{name: "malformed shippingAddressId", mutate: testutil.Field("shippingAddressId", "not-a-uuid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "address not found",
				commandsError:  commands.ErrAddressNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Shipping address not found",
			},
			{
				name:           "coupon usage raced to the limit",
				commandsError:  commands.ErrCouponUsageConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Coupon usage limit reached",
			},
			{
				name:           "coupon per-user limit raced to the limit",
				commandsError:  commands.ErrCouponUserLimitConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Coupon per-user limit reached",
			},
			{
				name:           "domain validation failed",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "empty cart",
				commandsError:  usecase.ErrCartEmpty,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cart is empty",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Commit(gomock.Any(), s.customerID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
