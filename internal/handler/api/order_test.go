//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront-checkout/internal/handler/api"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/tests/common/httptest"
	queriesmock "storefront-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOrderQueries
	handler     *api.OrderHandler
	customerID  uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockQueries)
	s.customerID = uuid.New()

	// Simulate the auth middleware setting the customer context
	authed := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("customer_id", s.customerID)
			c.Set("customer_role", "customer")
			handler(c)
		}
	}
	s.router.GET("/orders", authed(s.handler.ListOrders))
	s.router.GET("/orders/:id", authed(s.handler.GetOrder))
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()
	orderView := &queries.OrderView{
		ID:         orderID,
		CustomerID: s.customerID,
		Source:     "CART",
		Status:     "placed",
		Subtotal:   2000,
		Total:      2332,
		CreatedAt:  time.Now(),
	}

	s.Run("success: returns 200 OK with the order", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.customerID, orderID).
			Return(orderView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
		s.Equal(int64(2332), response.Total)
	})

	s.Run("error: 400 Bad Request on a malformed order ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID format")
	})

	s.Run("error: 404 Not Found when the order does not belong to the caller", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.customerID, orderID).
			Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.customerID, orderID).
			Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *OrderHandlerTestSuite) TestListOrders() {
	items := []*queries.OrderListItem{
		{ID: uuid.New(), Source: "CART", Status: "placed", PaymentMethod: "CARD", Total: 2332},
		{ID: uuid.New(), Source: "BUY_NOW", Status: "placed", PaymentMethod: "CARD", Total: 1375},
	}

	s.Run("success: returns the caller's orders", func() {
		s.mockQueries.EXPECT().
			ListByCustomer(gomock.Any(), s.customerID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "")

		var response []*resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
	})

	s.Run("success: forwards the limit parameter", func() {
		s.mockQueries.EXPECT().
			ListByCustomer(gomock.Any(), s.customerID, 1).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=1", nil, "")

		var response []*resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: returns an empty array when there are no orders", func() {
		s.mockQueries.EXPECT().
			ListByCustomer(gomock.Any(), s.customerID, 0).
			Return([]*queries.OrderListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "")

		var response []*resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request on a negative limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=-1", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit parameter")
	})
}
