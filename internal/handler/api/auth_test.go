//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront-checkout/internal/handler/api"
	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/tests/common/builder"
	"storefront-checkout/tests/common/httptest"
	"storefront-checkout/tests/common/testutil"
	commandsmock "storefront-checkout/tests/mock/commands"
	queriesmock "storefront-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockCustomerQueries
	handler      *api.AuthHandler
	customerID   uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)

	cfg := config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.AccessDuration = time.Hour
	cfg.JWT.RefreshDuration = 720 * time.Hour
	cfg.Cookie.SameSite = "Lax"

	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, cfg)
	s.customerID = uuid.New()

	// Simulate the auth middleware setting the customer context
	authed := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("customer_id", s.customerID)
			c.Set("customer_role", "customer")
			handler(c)
		}
	}
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", authed(s.handler.Logout))
	s.router.GET("/auth/me", authed(s.handler.Me))
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) customerView() *queries.AuthorizedCustomerView {
	return &queries.AuthorizedCustomerView{
		ID:       s.customerID,
		Email:    "test@example.com",
		Role:     "customer",
		IsActive: true,
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	loginResult := &commands.LoginResult{
		CustomerID: s.customerID,
		TokenPair: &commands.TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
	}

	s.Run("success: returns 200 OK with token and customer", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), reqBody).
			Return(loginResult, nil).Times(1)
		s.mockQueries.EXPECT().
			GetCurrentCustomer(gomock.Any(), s.customerID).
			Return(s.customerView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("access-token", response.AccessToken)
		s.Equal("test@example.com", response.Customer.Email)

		cookies := rec.Result().Cookies()
		s.NotEmpty(cookies)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil)},
			{name: "password below minimum length", mutate: testutil.Field("password", "short")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody)
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase failures to status codes", func() {
		cases := []struct {
			name     string
			err      error
			wantCode int
			wantMsg  string
		}{
			{name: "invalid credentials", err: commands.ErrInvalidCredentials, wantCode: http.StatusUnauthorized, wantMsg: "Invalid email or password"},
			{name: "unknown customer", err: commands.ErrCustomerNotFound, wantCode: http.StatusUnauthorized, wantMsg: "Invalid email or password"},
			{name: "inactive account", err: commands.ErrCustomerInactive, wantCode: http.StatusForbidden, wantMsg: "Account is inactive"},
			{name: "unexpected error", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantMsg: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Login(gomock.Any(), reqBody).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.wantCode, tc.wantMsg)
			})
		}
	})

	s.Run("error: 500 when the customer view cannot be loaded", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), reqBody).
			Return(loginResult, nil).Times(1)
		s.mockQueries.EXPECT().
			GetCurrentCustomer(gomock.Any(), s.customerID).
			Return(nil, errors.New("read store down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: accepts the refresh token from the request body", func() {
		s.mockCommands.EXPECT().
			RefreshToken(gomock.Any(), "refresh-token").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		reqBody := reqdto.RefreshRequest{RefreshToken: "refresh-token"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
	})

	s.Run("error: 401 when no refresh token is supplied", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: 401 on an invalid refresh token", func() {
		s.mockCommands.EXPECT().
			RefreshToken(gomock.Any(), "expired-token").
			Return(nil, commands.ErrTokenValidation).Times(1)

		reqBody := reqdto.RefreshRequest{RefreshToken: "expired-token"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired refresh token")
	})

	s.Run("error: 403 when the account was deactivated", func() {
		s.mockCommands.EXPECT().
			RefreshToken(gomock.Any(), "refresh-token").
			Return(nil, commands.ErrCustomerInactive).Times(1)

		reqBody := reqdto.RefreshRequest{RefreshToken: "refresh-token"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content and clears cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
		for _, c := range rec.Result().Cookies() {
			s.Equal(-1, c.MaxAge)
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current customer", func() {
		s.mockQueries.EXPECT().
			GetCurrentCustomer(gomock.Any(), s.customerID).
			Return(s.customerView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.AuthorizedCustomerView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.customerID, response.ID)
		s.Equal("customer", response.Role)
	})

	s.Run("error: 404 when the customer no longer exists", func() {
		s.mockQueries.EXPECT().
			GetCurrentCustomer(gomock.Any(), s.customerID).
			Return(nil, queries.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("error: 403 when the account is inactive", func() {
		s.mockQueries.EXPECT().
			GetCurrentCustomer(gomock.Any(), s.customerID).
			Return(nil, queries.ErrCustomerInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})
}
