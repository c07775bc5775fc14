package api

import (
	"errors"
	"net/http"

	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	checkoutQueries  queries.CheckoutQueries
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, checkoutQueries queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		checkoutQueries:  checkoutQueries,
	}
}

// @Summary Preview checkout
// @Description Compute the full pricing breakdown for the current cart without writing anything
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewCheckoutRequest true "Preview request"
// @Success 200 {object} resdto.CheckoutPreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/preview [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PreviewCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	source, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid checkout source",
		})
		return
	}

	view, err := h.checkoutQueries.Preview(c.Request.Context(), customerID, source, req.GetCouponCode())
	if err != nil {
		h.respondPricingError(c, err)
		return
	}

	resp, err := resdto.FromCheckoutPreviewView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Commit checkout
// @Description Revalidate, reprice, and atomically place the order
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CommitCheckoutRequest true "Commit request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout/commit [post]
func (h *CheckoutHandler) Commit(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CommitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.Commit(c.Request.Context(), customerID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Shipping address not found",
			})
		case errors.Is(err, commands.ErrCouponUsageConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon usage limit reached",
			})
		case errors.Is(err, commands.ErrCouponUserLimitConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon per-user limit reached",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			h.respondPricingError(c, err)
		}
		return
	}

	resp, err := resdto.FromOrderView(result.Order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Shared mapping for errors both preview and commit can produce.
func (h *CheckoutHandler) respondPricingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
	case errors.Is(err, usecase.ErrUnsupportedSource):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unsupported checkout source",
		})
	case errors.Is(err, usecase.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coupon not found",
		})
	case errors.Is(err, usecase.ErrInvalidCoupon):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon",
		})
	case errors.Is(err, usecase.ErrCouponRejected):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		// Keep the cause on the gin error stack for the request log.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
