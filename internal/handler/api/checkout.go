package api

import (
	"errors"
	"net/http"

	reqdto "travel-core/internal/handler/dto/request"
	resdto "travel-core/internal/handler/dto/response"
	"travel-core/internal/handler/middleware"
	"travel-core/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// @Summary Checkout
// @Description Settle a chosen offer with the selected payment method
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	method, err := req.ToPaymentMethod()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown payment method",
		})
		return
	}

	result, err := h.checkoutUseCase.Checkout(c.Request.Context(), userID, usecase.CheckoutInput{
		Offer:        req.ToOffer(),
		Passengers:   req.Passengers,
		ServiceClass: req.ServiceClass,
		Method:       method,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCheckout):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid checkout request",
			})
		case errors.Is(err, usecase.ErrSettlementPersistence):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to record purchase",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary Get purchase
// @Description Get one purchase of the current user
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /purchases/{id} [get]
func (h *CheckoutHandler) GetPurchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid purchase ID format",
		})
		return
	}

	p, err := h.checkoutUseCase.GetPurchase(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPurchaseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Purchase not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchase(p))
}

// @Summary Get purchase history
// @Description List the current user's purchases, newest first
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PurchaseListResponse
// @Failure 401 {object} map[string]string
// @Router /purchases [get]
func (h *CheckoutHandler) GetUserPurchases(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	purchases, err := h.checkoutUseCase.GetUserPurchases(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchaseList(purchases))
}
