package handlers

import (
	"errors"
	"net/http"

	request "payler_gateway/internal/adapter/http/dto/request"
	response "payler_gateway/internal/adapter/http/dto/response"
	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/usecase"
	"payler_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidRefundPayload = pkg.NewDomainErrorSimple("INVALID_REFUND_INPUT", "Invalid refund payload", http.StatusBadRequest)

// PaymentHandler exposes the checkout and admin payment actions.
type PaymentHandler struct {
	sessions usecase.ISessionUseCase
	refunds  usecase.IRefundUseCase
	gateway  usecase.IGatewayUseCase
	log      *zap.Logger
}

func NewPaymentHandler(sessions usecase.ISessionUseCase, refunds usecase.IRefundUseCase, gateway usecase.IGatewayUseCase, log *zap.Logger) *PaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHandler{sessions: sessions, refunds: refunds, gateway: gateway, log: log}
}

// CreateSession godoc
// @Summary      Start a Payler payment session
// @Description  Creates a hosted payment session for the order and returns the payment page to redirect the shopper to.
// @Tags         payments
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  response.CheckoutSessionResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Failure      502       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/session [post]
func (h *PaymentHandler) CreateSession(c *gin.Context) {
	orderID := c.Param("order_id")
	h.log.Info("create session request", zap.String("order_id", orderID))

	redirectURL, err := h.sessions.CreateSession(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		h.log.Warn("create session failed", zap.String("order_id", orderID), zap.Int("status", appErr.HTTPStatus), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRedirectURL(redirectURL))
}

// Refund godoc
// @Summary      Refund an order through Payler
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                 true  "Order ID"
// @Param        body      body      request.RefundRequest  true  "Refund"
// @Success      200       {object}  response.RefundResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      502       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/refunds [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRefundPayload.HTTPStatus, errInvalidRefundPayload.ToHTTPError())
		return
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidRefundPayload.HTTPStatus, errInvalidRefundPayload.ToHTTPError())
		return
	}
	h.log.Info("refund request", zap.String("order_id", orderID), zap.Float64("amount", amount))

	if err := h.refunds.Refund(c.Request.Context(), orderID, amount, payload.ResolveReason()); err != nil {
		appErr := mapPaymentError(err)
		h.log.Warn("refund failed", zap.String("order_id", orderID), zap.Int("status", appErr.HTTPStatus), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRefund(orderID, amount))
}

// Gateway godoc
// @Summary      Describe the Payler payment method
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.GatewayResponse
// @Router       /gateway [get]
func (h *PaymentHandler) Gateway(c *gin.Context) {
	d, err := h.gateway.Describe(c.Request.Context())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGatewayDescriptor(d))
}

func mapPaymentError(err error) *pkg.AppError {
	var rejected *entities.ProcessorRejectedError
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Refund amount exceeds the order total", http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_SESSION_NOT_FOUND", "Order has no Payler session", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayDisabled):
		return pkg.NewDomainErrorSimple("GATEWAY_DISABLED", "Payler gateway is disabled", http.StatusConflict)
	case errors.As(err, &rejected):
		return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", rejected.Error(), err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrProcessorUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Failed to reach Payler", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
