package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "quickgigs/internal/adapter/http/dto/response"
	"quickgigs/internal/adapter/http/middleware"
	"quickgigs/internal/usecase"
	"quickgigs/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const maxWebhookBody = 1 << 20

// Signature headers by provider; the configured gateway verifies whichever
// one it understands.
var webhookSignatureHeaders = []string{"Stripe-Signature", "X-Signature", "X-Sandbox-Signature"}

// PaymentHandler handles featuring checkout, redirect callbacks and webhooks.
type PaymentHandler struct {
	usecase usecase.IFeaturingUseCase
}

func NewPaymentHandler(uc usecase.IFeaturingUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RequestFeaturing opens (or reuses) a checkout session for the gig.
func (h *PaymentHandler) RequestFeaturing(c *gin.Context) {
	gigID := c.Param("gig_id")
	log.WithField("gig_id", gigID).Info("[payment][handler] featuring request start")

	res, err := h.usecase.RequestFeaturing(c.Request.Context(), middleware.UserID(c), gigID)
	if errors.Is(err, usecase.ErrAlreadyFeatured) {
		c.JSON(http.StatusOK, response.WarningResponse{Warning: "ALREADY_FEATURED", Message: "This gig is already featured"})
		return
	}
	if err != nil {
		respondError(c, "[payment][handler]", err, errGigNotFound)
		return
	}
	status := http.StatusCreated
	if res.Reused {
		status = http.StatusOK
	}
	c.JSON(status, response.FromFeaturingResult(res))
}

// PaymentSuccess is the checkout success redirect. Stripe sends session_id;
// Mercado Pago sends external_reference and payment_id. The caller comes from
// the signed state parameter when no bearer token is present.
func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	lookup := interfaces.SessionLookup{
		SessionID:         firstQuery(c, "session_id", "external_reference"),
		ProviderPaymentID: firstQuery(c, "payment_id", "collection_id"),
	}
	res, err := h.usecase.ConfirmSuccess(c.Request.Context(), middleware.UserID(c), c.Param("gig_id"), lookup)
	if err != nil {
		respondError(c, "[payment][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromReconcileResult(res))
}

func (h *PaymentHandler) PaymentCancel(c *gin.Context) {
	res, err := h.usecase.ConfirmCancel(c.Request.Context(), middleware.UserID(c), c.Param("gig_id"), firstQuery(c, "session_id", "external_reference"))
	if err != nil {
		respondError(c, "[payment][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromReconcileResult(res))
}

func (h *PaymentHandler) PaymentHistory(c *gin.Context) {
	payments, err := h.usecase.PaymentHistory(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, "[payment][handler]", err, errPaymentNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) PaymentTransitions(c *gin.Context) {
	history, err := h.usecase.PaymentTransitions(c.Request.Context(), middleware.UserID(c), c.Param("payment_id"))
	if err != nil {
		respondError(c, "[payment][handler]", err, errPaymentNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentHistory(history))
}

// Webhook receives gateway events. Any 2xx tells the gateway to stop
// retrying, so processing failures answer 500.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	req := interfaces.WebhookRequest{
		Payload:   payload,
		Signature: firstHeader(c, webhookSignatureHeaders...),
		RequestID: c.GetHeader("X-Request-Id"),
	}
	res, err := h.usecase.HandleWebhook(c.Request.Context(), req)
	if err != nil {
		respondError(c, "[payment][webhook]", err, errPaymentNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromWebhookResult(res))
}

func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}

func firstHeader(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.GetHeader(k)); v != "" {
			return v
		}
	}
	return ""
}
