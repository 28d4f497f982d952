package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/bostany/storefront/internal/checkout"
	"github.com/bostany/storefront/internal/models"
	"github.com/bostany/storefront/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func checkoutView(sess *session.Session) gin.H {
	co := sess.Checkout()
	return gin.H{
		"state":     co.State(),
		"items":     sess.Cart.Items(),
		"cartEmpty": sess.Cart.IsEmpty(),
	}
}

// respondCheckoutError maps checkout errors to HTTP statuses.
func (h *Handlers) respondCheckoutError(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill in all required fields", "fields": verr.Fields})
	case errors.Is(err, checkout.ErrPaymentRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrOrderPlaced),
		errors.Is(err, checkout.ErrWrongStep),
		errors.Is(err, checkout.ErrSectionLocked),
		errors.Is(err, checkout.ErrIncomplete),
		errors.Is(err, checkout.ErrTermsNotAccepted),
		errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Order was not placed"})
	default:
		h.Log.Error("checkout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
	}
}

// GetCheckout is the handler for GET /v1/checkout
func (h *Handlers) GetCheckout(c *gin.Context) {
	sess := lockedSession(c)
	defer sess.Unlock()

	c.JSON(http.StatusOK, gin.H{"checkout": checkoutView(sess)})
}

// SubmitDelivery is the handler for PUT /v1/checkout/delivery
func (h *Handlers) SubmitDelivery(c *gin.Context) {
	var form models.DeliveryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	sess := lockedSession(c)
	defer sess.Unlock()

	if err := sess.Checkout().SubmitDelivery(form); err != nil {
		h.respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": checkoutView(sess)})
}

type PaymentInput struct {
	Method models.PaymentMethod `json:"method"`
}

// SubmitPayment is the handler for PUT /v1/checkout/payment
func (h *Handlers) SubmitPayment(c *gin.Context) {
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	sess := lockedSession(c)
	defer sess.Unlock()

	if err := sess.Checkout().SubmitPayment(input.Method); err != nil {
		h.respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": checkoutView(sess)})
}

type TermsInput struct {
	Accepted *bool `json:"accepted" binding:"required"`
}

// SetTerms is the handler for PUT /v1/checkout/terms
func (h *Handlers) SetTerms(c *gin.Context) {
	var input TermsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	sess := lockedSession(c)
	defer sess.Unlock()

	if err := sess.Checkout().SetTermsAccepted(*input.Accepted); err != nil {
		h.respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": checkoutView(sess)})
}

// EditSection is the handler for POST /v1/checkout/sections/:step/edit
func (h *Handlers) EditSection(c *gin.Context) {
	step, ok := checkout.ParseStep(c.Param("step"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown checkout section"})
		return
	}

	sess := lockedSession(c)
	defer sess.Unlock()

	if err := sess.Checkout().EditSection(step); err != nil {
		h.respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": checkoutView(sess)})
}

// PlaceOrder is the handler for POST /v1/checkout/place
// The session stays locked through the settle delay, so a double submit
// waits and then sees the order already placed.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	sess := lockedSession(c)
	defer sess.Unlock()

	conf, err := sess.PlaceOrder(c.Request.Context())
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	h.Log.Info("order placed",
		zap.String("session_id", sess.ID),
		zap.String("order_number", conf.OrderNumber),
		zap.String("total", models.FormatPrice(conf.Total)),
		zap.String("payment_method", string(conf.PaymentMethod)),
	)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order": conf})
}

// GetConfirmation is the handler for GET /v1/checkout/confirmation
func (h *Handlers) GetConfirmation(c *gin.Context) {
	sess := lockedSession(c)
	defer sess.Unlock()

	conf, ok := sess.LastConfirmation()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No order has been placed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": conf})
}

// GetGovernorates is the handler for GET /v1/checkout/governorates
func (h *Handlers) GetGovernorates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"governorates":   checkout.Governorates,
		"paymentMethods": models.PaymentMethods,
	})
}
