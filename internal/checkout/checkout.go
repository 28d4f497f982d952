// Package checkout drives the three-section checkout: delivery, payment and
// review, ending in a placed order. A Machine is not safe for concurrent use.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bostany/storefront/internal/models"
	"github.com/bostany/storefront/internal/pricing"
	"github.com/google/uuid"
)

const DefaultSettleDelay = 600 * time.Millisecond

var (
	ErrOrderPlaced      = errors.New("order already placed")
	ErrWrongStep        = errors.New("section is not active")
	ErrSectionLocked    = errors.New("section cannot be opened yet")
	ErrPaymentRequired  = errors.New("select a payment method")
	ErrIncomplete       = errors.New("delivery and payment must be completed")
	ErrTermsNotAccepted = errors.New("terms must be accepted")
	ErrEmptyCart        = errors.New("cart is empty")
)

// Cart is the part of the cart store checkout reads and clears.
type Cart interface {
	Items() []models.CartItem
	Subtotal() int64
	IsEmpty() bool
	Clear()
}

type Options struct {
	// StrictEdits makes EditSection clear the completion of the reopened
	// section and everything after it, along with terms acceptance.
	StrictEdits bool
	SettleDelay time.Duration
	Rates       pricing.Rates
	Now         func() time.Time
}

func DefaultOptions() Options {
	return Options{
		SettleDelay: DefaultSettleDelay,
		Rates:       pricing.DefaultRates(),
	}
}

type Machine struct {
	cart Cart
	opts Options

	step             Step
	deliveryComplete bool
	paymentComplete  bool
	termsAccepted    bool
	delivery         models.DeliveryForm
	method           models.PaymentMethod
	confirmation     *models.OrderConfirmation
}

func New(cart Cart, opts Options) *Machine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Machine{cart: cart, opts: opts, step: StepDelivery}
}

func (m *Machine) Step() Step { return m.step }

func (m *Machine) Placed() bool { return m.step == StepPlaced }

// SubmitDelivery completes the delivery section. On a validation failure the
// machine stays where it is and the error is a *ValidationError.
func (m *Machine) SubmitDelivery(form models.DeliveryForm) error {
	if err := m.expect(StepDelivery); err != nil {
		return err
	}
	form, err := validateDelivery(form)
	m.delivery = form
	if err != nil {
		return err
	}
	m.deliveryComplete = true
	m.step = StepPayment
	return nil
}

// SubmitPayment completes the payment section.
func (m *Machine) SubmitPayment(method models.PaymentMethod) error {
	if err := m.expect(StepPayment); err != nil {
		return err
	}
	if !method.Valid() {
		return ErrPaymentRequired
	}
	m.method = method
	m.paymentComplete = true
	m.step = StepReview
	return nil
}

func (m *Machine) SetTermsAccepted(accepted bool) error {
	if m.Placed() {
		return ErrOrderPlaced
	}
	m.termsAccepted = accepted
	return nil
}

// EditSection reopens a section. Payment needs delivery complete and review
// needs payment complete.
func (m *Machine) EditSection(step Step) error {
	if m.Placed() {
		return ErrOrderPlaced
	}
	switch step {
	case StepDelivery:
	case StepPayment:
		if !m.deliveryComplete {
			return ErrSectionLocked
		}
	case StepReview:
		if !m.paymentComplete {
			return ErrSectionLocked
		}
	default:
		return fmt.Errorf("edit %s: %w", step, ErrSectionLocked)
	}

	if m.opts.StrictEdits {
		if step <= StepDelivery {
			m.deliveryComplete = false
		}
		if step <= StepPayment {
			m.paymentComplete = false
		}
		m.termsAccepted = false
	}
	m.step = step
	return nil
}

// Pricing prices the live cart with the chosen payment method.
func (m *Machine) Pricing() pricing.Breakdown {
	return m.opts.Rates.Checkout(m.cart.Subtotal(), m.method)
}

// PlaceOrder waits out the settle delay and then clears the cart and moves
// to Placed. If ctx ends first nothing changes and ctx's error is returned.
func (m *Machine) PlaceOrder(ctx context.Context) (models.OrderConfirmation, error) {
	if err := m.expect(StepReview); err != nil {
		return models.OrderConfirmation{}, err
	}
	if !m.deliveryComplete || !m.paymentComplete {
		return models.OrderConfirmation{}, ErrIncomplete
	}
	if !m.termsAccepted {
		return models.OrderConfirmation{}, ErrTermsNotAccepted
	}
	if m.cart.IsEmpty() {
		return models.OrderConfirmation{}, ErrEmptyCart
	}

	if m.opts.SettleDelay > 0 {
		timer := time.NewTimer(m.opts.SettleDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return models.OrderConfirmation{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return models.OrderConfirmation{}, err
	}

	now := m.opts.Now()
	price := m.Pricing()
	conf := models.OrderConfirmation{
		ID:            uuid.NewString(),
		OrderNumber:   orderNumber(now),
		Items:         m.cart.Items(),
		Delivery:      m.delivery,
		PaymentMethod: m.method,
		Subtotal:      price.Subtotal,
		ShippingFee:   price.ShippingFee,
		CODFee:        price.CODFee,
		Total:         price.Total,
		PlacedAt:      now,
	}
	m.cart.Clear()
	m.confirmation = &conf
	m.step = StepPlaced
	return conf, nil
}

// Confirmation returns the placed order, if any.
func (m *Machine) Confirmation() (models.OrderConfirmation, bool) {
	if m.confirmation == nil {
		return models.OrderConfirmation{}, false
	}
	return *m.confirmation, true
}

// State is a read-only view of the machine for the API.
type State struct {
	Step             Step                 `json:"step"`
	DeliveryComplete bool                 `json:"deliveryComplete"`
	PaymentComplete  bool                 `json:"paymentComplete"`
	TermsAccepted    bool                 `json:"termsAccepted"`
	CanPlaceOrder    bool                 `json:"canPlaceOrder"`
	Delivery         models.DeliveryForm  `json:"delivery"`
	PaymentMethod    models.PaymentMethod `json:"paymentMethod,omitempty"`
	Pricing          pricing.Breakdown    `json:"pricing"`
}

func (m *Machine) State() State {
	return State{
		Step:             m.step,
		DeliveryComplete: m.deliveryComplete,
		PaymentComplete:  m.paymentComplete,
		TermsAccepted:    m.termsAccepted,
		CanPlaceOrder: m.step == StepReview && m.deliveryComplete && m.paymentComplete &&
			m.termsAccepted && !m.cart.IsEmpty(),
		Delivery:      m.delivery,
		PaymentMethod: m.method,
		Pricing:       m.Pricing(),
	}
}

func (m *Machine) expect(step Step) error {
	if m.Placed() {
		return ErrOrderPlaced
	}
	if m.step != step {
		return fmt.Errorf("%s is active, not %s: %w", m.step, step, ErrWrongStep)
	}
	return nil
}

// orderNumber is BOS-<year>-<four digits>.
func orderNumber(now time.Time) string {
	return fmt.Sprintf("BOS-%d-%d", now.Year(), 1000+rand.IntN(9000))
}
