package checkout

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	cartdomain "github.com/freshfarm/storefront/internal/cart/domain"
	catalogdomain "github.com/freshfarm/storefront/internal/catalog/domain"
	"github.com/freshfarm/storefront/internal/checkout/domain"
	"github.com/freshfarm/storefront/internal/pricing"
	"github.com/freshfarm/storefront/pkg/logger"
)

// CartStore is the cart the orchestrator reads and clears
type CartStore interface {
	Lines() []cartdomain.Line
	Clear()
}

// OrderSubmitter submits an order to the upstream order endpoint
type OrderSubmitter interface {
	Submit(ctx context.Context, order domain.OrderRequest) error
}

// PaymentInitiator requests a hosted-checkout payment session URL
type PaymentInitiator interface {
	CreateSession(ctx context.Context, amountMinor int64, name, phone string) (string, error)
}

// Recorder observes confirmed orders (order journal, event publishing).
// Recording must not affect the checkout outcome.
type Recorder interface {
	RecordConfirmed(ctx context.Context, order domain.OrderRequest)
}

// Result is the outcome of a confirm attempt
type Result struct {
	State      string `json:"state"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}

// Orchestrator walks one session through checkout:
// Editing -> Validating -> {OnlinePayment|OfflinePayment} -> Confirmed.
// There is no cancelled state; closing the payment surface returns to
// Editing with the cart intact.
type Orchestrator struct {
	mu      sync.Mutex
	state   string
	pending *domain.OrderRequest

	cart      CartStore
	engine    *pricing.Engine
	submitter OrderSubmitter
	payments  PaymentInitiator
	recorder  Recorder
}

// New creates an orchestrator in the Editing state. recorder may be nil.
func New(cart CartStore, engine *pricing.Engine, submitter OrderSubmitter, payments PaymentInitiator, recorder Recorder) *Orchestrator {
	return &Orchestrator{
		state:     domain.StateEditing,
		cart:      cart,
		engine:    engine,
		submitter: submitter,
		payments:  payments,
		recorder:  recorder,
	}
}

// State returns the current checkout state.
func (o *Orchestrator) State() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Confirm validates the form and dispatches the chosen payment path. The
// catalog snapshot is an explicit input so the missing-product pricing
// policy is visible at the call site.
func (o *Orchestrator) Confirm(ctx context.Context, form domain.CustomerForm, method string, snap *catalogdomain.Snapshot) (*Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == domain.StateOnlinePayment {
		return nil, fmt.Errorf("payment already in progress")
	}

	o.state = domain.StateValidating
	if err := form.Validate(); err != nil {
		o.state = domain.StateEditing
		return nil, err
	}

	lines := o.cart.Lines()
	quote := o.engine.Quote(lines, snap)

	order := domain.OrderRequest{
		CustomerName:   form.Name,
		CustomerEmail:  form.Email,
		CustomerNumber: form.Phone,
		Table:          form.Table,
		MenuItems:      toOrderLines(lines),
		TotalPrice:     quote.Total,
	}

	switch method {
	case domain.PaymentMethodCOD:
		return o.confirmOffline(ctx, order)
	case domain.PaymentMethodOnline:
		return o.startOnlinePayment(ctx, order)
	default:
		o.state = domain.StateEditing
		return nil, fmt.Errorf("unknown payment method: %s", method)
	}
}

func (o *Orchestrator) confirmOffline(ctx context.Context, order domain.OrderRequest) (*Result, error) {
	o.state = domain.StateOfflinePayment
	order.PaymentMethod = domain.PaymentMethodCOD
	order.PaymentStatus = domain.PaymentStatusCompleted

	if err := o.submitter.Submit(ctx, order); err != nil {
		o.state = domain.StateEditing
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	o.complete(ctx, order)
	return &Result{State: o.state}, nil
}

func (o *Orchestrator) startOnlinePayment(ctx context.Context, order domain.OrderRequest) (*Result, error) {
	order.PaymentMethod = domain.PaymentMethodOnline
	order.PaymentStatus = domain.PaymentStatusPending

	amountMinor := int64(math.Round(order.TotalPrice * 100))
	paymentURL, err := o.payments.CreateSession(ctx, amountMinor, order.CustomerName, order.CustomerNumber)
	if err != nil {
		o.state = domain.StateEditing
		return nil, fmt.Errorf("could not start payment: %w", err)
	}

	o.pending = &order
	o.state = domain.StateOnlinePayment
	return &Result{State: o.state, PaymentURL: paymentURL}, nil
}

// HandleRedirect inspects a navigation event from the embedded payment
// surface. A URL containing the authorized token completes the checkout
// exactly once; the failed token returns to Editing with the cart intact;
// anything else is ignored. Outside OnlinePayment every event is a no-op,
// which makes duplicate completion events harmless.
func (o *Orchestrator) HandleRedirect(ctx context.Context, navigatedURL string) string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != domain.StateOnlinePayment {
		return o.state
	}

	switch {
	case strings.Contains(navigatedURL, domain.TokenAuthorized):
		order := *o.pending
		order.PaymentStatus = domain.PaymentStatusCompleted
		o.pending = nil
		o.complete(ctx, order)
	case strings.Contains(navigatedURL, domain.TokenFailed):
		logger.Warn(ctx).Msg("Payment failed, returning to editing")
		o.pending = nil
		o.state = domain.StateEditing
	}

	return o.state
}

// Close handles the payment surface being dismissed without a redirect
// token: a silent cancellation back to Editing, cart preserved.
func (o *Orchestrator) Close() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == domain.StateOnlinePayment {
		o.pending = nil
		o.state = domain.StateEditing
	}
	return o.state
}

func (o *Orchestrator) complete(ctx context.Context, order domain.OrderRequest) {
	o.cart.Clear()
	o.state = domain.StateConfirmed

	logger.Info(ctx).
		Str("payment_method", order.PaymentMethod).
		Float64("total", order.TotalPrice).
		Msg("Order confirmed")

	if o.recorder != nil {
		o.recorder.RecordConfirmed(ctx, order)
	}
}

func toOrderLines(lines []cartdomain.Line) []domain.OrderLine {
	out := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, domain.OrderLine{MenuItemID: line.ProductID, Quantity: line.Quantity})
	}
	return out
}
