package checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/freshfarm/storefront/internal/cart/domain"
	catalogdomain "github.com/freshfarm/storefront/internal/catalog/domain"
	"github.com/freshfarm/storefront/internal/checkout/domain"
	"github.com/freshfarm/storefront/internal/pricing"
)

type fakeSubmitter struct {
	orders []domain.OrderRequest
	err    error
}

func (f *fakeSubmitter) Submit(_ context.Context, order domain.OrderRequest) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, order)
	return nil
}

type fakePayments struct {
	url      string
	err      error
	sessions int
	amount   int64
}

func (f *fakePayments) CreateSession(_ context.Context, amountMinor int64, _, _ string) (string, error) {
	f.sessions++
	f.amount = amountMinor
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeRecorder struct {
	recorded []domain.OrderRequest
}

func (f *fakeRecorder) RecordConfirmed(_ context.Context, order domain.OrderRequest) {
	f.recorded = append(f.recorded, order)
}

func testSnapshot() *catalogdomain.Snapshot {
	return catalogdomain.NewSnapshot([]catalogdomain.MenuItem{
		{ID: "p1", Name: "Paneer Tikka", Price: 250, Available: true},
		{ID: "p2", Name: "Masala Dosa", Price: 120, Available: true},
	}, nil)
}

func validForm() domain.CustomerForm {
	return domain.CustomerForm{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Table: "4"}
}

func newTestOrchestrator(submitter OrderSubmitter, payments PaymentInitiator, recorder Recorder) (*Orchestrator, *cartdomain.Store) {
	cart := cartdomain.NewStore()
	o := New(cart, pricing.NewDefaultEngine(), submitter, payments, recorder)
	return o, cart
}

func TestConfirm_StartsInEditing(t *testing.T) {
	o, _ := newTestOrchestrator(&fakeSubmitter{}, &fakePayments{}, nil)
	assert.Equal(t, domain.StateEditing, o.State())
}

func TestConfirm_InvalidFormNeverReachesSubmitter(t *testing.T) {
	submitter := &fakeSubmitter{}
	o, cart := newTestOrchestrator(submitter, &fakePayments{}, nil)
	cart.AddOne("p1")

	form := validForm()
	form.Phone = ""
	_, err := o.Confirm(context.Background(), form, domain.PaymentMethodCOD, testSnapshot())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, submitter.orders)
	assert.Equal(t, domain.StateEditing, o.State())
	assert.Len(t, cart.Lines(), 1)
}

func TestConfirm_OfflineSubmitsAndClearsCart(t *testing.T) {
	submitter := &fakeSubmitter{}
	recorder := &fakeRecorder{}
	o, cart := newTestOrchestrator(submitter, &fakePayments{}, recorder)
	cart.AddOne("p1")
	cart.AddOne("p1")
	cart.AddOne("p2")

	res, err := o.Confirm(context.Background(), validForm(), domain.PaymentMethodCOD, testSnapshot())

	require.NoError(t, err)
	assert.Equal(t, domain.StateConfirmed, res.State)
	assert.Empty(t, cart.Lines())

	require.Len(t, submitter.orders, 1)
	order := submitter.orders[0]
	assert.Equal(t, domain.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, domain.PaymentStatusCompleted, order.PaymentStatus)
	// 2x250 + 120 = 620, plus 18% tax, delivery waived above 500.
	assert.InDelta(t, 731.6, order.TotalPrice, 1e-9)
	assert.Equal(t, []domain.OrderLine{
		{MenuItemID: "p1", Quantity: 2},
		{MenuItemID: "p2", Quantity: 1},
	}, order.MenuItems)

	require.Len(t, recorder.recorded, 1)
}

func TestConfirm_OfflineSubmitFailureKeepsCart(t *testing.T) {
	submitter := &fakeSubmitter{err: fmt.Errorf("upstream down")}
	o, cart := newTestOrchestrator(submitter, &fakePayments{}, nil)
	cart.AddOne("p1")

	_, err := o.Confirm(context.Background(), validForm(), domain.PaymentMethodCOD, testSnapshot())

	require.Error(t, err)
	assert.Equal(t, domain.StateEditing, o.State())
	assert.Len(t, cart.Lines(), 1)
}

func TestConfirm_OnlineReturnsSessionURL(t *testing.T) {
	payments := &fakePayments{url: "https://pay.example/session/abc"}
	submitter := &fakeSubmitter{}
	o, cart := newTestOrchestrator(submitter, payments, nil)
	cart.AddOne("p1")

	res, err := o.Confirm(context.Background(), validForm(), domain.PaymentMethodOnline, testSnapshot())

	require.NoError(t, err)
	assert.Equal(t, domain.StateOnlinePayment, res.State)
	assert.Equal(t, "https://pay.example/session/abc", res.PaymentURL)
	// 250 + 18% tax + 50 delivery = 345.00, in minor units.
	assert.Equal(t, int64(34500), payments.amount)
	// Cart is untouched until payment completes, and nothing is submitted yet.
	assert.Len(t, cart.Lines(), 1)
	assert.Empty(t, submitter.orders)
}

func TestConfirm_OnlineSessionFailureReturnsToEditing(t *testing.T) {
	payments := &fakePayments{err: errors.New("gateway timeout")}
	o, cart := newTestOrchestrator(&fakeSubmitter{}, payments, nil)
	cart.AddOne("p1")

	_, err := o.Confirm(context.Background(), validForm(), domain.PaymentMethodOnline, testSnapshot())

	require.Error(t, err)
	assert.Equal(t, domain.StateEditing, o.State())
	assert.Len(t, cart.Lines(), 1)
}

func TestConfirm_RejectsUnknownMethod(t *testing.T) {
	o, _ := newTestOrchestrator(&fakeSubmitter{}, &fakePayments{}, nil)

	_, err := o.Confirm(context.Background(), validForm(), "Cheque", testSnapshot())

	require.Error(t, err)
	assert.Equal(t, domain.StateEditing, o.State())
}

func TestConfirm_RejectedWhilePaymentInProgress(t *testing.T) {
	payments := &fakePayments{url: "https://pay.example/session/abc"}
	o, cart := newTestOrchestrator(&fakeSubmitter{}, payments, nil)
	cart.AddOne("p1")

	_, err := o.Confirm(context.Background(), validForm(), domain.PaymentMethodOnline, testSnapshot())
	require.NoError(t, err)

	_, err = o.Confirm(context.Background(), validForm(), domain.PaymentMethodCOD, testSnapshot())
	require.Error(t, err)
	assert.Equal(t, domain.StateOnlinePayment, o.State())
}

func TestHandleRedirect_AuthorizedCompletesExactlyOnce(t *testing.T) {
	payments := &fakePayments{url: "https://pay.example/session/abc"}
	recorder := &fakeRecorder{}
	o, cart := newTestOrchestrator(&fakeSubmitter{}, payments, recorder)
	cart.AddOne("p1")

	_, err := o.Confirm(context.Background(), validForm(), domain.PaymentMethodOnline, testSnapshot())
	require.NoError(t, err)

	redirect := "https://pay.example/callback?razorpay_payment_id=pay_1&status=authorized"
	state := o.HandleRedirect(context.Background(), redirect)
	assert.Equal(t, domain.StateConfirmed, state)
	assert.Empty(t, cart.Lines())
	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, domain.PaymentStatusCompleted, recorder.recorded[0].PaymentStatus)

	// The embedded surface can fire the same navigation more than once.
	cart.AddOne("p2")
	state = o.HandleRedirect(context.Background(), redirect)
	assert.Equal(t, domain.StateConfirmed, state)
	assert.Len(t, cart.Lines(), 1)
	assert.Len(t, recorder.recorded, 1)
}

func TestHandleRedirect_FailedReturnsToEditing(t *testing.T) {
	payments := &fakePayments{url: "https://pay.example/session/abc"}
	o, cart := newTestOrchestrator(&fakeSubmitter{}, payments, nil)
	cart.AddOne("p1")

	_, err := o.Confirm(context.Background(), validForm(), domain.PaymentMethodOnline, testSnapshot())
	require.NoError(t, err)

	state := o.HandleRedirect(context.Background(), "https://pay.example/callback?status=failed")
	assert.Equal(t, domain.StateEditing, state)
	assert.Len(t, cart.Lines(), 1)
}

func TestHandleRedirect_IgnoresIntermediateNavigation(t *testing.T) {
	payments := &fakePayments{url: "https://pay.example/session/abc"}
	o, cart := newTestOrchestrator(&fakeSubmitter{}, payments, nil)
	cart.AddOne("p1")

	_, err := o.Confirm(context.Background(), validForm(), domain.PaymentMethodOnline, testSnapshot())
	require.NoError(t, err)

	state := o.HandleRedirect(context.Background(), "https://pay.example/otp-entry")
	assert.Equal(t, domain.StateOnlinePayment, state)
	assert.Len(t, cart.Lines(), 1)
}

func TestHandleRedirect_NoOpOutsideOnlinePayment(t *testing.T) {
	o, cart := newTestOrchestrator(&fakeSubmitter{}, &fakePayments{}, nil)
	cart.AddOne("p1")

	state := o.HandleRedirect(context.Background(), "https://pay.example/callback?status=authorized")
	assert.Equal(t, domain.StateEditing, state)
	assert.Len(t, cart.Lines(), 1)
}

func TestClose_SilentlyCancelsPayment(t *testing.T) {
	payments := &fakePayments{url: "https://pay.example/session/abc"}
	o, cart := newTestOrchestrator(&fakeSubmitter{}, payments, nil)
	cart.AddOne("p1")

	_, err := o.Confirm(context.Background(), validForm(), domain.PaymentMethodOnline, testSnapshot())
	require.NoError(t, err)

	state := o.Close()
	assert.Equal(t, domain.StateEditing, state)
	assert.Len(t, cart.Lines(), 1)

	// Closing outside OnlinePayment changes nothing.
	assert.Equal(t, domain.StateEditing, o.Close())
}
