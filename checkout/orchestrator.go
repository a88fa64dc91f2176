package checkout

import (
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/naxo-910/elsabor-api/cart"
	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/models"
	"github.com/naxo-910/elsabor-api/stock"
	"github.com/naxo-910/elsabor-api/storage"
)

// State of a checkout attempt.
type State string

const (
	StateIdle           State = "idle"
	StateValidating     State = "validating"
	StateRejected       State = "rejected"
	StatePaymentPending State = "payment_pending"
	StateSucceeded      State = "succeeded"
	StatePaymentFailed  State = "payment_failed"
)

// successProbability is the chance the simulated payment clears. This is a
// plain pseudo-random draw, not a security boundary.
const successProbability = 0.8

// emptyCartRedirectDelay is how long the collaborator should wait before
// navigating to the product list after an empty-cart rejection.
const emptyCartRedirectDelay = 2 * time.Second

var (
	cardPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern  = regexp.MustCompile(`^\d{3}$`)
)

// Result is the outcome of a checkout submission, including the navigation
// hint the collaborator should follow.
type Result struct {
	State         State         `json:"state"`
	Message       string        `json:"message,omitempty"`
	StockIssues   []string      `json:"stock_issues,omitempty"`
	OrderNumber   int           `json:"order_number,omitempty"`
	Reference     string        `json:"reference,omitempty"`
	Navigate      string        `json:"navigate,omitempty"`
	RedirectAfter time.Duration `json:"-"`
}

// Orchestrator runs the checkout state machine:
// Idle → Validating → (Rejected | PaymentPending) → (Succeeded | PaymentFailed).
type Orchestrator struct {
	catalog *catalog.Store
	stock   *stock.Reconciler
	store   *storage.Store
	rng     *rand.Rand
}

// New builds an orchestrator. A nil rng gets a time-seeded source; tests pass
// a seeded one.
func New(cat *catalog.Store, rec *stock.Reconciler, store *storage.Store, rng *rand.Rand) *Orchestrator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Orchestrator{catalog: cat, stock: rec, store: store, rng: rng}
}

// Validate runs the Validating transition over the submitted form and cart.
// It returns a Rejected result, or nil when the attempt may proceed to
// payment. Nothing is persisted and the cart is untouched either way.
func (o *Orchestrator) Validate(form models.CheckoutForm, ledger *cart.Ledger) *Result {
	if ledger.IsEmpty() {
		return &Result{
			State:         StateRejected,
			Message:       "cart is empty",
			Navigate:      "/products",
			RedirectAfter: emptyCartRedirectDelay,
		}
	}
	if issues := o.stock.Issues(ledger.Lines()); len(issues) > 0 {
		return &Result{
			State:       StateRejected,
			Message:     "some cart items exceed available stock",
			StockIssues: issues,
		}
	}
	if missing := missingShippingFields(form); len(missing) > 0 {
		return &Result{
			State:   StateRejected,
			Message: "required fields are missing: " + strings.Join(missing, ", "),
		}
	}
	if !cardPattern.MatchString(form.CardNumber) {
		return &Result{State: StateRejected, Message: "card number must be exactly 16 digits"}
	}
	if !cvvPattern.MatchString(form.CVV) {
		return &Result{State: StateRejected, Message: "CVV must be exactly 3 digits"}
	}
	return nil
}

// Submit runs a full checkout attempt. On success the cart is cleared and
// sold stock is deducted from the catalog; on a failed payment the cart is
// left untouched so the user may retry. Both outcomes persist the order
// summary for the outcome page.
func (o *Orchestrator) Submit(form models.CheckoutForm, ledger *cart.Ledger) Result {
	if rejected := o.Validate(form, ledger); rejected != nil {
		return *rejected
	}

	lines := ledger.Lines()
	summary := models.OrderSummary{
		OrderNumber: o.orderNumber(),
		Reference:   orderReference(),
		Cart:        ledger.Entries(),
		Total:       ledger.Total(),
		FormData:    form,
		PlacedAt:    time.Now(),
	}

	// PaymentPending: the simulated gateway.
	summary.Paid = o.rng.Float64() < successProbability

	if err := o.store.Put(storage.LastOrderKey, summary); err != nil {
		log.Printf("❌ Failed to persist order summary %d: %v", summary.OrderNumber, err)
	}

	if !summary.Paid {
		return Result{
			State:       StatePaymentFailed,
			Message:     "payment was declined, your cart is unchanged",
			OrderNumber: summary.OrderNumber,
			Reference:   summary.Reference,
			Navigate:    "/error",
		}
	}

	for _, line := range lines {
		o.catalog.DecrementStock(line.ProductID, line.Quantity)
	}
	if err := ledger.Clear(); err != nil {
		log.Printf("❌ Failed to clear cart after order %d: %v", summary.OrderNumber, err)
	}
	return Result{
		State:       StateSucceeded,
		OrderNumber: summary.OrderNumber,
		Reference:   summary.Reference,
		Navigate:    "/success",
	}
}

// LastOrder reads the persisted summary of the most recent attempt.
func (o *Orchestrator) LastOrder() (models.OrderSummary, bool) {
	var summary models.OrderSummary
	ok, err := o.store.Get(storage.LastOrderKey, &summary)
	if err != nil || !ok {
		return models.OrderSummary{}, false
	}
	return summary, true
}

// orderNumber draws a random 8-digit order number.
func (o *Orchestrator) orderNumber() int {
	return 10000000 + o.rng.Intn(90000000)
}

// orderReference builds a unique reference string, e.g. 20250908130500-<uuid>.
func orderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func missingShippingFields(form models.CheckoutForm) []string {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"full_name", form.FullName},
		{"email", form.Email},
		{"address", form.Address},
		{"commune", form.Commune},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
