package dto

import (
	"courtbook/internal/domains/payment/model"
	"courtbook/internal/domains/payment/reconciler"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	gModel "courtbook/shared/model"
	"courtbook/shared/timezone"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// PaymentCreateRequest asks a provider for a payment link.
type PaymentCreateRequest struct {
	BookingID     string       `json:"bookingId"`
	Amount        int64        `json:"amount"`
	PaymentMethod model.Method `json:"paymentMethod"`
	Description   string       `json:"description,omitempty"`
	BuyerName     string       `json:"buyerName,omitempty"`
	BuyerEmail    string       `json:"buyerEmail,omitempty"`
	BuyerPhone    string       `json:"buyerPhone,omitempty"`
}

// Validate runs the checks that must pass before any request leaves the process.
func (r PaymentCreateRequest) Validate() error {
	if r.Amount <= 0 {
		return failure.InvalidAmount
	}

	if strings.TrimSpace(r.BookingID) == "" {
		return failure.MissingBookingID
	}

	return nil
}

// ToPayOS fills the redirect targets from configuration. Clients never choose them.
func (r PaymentCreateRequest) ToPayOS(returnURL, cancelURL string) PayOSCreateRequest {
	return PayOSCreateRequest{
		BookingID:   r.BookingID,
		Amount:      r.Amount,
		Description: r.Description,
		ReturnURL:   returnURL,
		CancelURL:   cancelURL,
		BuyerName:   r.BuyerName,
		BuyerEmail:  r.BuyerEmail,
		BuyerPhone:  r.BuyerPhone,
	}
}

type PaymentCreateResult struct {
	PaymentURL    string       `json:"paymentUrl"`
	PaymentRef    string       `json:"paymentRef"`
	QRCode        string       `json:"qrCode,omitempty"`
	PaymentMethod model.Method `json:"paymentMethod"`
	// Payload is the provider response stored verbatim in the ledger.
	Payload json.RawMessage `json:"-"`
}

// PayOSCreateRequest is the body of POST /api/v1/payments/payos/create.
type PayOSCreateRequest struct {
	BookingID   string `json:"bookingId"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
	ReturnURL   string `json:"returnUrl,omitempty"`
	CancelURL   string `json:"cancelUrl,omitempty"`
	BuyerName   string `json:"buyerName,omitempty"`
	BuyerEmail  string `json:"buyerEmail,omitempty"`
	BuyerPhone  string `json:"buyerPhone,omitempty"`
}

// PayOSCreateData is the data member returned by the payment link endpoint.
type PayOSCreateData struct {
	CheckoutURL   string `json:"checkoutUrl"   validate:"required"`
	OrderCode     int64  `json:"orderCode"     validate:"required"`
	PaymentLinkID string `json:"paymentLinkId"`
	QRCode        string `json:"qrCode"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
}

func (d PayOSCreateData) PaymentRef() string {
	return strconv.FormatInt(d.OrderCode, 10)
}

func (d PayOSCreateData) ToResult() PaymentCreateResult {
	return PaymentCreateResult{
		PaymentURL:    d.CheckoutURL,
		PaymentRef:    d.PaymentRef(),
		QRCode:        d.QRCode,
		PaymentMethod: model.MethodPayOS,
	}
}

// PaymentInfo is the provider's view of a payment link.
type PaymentInfo struct {
	OrderCode          int64  `json:"orderCode"          validate:"required"`
	ID                 string `json:"id"`
	Amount             int64  `json:"amount"`
	AmountPaid         int64  `json:"amountPaid"`
	AmountRemaining    int64  `json:"amountRemaining"`
	Status             string `json:"status"             validate:"required"`
	CreatedAt          string `json:"createdAt,omitempty"`
	CanceledAt         string `json:"canceledAt,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty"`

	// Ledger is filled from the local payment ledger, never from the provider.
	Ledger *LedgerEntry `json:"ledger,omitempty" validate:"-"`
}

// LedgerEntry is the locally recorded state of a payment.
type LedgerEntry struct {
	ID            string       `json:"id"`
	BookingID     string       `json:"bookingId"`
	Amount        int64        `json:"amount"`
	PaymentMethod model.Method `json:"paymentMethod"`
	Status        model.Status `json:"status"`
	gDto.Metadata
}

func NewLedgerEntry(transaction model.Transaction) *LedgerEntry {
	entry := &LedgerEntry{
		ID:            transaction.ID,
		BookingID:     transaction.BookingID,
		Amount:        transaction.Amount,
		PaymentMethod: transaction.PaymentMethod,
		Status:        transaction.Status,
	}
	entry.FromModel(transaction.Metadata)

	return entry
}

type CancelRequest struct {
	Reason string `json:"cancellationReason,omitempty" validate:"omitempty,max=255"`
}

type CancelResult struct {
	OrderCode        string `json:"orderCode"`
	Status           string `json:"status"`
	AlreadyCancelled bool   `json:"alreadyCancelled"`
}

// ReconcileResult is returned to the browser after a provider redirect.
type ReconcileResult struct {
	Outcome   model.Outcome `json:"outcome"`
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Code      string        `json:"code"`
	Status    string        `json:"status"`
	OrderCode string        `json:"orderCode"`
	PaymentID string        `json:"paymentId,omitempty"`
	Cancelled bool          `json:"cancelled"`
}

func (r *ReconcileResult) FromResult(result reconciler.Result) {
	r.Outcome = result.Outcome
	r.Success = result.Verified()
	r.Message = result.Message
	r.Code = result.Code
	r.Status = result.Status
	r.OrderCode = result.OrderCode
	r.PaymentID = result.PaymentID
	r.Cancelled = result.Cancelled
}

// OutcomeEvent is published after every reconciliation.
type OutcomeEvent struct {
	Type          string       `json:"type"`
	PaymentRef    string       `json:"paymentRef"`
	PaymentMethod model.Method `json:"paymentMethod"`
	Code          string       `json:"code"`
	Status        string       `json:"status"`
	Message       string       `json:"message"`
	OccurredAt    time.Time    `json:"occurredAt"`
}

func NewOutcomeEvent(method model.Method, result reconciler.Result) OutcomeEvent {
	return OutcomeEvent{
		Type:          "payment." + string(result.Outcome),
		PaymentRef:    result.OrderCode,
		PaymentMethod: method,
		Code:          result.Code,
		Status:        result.Status,
		Message:       result.Message,
		OccurredAt:    timezone.Now(),
	}
}

// NewTransaction builds the pending ledger row for a created payment.
func NewTransaction(req PaymentCreateRequest, result PaymentCreateResult, user string) model.Transaction {
	now := timezone.Now()
	payload := []byte(result.Payload)

	if len(payload) == 0 {
		payload = []byte("{}")
	}

	return model.Transaction{
		ID:              uuid.NewString(),
		PaymentRef:      result.PaymentRef,
		BookingID:       req.BookingID,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		Status:          model.StatusPending,
		ProviderPayload: types.JSONText(payload),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
