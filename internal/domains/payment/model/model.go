package model

import (
	"courtbook/shared/model"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "payment_transactions"
	EntityName = "payment_transaction"

	FieldID              = "id"
	FieldPaymentRef      = "payment_ref"
	FieldBookingID       = "booking_id"
	FieldAmount          = "amount"
	FieldPaymentMethod   = "payment_method"
	FieldStatus          = "status"
	FieldProviderPayload = "provider_payload"
	FieldModifiedAt      = "modified_at"
	FieldModifiedBy      = "modified_by"
)

// Method identifies a payment provider.
type Method string

const (
	MethodPayOS   Method = "payos"
	MethodMoMo    Method = "momo"
	MethodZaloPay Method = "zalopay"
	MethodBanking Method = "banking"
)

func (m Method) Valid() bool {
	switch m {
	case MethodPayOS, MethodMoMo, MethodZaloPay, MethodBanking:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// StatusUpdate is the column set written when a transaction settles.
type StatusUpdate struct {
	Status Status `db:"status"`
}

// Outcome is the classification of a provider return redirect.
type Outcome string

const (
	OutcomeVerified Outcome = "verified"
	OutcomeRejected Outcome = "rejected"
)

// Transaction is one ledger row. It is created pending and moves to success or failed exactly once.
type Transaction struct {
	ID              string         `db:"id"`
	PaymentRef      string         `db:"payment_ref"`
	BookingID       string         `db:"booking_id"`
	Amount          int64          `db:"amount"`
	PaymentMethod   Method         `db:"payment_method"`
	Status          Status         `db:"status"`
	ProviderPayload types.JSONText `db:"provider_payload"`
	model.Metadata
}

// ReturnParams are the query parameters a provider appends to the return URL.
type ReturnParams struct {
	Code      string
	ID        string
	Cancel    string
	Status    string
	OrderCode string
}

// PayOS payment link statuses.
const (
	PayOSStatusPaid       = "PAID"
	PayOSStatusPending    = "PENDING"
	PayOSStatusProcessing = "PROCESSING"
	PayOSStatusCancelled  = "CANCELLED"
	PayOSStatusExpired    = "EXPIRED"
)
