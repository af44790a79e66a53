// Package reconciler classifies provider return redirects. It performs no I/O.
package reconciler

import (
	"courtbook/internal/domains/payment/model"
	"courtbook/shared"
	"fmt"
	"net/url"
	"strings"
)

const (
	CodeSuccess    = "00"
	CodeFailed     = "01"
	CodeCancelled  = "02"
	CodePending    = "03"
	CodeExpired    = "04"
	CodeNoBalance  = "05"
	CodeBadPayment = "06"
	CodeSystem     = "07"
)

var payOSMessages = map[string]string{
	CodeSuccess:    "Giao dịch thành công",
	CodeFailed:     "Giao dịch thất bại",
	CodeCancelled:  "Giao dịch đã bị hủy",
	CodePending:    "Giao dịch đang chờ xử lý",
	CodeExpired:    "Giao dịch đã hết hạn",
	CodeNoBalance:  "Số dư tài khoản không đủ",
	CodeBadPayment: "Thông tin thanh toán không hợp lệ",
	CodeSystem:     "Lỗi hệ thống, vui lòng thử lại sau",
}

// Result is the classification of one return redirect.
type Result struct {
	Outcome   model.Outcome
	Message   string
	Code      string
	Status    string
	OrderCode string
	PaymentID string
	Cancelled bool
}

func (r Result) Verified() bool {
	return r.Outcome == model.OutcomeVerified
}

// ParseReturnParams reads the PayOS return query. Missing keys stay empty.
func ParseReturnParams(query url.Values) model.ReturnParams {
	return model.ReturnParams{
		Code:      strings.TrimSpace(query.Get("code")),
		ID:        strings.TrimSpace(query.Get("id")),
		Cancel:    strings.TrimSpace(query.Get("cancel")),
		Status:    strings.TrimSpace(query.Get("status")),
		OrderCode: strings.TrimSpace(query.Get("orderCode")),
	}
}

// cancelled treats a missing or unparseable flag as cancelled.
func cancelled(raw string) bool {
	flag := shared.ConvertStringToBool(raw)

	return flag == nil || *flag
}

// Verify reports whether the redirect describes a paid, non-cancelled payment.
func Verify(params model.ReturnParams) bool {
	return params.Code == CodeSuccess && params.Status == model.PayOSStatusPaid && !cancelled(params.Cancel)
}

func Reconcile(params model.ReturnParams) Result {
	result := Result{
		Code:      params.Code,
		Status:    params.Status,
		OrderCode: params.OrderCode,
		PaymentID: params.ID,
		Cancelled: cancelled(params.Cancel),
	}

	if Verify(params) {
		result.Outcome = model.OutcomeVerified
		result.Message = PayOSErrorMessage(CodeSuccess)

		return result
	}

	result.Outcome = model.OutcomeRejected
	result.Message = rejectionMessage(params.Code, params.Status, result.Cancelled)

	return result
}

// Confirm settles a classification against the status the backend reports for the order.
// It returns false while the order is still open, in which case nothing may be recorded.
func Confirm(result Result, providerStatus string) (Result, bool) {
	confirmed := result
	confirmed.Status = providerStatus

	switch providerStatus {
	case model.PayOSStatusPaid:
		confirmed.Outcome = model.OutcomeVerified
		confirmed.Message = PayOSErrorMessage(CodeSuccess)
	case model.PayOSStatusCancelled, model.PayOSStatusExpired:
		confirmed.Outcome = model.OutcomeRejected
		confirmed.Message = rejectionMessage("", providerStatus, false)
	default:
		return result, false
	}

	return confirmed, true
}

func rejectionMessage(code, status string, isCancelled bool) string {
	if isCancelled {
		return PayOSErrorMessage(CodeCancelled)
	}

	switch status {
	case model.PayOSStatusCancelled:
		return PayOSErrorMessage(CodeCancelled)
	case model.PayOSStatusPending, model.PayOSStatusProcessing:
		return PayOSErrorMessage(CodePending)
	case model.PayOSStatusExpired:
		return PayOSErrorMessage(CodeExpired)
	}

	if code == CodeSuccess {
		return PayOSErrorMessage(CodeFailed)
	}

	return PayOSErrorMessage(code)
}

// PayOSErrorMessage maps a PayOS result code to a user facing message. It never returns "".
func PayOSErrorMessage(code string) string {
	if msg, ok := payOSMessages[code]; ok {
		return msg
	}

	return fmt.Sprintf("Lỗi không xác định (mã lỗi: %s)", code)
}
