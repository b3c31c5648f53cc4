package services

import (
	"fmt"
	"strings"

	"quicktransit/internal/domain"
	"quicktransit/internal/utils"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	MethodCash  PaymentMethod = "cash"
	MethodCard  PaymentMethod = "card"
	MethodMpesa PaymentMethod = "mpesa"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case MethodCash:
		return MethodCash, nil
	case MethodCard:
		return MethodCard, nil
	case MethodMpesa:
		return MethodMpesa, nil
	default:
		return "", domain.ValidationError{Field: "payment_method", Msg: "must be cash, card or mpesa"}
	}
}

type PaymentResult struct {
	Success   bool
	Method    PaymentMethod
	Reference string
}

// PaymentService simulates charging. Cash needs no provider; the card and
// mpesa processors are stand-ins to be swapped for a real gateway and
// currently approve every charge.
type PaymentService struct {
	RequestID string
}

func (s PaymentService) Charge(method PaymentMethod, amount float64) PaymentResult {
	var ref string
	var ok bool
	switch method {
	case MethodCash:
		ref, ok = "CASH-"+uuid.NewString(), true
	case MethodCard:
		ref, ok = processCardPayment(amount)
	case MethodMpesa:
		ref, ok = processMpesaPayment(amount)
	default:
		return PaymentResult{Success: false, Method: method}
	}

	utils.LogEvent(s.RequestID, "payment", "charge",
		fmt.Sprintf("method=%s amount=%s ok=%t ref=%s", method, utils.FormatMoney(amount), ok, ref))
	return PaymentResult{Success: ok, Method: method, Reference: ref}
}

func processCardPayment(_ float64) (string, bool) {
	return "CARD-" + uuid.NewString(), true
}

func processMpesaPayment(_ float64) (string, bool) {
	return "MPESA-" + uuid.NewString(), true
}
