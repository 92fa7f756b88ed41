// Package receipt renders a printable PDF receipt for the most recent
// payment in the ledger.
package receipt

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownPaymentReference indicates a reference token that is neither a
// check number nor a recognized payment-method sentinel. Reported to the
// caller but not fatal; the receipt renders with no method box checked.
var ErrUnknownPaymentReference = errors.New("unknown payment reference")

// Method is the payment method derived from the ledger's reference token.
type Method int

const (
	MethodUnknown Method = iota
	MethodCheck
	MethodACH
	MethodCash
)

// ClassifyReference maps a reference token to a payment method: an all-digit
// token is a check number, and the literals "ACH" and "CASH" (any case) name
// their methods. Anything else is MethodUnknown with an
// ErrUnknownPaymentReference the caller may log and ignore.
func ClassifyReference(reference string) (Method, error) {
	if reference != "" && isDigits(reference) {
		return MethodCheck, nil
	}
	switch strings.ToLower(reference) {
	case "ach":
		return MethodACH, nil
	case "cash":
		return MethodCash, nil
	}
	return MethodUnknown, fmt.Errorf("%w: %q", ErrUnknownPaymentReference, reference)
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
