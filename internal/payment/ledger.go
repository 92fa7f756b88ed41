// Package payment reconciles received payments against an amortization
// schedule and maintains the append-only payment ledger.
package payment

import "time"

// Record is one reconciled payment. Records are created once and never
// mutated after being appended to the ledger.
type Record struct {
	Number          int
	DueDate         time.Time
	ReceivedDate    time.Time
	DaysLate        int
	Reference       string
	StartingBalance float64
	AmountDue       float64
	ReceivedAmount  float64
	PrincipalDue    float64
	InterestDue     float64
	EndingBalance   float64
	LateFee         float64
	Notes           string
}

// Ledger is the ordered, append-only record of payments applied against a
// schedule.
type Ledger struct {
	records []Record
}

// NewLedger creates a ledger seeded with previously recorded payments.
func NewLedger(records []Record) *Ledger {
	return &Ledger{records: records}
}

// NextPaymentNumber returns the payment number to assign to the next
// received payment: one more than the highest recorded number, or 1 for an
// empty ledger.
func (l *Ledger) NextPaymentNumber() int {
	if len(l.records) == 0 {
		return 1
	}
	max := l.records[0].Number
	for _, record := range l.records[1:] {
		if record.Number > max {
			max = record.Number
		}
	}
	return max + 1
}

// Append adds a record to the ledger. This is the only mutator; records are
// never removed or edited.
func (l *Ledger) Append(record Record) {
	l.records = append(l.records, record)
}

// Records returns the recorded payments in payment-number order.
func (l *Ledger) Records() []Record {
	return l.records
}

// Latest returns the most recently appended record, if any.
func (l *Ledger) Latest() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// Len returns the number of recorded payments.
func (l *Ledger) Len() int {
	return len(l.records)
}
