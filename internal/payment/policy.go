package payment

import (
	"time"

	"github.com/FishheadNate/Loan-Payment-Tracker/internal/schedule"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/constants"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/currency"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/datetime"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/mathutil"
	"go.uber.org/zap"
)

// Category classifies a received amount against the scheduled obligation.
// The three branches overlap on paper; classification resolves them in a
// fixed precedence so the overlap is explicit rather than accidental.
type Category int

const (
	// CategoryExact: the received amount matches the scheduled payment.
	CategoryExact Category = iota
	// CategoryOverOrAboveInterest: the received amount exceeds the scheduled
	// payment, or falls short of it while still exceeding the interest due.
	// Either way the surplus over interest reduces principal.
	CategoryOverOrAboveInterest
	// CategoryUnder: the received amount covers at most the interest due.
	CategoryUnder
)

// Classify resolves the received amount to a Category. Exact wins over the
// overpayment branch on the boundary so that paying the scheduled amount
// lands exactly on the schedule's own ending balance.
func Classify(received, amountDue, interestDue float64) Category {
	switch {
	case received == amountDue:
		return CategoryExact
	case received > amountDue || received > interestDue:
		return CategoryOverOrAboveInterest
	default:
		return CategoryUnder
	}
}

// Policy reconciles received payments against schedule entries.
type Policy struct {
	logger *zap.Logger
}

// NewPolicy creates a payment policy.
func NewPolicy(logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Policy{logger: logger}
}

// Received holds the raw details of one incoming payment before
// reconciliation.
type Received struct {
	Amount    float64
	Date      time.Time
	Reference string
	Notes     string
}

// Apply reconciles one received payment against the schedule entry it
// targets and returns the fully populated ledger record. The entry is the
// schedule period whose number matches the assigned payment number.
func (p *Policy) Apply(number int, entry schedule.Entry, received Received) Record {
	p.logger.Info("processing payment",
		zap.String("op", "payment.Apply"),
		zap.Int("payment_number", number),
		zap.String("amount", currency.Format(received.Amount)),
		zap.String("received", datetime.FormatLongDate(received.Date)),
	)
	p.logger.Info("starting balance: "+currency.Format(entry.StartingBalance),
		zap.String("op", "payment.Apply"),
	)

	endingBalance := p.endingBalance(entry, received.Amount)
	p.logger.Info("ending balance: "+currency.Format(endingBalance),
		zap.String("op", "payment.Apply"),
	)

	daysLate := datetime.WholeDaysBetween(entry.DueDate, received.Date)
	var lateFee float64
	if daysLate > 0 {
		lateFee = mathutil.Round(entry.PrincipalDue * (constants.LateFeeAnnualRate / constants.DaysPerYear) * float64(daysLate))
		p.logger.Info("late fee: "+currency.Format(lateFee),
			zap.String("op", "payment.Apply"),
			zap.Int("days_late", daysLate),
		)
	} else {
		daysLate = 0
	}

	return Record{
		Number:          number,
		DueDate:         entry.DueDate,
		ReceivedDate:    received.Date,
		DaysLate:        daysLate,
		Reference:       received.Reference,
		StartingBalance: entry.StartingBalance,
		AmountDue:       entry.AmountDue,
		ReceivedAmount:  received.Amount,
		PrincipalDue:    entry.PrincipalDue,
		InterestDue:     entry.InterestDue,
		EndingBalance:   endingBalance,
		LateFee:         lateFee,
		Notes:           received.Notes,
	}
}

func (p *Policy) endingBalance(entry schedule.Entry, received float64) float64 {
	switch Classify(received, entry.AmountDue, entry.InterestDue) {
	case CategoryExact:
		return entry.EndingBalance
	case CategoryOverOrAboveInterest:
		return entry.StartingBalance - (received - entry.InterestDue)
	default:
		if received == entry.InterestDue {
			// Interest-only payment; no principal reduction.
			return entry.StartingBalance
		}
		remainder := received - entry.InterestDue
		if remainder > 0 {
			p.logger.Info(currency.Format(entry.PrincipalDue-remainder)+
				" of unpaid principal needs to be added to the next invoice",
				zap.String("op", "payment.Apply"),
			)
			return entry.StartingBalance - remainder
		}
		p.logger.Info(currency.Format(-remainder)+" of interest was left unpaid",
			zap.String("op", "payment.Apply"),
		)
		return entry.StartingBalance
	}
}
