package schedule

import (
	"fmt"

	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/mathutil"
)

// ApplyBalloon rewrites the schedule in place to reflect a full payoff of the
// remaining balance in the given period. Periods before it are unchanged
// apart from gaining zero extra-payment columns, the target period absorbs
// the whole remaining balance plus that period's interest, and every period
// after it is zeroed out.
func (s *Schedule) ApplyBalloon(period int) error {
	if period < 1 || period > len(s.Entries) {
		return fmt.Errorf("%w: period %d not within term of %d months",
			ErrInvalidBalloonPeriod, period, len(s.Entries))
	}

	for i := range s.Entries {
		entry := &s.Entries[i]
		switch {
		case entry.Number < period:
			entry.ExtraPayment = 0
			entry.TotalPayment = entry.AmountDue
		case entry.Number == period:
			payoff := mathutil.Round(entry.StartingBalance + entry.InterestDue)
			entry.ExtraPayment = mathutil.Round(payoff - entry.AmountDue)
			entry.TotalPayment = mathutil.Round(entry.AmountDue + entry.ExtraPayment)
			entry.EndingBalance = 0
		default:
			// Loan retired; nothing left to pay.
			entry.StartingBalance = 0
			entry.AmountDue = 0
			entry.ExtraPayment = 0
			entry.TotalPayment = 0
			entry.PrincipalDue = 0
			entry.InterestDue = 0
			entry.EndingBalance = 0
		}
	}

	s.Ballooned = true
	return nil
}
