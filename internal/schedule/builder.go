package schedule

import (
	"fmt"
	"math"

	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/constants"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/datetime"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/mathutil"
	"go.uber.org/zap"
)

// CalculateMonthlyPayment calculates the level monthly payment for a loan
// using the standard amortization formula. The annual rate is a decimal
// fraction, e.g. 0.06 for 6% APR.
func CalculateMonthlyPayment(amount, annualRate float64, termMonths int) float64 {
	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return amount / float64(termMonths)
	}

	periodicRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return amount * periodicRate / discountFactor
}

// CalculateRemainingBalance calculates the balance outstanding at the start
// of the given period via the closed-form fixed-payment formula, not by
// running subtraction.
func CalculateRemainingBalance(amount, annualRate float64, period, termMonths int) float64 {
	if annualRate == 0 {
		return amount - CalculateMonthlyPayment(amount, annualRate, termMonths)*float64(period-1)
	}

	periodicRate := annualRate / constants.MonthsPerYear
	payment := CalculateMonthlyPayment(amount, annualRate, termMonths)
	growth := math.Pow(1.00+periodicRate, float64(period-1))
	return amount*growth - payment*(growth-1.00)/periodicRate
}

// CalculateInterestPortion calculates the interest portion of the payment
// due in the given period.
func CalculateInterestPortion(amount, annualRate float64, period, termMonths int) float64 {
	periodicRate := annualRate / constants.MonthsPerYear
	return CalculateRemainingBalance(amount, annualRate, period, termMonths) * periodicRate
}

// CalculatePrincipalPortion calculates the principal portion of the payment
// due in the given period.
func CalculatePrincipalPortion(amount, annualRate float64, period, termMonths int) float64 {
	return CalculateMonthlyPayment(amount, annualRate, termMonths) -
		CalculateInterestPortion(amount, annualRate, period, termMonths)
}

// Builder generates amortization schedules from loan terms.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a new schedule builder.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{logger: logger}
}

// Build computes the amortization schedule for the given loan terms.
func (b *Builder) Build(loan Loan) (*Schedule, error) {
	if err := validateLoan(loan); err != nil {
		return nil, err
	}

	b.logger.Info("building list of payment due dates",
		zap.String("op", "schedule.Build"),
	)
	paymentsStart := datetime.OffsetDateByMonths(loan.OriginationDate, 1)
	paymentsEnd := datetime.OffsetDateByMonths(paymentsStart, loan.TermMonths)
	dueDates := DueDates(paymentsStart, paymentsEnd)
	if len(dueDates) != loan.TermMonths {
		return nil, fmt.Errorf("%w: expected %d due dates, scan produced %d",
			ErrScheduleGeneration, loan.TermMonths, len(dueDates))
	}

	b.logger.Info("calculating principal and interest",
		zap.String("op", "schedule.Build"),
	)
	entries := make([]Entry, loan.TermMonths)
	for term := 1; term <= loan.TermMonths; term++ {
		payment := CalculateMonthlyPayment(loan.Amount, loan.AnnualRate, loan.TermMonths)
		interest := CalculateInterestPortion(loan.Amount, loan.AnnualRate, term, loan.TermMonths)
		principal := CalculatePrincipalPortion(loan.Amount, loan.AnnualRate, term, loan.TermMonths)

		entries[term-1] = Entry{
			Number:       term,
			DueDate:      dueDates[term-1],
			AmountDue:    mathutil.RoundTo(payment, constants.BalancePrecision),
			PrincipalDue: mathutil.RoundTo(principal, constants.PortionPrecision),
			InterestDue:  mathutil.RoundTo(interest, constants.PortionPrecision),
		}
	}

	b.logger.Info("calculating running balance",
		zap.String("op", "schedule.Build"),
	)
	for i := range entries {
		principal := entries[i].PrincipalDue
		if i == 0 {
			entries[i].StartingBalance = loan.Amount
			entries[i].EndingBalance = mathutil.Round(loan.Amount - principal)
			continue
		}

		previousEnd := entries[i-1].EndingBalance
		entries[i].StartingBalance = previousEnd
		// Once the balance drops below a single scheduled payment the final
		// periods round to one decimal instead of two. Preserved as-is for
		// compatibility with existing schedule files.
		if previousEnd < entries[i].AmountDue {
			entries[i].EndingBalance = mathutil.RoundTo(previousEnd-principal, 1)
		} else {
			entries[i].EndingBalance = mathutil.Round(previousEnd - principal)
		}
	}

	return &Schedule{Loan: loan, Entries: entries}, nil
}

func validateLoan(loan Loan) error {
	if loan.Amount <= 0 {
		return fmt.Errorf("%w: loan amount must be positive, got %.2f", ErrInvalidLoanTerms, loan.Amount)
	}
	if loan.TermMonths <= 0 {
		return fmt.Errorf("%w: term length must be positive, got %d", ErrInvalidLoanTerms, loan.TermMonths)
	}
	if loan.AnnualRate < 0 {
		return fmt.Errorf("%w: interest rate must not be negative, got %.4f", ErrInvalidLoanTerms, loan.AnnualRate)
	}
	if loan.OriginationDate.IsZero() {
		return fmt.Errorf("%w: origination date is required", ErrInvalidLoanTerms)
	}
	return nil
}
