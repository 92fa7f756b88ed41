// Package schedule computes loan amortization schedules: the due-date
// sequence, the per-period principal/interest breakdown with running
// balances, and the balloon-payoff adjustment.
package schedule

import (
	"errors"
	"time"
)

var (
	// ErrInvalidLoanTerms indicates a non-positive amount or term, or a
	// malformed origination date.
	ErrInvalidLoanTerms = errors.New("invalid loan terms")

	// ErrScheduleGeneration indicates the due-date scan did not produce one
	// date per period.
	ErrScheduleGeneration = errors.New("schedule generation failed")

	// ErrInvalidBalloonPeriod indicates a balloon target period outside the
	// loan term.
	ErrInvalidBalloonPeriod = errors.New("balloon period out of range")
)

// Loan holds the terms of a loan. Terms are immutable once set.
type Loan struct {
	Amount          float64
	AnnualRate      float64
	TermMonths      int
	OriginationDate time.Time
}

// Entry is one period of an amortization schedule. ExtraPayment and
// TotalPayment are only meaningful on balloon-adjusted schedules.
type Entry struct {
	Number          int
	DueDate         time.Time
	StartingBalance float64
	AmountDue       float64
	ExtraPayment    float64
	TotalPayment    float64
	PrincipalDue    float64
	InterestDue     float64
	EndingBalance   float64
}

// Schedule is the full amortization schedule for a loan, one entry per
// period, ordered by period number starting at 1.
type Schedule struct {
	Loan      Loan
	Entries   []Entry
	Ballooned bool
}

// Entry returns the schedule entry for the given period number.
func (s *Schedule) Entry(number int) (Entry, bool) {
	if number < 1 || number > len(s.Entries) {
		return Entry{}, false
	}
	return s.Entries[number-1], true
}
