// Package constants provides shared constants for the loan payment tracker.
package constants

import "time"

// Date layout constants
const (
	// InputDateLayout is the date format expected on the command line
	// (MM-DD-YYYY).
	InputDateLayout = "01-02-2006"

	// LongDateLayout is the human-readable date format used in the schedule
	// and ledger files (e.g. "March 10, 2024").
	LongDateLayout = "January 02, 2006"
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day count used for per-diem late fee accrual
	DaysPerYear = 365

	// LateFeeAnnualRate is the annual rate charged on unpaid principal when a
	// payment arrives after its due date
	LateFeeAnnualRate = 0.18

	// BalancePrecision is the number of decimal places for balances and
	// scheduled payment amounts
	BalancePrecision = 2

	// PortionPrecision is the number of decimal places for the principal and
	// interest portions of a scheduled payment
	PortionPrecision = 3

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Due date generation constants
const (
	// DueDayOfMonth is the calendar day payments fall due on
	DueDayOfMonth = 10

	// DueDateScanOffset shifts the daily due-date scan window relative to the
	// payment start and end dates. The 7.5 day value is a magic constant;
	// existing schedule files depend on it, since it decides which day-10
	// dates land inside the scan window.
	DueDateScanOffset = 7*24*time.Hour + 12*time.Hour
)

// File location constants
const (
	// DefaultLedgerFile is the default payment ledger file name
	DefaultLedgerFile = "payments.csv"

	// DefaultReceiptsDir is the default directory receipts are written to
	DefaultReceiptsDir = "receipts"

	// ScheduleFilePattern is the default amortization table file name; the
	// placeholder is the term length in months
	ScheduleFilePattern = "Amortization-Table-%dmonths.csv"
)
