// Package store reads and writes the flat tabular files the tracker keeps
// its state in: the amortization schedule table and the payment ledger.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/FishheadNate/Loan-Payment-Tracker/internal/schedule"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/currency"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/datetime"
)

var (
	// ErrMalformedScheduleRow indicates an unparseable field while reading a
	// schedule table back in.
	ErrMalformedScheduleRow = errors.New("malformed schedule row")

	// ErrMalformedLedgerRow indicates an unparseable field while reading the
	// payment ledger.
	ErrMalformedLedgerRow = errors.New("malformed ledger row")
)

// Schedule table column names. The interest column is dynamic: it embeds the
// APR, so readers locate it by prefix.
const (
	colPaymentNumber   = "Payment Number"
	colDueDate         = "Due Date"
	colStartingBalance = "Starting Balance"
	colTotalDue        = "Total Due"
	colExtraPayment    = "Extra Payment"
	colTotalPayment    = "Total Payment"
	colPrincipal       = "Principal"
	colEndingBalance   = "Ending Balance"
	interestColPrefix  = "Interest"
)

// WriteSchedule exports the schedule as a CSV table, one row per period,
// with monetary values rendered as currency strings. Balloon-adjusted
// schedules gain the extra-payment and total-payment columns.
func WriteSchedule(path string, s *schedule.Schedule) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating schedule file %s: %v", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{colPaymentNumber, colDueDate, colStartingBalance, colTotalDue}
	if s.Ballooned {
		header = append(header, colExtraPayment, colTotalPayment)
	}
	header = append(header, colPrincipal, interestHeader(s.Loan.AnnualRate), colEndingBalance)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing schedule header: %v", err)
	}

	for _, entry := range s.Entries {
		row := []string{
			strconv.Itoa(entry.Number),
			datetime.FormatLongDate(entry.DueDate),
			currency.Format(entry.StartingBalance),
			currency.Format(entry.AmountDue),
		}
		if s.Ballooned {
			row = append(row, currency.Format(entry.ExtraPayment), currency.Format(entry.TotalPayment))
		}
		row = append(row,
			currency.Format(entry.PrincipalDue),
			currency.Format(entry.InterestDue),
			currency.Format(entry.EndingBalance),
		)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing schedule row %d: %v", entry.Number, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadSchedule parses a schedule table back into entries keyed by period
// number. Currency strings are parsed by digit/decimal extraction. A
// malformed row aborts the read; payment processing depends on a complete
// schedule.
func ReadSchedule(path string) (map[int]schedule.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schedule file %s: %v", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScheduleRow, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: schedule file %s is empty", ErrMalformedScheduleRow, path)
	}

	columns, err := scheduleColumns(rows[0])
	if err != nil {
		return nil, err
	}

	entries := make(map[int]schedule.Entry, len(rows)-1)
	for i, row := range rows[1:] {
		entry, err := parseScheduleRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedScheduleRow, i+1, err)
		}
		entries[entry.Number] = entry
	}

	return entries, nil
}

// scheduleColumnIndex holds the position of each column in a schedule table
// header; -1 marks a column that is absent.
type scheduleColumnIndex struct {
	number          int
	dueDate         int
	startingBalance int
	totalDue        int
	principal       int
	interest        int
	endingBalance   int
	extraPayment    int
	totalPayment    int
}

func scheduleColumns(header []string) (scheduleColumnIndex, error) {
	index := scheduleColumnIndex{
		number: -1, dueDate: -1, startingBalance: -1, totalDue: -1,
		principal: -1, interest: -1, endingBalance: -1,
		extraPayment: -1, totalPayment: -1,
	}
	for i, name := range header {
		switch name {
		case colPaymentNumber:
			index.number = i
		case colDueDate:
			index.dueDate = i
		case colStartingBalance:
			index.startingBalance = i
		case colTotalDue:
			index.totalDue = i
		case colExtraPayment:
			index.extraPayment = i
		case colTotalPayment:
			index.totalPayment = i
		case colPrincipal:
			index.principal = i
		case colEndingBalance:
			index.endingBalance = i
		default:
			if strings.HasPrefix(name, interestColPrefix) {
				index.interest = i
			}
		}
	}
	if index.number < 0 || index.dueDate < 0 || index.startingBalance < 0 ||
		index.totalDue < 0 || index.principal < 0 || index.interest < 0 ||
		index.endingBalance < 0 {
		return index, fmt.Errorf("%w: schedule header is missing required columns", ErrMalformedScheduleRow)
	}
	return index, nil
}

func parseScheduleRow(row []string, columns scheduleColumnIndex) (schedule.Entry, error) {
	var entry schedule.Entry
	var err error

	entry.Number, err = strconv.Atoi(row[columns.number])
	if err != nil {
		return entry, fmt.Errorf("payment number: %v", err)
	}
	entry.DueDate, err = datetime.ParseLongDate(row[columns.dueDate])
	if err != nil {
		return entry, fmt.Errorf("due date: %v", err)
	}
	if entry.StartingBalance, err = currency.Parse(row[columns.startingBalance]); err != nil {
		return entry, fmt.Errorf("starting balance: %v", err)
	}
	if entry.AmountDue, err = currency.Parse(row[columns.totalDue]); err != nil {
		return entry, fmt.Errorf("total due: %v", err)
	}
	if entry.PrincipalDue, err = currency.Parse(row[columns.principal]); err != nil {
		return entry, fmt.Errorf("principal: %v", err)
	}
	if entry.InterestDue, err = currency.Parse(row[columns.interest]); err != nil {
		return entry, fmt.Errorf("interest: %v", err)
	}
	if entry.EndingBalance, err = currency.Parse(row[columns.endingBalance]); err != nil {
		return entry, fmt.Errorf("ending balance: %v", err)
	}
	if columns.extraPayment >= 0 {
		if entry.ExtraPayment, err = currency.Parse(row[columns.extraPayment]); err != nil {
			return entry, fmt.Errorf("extra payment: %v", err)
		}
	}
	if columns.totalPayment >= 0 {
		if entry.TotalPayment, err = currency.Parse(row[columns.totalPayment]); err != nil {
			return entry, fmt.Errorf("total payment: %v", err)
		}
	}

	return entry, nil
}

// interestHeader embeds the APR in the interest column name, e.g.
// "Interest (6.0% APR)" for an annual rate of 0.06.
func interestHeader(annualRate float64) string {
	percent := annualRate * 100
	if percent == math.Trunc(percent) {
		return fmt.Sprintf("%s (%.1f%% APR)", interestColPrefix, percent)
	}
	return fmt.Sprintf("%s (%g%% APR)", interestColPrefix, percent)
}
