package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/FishheadNate/Loan-Payment-Tracker/internal/payment"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/currency"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/datetime"
)

// ledgerHeader is the fixed column layout of the payment ledger file.
var ledgerHeader = []string{
	"Payment Number",
	"Due Date",
	"Received Date",
	"Days Late",
	"Check Number",
	"Starting Balance",
	"Amount Due",
	"Received Amount",
	"Principal",
	"Interest",
	"Ending Balance",
	"Late Fee",
	"Notes",
}

// ReadLedger loads the payment ledger file. A missing file is an empty
// ledger (no payments received yet); a malformed row aborts the read, since
// the next payment number depends on complete history.
func ReadLedger(path string) (*payment.Ledger, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return payment.NewLedger(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger file %s: %v", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(ledgerHeader)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLedgerRow, err)
	}
	if len(rows) == 0 {
		return payment.NewLedger(nil), nil
	}

	records := make([]payment.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, err := parseLedgerRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedLedgerRow, i+1, err)
		}
		records = append(records, record)
	}

	return payment.NewLedger(records), nil
}

// AppendRecord appends one reconciled payment to the ledger file, creating
// the file with its header row first if it does not exist yet. The appended
// row is flushed before returning so the receipt handoff always sees a
// complete final row.
func AppendRecord(path string, record payment.Record) error {
	info, err := os.Stat(path)
	writeHeader := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening ledger file %s: %v", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(ledgerHeader); err != nil {
			return fmt.Errorf("writing ledger header: %v", err)
		}
	}
	if err := writer.Write(ledgerRow(record)); err != nil {
		return fmt.Errorf("writing ledger row: %v", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Sync()
}

func ledgerRow(record payment.Record) []string {
	return []string{
		strconv.Itoa(record.Number),
		datetime.FormatLongDate(record.DueDate),
		datetime.FormatLongDate(record.ReceivedDate),
		strconv.Itoa(record.DaysLate),
		record.Reference,
		currency.Format(record.StartingBalance),
		currency.Format(record.AmountDue),
		currency.Format(record.ReceivedAmount),
		currency.Format(record.PrincipalDue),
		currency.Format(record.InterestDue),
		currency.Format(record.EndingBalance),
		currency.Format(record.LateFee),
		record.Notes,
	}
}

func parseLedgerRow(row []string) (payment.Record, error) {
	var record payment.Record
	var err error

	record.Number, err = strconv.Atoi(row[0])
	if err != nil {
		return record, fmt.Errorf("payment number: %v", err)
	}
	if record.DueDate, err = datetime.ParseLongDate(row[1]); err != nil {
		return record, fmt.Errorf("due date: %v", err)
	}
	if record.ReceivedDate, err = datetime.ParseLongDate(row[2]); err != nil {
		return record, fmt.Errorf("received date: %v", err)
	}
	if record.DaysLate, err = strconv.Atoi(row[3]); err != nil {
		return record, fmt.Errorf("days late: %v", err)
	}
	record.Reference = row[4]
	if record.StartingBalance, err = currency.Parse(row[5]); err != nil {
		return record, fmt.Errorf("starting balance: %v", err)
	}
	if record.AmountDue, err = currency.Parse(row[6]); err != nil {
		return record, fmt.Errorf("amount due: %v", err)
	}
	if record.ReceivedAmount, err = currency.Parse(row[7]); err != nil {
		return record, fmt.Errorf("received amount: %v", err)
	}
	if record.PrincipalDue, err = currency.Parse(row[8]); err != nil {
		return record, fmt.Errorf("principal: %v", err)
	}
	if record.InterestDue, err = currency.Parse(row[9]); err != nil {
		return record, fmt.Errorf("interest: %v", err)
	}
	if record.EndingBalance, err = currency.Parse(row[10]); err != nil {
		return record, fmt.Errorf("ending balance: %v", err)
	}
	if record.LateFee, err = currency.Parse(row[11]); err != nil {
		return record, fmt.Errorf("late fee: %v", err)
	}
	record.Notes = row[12]

	return record, nil
}
