package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/FishheadNate/Loan-Payment-Tracker/internal/payment"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/datetime"
)

func testRecord(number int) payment.Record {
	return payment.Record{
		Number:          number,
		DueDate:         datetime.MustParseTime(datetime.InputDateLayout, "02-10-2024"),
		ReceivedDate:    datetime.MustParseTime(datetime.InputDateLayout, "02-12-2024"),
		DaysLate:        2,
		Reference:       "1024",
		StartingBalance: 10000.00,
		AmountDue:       860.66,
		ReceivedAmount:  860.66,
		PrincipalDue:    810.664,
		InterestDue:     50.00,
		EndingBalance:   9189.34,
		LateFee:         0.80,
		Notes:           "february, with a comma",
	}
}

func TestReadLedgerMissingFile(t *testing.T) {
	ledger, err := ReadLedger(filepath.Join(t.TempDir(), "payments.csv"))
	if err != nil {
		t.Fatalf("ReadLedger() on missing file returned error: %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger has %d records, expected 0", ledger.Len())
	}
	if got := ledger.NextPaymentNumber(); got != 1 {
		t.Errorf("NextPaymentNumber() = %d, expected 1", got)
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.csv")

	for n := 1; n <= 3; n++ {
		if err := AppendRecord(path, testRecord(n)); err != nil {
			t.Fatalf("AppendRecord(%d) returned error: %v", n, err)
		}
	}

	ledger, err := ReadLedger(path)
	if err != nil {
		t.Fatalf("ReadLedger() returned error: %v", err)
	}
	if ledger.Len() != 3 {
		t.Fatalf("ledger has %d records, expected 3", ledger.Len())
	}
	if got := ledger.NextPaymentNumber(); got != 4 {
		t.Errorf("NextPaymentNumber() = %d, expected 4", got)
	}

	latest, ok := ledger.Latest()
	if !ok {
		t.Fatal("Latest() found no record")
	}
	want := testRecord(3)
	if latest.Number != want.Number {
		t.Errorf("latest number = %d, expected %d", latest.Number, want.Number)
	}
	if !latest.DueDate.Equal(want.DueDate) || !latest.ReceivedDate.Equal(want.ReceivedDate) {
		t.Error("dates drifted on round trip")
	}
	if latest.DaysLate != want.DaysLate || latest.Reference != want.Reference {
		t.Error("days late or reference drifted on round trip")
	}
	if latest.StartingBalance != want.StartingBalance || latest.AmountDue != want.AmountDue ||
		latest.ReceivedAmount != want.ReceivedAmount || latest.EndingBalance != want.EndingBalance ||
		latest.LateFee != want.LateFee {
		t.Errorf("monetary fields drifted on round trip: %+v", latest)
	}
	if latest.Notes != want.Notes {
		t.Errorf("notes = %q, expected %q", latest.Notes, want.Notes)
	}
}

func TestAppendRecordWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.csv")

	if err := AppendRecord(path, testRecord(1)); err != nil {
		t.Fatalf("AppendRecord() returned error: %v", err)
	}
	if err := AppendRecord(path, testRecord(2)); err != nil {
		t.Fatalf("AppendRecord() returned error: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	header := []byte("Payment Number")
	count := 0
	for i := 0; i+len(header) <= len(contents); i++ {
		if string(contents[i:i+len(header)]) == string(header) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("header appears %d times, expected 1", count)
	}
}

func TestReadLedgerMalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.csv")
	contents := "Payment Number,Due Date,Received Date,Days Late,Check Number,Starting Balance,Amount Due,Received Amount,Principal,Interest,Ending Balance,Late Fee,Notes\n" +
		"one,February 10 2024,February 12 2024,2,1024,$10000.00,$860.66,$860.66,$810.66,$50.00,$9189.34,$0.80,notes\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadLedger(path)
	if !errors.Is(err, ErrMalformedLedgerRow) {
		t.Fatalf("ReadLedger() error = %v, expected ErrMalformedLedgerRow", err)
	}
}

func TestReadLedgerWrongFieldCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.csv")
	contents := "Payment Number,Due Date\n1,February 10, 2024\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadLedger(path)
	if !errors.Is(err, ErrMalformedLedgerRow) {
		t.Fatalf("ReadLedger() error = %v, expected ErrMalformedLedgerRow", err)
	}
}
