package schedule

import (
	"time"

	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/constants"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/datetime"
)

// DueDates produces the ordered sequence of payment due dates between the
// payment start date and the end of the term. Every calendar day from
// start+offset through end+offset inclusive is scanned and each day-10 date
// inside the window is emitted, normalized to midnight. The offset is
// constants.DueDateScanOffset; see the note there before touching it.
func DueDates(start, end time.Time) []time.Time {
	scan := start.Add(constants.DueDateScanOffset)
	stop := end.Add(constants.DueDateScanOffset)

	var dueDates []time.Time
	for !scan.After(stop) {
		if scan.Day() == constants.DueDayOfMonth {
			dueDates = append(dueDates, datetime.Midnight(scan))
		}
		scan = scan.Add(24 * time.Hour)
	}

	return dueDates
}
