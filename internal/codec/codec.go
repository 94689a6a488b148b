// Package codec parses the CSV input feeds into domain records. Each feed
// gets one row codec; the connectors own the skip-or-abort policy.
package codec

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/yanun0323/errors"
)

// ErrFieldCount reports a row with the wrong number of CSV fields.
var ErrFieldCount = errors.New("unexpected csv field count")

// EachRow streams the data rows of a headered CSV file. The header row is
// skipped. Open and read failures are returned; fn is invoked once per row
// in file order.
func EachRow(path string, fn func(row []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open input feed")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read input feed")
		}
		if header {
			header = false
			continue
		}
		fn(trimTrailingEmpty(row))
	}
}

// trimTrailingEmpty drops a trailing empty field left by rows ending in a
// comma, as the market data feed does.
func trimTrailingEmpty(row []string) []string {
	if len(row) > 0 && row[len(row)-1] == "" {
		return row[:len(row)-1]
	}
	return row
}

func parseQuantity(s string) (int64, error) {
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse quantity")
	}
	return q, nil
}
