package training

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteTrace writes the cost trace as CSV, one evaluation per row, for
// post-hoc plotting.
func WriteTrace(w io.Writer, trace []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"evaluation", "cost"}); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}
	for i, cost := range trace {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(cost, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing trace row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
