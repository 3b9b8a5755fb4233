// Package export encodes store rows into interchange formats for download.
package export

import (
	"bytes"
	"encoding/csv"
)

// BOMHeader is the fixed header row of the BOM CSV export.
var BOMHeader = []string{
	"Project ID", "Project Name", "Client Name",
	"Part ID", "Part Name", "Category", "Quantity", "Status",
	"Expected Delivery", "Selected Vendor", "Vendor Price",
}

// EncodeCSV serializes a header and data rows with standard CSV escaping:
// fields containing the delimiter, quotes or newlines are wrapped in quotes
// with embedded quotes doubled (encoding/csv implements RFC 4180).
func EncodeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
