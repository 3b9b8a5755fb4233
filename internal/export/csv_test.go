package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCSVWritesHeaderFirst(t *testing.T) {
	out, err := EncodeCSV(BOMHeader, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "Project ID,Project Name,Client Name,Part ID,Part Name,Category,Quantity,Status,Expected Delivery,Selected Vendor,Vendor Price", lines[0])
}

func TestEncodeCSVEscaping(t *testing.T) {
	rows := [][]string{
		{`Acme, Inc.`, `say "hi"`, "multi\nline"},
	}
	out, err := EncodeCSV([]string{"a", "b", "c"}, rows)
	require.NoError(t, err)

	// Commas and quotes force quoting; embedded quotes are doubled.
	assert.Contains(t, string(out), `"Acme, Inc."`)
	assert.Contains(t, string(out), `"say ""hi"""`)
	assert.Contains(t, string(out), "\"multi\nline\"")
}

func TestEncodeCSVRow(t *testing.T) {
	row := []string{
		"PRJ-2024-001", "Vision System Alpha", "Manufacturing Corp",
		"OPT001", "Sony XYZ", "Optical parts", "1", "Pending", "", "", "",
	}
	out, err := EncodeCSV(BOMHeader, [][]string{row})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "PRJ-2024-001,Vision System Alpha,Manufacturing Corp,OPT001,Sony XYZ,Optical parts,1,Pending,,,", lines[1])
}
