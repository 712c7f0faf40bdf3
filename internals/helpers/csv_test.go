package helper

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_EscapesQuotesAndCommas(t *testing.T) {
	header := []string{"Member ID", "Name", "Notes"}
	rows := [][]string{
		{"1001", `Kasun "KP" Perera`, "knee injury, left"},
		{"1002", "Plain Name", "line\nbreak"},
	}

	b, err := WriteCSV(header, rows)
	require.NoError(t, err)

	// must round-trip through a standard CSV reader
	r := csv.NewReader(bytes.NewReader(b))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, header, records[0])
	assert.Equal(t, rows[0], records[1])
	assert.Equal(t, rows[1], records[2])

	// quoted field actually appears escaped on the wire
	assert.Contains(t, string(b), `"Kasun ""KP"" Perera"`)
}

func TestWriteCSV_EmptyRows(t *testing.T) {
	b, err := WriteCSV([]string{"A", "B"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "A,B\n", string(b))
}
