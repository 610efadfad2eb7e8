package xlsxutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport(t *testing.T) {
	headers := []string{"sku", "name", "price"}
	rows := [][]string{
		{"SKU-1", "Widget", "1250"},
		{"SKU-2", "Gadget", "9900"},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, "Products", headers, rows))

	gotHeaders, gotRows, err := Import(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, headers, gotHeaders)
	assert.Equal(t, rows, gotRows)
}

func TestImportShortRowsPadded(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, "Sheet1", []string{"a", "b", "c"}, [][]string{{"1"}}))

	headers, rows, err := Import(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, headers, 3)
	assert.Len(t, rows[0], 3)
	assert.Equal(t, "1", rows[0][0])
}
