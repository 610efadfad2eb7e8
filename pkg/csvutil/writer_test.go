package csvutil

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name  string
	Price int64
}

func testColumns() []Column[row] {
	return []Column[row]{
		{Header: "name", Value: func(r row) string { return r.Name }},
		{Header: "price", Value: func(r row) string { return strconv.FormatInt(r.Price, 10) }},
	}
}

func TestWriteAll(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, testColumns())

	err := w.WriteAll([]row{
		{Name: "Widget", Price: 1250},
		{Name: "Gadget, deluxe", Price: 9900},
	})
	require.NoError(t, err)

	assert.Equal(t, "name,price\nWidget,1250\n\"Gadget, deluxe\",9900\n", buf.String())
}

func TestHeaderWrittenOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, testColumns())

	require.NoError(t, w.Write(row{Name: "a", Price: 1}))
	require.NoError(t, w.Write(row{Name: "b", Price: 2}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "name,price\na,1\nb,2\n", buf.String())
}

func TestEmptyRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, testColumns())

	require.NoError(t, w.WriteAll(nil))
	assert.Empty(t, buf.String())
}
