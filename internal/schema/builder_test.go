package schema_test

import (
	"testing"

	"csv-pump/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_InfersFromSampleRow(t *testing.T) {
	table, err := schema.Build("products",
		[]string{"id", "price", "name"},
		[]string{"1", "9.99", "widget"})
	require.NoError(t, err)

	assert.Equal(t, "products", table.Name)
	require.Len(t, table.Columns, 3)
	assert.Equal(t, schema.Column{Name: "id", Type: schema.Integer}, *table.Columns[0])
	assert.Equal(t, schema.Column{Name: "price", Type: schema.Real}, *table.Columns[1])
	assert.Equal(t, schema.Column{Name: "name", Type: schema.Text}, *table.Columns[2])
}

func TestBuild_LengthMismatch(t *testing.T) {
	_, err := schema.Build("t", []string{"a", "b"}, []string{"1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrMalformedInput)

	_, err = schema.Build("t", []string{"a"}, []string{"1", "2"})
	assert.ErrorIs(t, err, schema.ErrMalformedInput)
}

func TestBuildScanned_WidensAcrossRows(t *testing.T) {
	table, err := schema.BuildScanned("accounts",
		[]string{"id", "balance", "code"},
		[][]string{
			{"1", "10", "7"},
			{"2", "10.50", "7"},
			{"3", "3", "N/A"},
		})
	require.NoError(t, err)

	assert.Equal(t, schema.Integer, table.Columns[0].Type)
	assert.Equal(t, schema.Real, table.Columns[1].Type)
	assert.Equal(t, schema.Text, table.Columns[2].Type)
}

func TestBuildScanned_Errors(t *testing.T) {
	_, err := schema.BuildScanned("t", []string{"a"}, nil)
	assert.ErrorIs(t, err, schema.ErrMalformedInput)

	_, err = schema.BuildScanned("t", []string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})
	assert.ErrorIs(t, err, schema.ErrMalformedInput)
}
