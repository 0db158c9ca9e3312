package schema_test

import (
	"testing"

	"csv-pump/internal/schema"

	"github.com/stretchr/testify/assert"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		value string
		want  schema.Type
	}{
		{"0", schema.Integer},
		{"42", schema.Integer},
		{"007", schema.Integer},
		{"9.99", schema.Real},
		{"3.50", schema.Real},
		{".5", schema.Real},
		{"5.", schema.Real},
		{"widget", schema.Text},
		{"", schema.Text},
		{".", schema.Text},
		{"-1", schema.Text},
		{"+1", schema.Text},
		{"1e5", schema.Text},
		{"1.2.3", schema.Text},
		{" 1", schema.Text},
		{"1 ", schema.Text},
		{"1,000", schema.Text},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, schema.InferType(tt.value))
		})
	}
}

func TestInferType_DigitStringsAreInteger(t *testing.T) {
	for _, v := range []string{"1", "12", "1234567890", "00000000000000000000"} {
		assert.Equal(t, schema.Integer, schema.InferType(v), v)
	}
}

func TestWiden(t *testing.T) {
	assert.Equal(t, schema.Integer, schema.Widen(schema.Integer, schema.Integer))
	assert.Equal(t, schema.Real, schema.Widen(schema.Integer, schema.Real))
	assert.Equal(t, schema.Real, schema.Widen(schema.Real, schema.Integer))
	assert.Equal(t, schema.Text, schema.Widen(schema.Real, schema.Text))
	assert.Equal(t, schema.Text, schema.Widen(schema.Text, schema.Integer))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Integer", schema.Integer.String())
	assert.Equal(t, "Real", schema.Real.String())
	assert.Equal(t, "Text", schema.Text.String())
}
