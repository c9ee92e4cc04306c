package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain number", input: `100`, want: 100},
		{name: "decimal", input: `99.5`, want: 99.5},
		{name: "numeric string", input: `"100"`, want: 100},
		{name: "decimal string", input: `"42.25"`, want: 42.25},
		{name: "null", input: `null`, want: 0},
		{name: "empty string", input: `""`, want: 0},
		{name: "non-numeric string", input: `"abc"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Float64())
		})
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Number(100))
	require.NoError(t, err)
	assert.Equal(t, "100", string(data))

	data, err = json.Marshal(Number(99.5))
	require.NoError(t, err)
	assert.Equal(t, "99.5", string(data))
}

func TestOptionalNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain number", input: `4`, want: 4},
		{name: "numeric string", input: `"3.5"`, want: 3.5},
		{name: "non-numeric string defaults to zero", input: `"excellent"`, want: 0},
		{name: "object defaults to zero", input: `{"value":4}`, want: 0},
		{name: "null", input: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n OptionalNumber
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, n.Float64())
		})
	}
}

func TestInventoryPatch_Fields(t *testing.T) {
	empty := &InventoryPatch{}
	assert.Empty(t, empty.Fields())

	price := Number(250)
	name := "Paneer 200g"
	patch := &InventoryPatch{ProductName: &name, Price: &price}

	fields := patch.Fields()
	assert.Equal(t, map[string]any{
		"productName": "Paneer 200g",
		"price":       250.0,
	}, fields)
}

func TestCustomerSale_Revenue(t *testing.T) {
	sale := &CustomerSale{Price: 25, Quantity: 4}
	assert.Equal(t, 100.0, sale.Revenue())
}

func TestPricingRule_MarginImpact(t *testing.T) {
	rule := &PricingRule{BasePrice: 100, RecommendedPrice: 112}
	assert.InDelta(t, 12.0, rule.MarginImpact(), 1e-9)
}
