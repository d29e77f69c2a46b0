package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity_String(t *testing.T) {
	q := NewQuantityFromFloat64(3.5)
	assert.Equal(t, "3.5000", q.String())

	neg := NewQuantityFromFloat64(-0.25)
	assert.Equal(t, "-0.2500", neg.String())
}

func TestQuantity_Decimal(t *testing.T) {
	q := NewQuantityFromFloat64(2.5)
	price := MustMoney("10.00")

	cost := price.Mul(q.Decimal())
	assert.True(t, cost.Equal(MustMoney("25.00")), "got %s", cost.String())
}

func TestQuantity_JSON(t *testing.T) {
	q := NewQuantityFromFloat64(1.25)

	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, "1.2500", string(data))

	var parsed Quantity
	require.NoError(t, json.Unmarshal([]byte("1.25"), &parsed))
	assert.Equal(t, q, parsed)

	var fromInt Quantity
	require.NoError(t, json.Unmarshal([]byte("3"), &fromInt))
	assert.Equal(t, NewQuantityFromFloat64(3), fromInt)
}

func TestQuantity_Signs(t *testing.T) {
	assert.True(t, NewQuantityFromFloat64(0.0001).IsPositive())
	assert.True(t, Quantity(0).IsZero())
	assert.True(t, NewQuantityFromFloat64(-1).IsNegative())
}
