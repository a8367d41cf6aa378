package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Add(t *testing.T) {
	sum, err := NewMoney(1000, "USD").Add(NewMoney(550, "USD"))

	require.NoError(t, err)
	assert.Equal(t, NewMoney(1550, "USD"), sum)
}

func TestMoney_Add_CurrencyMismatch(t *testing.T) {
	_, err := NewMoney(1000, "USD").Add(NewMoney(550, "EUR"))

	assert.ErrorContains(t, err, "currency mismatch")
}

func TestMoney_Multiply(t *testing.T) {
	assert.Equal(t, NewMoney(3297, "USD"), NewMoney(1099, "USD").Multiply(3))
	assert.Equal(t, NewMoney(0, "USD"), NewMoney(1099, "USD").Multiply(0))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "25.50 USD", NewMoney(2550, "USD").String())
	assert.Equal(t, "0.05 EUR", NewMoney(5, "EUR").String())
	assert.Equal(t, "10.00 USD", NewMoney(1000, "USD").String())
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, NewMoney(0, "USD").IsZero())
	assert.False(t, NewMoney(1, "USD").IsZero())
	assert.True(t, NewMoney(1, "USD").IsPositive())
	assert.False(t, NewMoney(0, "USD").IsPositive())
}

func TestID(t *testing.T) {
	id := GenerateUUID()
	assert.False(t, id.IsZero())

	parsed, err := NewID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = NewID("not-a-uuid")
	assert.Error(t, err)

	assert.True(t, ID("").IsZero())
}

func TestVersion_Update(t *testing.T) {
	v := NewVersion()
	assert.Equal(t, 1, v.Value)

	v2 := v.Update()
	assert.Equal(t, 2, v2.Value)
	assert.Equal(t, 1, v.Value)
}
