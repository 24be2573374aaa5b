package bankroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(1234.5, "USD"), "$1,234.50"},
		{M(0.004, "USD"), "$0.00"},
		{M(dec("12.345"), "USD"), "$12.35"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.m.String())
	}
}

func TestMoney_SignedString(t *testing.T) {
	assert.Equal(t, "+$10.00", M(10, "USD").SignedString())
	assert.Equal(t, "-", M(0.001, "USD").SignedString())
	assert.Equal(t, "-", M(0, "USD").SignedString())
}

func TestMoney_Round(t *testing.T) {
	assertDecimal(t, dec("1.23"), M(1.234, "USD").Round())
	assertDecimal(t, dec("1235"), M(1234.5, "JPY").Round())
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("EUR"))
	assert.NoError(t, ValidateCurrency("CAD"))
	assert.Error(t, ValidateCurrency("EURO"))
	assert.Error(t, ValidateCurrency("QQQ"))
	assert.Error(t, ValidateCurrency(""))
}

func TestRate(t *testing.T) {
	var unset Rate
	assert.False(t, unset.IsSet())
	assert.False(t, R(-1).IsSet())
	assert.True(t, unset.OrOne().Equal(R(1)))
	assert.True(t, R(2).Or(R(3)).Equal(R(2)))
	assert.True(t, R(4).Inverse().Equal(R(0.25)))
	assert.False(t, unset.Inverse().IsSet())
	assertDecimal(t, dec("10"), unset.Unapply(dec("10")))
	assertDecimal(t, dec("5"), R(2).Unapply(dec("10")))
	assertDecimal(t, dec("20"), R(2).Apply(dec("10")))
}
