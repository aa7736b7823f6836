package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_CurrencyAndSeparators(t *testing.T) {
	assert.Equal(t, "1234.5", Parse("₹1,234.50").String())
	assert.Equal(t, "1234.5", Parse("$ 1,234.50").String())
	assert.Equal(t, "5000", Parse("Rs. 5,000").String())
}

func TestParse_ParenthesesAreNegative(t *testing.T) {
	assert.Equal(t, "-500", Parse("(500)").String())
	assert.Equal(t, "-1234.5", Parse("(₹1,234.50)").String())
}

func TestParse_MalformedResolvesToZero(t *testing.T) {
	assert.True(t, Parse("").IsZero())
	assert.True(t, Parse("abc").IsZero())
	assert.True(t, Parse("   ").IsZero())
	assert.True(t, Parse("()").IsZero())
	assert.True(t, Parse("-").IsZero())
}

func TestParse_LeadingMinus(t *testing.T) {
	assert.Equal(t, "-42.1", Parse("-42.10").String())
	// Minus after digits is dropped, not treated as a sign.
	assert.Equal(t, "42", Parse("4-2").String())
}

func TestParse_Idempotent(t *testing.T) {
	for _, in := range []string{"₹1,234.50", "(500)", "99991.00", "-42.10"} {
		once := Parse(in)
		assert.True(t, Parse(once.String()).Equal(once), "input %q", in)
	}
}

func TestParseFirstAndLast(t *testing.T) {
	cell := "opening 1,000 closing 2,500.75"
	assert.Equal(t, "1000", ParseFirst(cell).String())
	assert.Equal(t, "2500.75", ParseLast(cell).String())

	assert.True(t, ParseFirst("no numbers here").IsZero())
	assert.True(t, ParseLast("").IsZero())
}

func TestParseFirst_ParenthesizedRun(t *testing.T) {
	assert.Equal(t, "-750", ParseFirst("adjustment (750) carried").String())
}

func TestFloat(t *testing.T) {
	assert.InDelta(t, 1234.5, Float("₹1,234.50"), 1e-9)
	assert.Zero(t, Float("n/a"))
}
