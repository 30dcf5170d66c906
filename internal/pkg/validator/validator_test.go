package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("mario.rossi@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	d, ok := IsValidDate("2026-03-04")
	assert.True(t, ok)
	assert.Equal(t, 2026, d.Year())

	_, ok = IsValidDate("04/03/2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
}

func TestIsValidClock(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidClock("08:30"))
	assert.True(t, IsValidClock("23:59"))
	assert.False(t, IsValidClock("24:00"))
	assert.False(t, IsValidClock("8:30"))
	assert.False(t, IsValidClock(""))
}

func TestIsValidPercentage(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPercentage(decimal.Zero))
	assert.True(t, IsValidPercentage(decimal.NewFromInt(100)))
	assert.False(t, IsValidPercentage(decimal.NewFromInt(101)))
	assert.False(t, IsValidPercentage(decimal.NewFromInt(-1)))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "kind", Message: "unknown kind"},
	}

	assert.Equal(t, "date: date is required; kind: unknown kind", errs.Error())
	assert.Equal(t, map[string]string{
		"date": "date is required",
		"kind": "unknown kind",
	}, errs.ToMap())
}
