package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordDefaults(t *testing.T) {
	rec := NewRecord("123 Main Street", ListingTypeSale, 350000, "")

	assert.NotEmpty(t, rec.RequestID)
	assert.Equal(t, "US", rec.Region)
	assert.Equal(t, StateCreated, rec.State)
	assert.NotNil(t, rec.Errors)
	assert.False(t, rec.HasErrors())

	rec2 := NewRecord("123 Main Street", ListingTypeSale, 350000, "UK")
	assert.Equal(t, "UK", rec2.Region)
	assert.NotEqual(t, rec.RequestID, rec2.RequestID)
}

func TestAddErrorsAppends(t *testing.T) {
	rec := NewRecord("123 Main Street", ListingTypeRent, 1800, "US")
	rec.AddErrors("first")
	rec.AddErrors("second", "third")

	assert.Equal(t, []string{"first", "second", "third"}, rec.Errors)
	assert.True(t, rec.HasErrors())
}

func TestListingTypeValid(t *testing.T) {
	assert.True(t, ListingTypeSale.Valid())
	assert.True(t, ListingTypeRent.Valid())
	assert.False(t, ListingType("auction").Valid())
	assert.False(t, ListingType("").Valid())
}

func TestStateTerminal(t *testing.T) {
	assert.True(t, StateFormatted.Terminal())
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateCreated.Terminal())
	assert.False(t, StateOutputChecked.Terminal())
}
