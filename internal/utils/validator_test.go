package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameInput struct {
	Name string `validate:"required,max=10,firstupper"`
}

type locationInput struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}

func TestValidateStructAcceptsValidInput(t *testing.T) {
	assert.Nil(t, ValidateStruct(nameInput{Name: "Action"}))
}

func TestValidateStructReportsMissingRequired(t *testing.T) {
	errs := ValidateStruct(nameInput{})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "This field is required", errs[0].Message)
}

func TestFirstUpperRule(t *testing.T) {
	errs := ValidateStruct(nameInput{Name: "action"})
	require.Len(t, errs, 1)
	assert.Equal(t, "First letter should be an uppercase letter", errs[0].Message)

	assert.Nil(t, ValidateStruct(nameInput{Name: "Action"}))
}

func TestMaxRuleReportsLimit(t *testing.T) {
	errs := ValidateStruct(nameInput{Name: "Averylonggenrename"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Maximum is 10", errs[0].Message)
}

func TestCoordinateRules(t *testing.T) {
	assert.Nil(t, ValidateStruct(locationInput{Latitude: 41.38, Longitude: 2.17}))

	errs := ValidateStruct(locationInput{Latitude: 100, Longitude: 200})
	require.Len(t, errs, 2)
	assert.Equal(t, "latitude", errs[0].Field)
	assert.Equal(t, "Must be a valid latitude", errs[0].Message)
	assert.Equal(t, "longitude", errs[1].Field)
	assert.Equal(t, "Must be a valid longitude", errs[1].Message)
}
