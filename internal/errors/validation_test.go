package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DylanBreuer/GenshinTools/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("element", "is invalid")
	ve.AddFieldErrorf("rarity", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "element: is invalid")
	s.Assert().Contains(ve.Error(), "rarity: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 90).
		RequiredField("character").
		InvalidField("category", "not a known material category")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "amber", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  amber  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 95, 1, 90, vb)
	errors.ValidateRange("ascension", 4, 0, 6, vb)
	errors.ValidateRange("constellations", 7, 0, 6, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["level"][0], "must be between 1 and 90")
	s.Assert().Contains(validationErrors["constellations"][0], "must be between 0 and 6")
	s.Assert().NotContains(validationErrors, "ascension")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedCategories := []string{"ascension", "talent", "passive"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("category", "weekly", allowedCategories, vb)
	errors.ValidateEnum("other_category", "talent", allowedCategories, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["category"][0], "must be one of: ascension, talent, passive")
	s.Assert().NotContains(validationErrors, "other_category")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	type ownedCharacterInput struct {
		Name           string
		Level          int
		Ascension      int
		Constellations int
	}

	input := ownedCharacterInput{
		Name:           "",
		Level:          95,
		Ascension:      3,
		Constellations: 8,
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRange("level", input.Level, 1, 90, vb)
	errors.ValidateRange("ascension", input.Ascension, 0, 6, vb)
	errors.ValidateRange("constellations", input.Constellations, 0, 6, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "name")
	s.Assert().Contains(validationErrors, "level")
	s.Assert().Contains(validationErrors, "constellations")
	s.Assert().NotContains(validationErrors, "ascension")
}
