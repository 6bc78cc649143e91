// Package config loads and validates the career-profile input file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/emifrog/horizon/internal/domain"
)

// Input mirrors the YAML career form. Numeric fields use native types so
// the validator tags apply directly; Convert builds the decimal-based
// domain profile afterwards. Absent numeric fields default to zero.
type Input struct {
	BirthDate time.Time `yaml:"birth_date" validate:"required"`
	HireDate  time.Time `yaml:"hire_date" validate:"required"`

	WorkFraction float64 `yaml:"work_fraction" validate:"omitempty,gte=0.5,lte=1"`

	VolunteerYears      int `yaml:"volunteer_years" validate:"gte=0"`
	OtherSchemeQuarters int `yaml:"other_scheme_quarters" validate:"gte=0"`
	ChildrenBefore2004  int `yaml:"children_before_2004" validate:"gte=0"`

	MilitaryKind     string `yaml:"military_kind" validate:"omitempty,oneof=none national_service career"`
	MilitaryQuarters int    `yaml:"military_quarters" validate:"gte=0"`

	IndexedGrade          int `yaml:"indexed_grade" validate:"required,gt=0"`
	BonusPoints           int `yaml:"bonus_points" validate:"gte=0"`
	BonusPointsMonthsHeld int `yaml:"bonus_points_months_held" validate:"gte=0"`

	HazardBonusAnnual float64 `yaml:"hazard_bonus_annual" validate:"gte=0"`
	AnnuityYears      int     `yaml:"annuity_years" validate:"gte=0"`

	// AsOf pins the simulation date; zero means today.
	AsOf time.Time `yaml:"as_of"`
}

// InputParser handles parsing of profile input files.
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{validate: validator.New()}
}

// LoadProfile loads a career profile from a YAML file and returns it along
// with the pinned as-of date (zero when the file leaves it unset).
func (ip *InputParser) LoadProfile(filename string) (*domain.CareerProfile, time.Time, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var in Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	profile, err := ip.Convert(&in)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("profile validation failed: %w", err)
	}
	return profile, in.AsOf, nil
}

// Convert validates an input document and builds the domain profile.
func (ip *InputParser) Convert(in *Input) (*domain.CareerProfile, error) {
	if err := ip.validate.Struct(in); err != nil {
		return nil, err
	}
	if in.HireDate.Before(in.BirthDate) {
		return nil, fmt.Errorf("hire date (%s) cannot be before birth date (%s)",
			in.HireDate.Format("2006-01-02"), in.BirthDate.Format("2006-01-02"))
	}

	kind := domain.MilitaryServiceKind(in.MilitaryKind)
	if in.MilitaryKind == "" {
		kind = domain.MilitaryNone
	}

	profile := &domain.CareerProfile{
		BirthDate:             in.BirthDate,
		HireDate:              in.HireDate,
		WorkFraction:          decimal.NewFromFloat(in.WorkFraction),
		VolunteerYears:        in.VolunteerYears,
		OtherSchemeQuarters:   in.OtherSchemeQuarters,
		ChildrenBefore2004:    in.ChildrenBefore2004,
		Military:              domain.MilitaryService{Kind: kind, Quarters: in.MilitaryQuarters},
		IndexedGrade:          in.IndexedGrade,
		BonusPoints:           in.BonusPoints,
		BonusPointsMonthsHeld: in.BonusPointsMonthsHeld,
		HazardBonusAnnual:     decimal.NewFromFloat(in.HazardBonusAnnual),
		AnnuityYears:          in.AnnuityYears,
	}
	return profile, nil
}
