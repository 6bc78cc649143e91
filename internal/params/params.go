// Package params holds the regulatory tables the simulation engine reads:
// required insured duration by birth cohort, legal ages, point values, bonus
// coefficients and rates. This is the only place a statutory rate or
// threshold literal appears. The table is loaded once and never mutated
// during a simulation; live updates must swap the whole pointer.
package params

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category selects which legal-age table applies.
type Category string

const (
	// CategoryActive covers professional firefighters (early opening of rights).
	CategoryActive Category = "active"
	// CategorySedentary is the common-law category; its legal age doubles as
	// the reduction-cancellation threshold.
	CategorySedentary Category = "sedentary"
)

// AgeYM is an age expressed in whole years and months.
type AgeYM struct {
	Years  int `yaml:"years" json:"years"`
	Months int `yaml:"months" json:"months"`
}

// DateFor returns the date at which someone born on birthDate reaches the age.
func (a AgeYM) DateFor(birthDate time.Time) time.Time {
	return birthDate.AddDate(a.Years, a.Months, 0)
}

// CohortQuarters maps a birth-year lower bound onto a required insured
// duration. Entries are ordered by ascending FromYear; the last entry whose
// FromYear does not exceed the birth year wins, and birth years below the
// first entry fall back to it.
type CohortQuarters struct {
	FromYear int `yaml:"from_year" json:"from_year"`
	Quarters int `yaml:"quarters" json:"quarters"`
}

// AgeBracket is one row of an ordered birth-date-range to legal-age table.
// From is inclusive, To exclusive.
type AgeBracket struct {
	From time.Time `yaml:"from" json:"from"`
	To   time.Time `yaml:"to" json:"to"`
	Age  AgeYM     `yaml:"age" json:"age"`
}

// VolunteerStep is one threshold of the volunteer-firefighter majoration
// step function. Steps are ordered by ascending MinYears.
type VolunteerStep struct {
	MinYears int `yaml:"min_years" json:"min_years"`
	Quarters int `yaml:"quarters" json:"quarters"`
}

// AgeCoefficient is one row of the annuity age-coefficient table, ordered by
// ascending age. Out-of-range ages clamp to the boundary rows.
type AgeCoefficient struct {
	Age         int             `yaml:"age" json:"age"`
	Coefficient decimal.Decimal `yaml:"coefficient" json:"coefficient"`
}

// RegulatoryParameters is the process-wide, read-only regulatory table.
type RegulatoryParameters struct {
	Version string `yaml:"version" json:"version"`

	RequiredQuartersTable []CohortQuarters `yaml:"required_quarters" json:"required_quarters"`

	ActiveAges          []AgeBracket `yaml:"active_ages" json:"active_ages"`
	ActiveAgeDefault    AgeYM        `yaml:"active_age_default" json:"active_age_default"`
	SedentaryAges       []AgeBracket `yaml:"sedentary_ages" json:"sedentary_ages"`
	SedentaryAgeDefault AgeYM        `yaml:"sedentary_age_default" json:"sedentary_age_default"`
	ActiveAgeLimit      AgeYM        `yaml:"active_age_limit" json:"active_age_limit"`

	PointValueMonthly decimal.Decimal `yaml:"point_value_monthly" json:"point_value_monthly"`

	MaxLiquidationRate      decimal.Decimal `yaml:"max_liquidation_rate" json:"max_liquidation_rate"`
	ReductionRatePerQuarter decimal.Decimal `yaml:"reduction_rate_per_quarter" json:"reduction_rate_per_quarter"`
	ReductionMaxQuarters    int             `yaml:"reduction_max_quarters" json:"reduction_max_quarters"`
	IncreaseRatePerQuarter  decimal.Decimal `yaml:"increase_rate_per_quarter" json:"increase_rate_per_quarter"`

	FifthBonusCapQuarters    int `yaml:"fifth_bonus_cap_quarters" json:"fifth_bonus_cap_quarters"`
	ChildBonusQuarters       int `yaml:"child_bonus_quarters" json:"child_bonus_quarters"`
	ActiveServiceMinQuarters int `yaml:"active_service_min_quarters" json:"active_service_min_quarters"`

	HazardRate decimal.Decimal `yaml:"hazard_rate" json:"hazard_rate"`

	VolunteerSteps []VolunteerStep `yaml:"volunteer_steps" json:"volunteer_steps"`

	GuaranteedMinimumMonthly decimal.Decimal `yaml:"guaranteed_minimum_monthly" json:"guaranteed_minimum_monthly"`
	WithholdingRate          decimal.Decimal `yaml:"withholding_rate" json:"withholding_rate"`

	AnnuityContributionRate decimal.Decimal  `yaml:"annuity_contribution_rate" json:"annuity_contribution_rate"`
	AnnuityBaseCapRate      decimal.Decimal  `yaml:"annuity_base_cap_rate" json:"annuity_base_cap_rate"`
	AnnuityAcquisitionValue decimal.Decimal  `yaml:"annuity_acquisition_value" json:"annuity_acquisition_value"`
	AnnuityServiceValue     decimal.Decimal  `yaml:"annuity_service_value" json:"annuity_service_value"`
	AnnuityRentePoints      int              `yaml:"annuity_rente_points" json:"annuity_rente_points"`
	AgeCoefficients         []AgeCoefficient `yaml:"age_coefficients" json:"age_coefficients"`

	BonusPointsMinMonths         int `yaml:"bonus_points_min_months" json:"bonus_points_min_months"`
	BonusPointsIntegrationMonths int `yaml:"bonus_points_integration_months" json:"bonus_points_integration_months"`
}

// RequiredQuarters returns the insured duration required for a birth cohort.
// Birth years below the tabulated range use the first entry, above it the
// last; the lookup never fails.
func (p *RegulatoryParameters) RequiredQuarters(birthYear int) int {
	if len(p.RequiredQuartersTable) == 0 {
		return 0
	}
	quarters := p.RequiredQuartersTable[0].Quarters
	for _, row := range p.RequiredQuartersTable {
		if birthYear >= row.FromYear {
			quarters = row.Quarters
		}
	}
	return quarters
}

// LegalAge returns the legal age for a category and birth date. Birth dates
// before the first bracket use the first bracket's age; dates beyond the
// last bracket use the category default.
func (p *RegulatoryParameters) LegalAge(cat Category, birthDate time.Time) AgeYM {
	var table []AgeBracket
	var def AgeYM
	switch cat {
	case CategorySedentary:
		table, def = p.SedentaryAges, p.SedentaryAgeDefault
	default:
		table, def = p.ActiveAges, p.ActiveAgeDefault
	}
	if len(table) == 0 {
		return def
	}
	if birthDate.Before(table[0].From) {
		return table[0].Age
	}
	for _, b := range table {
		if !birthDate.Before(b.From) && birthDate.Before(b.To) {
			return b.Age
		}
	}
	return def
}

// AgeCoefficient returns the annuity coefficient for an age at liquidation,
// clamped to the table's boundary rows for out-of-range ages.
func (p *RegulatoryParameters) AgeCoefficient(age int) decimal.Decimal {
	if len(p.AgeCoefficients) == 0 {
		return decimal.NewFromInt(1)
	}
	coeff := p.AgeCoefficients[0].Coefficient
	for _, row := range p.AgeCoefficients {
		if age >= row.Age {
			coeff = row.Coefficient
		}
	}
	return coeff
}

// VolunteerMajoration returns the bonus quarters granted for years served as
// a volunteer firefighter. Highest threshold met wins; no proration.
func (p *RegulatoryParameters) VolunteerMajoration(years int) int {
	quarters := 0
	for _, s := range p.VolunteerSteps {
		if years >= s.MinYears {
			quarters = s.Quarters
		}
	}
	return quarters
}
