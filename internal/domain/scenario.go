package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScenarioKind tags one of the canonical departure scenarios.
type ScenarioKind string

const (
	ScenarioEarliest ScenarioKind = "earliest"
	ScenarioFullRate ScenarioKind = "full_rate"
	ScenarioAgeLimit ScenarioKind = "age_limit"
	ScenarioDeferred ScenarioKind = "deferred"
)

// KeyDates holds the statutory dates derived from a profile.
type KeyDates struct {
	// OpeningDate is the birth date plus the active-category legal age.
	OpeningDate time.Time `yaml:"opening_date" json:"opening_date"`

	// EarlyEligible reports whether the 68-quarter active-service condition
	// is met by the opening date. When false, EarliestDate carries the
	// projected date at which it will be.
	EarlyEligible bool      `yaml:"early_eligible" json:"early_eligible"`
	EarliestDate  time.Time `yaml:"earliest_date" json:"earliest_date"`

	// FullRateDate is the first date with no reduction: either the insured
	// duration meets the requirement (FullRateByAge false) or the
	// reduction-cancellation age was reached first (FullRateByAge true,
	// ResidualShortfall reports the remaining quarter deficit).
	FullRateDate      time.Time `yaml:"full_rate_date" json:"full_rate_date"`
	FullRateByAge     bool      `yaml:"full_rate_by_age" json:"full_rate_by_age"`
	ResidualShortfall int       `yaml:"residual_shortfall" json:"residual_shortfall"`

	SedentaryAgeDate time.Time `yaml:"sedentary_age_date" json:"sedentary_age_date"`
	AgeLimitDate     time.Time `yaml:"age_limit_date" json:"age_limit_date"`
}

// IncreaseResult is the deferred-retirement bonus for one departure date.
// The rate accrues per quarter worked beyond both the full-rate date and the
// sedentary legal age; unlike the reduction, it is not capped.
type IncreaseResult struct {
	Eligible   bool            `yaml:"eligible" json:"eligible"`
	StartDate  time.Time       `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	Quarters   int             `yaml:"quarters" json:"quarters"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"` // percent
	Multiplier decimal.Decimal `yaml:"multiplier" json:"multiplier"`
}

// DepartureScenario is one evaluated departure date with its duration and
// pension snapshots.
type DepartureScenario struct {
	Kind ScenarioKind `yaml:"kind" json:"kind"`

	// DeferredQuarters is set only for deferred scenarios: the number of
	// quarters past the full-rate date.
	DeferredQuarters int `yaml:"deferred_quarters,omitempty" json:"deferred_quarters,omitempty"`

	Date           time.Time `yaml:"date" json:"date"`
	AgeAtDeparture int       `yaml:"age_at_departure" json:"age_at_departure"`

	Duration DurationSnapshot `yaml:"duration" json:"duration"`

	LiquidationRate      decimal.Decimal `yaml:"liquidation_rate" json:"liquidation_rate"` // net, percent
	ReductionQuarters    int             `yaml:"reduction_quarters" json:"reduction_quarters"`
	ReductionCoefficient decimal.Decimal `yaml:"reduction_coefficient" json:"reduction_coefficient"`
	Increase             IncreaseResult  `yaml:"increase" json:"increase"`

	Pension PensionResult `yaml:"pension" json:"pension"`
}
