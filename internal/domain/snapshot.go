package domain

import "time"

// DurationSnapshot aggregates the credited service duration of a profile at
// one candidate departure date. It is recomputed fresh for every scenario
// date and never mutated.
type DurationSnapshot struct {
	AsOf time.Time `yaml:"as_of" json:"as_of"`

	// EffectiveQuarters is the work-fraction-weighted service since hire.
	EffectiveQuarters int `yaml:"effective_quarters" json:"effective_quarters"`

	// FifthBonusQuarters is the one-fifth service bonus on civilian
	// quarters, capped at five years.
	FifthBonusQuarters int `yaml:"fifth_bonus_quarters" json:"fifth_bonus_quarters"`

	ChildrenBonusQuarters  int `yaml:"children_bonus_quarters" json:"children_bonus_quarters"`
	VolunteerBonusQuarters int `yaml:"volunteer_bonus_quarters" json:"volunteer_bonus_quarters"`

	MilitaryQuarters           int `yaml:"military_quarters" json:"military_quarters"`
	MilitaryFifthBonusQuarters int `yaml:"military_fifth_bonus_quarters" json:"military_fifth_bonus_quarters"`

	OtherSchemeQuarters int `yaml:"other_scheme_quarters" json:"other_scheme_quarters"`

	// LiquidableQuarters feed the liquidation-rate calculation; insured
	// duration additionally counts other-scheme quarters.
	LiquidableQuarters int `yaml:"liquidable_quarters" json:"liquidable_quarters"`
	InsuredQuarters    int `yaml:"insured_quarters" json:"insured_quarters"`

	RequiredQuarters int `yaml:"required_quarters" json:"required_quarters"`

	// QuarterGap is insured minus required; positive means surplus.
	QuarterGap int `yaml:"quarter_gap" json:"quarter_gap"`

	// ActiveServiceMet reports whether the 17-year (68-quarter) active
	// service condition is satisfied, independently of the gap.
	ActiveServiceMet bool `yaml:"active_service_met" json:"active_service_met"`
}
