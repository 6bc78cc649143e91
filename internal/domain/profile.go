// Package domain defines the data model of the pension simulation: the
// career profile fed in, and the snapshots, scenarios and pension results
// produced. All derived structures use value semantics and are owned by the
// computation that produced them.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MilitaryServiceKind identifies how military service quarters were earned.
type MilitaryServiceKind string

const (
	MilitaryNone            MilitaryServiceKind = "none"
	MilitaryNationalService MilitaryServiceKind = "national_service"
	MilitaryCareer          MilitaryServiceKind = "career"
)

// MilitaryService describes a military service period credited to the
// pension. Quarters count toward the active-service eligibility check.
type MilitaryService struct {
	Kind     MilitaryServiceKind `yaml:"kind" json:"kind"`
	Quarters int                 `yaml:"quarters" json:"quarters"`
}

// CareerProfile is the immutable input of one simulation.
// Invariant: birth date <= hire date <= any evaluated departure date.
type CareerProfile struct {
	BirthDate time.Time `yaml:"birth_date" json:"birth_date"`
	HireDate  time.Time `yaml:"hire_date" json:"hire_date"`

	// WorkFraction is the contractual work-time fraction (0.5 to 1.0).
	// Zero means full time.
	WorkFraction decimal.Decimal `yaml:"work_fraction" json:"work_fraction"`

	VolunteerYears      int             `yaml:"volunteer_years" json:"volunteer_years"`
	OtherSchemeQuarters int             `yaml:"other_scheme_quarters" json:"other_scheme_quarters"`
	ChildrenBefore2004  int             `yaml:"children_before_2004" json:"children_before_2004"`
	Military            MilitaryService `yaml:"military" json:"military"`

	// IndexedGrade is the salary index (points) of the final grade.
	IndexedGrade int `yaml:"indexed_grade" json:"indexed_grade"`

	// BonusPoints and the months they were held drive the indexed-points
	// supplement; at 15 years held they are integrated into the base salary.
	BonusPoints           int `yaml:"bonus_points" json:"bonus_points"`
	BonusPointsMonthsHeld int `yaml:"bonus_points_months_held" json:"bonus_points_months_held"`

	// HazardBonusAnnual is the declared hazard-duty bonus used as the
	// point-annuity contribution base. Zero means derive it from the
	// regulatory hazard rate and the indexed salary.
	HazardBonusAnnual decimal.Decimal `yaml:"hazard_bonus_annual" json:"hazard_bonus_annual"`

	// AnnuityYears is the number of years of point-annuity contributions.
	AnnuityYears int `yaml:"annuity_years" json:"annuity_years"`
}

// BirthYear returns the birth cohort year, zero when the birth date is unset.
func (p *CareerProfile) BirthYear() int {
	if p.BirthDate.IsZero() {
		return 0
	}
	return p.BirthDate.Year()
}

// EffectiveWorkFraction returns the work-time fraction, defaulting to full
// time when the field was left at zero.
func (p *CareerProfile) EffectiveWorkFraction() decimal.Decimal {
	if p.WorkFraction.IsZero() {
		return decimal.NewFromInt(1)
	}
	return p.WorkFraction
}

// MilitaryQuarters returns the credited military quarters, zero unless a
// military service kind is set.
func (p *CareerProfile) MilitaryQuarters() int {
	if p.Military.Kind == "" || p.Military.Kind == MilitaryNone {
		return 0
	}
	if p.Military.Quarters < 0 {
		return 0
	}
	return p.Military.Quarters
}
