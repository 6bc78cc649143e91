package domain

import (
	"github.com/shopspring/decimal"
)

// PensionResult is the base pension breakdown for one departure date.
// Immutable once computed.
type PensionResult struct {
	GrossSalaryMonthly decimal.Decimal `yaml:"gross_salary_monthly" json:"gross_salary_monthly"`
	GrossSalaryAnnual  decimal.Decimal `yaml:"gross_salary_annual" json:"gross_salary_annual"`

	// BonusPointsIntegrated reports whether bonus points were folded into
	// the indexed salary instead of being paid as a separate supplement.
	BonusPointsIntegrated bool `yaml:"bonus_points_integrated" json:"bonus_points_integrated"`

	GrossRate            decimal.Decimal `yaml:"gross_rate" json:"gross_rate"` // percent, capped
	ReductionQuarters    int             `yaml:"reduction_quarters" json:"reduction_quarters"`
	ReductionCoefficient decimal.Decimal `yaml:"reduction_coefficient" json:"reduction_coefficient"`
	NetRate              decimal.Decimal `yaml:"net_rate" json:"net_rate"` // percent

	HazardMajorationAnnual decimal.Decimal `yaml:"hazard_majoration_annual" json:"hazard_majoration_annual"`
	HazardProrated         bool            `yaml:"hazard_prorated" json:"hazard_prorated"`
	HazardProrationRate    decimal.Decimal `yaml:"hazard_proration_rate" json:"hazard_proration_rate"`

	BasePensionMonthly decimal.Decimal `yaml:"base_pension_monthly" json:"base_pension_monthly"`
	BasePensionAnnual  decimal.Decimal `yaml:"base_pension_annual" json:"base_pension_annual"`

	GuaranteedMinimumApplied bool            `yaml:"guaranteed_minimum_applied" json:"guaranteed_minimum_applied"`
	GuaranteedMinimumMonthly decimal.Decimal `yaml:"guaranteed_minimum_monthly" json:"guaranteed_minimum_monthly"`

	FinalPensionMonthly decimal.Decimal `yaml:"final_pension_monthly" json:"final_pension_monthly"`
	FinalPensionAnnual  decimal.Decimal `yaml:"final_pension_annual" json:"final_pension_annual"`

	NetEstimateMonthly decimal.Decimal `yaml:"net_estimate_monthly" json:"net_estimate_monthly"`
}

// BonusPointsSupplement is the indexed bonus-points supplement paid on top
// of the base pension when the points were not integrated into the salary.
type BonusPointsSupplement struct {
	Eligible      bool            `yaml:"eligible" json:"eligible"`
	Integrated    bool            `yaml:"integrated" json:"integrated"`
	ProrationRate decimal.Decimal `yaml:"proration_rate" json:"proration_rate"`
	MonthlyAmount decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
}

// PointAnnuity is the supplementary point-based annuity funded by
// contributions on the hazard-duty bonus.
type PointAnnuity struct {
	Points        int             `yaml:"points" json:"points"`
	BaseCapped    bool            `yaml:"base_capped" json:"base_capped"`
	Coefficient   decimal.Decimal `yaml:"coefficient" json:"coefficient"`
	RenteEligible bool            `yaml:"rente_eligible" json:"rente_eligible"`
	MonthlyAmount decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
}
