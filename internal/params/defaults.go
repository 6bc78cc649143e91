package params

import (
	"time"

	"github.com/shopspring/decimal"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Default returns the compiled-in regulatory table reflecting the 2023
// reform schedule. Values are versioned by release; callers needing a
// different vintage load an override file on top of these.
func Default() *RegulatoryParameters {
	return &RegulatoryParameters{
		Version: "2024.1",

		RequiredQuartersTable: []CohortQuarters{
			{FromYear: 1900, Quarters: 167},
			{FromYear: 1961, Quarters: 169},
			{FromYear: 1963, Quarters: 170},
			{FromYear: 1964, Quarters: 171},
			{FromYear: 1965, Quarters: 172},
		},

		// Active-category opening age: 57 before the reform, raised by
		// 3 months per cohort up to 59.
		ActiveAges: []AgeBracket{
			{From: date(1900, 1, 1), To: date(1966, 9, 1), Age: AgeYM{57, 0}},
			{From: date(1966, 9, 1), To: date(1967, 1, 1), Age: AgeYM{57, 3}},
			{From: date(1967, 1, 1), To: date(1968, 1, 1), Age: AgeYM{57, 6}},
			{From: date(1968, 1, 1), To: date(1969, 1, 1), Age: AgeYM{57, 9}},
			{From: date(1969, 1, 1), To: date(1970, 1, 1), Age: AgeYM{58, 0}},
			{From: date(1970, 1, 1), To: date(1971, 1, 1), Age: AgeYM{58, 3}},
			{From: date(1971, 1, 1), To: date(1972, 1, 1), Age: AgeYM{58, 6}},
			{From: date(1972, 1, 1), To: date(1973, 1, 1), Age: AgeYM{58, 9}},
		},
		ActiveAgeDefault: AgeYM{59, 0},

		// Sedentary-category legal age: 62 before the reform, raised by
		// 3 months per cohort up to 64. Doubles as the reduction-cancellation
		// threshold and as the increase age gate.
		SedentaryAges: []AgeBracket{
			{From: date(1900, 1, 1), To: date(1961, 9, 1), Age: AgeYM{62, 0}},
			{From: date(1961, 9, 1), To: date(1962, 1, 1), Age: AgeYM{62, 3}},
			{From: date(1962, 1, 1), To: date(1963, 1, 1), Age: AgeYM{62, 6}},
			{From: date(1963, 1, 1), To: date(1964, 1, 1), Age: AgeYM{62, 9}},
			{From: date(1964, 1, 1), To: date(1965, 1, 1), Age: AgeYM{63, 0}},
			{From: date(1965, 1, 1), To: date(1966, 1, 1), Age: AgeYM{63, 3}},
			{From: date(1966, 1, 1), To: date(1967, 1, 1), Age: AgeYM{63, 6}},
			{From: date(1967, 1, 1), To: date(1968, 1, 1), Age: AgeYM{63, 9}},
		},
		SedentaryAgeDefault: AgeYM{64, 0},

		// Post-reform active-category age limit.
		ActiveAgeLimit: AgeYM{64, 0},

		PointValueMonthly: decimal.NewFromFloat(4.92278),

		MaxLiquidationRate:      decimal.NewFromInt(75),
		ReductionRatePerQuarter: decimal.NewFromFloat(0.0125),
		ReductionMaxQuarters:    20,
		IncreaseRatePerQuarter:  decimal.NewFromFloat(1.25),

		FifthBonusCapQuarters:    20,
		ChildBonusQuarters:       4,
		ActiveServiceMinQuarters: 68, // 17 years of active service

		HazardRate: decimal.NewFromFloat(0.25),

		VolunteerSteps: []VolunteerStep{
			{MinYears: 10, Quarters: 1},
			{MinYears: 15, Quarters: 2},
			{MinYears: 20, Quarters: 3},
			{MinYears: 25, Quarters: 4},
			{MinYears: 30, Quarters: 5},
		},

		GuaranteedMinimumMonthly: decimal.NewFromFloat(1248.33),
		// CSG 8.3% + CRDS 0.5% + CASA 0.3%
		WithholdingRate: decimal.NewFromFloat(0.091),

		AnnuityContributionRate: decimal.NewFromFloat(0.10),
		AnnuityBaseCapRate:      decimal.NewFromFloat(0.20),
		AnnuityAcquisitionValue: decimal.NewFromFloat(1.3466),
		AnnuityServiceValue:     decimal.NewFromFloat(0.04764),
		AnnuityRentePoints:      5125,
		AgeCoefficients: []AgeCoefficient{
			{Age: 57, Coefficient: decimal.NewFromFloat(0.81)},
			{Age: 58, Coefficient: decimal.NewFromFloat(0.85)},
			{Age: 59, Coefficient: decimal.NewFromFloat(0.89)},
			{Age: 60, Coefficient: decimal.NewFromFloat(0.93)},
			{Age: 61, Coefficient: decimal.NewFromFloat(0.96)},
			{Age: 62, Coefficient: decimal.NewFromFloat(1.00)},
			{Age: 63, Coefficient: decimal.NewFromFloat(1.04)},
			{Age: 64, Coefficient: decimal.NewFromFloat(1.08)},
			{Age: 65, Coefficient: decimal.NewFromFloat(1.12)},
			{Age: 66, Coefficient: decimal.NewFromFloat(1.17)},
			{Age: 67, Coefficient: decimal.NewFromFloat(1.22)},
			{Age: 68, Coefficient: decimal.NewFromFloat(1.28)},
			{Age: 69, Coefficient: decimal.NewFromFloat(1.33)},
			{Age: 70, Coefficient: decimal.NewFromFloat(1.39)},
			{Age: 71, Coefficient: decimal.NewFromFloat(1.45)},
			{Age: 72, Coefficient: decimal.NewFromFloat(1.52)},
			{Age: 73, Coefficient: decimal.NewFromFloat(1.60)},
			{Age: 74, Coefficient: decimal.NewFromFloat(1.68)},
			{Age: 75, Coefficient: decimal.NewFromFloat(1.78)},
		},

		BonusPointsMinMonths:         12,
		BonusPointsIntegrationMonths: 180,
	}
}
