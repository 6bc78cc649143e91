package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/emifrog/horizon/internal/domain"
	"github.com/emifrog/horizon/internal/params"
)

func snapshot(liquidable, insured, required int) domain.DurationSnapshot {
	return domain.DurationSnapshot{
		EffectiveQuarters:  liquidable,
		LiquidableQuarters: liquidable,
		InsuredQuarters:    insured,
		RequiredQuarters:   required,
		QuarterGap:         insured - required,
	}
}

func TestComputePensionFullRate(t *testing.T) {
	// Departure exactly at required-quarters equality, past the
	// cancellation age: gross rate is 75.000 and no reduction applies.
	in := PensionInput{
		Params:           params.Default(),
		IndexedGrade:     500,
		Duration:         snapshot(172, 172, 172),
		DepartureDate:    d(2028, 6, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	assert.True(t, out.GrossRate.Equal(decimal.NewFromInt(75)),
		"expected 75, got %s", out.GrossRate)
	assert.Equal(t, 0, out.ReductionQuarters)
	assert.True(t, out.ReductionCoefficient.Equal(decimal.NewFromInt(1)))
	assert.True(t, out.NetRate.Equal(decimal.NewFromInt(75)))
}

func TestComputePensionReduction(t *testing.T) {
	// Twelve quarters short of the requirement, departure age below the
	// cancellation age with a 13-quarter age shortfall: the duration
	// shortfall is the smaller one.
	in := PensionInput{
		Params:           params.Default(),
		IndexedGrade:     500,
		Duration:         snapshot(160, 160, 172),
		DepartureDate:    d(2025, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	assert.Equal(t, 12, out.ReductionQuarters)
	assert.True(t, out.ReductionCoefficient.Equal(decimal.NewFromFloat(0.85)),
		"expected 0.85, got %s", out.ReductionCoefficient)
	expectedNet := out.GrossRate.Mul(decimal.NewFromFloat(0.85))
	assert.True(t, out.NetRate.Equal(expectedNet))
}

func TestComputePensionReductionAgeShortfallWins(t *testing.T) {
	// One quarter to the cancellation age but a large duration shortfall:
	// the age shortfall is the smaller one.
	in := PensionInput{
		Params:           params.Default(),
		IndexedGrade:     500,
		Duration:         snapshot(120, 120, 172),
		DepartureDate:    d(2028, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	assert.Equal(t, 1, out.ReductionQuarters)
}

func TestComputePensionReductionCap(t *testing.T) {
	in := PensionInput{
		Params:           params.Default(),
		IndexedGrade:     500,
		Duration:         snapshot(100, 100, 172), // 72 quarters short
		DepartureDate:    d(2015, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	assert.Equal(t, 20, out.ReductionQuarters)
	assert.True(t, out.ReductionCoefficient.Equal(decimal.NewFromFloat(0.75)),
		"expected 0.75, got %s", out.ReductionCoefficient)
}

func TestComputePensionReductionVoidAtCancellationAge(t *testing.T) {
	// Past the cancellation age the reduction is void regardless of the
	// duration shortfall.
	in := PensionInput{
		Params:           params.Default(),
		IndexedGrade:     500,
		Duration:         snapshot(100, 100, 172),
		DepartureDate:    d(2028, 4, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	assert.Equal(t, 0, out.ReductionQuarters)
	assert.True(t, out.ReductionCoefficient.Equal(decimal.NewFromInt(1)))
}

func TestComputePensionRateCap(t *testing.T) {
	in := PensionInput{
		Params:           params.Default(),
		IndexedGrade:     500,
		Duration:         snapshot(200, 200, 172),
		DepartureDate:    d(2030, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	assert.True(t, out.GrossRate.Equal(decimal.NewFromInt(75)),
		"rate must cap at 75, got %s", out.GrossRate)
}

func TestComputePensionZeroRequiredQuarters(t *testing.T) {
	in := PensionInput{
		Params:           params.Default(),
		IndexedGrade:     500,
		Duration:         snapshot(100, 100, 0),
		DepartureDate:    d(2030, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	assert.True(t, out.GrossRate.IsZero(), "division by zero must yield a zero rate")
}

func TestComputePensionHazardProration(t *testing.T) {
	p := params.Default()
	// Qualifying service plus its fifth bonus (120) falls short of the
	// requirement: the majoration is prorated by 100/140.
	duration := domain.DurationSnapshot{
		EffectiveQuarters:  100,
		FifthBonusQuarters: 20,
		LiquidableQuarters: 140,
		InsuredQuarters:    140,
		RequiredQuarters:   172,
		QuarterGap:         -32,
	}
	in := PensionInput{
		Params:           p,
		IndexedGrade:     500,
		Duration:         duration,
		DepartureDate:    d(2030, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
		HazardEligible:   true,
	}

	out := ComputePension(in)

	assert.True(t, out.HazardProrated)
	expectedRate := decimal.NewFromInt(100).Div(decimal.NewFromInt(140))
	assert.True(t, out.HazardProrationRate.Equal(expectedRate),
		"expected %s, got %s", expectedRate, out.HazardProrationRate)

	expected := out.GrossSalaryAnnual.Mul(p.HazardRate).
		Mul(expectedRate).
		Mul(out.NetRate).Div(decimal.NewFromInt(100))
	assert.True(t, out.HazardMajorationAnnual.Equal(expected))
}

func TestComputePensionHazardFullExemption(t *testing.T) {
	// Qualifying service plus its fifth bonus meets the requirement: no
	// proration even though other bonuses inflate the liquidable total.
	duration := domain.DurationSnapshot{
		EffectiveQuarters:  155,
		FifthBonusQuarters: 20,
		LiquidableQuarters: 183,
		InsuredQuarters:    183,
		RequiredQuarters:   172,
		QuarterGap:         11,
	}
	in := PensionInput{
		Params:           params.Default(),
		IndexedGrade:     500,
		Duration:         duration,
		DepartureDate:    d(2030, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
		HazardEligible:   true,
	}

	out := ComputePension(in)

	assert.False(t, out.HazardProrated)
	assert.False(t, out.HazardMajorationAnnual.IsZero())
}

func TestComputePensionHazardIneligible(t *testing.T) {
	in := PensionInput{
		Params:           params.Default(),
		IndexedGrade:     500,
		Duration:         snapshot(172, 172, 172),
		DepartureDate:    d(2030, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	assert.True(t, out.HazardMajorationAnnual.IsZero())
}

func TestComputePensionGuaranteedMinimum(t *testing.T) {
	p := params.Default()
	// A low grade over a full career computes below the guaranteed
	// minimum: the floor replaces the pension entirely.
	in := PensionInput{
		Params:           p,
		IndexedGrade:     100,
		Duration:         snapshot(172, 172, 172),
		DepartureDate:    d(2030, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	assert.True(t, out.GuaranteedMinimumApplied)
	assert.True(t, out.FinalPensionMonthly.Equal(p.GuaranteedMinimumMonthly),
		"expected %s, got %s", p.GuaranteedMinimumMonthly, out.FinalPensionMonthly)
}

func TestComputePensionGuaranteedMinimumProrated(t *testing.T) {
	p := params.Default()
	in := PensionInput{
		Params:           p,
		IndexedGrade:     100,
		Duration:         snapshot(86, 86, 172), // half a career
		DepartureDate:    d(2030, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	expected := p.GuaranteedMinimumMonthly.Mul(decimal.NewFromFloat(0.5))
	assert.True(t, out.GuaranteedMinimumMonthly.Equal(expected),
		"expected %s, got %s", expected, out.GuaranteedMinimumMonthly)
}

func TestComputePensionNetEstimate(t *testing.T) {
	p := params.Default()
	in := PensionInput{
		Params:           p,
		IndexedGrade:     500,
		Duration:         snapshot(172, 172, 172),
		DepartureDate:    d(2030, 1, 1),
		SedentaryAgeDate: d(2028, 4, 1),
	}

	out := ComputePension(in)

	expected := out.FinalPensionMonthly.Mul(decimal.NewFromInt(1).Sub(p.WithholdingRate))
	assert.True(t, out.NetEstimateMonthly.Equal(expected))
}
