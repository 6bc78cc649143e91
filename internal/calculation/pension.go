package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/emifrog/horizon/internal/domain"
	"github.com/emifrog/horizon/internal/params"
	"github.com/emifrog/horizon/pkg/dateutil"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// PensionInput carries everything ComputePension needs. All values are
// snapshots owned by the caller; nothing is shared or mutated.
type PensionInput struct {
	Params *params.RegulatoryParameters

	IndexedGrade          int
	IntegratedBonusPoints int

	Duration      domain.DurationSnapshot
	DepartureDate time.Time

	// SedentaryAgeDate is the reduction-cancellation date; at or past it the
	// reduction is void regardless of the duration shortfall.
	SedentaryAgeDate time.Time

	HazardEligible bool
}

// ComputePension computes the base pension for one departure date: indexed
// gross salary, liquidation rate, reduction, hazard-duty majoration,
// guaranteed-minimum floor and the net estimate after withholdings. Every
// division is guarded; a zero required duration yields a zero rate.
func ComputePension(in PensionInput) domain.PensionResult {
	p := in.Params
	var out domain.PensionResult

	points := decimal.NewFromInt(int64(in.IndexedGrade + in.IntegratedBonusPoints))
	out.BonusPointsIntegrated = in.IntegratedBonusPoints > 0
	out.GrossSalaryMonthly = points.Mul(p.PointValueMonthly)
	out.GrossSalaryAnnual = out.GrossSalaryMonthly.Mul(twelve)

	if in.Duration.RequiredQuarters > 0 {
		rate := decimal.NewFromInt(int64(in.Duration.LiquidableQuarters)).
			Div(decimal.NewFromInt(int64(in.Duration.RequiredQuarters))).
			Mul(p.MaxLiquidationRate)
		if rate.GreaterThan(p.MaxLiquidationRate) {
			rate = p.MaxLiquidationRate
		}
		out.GrossRate = rate
	}

	out.ReductionQuarters = reductionQuarters(in)
	out.ReductionCoefficient = reductionCoefficient(p, out.ReductionQuarters)
	out.NetRate = out.GrossRate.Mul(out.ReductionCoefficient)

	if in.HazardEligible {
		out.HazardMajorationAnnual, out.HazardProrated, out.HazardProrationRate =
			hazardMajoration(p, out.GrossSalaryAnnual, out.NetRate, in.Duration)
	}

	pensionAnnual := out.GrossSalaryAnnual.Mul(out.NetRate).Div(hundred).
		Add(out.HazardMajorationAnnual)
	out.BasePensionAnnual = pensionAnnual
	out.BasePensionMonthly = pensionAnnual.Div(twelve)

	// The guaranteed minimum replaces the computed pension when higher; it
	// is never added on top.
	if in.Duration.RequiredQuarters > 0 {
		ratio := decimal.NewFromInt(int64(in.Duration.LiquidableQuarters)).
			Div(decimal.NewFromInt(int64(in.Duration.RequiredQuarters)))
		if ratio.GreaterThan(one) {
			ratio = one
		}
		out.GuaranteedMinimumMonthly = p.GuaranteedMinimumMonthly.Mul(ratio)
		if out.GuaranteedMinimumMonthly.GreaterThan(out.BasePensionMonthly) {
			out.GuaranteedMinimumApplied = true
			out.BasePensionMonthly = out.GuaranteedMinimumMonthly
			out.BasePensionAnnual = out.GuaranteedMinimumMonthly.Mul(twelve)
		}
	}

	out.FinalPensionMonthly = out.BasePensionMonthly
	out.FinalPensionAnnual = out.BasePensionAnnual
	out.NetEstimateMonthly = netEstimate(p, out.FinalPensionMonthly)

	return out
}

// reductionQuarters is the smaller of the duration shortfall and the
// distance to the cancellation age, capped; zero at or past the
// cancellation age regardless of duration.
func reductionQuarters(in PensionInput) int {
	if in.DepartureDate.IsZero() || in.SedentaryAgeDate.IsZero() {
		return 0
	}
	if !in.DepartureDate.Before(in.SedentaryAgeDate) {
		return 0
	}
	shortDuration := -in.Duration.QuarterGap
	if shortDuration <= 0 {
		return 0
	}
	shortAge := dateutil.QuartersBetween(in.DepartureDate, in.SedentaryAgeDate)
	quarters := shortDuration
	if shortAge < quarters {
		quarters = shortAge
	}
	if quarters > in.Params.ReductionMaxQuarters {
		quarters = in.Params.ReductionMaxQuarters
	}
	return quarters
}

func reductionCoefficient(p *params.RegulatoryParameters, quarters int) decimal.Decimal {
	coeff := one.Sub(p.ReductionRatePerQuarter.Mul(decimal.NewFromInt(int64(quarters))))
	floor := one.Sub(p.ReductionRatePerQuarter.Mul(decimal.NewFromInt(int64(p.ReductionMaxQuarters))))
	if coeff.LessThan(floor) {
		return floor
	}
	return coeff
}

// hazardMajoration computes the hazard-duty supplement: the hazard rate
// applied to the indexed salary, prorated by the share of qualifying service
// in the liquidable total unless the qualifying quarters plus their own
// fifth bonus already meet the required duration, then scaled by the net
// liquidation rate.
func hazardMajoration(p *params.RegulatoryParameters, grossAnnual, netRate decimal.Decimal, d domain.DurationSnapshot) (amount decimal.Decimal, prorated bool, prorationRate decimal.Decimal) {
	base := grossAnnual.Mul(p.HazardRate)
	prorate := one
	exempt := d.RequiredQuarters > 0 &&
		d.EffectiveQuarters+d.FifthBonusQuarters >= d.RequiredQuarters
	if !exempt && d.LiquidableQuarters > 0 {
		prorate = decimal.NewFromInt(int64(d.EffectiveQuarters)).
			Div(decimal.NewFromInt(int64(d.LiquidableQuarters)))
		prorated = true
		prorationRate = prorate
	}
	amount = base.Mul(prorate).Mul(netRate).Div(hundred)
	return amount, prorated, prorationRate
}

// netEstimate applies the flat statutory withholdings to a gross monthly
// pension.
func netEstimate(p *params.RegulatoryParameters, grossMonthly decimal.Decimal) decimal.Decimal {
	return grossMonthly.Mul(one.Sub(p.WithholdingRate))
}
