package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/emifrog/horizon/internal/domain"
	"github.com/emifrog/horizon/internal/params"
	"github.com/emifrog/horizon/pkg/dateutil"
)

// ComputeBonusPointsSupplement evaluates the indexed bonus-points supplement
// for one departure date. Points held less than a year earn nothing; points
// held fifteen years or more are integrated into the base salary and the
// separate supplement is zero; anything in between is prorated by the share
// of the career the points were held.
func ComputeBonusPointsSupplement(profile *domain.CareerProfile, departure time.Time, netRate decimal.Decimal, p *params.RegulatoryParameters) domain.BonusPointsSupplement {
	var out domain.BonusPointsSupplement
	if profile.BonusPoints <= 0 || profile.BonusPointsMonthsHeld < p.BonusPointsMinMonths {
		return out
	}
	out.Eligible = true
	if profile.BonusPointsMonthsHeld >= p.BonusPointsIntegrationMonths {
		out.Integrated = true
		return out
	}

	prorate := one
	if totalMonths := dateutil.MonthsBetween(profile.HireDate, departure); totalMonths > 0 {
		prorate = decimal.NewFromInt(int64(profile.BonusPointsMonthsHeld)).
			Div(decimal.NewFromInt(int64(totalMonths)))
		if prorate.GreaterThan(one) {
			prorate = one
		}
	}
	out.ProrationRate = prorate
	out.MonthlyAmount = decimal.NewFromInt(int64(profile.BonusPoints)).
		Mul(p.PointValueMonthly).
		Mul(netRate).
		Div(hundred).
		Mul(prorate)
	return out
}

// ComputePointAnnuity evaluates the supplementary point-based annuity: the
// declared hazard-bonus contribution base (capped at a fraction of the
// indexed salary) buys points each accrual year; the accumulated points pay
// an annuity adjusted by the age coefficient at liquidation.
func ComputePointAnnuity(profile *domain.CareerProfile, departureAge int, p *params.RegulatoryParameters) domain.PointAnnuity {
	out := domain.PointAnnuity{Coefficient: one}
	if profile.AnnuityYears <= 0 || profile.IndexedGrade <= 0 {
		return out
	}

	salaryAnnual := decimal.NewFromInt(int64(profile.IndexedGrade)).
		Mul(p.PointValueMonthly).
		Mul(twelve)

	base := profile.HazardBonusAnnual
	if base.LessThanOrEqual(decimal.Zero) {
		base = salaryAnnual.Mul(p.HazardRate)
	}
	if cap := salaryAnnual.Mul(p.AnnuityBaseCapRate); base.GreaterThan(cap) {
		base = cap
		out.BaseCapped = true
	}

	contribution := base.Mul(p.AnnuityContributionRate)
	if p.AnnuityAcquisitionValue.LessThanOrEqual(decimal.Zero) {
		return out
	}
	pointsPerYear := contribution.Div(p.AnnuityAcquisitionValue).Ceil().IntPart()
	out.Points = int(pointsPerYear) * profile.AnnuityYears
	out.RenteEligible = out.Points >= p.AnnuityRentePoints

	out.Coefficient = p.AgeCoefficient(departureAge)
	annual := decimal.NewFromInt(int64(out.Points)).
		Mul(p.AnnuityServiceValue).
		Mul(out.Coefficient)
	out.MonthlyAmount = annual.Div(twelve)
	return out
}

// ComputeIncrease evaluates the deferred-retirement bonus for one departure
// date. Eligibility requires the departure age to have reached the SEDENTARY
// legal age (not the active one) and the insured duration to meet the
// requirement; quarters accrue only past the later of the full-rate date and
// the sedentary-age date, at an uncapped per-quarter rate.
func ComputeIncrease(departure time.Time, snapshot domain.DurationSnapshot, kd domain.KeyDates, p *params.RegulatoryParameters) domain.IncreaseResult {
	out := domain.IncreaseResult{Multiplier: one, Rate: decimal.Zero}
	if departure.IsZero() || kd.SedentaryAgeDate.IsZero() {
		return out
	}
	if departure.Before(kd.SedentaryAgeDate) {
		return out
	}
	if snapshot.RequiredQuarters <= 0 || snapshot.InsuredQuarters < snapshot.RequiredQuarters {
		return out
	}

	start := dateutil.LaterOf(kd.FullRateDate, kd.SedentaryAgeDate)
	quarters := dateutil.QuartersBetween(start, departure)
	if quarters <= 0 {
		return out
	}

	out.Eligible = true
	out.StartDate = start
	out.Quarters = quarters
	out.Rate = p.IncreaseRatePerQuarter.Mul(decimal.NewFromInt(int64(quarters)))
	out.Multiplier = one.Add(out.Rate.Div(hundred))
	return out
}
