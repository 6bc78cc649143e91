package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/emifrog/horizon/internal/domain"
	"github.com/emifrog/horizon/internal/params"
	"github.com/emifrog/horizon/pkg/dateutil"
)

// ResolveKeyDates derives the statutory dates for a profile: opening of
// rights, earliest possible departure, full-rate date and age-limit date.
// The as-of date anchors the forward searches so tests can pin time.
func ResolveKeyDates(profile *domain.CareerProfile, asOf time.Time, p *params.RegulatoryParameters) domain.KeyDates {
	var kd domain.KeyDates
	if profile == nil || profile.BirthDate.IsZero() || profile.HireDate.IsZero() {
		return kd
	}

	birth := profile.BirthDate
	kd.OpeningDate = p.LegalAge(params.CategoryActive, birth).DateFor(birth)
	kd.SedentaryAgeDate = p.LegalAge(params.CategorySedentary, birth).DateFor(birth)
	kd.AgeLimitDate = p.ActiveAgeLimit.DateFor(birth)

	openingSnap := ComputeDuration(profile, kd.OpeningDate, p)
	kd.EarlyEligible = openingSnap.ActiveServiceMet

	earliest := dateutil.LaterOf(kd.OpeningDate, asOf)
	if !kd.EarlyEligible {
		// Rough projection of the date the 68-quarter active condition is
		// met: remaining civilian quarters at 3 months each, stretched by
		// the work fraction, counted from the hire date.
		needed := p.ActiveServiceMinQuarters - profile.MilitaryQuarters()
		if needed > 0 {
			months := decimal.NewFromInt(int64(needed * 3)).
				Div(profile.EffectiveWorkFraction()).
				Ceil().
				IntPart()
			projected := dateutil.AddYearsMonths(profile.HireDate, 0, int(months))
			earliest = dateutil.LaterOf(earliest, projected)
		}
	}
	kd.EarliestDate = earliest

	kd.FullRateDate, kd.FullRateByAge = findFullRateDate(profile, earliest, kd.SedentaryAgeDate, p)
	if kd.FullRateByAge {
		snap := ComputeDuration(profile, kd.FullRateDate, p)
		if shortfall := snap.RequiredQuarters - snap.InsuredQuarters; shortfall > 0 {
			kd.ResidualShortfall = shortfall
		}
	}

	// Rights opened past the age limit collapse the two dates.
	kd.AgeLimitDate = dateutil.LaterOf(kd.AgeLimitDate, kd.FullRateDate)

	return kd
}

// findFullRateDate walks forward month by month from the earliest departure
// date until the insured duration meets the cohort requirement, bounded by
// the reduction-cancellation (sedentary legal age) date. Reaching the bound
// without satisfying the duration defines the full-rate date as the bound
// itself.
func findFullRateDate(profile *domain.CareerProfile, start, bound time.Time, p *params.RegulatoryParameters) (time.Time, bool) {
	if start.After(bound) {
		// The reduction is already cancelled by age.
		return start, true
	}
	for d := start; !d.After(bound); d = dateutil.AddYearsMonths(d, 0, 1) {
		snap := ComputeDuration(profile, d, p)
		if snap.RequiredQuarters > 0 && snap.InsuredQuarters >= snap.RequiredQuarters {
			return d, false
		}
	}
	return bound, true
}
