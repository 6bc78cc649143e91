// Package calculation implements the pension pipeline: service-duration
// aggregation, statutory key dates, base pension and supplements. Every
// function here is pure: no I/O, no shared mutable state, deterministic for
// a given profile, as-of date and parameter table.
package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/emifrog/horizon/internal/domain"
	"github.com/emifrog/horizon/internal/params"
	"github.com/emifrog/horizon/pkg/dateutil"
)

// fifthBonus returns the one-fifth service bonus for a quarter count, capped.
func fifthBonus(quarters, capQuarters int) int {
	bonus := quarters / 5
	if bonus > capQuarters {
		return capQuarters
	}
	return bonus
}

// ComputeDuration aggregates the credited service quarters of a profile as
// of one candidate departure date. A profile with a missing birth or hire
// date yields a zero snapshot: this is a best-effort estimator, not a system
// of record.
func ComputeDuration(profile *domain.CareerProfile, asOf time.Time, p *params.RegulatoryParameters) domain.DurationSnapshot {
	snapshot := domain.DurationSnapshot{AsOf: asOf}
	if profile == nil || profile.BirthDate.IsZero() || profile.HireDate.IsZero() {
		return snapshot
	}

	snapshot.RequiredQuarters = p.RequiredQuarters(profile.BirthYear())

	raw := dateutil.QuartersBetween(profile.HireDate, asOf)
	effective := decimal.NewFromInt(int64(raw)).
		Mul(profile.EffectiveWorkFraction()).
		IntPart()
	snapshot.EffectiveQuarters = int(effective)

	// The one-fifth bonus applies separately to civilian and military
	// service, each with its own cap.
	snapshot.FifthBonusQuarters = fifthBonus(snapshot.EffectiveQuarters, p.FifthBonusCapQuarters)
	snapshot.MilitaryQuarters = profile.MilitaryQuarters()
	snapshot.MilitaryFifthBonusQuarters = fifthBonus(snapshot.MilitaryQuarters, p.FifthBonusCapQuarters)

	if profile.ChildrenBefore2004 > 0 {
		snapshot.ChildrenBonusQuarters = profile.ChildrenBefore2004 * p.ChildBonusQuarters
	}
	snapshot.VolunteerBonusQuarters = p.VolunteerMajoration(profile.VolunteerYears)

	if profile.OtherSchemeQuarters > 0 {
		snapshot.OtherSchemeQuarters = profile.OtherSchemeQuarters
	}

	snapshot.LiquidableQuarters = snapshot.EffectiveQuarters +
		snapshot.FifthBonusQuarters +
		snapshot.ChildrenBonusQuarters +
		snapshot.VolunteerBonusQuarters +
		snapshot.MilitaryQuarters +
		snapshot.MilitaryFifthBonusQuarters

	snapshot.InsuredQuarters = snapshot.LiquidableQuarters + snapshot.OtherSchemeQuarters
	snapshot.QuarterGap = snapshot.InsuredQuarters - snapshot.RequiredQuarters

	// 17-year active-service condition: effective plus military quarters,
	// bonuses excluded.
	snapshot.ActiveServiceMet = snapshot.EffectiveQuarters+snapshot.MilitaryQuarters >= p.ActiveServiceMinQuarters

	return snapshot
}
