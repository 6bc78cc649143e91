package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/emifrog/horizon/internal/domain"
	"github.com/emifrog/horizon/internal/params"
	"github.com/emifrog/horizon/pkg/dateutil"
)

// deferredOffsets are the quarter offsets past the full-rate date simulated
// as additional departure scenarios.
var deferredOffsets = []int{4, 8}

// Engine orchestrates the simulation pipeline against one read-only
// parameter table. It is safe to reuse across invocations: every Simulate
// call produces a fresh, fully-owned result graph.
type Engine struct {
	Params *params.RegulatoryParameters
	Logger Logger
}

// NewEngine creates an engine; a nil parameter table selects the
// compiled-in defaults.
func NewEngine(p *params.RegulatoryParameters) *Engine {
	if p == nil {
		p = params.Default()
	}
	return &Engine{Params: p, Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// Simulate runs the full pipeline for one profile. The as-of date anchors
// every forward search; a zero value means today.
func (e *Engine) Simulate(profile *domain.CareerProfile, asOf time.Time) (*domain.SimulationResult, error) {
	if profile == nil {
		return nil, errors.New("career profile is required")
	}
	if profile.BirthDate.IsZero() || profile.HireDate.IsZero() {
		return nil, errors.New("birth date and hire date are required")
	}
	if profile.HireDate.Before(profile.BirthDate) {
		return nil, fmt.Errorf("hire date (%s) cannot be before birth date (%s)",
			profile.HireDate.Format("2006-01-02"), profile.BirthDate.Format("2006-01-02"))
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	kd := ResolveKeyDates(profile, asOf, e.Params)
	e.Logger.Debugf("key dates: opening=%s earliest=%s full-rate=%s (by age: %t) age-limit=%s",
		kd.OpeningDate.Format("2006-01-02"), kd.EarliestDate.Format("2006-01-02"),
		kd.FullRateDate.Format("2006-01-02"), kd.FullRateByAge,
		kd.AgeLimitDate.Format("2006-01-02"))

	scenarios := []domain.DepartureScenario{
		e.buildScenario(profile, domain.ScenarioEarliest, kd.EarliestDate, 0, kd),
		e.buildScenario(profile, domain.ScenarioFullRate, kd.FullRateDate, 0, kd),
	}
	for _, offset := range deferredOffsets {
		date := dateutil.AddYearsMonths(kd.FullRateDate, 0, offset*3)
		if date.After(kd.AgeLimitDate) {
			break
		}
		scenarios = append(scenarios, e.buildScenario(profile, domain.ScenarioDeferred, date, offset, kd))
	}
	scenarios = append(scenarios, e.buildScenario(profile, domain.ScenarioAgeLimit, kd.AgeLimitDate, 0, kd))

	fullRate := scenarios[1]

	nbi := ComputeBonusPointsSupplement(profile, fullRate.Date, fullRate.Pension.NetRate, e.Params)
	annuity := ComputePointAnnuity(profile, fullRate.AgeAtDeparture, e.Params)

	total := fullRate.Pension.FinalPensionMonthly.
		Add(nbi.MonthlyAmount).
		Add(annuity.MonthlyAmount)

	return &domain.SimulationResult{
		Profile:           *profile,
		AsOf:              asOf,
		ParametersVersion: e.Params.Version,
		KeyDates:          kd,
		Scenarios:         scenarios,
		FullRate:          fullRate,
		Duration:          fullRate.Duration,
		BonusPoints:       nbi,
		Annuity:           annuity,
		TotalMonthly:      total,
	}, nil
}

// EvaluateAt computes the duration snapshot and pension for one candidate
// departure date. Every scenario builder goes through here so the full-rate
// and alternative paths cannot drift apart.
func (e *Engine) EvaluateAt(profile *domain.CareerProfile, date time.Time, kd domain.KeyDates) (domain.DurationSnapshot, domain.PensionResult) {
	snapshot := ComputeDuration(profile, date, e.Params)

	integrated := 0
	if profile.BonusPoints > 0 && profile.BonusPointsMonthsHeld >= e.Params.BonusPointsIntegrationMonths {
		integrated = profile.BonusPoints
	}

	pension := ComputePension(PensionInput{
		Params:                e.Params,
		IndexedGrade:          profile.IndexedGrade,
		IntegratedBonusPoints: integrated,
		Duration:              snapshot,
		DepartureDate:         date,
		SedentaryAgeDate:      kd.SedentaryAgeDate,
		HazardEligible:        true,
	})
	return snapshot, pension
}

func (e *Engine) buildScenario(profile *domain.CareerProfile, kind domain.ScenarioKind, date time.Time, deferredQuarters int, kd domain.KeyDates) domain.DepartureScenario {
	snapshot, pension := e.EvaluateAt(profile, date, kd)

	increase := ComputeIncrease(date, snapshot, kd, e.Params)
	if increase.Eligible {
		// The increase applies multiplicatively to the computed pension.
		pension.FinalPensionMonthly = pension.FinalPensionMonthly.Mul(increase.Multiplier)
		pension.FinalPensionAnnual = pension.FinalPensionAnnual.Mul(increase.Multiplier)
		pension.NetEstimateMonthly = netEstimate(e.Params, pension.FinalPensionMonthly)
	}

	return domain.DepartureScenario{
		Kind:                 kind,
		DeferredQuarters:     deferredQuarters,
		Date:                 date,
		AgeAtDeparture:       dateutil.Age(profile.BirthDate, date),
		Duration:             snapshot,
		LiquidationRate:      pension.NetRate,
		ReductionQuarters:    pension.ReductionQuarters,
		ReductionCoefficient: pension.ReductionCoefficient,
		Increase:             increase,
		Pension:              pension,
	}
}
