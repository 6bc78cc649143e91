package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimulationResult is the terminal aggregate a simulation produces: the key
// dates, every departure scenario, the full-rate breakdown and the
// supplements, plus one combined monthly total. It serializes to a plain
// nested-record form with no cycles.
type SimulationResult struct {
	Profile CareerProfile `yaml:"profile" json:"profile"`
	AsOf    time.Time     `yaml:"as_of" json:"as_of"`

	ParametersVersion string `yaml:"parameters_version" json:"parameters_version"`

	KeyDates  KeyDates            `yaml:"key_dates" json:"key_dates"`
	Scenarios []DepartureScenario `yaml:"scenarios" json:"scenarios"`

	// FullRate is the full-rate scenario, duplicated out of Scenarios for
	// direct consumption; Duration is its snapshot.
	FullRate DepartureScenario `yaml:"full_rate" json:"full_rate"`
	Duration DurationSnapshot  `yaml:"duration" json:"duration"`

	BonusPoints BonusPointsSupplement `yaml:"bonus_points" json:"bonus_points"`
	Annuity     PointAnnuity          `yaml:"annuity" json:"annuity"`

	// TotalMonthly combines the full-rate pension, the bonus-points
	// supplement and the point annuity.
	TotalMonthly decimal.Decimal `yaml:"total_monthly" json:"total_monthly"`
}
