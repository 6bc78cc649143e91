package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/emifrog/horizon/internal/domain"
)

// CSVFormatter implements the delimiter-separated export, one row per
// departure scenario.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "Date", "Age",
		"LiquidableQuarters", "InsuredQuarters", "RequiredQuarters",
		"GrossRate", "NetRate",
		"ReductionQuarters", "IncreaseQuarters",
		"PensionMonthly", "NetEstimateMonthly",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range result.Scenarios {
		row := []string{
			scenarioLabel(sc),
			sc.Date.Format("2006-01-02"),
			strconv.Itoa(sc.AgeAtDeparture),
			strconv.Itoa(sc.Duration.LiquidableQuarters),
			strconv.Itoa(sc.Duration.InsuredQuarters),
			strconv.Itoa(sc.Duration.RequiredQuarters),
			sc.Pension.GrossRate.StringFixed(3),
			sc.Pension.NetRate.StringFixed(3),
			strconv.Itoa(sc.ReductionQuarters),
			strconv.Itoa(sc.Increase.Quarters),
			sc.Pension.FinalPensionMonthly.StringFixed(2),
			sc.Pension.NetEstimateMonthly.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scenarioLabel(sc domain.DepartureScenario) string {
	if sc.Kind == domain.ScenarioDeferred {
		return string(sc.Kind) + "-" + strconv.Itoa(sc.DeferredQuarters) + "q"
	}
	return string(sc.Kind)
}
