package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emifrog/horizon/internal/domain"
)

// ConsoleFormatter renders a human-readable summary.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, strings.Repeat("=", 72))
	fmt.Fprintln(buf, "FIREFIGHTER PENSION ESTIMATE")
	fmt.Fprintln(buf, strings.Repeat("=", 72))
	fmt.Fprintf(buf, "Simulation date:      %s (parameters %s)\n",
		result.AsOf.Format("2006-01-02"), result.ParametersVersion)
	fmt.Fprintln(buf)

	kd := result.KeyDates
	fmt.Fprintln(buf, "KEY DATES")
	fmt.Fprintf(buf, "  Opening of rights:  %s\n", kd.OpeningDate.Format("2006-01-02"))
	if !kd.EarlyEligible {
		fmt.Fprintf(buf, "  Early eligibility:  not met at opening; projected %s\n",
			kd.EarliestDate.Format("2006-01-02"))
	}
	fullRateBasis := "by duration"
	if kd.FullRateByAge {
		fullRateBasis = "by age cancellation"
		if kd.ResidualShortfall > 0 {
			fullRateBasis = fmt.Sprintf("by age cancellation, %d quarters short", kd.ResidualShortfall)
		}
	}
	fmt.Fprintf(buf, "  Full rate:          %s (%s)\n", kd.FullRateDate.Format("2006-01-02"), fullRateBasis)
	fmt.Fprintf(buf, "  Age limit:          %s\n", kd.AgeLimitDate.Format("2006-01-02"))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "DEPARTURE SCENARIOS")
	for _, sc := range result.Scenarios {
		fmt.Fprintf(buf, "  %-12s %s  age %d  rate %s%%  pension %s/month",
			scenarioLabel(sc), sc.Date.Format("2006-01-02"), sc.AgeAtDeparture,
			sc.Pension.NetRate.StringFixed(3), FormatEuro(sc.Pension.FinalPensionMonthly))
		if sc.ReductionQuarters > 0 {
			fmt.Fprintf(buf, "  (reduction: %d quarters)", sc.ReductionQuarters)
		}
		if sc.Increase.Eligible {
			fmt.Fprintf(buf, "  (increase: %d quarters, +%s%%)",
				sc.Increase.Quarters, sc.Increase.Rate.StringFixed(2))
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf)

	full := result.FullRate
	fmt.Fprintln(buf, "FULL-RATE BREAKDOWN")
	fmt.Fprintf(buf, "  Indexed gross salary:   %s/month\n", FormatEuro(full.Pension.GrossSalaryMonthly))
	fmt.Fprintf(buf, "  Liquidation rate:       %s%% gross, %s%% net\n",
		full.Pension.GrossRate.StringFixed(3), full.Pension.NetRate.StringFixed(3))
	fmt.Fprintf(buf, "  Hazard majoration:      %s/year", FormatEuro(full.Pension.HazardMajorationAnnual))
	if full.Pension.HazardProrated {
		fmt.Fprintf(buf, " (prorated at %s)", full.Pension.HazardProrationRate.StringFixed(4))
	}
	fmt.Fprintln(buf)
	if full.Pension.GuaranteedMinimumApplied {
		fmt.Fprintf(buf, "  Guaranteed minimum:     applied, %s/month\n",
			FormatEuro(full.Pension.GuaranteedMinimumMonthly))
	}
	fmt.Fprintf(buf, "  Base pension:           %s/month\n", FormatEuro(full.Pension.FinalPensionMonthly))
	fmt.Fprintf(buf, "  Net estimate:           %s/month\n", FormatEuro(full.Pension.NetEstimateMonthly))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "SUPPLEMENTS")
	nbi := result.BonusPoints
	switch {
	case nbi.Integrated:
		fmt.Fprintln(buf, "  Bonus points:           integrated into base salary")
	case nbi.Eligible:
		fmt.Fprintf(buf, "  Bonus points:           %s/month (prorated at %s)\n",
			FormatEuro(nbi.MonthlyAmount), nbi.ProrationRate.StringFixed(4))
	default:
		fmt.Fprintln(buf, "  Bonus points:           none")
	}
	if result.Annuity.Points > 0 {
		fmt.Fprintf(buf, "  Point annuity:          %s/month (%d points, coefficient %s)\n",
			FormatEuro(result.Annuity.MonthlyAmount), result.Annuity.Points,
			result.Annuity.Coefficient.StringFixed(2))
	} else {
		fmt.Fprintln(buf, "  Point annuity:          none")
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "COMBINED MONTHLY TOTAL:   %s\n", FormatEuro(result.TotalMonthly))

	return buf.Bytes(), nil
}
