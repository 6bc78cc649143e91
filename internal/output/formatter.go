// Package output renders simulation results for the export collaborators:
// a console summary, a structured JSON dump and a delimiter-separated table.
// Formatters hold no logic of their own beyond layout.
package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/emifrog/horizon/internal/domain"
)

// Formatter renders a simulation result for one export target.
type Formatter interface {
	Name() string
	Format(result *domain.SimulationResult) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under a name, nil when
// none matches. The empty name selects the console formatter.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "", "console":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	}
	return nil
}

// FormatEuro renders a decimal amount with two decimals and a euro sign.
func FormatEuro(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
