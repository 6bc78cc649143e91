package output

import (
	json "github.com/goccy/go-json"

	"github.com/emifrog/horizon/internal/domain"
)

// JSONFormatter implements the structured-data dump: the full result graph
// as nested records, dates as ISO-8601 strings.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
