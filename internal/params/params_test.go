package params

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredQuarters(t *testing.T) {
	p := Default()

	tests := []struct {
		name      string
		birthYear int
		expected  int
	}{
		{"pre-reform cohort", 1958, 167},
		{"1961 cohort", 1961, 169},
		{"1963 cohort", 1963, 170},
		{"1964 cohort", 1964, 171},
		{"1965 cohort", 1965, 172},
		{"above tabulated range uses last entry", 1995, 172},
		{"below tabulated range uses first entry", 1880, 167},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.RequiredQuarters(tt.birthYear))
		})
	}
}

func TestLegalAge(t *testing.T) {
	p := Default()

	tests := []struct {
		name     string
		cat      Category
		birth    time.Time
		expected AgeYM
	}{
		{"active pre-reform", CategoryActive, date(1965, 1, 1), AgeYM{57, 0}},
		{"active first step", CategoryActive, date(1966, 10, 15), AgeYM{57, 3}},
		{"active mid schedule", CategoryActive, date(1970, 6, 15), AgeYM{58, 3}},
		{"active beyond schedule uses default", CategoryActive, date(1980, 1, 1), AgeYM{59, 0}},
		{"active before all brackets clamps to first", CategoryActive, date(1890, 1, 1), AgeYM{57, 0}},
		{"sedentary pre-reform", CategorySedentary, date(1959, 3, 1), AgeYM{62, 0}},
		{"sedentary 1962 cohort", CategorySedentary, date(1962, 5, 5), AgeYM{62, 6}},
		{"sedentary 1965 cohort", CategorySedentary, date(1965, 1, 1), AgeYM{63, 3}},
		{"sedentary beyond schedule uses default", CategorySedentary, date(1975, 1, 1), AgeYM{64, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.LegalAge(tt.cat, tt.birth))
		})
	}
}

func TestAgeYMDateFor(t *testing.T) {
	assert.Equal(t, date(2022, 1, 1), AgeYM{57, 0}.DateFor(date(1965, 1, 1)))
	assert.Equal(t, date(2028, 4, 1), AgeYM{63, 3}.DateFor(date(1965, 1, 1)))
}

func TestAgeCoefficient(t *testing.T) {
	p := Default()

	tests := []struct {
		name     string
		age      int
		expected decimal.Decimal
	}{
		{"below table clamps to first", 50, decimal.NewFromFloat(0.81)},
		{"reference age", 62, decimal.NewFromFloat(1.00)},
		{"mid table", 66, decimal.NewFromFloat(1.17)},
		{"above table clamps to last", 80, decimal.NewFromFloat(1.78)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, p.AgeCoefficient(tt.age).Equal(tt.expected),
				"expected %s, got %s", tt.expected, p.AgeCoefficient(tt.age))
		})
	}
}

func TestVolunteerMajoration(t *testing.T) {
	p := Default()

	tests := []struct {
		years    int
		expected int
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{14, 1},
		{15, 2},
		{22, 3}, // highest threshold met wins, not the next one up
		{25, 4},
		{40, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, p.VolunteerMajoration(tt.years), "years=%d", tt.years)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	override := []byte("version: \"test\"\nreduction_max_quarters: 16\n")
	require.NoError(t, os.WriteFile(path, override, 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test", p.Version)
	assert.Equal(t, 16, p.ReductionMaxQuarters)
	// Untouched fields keep their defaults.
	assert.Equal(t, 172, p.RequiredQuarters(1965))
	assert.Equal(t, 20, p.FifthBonusCapQuarters)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
