package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emifrog/horizon/internal/domain"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
birth_date: 1975-06-15T00:00:00Z
hire_date: 2000-09-01T00:00:00Z
work_fraction: 0.8
volunteer_years: 12
children_before_2004: 2
military_kind: national_service
military_quarters: 4
indexed_grade: 520
bonus_points: 25
bonus_points_months_held: 96
annuity_years: 15
as_of: 2025-01-01T00:00:00Z
`)

	parser := NewInputParser()
	profile, asOf, err := parser.LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, time.Date(1975, 6, 15, 0, 0, 0, 0, time.UTC), profile.BirthDate)
	assert.Equal(t, time.Date(2000, 9, 1, 0, 0, 0, 0, time.UTC), profile.HireDate)
	assert.True(t, profile.WorkFraction.Equal(decimal.NewFromFloat(0.8)))
	assert.Equal(t, 12, profile.VolunteerYears)
	assert.Equal(t, 2, profile.ChildrenBefore2004)
	assert.Equal(t, domain.MilitaryNationalService, profile.Military.Kind)
	assert.Equal(t, 4, profile.Military.Quarters)
	assert.Equal(t, 520, profile.IndexedGrade)
	assert.Equal(t, 25, profile.BonusPoints)
	assert.Equal(t, 96, profile.BonusPointsMonthsHeld)
	assert.Equal(t, 15, profile.AnnuityYears)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), asOf)
}

func TestLoadProfileMinimal(t *testing.T) {
	path := writeProfile(t, `
birth_date: 1980-01-01T00:00:00Z
hire_date: 2005-01-01T00:00:00Z
indexed_grade: 450
`)

	parser := NewInputParser()
	profile, asOf, err := parser.LoadProfile(path)
	require.NoError(t, err)

	assert.True(t, asOf.IsZero())
	assert.Equal(t, domain.MilitaryNone, profile.Military.Kind)
	// Unset work fraction is resolved to full time by the profile accessor.
	assert.True(t, profile.EffectiveWorkFraction().Equal(decimal.NewFromInt(1)))
}

func TestLoadProfileMissingFile(t *testing.T) {
	parser := NewInputParser()
	_, _, err := parser.LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadProfileMalformedYAML(t *testing.T) {
	path := writeProfile(t, "birth_date: [not a date\n")
	parser := NewInputParser()
	_, _, err := parser.LoadProfile(path)
	assert.Error(t, err)
}

func TestConvertValidation(t *testing.T) {
	valid := func() *Input {
		return &Input{
			BirthDate:    time.Date(1975, 1, 1, 0, 0, 0, 0, time.UTC),
			HireDate:     time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			IndexedGrade: 500,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"missing indexed grade", func(in *Input) { in.IndexedGrade = 0 }},
		{"work fraction below half time", func(in *Input) { in.WorkFraction = 0.3 }},
		{"work fraction above full time", func(in *Input) { in.WorkFraction = 1.2 }},
		{"unknown military kind", func(in *Input) { in.MilitaryKind = "reserve" }},
		{"negative volunteer years", func(in *Input) { in.VolunteerYears = -1 }},
		{"missing birth date", func(in *Input) { in.BirthDate = time.Time{} }},
		{"hire before birth", func(in *Input) {
			in.HireDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
		}},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(in)
			_, err := parser.Convert(in)
			assert.Error(t, err)
		})
	}

	profile, err := parser.Convert(valid())
	require.NoError(t, err)
	assert.Equal(t, 500, profile.IndexedGrade)
}
