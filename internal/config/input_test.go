package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coverwise/coverwise/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validInput = `
household:
  adults:
    - name: Alex
      age: 42
    - name: Sam
      age: 39.6
      chronic_conditions: [asthma]
  children:
    - name: Riley
      age: 7
  residences:
    - state: PA
      months_per_year: 12
  annual_income: 115000
  monthly_budget: 400
primary_plan:
  plan_name: Silver 3000
  monthly_premium: 850
  is_hdhp: true
preferences:
  exclude_categories: [life]
magi:
  magi: 115000
  benchmark_premium: 850
  age: 42
  has_employer_plan: true
  hdhp_enrolled: true
  hsa_coverage: family
hsa:
  coverage_type: family
  age: 42
  hdhp_enrolled: true
  annual_income: 115000
  expected_annual_expenses: 3000
  federal_rate: 0.22
  state_rate: 0.0307
  expected_return: 0.05
  healthcare_inflation: 0.05
`

func parseDocument(t *testing.T, text string) *Document {
	t.Helper()
	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(text), &doc))
	return &doc
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validInput), 0o644))

	parser := NewInputParser()
	input, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, input.Household.Adults, 2)
	require.Len(t, input.Household.Children, 1)
	assert.Equal(t, 3, input.Household.Size())

	// Fractional age 39.6 rounds to 40.
	assert.Equal(t, 40, input.Household.Adults[1].Age)
	assert.True(t, input.Household.Adults[1].HasChronicConditions())

	assert.Equal(t, []domain.Category{domain.CategoryLife}, input.Preferences.ExcludeCategories)
	assert.True(t, input.PrimaryPlan.MonthlyPremium.Equal(decimal.NewFromInt(850)))

	require.NotNil(t, input.MAGI)
	// Household size and state default from the household record.
	assert.Equal(t, 3, input.MAGI.HouseholdSize)
	assert.Equal(t, "PA", input.MAGI.State)

	require.NotNil(t, input.HSA)
	assert.Equal(t, domain.HSACoverageFamily, input.HSA.CoverageType)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestValidationRejections(t *testing.T) {
	parser := NewInputParser()

	mutate := func(fn func(*Document)) *Document {
		doc := parseDocument(t, validInput)
		fn(doc)
		return doc
	}

	tests := []struct {
		name    string
		doc     *Document
		wantErr string
	}{
		{
			name:    "no adults",
			doc:     mutate(func(d *Document) { d.Household.Adults = nil }),
			wantErr: "at least one adult",
		},
		{
			name: "too many adults",
			doc: mutate(func(d *Document) {
				for i := 0; i < 11; i++ {
					d.Household.Adults = append(d.Household.Adults, personInput{Name: "A", Age: decimal.NewFromInt(30)})
				}
			}),
			wantErr: "at most 10 adults",
		},
		{
			name: "adult under 18",
			doc: mutate(func(d *Document) {
				d.Household.Adults[0].Age = decimal.NewFromInt(16)
			}),
			wantErr: "outside [18,120]",
		},
		{
			name: "child over 17",
			doc: mutate(func(d *Document) {
				d.Household.Children[0].Age = decimal.NewFromInt(19)
			}),
			wantErr: "outside [0,17]",
		},
		{
			name: "too many residences",
			doc: mutate(func(d *Document) {
				for i := 0; i < 6; i++ {
					d.Household.Residences = append(d.Household.Residences,
						domain.Residence{State: "OH", MonthsPerYear: decimal.NewFromInt(1)})
				}
			}),
			wantErr: "at most 5 residences",
		},
		{
			name: "unknown residence state",
			doc: mutate(func(d *Document) {
				d.Household.Residences[0].State = "QQ"
			}),
			wantErr: "unknown state code",
		},
		{
			name: "residence months exceed twelve",
			doc: mutate(func(d *Document) {
				d.Household.Residences = []domain.Residence{
					{State: "PA", MonthsPerYear: decimal.NewFromInt(8)},
					{State: "FL", MonthsPerYear: decimal.NewFromInt(6)},
				}
			}),
			wantErr: "must not exceed 12",
		},
		{
			name: "unknown excluded category",
			doc: mutate(func(d *Document) {
				d.Preferences.ExcludeCategories = []string{"umbrella"}
			}),
			wantErr: "unknown coverage category",
		},
		{
			name: "negative MAGI",
			doc: mutate(func(d *Document) {
				d.MAGI.MAGI = decimal.NewFromInt(-1)
			}),
			wantErr: "cannot be negative",
		},
		{
			name: "missing benchmark premium",
			doc: mutate(func(d *Document) {
				d.MAGI.BenchmarkPremium = decimal.Zero
			}),
			wantErr: "benchmark premium must be positive",
		},
		{
			name: "hsa federal rate above one",
			doc: mutate(func(d *Document) {
				d.HSA.FederalRate = decimal.NewFromFloat(1.5)
			}),
			wantErr: "outside [0,1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Build(tt.doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFractionalAgeRoundsBeforeValidation(t *testing.T) {
	parser := NewInputParser()
	doc := parseDocument(t, validInput)
	// 17.6 rounds to 18, which is a valid adult age.
	doc.Household.Adults[0].Age = decimal.NewFromFloat(17.6)

	input, err := parser.Build(doc)
	require.NoError(t, err)
	assert.Equal(t, 18, input.Household.Adults[0].Age)
}
