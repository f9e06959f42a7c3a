package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestRenderGrowthOmitsUnsetFields(t *testing.T) {
	e := Entry{Category: CategoryGrowth, Details: GrowthDetails{Height: f64(72.5)}}
	fields := Render(e)

	require.Len(t, fields, 1)
	assert.Equal(t, Field{"growth.heightLabel", "72.5 cm"}, fields[0])
}

func TestRenderGrowthAllFieldsOrdered(t *testing.T) {
	e := Entry{Category: CategoryGrowth, Details: GrowthDetails{
		Height:            f64(72.5),
		Weight:            f64(8.9),
		HeadCircumference: f64(44),
	}}
	assert.Equal(t, []Field{
		{"growth.heightLabel", "72.5 cm"},
		{"growth.weightLabel", "8.9 kg"},
		{"growth.headLabel", "44 cm"},
	}, Render(e))
}

func TestRenderSleep(t *testing.T) {
	start := time.Date(2025, 11, 7, 22, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 8, 3, 0, 0, 0, time.UTC)
	e := Entry{Category: CategorySleep, Details: SleepDetails{
		StartTime: start,
		EndTime:   &end,
		Quality:   SleepGood,
	}}
	assert.Equal(t, []Field{
		{"sleep.startLabel", "2025-11-07 22:00"},
		{"sleep.endLabel", "2025-11-08 03:00"},
		{"sleep.qualityLabel", "Good"},
	}, Render(e))
}

func TestRenderMeal(t *testing.T) {
	e := Entry{Category: CategoryMeal, Details: MealDetails{
		FoodType: "Rice Cereal",
		Amount:   "30ml",
		DidBurp:  true,
	}}
	fields := Render(e)
	assert.Equal(t, []Field{
		{"meal.foodLabel", "Rice Cereal"},
		{"meal.amountLabel", "30ml"},
		{"meal.burpComplete", "✓"},
	}, fields)

	// didBurp false is absent, not rendered blank
	e.Details = MealDetails{FoodType: "Formula"}
	assert.Equal(t, []Field{{"meal.foodLabel", "Formula"}}, Render(e))
}

func TestRenderHealthReplacesOtherMarkerWithText(t *testing.T) {
	e := Entry{Category: CategoryHealth, Details: HealthDetails{
		Temperature:  f64(37.5),
		Symptoms:     []Symptom{SymptomFever, SymptomRunnyNose, SymptomOtherMarker},
		SymptomOther: "teething",
	}}
	assert.Equal(t, []Field{
		{"health.tempLabel", "37.5°C"},
		{"health.symptomsLabel", "Fever, Runny Nose, teething"},
	}, Render(e))
}

func TestRenderHealthNoSymptomsNoField(t *testing.T) {
	e := Entry{Category: CategoryHealth, Details: HealthDetails{}}
	assert.Empty(t, Render(e))
}

func TestRenderDiaper(t *testing.T) {
	e := Entry{Category: CategoryDiaper, Details: DiaperDetails{
		Amount:    DiaperMedium,
		Condition: DiaperNormal,
		Color:     DiaperYellow,
	}}
	assert.Equal(t, []Field{
		{"diaper.amountLabel", "medium"},
		{"diaper.conditionLabel", "normal"},
		{"diaper.colorLabel", "yellow"},
	}, Render(e))
}

func TestRenderOtherHasNoFields(t *testing.T) {
	e := Entry{Category: CategoryOther, Details: OtherDetails{}}
	assert.Empty(t, Render(e))
}

func TestRenderNeverIncludesUnsetLabels(t *testing.T) {
	// Round-trip through validation: only fields that were set come back out.
	e, err := Validate(Input{
		Category: CategoryDiaper,
		Title:    "change",
		Date:     time.Now(),
		Diaper:   &DiaperDetails{Amount: DiaperHigh},
	})
	require.NoError(t, err)

	fields := Render(e)
	require.Len(t, fields, 1)
	assert.Equal(t, "diaper.amountLabel", fields[0].LabelKey)
}
