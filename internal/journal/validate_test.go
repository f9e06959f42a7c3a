package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiresTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := Validate(Input{
			Category: CategoryMeal,
			Title:    title,
			Date:     time.Now(),
		})
		assert.ErrorIs(t, err, ErrMissingTitle, "title %q", title)
	}
}

func TestValidateRequiresDateForNonSleep(t *testing.T) {
	for _, cat := range []Category{CategoryGrowth, CategoryMeal, CategoryHealth, CategoryDiaper, CategoryOther} {
		_, err := Validate(Input{Category: cat, Title: "entry"})
		assert.ErrorIs(t, err, ErrMissingDate, "category %s", cat)
	}
}

func TestValidateAcceptsPlainCategories(t *testing.T) {
	date := time.Date(2025, 11, 8, 14, 30, 0, 0, time.UTC)
	for _, cat := range []Category{CategoryGrowth, CategoryMeal, CategoryDiaper, CategoryOther} {
		e, err := Validate(Input{Category: cat, Title: "entry", Date: date})
		require.NoError(t, err, "category %s", cat)
		assert.Equal(t, cat, e.Category)
		assert.Equal(t, cat, e.Details.Category())
		assert.Equal(t, time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC), e.Date,
			"date truncated to calendar day")
	}
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	_, err := Validate(Input{Category: "emotion", Title: "x", Date: time.Now()})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestValidateSleepRequiresStartTime(t *testing.T) {
	_, err := Validate(Input{Category: CategorySleep, Title: "nap", Date: time.Now()})
	assert.ErrorIs(t, err, ErrMissingStartTime, "nil sleep payload")

	_, err = Validate(Input{
		Category: CategorySleep,
		Title:    "nap",
		Date:     time.Now(),
		Sleep:    &SleepInput{},
	})
	assert.ErrorIs(t, err, ErrMissingStartTime, "zero start time")
}

func TestValidateSleepDateDerivedFromStartTime(t *testing.T) {
	start := time.Date(2025, 11, 7, 22, 0, 0, 0, time.UTC)
	end := start.Add(5 * time.Hour)
	e, err := Validate(Input{
		Category: CategorySleep,
		Title:    "Slept 5 hours straight!",
		Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), // must be overridden
		Sleep:    &SleepInput{StartTime: start, EndTime: &end, Quality: SleepGood},
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC), e.Date)

	d, ok := e.Details.(SleepDetails)
	require.True(t, ok)
	assert.Equal(t, start, d.StartTime)
	require.NotNil(t, d.EndTime)
	assert.Equal(t, end, *d.EndTime)
	assert.Equal(t, SleepGood, d.Quality)
}

func TestValidateHealthOtherSymptomChecked(t *testing.T) {
	temp := 37.5
	e, err := Validate(Input{
		Category: CategoryHealth,
		Title:    "Fussy evening",
		Date:     time.Now(),
		Health: &HealthInput{
			Temperature:  &temp,
			Symptoms:     []Symptom{SymptomFever, SymptomCough},
			OtherChecked: true,
			OtherText:    "  teething  ",
		},
	})
	require.NoError(t, err)

	d, ok := e.Details.(HealthDetails)
	require.True(t, ok)
	assert.Equal(t, []Symptom{SymptomFever, SymptomCough, SymptomOtherMarker}, d.Symptoms)
	assert.Equal(t, "teething", d.SymptomOther, "free text trimmed")
}

func TestValidateHealthOtherCheckedWithoutText(t *testing.T) {
	e, err := Validate(Input{
		Category: CategoryHealth,
		Title:    "check",
		Date:     time.Now(),
		Health:   &HealthInput{OtherChecked: true, OtherText: "   "},
	})
	require.NoError(t, err)

	d := e.Details.(HealthDetails)
	assert.Equal(t, []Symptom{SymptomOtherMarker}, d.Symptoms)
	assert.Empty(t, d.SymptomOther, "whitespace-only text is omitted, not stored empty")
}

func TestValidateHealthOtherUnsetClearsTextAndMarker(t *testing.T) {
	// Checking "other" with text and unchecking it again must leave no trace,
	// even if the stale marker or text is still present in the raw input.
	e, err := Validate(Input{
		Category: CategoryHealth,
		Title:    "re-save",
		Date:     time.Now(),
		Health: &HealthInput{
			Symptoms:     []Symptom{SymptomRash, SymptomOtherMarker},
			OtherChecked: false,
			OtherText:    "teething",
		},
	})
	require.NoError(t, err)

	d := e.Details.(HealthDetails)
	assert.Equal(t, []Symptom{SymptomRash}, d.Symptoms)
	assert.Empty(t, d.SymptomOther)
}

func TestValidateIsPureAndAssignsNoID(t *testing.T) {
	in := Input{
		Category: CategoryGrowth,
		Title:    "measurement",
		Date:     time.Now(),
		Growth:   &GrowthDetails{},
	}
	e, err := Validate(in)
	require.NoError(t, err)
	assert.Empty(t, e.ID)
	assert.True(t, e.CreatedAt.IsZero())
	assert.Nil(t, in.Growth.Height, "input left untouched")
}
