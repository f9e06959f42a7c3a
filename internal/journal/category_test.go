package journal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownCategories(t *testing.T) {
	for _, cat := range []Category{
		CategoryGrowth, CategorySleep, CategoryMeal,
		CategoryHealth, CategoryDiaper, CategoryOther,
	} {
		info, ok := Lookup(cat)
		require.True(t, ok, "category %s", cat)
		assert.Equal(t, cat, info.Key)
		assert.NotEmpty(t, info.LabelKey)
		assert.NotEmpty(t, info.Color)
	}
}

func TestLookupUnknownCategory(t *testing.T) {
	_, ok := Lookup("development")
	assert.False(t, ok)
}

func TestSleepStartTimeIsOnlyRequiredField(t *testing.T) {
	var required []string
	for _, info := range Categories() {
		for _, f := range info.Fields {
			if f.Required {
				required = append(required, string(info.Key)+"."+f.Name)
			}
		}
	}
	assert.Equal(t, []string{"sleep.start_time"}, required)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].LabelKey = "mutated"
	fresh, _ := Lookup(CategoryGrowth)
	assert.Equal(t, "category.growth", fresh.LabelKey)
}

func TestDecodeDetailsRoundTrip(t *testing.T) {
	temp := 37.5
	original := HealthDetails{
		Temperature:  &temp,
		Symptoms:     []Symptom{SymptomFever, SymptomOtherMarker},
		SymptomOther: "teething",
	}
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := DecodeDetails(CategoryHealth, raw)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeDetailsUnknownCategory(t *testing.T) {
	_, err := DecodeDetails("emotion", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestDecodeDetailsEmptyPayload(t *testing.T) {
	d, err := DecodeDetails(CategoryGrowth, nil)
	require.NoError(t, err)
	assert.Equal(t, GrowthDetails{}, d)
}
