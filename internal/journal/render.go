package journal

import (
	"strconv"
	"strings"
	"time"
)

// Field is one rendered detail line: a stable label key for downstream
// localization and an already-formatted value.
type Field struct {
	LabelKey string `json:"label_key"`
	Value    string `json:"value"`
}

const datetimeLayout = "2006-01-02 15:04"

// Render projects an entry's details into an ordered display summary. Fields
// whose value was never set are omitted entirely, never rendered blank.
// Render does not mutate the entry.
func Render(e Entry) []Field {
	switch d := e.Details.(type) {
	case GrowthDetails:
		return renderGrowth(d)
	case SleepDetails:
		return renderSleep(d)
	case MealDetails:
		return renderMeal(d)
	case HealthDetails:
		return renderHealth(d)
	case DiaperDetails:
		return renderDiaper(d)
	default:
		return nil
	}
}

func renderGrowth(d GrowthDetails) []Field {
	var out []Field
	if d.Height != nil {
		out = append(out, Field{"growth.heightLabel", formatNumber(*d.Height) + " cm"})
	}
	if d.Weight != nil {
		out = append(out, Field{"growth.weightLabel", formatNumber(*d.Weight) + " kg"})
	}
	if d.HeadCircumference != nil {
		out = append(out, Field{"growth.headLabel", formatNumber(*d.HeadCircumference) + " cm"})
	}
	return out
}

func renderSleep(d SleepDetails) []Field {
	var out []Field
	if !d.StartTime.IsZero() {
		out = append(out, Field{"sleep.startLabel", d.StartTime.Format(datetimeLayout)})
	}
	if d.EndTime != nil && !d.EndTime.IsZero() {
		out = append(out, Field{"sleep.endLabel", d.EndTime.Format(datetimeLayout)})
	}
	if d.Quality != "" {
		out = append(out, Field{"sleep.qualityLabel", string(d.Quality)})
	}
	return out
}

func renderMeal(d MealDetails) []Field {
	var out []Field
	if d.FoodType != "" {
		out = append(out, Field{"meal.foodLabel", d.FoodType})
	}
	if d.Amount != "" {
		out = append(out, Field{"meal.amountLabel", d.Amount})
	}
	if d.DidBurp {
		out = append(out, Field{"meal.burpComplete", "✓"})
	}
	return out
}

func renderHealth(d HealthDetails) []Field {
	var out []Field
	if d.Temperature != nil {
		out = append(out, Field{"health.tempLabel", formatNumber(*d.Temperature) + "°C"})
	}
	// The synthetic marker is replaced by its free-text companion when present.
	var names []string
	for _, s := range d.Symptoms {
		if s == SymptomOtherMarker {
			continue
		}
		names = append(names, string(s))
	}
	if d.SymptomOther != "" {
		names = append(names, d.SymptomOther)
	}
	if len(names) > 0 {
		out = append(out, Field{"health.symptomsLabel", strings.Join(names, ", ")})
	}
	return out
}

func renderDiaper(d DiaperDetails) []Field {
	var out []Field
	if d.Amount != "" {
		out = append(out, Field{"diaper.amountLabel", string(d.Amount)})
	}
	if d.Condition != "" {
		out = append(out, Field{"diaper.conditionLabel", string(d.Condition)})
	}
	if d.Color != "" {
		out = append(out, Field{"diaper.colorLabel", string(d.Color)})
	}
	return out
}

// FormatDate renders the entry's calendar date for display headers.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
