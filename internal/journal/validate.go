package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors. All are recoverable and surfaced to the user; a rejected
// save never touches the store.
var (
	ErrMissingTitle     = errors.New("title is required")
	ErrMissingDate      = errors.New("date is required")
	ErrMissingStartTime = errors.New("sleep start time is required")
	ErrUnknownCategory  = errors.New("unknown category")
)

// SleepInput is the raw sleep payload before validation.
type SleepInput struct {
	StartTime time.Time
	EndTime   *time.Time
	Quality   SleepQuality
}

// HealthInput is the raw health payload. The other-symptom checkbox and its
// free text arrive as two pieces of state; Validate folds them into the
// symptom set.
type HealthInput struct {
	Temperature  *float64
	Symptoms     []Symptom
	OtherChecked bool
	OtherText    string
}

// Input is a candidate entry as collected by the form. At most one detail
// payload should be set; Validate only reads the one matching Category.
type Input struct {
	Category Category
	Title    string
	Content  string
	Date     time.Time
	Growth   *GrowthDetails
	Sleep    *SleepInput
	Meal     *MealDetails
	Health   *HealthInput
	Diaper   *DiaperDetails
}

// Validate decides save-eligibility and normalizes the input into its final
// stored shape. It is pure: no I/O, no mutation of the input. The returned
// entry carries no ID or creation time; the store assigns those on append.
func Validate(in Input) (Entry, error) {
	if _, ok := Lookup(in.Category); !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownCategory, in.Category)
	}
	if strings.TrimSpace(in.Title) == "" {
		return Entry{}, ErrMissingTitle
	}

	entry := Entry{
		Category: in.Category,
		Title:    in.Title,
		Content:  in.Content,
	}

	switch in.Category {
	case CategorySleep:
		if in.Sleep == nil || in.Sleep.StartTime.IsZero() {
			return Entry{}, ErrMissingStartTime
		}
		// The entry date is the calendar day of the start time; any
		// separately supplied date is overridden.
		entry.Date = calendarDay(in.Sleep.StartTime)
		entry.Details = SleepDetails{
			StartTime: in.Sleep.StartTime,
			EndTime:   in.Sleep.EndTime,
			Quality:   in.Sleep.Quality,
		}
		return entry, nil
	case CategoryHealth:
		if in.Date.IsZero() {
			return Entry{}, ErrMissingDate
		}
		entry.Date = calendarDay(in.Date)
		entry.Details = normalizeHealth(in.Health)
		return entry, nil
	default:
		if in.Date.IsZero() {
			return Entry{}, ErrMissingDate
		}
		entry.Date = calendarDay(in.Date)
		entry.Details = pickDetails(in)
		return entry, nil
	}
}

// normalizeHealth folds the other-symptom flag and text into the symptom set.
// When the flag is unset, neither the marker nor the text survives.
func normalizeHealth(in *HealthInput) HealthDetails {
	if in == nil {
		return HealthDetails{}
	}
	d := HealthDetails{Temperature: in.Temperature}
	for _, s := range in.Symptoms {
		if s == SymptomOtherMarker {
			continue // the marker is synthetic, never taken from input
		}
		d.Symptoms = append(d.Symptoms, s)
	}
	if in.OtherChecked {
		d.Symptoms = append(d.Symptoms, SymptomOtherMarker)
		if text := strings.TrimSpace(in.OtherText); text != "" {
			d.SymptomOther = text
		}
	}
	return d
}

func pickDetails(in Input) Details {
	switch in.Category {
	case CategoryGrowth:
		if in.Growth != nil {
			return *in.Growth
		}
		return GrowthDetails{}
	case CategoryMeal:
		if in.Meal != nil {
			return *in.Meal
		}
		return MealDetails{}
	case CategoryDiaper:
		if in.Diaper != nil {
			return *in.Diaper
		}
		return DiaperDetails{}
	default:
		return OtherDetails{}
	}
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
