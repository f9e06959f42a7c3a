package journal

import (
	"encoding/json"
	"fmt"
	"time"
)

// Details is the category-specific payload of an entry. Exactly one variant
// exists per category, so a type switch over Details is exhaustive.
type Details interface {
	Category() Category
}

// GrowthDetails holds body measurements. All fields are optional; values are
// stored as entered without range checks.
type GrowthDetails struct {
	Height            *float64 `json:"height,omitempty"`             // cm
	Weight            *float64 `json:"weight,omitempty"`             // kg
	HeadCircumference *float64 `json:"head_circumference,omitempty"` // cm
}

func (GrowthDetails) Category() Category { return CategoryGrowth }

// SleepQuality rates a sleep session.
type SleepQuality string

const (
	SleepGood SleepQuality = "Good"
	SleepFair SleepQuality = "Fair"
	SleepPoor SleepQuality = "Poor"
)

// SleepDetails holds a sleep session. StartTime is required; the entry date is
// derived from it.
type SleepDetails struct {
	StartTime time.Time    `json:"start_time"`
	EndTime   *time.Time   `json:"end_time,omitempty"`
	Quality   SleepQuality `json:"quality,omitempty"`
}

func (SleepDetails) Category() Category { return CategorySleep }

// MealDetails holds a feeding record.
type MealDetails struct {
	FoodType string `json:"food_type,omitempty"`
	Amount   string `json:"amount,omitempty"`
	DidBurp  bool   `json:"did_burp,omitempty"`
}

func (MealDetails) Category() Category { return CategoryMeal }

// Symptom is one observed health symptom. SymptomOtherMarker is the synthetic
// tag appended when a free-text symptom was entered; its text lives in
// HealthDetails.SymptomOther.
type Symptom string

const (
	SymptomCough       Symptom = "Cough"
	SymptomFever       Symptom = "Fever"
	SymptomRunnyNose   Symptom = "Runny Nose"
	SymptomRash        Symptom = "Rash"
	SymptomVomiting    Symptom = "Vomiting"
	SymptomDiarrhea    Symptom = "Diarrhea"
	SymptomOtherMarker Symptom = "other"
)

// KnownSymptoms lists the selectable symptoms, excluding the synthetic marker.
func KnownSymptoms() []Symptom {
	return []Symptom{
		SymptomCough, SymptomFever, SymptomRunnyNose,
		SymptomRash, SymptomVomiting, SymptomDiarrhea,
	}
}

// HealthDetails holds a health observation. SymptomOther is present only when
// Symptoms carries the SymptomOtherMarker and the free text was non-empty.
type HealthDetails struct {
	Temperature  *float64  `json:"temperature,omitempty"` // °C
	Symptoms     []Symptom `json:"symptoms,omitempty"`
	SymptomOther string    `json:"symptom_other,omitempty"`
}

func (HealthDetails) Category() Category { return CategoryHealth }

// DiaperAmount grades how full the diaper was.
type DiaperAmount string

const (
	DiaperLow    DiaperAmount = "low"
	DiaperMedium DiaperAmount = "medium"
	DiaperHigh   DiaperAmount = "high"
)

// DiaperCondition describes the stool condition.
type DiaperCondition string

const (
	DiaperNormal       DiaperCondition = "normal"
	DiaperDiarrhea     DiaperCondition = "diarrhea"
	DiaperConstipation DiaperCondition = "constipation"
)

// DiaperColor describes the stool color.
type DiaperColor string

const (
	DiaperYellow     DiaperColor = "yellow"
	DiaperBrown      DiaperColor = "brown"
	DiaperGreen      DiaperColor = "green"
	DiaperOtherColor DiaperColor = "other"
)

// DiaperDetails holds a diaper change record.
type DiaperDetails struct {
	Amount    DiaperAmount    `json:"amount,omitempty"`
	Condition DiaperCondition `json:"condition,omitempty"`
	Color     DiaperColor     `json:"color,omitempty"`
}

func (DiaperDetails) Category() Category { return CategoryDiaper }

// OtherDetails is the empty payload of free-form entries.
type OtherDetails struct{}

func (OtherDetails) Category() Category { return CategoryOther }

// Entry is one immutable journal record. ID and CreatedAt are assigned by the
// store at append time; everything else comes out of Validate.
type Entry struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	Details   Details   `json:"details"`
}

// DecodeDetails unmarshals a stored details payload into the variant matching
// the category tag.
func DecodeDetails(cat Category, data []byte) (Details, error) {
	unmarshal := func(v Details) (Details, error) {
		if len(data) == 0 {
			return v, nil
		}
		if err := json.Unmarshal(data, v); err != nil {
			return nil, fmt.Errorf("decode %s details: %w", cat, err)
		}
		return v, nil
	}

	switch cat {
	case CategoryGrowth:
		d, err := unmarshal(&GrowthDetails{})
		if err != nil {
			return nil, err
		}
		return *d.(*GrowthDetails), nil
	case CategorySleep:
		d, err := unmarshal(&SleepDetails{})
		if err != nil {
			return nil, err
		}
		return *d.(*SleepDetails), nil
	case CategoryMeal:
		d, err := unmarshal(&MealDetails{})
		if err != nil {
			return nil, err
		}
		return *d.(*MealDetails), nil
	case CategoryHealth:
		d, err := unmarshal(&HealthDetails{})
		if err != nil {
			return nil, err
		}
		return *d.(*HealthDetails), nil
	case CategoryDiaper:
		d, err := unmarshal(&DiaperDetails{})
		if err != nil {
			return nil, err
		}
		return *d.(*DiaperDetails), nil
	case CategoryOther:
		return OtherDetails{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
}
