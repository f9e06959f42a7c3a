package model

import (
	"time"

	"github.com/twkim02/todoc-chat-ai/internal/journal"
)

// CreateEntryRequest is the journal save form. Exactly one detail payload is
// expected, matching Category; the rest stay nil.
type CreateEntryRequest struct {
	Category string         `json:"category" binding:"required"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Date     string         `json:"date"` // YYYY-MM-DD; ignored for sleep
	Growth   *GrowthPayload `json:"growth,omitempty"`
	Sleep    *SleepPayload  `json:"sleep,omitempty"`
	Meal     *MealPayload   `json:"meal,omitempty"`
	Health   *HealthPayload `json:"health,omitempty"`
	Diaper   *DiaperPayload `json:"diaper,omitempty"`
}

type GrowthPayload struct {
	Height            *float64 `json:"height,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	HeadCircumference *float64 `json:"head_circumference,omitempty"`
}

type SleepPayload struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Quality   string     `json:"quality,omitempty"`
}

type MealPayload struct {
	FoodType string `json:"food_type,omitempty"`
	Amount   string `json:"amount,omitempty"`
	DidBurp  bool   `json:"did_burp,omitempty"`
}

type HealthPayload struct {
	Temperature         *float64 `json:"temperature,omitempty"`
	Symptoms            []string `json:"symptoms,omitempty"`
	SymptomOtherChecked bool     `json:"symptom_other_checked,omitempty"`
	SymptomOtherText    string   `json:"symptom_other_text,omitempty"`
}

type DiaperPayload struct {
	Amount    string `json:"amount,omitempty"`
	Condition string `json:"condition,omitempty"`
	Color     string `json:"color,omitempty"`
}

type ListEntriesQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=20"`
}

// EntryResponse pairs a stored entry with its rendered display fields.
type EntryResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Title     string          `json:"title"`
	Content   string          `json:"content,omitempty"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	Details   journal.Details `json:"details"`
	Fields    []journal.Field `json:"fields"`
}

// NewEntryResponse renders an entry for the API.
func NewEntryResponse(e journal.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Category:  string(e.Category),
		Title:     e.Title,
		Content:   e.Content,
		Date:      journal.FormatDate(e.Date),
		CreatedAt: e.CreatedAt,
		Details:   e.Details,
		Fields:    journal.Render(e),
	}
}
