package model

type RegisterChildRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Gender    string `json:"gender"`
}

type OnboardingResponse struct {
	HasChild bool `json:"has_child"`
}
