package model

// Character is a generated Regency-era character. Name is the only field
// the timeline heuristics consult; the rest feed the story templates.
type Character struct {
	Name        string `json:"name"`
	Gender      string `json:"gender,omitempty"`
	SocialClass string `json:"social_class,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
	Personality string `json:"personality,omitempty"`
	Backstory   string `json:"backstory,omitempty"`
	Role        string `json:"role,omitempty"`
}

// Character roles. The first character of a cast is the protagonist.
const (
	RoleProtagonist = "protagonist"
	RoleSupporting  = "supporting"
)
