package models

// Personality holds one enumerated option id per trait, recorded once the
// assessment is complete. A nil or partially filled profile means the user
// skipped assessment and every adaptation falls back to neutral defaults.
type Personality struct {
	WorkStyle  string `json:"workStyle,omitempty"`
	Experience string `json:"experience,omitempty"`
	Motivation string `json:"motivation,omitempty"`
	Learning   string `json:"learning,omitempty"`
	Pace       string `json:"pace,omitempty"`
}
