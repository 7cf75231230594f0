package plant

// Species identification returned by the model.
type Species struct {
	Name            string `json:"name"`
	Characteristics string `json:"characteristics"`
	Family          string `json:"family"`
	Origin          string `json:"origin"`
}

// Health holds the model's health assessment.
type Health struct {
	Status     string   `json:"status"`
	Issues     []string `json:"issues"`
	Assessment string   `json:"assessment"`
}

// Recommendations holds care and treatment advice.
type Recommendations struct {
	Care      []string `json:"care"`
	Treatment []string `json:"treatment"`
	Notes     string   `json:"notes"`
}

// Record is the normalized analysis of one plant image. It is assembled per
// request and never persisted; Image carries the uploaded picture back to the
// caller as a data URI.
type Record struct {
	Species          Species         `json:"species"`
	Health           Health          `json:"health"`
	Recommendations  Recommendations `json:"recommendations"`
	InterestingFacts string          `json:"interesting_facts"`
	Image            string          `json:"image,omitempty"`
}

// DefaultRecord returns a Record with every field set to its default, so a
// partially-malformed model reply never produces missing keys.
func DefaultRecord() Record {
	return Record{
		Species: Species{
			Name:   "Unknown",
			Family: "Unknown",
			Origin: "Unknown",
		},
		Health: Health{
			Status: "Unknown",
			Issues: []string{},
		},
		Recommendations: Recommendations{
			Care:      []string{},
			Treatment: []string{},
		},
	}
}
