// Package request defines the structured creation request that drives a
// pipeline run. A CreationRequest is built once per run and never mutated.
package request

// CreationRequest describes the item set the caller wants.
type CreationRequest struct {
	// People describes the intended participants ("middle school class of
	// 30", "new hires").
	People string `json:"people" yaml:"people"`

	// Situation is free text describing where and why the item set will
	// be used.
	Situation string `json:"situation" yaml:"situation"`

	// Formats lists the requested item formats. Non-empty.
	Formats []string `json:"formats" yaml:"formats"`

	// Platform is where the items will be delivered ("web", "print",
	// "kahoot-style live session").
	Platform string `json:"platform" yaml:"platform"`

	// AgeGroup is the free-text target age description.
	AgeGroup string `json:"ageGroup" yaml:"ageGroup"`

	// Topics lists the subject areas. Non-empty.
	Topics []string `json:"topics" yaml:"topics"`

	// Difficulty is the free-text difficulty description.
	Difficulty string `json:"difficulty" yaml:"difficulty"`

	// Description is additional free text from the requester.
	Description string `json:"description" yaml:"description"`

	// Extra carries any additional key/value hints.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// CombinedText joins the request's free-text fields for keyword-based
// fallback classification.
func (r CreationRequest) CombinedText() string {
	parts := []string{r.People, r.Situation, r.Platform, r.AgeGroup, r.Difficulty, r.Description}
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	for _, t := range r.Topics {
		out += " " + t
	}
	return out
}
