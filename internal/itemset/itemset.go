// Package itemset defines the candidate and final quiz/problem collection:
// an ordered list of type-tagged items. Drafts are versioned, not mutated;
// every refinement produces a new snapshot via Clone.
package itemset

// Draft is a candidate or final item set.
type Draft struct {
	// OwnerID is a placeholder filled by the finalizer; the persistence
	// collaborator assigns the real owner.
	OwnerID string `json:"ownerId"`

	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`

	Tags []string `json:"tags"`

	// Blocks is the ordered item list.
	Blocks []Item `json:"blocks"`
}

// Clone returns a deep copy. Refinement iterations operate on clones so
// every prior snapshot stays intact for the run's metadata trail.
func (d Draft) Clone() Draft {
	out := d
	out.Tags = append([]string(nil), d.Tags...)
	out.Blocks = make([]Item, len(d.Blocks))
	for i, b := range d.Blocks {
		out.Blocks[i] = b.clone()
	}
	return out
}
