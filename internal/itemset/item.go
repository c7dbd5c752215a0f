package itemset

// Type discriminates the item's content and answer payloads.
type Type string

const (
	TypeDefault  Type = "default"  // free-response
	TypeMCQ      Type = "mcq"      // multiple choice
	TypeRanking  Type = "ranking"  // order the entries
	TypeOX       Type = "ox"       // true/false
	TypeMatching Type = "matching" // pair left and right entries
)

// Types lists every valid item type.
var Types = []Type{TypeDefault, TypeMCQ, TypeRanking, TypeOX, TypeMatching}

// ValidType reports whether t is a known item type.
func ValidType(t Type) bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

// Item is one question unit.
type Item struct {
	ID       string
	Type     Type
	Question string

	// Content is the type-tagged payload matching Type. Nil is valid for
	// TypeDefault and TypeOX, where the question text carries everything.
	Content Content

	// Answer is the type-tagged answer, present only when the run's
	// answer policy includes answers.
	Answer Answer

	// Order is the zero-based position, reassigned by the finalizer.
	Order int
}

func (it Item) clone() Item {
	out := it
	if it.Content != nil {
		out.Content = it.Content.cloneContent()
	}
	if it.Answer != nil {
		out.Answer = it.Answer.cloneAnswer()
	}
	return out
}
