package itemset

// Content is the type-tagged question payload. Exactly one concrete type
// exists per item Type; the union is sealed by the unexported method.
type Content interface {
	ItemType() Type
	cloneContent() Content
}

// Answer is the type-tagged answer payload, sealed the same way.
type Answer interface {
	ItemType() Type
	cloneAnswer() Answer
}

// Choice is one selectable option of an mcq item.
type Choice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Entry is one labeled element of a ranking or matching item.
type Entry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Pair links a left entry to a right entry in a matching answer.
type Pair struct {
	LeftID  string `json:"leftId"`
	RightID string `json:"rightId"`
}

// DefaultContent is the free-response payload. The question text carries
// the prompt; Guide optionally hints at the expected answer shape.
type DefaultContent struct {
	Guide string `json:"guide,omitempty"`
}

func (DefaultContent) ItemType() Type { return TypeDefault }
func (c DefaultContent) cloneContent() Content {
	return c
}

// DefaultAnswer is the model answer text for a free-response item.
type DefaultAnswer struct {
	Text string `json:"text"`
}

func (DefaultAnswer) ItemType() Type { return TypeDefault }
func (a DefaultAnswer) cloneAnswer() Answer {
	return a
}

// MCQContent holds the selectable choices.
type MCQContent struct {
	Choices []Choice `json:"choices"`
}

func (MCQContent) ItemType() Type { return TypeMCQ }
func (c MCQContent) cloneContent() Content {
	out := c
	out.Choices = append([]Choice(nil), c.Choices...)
	return out
}

// MCQAnswer names the correct choice(s) by ID.
type MCQAnswer struct {
	ChoiceIDs []string `json:"choiceIds"`
}

func (MCQAnswer) ItemType() Type { return TypeMCQ }
func (a MCQAnswer) cloneAnswer() Answer {
	out := a
	out.ChoiceIDs = append([]string(nil), a.ChoiceIDs...)
	return out
}

// RankingContent lists the entries to be put in order.
type RankingContent struct {
	Entries []Entry `json:"entries"`
}

func (RankingContent) ItemType() Type { return TypeRanking }
func (c RankingContent) cloneContent() Content {
	out := c
	out.Entries = append([]Entry(nil), c.Entries...)
	return out
}

// RankingAnswer is the correct ordering of entry IDs.
type RankingAnswer struct {
	Order []string `json:"order"`
}

func (RankingAnswer) ItemType() Type { return TypeRanking }
func (a RankingAnswer) cloneAnswer() Answer {
	out := a
	out.Order = append([]string(nil), a.Order...)
	return out
}

// OXContent optionally overrides the true/false labels (defaults O and X).
type OXContent struct {
	TrueLabel  string `json:"trueLabel,omitempty"`
	FalseLabel string `json:"falseLabel,omitempty"`
}

func (OXContent) ItemType() Type { return TypeOX }
func (c OXContent) cloneContent() Content {
	return c
}

// OXAnswer is the truth value of the statement.
type OXAnswer struct {
	Value bool `json:"value"`
}

func (OXAnswer) ItemType() Type { return TypeOX }
func (a OXAnswer) cloneAnswer() Answer {
	return a
}

// MatchingContent holds the two columns to pair up.
type MatchingContent struct {
	Left  []Entry `json:"left"`
	Right []Entry `json:"right"`
}

func (MatchingContent) ItemType() Type { return TypeMatching }
func (c MatchingContent) cloneContent() Content {
	out := c
	out.Left = append([]Entry(nil), c.Left...)
	out.Right = append([]Entry(nil), c.Right...)
	return out
}

// MatchingAnswer lists the correct pairs.
type MatchingAnswer struct {
	Pairs []Pair `json:"pairs"`
}

func (MatchingAnswer) ItemType() Type { return TypeMatching }
func (a MatchingAnswer) cloneAnswer() Answer {
	out := a
	out.Pairs = append([]Pair(nil), a.Pairs...)
	return out
}
