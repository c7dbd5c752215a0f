package classify

import (
	"context"

	"github.com/abhisek/itemforge/internal/oracle"
)

// SituationCategory is one of four usage situations.
type SituationCategory string

const (
	SituationStudy      SituationCategory = "study"      // classroom, self-study, tutoring
	SituationAssessment SituationCategory = "assessment" // exams, placement, certification
	SituationSocial     SituationCategory = "social"     // icebreakers, parties, team building
	SituationEvent      SituationCategory = "event"      // live shows, promotions, contests
)

// SituationCategories lists all categories.
var SituationCategories = []SituationCategory{
	SituationStudy, SituationAssessment, SituationSocial, SituationEvent,
}

// situationGuidance holds the static guidance bullets served when the
// oracle cannot provide its own.
var situationGuidance = map[SituationCategory][]string{
	SituationStudy: {
		"Favor items that reinforce one concept at a time",
		"Include answers and short explanations where the policy allows",
		"Ramp difficulty gradually across the set",
	},
	SituationAssessment: {
		"Keep wording unambiguous; avoid trick phrasing",
		"Spread difficulty to discriminate between skill levels",
		"Avoid items whose answer leaks into a later question",
	},
	SituationSocial: {
		"Keep items short and punchy",
		"Prefer recognizable, broadly known topics",
		"Mix in a few surprising or funny items",
	},
	SituationEvent: {
		"Design for fast pacing and projection on a shared screen",
		"Prefer visual-friendly formats like mcq and ox",
		"Front-load easy wins to warm the crowd up",
	},
}

// SituationResult is a situation classification plus guidance bullets for
// the prompt composer.
type SituationResult struct {
	Result[SituationCategory]
	Guidance []string
}

const situationSystem = `You classify the usage situation of a quiz request into one of four categories.
Pick one primary category and up to two secondary categories that also apply.`

// SituationUnit classifies the usage situation: 1 primary, up to 2
// secondary, plus a guidance bullet list.
type SituationUnit struct {
	unit *Unit[SituationCategory]
}

// NewSituationUnit builds the situation classifier.
func NewSituationUnit(provider oracle.Provider) *SituationUnit {
	return &SituationUnit{
		unit: NewUnit(provider, Config[SituationCategory]{
			Name:         "situation",
			Vocabulary:   SituationCategories,
			Default:      SituationStudy,
			MaxSecondary: 2,
			System:       situationSystem,
			Rules: []KeywordRule[SituationCategory]{
				{Label: SituationAssessment, Keywords: []string{"exam", "test", "assessment", "placement", "certif", "시험", "평가"}},
				{Label: SituationSocial, Keywords: []string{"icebreaker", "party", "team building", "social", "friends", "회식", "모임"}},
				{Label: SituationEvent, Keywords: []string{"event", "live", "show", "contest", "promotion", "행사", "이벤트"}},
				{Label: SituationStudy, Keywords: []string{"study", "class", "lesson", "school", "learn", "교육", "학습", "수업", "공부"}},
			},
		}),
	}
}

// Classify is total; guidance always comes from the static table keyed by
// the primary category.
func (s *SituationUnit) Classify(ctx context.Context, input string) SituationResult {
	res := s.unit.Classify(ctx, input)
	return SituationResult{
		Result:   res,
		Guidance: situationGuidance[res.Primary],
	}
}
