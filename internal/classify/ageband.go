package classify

import "github.com/abhisek/itemforge/internal/oracle"

// AgeBand is one of eight audience age bands.
type AgeBand string

const (
	AgePreschool       AgeBand = "preschool"
	AgeLowerElementary AgeBand = "lower-elementary"
	AgeUpperElementary AgeBand = "upper-elementary"
	AgeMiddleSchool    AgeBand = "middle-school"
	AgeHighSchool      AgeBand = "high-school"
	AgeCollege         AgeBand = "college"
	AgeAdult           AgeBand = "adult"
	AgeSenior          AgeBand = "senior"
)

// AgeBands lists all bands in ascending age order.
var AgeBands = []AgeBand{
	AgePreschool,
	AgeLowerElementary,
	AgeUpperElementary,
	AgeMiddleSchool,
	AgeHighSchool,
	AgeCollege,
	AgeAdult,
	AgeSenior,
}

const ageBandSystem = `You classify the target audience of a quiz request into age bands.
Pick the single best-matching primary band and up to three secondary bands that also apply.
Base the judgment on explicit age mentions first, then on context (school level, workplace, retirement).`

// NewAgeBandUnit builds the age-band classifier: one primary band plus up
// to three secondary bands.
func NewAgeBandUnit(provider oracle.Provider) *Unit[AgeBand] {
	return NewUnit(provider, Config[AgeBand]{
		Name:         "age-band",
		Vocabulary:   AgeBands,
		Default:      AgeAdult,
		MaxSecondary: 3,
		System:       ageBandSystem,
		Rules: []KeywordRule[AgeBand]{
			{Label: AgePreschool, Keywords: []string{"preschool", "kindergarten", "toddler", "유치원", "유아"}},
			{Label: AgeLowerElementary, Keywords: []string{"1st grade", "2nd grade", "3rd grade", "lower elementary", "초등학교 저학년"}},
			{Label: AgeUpperElementary, Keywords: []string{"4th grade", "5th grade", "6th grade", "elementary", "초등"}},
			{Label: AgeMiddleSchool, Keywords: []string{"middle school", "junior high", "중학"}},
			{Label: AgeHighSchool, Keywords: []string{"high school", "teenager", "고등"}},
			{Label: AgeCollege, Keywords: []string{"college", "university", "undergrad", "대학"}},
			{Label: AgeSenior, Keywords: []string{"senior", "elderly", "retire", "노인", "실버"}},
			{Label: AgeAdult, Keywords: []string{"adult", "employee", "office", "work", "성인", "직장"}},
		},
	})
}
