package finalize

import (
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/strategy"
)

func finalStrategy() strategy.Strategy {
	return strategy.Strategy{
		Summary:                 "Short science quiz",
		PrimaryGoal:             "review basics",
		RecommendedProblemCount: 2,
		SuggestedTags:           []string{"science"},
		Difficulty:              strategy.Difficulty{Normalized: "easy"},
	}
}

func block(q string, withAnswer bool) itemset.Item {
	it := itemset.Item{
		Type:     itemset.TypeOX,
		Question: q,
		Content:  itemset.OXContent{},
	}
	if withAnswer {
		it.Answer = itemset.OXAnswer{Value: true}
	}
	return it
}

func TestFinalize_TruncatesNeverPads(t *testing.T) {
	d := itemset.Draft{
		Title:       "t",
		Description: "d",
		Blocks:      []itemset.Item{block("a", false), block("b", false), block("c", false)},
	}

	out, warnings := Finalize(request.CreationRequest{Topics: []string{"science"}}, finalStrategy(), d, 2, false)

	if len(out.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(out.Blocks))
	}
	if len(warnings) == 0 {
		t.Error("truncation must warn")
	}

	short := itemset.Draft{Title: "t", Description: "d", Blocks: []itemset.Item{block("a", false)}}
	out, warnings = Finalize(request.CreationRequest{}, finalStrategy(), short, 2, false)
	if len(out.Blocks) != 1 {
		t.Fatalf("shortfall must not be padded, got %d blocks", len(out.Blocks))
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "only 1 of 2") {
			found = true
		}
	}
	if !found {
		t.Errorf("shortfall must warn, got %v", warnings)
	}
}

func TestFinalize_ReassignsOrder(t *testing.T) {
	d := itemset.Draft{Blocks: []itemset.Item{block("a", false), block("b", false)}}
	d.Blocks[0].Order = 7
	d.Blocks[1].Order = 3

	out, _ := Finalize(request.CreationRequest{}, finalStrategy(), d, 2, false)
	for i, b := range out.Blocks {
		if b.Order != i {
			t.Errorf("block %d has order %d", i, b.Order)
		}
	}
}

func TestFinalize_StripsAnswersWhenExcluded(t *testing.T) {
	d := itemset.Draft{Blocks: []itemset.Item{block("a", true), block("b", true)}}

	out, _ := Finalize(request.CreationRequest{}, finalStrategy(), d, 2, false)
	for i, b := range out.Blocks {
		if b.Answer != nil {
			t.Errorf("block %d still carries an answer", i)
		}
	}
}

func TestFinalize_DoesNotInjectMissingAnswers(t *testing.T) {
	d := itemset.Draft{Blocks: []itemset.Item{block("a", true), block("b", false)}}

	out, _ := Finalize(request.CreationRequest{}, finalStrategy(), d, 2, true)
	if out.Blocks[1].Answer != nil {
		t.Error("missing answers must not be fabricated")
	}
}

func TestFinalize_FallbacksForBlankFields(t *testing.T) {
	d := itemset.Draft{Blocks: []itemset.Item{block("a", false), block("b", false)}}

	out, _ := Finalize(request.CreationRequest{Topics: []string{"science"}}, finalStrategy(), d, 2, false)

	if out.OwnerID == "" {
		t.Error("owner fallback missing")
	}
	if out.Title != "Short science quiz" {
		t.Errorf("got title %q, want the strategy summary", out.Title)
	}
	if out.Description == "" {
		t.Error("description fallback missing")
	}
}

func TestFinalize_FallbackTitleCappedAt60Runes(t *testing.T) {
	strat := finalStrategy()
	strat.Summary = strings.Repeat("가", 100)
	d := itemset.Draft{Blocks: []itemset.Item{block("a", false), block("b", false)}}

	out, _ := Finalize(request.CreationRequest{}, strat, d, 2, false)
	if got := len([]rune(out.Title)); got != 60 {
		t.Errorf("got %d runes, want 60", got)
	}
}

func TestFinalize_TagUnionCappedAtSix(t *testing.T) {
	strat := finalStrategy()
	strat.SuggestedTags = []string{"one", "two", "three"}
	d := itemset.Draft{
		Title:       "t",
		Description: "d",
		Tags:        []string{"a", "b", "c", "a", ""},
		Blocks:      []itemset.Item{block("a", false), block("b", false)},
	}
	req := request.CreationRequest{
		Situation: "party",
		Platform:  "discord",
		Topics:    []string{"music"},
	}

	out, _ := Finalize(req, strat, d, 2, false)
	if len(out.Tags) != 6 {
		t.Fatalf("got %d tags, want 6", len(out.Tags))
	}
	if out.Tags[0] != "a" || out.Tags[1] != "b" || out.Tags[2] != "c" {
		t.Errorf("existing tags must keep priority, got %v", out.Tags)
	}
}

func TestFinalize_Idempotent(t *testing.T) {
	d := itemset.Draft{
		Blocks: []itemset.Item{block("a", true), block("b", true)},
	}
	req := request.CreationRequest{Topics: []string{"science"}, Situation: "class"}
	strat := finalStrategy()

	once, _ := Finalize(req, strat, d, 2, true)
	twice, _ := Finalize(req, strat, once, 2, true)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("finalize is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestFinalize_StructuralFailureOnlyWarns(t *testing.T) {
	// Zero blocks can never validate, but finalize must not raise.
	d := itemset.Draft{}
	out, warnings := Finalize(request.CreationRequest{Topics: []string{"science"}}, finalStrategy(), d, 2, false)

	if out.Title == "" {
		t.Error("fallbacks must still apply")
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "validation") {
			found = true
		}
	}
	if !found {
		t.Errorf("validation failure must surface as a warning, got %v", warnings)
	}
}
