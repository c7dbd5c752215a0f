package classify

import (
	"context"
	"testing"

	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/request"
)

func TestSanitizeTags_StripsAndTruncates(t *testing.T) {
	got := SanitizeTags([]string{" #history ", "한국사능력검정시험", "ok"})
	if got[0] != "history" {
		t.Errorf("got %q, want %q", got[0], "history")
	}
	if len([]rune(got[1])) != 8 {
		t.Errorf("got %d runes, want 8", len([]rune(got[1])))
	}
}

func TestSanitizeTags_CaseSensitiveDedup(t *testing.T) {
	got := SanitizeTags([]string{"History", "history", "History"})
	if len(got) != 2 {
		t.Errorf("got %d tags, want 2 (dedup is case-sensitive)", len(got))
	}
}

func TestSanitizeTags_CapsAtTen(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	if got := SanitizeTags(in); len(got) != 10 {
		t.Errorf("got %d tags, want 10", len(got))
	}
}

func TestSanitizeTags_DropsBlanks(t *testing.T) {
	got := SanitizeTags([]string{"", "  ", "#", "real"})
	if len(got) != 1 || got[0] != "real" {
		t.Errorf("got %v, want [real]", got)
	}
}

func TestSynthesizeTags_FromRequest(t *testing.T) {
	got := SynthesizeTags(request.CreationRequest{
		Topics:    []string{"history", "geography"},
		Situation: "school",
		Platform:  "kakao",
		AgeGroup:  "teens",
	})
	if len(got) == 0 {
		t.Fatal("got no tags")
	}
	for _, tag := range got {
		if len([]rune(tag)) > 8 {
			t.Errorf("tag %q exceeds 8 runes", tag)
		}
	}
}

func TestSynthesizeTags_EmptyRequestStillTagged(t *testing.T) {
	got := SynthesizeTags(request.CreationRequest{})
	if len(got) == 0 {
		t.Fatal("empty request must still yield at least one tag")
	}
}

func TestTagsSuggest_FallbackOnOracleFailure(t *testing.T) {
	unit := NewTagsUnit(oracle.NewMockProvider())
	res := unit.Suggest(context.Background(), request.CreationRequest{Topics: []string{"movies"}})
	if len(res.Tags) == 0 {
		t.Fatal("got no tags")
	}
	if res.Provenance != ProvenanceHeuristic {
		t.Errorf("got provenance %q, want heuristic", res.Provenance)
	}
}
