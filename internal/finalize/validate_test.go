package finalize

import (
	"strings"
	"testing"

	"github.com/abhisek/itemforge/internal/itemset"
	"github.com/abhisek/itemforge/internal/request"
)

func validDraft() itemset.Draft {
	return itemset.Draft{
		OwnerID:     "owner",
		Title:       "Science quiz",
		Description: "Two quick questions",
		Tags:        []string{"Science"},
		Blocks: []itemset.Item{
			block("The sun is a star.", true),
			block("Water boils at 90C.", true),
		},
	}
}

func TestValidate_CleanSetPasses(t *testing.T) {
	err := Validate(validDraft(), finalStrategy(), request.CreationRequest{}, 2, true)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_TagCoverageCaseInsensitive(t *testing.T) {
	// Draft tag "Science" covers the suggestion "science".
	d := validDraft()
	if err := Validate(d, finalStrategy(), request.CreationRequest{}, 2, true); err != nil {
		t.Errorf("case difference must not fail coverage: %v", err)
	}

	d.Tags = []string{"other"}
	err := Validate(d, finalStrategy(), request.CreationRequest{}, 2, true)
	if err == nil {
		t.Fatal("missing suggested tag must fail")
	}
	if !strings.Contains(err.Error(), "science") {
		t.Errorf("error must list the missing tags, got %v", err)
	}
}

func TestValidate_EnumeratesEveryViolation(t *testing.T) {
	d := itemset.Draft{
		Blocks: []itemset.Item{
			block("", true), // blank question
		},
	}

	err := Validate(d, finalStrategy(), request.CreationRequest{}, 2, false)
	if err == nil {
		t.Fatal("want an error")
	}

	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("got %T, want *ValidationError", err)
	}

	// Block count, unwanted answer, blank question, empty tags, blank
	// title, blank description.
	if len(vErr.Violations) != 6 {
		t.Errorf("got %d violations, want 6: %v", len(vErr.Violations), vErr.Violations)
	}

	msg := err.Error()
	for _, want := range []string{"block count", "answer", "blank question", "tag set is empty", "title is blank", "description is blank"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q: %s", want, msg)
		}
	}
}
