package itemset

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestItemJSON_MCQRoundTrip(t *testing.T) {
	item := Item{
		ID:       "q1",
		Type:     TypeMCQ,
		Question: "Which planet is known as the Red Planet?",
		Content: MCQContent{Choices: []Choice{
			{ID: "a", Text: "Venus"},
			{ID: "b", Text: "Mars"},
		}},
		Answer: MCQAnswer{ChoiceIDs: []string{"b"}},
		Order:  0,
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Item
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	content, ok := got.Content.(MCQContent)
	if !ok {
		t.Fatalf("content decoded as %T, want MCQContent", got.Content)
	}
	if len(content.Choices) != 2 || content.Choices[1].Text != "Mars" {
		t.Errorf("choices did not survive: %+v", content.Choices)
	}

	answer, ok := got.Answer.(MCQAnswer)
	if !ok {
		t.Fatalf("answer decoded as %T, want MCQAnswer", got.Answer)
	}
	if len(answer.ChoiceIDs) != 1 || answer.ChoiceIDs[0] != "b" {
		t.Errorf("answer did not survive: %+v", answer)
	}
}

func TestItemJSON_OXRoundTrip(t *testing.T) {
	item := Item{
		ID:       "q2",
		Type:     TypeOX,
		Question: "The sun is a star.",
		Content:  OXContent{},
		Answer:   OXAnswer{Value: true},
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Item
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	answer, ok := got.Answer.(OXAnswer)
	if !ok {
		t.Fatalf("answer decoded as %T, want OXAnswer", got.Answer)
	}
	if !answer.Value {
		t.Error("answer value flipped")
	}
}

func TestItemJSON_NoAnswerOmitted(t *testing.T) {
	item := Item{
		Type:     TypeDefault,
		Question: "Describe photosynthesis.",
		Content:  DefaultContent{Guide: "one paragraph"},
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), `"answer"`) {
		t.Errorf("nil answer must be omitted, got %s", data)
	}

	var got Item
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Answer != nil {
		t.Errorf("answer decoded as %T, want nil", got.Answer)
	}
}

func TestItemJSON_UnknownTypeRejected(t *testing.T) {
	raw := `{"id":"x","type":"hologram","question":"?","content":{},"order":0}`
	var got Item
	if err := json.Unmarshal([]byte(raw), &got); err == nil {
		t.Error("unknown item type must not decode")
	}
}

func TestItemJSON_MismatchedPayloadRejected(t *testing.T) {
	// An mcq item whose content is not an object cannot decode.
	raw := `{"id":"x","type":"mcq","question":"?","content":[1,2],"order":0}`
	var got Item
	if err := json.Unmarshal([]byte(raw), &got); err == nil {
		t.Error("malformed content payload must not decode")
	}
}

func TestDraftClone_Independent(t *testing.T) {
	orig := Draft{
		Title: "set",
		Tags:  []string{"a"},
		Blocks: []Item{{
			Type:     TypeMCQ,
			Question: "q",
			Content:  MCQContent{Choices: []Choice{{ID: "a", Text: "one"}}},
		}},
	}

	clone := orig.Clone()
	clone.Tags[0] = "changed"
	clone.Blocks[0].Question = "changed"
	if content, ok := clone.Blocks[0].Content.(MCQContent); ok {
		content.Choices[0].Text = "changed"
	}

	if orig.Tags[0] != "a" {
		t.Error("clone shares the tag slice")
	}
	if orig.Blocks[0].Question != "q" {
		t.Error("clone shares the block slice")
	}
	if orig.Blocks[0].Content.(MCQContent).Choices[0].Text != "one" {
		t.Error("clone shares content payload slices")
	}
}
