package itemset

import (
	"encoding/json"
	"fmt"
)

// itemEnvelope is the wire shape of an Item. Content and answer stay raw
// until the type discriminant is known.
type itemEnvelope struct {
	ID       string          `json:"id"`
	Type     Type            `json:"type"`
	Question string          `json:"question"`
	Content  json.RawMessage `json:"content,omitempty"`
	Answer   json.RawMessage `json:"answer,omitempty"`
	Order    int             `json:"order"`
}

// MarshalJSON encodes the item with its type-tagged payloads inline.
func (it Item) MarshalJSON() ([]byte, error) {
	env := itemEnvelope{
		ID:       it.ID,
		Type:     it.Type,
		Question: it.Question,
		Order:    it.Order,
	}

	if it.Content != nil {
		raw, err := json.Marshal(it.Content)
		if err != nil {
			return nil, fmt.Errorf("marshal %s content: %w", it.Type, err)
		}
		env.Content = raw
	}
	if it.Answer != nil {
		raw, err := json.Marshal(it.Answer)
		if err != nil {
			return nil, fmt.Errorf("marshal %s answer: %w", it.Type, err)
		}
		env.Answer = raw
	}

	return json.Marshal(env)
}

// UnmarshalJSON decodes the envelope, then dispatches the payloads on the
// type discriminant. An unknown type is an error; the caller treats it as
// schema-nonconforming oracle output.
func (it *Item) UnmarshalJSON(data []byte) error {
	var env itemEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if !ValidType(env.Type) {
		return fmt.Errorf("unknown item type %q", env.Type)
	}

	it.ID = env.ID
	it.Type = env.Type
	it.Question = env.Question
	it.Order = env.Order
	it.Content = nil
	it.Answer = nil

	if len(env.Content) > 0 && string(env.Content) != "null" {
		c, err := decodeContent(env.Type, env.Content)
		if err != nil {
			return err
		}
		it.Content = c
	}
	if len(env.Answer) > 0 && string(env.Answer) != "null" {
		a, err := decodeAnswer(env.Type, env.Answer)
		if err != nil {
			return err
		}
		it.Answer = a
	}

	return nil
}

func decodeContent(t Type, raw json.RawMessage) (Content, error) {
	var (
		c   Content
		err error
	)
	switch t {
	case TypeDefault:
		var v DefaultContent
		err = json.Unmarshal(raw, &v)
		c = v
	case TypeMCQ:
		var v MCQContent
		err = json.Unmarshal(raw, &v)
		c = v
	case TypeRanking:
		var v RankingContent
		err = json.Unmarshal(raw, &v)
		c = v
	case TypeOX:
		var v OXContent
		err = json.Unmarshal(raw, &v)
		c = v
	case TypeMatching:
		var v MatchingContent
		err = json.Unmarshal(raw, &v)
		c = v
	default:
		return nil, fmt.Errorf("unknown item type %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s content: %w", t, err)
	}
	return c, nil
}

func decodeAnswer(t Type, raw json.RawMessage) (Answer, error) {
	var (
		a   Answer
		err error
	)
	switch t {
	case TypeDefault:
		var v DefaultAnswer
		err = json.Unmarshal(raw, &v)
		a = v
	case TypeMCQ:
		var v MCQAnswer
		err = json.Unmarshal(raw, &v)
		a = v
	case TypeRanking:
		var v RankingAnswer
		err = json.Unmarshal(raw, &v)
		a = v
	case TypeOX:
		var v OXAnswer
		err = json.Unmarshal(raw, &v)
		a = v
	case TypeMatching:
		var v MatchingAnswer
		err = json.Unmarshal(raw, &v)
		a = v
	default:
		return nil, fmt.Errorf("unknown item type %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s answer: %w", t, err)
	}
	return a, nil
}
