package httpapi

import (
	"encoding/json"
	"errors"
	"strings"

	"dungeon-master-be/pkg/narrator"
)

// ErrUnrecognizedReply is returned when the endpoint answers with a body
// that matches none of the known reply shapes.
var ErrUnrecognizedReply = errors.New("unrecognized reply shape")

// replyProbe captures every field any known reply shape can carry. Which
// shape applies is decided by the ordered matcher list below, never by
// whichever field happens to decode first.
type replyProbe struct {
	Role    *string         `json:"role"`
	Content *string         `json:"content"`
	Message json.RawMessage `json:"message"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type replyMatcher func(p *replyProbe) (narrator.Message, bool)

// Matchers are tried strictly in order:
//  1. explicit {role, content} object, role lower-cased
//  2. OpenAI-style choices list, but only when no top-level "message"
//     field is present
//  3. bare {message: string}
//
// Both implied-role shapes normalize to role "assistant".
var replyMatchers = []replyMatcher{
	func(p *replyProbe) (narrator.Message, bool) {
		if p.Role == nil || p.Content == nil {
			return narrator.Message{}, false
		}
		return narrator.Message{
			Role:    strings.ToLower(*p.Role),
			Content: *p.Content,
		}, true
	},
	func(p *replyProbe) (narrator.Message, bool) {
		if len(p.Choices) == 0 || p.Message != nil {
			return narrator.Message{}, false
		}
		return narrator.Message{
			Role:    narrator.RoleAssistant,
			Content: p.Choices[0].Message.Content,
		}, true
	},
	func(p *replyProbe) (narrator.Message, bool) {
		if p.Message == nil {
			return narrator.Message{}, false
		}
		var text string
		if err := json.Unmarshal(p.Message, &text); err != nil {
			return narrator.Message{}, false
		}
		return narrator.Message{
			Role:    narrator.RoleAssistant,
			Content: text,
		}, true
	},
}

// DecodeReply normalizes a raw endpoint response body into the canonical
// message shape.
func DecodeReply(body []byte) (narrator.Message, error) {
	var probe replyProbe
	if err := json.Unmarshal(body, &probe); err != nil {
		return narrator.Message{}, ErrUnrecognizedReply
	}

	for _, match := range replyMatchers {
		if msg, ok := match(&probe); ok {
			return msg, nil
		}
	}

	return narrator.Message{}, ErrUnrecognizedReply
}
