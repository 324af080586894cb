// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// wireReaction mirrors the JSON shape of a reaction. Required fields are
// pointers so that absence is distinguishable from a zero value.
type wireReaction struct {
	ID        *int64     `json:"id"`
	NodeID    string     `json:"node_id"`
	User      *User      `json:"user"`
	Content   *string    `json:"content"`
	CreatedAt *time.Time `json:"created_at"`
}

func (wire wireReaction) reaction() (Reaction, error) {
	if wire.ID == nil {
		return Reaction{}, fmt.Errorf("reaction is missing %q", "id")
	}
	if wire.Content == nil {
		return Reaction{}, fmt.Errorf("reaction %d is missing %q", *wire.ID, "content")
	}
	content := ReactionContent(*wire.Content)
	if !content.Valid() {
		return Reaction{}, fmt.Errorf("reaction %d has unknown content %q", *wire.ID, *wire.Content)
	}
	reaction := Reaction{
		ID:      *wire.ID,
		NodeID:  wire.NodeID,
		User:    wire.User,
		Content: content,
	}
	if wire.CreatedAt != nil {
		reaction.CreatedAt = *wire.CreatedAt
	}
	return reaction, nil
}

// DecodeReaction decodes a single reaction object. A body that is not a
// JSON object, lacks "id" or "content", or carries a content value this
// package does not know is reported as a *MalformedResponseError. An
// unknown content is never folded into a known one.
func DecodeReaction(body []byte) (Reaction, error) {
	if firstByte(body) != '{' {
		return Reaction{}, malformed(body, "expected a JSON object")
	}
	var wire wireReaction
	if err := json.Unmarshal(body, &wire); err != nil {
		return Reaction{}, malformed(body, err.Error())
	}
	reaction, err := wire.reaction()
	if err != nil {
		return Reaction{}, malformed(body, err.Error())
	}
	return reaction, nil
}

// DecodeReactionList decodes a JSON array of reactions, preserving the
// server's order. An empty array yields an empty, non-nil slice. Any
// malformed element fails the whole decode.
func DecodeReactionList(body []byte) ([]Reaction, error) {
	if firstByte(body) != '[' {
		return nil, malformed(body, "expected a JSON array")
	}
	var wires []wireReaction
	if err := json.Unmarshal(body, &wires); err != nil {
		return nil, malformed(body, err.Error())
	}
	reactions := make([]Reaction, 0, len(wires))
	for index, wire := range wires {
		reaction, err := wire.reaction()
		if err != nil {
			return nil, malformed(body, fmt.Sprintf("element %d: %v", index, err))
		}
		reactions = append(reactions, reaction)
	}
	return reactions, nil
}

// createReactionPayload is the POST body for creating a reaction.
type createReactionPayload struct {
	Content ReactionContent `json:"content"`
}

// EncodeCreatePayload returns the JSON body {"content": "<content>"} for
// a create request, rejecting unknown content values.
func EncodeCreatePayload(content ReactionContent) ([]byte, error) {
	if !content.Valid() {
		return nil, invalidArgument("content", "%q is not a reaction type (want one of %s)", string(content), contentList())
	}
	return json.Marshal(createReactionPayload{Content: content})
}

func malformed(body []byte, reason string) *MalformedResponseError {
	return &MalformedResponseError{Reason: reason, Body: body}
}

// firstByte returns the first non-whitespace byte of body, or 0.
func firstByte(body []byte) byte {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
