// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"strings"
	"time"
)

// User is a GitHub account reference. Appears as the author of a
// reaction.
type User struct {
	Login   string `json:"login"`
	ID      int64  `json:"id"`
	HTMLURL string `json:"html_url"`
	Type    string `json:"type"` // "User", "Bot", "Organization"
}

// ReactionContent is the emoji category of a reaction. GitHub accepts
// exactly the eight values below.
type ReactionContent string

const (
	PlusOne  ReactionContent = "+1"
	MinusOne ReactionContent = "-1"
	Laugh    ReactionContent = "laugh"
	Confused ReactionContent = "confused"
	Heart    ReactionContent = "heart"
	Hooray   ReactionContent = "hooray"
	Rocket   ReactionContent = "rocket"
	Eyes     ReactionContent = "eyes"
)

var reactionContents = []ReactionContent{PlusOne, MinusOne, Laugh, Confused, Heart, Hooray, Rocket, Eyes}

// AllReactionContents returns every known reaction content in the
// order GitHub documents them.
func AllReactionContents() []ReactionContent {
	return append([]ReactionContent(nil), reactionContents...)
}

// Valid reports whether content is one of the known values.
func (content ReactionContent) Valid() bool {
	for _, known := range reactionContents {
		if content == known {
			return true
		}
	}
	return false
}

// ParseReactionContent converts s to a ReactionContent. Unknown values
// are rejected with an *InvalidArgumentError rather than mapped to a
// neighbouring value.
func ParseReactionContent(s string) (ReactionContent, error) {
	content := ReactionContent(s)
	if !content.Valid() {
		return "", invalidArgument("content", "%q is not a reaction type (want one of %s)", s, contentList())
	}
	return content, nil
}

func contentList() string {
	names := make([]string, len(reactionContents))
	for i, content := range reactionContents {
		names[i] = string(content)
	}
	return strings.Join(names, ", ")
}

// Reaction is one emoji reaction left on an issue, comment, team
// discussion, or release.
type Reaction struct {
	ID      int64           `json:"id"`
	NodeID  string          `json:"node_id,omitempty"`
	User    *User           `json:"user"` // nil when the account was deleted
	Content ReactionContent `json:"content"`

	CreatedAt time.Time `json:"created_at"`
}

// CreateReactionResult is the outcome of CreateReaction. GitHub answers
// 201 when it created the reaction and 200 when the same user had
// already left the same reaction; AlreadyExisted records which.
type CreateReactionResult struct {
	Reaction       Reaction `json:"reaction"`
	AlreadyExisted bool     `json:"already_existed"`
}
