// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

// ReactionSummary counts reactions by content, in the shape GitHub uses
// for the "reactions" rollup embedded in issues and comments.
type ReactionSummary struct {
	TotalCount int `json:"total_count"`
	PlusOne    int `json:"+1"`
	MinusOne   int `json:"-1"`
	Laugh      int `json:"laugh"`
	Confused   int `json:"confused"`
	Heart      int `json:"heart"`
	Hooray     int `json:"hooray"`
	Rocket     int `json:"rocket"`
	Eyes       int `json:"eyes"`
}

// SummarizeReactions tallies reactions by content.
func SummarizeReactions(reactions []Reaction) ReactionSummary {
	var summary ReactionSummary
	for _, reaction := range reactions {
		summary.TotalCount++
		switch reaction.Content {
		case PlusOne:
			summary.PlusOne++
		case MinusOne:
			summary.MinusOne++
		case Laugh:
			summary.Laugh++
		case Confused:
			summary.Confused++
		case Heart:
			summary.Heart++
		case Hooray:
			summary.Hooray++
		case Rocket:
			summary.Rocket++
		case Eyes:
			summary.Eyes++
		}
	}
	return summary
}

// Count returns the number of reactions with the given content.
func (summary ReactionSummary) Count(content ReactionContent) int {
	switch content {
	case PlusOne:
		return summary.PlusOne
	case MinusOne:
		return summary.MinusOne
	case Laugh:
		return summary.Laugh
	case Confused:
		return summary.Confused
	case Heart:
		return summary.Heart
	case Hooray:
		return summary.Hooray
	case Rocket:
		return summary.Rocket
	case Eyes:
		return summary.Eyes
	}
	return 0
}
