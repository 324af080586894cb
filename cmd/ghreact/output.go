// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/ghreact/lib/github"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// heading renders a section title, styled only when stdout is a
// terminal.
func (a *app) heading(format string, args ...any) string {
	text := fmt.Sprintf(format, args...)
	if !a.styled {
		return text
	}
	return headingStyle.Render(text)
}

func (a *app) writeReactions(parent github.ParentResource, reactions []github.Reaction) error {
	if len(reactions) == 0 {
		fmt.Fprintf(a.stdout, "no reactions on %s\n", parent)
		return nil
	}

	fmt.Fprintln(a.stdout, a.heading("Reactions on %s", parent))
	writer := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tCONTENT\tUSER\tCREATED")
	for _, reaction := range reactions {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n",
			reaction.ID, reaction.Content, userLogin(reaction.User), reaction.CreatedAt.UTC().Format(time.RFC3339))
	}
	return writer.Flush()
}

func (a *app) writeSummary(parent github.ParentResource, summary github.ReactionSummary) error {
	fmt.Fprintln(a.stdout, a.heading("%d reactions on %s", summary.TotalCount, parent))
	writer := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, content := range github.AllReactionContents() {
		if count := summary.Count(content); count > 0 {
			fmt.Fprintf(writer, "%s\t%d\n", content, count)
		}
	}
	return writer.Flush()
}

func userLogin(user *github.User) string {
	if user == nil {
		return "(deleted)"
	}
	return user.Login
}
