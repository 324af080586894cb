// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the ghreact binary.
//
// A [Command] is a node in a tree: it either dispatches to subcommands
// by the first positional argument or parses its flags and calls Run.
// Flags are declared as tagged struct fields and bound with
// [FlagsFromParams]:
//
//	type listParams struct {
//	    cli.JSONOutput
//	    Page int `flag:"page" desc:"page number (1-based)"`
//	}
//
// Unknown commands and flags get a "did you mean" suggestion based on
// edit distance.
package cli
