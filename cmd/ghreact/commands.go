// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ghreact/cmd/ghreact/cli"
	"github.com/bureau-foundation/ghreact/lib/github"
	"github.com/bureau-foundation/ghreact/lib/version"
)

type listParams struct {
	commonParams
	targetParams
	cli.JSONOutput
	Content string `flag:"content" desc:"only reactions with this content"`
	Page    int    `flag:"page" desc:"page number (default: first page)"`
	PerPage int    `flag:"per-page" desc:"results per page, 1-100 (default: config per_page, else server default)"`
}

func (a *app) listCommand() *cli.Command {
	var params listParams
	return &cli.Command{
		Name:    "list",
		Summary: "List reactions on a target",
		Usage:   "ghreact list <target flags> [--content c] [--page n] [--per-page n] [--json]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			parent, err := params.resource()
			if err != nil {
				return err
			}
			client, cfg, err := a.connect(params.commonParams)
			if err != nil {
				return err
			}

			options := github.ListReactionsOptions{Page: params.Page, PerPage: params.PerPage}
			if options.PerPage == 0 {
				options.PerPage = cfg.PerPage
			}
			if params.Content != "" {
				if options.Content, err = github.ParseReactionContent(params.Content); err != nil {
					return err
				}
			}

			reactions, err := client.ListReactions(a.ctx, parent, options)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(a.stdout, reactions); done {
				return err
			}
			return a.writeReactions(parent, reactions)
		},
	}
}

type addParams struct {
	commonParams
	targetParams
	cli.JSONOutput
}

func (a *app) addCommand() *cli.Command {
	var params addParams
	return &cli.Command{
		Name:    "add",
		Summary: "Add a reaction to a target",
		Usage:   "ghreact add <content> <target flags> [--json]",
		Description: `Add a reaction as the authenticated user.

Adding a reaction the user has already left is not an error: GitHub
returns the existing reaction and the output says it was already present.
Run "ghreact contents" for the accepted content values.

"-1" looks like a flag, so pass it after "--".`,
		Examples: []cli.Example{
			{
				Description: "Thumbs-down a pull request review comment",
				Command:     "ghreact add --repo octocat/hello-world --pull-comment 10 -- -1",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("add", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return errors.New("usage: ghreact add <content> <target flags>")
			}
			content, err := github.ParseReactionContent(args[0])
			if err != nil {
				return err
			}
			parent, err := params.resource()
			if err != nil {
				return err
			}
			client, _, err := a.connect(params.commonParams)
			if err != nil {
				return err
			}

			result, err := client.CreateReaction(a.ctx, parent, content)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(a.stdout, result); done {
				return err
			}

			if result.AlreadyExisted {
				fmt.Fprintf(a.stdout, "%s already present on %s (reaction %d)\n",
					result.Reaction.Content, parent, result.Reaction.ID)
			} else {
				fmt.Fprintf(a.stdout, "added %s to %s (reaction %d)\n",
					result.Reaction.Content, parent, result.Reaction.ID)
			}
			return nil
		},
	}
}

type removeParams struct {
	commonParams
	targetParams
	MissingOK bool `flag:"missing-ok" desc:"succeed if the reaction does not exist"`
}

func (a *app) removeCommand() *cli.Command {
	var params removeParams
	return &cli.Command{
		Name:    "remove",
		Summary: "Remove a reaction from a target",
		Usage:   "ghreact remove <reaction-id> <target flags> [--missing-ok]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("remove", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return errors.New("usage: ghreact remove <reaction-id> <target flags>")
			}
			reactionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("reaction ID %q is not a number", args[0])
			}
			parent, err := params.resource()
			if err != nil {
				return err
			}
			client, _, err := a.connect(params.commonParams)
			if err != nil {
				return err
			}

			err = client.DeleteReaction(a.ctx, parent, reactionID)
			switch {
			case err == nil:
				fmt.Fprintf(a.stdout, "removed reaction %d from %s\n", reactionID, parent)
				return nil
			case github.IsNotFound(err) && params.MissingOK:
				fmt.Fprintf(a.stdout, "reaction %d not present on %s\n", reactionID, parent)
				return nil
			case github.IsNotFound(err):
				fmt.Fprintf(a.stderr, "reaction %d not found on %s\n", reactionID, parent)
				return &cli.ExitError{Code: 1}
			default:
				return err
			}
		},
	}
}

type summaryParams struct {
	commonParams
	targetParams
	cli.JSONOutput
	Page int `flag:"page" desc:"page of reactions to count (default: first page)"`
}

func (a *app) summaryCommand() *cli.Command {
	var params summaryParams
	return &cli.Command{
		Name:    "summary",
		Summary: "Count reactions on a target by content",
		Usage:   "ghreact summary <target flags> [--page n] [--json]",
		Description: `Count reactions on a target by content.

One page of up to 100 reactions is counted. Targets with more reactions
need one run per page.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("summary", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			parent, err := params.resource()
			if err != nil {
				return err
			}
			client, _, err := a.connect(params.commonParams)
			if err != nil {
				return err
			}

			reactions, err := client.ListReactions(a.ctx, parent, github.ListReactionsOptions{
				Page:    params.Page,
				PerPage: 100,
			})
			if err != nil {
				return err
			}

			summary := github.SummarizeReactions(reactions)
			if done, err := params.EmitJSON(a.stdout, summary); done {
				return err
			}
			return a.writeSummary(parent, summary)
		},
	}
}

func (a *app) contentsCommand() *cli.Command {
	return &cli.Command{
		Name:    "contents",
		Summary: "Print the reaction content values GitHub accepts",
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			for _, content := range github.AllReactionContents() {
				fmt.Fprintln(a.stdout, content)
			}
			return nil
		},
	}
}

type versionParams struct {
	Full bool `flag:"full" desc:"include Go version and platform"`
}

func (a *app) versionCommand() *cli.Command {
	var params versionParams
	return &cli.Command{
		Name:    "version",
		Summary: "Print the ghreact version",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if params.Full {
				fmt.Fprintln(a.stdout, version.Full())
			} else {
				fmt.Fprintln(a.stdout, version.Info())
			}
			return nil
		},
	}
}
