// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bureau-foundation/ghreact/cmd/ghreact/cli"
	"github.com/bureau-foundation/ghreact/lib/config"
	"github.com/bureau-foundation/ghreact/lib/github"
	"github.com/bureau-foundation/ghreact/lib/version"
)

// app carries the process-level state every command shares.
type app struct {
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer

	// transport is the base HTTP transport under the otelhttp wrapper.
	// Nil means http.DefaultTransport; tests substitute the transport of
	// an httptest TLS server.
	transport http.RoundTripper

	// styled enables lipgloss rendering of headings.
	styled bool
}

func newApp(ctx context.Context, stdout, stderr io.Writer) *app {
	return &app{
		ctx:    ctx,
		stdout: stdout,
		stderr: stderr,
		styled: cli.IsTerminal(stdout),
	}
}

// commonParams are the flags every API command accepts.
type commonParams struct {
	ConfigPath string `flag:"config" desc:"config file (default $GHREACT_CONFIG)"`
	Verbose    bool   `flag:"verbose,v" desc:"log each API request"`
}

// connect loads the configuration and builds an authenticated client.
func (a *app) connect(common commonParams) (*github.Client, *config.Config, error) {
	cfg, err := config.Load(config.Resolve(common.ConfigPath))
	if err != nil {
		return nil, nil, err
	}

	token, err := cfg.Token()
	if err != nil {
		return nil, nil, err
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, nil, err
	}

	transport := a.transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}

	client, err := github.NewClient(github.Config{
		BaseURL:    cfg.BaseURL,
		Token:      token,
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(transport)},
		Timeout:    timeout,
		UserAgent:  userAgent,
		Logger:     cli.NewCommandLogger(a.stderr, common.Verbose),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating GitHub client: %w", err)
	}
	return client, cfg, nil
}

func (a *app) root() *cli.Command {
	root := &cli.Command{
		Name:       "ghreact",
		HelpOutput: a.stderr,
		Description: `Manage reactions on GitHub issues, comments, releases, and team discussions.

The target is chosen with --repo plus one of --issue, --issue-comment,
--commit-comment, --pull-comment or --release; or with --org and --team
plus --discussion (and optionally --discussion-comment).

The API token is read from the environment variable named by the
config's token_env (GITHUB_TOKEN by default).`,
		Subcommands: []*cli.Command{
			a.listCommand(),
			a.addCommand(),
			a.removeCommand(),
			a.summaryCommand(),
			a.contentsCommand(),
			a.versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "List reactions on an issue",
				Command:     "ghreact list --repo octocat/hello-world --issue 1347",
			},
			{
				Description: "Add a rocket to a release",
				Command:     "ghreact add rocket --repo octocat/hello-world --release 1",
			},
			{
				Description: "Remove a reaction from a team discussion comment",
				Command:     "ghreact remove 42 --org github --team justice-league --discussion 3 --discussion-comment 1",
			},
		},
	}
	return root
}
