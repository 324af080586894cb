// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package github provides a typed Go client for the reactions area of
// the GitHub REST API: listing, creating, and deleting emoji reactions
// on issues, issue comments, commit comments, pull request review
// comments, releases, team discussions, and team discussion comments.
//
// A reaction's parent is named by one of the [ParentResource] types, so
// each operation exists once instead of once per parent kind:
//
//	client, err := github.NewClient(github.Config{Token: token})
//	...
//	result, err := client.CreateReaction(ctx,
//	    github.IssueComment{Owner: "octo", Repo: "hello", CommentID: 42},
//	    github.Rocket)
//
// The client authenticates with a bearer token from an oauth2
// TokenSource (a static personal access token by default). It performs
// no retries, no rate-limit waiting, no pagination iteration, and no
// caching: each call is one request whose failure is returned to the
// caller as a typed error ([TransportError], [APIError],
// [MalformedResponseError], [InvalidArgumentError]). A 404 matches
// [ErrNotFound].
//
// All requests are made over HTTPS. The client refuses non-HTTPS base URLs.
package github
