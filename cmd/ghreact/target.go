// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/ghreact/lib/github"
)

// targetParams select the resource whose reactions a command works on.
// Identifier values are checked by the github package when it builds the
// request path; this type only checks that the flags form one target.
type targetParams struct {
	Repo              string `flag:"repo" desc:"repository as owner/name"`
	Issue             int    `flag:"issue" desc:"issue or pull request number"`
	IssueComment      int64  `flag:"issue-comment" desc:"issue comment ID"`
	CommitComment     int64  `flag:"commit-comment" desc:"commit comment ID"`
	PullComment       int64  `flag:"pull-comment" desc:"pull request review comment ID"`
	Release           int64  `flag:"release" desc:"release ID"`
	Org               string `flag:"org" desc:"organization (team discussions)"`
	Team              string `flag:"team" desc:"team slug (team discussions)"`
	Discussion        int    `flag:"discussion" desc:"team discussion number"`
	DiscussionComment int    `flag:"discussion-comment" desc:"team discussion comment number"`
}

var errNoTarget = errors.New("no target: use --repo with --issue, --issue-comment, --commit-comment, --pull-comment or --release, " +
	"or --org and --team with --discussion")

func (p *targetParams) resource() (github.ParentResource, error) {
	repoScoped := p.Repo != ""
	teamScoped := p.Org != "" || p.Team != "" || p.Discussion != 0 || p.DiscussionComment != 0

	switch {
	case repoScoped && teamScoped:
		return nil, errors.New("--repo cannot be combined with --org, --team, --discussion or --discussion-comment")
	case repoScoped:
		return p.repositoryResource()
	case teamScoped:
		return p.discussionResource()
	default:
		return nil, errNoTarget
	}
}

func (p *targetParams) repositoryResource() (github.ParentResource, error) {
	owner, name, ok := strings.Cut(p.Repo, "/")
	if !ok {
		return nil, fmt.Errorf("--repo must be owner/name, got %q", p.Repo)
	}

	var selected []github.ParentResource
	if p.Issue != 0 {
		selected = append(selected, github.Issue{Owner: owner, Repo: name, Number: p.Issue})
	}
	if p.IssueComment != 0 {
		selected = append(selected, github.IssueComment{Owner: owner, Repo: name, CommentID: p.IssueComment})
	}
	if p.CommitComment != 0 {
		selected = append(selected, github.CommitComment{Owner: owner, Repo: name, CommentID: p.CommitComment})
	}
	if p.PullComment != 0 {
		selected = append(selected, github.PullRequestReviewComment{Owner: owner, Repo: name, CommentID: p.PullComment})
	}
	if p.Release != 0 {
		selected = append(selected, github.Release{Owner: owner, Repo: name, ReleaseID: p.Release})
	}

	if len(selected) != 1 {
		return nil, errors.New("--repo needs exactly one of --issue, --issue-comment, --commit-comment, --pull-comment or --release")
	}
	return selected[0], nil
}

func (p *targetParams) discussionResource() (github.ParentResource, error) {
	if p.Issue != 0 || p.IssueComment != 0 || p.CommitComment != 0 || p.PullComment != 0 || p.Release != 0 {
		return nil, errors.New("--issue, --issue-comment, --commit-comment, --pull-comment and --release require --repo")
	}
	if p.Org == "" || p.Team == "" {
		return nil, errors.New("team discussions need both --org and --team")
	}
	if p.Discussion == 0 {
		return nil, errors.New("--discussion is required with --org and --team")
	}

	if p.DiscussionComment != 0 {
		return github.TeamDiscussionComment{
			Org:              p.Org,
			TeamSlug:         p.Team,
			DiscussionNumber: p.Discussion,
			CommentNumber:    p.DiscussionComment,
		}, nil
	}
	return github.TeamDiscussion{Org: p.Org, TeamSlug: p.Team, DiscussionNumber: p.Discussion}, nil
}
