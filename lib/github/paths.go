// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"fmt"
	"net/url"
	"strings"
)

// ParentResource identifies what a reaction is attached to. The set of
// implementations is closed: Issue, IssueComment, CommitComment,
// PullRequestReviewComment, Release, TeamDiscussion, and
// TeamDiscussionComment.
//
// Repository-scoped parents are addressed by owner and repository name;
// team-scoped parents by organization and team slug. The two shapes are
// separate fields on separate types so neither can be mistaken for the
// other.
type ParentResource interface {
	fmt.Stringer

	// reactionsPath returns the list/create path for the parent, or an
	// *InvalidArgumentError if an identifier is unusable.
	reactionsPath() (string, error)
}

// Issue is an issue (or pull request, which GitHub treats as an issue
// for reactions) addressed by number.
type Issue struct {
	Owner  string
	Repo   string
	Number int
}

// IssueComment is a comment on an issue or pull request conversation.
type IssueComment struct {
	Owner     string
	Repo      string
	CommentID int64
}

// CommitComment is a comment on a commit.
type CommitComment struct {
	Owner     string
	Repo      string
	CommentID int64
}

// PullRequestReviewComment is an inline review comment on a pull
// request diff.
type PullRequestReviewComment struct {
	Owner     string
	Repo      string
	CommentID int64
}

// Release is a repository release addressed by its numeric ID.
type Release struct {
	Owner     string
	Repo      string
	ReleaseID int64
}

// TeamDiscussion is a discussion on an organization team.
type TeamDiscussion struct {
	Org              string
	TeamSlug         string
	DiscussionNumber int
}

// TeamDiscussionComment is a comment on a team discussion.
type TeamDiscussionComment struct {
	Org              string
	TeamSlug         string
	DiscussionNumber int
	CommentNumber    int
}

func (parent Issue) String() string {
	return fmt.Sprintf("%s/%s#%d", parent.Owner, parent.Repo, parent.Number)
}

func (parent IssueComment) String() string {
	return fmt.Sprintf("%s/%s issue comment %d", parent.Owner, parent.Repo, parent.CommentID)
}

func (parent CommitComment) String() string {
	return fmt.Sprintf("%s/%s commit comment %d", parent.Owner, parent.Repo, parent.CommentID)
}

func (parent PullRequestReviewComment) String() string {
	return fmt.Sprintf("%s/%s review comment %d", parent.Owner, parent.Repo, parent.CommentID)
}

func (parent Release) String() string {
	return fmt.Sprintf("%s/%s release %d", parent.Owner, parent.Repo, parent.ReleaseID)
}

func (parent TeamDiscussion) String() string {
	return fmt.Sprintf("%s/%s discussion %d", parent.Org, parent.TeamSlug, parent.DiscussionNumber)
}

func (parent TeamDiscussionComment) String() string {
	return fmt.Sprintf("%s/%s discussion %d comment %d", parent.Org, parent.TeamSlug, parent.DiscussionNumber, parent.CommentNumber)
}

func (parent Issue) reactionsPath() (string, error) {
	base, err := repositoryPath(parent.Owner, parent.Repo)
	if err != nil {
		return "", err
	}
	if parent.Number <= 0 {
		return "", invalidArgument("issue number", "must be positive, got %d", parent.Number)
	}
	return fmt.Sprintf("%s/issues/%d/reactions", base, parent.Number), nil
}

func (parent IssueComment) reactionsPath() (string, error) {
	return commentReactionsPath(parent.Owner, parent.Repo, "issues/comments", parent.CommentID)
}

func (parent CommitComment) reactionsPath() (string, error) {
	return commentReactionsPath(parent.Owner, parent.Repo, "comments", parent.CommentID)
}

func (parent PullRequestReviewComment) reactionsPath() (string, error) {
	return commentReactionsPath(parent.Owner, parent.Repo, "pulls/comments", parent.CommentID)
}

func (parent Release) reactionsPath() (string, error) {
	base, err := repositoryPath(parent.Owner, parent.Repo)
	if err != nil {
		return "", err
	}
	if parent.ReleaseID <= 0 {
		return "", invalidArgument("release id", "must be positive, got %d", parent.ReleaseID)
	}
	return fmt.Sprintf("%s/releases/%d/reactions", base, parent.ReleaseID), nil
}

func (parent TeamDiscussion) reactionsPath() (string, error) {
	base, err := discussionPath(parent.Org, parent.TeamSlug, parent.DiscussionNumber)
	if err != nil {
		return "", err
	}
	return base + "/reactions", nil
}

func (parent TeamDiscussionComment) reactionsPath() (string, error) {
	base, err := discussionPath(parent.Org, parent.TeamSlug, parent.DiscussionNumber)
	if err != nil {
		return "", err
	}
	if parent.CommentNumber <= 0 {
		return "", invalidArgument("comment number", "must be positive, got %d", parent.CommentNumber)
	}
	return fmt.Sprintf("%s/comments/%d/reactions", base, parent.CommentNumber), nil
}

// ReactionsPath returns the REST path used to list and create reactions
// on parent, e.g. "/repos/octo/hello/issues/12/reactions".
func ReactionsPath(parent ParentResource) (string, error) {
	if parent == nil {
		return "", invalidArgument("parent", "no parent resource given")
	}
	return parent.reactionsPath()
}

// ReactionPath returns the REST path addressing a single reaction on
// parent, used for deletion.
func ReactionPath(parent ParentResource, reactionID int64) (string, error) {
	base, err := ReactionsPath(parent)
	if err != nil {
		return "", err
	}
	if reactionID <= 0 {
		return "", invalidArgument("reaction id", "must be positive, got %d", reactionID)
	}
	return fmt.Sprintf("%s/%d", base, reactionID), nil
}

func repositoryPath(owner, repo string) (string, error) {
	ownerSegment, err := pathSegment("owner", owner)
	if err != nil {
		return "", err
	}
	repoSegment, err := pathSegment("repo", repo)
	if err != nil {
		return "", err
	}
	return "/repos/" + ownerSegment + "/" + repoSegment, nil
}

func commentReactionsPath(owner, repo, collection string, commentID int64) (string, error) {
	base, err := repositoryPath(owner, repo)
	if err != nil {
		return "", err
	}
	if commentID <= 0 {
		return "", invalidArgument("comment id", "must be positive, got %d", commentID)
	}
	return fmt.Sprintf("%s/%s/%d/reactions", base, collection, commentID), nil
}

func discussionPath(org, teamSlug string, discussionNumber int) (string, error) {
	orgSegment, err := pathSegment("org", org)
	if err != nil {
		return "", err
	}
	teamSegment, err := pathSegment("team slug", teamSlug)
	if err != nil {
		return "", err
	}
	if discussionNumber <= 0 {
		return "", invalidArgument("discussion number", "must be positive, got %d", discussionNumber)
	}
	return fmt.Sprintf("/orgs/%s/teams/%s/discussions/%d", orgSegment, teamSegment, discussionNumber), nil
}

// pathSegment validates and escapes one string identifier. A value
// containing "/" is rejected: "owner/repo" passed as an owner must not
// turn into two path segments. "." and ".." are rejected because
// url.PathEscape leaves them as dot segments.
func pathSegment(argument, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", invalidArgument(argument, "must not be empty")
	}
	if strings.Contains(value, "/") {
		return "", invalidArgument(argument, "%q must not contain '/'", value)
	}
	if value == "." || value == ".." {
		return "", invalidArgument(argument, "%q is not a valid path segment", value)
	}
	return url.PathEscape(value), nil
}
