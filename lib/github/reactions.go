// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// maxPerPage is the largest page size GitHub accepts.
const maxPerPage = 100

// ListReactionsOptions controls filtering and pagination for
// ListReactions. Zero values leave the server defaults in place
// (all contents, page 1, 30 per page).
type ListReactionsOptions struct {
	// Content restricts results to one reaction type.
	Content ReactionContent

	// Page is the 1-based page number.
	Page int

	// PerPage is the page size, 1 to 100. Values outside that range are
	// rejected, not clamped.
	PerPage int
}

func (options ListReactionsOptions) queryParams() (string, error) {
	query := url.Values{}
	if options.Content != "" {
		if !options.Content.Valid() {
			return "", invalidArgument("content", "%q is not a reaction type (want one of %s)", string(options.Content), contentList())
		}
		query.Set("content", string(options.Content))
	}
	if options.PerPage < 0 || options.PerPage > maxPerPage {
		return "", invalidArgument("per_page", "must be between 1 and %d, got %d", maxPerPage, options.PerPage)
	}
	if options.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(options.PerPage))
	}
	if options.Page < 0 {
		return "", invalidArgument("page", "must be at least 1, got %d", options.Page)
	}
	if options.Page > 0 {
		query.Set("page", strconv.Itoa(options.Page))
	}
	return query.Encode(), nil
}

// ListReactions returns one page of reactions on parent, in the order
// the server returned them.
func (client *Client) ListReactions(ctx context.Context, parent ParentResource, options ListReactionsOptions) ([]Reaction, error) {
	body, err := client.ListReactionsRaw(ctx, parent, options)
	if err != nil {
		return nil, err
	}
	reactions, err := DecodeReactionList(body)
	if err != nil {
		return nil, fmt.Errorf("listing reactions on %s: %w", parent, err)
	}
	return reactions, nil
}

// ListReactionsRaw performs the same request as ListReactions and
// returns the undecoded response body. This is the low-level escape
// hatch for callers that need fields this package does not model.
func (client *Client) ListReactionsRaw(ctx context.Context, parent ParentResource, options ListReactionsOptions) ([]byte, error) {
	path, err := ReactionsPath(parent)
	if err != nil {
		return nil, err
	}
	query, err := options.queryParams()
	if err != nil {
		return nil, err
	}
	if query != "" {
		path += "?" + query
	}

	result, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing reactions on %s: %w", parent, err)
	}
	if err := result.expectStatus(http.StatusOK); err != nil {
		return nil, fmt.Errorf("listing reactions on %s: %w", parent, err)
	}
	return result.body, nil
}

// CreateReaction adds a reaction to parent. Unknown content values are
// rejected before any request is made. When the authenticated user had
// already left the same reaction GitHub returns the existing one, and
// the result reports AlreadyExisted.
func (client *Client) CreateReaction(ctx context.Context, parent ParentResource, content ReactionContent) (*CreateReactionResult, error) {
	payload, err := EncodeCreatePayload(content)
	if err != nil {
		return nil, err
	}
	path, err := ReactionsPath(parent)
	if err != nil {
		return nil, err
	}

	result, err := client.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, fmt.Errorf("creating %s reaction on %s: %w", content, parent, err)
	}
	if err := result.expectStatus(http.StatusOK, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("creating %s reaction on %s: %w", content, parent, err)
	}

	reaction, err := DecodeReaction(result.body)
	if err != nil {
		return nil, fmt.Errorf("creating %s reaction on %s: %w", content, parent, err)
	}
	return &CreateReactionResult{
		Reaction:       reaction,
		AlreadyExisted: result.statusCode == http.StatusOK,
	}, nil
}

// DeleteReaction removes reaction reactionID from parent. A reaction
// that does not exist (or was already deleted) yields an error matching
// ErrNotFound; callers that want idempotent deletion check IsNotFound.
func (client *Client) DeleteReaction(ctx context.Context, parent ParentResource, reactionID int64) error {
	path, err := ReactionPath(parent, reactionID)
	if err != nil {
		return err
	}

	result, err := client.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return fmt.Errorf("deleting reaction %d on %s: %w", reactionID, parent, err)
	}
	if err := result.expectStatus(http.StatusNoContent); err != nil {
		return fmt.Errorf("deleting reaction %d on %s: %w", reactionID, parent, err)
	}
	return nil
}
