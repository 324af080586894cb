// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version holds build information for the ghreact binary.
//
// Values are injected at build time:
//
//	go build -ldflags "-X github.com/bureau-foundation/ghreact/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/ghreact
package version
