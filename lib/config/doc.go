// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the ghreact configuration file.
//
// The file is named by the --config flag or, failing that, the
// GHREACT_CONFIG environment variable. There is no ~/.config discovery
// and no automatic file search: with neither set, [Default] is used.
//
// YAML is the primary format. Files ending in .json or .jsonc are read
// as JSON with // and /* */ comments and trailing commas permitted.
//
// The API token is never stored in the file. The config names the
// environment variable that holds it (GITHUB_TOKEN by default) and
// [Config.Token] reads it.
//
// This package depends on no other ghreact packages.
package config
