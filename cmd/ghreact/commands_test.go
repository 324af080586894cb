// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bureau-foundation/ghreact/cmd/ghreact/cli"
	"github.com/bureau-foundation/ghreact/lib/github"
	"github.com/bureau-foundation/ghreact/lib/version"
)

const testTokenEnv = "GHREACT_TEST_TOKEN"

// recordedRequest is what the fake API saw for one call.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
	Auth   string
	Agent  string
}

type fakeAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

// newFakeAPI starts a TLS server that records every request and answers
// with handler.
func newFakeAPI(t *testing.T, handler http.HandlerFunc) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	api.server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		body.ReadFrom(r.Body)
		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body.String(),
			Auth:   r.Header.Get("Authorization"),
			Agent:  r.Header.Get("User-Agent"),
		})
		api.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(api.server.Close)
	return api
}

func (api *fakeAPI) recorded() []recordedRequest {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]recordedRequest(nil), api.requests...)
}

type harness struct {
	app        *app
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	configPath string
}

// newHarness writes a config pointing at api and returns an app wired to
// the server's TLS transport.
func newHarness(t *testing.T, api *fakeAPI, extraConfig string) *harness {
	t.Helper()
	t.Setenv(testTokenEnv, "ghp_test")

	configPath := filepath.Join(t.TempDir(), "ghreact.yaml")
	content := "base_url: " + api.server.URL + "\ntoken_env: " + testTokenEnv + "\n" + extraConfig
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	h := &harness{configPath: configPath}
	h.app = newApp(context.Background(), &h.stdout, &h.stderr)
	h.app.transport = api.server.Client().Transport
	return h
}

// run executes a subcommand with --config pointing at the harness
// config. The flag goes right after the command name so that tests can
// end their arguments with "--".
func (h *harness) run(command string, args ...string) error {
	return h.app.root().Execute(append([]string{command, "--config", h.configPath}, args...))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

const twoReactions = `[
	{"id": 1, "node_id": "MDg6UmVhY3Rpb24x", "user": {"login": "octocat", "id": 1}, "content": "heart", "created_at": "2016-05-20T20:09:31Z"},
	{"id": 2, "user": null, "content": "+1", "created_at": "2016-05-21T08:00:00Z"}
]`

func TestList_Text(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, twoReactions)
	})
	h := newHarness(t, api, "per_page: 50\n")

	if err := h.run("list", "--repo", "octocat/hello-world", "--issue", "1347", "--content", "heart"); err != nil {
		t.Fatalf("list: %v", err)
	}

	requests := api.recorded()
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0].Method != http.MethodGet || requests[0].Path != "/repos/octocat/hello-world/issues/1347/reactions" {
		t.Errorf("request = %s %s", requests[0].Method, requests[0].Path)
	}
	if requests[0].Query != "content=heart&per_page=50" {
		t.Errorf("query = %q, want config per_page and content filter", requests[0].Query)
	}
	if requests[0].Auth != "Bearer ghp_test" {
		t.Errorf("Authorization = %q", requests[0].Auth)
	}
	if requests[0].Agent != version.UserAgent() {
		t.Errorf("User-Agent = %q, want %q", requests[0].Agent, version.UserAgent())
	}

	output := h.stdout.String()
	for _, want := range []string{"Reactions on octocat/hello-world#1347", "octocat", "heart", "(deleted)", "2016-05-21T08:00:00Z"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestList_PerPageFlagOverridesConfig(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	h := newHarness(t, api, "per_page: 50\n")

	if err := h.run("list", "--repo", "o/r", "--release", "9", "--per-page", "5", "--page", "2"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if query := api.recorded()[0].Query; query != "page=2&per_page=5" {
		t.Errorf("query = %q, want page=2&per_page=5", query)
	}
	if !strings.Contains(h.stdout.String(), "no reactions on o/r release 9") {
		t.Errorf("output = %q", h.stdout.String())
	}
}

func TestList_JSON(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, twoReactions)
	})
	h := newHarness(t, api, "")

	if err := h.run("list", "--org", "github", "--team", "justice-league", "--discussion", "3", "--json"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if path := api.recorded()[0].Path; path != "/orgs/github/teams/justice-league/discussions/3/reactions" {
		t.Errorf("path = %q", path)
	}

	var reactions []github.Reaction
	if err := json.Unmarshal(h.stdout.Bytes(), &reactions); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, h.stdout.String())
	}
	if len(reactions) != 2 || reactions[0].Content != github.Heart || reactions[1].User != nil {
		t.Errorf("reactions = %+v", reactions)
	}
}

func TestList_InvalidContentMakesNoRequest(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	h := newHarness(t, api, "")

	err := h.run("list", "--repo", "o/r", "--issue", "1", "--content", "thumbsup")
	if !errors.Is(err, github.ErrInvalidArgument) {
		t.Errorf("list error = %v, want ErrInvalidArgument", err)
	}
	if len(api.recorded()) != 0 {
		t.Errorf("expected no requests, got %d", len(api.recorded()))
	}
}

func TestList_APIError(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"message": "Resource not accessible by integration"}`)
	})
	h := newHarness(t, api, "")

	err := h.run("list", "--repo", "o/r", "--issue", "1")
	if !github.IsForbidden(err) {
		t.Fatalf("list error = %v, want 403 APIError", err)
	}
	if !strings.Contains(err.Error(), "Resource not accessible by integration") {
		t.Errorf("error = %q, want GitHub message", err)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"created", http.StatusCreated, "added rocket to o/r release 7 (reaction 99)"},
		{"already present", http.StatusOK, "rocket already present on o/r release 7 (reaction 99)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, test.status, `{"id": 99, "user": {"login": "octocat"}, "content": "rocket", "created_at": "2024-01-01T00:00:00Z"}`)
			})
			h := newHarness(t, api, "")

			if err := h.run("add", "rocket", "--repo", "o/r", "--release", "7"); err != nil {
				t.Fatalf("add: %v", err)
			}

			request := api.recorded()[0]
			if request.Method != http.MethodPost || request.Path != "/repos/o/r/releases/7/reactions" {
				t.Errorf("request = %s %s", request.Method, request.Path)
			}
			if request.Body != `{"content":"rocket"}` {
				t.Errorf("body = %q", request.Body)
			}
			if !strings.Contains(h.stdout.String(), test.want) {
				t.Errorf("output = %q, want %q", h.stdout.String(), test.want)
			}
		})
	}
}

func TestAdd_JSON(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id": 5, "user": null, "content": "-1", "created_at": "2024-01-01T00:00:00Z"}`)
	})
	h := newHarness(t, api, "")

	if err := h.run("add", "--repo", "o/r", "--commit-comment", "44", "--json", "--", "-1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	var result github.CreateReactionResult
	if err := json.Unmarshal(h.stdout.Bytes(), &result); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if !result.AlreadyExisted || result.Reaction.Content != github.MinusOne {
		t.Errorf("result = %+v", result)
	}
}

func TestAdd_InvalidContentMakesNoRequest(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{}`)
	})
	h := newHarness(t, api, "")

	err := h.run("add", "not-a-real-type", "--repo", "o/r", "--issue", "1")
	if !errors.Is(err, github.ErrInvalidArgument) {
		t.Errorf("add error = %v, want ErrInvalidArgument", err)
	}
	if len(api.recorded()) != 0 {
		t.Errorf("expected no requests, got %d", len(api.recorded()))
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		extra      []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "deleted", status: http.StatusNoContent, wantStdout: "removed reaction 42"},
		{name: "not found", status: http.StatusNotFound, wantCode: 1, wantStderr: "reaction 42 not found"},
		{name: "not found, missing ok", status: http.StatusNotFound, extra: []string{"--missing-ok"}, wantStdout: "reaction 42 not present"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				if test.status == http.StatusNoContent {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				writeJSON(w, test.status, `{"message": "Not Found"}`)
			})
			h := newHarness(t, api, "")

			args := append([]string{"42", "--repo", "o/r", "--pull-comment", "8"}, test.extra...)
			err := h.run("remove", args...)

			if test.wantCode == 0 && err != nil {
				t.Fatalf("remove: %v", err)
			}
			if test.wantCode != 0 {
				var exitErr *cli.ExitError
				if !errors.As(err, &exitErr) || exitErr.Code != test.wantCode {
					t.Fatalf("remove error = %v, want exit code %d", err, test.wantCode)
				}
			}

			request := api.recorded()[0]
			if request.Method != http.MethodDelete || request.Path != "/repos/o/r/pulls/comments/8/reactions/42" {
				t.Errorf("request = %s %s", request.Method, request.Path)
			}
			if !strings.Contains(h.stdout.String(), test.wantStdout) {
				t.Errorf("stdout = %q, want %q", h.stdout.String(), test.wantStdout)
			}
			if !strings.Contains(h.stderr.String(), test.wantStderr) {
				t.Errorf("stderr = %q, want %q", h.stderr.String(), test.wantStderr)
			}
		})
	}
}

func TestRemove_ServerErrorPropagates(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"message": "Server Error"}`)
	})
	h := newHarness(t, api, "")

	err := h.run("remove", "42", "--repo", "o/r", "--issue-comment", "8", "--missing-ok")
	var apiErr *github.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("remove error = %v, want APIError 500", err)
	}
}

func TestRemove_BadID(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {})
	h := newHarness(t, api, "")

	if err := h.run("remove", "forty-two", "--repo", "o/r", "--issue", "1"); err == nil {
		t.Fatal("expected error for non-numeric reaction ID")
	}
	if len(api.recorded()) != 0 {
		t.Errorf("expected no requests, got %d", len(api.recorded()))
	}
}

func TestSummary(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"id": 1, "user": null, "content": "+1", "created_at": "2024-01-01T00:00:00Z"},
			{"id": 2, "user": null, "content": "+1", "created_at": "2024-01-01T00:00:00Z"},
			{"id": 3, "user": null, "content": "eyes", "created_at": "2024-01-01T00:00:00Z"}
		]`)
	})
	h := newHarness(t, api, "")

	if err := h.run("summary", "--repo", "o/r", "--issue", "1", "--json"); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if query := api.recorded()[0].Query; query != "per_page=100" {
		t.Errorf("query = %q, want per_page=100", query)
	}

	var summary map[string]int
	if err := json.Unmarshal(h.stdout.Bytes(), &summary); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if summary["total_count"] != 3 || summary["+1"] != 2 || summary["eyes"] != 1 || summary["heart"] != 0 {
		t.Errorf("summary = %v", summary)
	}
}

func TestSummary_Text(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id": 1, "user": null, "content": "hooray", "created_at": "2024-01-01T00:00:00Z"}]`)
	})
	h := newHarness(t, api, "")

	if err := h.run("summary", "--repo", "o/r", "--issue", "1"); err != nil {
		t.Fatalf("summary: %v", err)
	}
	output := h.stdout.String()
	if !strings.Contains(output, "1 reactions on o/r#1") || !strings.Contains(output, "hooray") {
		t.Errorf("output = %q", output)
	}
	if strings.Contains(output, "heart") {
		t.Errorf("zero counts should be omitted: %q", output)
	}
}

func TestContents(t *testing.T) {
	var stdout, stderr bytes.Buffer
	a := newApp(context.Background(), &stdout, &stderr)

	if err := a.root().Execute([]string{"contents"}); err != nil {
		t.Fatalf("contents: %v", err)
	}
	lines := strings.Fields(stdout.String())
	if len(lines) != 8 || lines[0] != "+1" || lines[7] != "eyes" {
		t.Errorf("contents = %v", lines)
	}
}

func TestMissingToken(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {})
	h := newHarness(t, api, "")
	t.Setenv(testTokenEnv, "")

	err := h.run("list", "--repo", "o/r", "--issue", "1")
	if err == nil || !strings.Contains(err.Error(), "no API token") {
		t.Errorf("list error = %v, want missing token", err)
	}
}

func TestVerboseLogsRequests(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	h := newHarness(t, api, "")

	if err := h.run("list", "--repo", "o/r", "--issue", "1", "-v"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(h.stderr.String(), `"msg":"github request"`) {
		t.Errorf("stderr = %q, want debug request log", h.stderr.String())
	}
}

func TestUserAgentFromConfig(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	h := newHarness(t, api, "user_agent: reaction-bot/2\n")

	if err := h.run("list", "--repo", "o/r", "--issue", "1"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if agent := api.recorded()[0].Agent; agent != "reaction-bot/2" {
		t.Errorf("User-Agent = %q, want reaction-bot/2", agent)
	}
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	a := newApp(context.Background(), &stdout, &stderr)

	if err := a.root().Execute([]string{"version"}); err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(stdout.String()) != version.Info() {
		t.Errorf("version output = %q, want %q", stdout.String(), version.Info())
	}
}
