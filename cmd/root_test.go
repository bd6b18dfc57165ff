package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redjax/weather-cli/internal/exitcode"
)

type weatherServer struct {
	locations []map[string]string

	mu       sync.Mutex
	requests []map[string]any
}

func (s *weatherServer) weatherRequests() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.requests...)
}

func (s *weatherServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/providers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"providers": []string{"acme", "metar"}})
	})
	mux.HandleFunc("/v1/locations", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"locations": s.locations})
	})
	mux.HandleFunc("/v1/weather", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()
		w.Write([]byte(`{"min_t":-1,"max_t":7,"avg_t":3,"condition":"Overcast"}`))
	})
	return mux
}

type cli struct {
	config string
	server string
}

func (c cli) run(stdin string, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer

	root := NewRootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	all := append([]string{"--config", c.config, "--server", c.server, "--no-color"}, args...)
	code := run(root, all)
	return code, stdout.String(), stderr.String()
}

func newCLI(t *testing.T, srv *weatherServer) cli {
	ts := httptest.NewServer(srv.handler(t))
	t.Cleanup(ts.Close)
	return cli{config: filepath.Join(t.TempDir(), ".weather_cli_config"), server: ts.URL}
}

func TestConfigureThenGet(t *testing.T) {
	srv := &weatherServer{locations: []map[string]string{
		{"id": "sp-il", "name": "Springfield", "state": "IL", "country": "US"},
	}}
	c := newCLI(t, srv)

	code, out, _ := c.run("", "configure", "acme")
	require.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "acme provider")

	data, err := os.ReadFile(c.config)
	require.NoError(t, err)
	assert.Contains(t, string(data), "acme")

	code, out, errOut := c.run("", "get", "Springfield", "01.01.2024")
	require.Equal(t, exitcode.Success, code, errOut)

	assert.Contains(t, out, "Weather on 01.01.2024:")
	assert.Contains(t, out, "Min temperature: -1")
	assert.Contains(t, out, "Max temperature: 7")
	assert.Contains(t, out, "Avg temperature: 3")
	assert.Contains(t, out, "Weather condition: Overcast")

	requests := srv.weatherRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, "acme", requests[0]["provider"])
	assert.Equal(t, "01.01.2024", requests[0]["date"])
}

func TestGetWithoutProvider(t *testing.T) {
	c := newCLI(t, &weatherServer{})

	code, _, errOut := c.run("", "get", "Springfield")

	assert.Equal(t, exitcode.Precondition, code)
	assert.Contains(t, errOut, "configure")
}

func TestConfigureUnknownProviderLeavesFileAlone(t *testing.T) {
	c := newCLI(t, &weatherServer{})

	code, _, errOut := c.run("", "configure", "nope")

	assert.Equal(t, exitcode.Precondition, code)
	assert.Contains(t, errOut, "acme, metar")
	_, err := os.Stat(c.config)
	assert.True(t, os.IsNotExist(err))
}

func TestGetDisambiguates(t *testing.T) {
	srv := &weatherServer{locations: []map[string]string{
		{"id": "1", "name": "Springfield", "state": "IL", "country": "US"},
		{"id": "2", "name": "Springfield", "state": "MO", "country": "US"},
		{"id": "3", "name": "Springfield", "state": "MA", "country": "US"},
	}}
	c := newCLI(t, srv)
	require.NoError(t, os.WriteFile(c.config, []byte("provider_name=metar\n"), 0o600))

	code, out, errOut := c.run("abc\n9\n1\n", "get", "Springfield", "02.02.2024")

	require.Equal(t, exitcode.Success, code, errOut)
	assert.Equal(t, 2, strings.Count(out, "Failed to read location index, try again"))
	assert.Contains(t, out, "Selected: Springfield, MO, US")
	requests := srv.weatherRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, "2", requests[0]["location"].(map[string]any)["id"])
}

func TestExitCodes(t *testing.T) {
	c := newCLI(t, &weatherServer{})
	require.NoError(t, os.WriteFile(c.config, []byte("provider_name=acme\n"), 0o600))

	code, _, _ := c.run("", "get", "Atlantis")
	assert.Equal(t, exitcode.NotFound, code)

	code, _, _ = c.run("", "configure")
	assert.Equal(t, exitcode.UsageError, code)

	code, _, _ = c.run("", "--bogus-flag", "list-providers")
	assert.Equal(t, exitcode.UsageError, code)

	unreachable := cli{config: c.config, server: "http://127.0.0.1:1"}
	code, _, errOut := unreachable.run("", "list-providers")
	assert.Equal(t, exitcode.RemoteError, code)
	assert.Contains(t, errOut, "list providers")
}
