package main

import (
	"encoding/json"
	"io"
	"os"
	"testing"
	"time"

	"github.com/greenmtn-data/scent.report/internal/config"
	"github.com/greenmtn-data/scent.report/internal/predict"
)

// runWithStdio temporarily swaps os.Stdin/os.Stdout for the duration of
// run(), so the CLI's real JSON decode/encode path is exercised without
// a subprocess.
func runWithStdio(t *testing.T, input string) (exitCode int, stdout string) {
	t.Helper()

	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	if _, err := stdinW.WriteString(input); err != nil {
		t.Fatalf("write stdin: %v", err)
	}
	stdinW.Close()

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	origStdin, origStdout := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = stdinR, stdoutW
	defer func() { os.Stdin, os.Stdout = origStdin, origStdout }()

	code := run()
	stdoutW.Close()

	out, err := io.ReadAll(stdoutR)
	if err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	return code, string(out)
}

func mustParseTime(t *testing.T, s string) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return tt
}

func TestRun_ValidRequestSucceeds(t *testing.T) {
	req := predict.Request{
		Lat:      44.2601,
		Lon:      -72.5754,
		DateTime: mustParseTime(t, "2026-11-10T07:00:00Z"),
		Season:   "rut",
	}
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	code, out := runWithStdio(t, string(body))
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stdout=%s", code, out)
	}

	var resp predict.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode response: %v\nraw: %s", err, out)
	}
	if len(resp.StandRecommendations) == 0 {
		t.Error("expected at least one stand recommendation")
	}
	if resp.AllProvidersDegraded {
		t.Error("no collaborator calls were made, all_providers_degraded should be false")
	}
}

func TestRun_InvalidJSONExitsOne(t *testing.T) {
	code, _ := runWithStdio(t, "not json")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRun_InvalidRequestExitsOne(t *testing.T) {
	req := predict.Request{Lat: 999, Lon: -72.5754, DateTime: mustParseTime(t, "2026-11-10T07:00:00Z"), Season: "rut"}
	body, _ := json.Marshal(req)
	code, _ := runWithStdio(t, string(body))
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestBuildCollaborators_DefaultsLeaveProvidersNil(t *testing.T) {
	cfg := config.Defaults()
	collab, closeFn, err := buildCollaborators(cfg)
	defer closeFn()
	if err != nil {
		t.Fatalf("buildCollaborators: %v", err)
	}
	if collab.Weather != nil || collab.Canopy != nil || collab.Roads != nil || collab.LandCover != nil {
		t.Error("expected every network collaborator to stay nil with no backend configured")
	}
	if collab.Terrain == nil {
		t.Error("expected a non-nil terrain catalog")
	}
}
