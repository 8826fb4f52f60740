package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rbui/rbui/pkg/scoring"
)

const alpha = "../../testdata/platform_alpha.json"

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestScoreCmdFlags(t *testing.T) {
	cmd := newScoreCmd()
	f := cmd.Flags()

	outputFmt, _ := f.GetString("format")
	if outputFmt != "text" {
		t.Errorf("default format = %q, want text", outputFmt)
	}
	for _, flag := range []string{"as-of", "format", "save", "report-dir"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestScoreCmd_JSON(t *testing.T) {
	out, _, err := run(t, "", "score", "--format", "json", "--as-of", "2020-06-01", alpha)
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	var result scoring.ScoreResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if result.TotalScore != 311 || result.LOFRanking != 3 {
		t.Errorf("expected total 311 LOF 3, got %v LOF %d", result.TotalScore, result.LOFRanking)
	}
}

func TestScoreCmd_Text(t *testing.T) {
	out, _, err := run(t, "", "score", alpha)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !strings.Contains(out, "RBUI: Alpha-A, LOF 3, risk M, score 311") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestScoreCmd_Stdin(t *testing.T) {
	data, err := os.ReadFile(alpha)
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, string(data), "score", "--format", "markdown", "-")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !strings.Contains(out, "## Alpha-A: LOF 3, risk M") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestScoreCmd_ConfigWeights(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("scoring:\n  weights:\n    vintage: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "", "score", "--config", cfgPath, "--format", "json", alpha)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	var result scoring.ScoreResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatal(err)
	}
	// 1980s vintage tier 4 at weight 20.
	if s, _ := result.Score(scoring.KeyVintage); s.Value != 80 {
		t.Errorf("vintage = %v, want 80", s.Value)
	}
}

func TestScoreCmd_Save(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := run(t, "", "score", "--save", "--report-dir", dir, "--format", "json", alpha)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	path := filepath.Join(dir, "alpha_20200601.json")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected saved report at %s: %v", path, err)
	}
	if !strings.Contains(stderr, "Score saved") {
		t.Errorf("expected save notice on stderr, got %q", stderr)
	}
}

func TestScoreCmd_Errors(t *testing.T) {
	if _, _, err := run(t, "", "score", "--as-of", "June", alpha); err == nil {
		t.Error("expected error for malformed --as-of")
	}
	if _, _, err := run(t, "", "score", "--format", "xml", alpha); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, _, err := run(t, "", "score", "does-not-exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, _, err := run(t, "", "score"); err == nil {
		t.Error("expected error without arguments")
	}
}

func TestScheduleCmd(t *testing.T) {
	out, _, err := run(t, "", "schedule", "--as-of", "2020-06-01", alpha)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	for _, want := range []string{"Next inspection:", "Level 1", "Inspection plan:", "2021  Level 1, Level 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCheckCmd(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name":"x","bracing_type":9,"number_of_legs_type":1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "", "check", alpha, bad)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, alpha+": ok") {
		t.Errorf("expected alpha ok:\n%s", out)
	}
	if !strings.Contains(out, "installation_date: not recorded") {
		t.Errorf("expected installation issue:\n%s", out)
	}

	if _, _, err := run(t, "", "check", "--strict", bad); err == nil {
		t.Error("expected --strict to fail on issues")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		if got := firstNonEmpty(tt.args...); got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
