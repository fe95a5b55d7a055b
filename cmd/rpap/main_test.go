package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// isolate keeps tests away from the user's config and environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"RPAP_SEED", "RPAP_UNIFORM", "RPAP_LOG_FILE", "RPAP_THEME"} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShuffleCommand(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "rows.tsv")
	if err := os.WriteFile(path, []byte("A\tB\n\nC\tD\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		// Two rows always trade places under the legacy shuffle.
		{"file argument", "", []string{"shuffle", "--seed", "7", path}, "C\tD\nA\tB\n"},
		{"input flag", "", []string{"shuffle", "--input", path}, "C\tD\nA\tB\n"},
		{"stdin", "x\ty\nz\n", []string{"shuffle", "--seed", "1"}, "z\nx\ty\n"},
		{"single row", "only", []string{"shuffle", "-"}, "only\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShuffleCommandUniformKeepsRows(t *testing.T) {
	isolate(t)
	got, err := execute(t, "1\n2\n3\n4\n5", "shuffle", "--uniform", "--seed", "42")
	if err != nil {
		t.Fatalf("execute error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	seen := map[string]bool{}
	for _, l := range lines {
		seen[l] = true
	}
	if len(lines) != 5 || len(seen) != 5 {
		t.Errorf("uniform shuffle lost rows: %q", got)
	}
}

func TestShuffleCommandEmptyInput(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "\n\n", "shuffle"); err == nil {
		t.Error("shuffle of blank input should fail")
	}
}

func TestShuffleCommandWritesLog(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "logs", "rpap.log")
	if _, err := execute(t, "a\nb", "shuffle", "--log-file", logPath); err != nil {
		t.Fatalf("execute error = %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"deck shuffled"`) {
		t.Errorf("log = %s", data)
	}
}

func TestBadConfigFails(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("ui:\n  theme: neon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "a", "shuffle", "--config", cfgPath); err == nil {
		t.Error("invalid config should fail")
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if got != "rpap "+version+"\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestWatchNeedsInputFile(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{{"--watch"}, {"--watch", "--input", "-"}} {
		_, err := execute(t, "", args...)
		if err == nil || !strings.Contains(err.Error(), "--watch") {
			t.Errorf("%v: error = %v, want --watch error", args, err)
		}
	}
}
