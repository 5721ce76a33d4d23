package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/dav88dev/skillorbit/pkg/engine"
	"github.com/dav88dev/skillorbit/pkg/errors"
	"github.com/dav88dev/skillorbit/pkg/observability"
)

const testSkillsYAML = `skills:
  - name: Go
    category: Languages
    color: "#00ADD8"
    level: 90
    connections: [Docker]
  - name: Docker
    category: DevOps
    color: "#2496ED"
    level: 80
  - name: PostgreSQL
    category: Databases
    level: 70
    connections: [Go, Redis]
  - name: Vue.js
    category: Frontend
    level: 60
`

// writeSkills writes the test document into a fresh working directory and
// returns its path.
func writeSkills(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	path := filepath.Join(dir, "skills.yaml")
	if err := os.WriteFile(path, []byte(testSkillsYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with args and returns what it wrote to
// its output stream.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	want := []string{"render", "simulate", "graph", "validate", "view", "modes", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "skills.yaml", "skills"},
		{"", "data/skills.json", "data/skills"},
		{"out/orbit.svg", "skills.yaml", "out/orbit"},
		{"out/orbit.png", "skills.yaml", "out/orbit"},
		{"out/orbit", "skills.yaml", "out/orbit"},
		{"out/orbit.v2", "skills.yaml", "out/orbit.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"svg", []string{"svg"}},
		{"SVG, png ,,json", []string{"svg", "png", "json"}},
	}
	for _, tt := range tests {
		got := splitList(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"140,140", []float64{140, 140}, false},
		{" 1.5 , -2 ", []float64{1.5, -2}, false},
		{"140", nil, true},
		{"1,2,3", nil, true},
		{"a,2", nil, true},
		{"NaN,2", nil, true},
		{"1,Inf", nil, true},
	}
	for _, tt := range tests {
		got, err := parsePoint(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("parsePoint(%q) error = %v, want INVALID_INPUT", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePoint(%q) error: %v", tt.in, err)
			continue
		}
		if got[0] != tt.want[0] || got[1] != tt.want[1] {
			t.Errorf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{"single default", "", []string{"svg"}, map[string]string{"svg": "skills.svg"}},
		{"single explicit", "out.svg", []string{"svg"}, map[string]string{"svg": "out.svg"}},
		{"stdout", "-", []string{"json"}, map[string]string{"json": "-"}},
		{"multiple base", "out/frame", []string{"svg", "png"}, map[string]string{"svg": "out/frame.svg", "png": "out/frame.png"}},
		{"multiple strip ext", "out/frame.svg", []string{"svg", "json"}, map[string]string{"svg": "out/frame.svg", "json": "out/frame.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, "skills.yaml", tt.formats)
			for f, want := range tt.want {
				if got[f] != want {
					t.Errorf("outputPaths()[%s] = %q, want %q", f, got[f], want)
				}
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeSkills(t)
	base := filepath.Join(filepath.Dir(path), "frame")

	_, err := run(t, "render", path, "--no-cache", "-f", "svg,json", "-o", base,
		"--mode", "grid", "--frames", "30", "--pointer", "0,0")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("svg output has no <svg element")
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Error("json output is not valid JSON")
	}
}

func TestRenderCommandStdout(t *testing.T) {
	path := writeSkills(t)

	out, err := run(t, "render", path, "--no-cache", "-f", "json", "-o", "-", "--frames", "5")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `"PostgreSQL"`) {
		t.Errorf("stdout missing skill name: %.200s", out)
	}

	_, err = run(t, "render", path, "--no-cache", "-f", "json,svg", "-o", "-")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("multi-format stdout error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	path := writeSkills(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown mode", []string{"render", path, "--mode", "zigzag"}, errors.ErrCodeInvalidMode},
		{"unknown format", []string{"render", path, "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"unknown style", []string{"render", path, "--style", "neon"}, errors.ErrCodeInvalidStyle},
		{"missing file", []string{"render", "nope.yaml", "--no-cache"}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestSimulateCommandJSON(t *testing.T) {
	path := writeSkills(t)

	out, err := run(t, "simulate", path, "--json", "--frames", "30", "--every", "10", "--still")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d frames, want 3", len(lines))
	}
	var last engine.Frame
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatal(err)
	}
	if len(last.Nodes) != 4 {
		t.Errorf("last frame has %d nodes, want 4", len(last.Nodes))
	}
	if last.Elapsed < 0.49 || last.Elapsed > 0.51 {
		t.Errorf("last frame elapsed = %v, want 0.5", last.Elapsed)
	}
}

func TestSimulateCommandTable(t *testing.T) {
	path := writeSkills(t)

	out, err := run(t, "simulate", path, "--frames", "10", "--every", "5")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, want := range []string{"Frame", "Skill", "Docker", "Vue.js"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}

	if _, err := run(t, "simulate", path, "--every", "0"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("--every 0 error = %v, want INVALID_INPUT", err)
	}
}

func TestGraphCommandDOT(t *testing.T) {
	path := writeSkills(t)

	out, err := run(t, "graph", path, "--format", "dot", "-o", "-", "--dangling")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	if !strings.HasPrefix(out, "graph G {") {
		t.Errorf("dot output = %.80s", out)
	}
	if !strings.Contains(out, "Redis") {
		t.Error("dangling connection not drawn")
	}

	if _, err := run(t, "graph", path, "--format", "gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("graph --format gif error = %v, want INVALID_FORMAT", err)
	}
}

func TestValidateCommand(t *testing.T) {
	path := writeSkills(t)

	if _, err := run(t, "validate", path); err != nil {
		t.Errorf("validate: %v", err)
	}
	if _, err := run(t, "validate", path, "--strict"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("validate --strict error = %v, want NOT_FOUND", err)
	}

	dup := filepath.Join(filepath.Dir(path), "dup.json")
	doc := `[{"name": "Go", "level": 1}, {"name": "Go", "level": 2}]`
	if err := os.WriteFile(dup, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "validate", dup); !errors.Is(err, errors.ErrCodeDuplicateName) {
		t.Errorf("validate duplicate error = %v, want DUPLICATE_NAME", err)
	}
}

func TestModesCommand(t *testing.T) {
	writeSkills(t)

	out, err := run(t, "modes")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range []string{"orbit", "float", "grid", "wave", "spiral"} {
		if !strings.Contains(out, m) {
			t.Errorf("modes output missing %q", m)
		}
	}
}

func TestConfigFileApplies(t *testing.T) {
	path := writeSkills(t)
	cfg := "engine:\n  mode: spiral\n  bob_amplitude: 0\n"
	if err := os.WriteFile(".skillorbit.yaml", []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "simulate", path, "--json", "--frames", "1", "--every", "1")
	if err != nil {
		t.Fatal(err)
	}
	var f engine.Frame
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &f); err != nil {
		t.Fatal(err)
	}
	if f.Mode != "spiral" {
		t.Errorf("mode = %q, want spiral from config file", f.Mode)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"canceled", context.Canceled, 130},
		{"wrapped canceled", fmt.Errorf("simulate: %w", context.Canceled), 130},
		{"invalid mode", errors.New(errors.ErrCodeInvalidMode, "unknown mode %q", "zigzag"), 2},
		{"invalid input", errors.New(errors.ErrCodeInvalidInput, "bad"), 2},
		{"duplicate name", &errors.DuplicateNameError{Name: "Go", First: 0, Second: 1}, 1},
		{"missing file", errors.New(errors.ErrCodeFileNotFound, "nope.yaml"), 1},
		{"plain", os.ErrPermission, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.Wrap(errors.ErrCodeParse, os.ErrNotExist, "decode skills.yaml"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for i, want := range []string{"decode skills.yaml", "PARSE_ERROR", os.ErrNotExist.Error()} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}

	buf.Reset()
	PrintError(&buf, &errors.DuplicateNameError{Name: "Go", First: 0, Second: 2})
	if !strings.Contains(buf.String(), `"Go" (entries 0 and 2)`) {
		t.Errorf("duplicate error output = %q", buf.String())
	}
}

func TestVerboseFlag(t *testing.T) {
	path := writeSkills(t)
	t.Cleanup(observability.Reset)

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"validate", path, "-v"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("log level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestCompleteModes(t *testing.T) {
	writeSkills(t)

	out, err := run(t, "__complete", "render", "skills.yaml", "--mode", "s")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "spiral\t") {
		t.Errorf("mode completion missing spiral: %q", out)
	}
	if strings.Contains(out, "orbit") {
		t.Errorf("mode completion ignored prefix: %q", out)
	}
	if !strings.Contains(out, ":4") {
		t.Errorf("mode completion should disable file completion: %q", out)
	}
}

func TestCompleteSkillsFile(t *testing.T) {
	writeSkills(t)

	out, err := run(t, "__complete", "validate", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{"json", "toml", "yaml"} {
		if !strings.Contains(out, ext) {
			t.Errorf("file completion missing %q: %q", ext, out)
		}
	}
	if !strings.Contains(out, ":8") {
		t.Errorf("file completion should filter by extension: %q", out)
	}

	out, err = run(t, "__complete", "validate", "skills.yaml", "")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "yaml") || !strings.Contains(out, ":4") {
		t.Errorf("second argument should not complete files: %q", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	writeSkills(t)

	out, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "skillorbit") {
		t.Error("bash completion does not mention skillorbit")
	}
}
