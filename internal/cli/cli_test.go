package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/hex"
	"github.com/matzehuels/hexboard/pkg/observability"
	"github.com/matzehuels/hexboard/pkg/render/styles"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.Execute()
	return ansi.ReplaceAllString(out.String(), ""), err
}

func TestRenderWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hex.svg")

	out, err := run(t, "render", "-t", "hex", "-R", "1", "-o", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("output does not start with <svg: %.40q", data)
	}
	if got := strings.Count(string(data), "<polygon"); got != 7 {
		t.Errorf("polygons = %d, want 7", got)
	}
	if !strings.Contains(out, path) {
		t.Errorf("stdout %q should list %s", out, path)
	}
}

func TestRenderMultipleFormats(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "render", "-t", "tri", "-S", "3", "-f", "svg,json,png", "-o", filepath.Join(dir, "tri.svg"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"tri.svg", "tri.json", "tri.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRenderExportToStdout(t *testing.T) {
	out, err := run(t, "render", "-t", "rect", "-W", "4", "-H", "3", "-E", "-o", "-")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "0 1 1 1 1\n0 1 1 1 1\n1 1 1 1 0\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"stdout with two formats", []string{"render", "-f", "svg,png", "-o", "-"}, errors.ErrCodeInvalidInput},
		{"unknown format", []string{"render", "-f", "gif", "-o", "-"}, errors.ErrCodeInvalidFormat},
		{"bad fill", []string{"render", "--fill", "two=red", "-o", "-"}, errors.ErrCodeInvalidInput},
		{"unknown color", []string{"render", "--fill", "2=notacolor", "-o", "-"}, errors.ErrCodeInvalidInput},
		{"negative radius", []string{"render", "--radius=-1", "-o", "-"}, errors.ErrCodeInvalidShape},
		{"negative edge", []string{"render", "--edge=-5", "-o", "-"}, errors.ErrCodeInvalidInput},
		{"zero edge", []string{"render", "-e", "0", "-f", "json", "-o", "-"}, errors.ErrCodeInvalidInput},
		{"zero scale", []string{"render", "--scale", "0", "-f", "png", "-o", "-"}, errors.ErrCodeInvalidInput},
		{"zero width", []string{"render", "-t", "rho", "-W", "0", "-o", "-"}, errors.ErrCodeInvalidShape},
		{"zero height", []string{"render", "-t", "rect", "-H", "0", "-o", "-"}, errors.ErrCodeInvalidShape},
		{"zero size", []string{"render", "-t", "tri", "-S", "0", "-o", "-"}, errors.ErrCodeInvalidShape},
		{"export zero width", []string{"export", "-t", "rho", "-W", "0", "-H", "2", "-o", "-"}, errors.ErrCodeInvalidShape},
		{"missing input", []string{"render", "-i", "no-such-board.txt", "-o", "-"}, errors.ErrCodeIO},
		{"missing config", []string{"export", "-c", "no-such-config.toml"}, errors.ErrCodeIO},
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

func TestRenderExportEmptyBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("0 0\n0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	exported, err := run(t, "export", "-i", path, "-o", "-")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	rendered, err := run(t, "render", "-E", "-i", path, "-o", "-")
	if err != nil {
		t.Fatalf("render -E: %v", err)
	}
	if rendered != exported || rendered != "0 0\n0 0\n" {
		t.Errorf("render -E = %q, export = %q, want both %q", rendered, exported, "0 0\n0 0\n")
	}

	if _, err := run(t, "render", "-i", path, "-o", "-"); !errors.Is(err, errors.ErrCodeEmptyBoard) {
		t.Errorf("render svg of empty board error = %v, want %s", err, errors.ErrCodeEmptyBoard)
	}
}

func TestExportToStdout(t *testing.T) {
	out, err := run(t, "export", "-t", "tri", "-S", "3", "-o", "-")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := "1 1 1\n1 1 0\n1 0 0\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestExportDefaultsToBoardFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := run(t, "export", "-t", "hex", "-R", "0"); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile("board.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1\n" {
		t.Errorf("board.txt = %q, want %q", data, "1\n")
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	cfg := "[board]\ntype = \"rho\"\nwidth = 3\nheight = 2\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "export", "-c", path, "-o", "-")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := "1 1 1\n1 1 1\n"; out != want {
		t.Errorf("config only: stdout = %q, want %q", out, want)
	}

	out, err = run(t, "export", "-c", path, "-W", "4", "-o", "-")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := "1 1 1 1\n1 1 1 1\n"; out != want {
		t.Errorf("flag override: stdout = %q, want %q", out, want)
	}
}

func TestConfigOutputPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.yaml")
	target := filepath.Join(dir, "from-config.svg")
	cfg := "board:\n  type: hex\n  radius: 1\nrender:\n  output: " + target + "\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "render", "-c", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("config output not written: %v", err)
	}
}

func TestExportConfigOutputPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.toml")
	base := filepath.Join(dir, "out", "board")
	cfg := "[board]\ntype = \"hex\"\nradius = 0\n\n[render]\noutput = \"" + filepath.ToSlash(base) + "\"\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "export", "-c", path); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(base + ".txt")
	if err != nil {
		t.Fatalf("config output not used: %v", err)
	}
	if string(data) != "1\n" {
		t.Errorf("%s.txt = %q, want %q", base, data, "1\n")
	}

	if _, err := run(t, "render", "-c", path, "-f", "json"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("render ignored the config output: %v", err)
	}
}

type writeRecorder struct {
	observability.NoopFileHooks
	paths []string
	sizes []int
}

func (h *writeRecorder) OnFileWrite(_ context.Context, path string, size int, _ error) {
	h.paths = append(h.paths, path)
	h.sizes = append(h.sizes, size)
}

func TestExportReportsFileWrite(t *testing.T) {
	hooks := &writeRecorder{}
	observability.SetFileHooks(hooks)
	t.Cleanup(observability.Reset)

	path := filepath.Join(t.TempDir(), "tri.txt")
	if _, err := run(t, "export", "-t", "tri", "-S", "3", "-o", path); err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(hooks.paths) != 1 || hooks.paths[0] != path {
		t.Fatalf("writes = %v, want [%s]", hooks.paths, path)
	}
	if want := len("1 1 1\n1 1 0\n1 0 0\n"); hooks.sizes[0] != want {
		t.Errorf("size = %d, want %d", hooks.sizes[0], want)
	}
}

func TestPreview(t *testing.T) {
	out, err := run(t, "preview", "-t", "hex", "-R", "2", "--fill", "1=tomato")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if got := strings.Count(out, iconCell); got != 19+1 {
		t.Errorf("cell glyphs = %d, want 19 cells plus one legend swatch", got)
	}
	if !strings.Contains(out, "type 1") || !strings.Contains(out, "19 cells") {
		t.Errorf("preview legend missing in %q", out)
	}
}

func TestPreviewLines(t *testing.T) {
	g, err := board.Hexagonal(1)
	if err != nil {
		t.Fatal(err)
	}
	p := newPalette(styles.Default())

	tests := []struct {
		name string
		o    hex.Orientation
		want []string
	}{
		{"pointy", hex.PointyTop, []string{" ⬢ ⬢", "⬢ ⬢ ⬢", " ⬢ ⬢"}},
		{"flat", hex.FlatTop, []string{"  ⬢", "⬢   ⬢", "  ⬢", "⬢   ⬢", "  ⬢"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := previewLines(g, tt.o, false, p)
			for i := range lines {
				lines[i] = ansi.ReplaceAllString(lines[i], "")
			}
			if strings.Join(lines, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("previewLines =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output  string
		format  string
		formats int
		want    string
	}{
		{"", "svg", 1, "board.svg"},
		{"", "png", 2, "board.png"},
		{"out.svg", "svg", 1, "out.svg"},
		{"out.svg", "png", 2, "out.png"},
		{"out/board", "json", 2, "out/board.json"},
		{"board.v2", "svg", 2, "board.v2.svg"},
		{"-", "txt", 1, "-"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.format, tt.formats); got != tt.want {
			t.Errorf("outputPath(%q, %q, %d) = %q, want %q", tt.output, tt.format, tt.formats, got, tt.want)
		}
	}
}

func TestCompletion(t *testing.T) {
	out, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "hexboard") {
		t.Error("bash completion should mention the command name")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "hexboard version ") {
		t.Errorf("version output = %q", out)
	}
}
