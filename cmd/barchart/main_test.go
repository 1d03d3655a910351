package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ggchart"
	"github.com/spf13/pflag"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := ggchart.Logger()
	t.Cleanup(func() { ggchart.SetLogger(orig) })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeImage(t *testing.T, path string) (image.Image, string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img, format
}

func TestRenderFromFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.png")
	stdout, err := execute(t, "render",
		"--width", "720", "--height", "480",
		"--segments-x", "18", "--bar-width", "25",
		"--values", "5,250,10,0,256,3,9",
		"--colors", "#345C7D,#F7B094",
		"-o", out,
	)
	if err != nil {
		t.Fatalf("render error = %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "720x480, 7 bars") {
		t.Errorf("stdout = %q", stdout)
	}

	img, format := decodeImage(t, out)
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if b := img.Bounds(); b.Dx() != 720 || b.Dy() != 480 {
		t.Errorf("bounds = %v, want 720x480", b)
	}
}

func TestRenderFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "chart.yaml")
	yml := `width: 400
height: 300
titleText: Uptime
yMax: 50
graphSegments_X: 6
xSegmentColor: rgba(255,255,255,0.5)
entries:
  - value: 12
    color: "#345C7D"
  - value: 40
  - value: 7
    color: steelblue
`
	if err := os.WriteFile(cfgPath, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "chart.jpg")
	stdout, err := execute(t, "render", "--config", cfgPath, "--height", "320", "-o", out)
	if err != nil {
		t.Fatalf("render error = %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "400x320, 3 bars") {
		t.Errorf("stdout = %q, want flag height to override the file", stdout)
	}
	if _, format := decodeImage(t, out); format != "jpeg" {
		t.Errorf("format = %q, want jpeg from the .jpg extension", format)
	}
}

func TestRenderFromJSONFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "chart.json")
	js := `{"width": 300, "height": 200, "bar_width": 15, "entries": [{"value": 1}, {"value": 2}]}`
	if err := os.WriteFile(cfgPath, []byte(js), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "chart.png")
	stdout, err := execute(t, "render", "-c", cfgPath, "-o", out)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(stdout, "300x200, 2 bars") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestEntryColors(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	green := color.NRGBA{G: 128, A: 255}
	file := chartFile{Entries: []fileEntry{
		{Value: 1, Color: "green"},
		{Value: 2},
		{Value: 3, Color: "green"},
	}}

	tests := []struct {
		name string
		args []string
		want []color.Color
	}{
		{"file colors", nil, []color.Color{green, ggchart.MustParseColor(defaultColors[1]), green}},
		{"flag colors replace file colors", []string{"--colors", "red,blue"}, []color.Color{red, blue, red}},
		{"flag colors cycle over values", []string{"--values", "4,5", "--colors", "blue"}, []color.Color{blue, blue}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &renderOptions{}
			fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
			fs.Float64SliceVar(&o.values, "values", nil, "")
			fs.StringSliceVar(&o.colors, "colors", nil, "")
			if err := fs.Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			entries, err := o.entries(fs, file)
			if err != nil {
				t.Fatalf("entries() error = %v", err)
			}
			if len(entries) != len(tt.want) {
				t.Fatalf("%d entries, want %d", len(entries), len(tt.want))
			}
			for i, e := range entries {
				if e.Color != tt.want[i] {
					t.Errorf("entry %d color = %v, want %v", i, e.Color, tt.want[i])
				}
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	unknownKey := filepath.Join(dir, "typo.yaml")
	if err := os.WriteFile(unknownKey, []byte("widht: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		is   error
		msg  string
	}{
		{
			name: "bad segments",
			args: []string{"render", "--segments-y", "1", "-o", filepath.Join(dir, "a.png")},
			is:   ggchart.ErrInvalidSegments,
		},
		{
			name: "bad entry color",
			args: []string{"render", "--values", "1,2", "--colors", "nope", "-o", filepath.Join(dir, "b.png")},
			is:   ggchart.ErrInvalidColor,
		},
		{
			name: "bad config color",
			args: []string{"render", "--title-color", "rgb(1)", "-o", filepath.Join(dir, "c.png")},
			is:   ggchart.ErrInvalidColor,
		},
		{
			name: "missing config file",
			args: []string{"render", "--config", filepath.Join(dir, "missing.yaml")},
			is:   os.ErrNotExist,
		},
		{
			name: "unknown config key",
			args: []string{"render", "--config", unknownKey},
			msg:  "widht",
		},
		{
			name: "unwritable output",
			args: []string{"render", "-o", filepath.Join(dir, "nope", "chart.png")},
			is:   os.ErrNotExist,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("render succeeded, want error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %v, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestRenderVerbose(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.png")
	stdout, err := execute(t, "render", "--values", "1,2,3", "--verbose", "-o", out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "chart created") || !strings.Contains(stdout, "ggchart: bar") {
		t.Errorf("verbose output missing chart logs:\n%s", stdout)
	}
}

func TestVersion(t *testing.T) {
	stdout, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(stdout) != "barchart "+ggchart.Version {
		t.Errorf("version output = %q", stdout)
	}
}
