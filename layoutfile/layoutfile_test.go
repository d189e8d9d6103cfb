// SPDX-License-Identifier: Unlicense OR MIT

package layoutfile

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/boxlayout/boxlayout/component"
	"github.com/boxlayout/boxlayout/layout"
	"github.com/boxlayout/boxlayout/unit"
)

const page = `
orientation = "top-down"

[[item]]
kind = "component"
name = "header"
min_height = 40
max_height = 40

[[item]]
kind = "layout"
orientation = "left-to-right"
  [[item.item]]
  name = "left"
  [[item.item]]
  kind = "spacer"
  stretch = [3.0, 1.0]

[[item]]
name = "footer"
`

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(page))
	if err != nil {
		t.Fatal(err)
	}
	root := component.NewPanel("root")
	root.SetBounds(image.Rect(0, 0, 400, 240))
	l, panels, err := f.Build(root)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 3 || l.Orientation() != layout.TopDown {
		t.Fatalf("got %d items in %v", l.Len(), l.Orientation())
	}
	want := map[string]image.Rectangle{
		"header": image.Rect(0, 0, 400, 40),
		"left":   image.Rect(0, 40, 100, 140),
		"footer": image.Rect(0, 140, 400, 240),
	}
	if len(panels) != len(want) {
		t.Errorf("got %d panels, want %d", len(panels), len(want))
	}
	for name, r := range want {
		p, ok := panels[name]
		if !ok {
			t.Errorf("no panel %q", name)
			continue
		}
		if got := p.Bounds(); got != r {
			t.Errorf("%s: got %v, want %v", name, got, r)
		}
	}
	if n := len(root.Children()); n != 3 {
		t.Errorf("owner has %d children, want 3", n)
	}
}

func TestBuildLabeled(t *testing.T) {
	f, err := Parse([]byte(`
[[item]]
kind = "labeled"
name = "email"
label = "E-mail"
`))
	if err != nil {
		t.Fatal(err)
	}
	root := component.NewPanel("root")
	root.SetBounds(image.Rect(0, 0, 100, 100))
	l, panels, err := f.Build(root)
	if err != nil {
		t.Fatal(err)
	}
	email := panels["email"]
	it := l.LayoutItem(email)
	if it == nil || it.Label() == nil {
		t.Fatal("no labeled item for email")
	}
	if got := it.Label().Text(); got != "E-mail" {
		t.Errorf("label text %q, want %q", got, "E-mail")
	}
	h := it.Label().FontHeight()
	if got, want := email.Bounds(), image.Rect(0, h, 100, 100); got != want {
		t.Errorf("email got %v, want %v", got, want)
	}
}

func TestBuildDPI(t *testing.T) {
	f, err := Parse([]byte(`
dpi = 320.0

[[item]]
name = "header"
min_height = 20
max_height = 20

[[item]]
kind = "labeled"
name = "email"
`))
	if err != nil {
		t.Fatal(err)
	}
	root := component.NewPanel("root")
	root.SetBounds(image.Rect(0, 0, 100, 200))
	l, panels, err := f.Build(root)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := panels["header"].Bounds(), image.Rect(0, 0, 100, 40); got != want {
		t.Errorf("header got %v, want %v", got, want)
	}
	label := l.LayoutItem(panels["email"]).Label()
	if label.Metric != unit.DPI(320) {
		t.Errorf("label metric %+v, want %+v", label.Metric, unit.DPI(320))
	}
	h := label.FontHeight()
	if got, want := panels["email"].Bounds(), image.Rect(0, 40+h, 100, 200); got != want {
		t.Errorf("email got %v, want %v", got, want)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		owner bool
		err   string
	}{
		{"kind", "[[item]]\nkind = \"grid\"", true, `unknown kind "grid"`},
		{"root orientation", "orientation = \"diagonal\"", true, `unknown orientation "diagonal"`},
		{"nested orientation", "[[item]]\nkind = \"layout\"\norientation = \"up\"", true, `unknown orientation "up"`},
		{"duplicate", "[[item]]\nname = \"a\"\n[[item]]\nname = \"a\"", true, `item[1]: duplicate name "a"`},
		{"stretch", "[[item]]\nstretch = [1.0, 2.0, 3.0]", true, "stretch has 3 elements"},
		{"unnamed label", "[[item]]\nkind = \"labeled\"", true, "labeled item without name"},
		{"no owner", "[[item]]\nkind = \"labeled\"\nname = \"x\"", false, "labeled item without owner"},
		{"named spacer", "[[item]]\nkind = \"spacer\"\nname = \"gap\"", true, `spacer "gap" cannot be named`},
		{"nested", "[[item]]\nname = \"a\"\n  [[item.item]]\n  name = \"b\"", true, "component item with nested items"},
		{"dpi", "dpi = -1.0", true, "negative dpi"},
		{"layout stretch", "[[item]]\nkind = \"layout\"\nstretch = [5.0, 5.0]", true, "layout item cannot set stretch"},
		{"deep", "[[item]]\nkind = \"layout\"\n  [[item.item]]\n  kind = \"bogus\"", true, `item[0]: item[0]: unknown kind "bogus"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse([]byte(tc.src))
			if err != nil {
				t.Fatal(err)
			}
			var owner component.Container
			if tc.owner {
				owner = component.NewPanel("root")
			}
			_, _, err = f.Build(owner)
			if err == nil {
				t.Fatal("Build succeeded")
			}
			if !strings.Contains(err.Error(), tc.err) {
				t.Errorf("error %q does not mention %q", err, tc.err)
			}
		})
	}
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse([]byte("[[item]]\nwidth = 3"))
	if err == nil {
		t.Fatal("unknown key accepted")
	}
	if !strings.Contains(err.Error(), "width") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestParseSyntax(t *testing.T) {
	if _, err := Parse([]byte("[[item]\n")); err == nil {
		t.Fatal("malformed TOML accepted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.toml")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Items) != 3 || len(f.Items[1].Items) != 2 {
		t.Errorf("decoded %d items", len(f.Items))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestParseOrientation(t *testing.T) {
	for s, want := range map[string]layout.Orientation{
		"":              layout.TopDown,
		"top-down":      layout.TopDown,
		"bottom-up":     layout.BottomUp,
		"left-to-right": layout.LeftToRight,
		"right-to-left": layout.RightToLeft,
	} {
		got, err := ParseOrientation(s)
		if err != nil || got != want {
			t.Errorf("ParseOrientation(%q) = %v, %v, want %v", s, got, err, want)
		}
	}
}
