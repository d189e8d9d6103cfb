// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layoutfile builds layouts from TOML descriptions.

A description names the root orientation and lists items in order.
Items of kind "layout" nest their own item list:

	orientation = "top-down"

	[[item]]
	kind = "component"
	name = "header"
	min_height = 40
	max_height = 40

	[[item]]
	kind = "labeled"
	name = "email"
	label = "E-mail"

	[[item]]
	kind = "layout"
	orientation = "right-to-left"
	  [[item.item]]
	  kind = "component"
	  name = "ok"
	  stretch = [1.0, 1.0]
	  [[item.item]]
	  kind = "spacer"
	  stretch = [3.0, 1.0]

Every named component becomes a component.Panel child of the owner.
Sizes are pixels unless the description sets dpi, in which case they
are dp.
*/
package layoutfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/boxlayout/boxlayout/component"
	"github.com/boxlayout/boxlayout/layout"
	"github.com/boxlayout/boxlayout/unit"
)

// File is a decoded layout description.
type File struct {
	Orientation string `toml:"orientation"`
	// DPI, if set, makes sizes density independent: they are read as
	// dp and converted to pixels for a display of DPI dots per inch.
	// Labels scale with it. Without DPI sizes are pixels.
	DPI   float32 `toml:"dpi"`
	Items []Item  `toml:"item"`
}

// Item describes one layout item.
type Item struct {
	// Kind is one of "component", "spacer", "layout" or "labeled".
	Kind string `toml:"kind"`
	Name string `toml:"name"`
	// Label is the label text of a labeled item. It defaults to Name.
	Label string `toml:"label"`
	// Orientation of a layout item, or of the group formed by a
	// labeled item and its label.
	Orientation string    `toml:"orientation"`
	Stretch     []float32 `toml:"stretch"`
	MinWidth    *int      `toml:"min_width"`
	MaxWidth    *int      `toml:"max_width"`
	MinHeight   *int      `toml:"min_height"`
	MaxHeight   *int      `toml:"max_height"`
	Items       []Item    `toml:"item"`
}

// Parse decodes a description. Unknown keys are an error.
func Parse(data []byte) (*File, error) {
	f := new(File)
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("layoutfile: %s", serr.String())
		}
		return nil, fmt.Errorf("layoutfile: %w", err)
	}
	return f, nil
}

// Load reads and decodes the description at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseOrientation converts the name of an orientation. The empty
// string is TopDown.
func ParseOrientation(s string) (layout.Orientation, error) {
	switch s {
	case "", "top-down":
		return layout.TopDown, nil
	case "bottom-up":
		return layout.BottomUp, nil
	case "left-to-right":
		return layout.LeftToRight, nil
	case "right-to-left":
		return layout.RightToLeft, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

// Build constructs the layout for owner and lays it out once. It
// returns the layout and the panels created for named items. Labeled
// items require an owner.
func (f *File) Build(owner component.Container) (*layout.Layout, map[string]*component.Panel, error) {
	o, err := ParseOrientation(f.Orientation)
	if err != nil {
		return nil, nil, fmt.Errorf("layoutfile: %w", err)
	}
	if f.DPI < 0 {
		return nil, nil, fmt.Errorf("layoutfile: negative dpi %g", f.DPI)
	}
	b := &builder{owner: owner, panels: make(map[string]*component.Panel)}
	if f.DPI > 0 {
		b.metric = unit.DPI(f.DPI)
	}
	l := layout.New(o, owner)
	l.SetMetric(b.metric)
	if err := b.items(l, f.Items); err != nil {
		return nil, nil, fmt.Errorf("layoutfile: %w", err)
	}
	l.UpdateGeometry()
	return l, b.panels, nil
}

type builder struct {
	owner  component.Container
	metric unit.Metric
	panels map[string]*component.Panel
}

func (b *builder) items(l *layout.Layout, items []Item) error {
	for i, it := range items {
		if err := b.item(l, it); err != nil {
			return fmt.Errorf("item[%d]: %w", i, err)
		}
	}
	return nil
}

func (b *builder) item(l *layout.Layout, it Item) error {
	if it.Kind == "" {
		it.Kind = "component"
	}
	if len(it.Items) > 0 && it.Kind != "layout" {
		return fmt.Errorf("%s item with nested items", it.Kind)
	}
	var li *layout.Item
	switch it.Kind {
	case "component":
		c, err := b.panel(it.Name)
		if err != nil {
			return err
		}
		li = l.AddComponent(c, layout.Append)
	case "spacer":
		if it.Name != "" {
			return fmt.Errorf("spacer %q cannot be named", it.Name)
		}
		li = l.AddSpacer(1, 1, layout.Append)
	case "labeled":
		if it.Name == "" {
			return errors.New("labeled item without name")
		}
		if b.owner == nil {
			return errors.New("labeled item without owner")
		}
		o, err := ParseOrientation(it.Orientation)
		if err != nil {
			return err
		}
		c, err := b.panel(it.Name)
		if err != nil {
			return err
		}
		txt := it.Label
		if txt == "" {
			txt = it.Name
		}
		li = l.AddLabeledText(c, txt, o, layout.Append)
	case "layout":
		if len(it.Stretch) > 0 {
			return errors.New("layout item cannot set stretch, it is the sum of its items")
		}
		o, err := ParseOrientation(it.Orientation)
		if err != nil {
			return err
		}
		sub := l.AddSubLayout(o, layout.Append, nil)
		if err := b.items(&sub.Layout, it.Items); err != nil {
			return err
		}
		li = sub.Item()
	default:
		return fmt.Errorf("unknown kind %q", it.Kind)
	}
	return b.configure(li, it)
}

// panel creates the panel for a component item and adds it to the
// owner. Anonymous panels are not recorded.
func (b *builder) panel(name string) (*component.Panel, error) {
	if _, exists := b.panels[name]; exists {
		return nil, fmt.Errorf("duplicate name %q", name)
	}
	p := component.NewPanel(name)
	if b.owner != nil {
		b.owner.AddAndMakeVisible(p)
	}
	if name != "" {
		b.panels[name] = p
	}
	return p, nil
}

func (b *builder) configure(li *layout.Item, it Item) error {
	switch len(it.Stretch) {
	case 0:
	case 2:
		li.SetStretch(it.Stretch[0], it.Stretch[1])
	default:
		return fmt.Errorf("stretch has %d elements, want 2", len(it.Stretch))
	}
	if v := it.MinWidth; v != nil {
		li.SetMinimumWidth(b.px(*v))
	}
	if v := it.MaxWidth; v != nil {
		li.SetMaximumWidth(b.px(*v))
	}
	if v := it.MinHeight; v != nil {
		li.SetMinimumHeight(b.px(*v))
	}
	if v := it.MaxHeight; v != nil {
		li.SetMaximumHeight(b.px(*v))
	}
	return nil
}

func (b *builder) px(v int) int {
	return b.metric.Dp(unit.Dp(v))
}
