// Package theme provides the color and spacing tables widgets look up by
// interaction state. A Theme satisfies ui.Style.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/ui"
)

// Hex is a color written as "#RRGGBB" or "#RRGGBBAA" in theme files.
type Hex colors.Color

func (h *Hex) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	c, err := colors.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*h = Hex(c)
	return nil
}

func (h Hex) MarshalYAML() (any, error) { return colors.Color(h).Hex(), nil }

type Theme struct {
	BackgroundFocused  Hex `yaml:"background_focused"`
	BackgroundInactive Hex `yaml:"background_inactive"`
	BorderFocused      Hex `yaml:"border_focused"`
	BorderInactive     Hex `yaml:"border_inactive"`
	TitleFocused       Hex `yaml:"title_focused"`
	TitleInactive      Hex `yaml:"title_inactive"`
	TextFocused        Hex `yaml:"text_focused"`
	TextInactive       Hex `yaml:"text_inactive"`
	ButtonNormal       Hex `yaml:"button_normal"`
	ButtonHovered      Hex `yaml:"button_hovered"`
	ButtonPressed      Hex `yaml:"button_pressed"`
	ButtonInactive     Hex `yaml:"button_inactive"`
	TabSelected        Hex `yaml:"tab_selected"`
	ScrollbarFocused   Hex `yaml:"scrollbar_focused"`
	ScrollbarInactive  Hex `yaml:"scrollbar_inactive"`

	MarginPx       float32 `yaml:"margin"`
	MarginButtonPx float32 `yaml:"margin_button"`
	TitleHeightPx  float32 `yaml:"title_height"`
	FontSizePx     float32 `yaml:"font_size"`
}

var _ ui.Style = (*Theme)(nil)

func Default() *Theme {
	return &Theme{
		BackgroundFocused:  Hex{0.93, 0.93, 0.93, 1},
		BackgroundInactive: Hex{0.87, 0.87, 0.87, 1},
		BorderFocused:      Hex{0.27, 0.27, 0.27, 1},
		BorderInactive:     Hex{0.6, 0.6, 0.6, 1},
		TitleFocused:       Hex{0, 0, 0, 1},
		TitleInactive:      Hex{0.4, 0.4, 0.4, 1},
		TextFocused:        Hex{0, 0, 0, 1},
		TextInactive:       Hex{0.4, 0.4, 0.4, 1},
		ButtonNormal:       Hex{0.8, 0.8, 0.8, 1},
		ButtonHovered:      Hex{0.67, 0.67, 0.67, 1},
		ButtonPressed:      Hex{0.5, 0.5, 0.5, 1},
		ButtonInactive:     Hex{0.85, 0.85, 0.85, 1},
		TabSelected:        Hex{0.25, 0.4, 0.7, 1},
		ScrollbarFocused:   Hex{0.5, 0.5, 0.5, 1},
		ScrollbarInactive:  Hex{0.7, 0.7, 0.7, 1},

		MarginPx:       2,
		MarginButtonPx: 3,
		TitleHeightPx:  14,
		FontSizePx:     13,
	}
}

// Load reads a YAML theme over Default. A missing file yields Default.
func Load(path string) (*Theme, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("theme: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("theme: decode %q: %w", path, err)
	}
	return t, nil
}

// Save writes the theme as YAML.
func (t *Theme) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("theme: encode: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func pick(focused bool, on, off Hex) colors.Color {
	if focused {
		return colors.Color(on)
	}
	return colors.Color(off)
}

func (t *Theme) Background(focused bool) colors.Color {
	return pick(focused, t.BackgroundFocused, t.BackgroundInactive)
}

func (t *Theme) WindowBorder(focused bool) colors.Color {
	return pick(focused, t.BorderFocused, t.BorderInactive)
}

func (t *Theme) Title(focused bool) colors.Color {
	return pick(focused, t.TitleFocused, t.TitleInactive)
}

func (t *Theme) Text(focused bool) colors.Color {
	return pick(focused, t.TextFocused, t.TextInactive)
}

func (t *Theme) Scrollbar(focused bool) colors.Color {
	return pick(focused, t.ScrollbarFocused, t.ScrollbarInactive)
}

func (t *Theme) ButtonBackground(focused, hovered, pressed bool) colors.Color {
	switch {
	case !focused:
		return colors.Color(t.ButtonInactive)
	case pressed:
		return colors.Color(t.ButtonPressed)
	case hovered:
		return colors.Color(t.ButtonHovered)
	}
	return colors.Color(t.ButtonNormal)
}

func (t *Theme) TabbarBackground(focused, selected, hovered, pressed bool) colors.Color {
	switch {
	case !focused && selected:
		return colors.Color(t.TabSelected).Scale(0.8)
	case !focused:
		return colors.Color(t.ButtonInactive)
	case pressed:
		return colors.Color(t.ButtonPressed)
	case selected:
		return colors.Color(t.TabSelected)
	case hovered:
		return colors.Color(t.ButtonHovered)
	}
	return colors.Color(t.ButtonNormal)
}

func (t *Theme) Margin() float32       { return t.MarginPx }
func (t *Theme) MarginButton() float32 { return t.MarginButtonPx }
func (t *Theme) TitleHeight() float32  { return t.TitleHeightPx }
func (t *Theme) FontSize() float32     { return t.FontSizePx }
