package style

import "errors"

// Seeded preset names.
const (
	BigDark      = "BigDark"
	SmallDark    = "SmallDark"
	BigLight     = "BigLight"
	SmallLight   = "SmallLight"
	DefaultStyle = "default_style"
)

// Preset describes one named bundle of display attributes. Color fields hold
// opaque role identifiers (e.g. "solarized-base03") resolved elsewhere against
// a palette.
type Preset struct {
	Name       string `json:"name"`
	FontFace   string `json:"fontface"`
	FontSize   int    `json:"fontsize"`
	Spacing    int    `json:"spacing"`
	TextColor  string `json:"textcolor"`
	BGInactive string `json:"bg_inactive"`
	BGActive   string `json:"bg_active"`
	FGInactive string `json:"fg_inactive"`
	FGActive   string `json:"fg_active"`
}

// ErrPresetNotFound is returned when a lookup name matches no preset.
var ErrPresetNotFound = errors.New("style preset not found")

var seedOrder = [...]string{BigDark, SmallDark, BigLight, SmallLight, DefaultStyle}

var presets = map[string]Preset{
	BigDark: {
		Name:       BigDark,
		FontFace:   "Sans",
		FontSize:   20,
		Spacing:    6,
		TextColor:  "solarized-base0",
		BGInactive: "solarized-base03",
		BGActive:   "solarized-base2",
		FGInactive: "solarized-base1",
		FGActive:   "solarized-base01",
	},
	SmallDark: {
		Name:       SmallDark,
		FontFace:   "Sans",
		FontSize:   16,
		Spacing:    3,
		TextColor:  "solarized-base0",
		BGInactive: "solarized-base03",
		BGActive:   "solarized-base2",
		FGInactive: "solarized-base1",
		FGActive:   "solarized-base01",
	},
	BigLight: {
		Name:       BigLight,
		FontFace:   "Sans",
		FontSize:   20,
		Spacing:    6,
		TextColor:  "solarized-base00",
		BGInactive: "solarized-base3",
		BGActive:   "solarized-base02",
		FGInactive: "solarized-base01",
		FGActive:   "solarized-base1",
	},
	SmallLight: {
		Name:       SmallLight,
		FontFace:   "Sans",
		FontSize:   16,
		Spacing:    3,
		TextColor:  "solarized-base00",
		BGInactive: "solarized-base3",
		BGActive:   "solarized-base02",
		FGInactive: "solarized-base01",
		FGActive:   "solarized-base1",
	},
	DefaultStyle: {
		Name:       DefaultStyle,
		FontFace:   "Sans",
		FontSize:   20,
		Spacing:    6,
		TextColor:  "solarized-base00",
		BGInactive: "solarized-base3",
		BGActive:   "solarized-base02",
		FGInactive: "solarized-base01",
		FGActive:   "solarized-base1",
	},
}

// Get returns the preset with the given name.
func Get(name string) (Preset, error) {
	preset, ok := presets[name]
	if !ok {
		return Preset{}, ErrPresetNotFound
	}
	return preset, nil
}

// List returns all seeded presets in seed order. The returned slice holds
// copies; mutating it does not affect the table.
func List() []Preset {
	out := make([]Preset, 0, len(seedOrder))
	for _, name := range seedOrder {
		out = append(out, presets[name])
	}
	return out
}

// Names returns the seeded preset names in seed order.
func Names() []string {
	out := make([]string, len(seedOrder))
	copy(out[:], seedOrder[:])
	return out
}

// Default returns the preset consumers fall back to when none is selected.
func Default() Preset {
	return presets[DefaultStyle]
}

// Validate reports whether a preset is structurally usable. The seeded table
// always passes; this guards presets supplied by consuming applications.
func Validate(p Preset) error {
	if p.Name == "" {
		return errors.New("preset name must not be empty")
	}
	if p.FontFace == "" {
		return errors.New("font face must not be empty")
	}
	if p.FontSize <= 0 {
		return errors.New("font size must be positive")
	}
	if p.Spacing < 0 {
		return errors.New("spacing must not be negative")
	}
	return nil
}
