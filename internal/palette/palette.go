// Package palette resolves symbolic color roles to concrete hex values.
//
// The seeded presets reference the solarized palette by role name
// (e.g. "solarized-base03"); this package owns the role→hex contract so the
// style table can keep treating roles as opaque strings.
package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"styleboard/internal/style"
)

// ErrUnknownRole is returned when a color role has no palette entry.
var ErrUnknownRole = errors.New("unknown color role")

// Solarized per Ethan Schoonover's published values.
var solarized = map[string]string{
	"solarized-base03":  "#002b36",
	"solarized-base02":  "#073642",
	"solarized-base01":  "#586e75",
	"solarized-base00":  "#657b83",
	"solarized-base0":   "#839496",
	"solarized-base1":   "#93a1a1",
	"solarized-base2":   "#eee8d5",
	"solarized-base3":   "#fdf6e3",
	"solarized-yellow":  "#b58900",
	"solarized-orange":  "#cb4b16",
	"solarized-red":     "#dc322f",
	"solarized-magenta": "#d33682",
	"solarized-violet":  "#6c71c4",
	"solarized-blue":    "#268bd2",
	"solarized-cyan":    "#2aa198",
	"solarized-green":   "#859900",
}

// Scheme is a preset with every color role resolved to a hex value.
type Scheme struct {
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

// Resolve maps one color role to its hex value.
func Resolve(role string) (string, error) {
	hex, ok := solarized[role]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	return hex, nil
}

// ResolvePreset resolves all five color roles of a preset. It fails on the
// first role without a palette entry.
func ResolvePreset(p style.Preset) (Scheme, error) {
	scheme := Scheme{
		Name:     p.Name,
		FontFace: p.FontFace,
		FontSize: p.FontSize,
		Spacing:  p.Spacing,
	}

	fields := []struct {
		role string
		dst  *string
	}{
		{p.TextColor, &scheme.TextColor},
		{p.BGInactive, &scheme.BGInactive},
		{p.BGActive, &scheme.BGActive},
		{p.FGInactive, &scheme.FGInactive},
		{p.FGActive, &scheme.FGActive},
	}
	for _, f := range fields {
		hex, err := Resolve(f.role)
		if err != nil {
			return Scheme{}, err
		}
		*f.dst = hex
	}

	return scheme, nil
}

// IsDark reports whether a hex color reads as dark, using CIE Lab lightness.
// Malformed hex values count as dark so callers fall back to light text.
func IsDark(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return true
	}
	l, _, _ := c.Lab()
	return l < 0.5
}
