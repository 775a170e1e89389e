// Package style holds the seeded table of UI style presets.
//
// Integration example:
//
//	preset, err := style.Get("BigDark")
//	if err != nil {
//		return err
//	}
//	label.SetFont(preset.FontFace, preset.FontSize)
//	label.SetColors(preset.TextColor, preset.BGInactive)
package style
