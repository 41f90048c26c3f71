package output

import (
	"github.com/fatih/color"

	"github.com/temirov/ftrek/internal/types"
)

// Styler colors entry names by kind. A disabled styler returns names untouched.
type Styler struct {
	enabled bool
	palette map[types.EntryKind]*color.Color
}

// NewStyler builds a styler. The decision is fixed for the styler's lifetime
// and does not consult fatih/color's global terminal detection.
func NewStyler(enabled bool) Styler {
	palette := map[types.EntryKind]*color.Color{
		types.EntryKindDirectory:  color.New(color.FgBlue),
		types.EntryKindSymlink:    color.New(color.FgCyan),
		types.EntryKindExecutable: color.New(color.FgGreen),
	}
	for _, paletteColor := range palette {
		if enabled {
			paletteColor.EnableColor()
		} else {
			paletteColor.DisableColor()
		}
	}
	return Styler{enabled: enabled, palette: palette}
}

// Style returns text wrapped in the color of kind. Regular entries stay plain.
func (styler Styler) Style(text string, kind types.EntryKind) string {
	if !styler.enabled {
		return text
	}
	paletteColor, exists := styler.palette[kind]
	if !exists {
		return text
	}
	return paletteColor.Sprint(text)
}
