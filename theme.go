package flume

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so output
// automatically matches any color scheme.
type Theme struct {
	Accent int // headings, links
	Muted  int // rate gauge, code gutters
	Error  int // error messages
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent: 5,
		Muted:  8,
		Error:  1,
	}
}
