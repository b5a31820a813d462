package flatmark

// Theme defines semantic color mappings using ANSI color indices (0-15)
// for the preview consumer. The user's terminal theme determines the
// actual RGB values, so the preview automatically matches any color
// scheme.
type Theme struct {
	Accent int // Heading content
	Link   int // Link labels and destinations
	Muted  int // Code span delimiters, horizontal rules
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent: 5,
		Link:   4,
		Muted:  8,
	}
}
