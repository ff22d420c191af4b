package entity

// Theme preferencia de modo de visualización.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ValidTheme indica si s es exactamente "light" o "dark".
func ValidTheme(s string) bool {
	return Theme(s) == ThemeLight || Theme(s) == ThemeDark
}

// Opposite devuelve el tema contrario.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
