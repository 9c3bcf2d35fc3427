// Package theme holds the fixed set of visual themes a player can pick.
package theme

import "strings"

const DefaultName = "light"

// Theme is a named colour palette for the board page.
type Theme struct {
	Name  string `json:"name"`
	Label string `json:"label"`

	Background string `json:"background"`
	Card       string `json:"card"`
	Cell       string `json:"cell"`
	Highlight  string `json:"highlight"`
	Text       string `json:"text"`
	MarkX      string `json:"mark_x"`
	MarkO      string `json:"mark_o"`
}

var themes = []Theme{
	{
		Name: "light", Label: "Light",
		Background: "#f3f4f6", Card: "#ffffff", Cell: "#f9fafb", Highlight: "#eff6ff",
		Text: "#1f2937", MarkX: "#2563eb", MarkO: "#e11d48",
	},
	{
		Name: "dark", Label: "Dark",
		Background: "#111827", Card: "#1f2937", Cell: "#374151", Highlight: "#1e3a8a",
		Text: "#f9fafb", MarkX: "#60a5fa", MarkO: "#fb7185",
	},
	{
		Name: "ocean", Label: "Ocean",
		Background: "#ecfeff", Card: "#cffafe", Cell: "#a5f3fc", Highlight: "#67e8f9",
		Text: "#164e63", MarkX: "#0e7490", MarkO: "#be123c",
	},
	{
		Name: "sunset", Label: "Sunset",
		Background: "#fff7ed", Card: "#ffedd5", Cell: "#fed7aa", Highlight: "#fdba74",
		Text: "#7c2d12", MarkX: "#9a3412", MarkO: "#6d28d9",
	},
}

// All returns the themes in display order.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Lookup finds a theme by name, ignoring case and surrounding spaces.
func Lookup(name string) (Theme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Default returns the built-in default theme.
func Default() Theme {
	t, _ := Lookup(DefaultName)
	return t
}

// Resolver picks the theme for a stored preference, falling back to a
// configured default.
type Resolver struct {
	fallback Theme
}

// NewResolver returns a resolver whose fallback is defaultName, or the
// built-in default when defaultName is not a known theme.
func NewResolver(defaultName string) *Resolver {
	fallback, ok := Lookup(defaultName)
	if !ok {
		fallback = Default()
	}
	return &Resolver{fallback: fallback}
}

// Resolve returns the theme named by pref. The bool is false when pref was
// missing or unknown and the fallback was used.
func (that *Resolver) Resolve(pref string) (Theme, bool) {
	if t, ok := Lookup(pref); ok {
		return t, true
	}
	return that.fallback, false
}

func (that *Resolver) Fallback() Theme {
	return that.fallback
}
