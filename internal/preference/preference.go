// Package preference reads and writes the per-browser display preferences:
// the theme and the language.
package preference

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/rocketscienceinc/tictactoe-web/internal/i18n"
	"github.com/rocketscienceinc/tictactoe-web/internal/theme"
)

const (
	// ThemeParam is the query parameter used to select a theme.
	ThemeParam = "theme"
	// ThemeCookieName stores the user's theme preference.
	ThemeCookieName = "ttt_theme"

	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "ttt_lang"

	maxAge = 365 * 24 * time.Hour
)

// Preferences are the resolved display settings for one request.
type Preferences struct {
	Theme    theme.Theme
	Language language.Tag

	// set when the value came from a query parameter and should be written back
	persistTheme    bool
	persistLanguage bool
}

type Resolver struct {
	themes     *theme.Resolver
	translator *i18n.Translator
}

func NewResolver(themes *theme.Resolver, translator *i18n.Translator) *Resolver {
	return &Resolver{
		themes:     themes,
		translator: translator,
	}
}

// Resolve reads the preferences from query parameters, then cookies, then
// Accept-Language, then the configured defaults.
func (that *Resolver) Resolve(r *http.Request) Preferences {
	var prefs Preferences

	prefs.Theme, prefs.persistTheme = that.resolveTheme(r)
	prefs.Language, prefs.persistLanguage = that.resolveLanguage(r)

	return prefs
}

// Persist writes back the preferences that came from query parameters.
func (that *Resolver) Persist(w http.ResponseWriter, prefs Preferences) {
	if prefs.persistTheme {
		SetThemeCookie(w, prefs.Theme)
	}
	if prefs.persistLanguage {
		SetLanguageCookie(w, prefs.Language)
	}
}

// LookupTheme validates a theme name submitted by the user.
func (that *Resolver) LookupTheme(name string) (theme.Theme, bool) {
	return that.themes.Resolve(name)
}

func (that *Resolver) Translator() *i18n.Translator {
	return that.translator
}

func (that *Resolver) resolveTheme(r *http.Request) (theme.Theme, bool) {
	if value := strings.TrimSpace(r.URL.Query().Get(ThemeParam)); value != "" {
		if t, ok := that.themes.Resolve(value); ok {
			return t, true
		}
	}

	pref := ""
	if cookie, err := r.Cookie(ThemeCookieName); err == nil {
		pref = cookie.Value
	}

	// unknown or missing values fall back to the default theme
	t, _ := that.themes.Resolve(pref)

	return t, false
}

func (that *Resolver) resolveLanguage(r *http.Request) (language.Tag, bool) {
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := that.translator.Parse(value); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := that.translator.Parse(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		return that.translator.MatchAcceptLanguage(accept), false
	}

	return that.translator.Default(), false
}

// SetThemeCookie persists the selected theme on the response.
func SetThemeCookie(w http.ResponseWriter, t theme.Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookieName,
		Value:    t.Name,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
