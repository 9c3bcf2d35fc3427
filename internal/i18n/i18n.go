// Package i18n translates the page strings and picks the language for a request.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	KeyTitle    = "Tic-Tac-Toe"
	KeyTurn     = "Player %s's turn"
	KeyWinner   = "Player %s wins!"
	KeyDraw     = "It's a draw!"
	KeyNewGame  = "New game"
	KeyTheme    = "Theme"
	KeyLanguage = "Language"
)

var (
	English = language.English
	Kyrgyz  = language.Kirghiz
)

var translations = map[language.Tag]map[string]string{
	English: {
		KeyTitle:    "Tic-Tac-Toe",
		KeyTurn:     "Player %s's turn",
		KeyWinner:   "Player %s wins!",
		KeyDraw:     "It's a draw!",
		KeyNewGame:  "New game",
		KeyTheme:    "Theme",
		KeyLanguage: "Language",
	},
	Kyrgyz: {
		KeyTitle:    "Х-О",
		KeyTurn:     "Оюнчу %s кезеги",
		KeyWinner:   "Оюнчу %s утту!",
		KeyDraw:     "Оюн тең чыкты!",
		KeyNewGame:  "Жаңы оюн",
		KeyTheme:    "Тема",
		KeyLanguage: "Тил",
	},
}

var labels = map[language.Tag]string{
	English: "English",
	Kyrgyz:  "Кыргызча",
}

// Translator holds the message catalogue and the language fallback.
type Translator struct {
	catalog   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
	fallback  language.Tag
}

// New builds the catalogue. defaultLang must be one of the supported languages.
func New(defaultLang string) (*Translator, error) {
	supported := []language.Tag{English, Kyrgyz}

	builder := catalog.NewBuilder(catalog.Fallback(English))
	for _, tag := range supported {
		for key, msg := range translations[tag] {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("failed to register %q for %s: %w", key, tag, err)
			}
		}
	}

	that := &Translator{
		catalog:   builder,
		supported: supported,
		matcher:   language.NewMatcher(supported),
		fallback:  English,
	}

	if strings.TrimSpace(defaultLang) != "" {
		tag, ok := that.Parse(defaultLang)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, defaultLang)
		}
		that.fallback = tag
	}

	return that, nil
}

func (that *Translator) Default() language.Tag {
	return that.fallback
}

func (that *Translator) Supported() []language.Tag {
	return that.supported
}

// Parse maps value onto a supported language.
func (that *Translator) Parse(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Und, false
	}

	_, index, confidence := that.matcher.Match(tag)
	if confidence < language.High {
		return language.Und, false
	}

	return that.supported[index], true
}

// MatchAcceptLanguage picks the best supported language for an Accept-Language header.
func (that *Translator) MatchAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return that.fallback
	}

	_, index, confidence := that.matcher.Match(tags...)
	if confidence == language.No {
		return that.fallback
	}

	return that.supported[index]
}

// Printer returns a printer for tag backed by the catalogue.
func (that *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(that.catalog))
}

// Label returns the native name of a supported language.
func (that *Translator) Label(tag language.Tag) string {
	if label, ok := labels[tag]; ok {
		return label
	}
	return tag.String()
}
