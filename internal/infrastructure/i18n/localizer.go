package i18n

import (
	"embed"
	"encoding/json"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Localizer resolves message keys for error responses. Lookup order per key:
// "app.<key>", then "general.<key>", then the raw key unchanged.
type Localizer struct {
	loc *goi18n.Localizer
}

// NewLocalizer builds a localizer for the requested language tag (e.g. "en",
// "pt-BR"); unknown tags fall back to English.
func NewLocalizer(lang string) (*Localizer, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, err
		}
	}

	return &Localizer{loc: goi18n.NewLocalizer(bundle, lang)}, nil
}

// Resolve implements pkg.Localizer.
func (l *Localizer) Resolve(key string) string {
	if key == "" {
		return key
	}
	for _, id := range []string{"app." + key, "general." + key} {
		msg, err := l.loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
		if err == nil && msg != "" {
			return msg
		}
	}
	return key
}
