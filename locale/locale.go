// Package locale looks up user-facing strings in the embedded gettext
// catalogs.
package locale

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed po/*.po
var catalogs embed.FS

var (
	current     *gotext.Po
	currentLang string
)

// SetLanguage switches the active catalog. The previous catalog stays in use
// when lang has none.
func SetLanguage(lang string) error {
	data, err := catalogs.ReadFile("po/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("locale: no catalog for %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	current = po
	currentLang = lang
	return nil
}

// Language returns the active language code, empty before SetLanguage.
func Language() string {
	return currentLang
}

// Get translates key, formatting vars into the result. Without an active
// catalog the key itself is returned.
func Get(key string, vars ...any) string {
	if current == nil {
		if len(vars) > 0 {
			return fmt.Sprintf(key, vars...)
		}
		return key
	}
	return current.Get(key, vars...)
}
