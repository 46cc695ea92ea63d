// Package i18n provides the translate(key) capability and the locale
// direction flag the renderers consume. Locale tables are embedded; the
// rendering core does not own locale data beyond these lookups.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
)

//go:embed locales/*.json
var localeFS embed.FS

const fallbackLang = "en"

// rtlLangs lists the supported right-to-left locales.
var rtlLangs = map[string]bool{"ar": true}

var tables = loadTables()

func loadTables() map[string]map[string]string {
	out := map[string]map[string]string{}
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		panic(fmt.Sprintf("i18n: reading embedded locales: %v", err))
	}
	for _, e := range entries {
		data, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("i18n: reading %s: %v", e.Name(), err))
		}
		table := map[string]string{}
		if err := json.Unmarshal(data, &table); err != nil {
			panic(fmt.Sprintf("i18n: parsing %s: %v", e.Name(), err))
		}
		lang := e.Name()[:len(e.Name())-len(path.Ext(e.Name()))]
		out[lang] = table
	}
	return out
}

// Translator resolves keys for one locale, falling back to English and
// finally to the key itself so a missing entry never breaks rendering.
type Translator struct {
	lang  string
	table map[string]string
}

// New returns a Translator for the given language code. Unknown codes
// resolve to the fallback locale.
func New(lang string) *Translator {
	table, ok := tables[lang]
	if !ok {
		lang = fallbackLang
		table = tables[fallbackLang]
	}
	return &Translator{lang: lang, table: table}
}

func (t *Translator) Lang() string { return t.lang }

// RTL reports whether the locale lays text out right-to-left.
func (t *Translator) RTL() bool { return rtlLangs[t.lang] }

// T translates a key.
func (t *Translator) T(key string) string {
	if v, ok := t.table[key]; ok {
		return v
	}
	if v, ok := tables[fallbackLang][key]; ok {
		return v
	}
	return key
}
