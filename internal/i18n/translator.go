// Package i18n translates interface keys for the supported languages and
// formats amounts the way the active language expects.
package i18n

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"spendwise/internal/events"
)

// DefaultLanguage is used when the requested language has no catalog.
const DefaultLanguage = "en"

var (
	supported = []language.Tag{language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)

	rtlScripts = map[string]bool{"Arab": true, "Hebr": true, "Thaa": true, "Syrc": true, "Nkoo": true}
)

// Translator resolves keys against the current language with English fallback.
type Translator struct {
	mu      sync.RWMutex
	current string
	bus     events.Publisher
}

// New returns a translator set to initial, or to English when initial is not
// supported.
func New(initial string, bus events.Publisher) *Translator {
	if bus == nil {
		bus = events.Nop{}
	}
	code, ok := Match(initial)
	if !ok {
		code = DefaultLanguage
	}
	return &Translator{current: code, bus: bus}
}

// Match normalises a BCP 47 tag ("ar-SA", "en_US") to a supported code.
func Match(tag string) (string, bool) {
	if strings.TrimSpace(tag) == "" {
		return "", false
	}
	t, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(t)
	if conf < language.High {
		return "", false
	}
	base, _ := supported[idx].Base()
	return base.String(), true
}

// Language returns the current language code.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Available lists the languages with a catalog.
func (t *Translator) Available() []string {
	out := make([]string, 0, len(catalogs))
	for code := range catalogs {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// SetLanguage switches language. It reports whether the language changed and
// publishes LanguageChanged when it did.
func (t *Translator) SetLanguage(tag string) (bool, error) {
	code, ok := Match(tag)
	if !ok {
		return false, fmt.Errorf("unsupported language %q", tag)
	}

	t.mu.Lock()
	if code == t.current {
		t.mu.Unlock()
		return false, nil
	}
	t.current = code
	t.mu.Unlock()

	t.bus.Publish(events.Event{Topic: events.LanguageChanged, Value: code})
	return true, nil
}

// Lookup returns the text for key in the current language, falling back to
// English. ok is false when neither catalog has the key.
func (t *Translator) Lookup(key string) (string, bool) {
	lang := t.Language()
	if s, ok := catalogs[lang][key]; ok {
		return s, true
	}
	if lang != DefaultLanguage {
		if s, ok := catalogs[DefaultLanguage][key]; ok {
			return s, true
		}
	}
	return "", false
}

// Translate returns the text for key. Unknown snake_case keys are shown as a
// readable phrase ("other_income" -> "Other income"); anything else as [KEY].
func (t *Translator) Translate(key string) string {
	if s, ok := t.Lookup(key); ok {
		return s
	}
	return prettify(key)
}

// CategoryLabel translates a category key, bare ("food") or prefixed
// ("category_food") as older data files store it. Keys that are no longer in
// the taxonomy still get a readable label.
func (t *Translator) CategoryLabel(key string) string {
	bare := strings.TrimPrefix(key, categoryPrefix)
	if s, ok := t.Lookup(categoryPrefix + bare); ok {
		return s
	}
	return prettify(bare)
}

// IsRTL reports whether the current language is written right to left.
func (t *Translator) IsRTL() bool {
	tag := language.Make(t.Language())
	script, _ := tag.Script()
	return rtlScripts[script.String()]
}

// FormatAmount renders amount with two decimals and locale grouping, with the
// symbol before the number for LTR languages and after it for RTL ones.
func (t *Translator) FormatAmount(amount decimal.Decimal, symbol string) string {
	p := message.NewPrinter(language.Make(t.Language()))
	f, _ := amount.Round(2).Float64()
	n := p.Sprint(number.Decimal(f, number.Scale(2)))
	if t.IsRTL() {
		return n + " " + symbol
	}
	return symbol + n
}

const categoryPrefix = "category_"

func prettify(key string) string {
	if key == "" {
		return "[]"
	}
	if strings.ContainsAny(key, " _") || key == strings.ToLower(key) {
		r := []rune(strings.ReplaceAll(key, "_", " "))
		return strings.ToUpper(string(r[:1])) + strings.ToLower(string(r[1:]))
	}
	return "[" + strings.ToUpper(key) + "]"
}
