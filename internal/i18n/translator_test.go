package i18n

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/events"
)

func TestNewFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "en", New("fr", nil).Language())
	assert.Equal(t, "en", New("", nil).Language())
	assert.Equal(t, "ar", New("ar", nil).Language())
	assert.Equal(t, "ar", New("ar-SA", nil).Language())
}

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"en", "en", true},
		{"en_US", "en", true},
		{"ar-EG", "ar", true},
		{"de", "", false},
		{"!!", "", false},
	}
	for _, tt := range tests {
		got, ok := Match(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestTranslateFallbackChain(t *testing.T) {
	tr := New("ar", nil)

	assert.Equal(t, "الرصيد", tr.Translate("balance"))
	assert.Equal(t, "ر.س", tr.Translate("currency_symbol"))

	// missing everywhere: readable phrase for snake_case, bracketed otherwise
	assert.Equal(t, "Some new key", tr.Translate("some_new_key"))
	assert.Equal(t, "[MIXEDCASE]", tr.Translate("MixedCase"))

	_, ok := tr.Lookup("nope_nope")
	assert.False(t, ok)
}

func TestEnglishFallbackForMissingArabicKey(t *testing.T) {
	catalogs["en"]["only_in_english"] = "Only English"
	defer delete(catalogs["en"], "only_in_english")

	tr := New("ar", nil)
	assert.Equal(t, "Only English", tr.Translate("only_in_english"))
}

func TestCategoryLabel(t *testing.T) {
	tr := New("en", nil)
	assert.Equal(t, "Food", tr.CategoryLabel("food"))
	assert.Equal(t, "Other Income", tr.CategoryLabel("other_income"))
	// orphaned key from an older taxonomy
	assert.Equal(t, "Pet care", tr.CategoryLabel("pet_care"))

	// prefixed keys written by older versions
	assert.Equal(t, "Food", tr.CategoryLabel("category_food"))
	assert.Equal(t, "Pet care", tr.CategoryLabel("category_pet_care"))
	require.True(t, mustSet(t, tr, "ar"))
	assert.Equal(t, "راتب", tr.CategoryLabel("category_salary"))
}

func mustSet(t *testing.T, tr *Translator, lang string) bool {
	t.Helper()
	changed, err := tr.SetLanguage(lang)
	require.NoError(t, err)
	return changed
}

func TestSetLanguagePublishes(t *testing.T) {
	bus := events.NewBus()
	var got []string
	bus.Subscribe(events.LanguageChanged, func(e events.Event) { got = append(got, e.Value) })

	tr := New("en", bus)

	changed, err := tr.SetLanguage("ar")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = tr.SetLanguage("ar-SA")
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = tr.SetLanguage("ja")
	assert.Error(t, err)
	assert.Equal(t, "ar", tr.Language())

	assert.Equal(t, []string{"ar"}, got)
}

func TestDirectionAndFormatting(t *testing.T) {
	en := New("en", nil)
	assert.False(t, en.IsRTL())
	assert.Equal(t, "$1,234.50", en.FormatAmount(decimal.RequireFromString("1234.5"), "$"))
	assert.Equal(t, "€0.00", en.FormatAmount(decimal.Zero, "€"))

	ar := New("ar", nil)
	assert.True(t, ar.IsRTL())
	out := ar.FormatAmount(decimal.RequireFromString("10"), "ر.س")
	assert.True(t, strings.HasSuffix(out, " ر.س"), out)
}

func TestAvailable(t *testing.T) {
	assert.Equal(t, []string{"ar", "en"}, New("en", nil).Available())
}
