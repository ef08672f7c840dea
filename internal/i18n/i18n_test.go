package i18n

import (
	"testing"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		lang health.Language
		key  string
		want string
	}{
		{health.LangEnglish, "app.title", "Kerala Health Records"},
		{health.LangMalayalam, "app.title", "കേരള ആരോഗ്യ രേഖകൾ"},
		{health.LangHindi, "nav.dashboard", "डैशबोर्ड"},
		{health.LangTamil, "profile.save", "மாற்றங்களை சேமிக்கவும்"},
	}
	for _, tc := range tests {
		if got := T(tc.lang, tc.key); got != tc.want {
			t.Errorf("T(%s, %q) = %q, want %q", tc.lang, tc.key, got, tc.want)
		}
	}
}

func TestLookupFallsBackToEnglishThenKey(t *testing.T) {
	if got := T(health.Language("fr"), "app.title"); got != "Kerala Health Records" {
		t.Errorf("unknown language: got %q, want English text", got)
	}
	if got := T(health.LangEnglish, "no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key: got %q, want the key back", got)
	}
}

func TestAllLanguagesCoverTheSameKeys(t *testing.T) {
	en := translations[health.LangEnglish]
	for lang, table := range translations {
		if len(table) != len(en) {
			t.Errorf("%s table has %d keys, en has %d", lang, len(table), len(en))
		}
		for key := range en {
			if _, ok := table[key]; !ok {
				t.Errorf("%s table missing key %q", lang, key)
			}
		}
	}
}
