package i18n_test

import (
	"testing"

	"github.com/wireform/wireform/i18n"
)

func TestT_DefaultEnglish(t *testing.T) {
	if got := i18n.T("too_small", nil); got != "too small" {
		t.Fatalf("unexpected message: %q", got)
	}
	// Unknown codes fall back to the code itself.
	if got := i18n.T("nonexistent_code", nil); got != "nonexistent_code" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestSetLanguage_Japanese(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("parse_error", nil); got != "解析エラー" {
		t.Fatalf("unexpected ja message: %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "CODE:" + code }

func TestSetTranslator_Custom(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("pattern", nil); got != "CODE:pattern" {
		t.Fatalf("unexpected custom message: %q", got)
	}
}
