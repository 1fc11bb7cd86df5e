package i18n

import "testing"

const sampleLocale = `{
  "name": "English",
  "font": "builtin",
  "font_scale": "1.5",
  "menu": {
    "start": "Start Game",
    "options": {
      "title": "Options"
    }
  },
  "greeting": "Hello, {name}!"
}`

func TestLoadFlattensNestedKeys(t *testing.T) {
	l, err := Load("en", []byte(sampleLocale))
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "English" {
		t.Fatalf("Name = %q", l.Name)
	}
	if l.FontScale != 1.5 {
		t.Fatalf("FontScale = %v", l.FontScale)
	}
	if got := l.T("menu.start"); got != "Start Game" {
		t.Fatalf("menu.start = %q", got)
	}
	if got := l.T("menu.options.title"); got != "Options" {
		t.Fatalf("menu.options.title = %q", got)
	}
}

func TestTMissingKeyReturnsKey(t *testing.T) {
	l, _ := Load("en", []byte(`{"name":"English"}`))
	if got := l.T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("T(missing) = %q", got)
	}
}

func TestTTSubstitutesPlaceholders(t *testing.T) {
	l, _ := Load("en", []byte(sampleLocale))
	got := l.TT("greeting", "name", "Quote")
	if got != "Hello, Quote!" {
		t.Fatalf("TT = %q", got)
	}
}
