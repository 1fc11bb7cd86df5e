// Package i18n loads locale JSON documents and flattens them into a single
// dotted-key string table, grounded on i18n.rs's Locale/flatten.
//
// encoding/json is used deliberately rather than a third-party decoder: the
// source format is a single nested JSON object with no schema beyond
// string/string-or-object values, which is exactly what stdlib json.Unmarshal
// into interface{} already handles; no pack example reaches for a JSON
// library for this shape of problem (DESIGN.md: i18n).
package i18n

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Locale is one loaded language: a flat key -> string table plus the small
// set of well-known top-level keys the engine reads out of it (name, font).
type Locale struct {
	Code string
	Name string

	FontPath       string
	FontScale      float32
	FontSpaceOffset float32

	strings map[string]string
}

// Load parses raw locale JSON (already read from disk by the caller, so
// this package stays filesystem-agnostic like the rest of internal/) into a
// Locale, flattening nested objects into "parent.child" keys.
func Load(code string, data []byte) (*Locale, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("i18n: decode %s: %w", code, err)
	}

	flat := make(map[string]string)
	flatten("", raw, flat)

	l := &Locale{Code: code, strings: flat, FontScale: 1.0}
	l.Name = flat["name"]
	l.FontPath = flat["font"]
	if scale, err := strconv.ParseFloat(flat["font_scale"], 32); err == nil {
		l.FontScale = float32(scale)
	}
	return l, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			flatten(full, v, out)
		}
	}
}

// T returns the translated string for key, or key itself if the locale has
// no entry (so missing translations are visible rather than blank).
func (l *Locale) T(key string) string {
	if s, ok := l.strings[key]; ok {
		return s
	}
	return key
}

// TT is T with {placeholder} substitution from args, given as alternating
// name/value pairs, mirroring the source's tt(key, &[(&str, &str)]).
func (l *Locale) TT(key string, args ...string) string {
	s := l.T(key)
	for i := 0; i+1 < len(args); i += 2 {
		s = strings.ReplaceAll(s, "{"+args[i]+"}", args[i+1])
	}
	return s
}
