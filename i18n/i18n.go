// Package i18n resolves the display language and prints localized stage, tool
// and interface labels.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hidden_piece/story"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the player's language preference.
	LangCookieName = "hp_lang"
)

var (
	supported = []language.Tag{language.Korean, language.English}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.Korean
}

// Parse maps a language string onto a supported tag.
func Parse(s string) (language.Tag, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default(), false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default(), false
	}
	return match(tag), true
}

func match(tags ...language.Tag) language.Tag {
	_, i, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[i]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the language for a request: query parameter, then cookie, then
// Accept-Language, then fallback. The bool reports whether the query parameter
// should be persisted as a cookie.
func ResolveTag(r *http.Request, fallback language.Tag) (language.Tag, bool) {
	if r == nil {
		return fallback, false
	}
	if tag, ok := Parse(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := Parse(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return match(tags...), false
		}
	}
	return fallback, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Localizer prints translated strings.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns the translation of key, or key itself without a localizer.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}

// StageName returns the display name of a stage.
func StageName(loc Localizer, id story.StageID) string {
	key := "stage." + string(id)
	if name := T(loc, key); name != key {
		return name
	}
	return string(id)
}

// ToolName returns the display name of a tool, falling back to the catalog.
func ToolName(loc Localizer, id string) string {
	key := "tool." + id
	if name := T(loc, key); name != key {
		return name
	}
	if t, ok := story.LookupTool(id); ok {
		return t.Name
	}
	return id
}
