// Package locale picks a single display text out of texts keyed by locale
// code, following a chain of fallback locales.
package locale

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Resolve returns the text for the first locale in chain that is present in
// values, then the text of the first remaining locale in sorted key order,
// and finally an empty string. A locale is present if its key exists, even
// if the text is empty.
func Resolve(values map[string]string, chain ...string) string {
	if len(values) == 0 {
		return ""
	}

	for _, l := range chain {
		if text, ok := values[l]; ok {
			return text
		}
	}

	return values[remaining(values)[0]]
}

func resolveList(values map[string][]string, chain ...string) []string {
	if len(values) == 0 {
		return []string{}
	}

	for _, l := range chain {
		if items, ok := values[l]; ok {
			return append([]string{}, items...)
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return append([]string{}, values[keys[0]]...)
}

func remaining(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolver holds the configured site default locale and any further
// fallback locales. It is immutable once created.
type Resolver struct {
	defaultLocale string
	fallbacks     []string
}

func NewResolver(defaultLocale string, fallbacks ...string) (*Resolver, error) {
	if defaultLocale == "" {
		return nil, fmt.Errorf("a default locale is required")
	}

	r := &Resolver{}

	for i, l := range append([]string{defaultLocale}, fallbacks...) {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}

		if _, err := language.Parse(l); err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", l, err)
		}

		if i == 0 {
			r.defaultLocale = l
		} else {
			r.fallbacks = append(r.fallbacks, l)
		}
	}

	return r, nil
}

func (r *Resolver) DefaultLocale() string {
	return r.defaultLocale
}

// Chain returns the requested locale followed by the site default and the
// configured fallbacks, without duplicates.
func (r *Resolver) Chain(requested string) []string {
	chain := make([]string, 0, len(r.fallbacks)+2)
	seen := map[string]bool{}

	for _, l := range append([]string{requested, r.defaultLocale}, r.fallbacks...) {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		chain = append(chain, l)
	}

	return chain
}

// FromRequest returns the locale asked for by a request, either through the
// lang query parameter or the Accept-Language header. An empty string means
// that the default locale should be used.
func FromRequest(r *http.Request) string {
	if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
		return lang
	}

	header := r.Header.Get("Accept-Language")
	if header == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}

	base, _ := tags[0].Base()
	if base.String() == "und" {
		return ""
	}

	return base.String()
}
