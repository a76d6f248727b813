package domain

import (
	"bytes"
	"encoding/json"
)

// LocalizedText is a text keyed by locale code, or the single display text
// it has been resolved to. Unresolved texts serialize as a JSON object and
// resolved texts as a JSON string.
type LocalizedText struct {
	values   map[string]string
	resolved *string
}

func NewLocalizedText(values map[string]string) LocalizedText {
	return LocalizedText{values: copyTexts(values)}
}

// Text returns an already resolved text
func Text(s string) LocalizedText {
	return LocalizedText{resolved: &s}
}

func (t LocalizedText) IsResolved() bool {
	return t.resolved != nil
}

// Values returns a copy of the locale map, or nil for resolved texts
func (t LocalizedText) Values() map[string]string {
	return copyTexts(t.values)
}

func (t LocalizedText) String() string {
	if t.resolved != nil {
		return *t.resolved
	}
	return ""
}

// InLocale turns a resolved text back into a locale map holding the text
// under the given locale. Unresolved texts are returned as is.
func (t LocalizedText) InLocale(locale string) LocalizedText {
	if t.resolved == nil {
		return t
	}
	return NewLocalizedText(map[string]string{locale: *t.resolved})
}

func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.resolved != nil {
		return json.Marshal(*t.resolved)
	}
	if t.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t.values)
}

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*t = LocalizedText{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	*t = LocalizedText{values: values}
	return nil
}

// LocalizedList is a list of texts (such as keywords) keyed by locale code,
// or the single list it has been resolved to.
type LocalizedList struct {
	values   map[string][]string
	resolved []string
	done     bool
}

func NewLocalizedList(values map[string][]string) LocalizedList {
	return LocalizedList{values: copyLists(values)}
}

// List returns an already resolved list
func List(items ...string) LocalizedList {
	if items == nil {
		items = []string{}
	}
	return LocalizedList{resolved: items, done: true}
}

func (l LocalizedList) IsResolved() bool {
	return l.done
}

func (l LocalizedList) Values() map[string][]string {
	return copyLists(l.values)
}

func (l LocalizedList) Items() []string {
	if !l.done {
		return nil
	}
	return append([]string{}, l.resolved...)
}

func (l LocalizedList) InLocale(locale string) LocalizedList {
	if !l.done {
		return l
	}
	return NewLocalizedList(map[string][]string{locale: l.resolved})
}

func (l LocalizedList) MarshalJSON() ([]byte, error) {
	if l.done {
		return json.Marshal(l.resolved)
	}
	if l.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(l.values)
}

func (l *LocalizedList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*l = LocalizedList{}
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		items := []string{}
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = List(items...)
		return nil
	}

	values := map[string][]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	*l = LocalizedList{values: values}
	return nil
}

func copyTexts(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyLists(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	c := make(map[string][]string, len(m))
	for k, v := range m {
		c[k] = append([]string{}, v...)
	}
	return c
}
