package domain

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestLocalizedTextRoundTripsLocaleMap(t *testing.T) {
	is := is.New(t)

	var title LocalizedText
	err := json.Unmarshal([]byte(`{"nb":"Tittel","en":"Title"}`), &title)
	is.NoErr(err)

	is.True(!title.IsResolved())
	is.Equal(title.Values()["en"], "Title")

	b, err := json.Marshal(title)
	is.NoErr(err)
	is.Equal(string(b), `{"en":"Title","nb":"Tittel"}`)
}

func TestLocalizedTextAcceptsPlainString(t *testing.T) {
	is := is.New(t)

	var title LocalizedText
	err := json.Unmarshal([]byte(`"Tittel"`), &title)
	is.NoErr(err)

	is.True(title.IsResolved())
	is.Equal(title.String(), "Tittel")
	is.Equal(title.InLocale("nb").Values(), map[string]string{"nb": "Tittel"})
}

func TestEmptyLocalizedTextMarshalsAsEmptyObject(t *testing.T) {
	is := is.New(t)

	c := Catalog{ID: "910244132"}
	b, err := json.Marshal(c)
	is.NoErr(err)
	is.Equal(string(b), `{"id":"910244132","title":{},"description":{}}`)
}

func TestValuesReturnsACopy(t *testing.T) {
	is := is.New(t)

	title := NewLocalizedText(map[string]string{"no": "test"})
	title.Values()["no"] = "changed"

	is.Equal(title.Values()["no"], "test") // the text must not be modified through Values
}

func TestLocalizedListBothForms(t *testing.T) {
	is := is.New(t)

	var keywords LocalizedList
	is.NoErr(json.Unmarshal([]byte(`{"nb":["vann","bad"]}`), &keywords))
	is.Equal(keywords.Values()["nb"], []string{"vann", "bad"})

	is.NoErr(json.Unmarshal([]byte(`["water"]`), &keywords))
	is.True(keywords.IsResolved())
	is.Equal(keywords.Items(), []string{"water"})

	b, err := json.Marshal(List())
	is.NoErr(err)
	is.Equal(string(b), `[]`)
}
