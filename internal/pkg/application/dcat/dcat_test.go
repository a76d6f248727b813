package dcat

import (
	"strings"
	"testing"
	"time"

	"github.com/diwise/api-dcat/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestMarshalCatalog(t *testing.T) {
	is := is.New(t)

	issued := time.Date(2023, 3, 17, 8, 23, 9, 0, time.UTC)

	catalog := domain.Catalog{
		ID:          "910244132",
		URI:         "http://localhost:8099/catalogs/910244132",
		Title:       domain.NewLocalizedText(map[string]string{"nb": "Katalog", "en": "Catalog"}),
		Description: domain.NewLocalizedText(map[string]string{"nb": "Beskrivelse"}),
		Publisher: &domain.Publisher{
			ID:   "910244132",
			Name: "RAMSUND OG ROGNAN REVISJON",
			URI:  "http://data.brreg.no/enhetsregisteret/enhet/910244132.json",
		},
	}

	dataset := domain.Dataset{
		ID:          "ds1",
		URI:         "http://localhost:8099/catalogs/910244132/datasets/ds1",
		Catalog:     "910244132",
		Title:       domain.NewLocalizedText(map[string]string{"nb": "Bussholdeplasser"}),
		Description: domain.NewLocalizedText(map[string]string{"nb": "Alle holdeplasser"}),
		Keyword:     domain.NewLocalizedList(map[string][]string{"nb": {"buss", "holdeplass"}}),
		Issued:      &issued,
		Theme:       []domain.DataTheme{{ID: "http://publications.europa.eu/resource/authority/data-theme/TRAN"}},
		ContactPoint: &domain.Contact{
			FullName: "Kundesenter",
			Email:    "post@example.com",
		},
		Distribution: []domain.Distribution{{
			Title:     domain.NewLocalizedText(map[string]string{"nb": "CSV"}),
			AccessURL: []string{"https://example.com/holdeplasser.csv"},
			Format:    []string{"text/csv"},
		}},
	}

	b, err := Marshal(catalog, []domain.Dataset{dataset})
	is.NoErr(err)

	doc := string(b)

	for _, expected := range []string{
		`<dcat:Catalog rdf:about="http://localhost:8099/catalogs/910244132">`,
		`<dcterms:title xml:lang="en">Catalog</dcterms:title>`,
		`<dcterms:title xml:lang="nb">Katalog</dcterms:title>`,
		`<dcterms:publisher rdf:resource="http://data.brreg.no/enhetsregisteret/enhet/910244132.json"></dcterms:publisher>`,
		`<foaf:name>RAMSUND OG ROGNAN REVISJON</foaf:name>`,
		`<dcat:dataset rdf:resource="http://localhost:8099/catalogs/910244132/datasets/ds1"></dcat:dataset>`,
		`<dcat:keyword xml:lang="nb">holdeplass</dcat:keyword>`,
		`<dcterms:issued>2023-03-17</dcterms:issued>`,
		`<dcat:theme rdf:resource="http://publications.europa.eu/resource/authority/data-theme/TRAN"></dcat:theme>`,
		`<vcard:hasEmail rdf:resource="mailto:post@example.com"></vcard:hasEmail>`,
		`<dcat:accessURL rdf:resource="https://example.com/holdeplasser.csv"></dcat:accessURL>`,
		`<dcterms:format>text/csv</dcterms:format>`,
	} {
		is.True(strings.Contains(doc, expected)) // expected element is missing from the document
	}

	is.True(strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	is.True(strings.Index(doc, `xml:lang="en">Catalog<`) < strings.Index(doc, `xml:lang="nb">Katalog<`)) // locales are written in sorted order
}

func TestMarshalCatalogWithoutDatasets(t *testing.T) {
	is := is.New(t)

	b, err := Marshal(domain.Catalog{ID: "1", URI: "http://localhost:8099/catalogs/1"}, nil)
	is.NoErr(err)
	is.True(!strings.Contains(string(b), "<dcat:Dataset"))
	is.True(!strings.Contains(string(b), "<foaf:Agent"))
}

func TestMarshalRejectsForeignDatasets(t *testing.T) {
	is := is.New(t)

	_, err := Marshal(domain.Catalog{ID: "1"}, []domain.Dataset{{ID: "ds1", Catalog: "2"}})
	is.True(err != nil)
}
