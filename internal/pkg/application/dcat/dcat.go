package dcat

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/diwise/api-dcat/internal/pkg/domain"
)

const YearMonthDayISO8601 string = "2006-01-02"

// Marshal writes a catalog and its datasets as a DCAT RDF/XML document.
// Localized texts are written once per locale.
func Marshal(catalog domain.Catalog, datasets []domain.Dataset) ([]byte, error) {
	rdf := RdfRDF{
		Attr_rdf:     nsRDF,
		Attr_dcterms: nsDcterms,
		Attr_vcard:   nsVcard,
		Attr_dcat:    nsDcat,
		Attr_foaf:    nsFoaf,
	}

	rdfCatalog := RdfCatalog{
		Attr_rdf_about:      catalog.URI,
		Dcterms_identifier:  catalog.ID,
		Dcterms_title:       literals(catalog.Title),
		Dcterms_description: literals(catalog.Description),
	}

	if catalog.Publisher != nil {
		agentURI := catalog.Publisher.URI
		if agentURI == "" {
			agentURI = "urn:organisation:" + catalog.Publisher.ID
		}

		rdfCatalog.Dcterms_publisher = &RdfResource{Attr_rdf_resource: agentURI}
		rdf.Rdf_Agent = &RdfAgent{
			Attr_rdf_about:     agentURI,
			Dcterms_identifier: catalog.Publisher.ID,
			Foaf_name:          catalog.Publisher.Name,
		}
	}

	for _, d := range datasets {
		if d.Catalog != catalog.ID {
			return nil, fmt.Errorf("dataset %s does not belong to catalog %s", d.ID, catalog.ID)
		}

		rdfCatalog.Dcat_dataset = append(rdfCatalog.Dcat_dataset, RdfResource{Attr_rdf_resource: d.URI})
		rdf.Rdf_Datasets = append(rdf.Rdf_Datasets, newRdfDataset(d))
	}

	rdf.Rdf_Catalog = &rdfCatalog

	data, err := xml.MarshalIndent(rdf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog %s: %w", catalog.ID, err)
	}

	return append([]byte(xml.Header), data...), nil
}

func newRdfDataset(d domain.Dataset) RdfDataset {
	rdfDataset := RdfDataset{
		Attr_rdf_about:       d.URI,
		Dcterms_identifier:   d.ID,
		Dcterms_title:        literals(d.Title),
		Dcterms_description:  literals(d.Description),
		Dcat_keyword:         listLiterals(d.Keyword),
		Dcterms_issued:       date(d.Issued),
		Dcterms_modified:     date(d.Modified),
		Dcterms_language:     resource(d.Language),
		Dcat_landingPage:     resource(d.LandingPage),
		Dcterms_conformsTo:   resources(d.ConformsTo),
		Dcterms_spatial:      resources(d.Spatial),
		Dcterms_accessRights: resource(d.AccessRights),
		Dcterms_provenance:   d.Provenance,
	}

	for _, t := range d.Theme {
		rdfDataset.Dcat_theme = append(rdfDataset.Dcat_theme, RdfResource{Attr_rdf_resource: t.ID})
	}

	if c := d.ContactPoint; c != nil {
		rdfDataset.Dcat_contactPoint = &RdfContactPoint{
			Organization: RdfOrganization{
				Attr_rdf_about:         c.URI,
				Vcard_fn:               c.FullName,
				Vcard_organizationName: c.OrganizationName,
				Vcard_organizationUnit: c.OrganizationUnit,
				Vcard_hasEmail:         mailto(c.Email),
				Vcard_hasURL:           resource(c.HasURL),
				Vcard_hasTelephone:     tel(c.HasTelephone),
			},
		}
	}

	for _, dist := range d.Distribution {
		rdfDataset.Dcat_distribution = append(rdfDataset.Dcat_distribution, RdfDistributionNode{
			Distribution: RdfDistribution{
				Attr_rdf_about:      dist.URI,
				Dcterms_title:       literals(dist.Title),
				Dcterms_description: literals(dist.Description),
				Dcat_accessURL:      resources(dist.AccessURL),
				Dcterms_format:      dist.Format,
				Dcterms_license:     resource(dist.License),
			},
		})
	}

	return rdfDataset
}

func literals(t domain.LocalizedText) []RdfLiteral {
	if t.IsResolved() {
		return []RdfLiteral{{Value: t.String()}}
	}

	values := t.Values()
	result := make([]RdfLiteral, 0, len(values))
	for _, locale := range sortedKeys(values) {
		result = append(result, RdfLiteral{XMLLang: locale, Value: values[locale]})
	}
	return result
}

func listLiterals(l domain.LocalizedList) []RdfLiteral {
	if l.IsResolved() {
		result := []RdfLiteral{}
		for _, item := range l.Items() {
			result = append(result, RdfLiteral{Value: item})
		}
		return result
	}

	values := l.Values()
	result := []RdfLiteral{}
	for _, locale := range sortedKeys(values) {
		for _, item := range values[locale] {
			result = append(result, RdfLiteral{XMLLang: locale, Value: item})
		}
	}
	return result
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(YearMonthDayISO8601)
}

func resource(uri string) *RdfResource {
	if uri == "" {
		return nil
	}
	return &RdfResource{Attr_rdf_resource: uri}
}

func resources(uris []string) []RdfResource {
	result := []RdfResource{}
	for _, uri := range uris {
		if uri != "" {
			result = append(result, RdfResource{Attr_rdf_resource: uri})
		}
	}
	return result
}

func mailto(email string) *RdfResource {
	if email == "" || strings.HasPrefix(email, "mailto:") {
		return resource(email)
	}
	return resource("mailto:" + email)
}

func tel(number string) *RdfResource {
	if number == "" || strings.HasPrefix(number, "tel:") {
		return resource(number)
	}
	return resource("tel:" + url.PathEscape(strings.ReplaceAll(number, " ", "")))
}
