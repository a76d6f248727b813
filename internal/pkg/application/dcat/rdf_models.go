package dcat

import "encoding/xml"

const (
	nsRDF     string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsDcterms string = "http://purl.org/dc/terms/"
	nsVcard   string = "http://www.w3.org/2006/vcard/ns#"
	nsDcat    string = "http://www.w3.org/ns/dcat#"
	nsFoaf    string = "http://xmlns.com/foaf/0.1/"
)

type RdfRDF struct {
	XMLName      xml.Name     `xml:"rdf:RDF"`
	Attr_rdf     string       `xml:"xmlns:rdf,attr"`
	Attr_dcterms string       `xml:"xmlns:dcterms,attr"`
	Attr_vcard   string       `xml:"xmlns:vcard,attr"`
	Attr_dcat    string       `xml:"xmlns:dcat,attr"`
	Attr_foaf    string       `xml:"xmlns:foaf,attr"`
	Rdf_Catalog  *RdfCatalog  `xml:"dcat:Catalog,omitempty"`
	Rdf_Agent    *RdfAgent    `xml:"foaf:Agent,omitempty"`
	Rdf_Datasets []RdfDataset `xml:"dcat:Dataset"`
}

//RdfLiteral is a text in a single language
type RdfLiteral struct {
	XMLLang string `xml:"xml:lang,attr,omitempty"`
	Value   string `xml:",chardata"`
}

type RdfResource struct {
	Attr_rdf_resource string `xml:"rdf:resource,attr"`
}

type RdfCatalog struct {
	Attr_rdf_about      string        `xml:"rdf:about,attr"`
	Dcterms_identifier  string        `xml:"dcterms:identifier"`
	Dcterms_title       []RdfLiteral  `xml:"dcterms:title"`
	Dcterms_description []RdfLiteral  `xml:"dcterms:description"`
	Dcterms_publisher   *RdfResource  `xml:"dcterms:publisher,omitempty"`
	Dcat_dataset        []RdfResource `xml:"dcat:dataset"`
}

type RdfAgent struct {
	Attr_rdf_about     string `xml:"rdf:about,attr"`
	Dcterms_identifier string `xml:"dcterms:identifier"`
	Foaf_name          string `xml:"foaf:name,omitempty"`
}

type RdfDataset struct {
	Attr_rdf_about       string                `xml:"rdf:about,attr"`
	Dcterms_identifier   string                `xml:"dcterms:identifier"`
	Dcterms_title        []RdfLiteral          `xml:"dcterms:title"`
	Dcterms_description  []RdfLiteral          `xml:"dcterms:description"`
	Dcat_keyword         []RdfLiteral          `xml:"dcat:keyword"`
	Dcterms_issued       string                `xml:"dcterms:issued,omitempty"`
	Dcterms_modified     string                `xml:"dcterms:modified,omitempty"`
	Dcterms_language     *RdfResource          `xml:"dcterms:language,omitempty"`
	Dcat_landingPage     *RdfResource          `xml:"dcat:landingPage,omitempty"`
	Dcat_theme           []RdfResource         `xml:"dcat:theme"`
	Dcterms_conformsTo   []RdfResource         `xml:"dcterms:conformsTo"`
	Dcterms_spatial      []RdfResource         `xml:"dcterms:spatial"`
	Dcterms_accessRights *RdfResource          `xml:"dcterms:accessRights,omitempty"`
	Dcterms_provenance   string                `xml:"dcterms:provenance,omitempty"`
	Dcat_contactPoint    *RdfContactPoint      `xml:"dcat:contactPoint,omitempty"`
	Dcat_distribution    []RdfDistributionNode `xml:"dcat:distribution"`
}

type RdfContactPoint struct {
	Organization RdfOrganization `xml:"vcard:Organization"`
}

type RdfOrganization struct {
	Attr_rdf_about         string       `xml:"rdf:about,attr,omitempty"`
	Vcard_fn               string       `xml:"vcard:fn,omitempty"`
	Vcard_organizationName string       `xml:"vcard:organization-name,omitempty"`
	Vcard_organizationUnit string       `xml:"vcard:organization-unit,omitempty"`
	Vcard_hasEmail         *RdfResource `xml:"vcard:hasEmail,omitempty"`
	Vcard_hasURL           *RdfResource `xml:"vcard:hasURL,omitempty"`
	Vcard_hasTelephone     *RdfResource `xml:"vcard:hasTelephone,omitempty"`
}

type RdfDistributionNode struct {
	Distribution RdfDistribution `xml:"dcat:Distribution"`
}

type RdfDistribution struct {
	Attr_rdf_about      string        `xml:"rdf:about,attr,omitempty"`
	Dcterms_title       []RdfLiteral  `xml:"dcterms:title"`
	Dcterms_description []RdfLiteral  `xml:"dcterms:description"`
	Dcat_accessURL      []RdfResource `xml:"dcat:accessURL"`
	Dcterms_format      []string      `xml:"dcterms:format"`
	Dcterms_license     *RdfResource  `xml:"dcterms:license,omitempty"`
}
