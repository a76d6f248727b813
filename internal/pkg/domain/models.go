package domain

import "time"

const (
	StatusDraft   string = "DRAFT"
	StatusPublish string = "PUBLISH"
)

//Catalog is a collection of datasets owned by a single publishing organisation
type Catalog struct {
	ID          string        `json:"id"`
	URI         string        `json:"uri,omitempty"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Publisher   *Publisher    `json:"publisher,omitempty"`
}

//Publisher ...
type Publisher struct {
	URI  string `json:"uri,omitempty"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

//Dataset ...
type Dataset struct {
	ID                  string         `json:"id"`
	URI                 string         `json:"uri,omitempty"`
	Catalog             string         `json:"catalog"`
	Title               LocalizedText  `json:"title"`
	Description         LocalizedText  `json:"description"`
	ContactPoint        *Contact       `json:"contactPoint,omitempty"`
	Keyword             LocalizedList  `json:"keyword"`
	Issued              *time.Time     `json:"issued,omitempty"`
	Modified            *time.Time     `json:"modified,omitempty"`
	Language            string         `json:"language,omitempty"`
	LandingPage         string         `json:"landingPage,omitempty"`
	Theme               []DataTheme    `json:"theme,omitempty"`
	Distribution        []Distribution `json:"distribution,omitempty"`
	ConformsTo          []string       `json:"conformsTo,omitempty"`
	Temporal            []PeriodOfTime `json:"temporal,omitempty"`
	Spatial             []string       `json:"spatial,omitempty"`
	AccessRights        string         `json:"accessRights,omitempty"`
	AccessRightsComment []string       `json:"accessRightsComment,omitempty"`
	References          []string       `json:"references,omitempty"`
	Provenance          string         `json:"provenance,omitempty"`
	RegistrationStatus  string         `json:"registrationStatus,omitempty"`
}

//Distribution ...
type Distribution struct {
	URI         string        `json:"uri,omitempty"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	AccessURL   []string      `json:"accessURL,omitempty"`
	Format      []string      `json:"format,omitempty"`
	License     string        `json:"license,omitempty"`
}

//Contact is the vcard contact point of a dataset
type Contact struct {
	URI              string `json:"uri,omitempty"`
	FullName         string `json:"fullname,omitempty"`
	Email            string `json:"email,omitempty"`
	OrganizationName string `json:"organizationName,omitempty"`
	OrganizationUnit string `json:"organizationUnit,omitempty"`
	HasURL           string `json:"hasURL,omitempty"`
	HasTelephone     string `json:"hasTelephone,omitempty"`
}

type PeriodOfTime struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

//DataTheme is an entry in the theme vocabulary used to tag datasets
type DataTheme struct {
	ID    string        `json:"id"`
	Code  string        `json:"code,omitempty"`
	Title LocalizedText `json:"title"`
}
