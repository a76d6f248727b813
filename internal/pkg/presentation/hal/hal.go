package hal

import (
	"net/url"
	"strconv"
)

//Envelope is a page of a collection in HAL form
type Envelope struct {
	Embedded map[string]any `json:"_embedded"`
	Links    Links          `json:"_links"`
	Page     Metadata       `json:"page"`
}

type Link struct {
	Href string `json:"href"`
}

type Links struct {
	Self  Link  `json:"self"`
	First *Link `json:"first,omitempty"`
	Prev  *Link `json:"prev,omitempty"`
	Next  *Link `json:"next,omitempty"`
	Last  *Link `json:"last,omitempty"`
}

type Metadata struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// Assemble wraps one page of items under rel, with links to the neighbouring
// pages of baseURI. Query parameters already present in baseURI are kept.
func Assemble[T any](items []T, rel string, page, size, total int, baseURI string) Envelope {
	if items == nil {
		items = []T{}
	}

	if page < 0 {
		page = 0
	}

	totalPages := TotalPages(total, size)
	lastPage := max(totalPages-1, 0)

	env := Envelope{
		Embedded: map[string]any{rel: items},
		Links: Links{
			Self:  Link{Href: pageURI(baseURI, page, size)},
			First: &Link{Href: pageURI(baseURI, 0, size)},
			Last:  &Link{Href: pageURI(baseURI, lastPage, size)},
		},
		Page: Metadata{
			Size:          size,
			TotalElements: total,
			TotalPages:    totalPages,
			Number:        page,
		},
	}

	if page > 0 {
		env.Links.Prev = &Link{Href: pageURI(baseURI, min(page-1, lastPage), size)}
	}

	if page+1 < totalPages {
		env.Links.Next = &Link{Href: pageURI(baseURI, page+1, size)}
	}

	return env
}

func TotalPages(total, size int) int {
	if total <= 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

//Page returns the items of a single page of an in memory list
func Page[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}

	start := page * size
	if page < 0 || start >= len(items) {
		return []T{}
	}

	return items[start:min(start+size, len(items))]
}

func pageURI(baseURI string, page, size int) string {
	u, err := url.Parse(baseURI)
	if err != nil {
		return baseURI
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	return u.String()
}
