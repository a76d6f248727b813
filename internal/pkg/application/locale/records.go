package locale

import (
	"github.com/diwise/api-dcat/internal/pkg/domain"
)

// Text resolves a single text. Texts that are already resolved are
// returned unchanged.
func (r *Resolver) Text(t domain.LocalizedText, requested string) domain.LocalizedText {
	if t.IsResolved() {
		return t
	}
	return domain.Text(Resolve(t.Values(), r.Chain(requested)...))
}

func (r *Resolver) List(l domain.LocalizedList, requested string) domain.LocalizedList {
	if l.IsResolved() {
		return l
	}
	return domain.List(resolveList(l.Values(), r.Chain(requested)...)...)
}

// Catalog returns a copy of c with every multilingual field resolved
func (r *Resolver) Catalog(c domain.Catalog, requested string) domain.Catalog {
	out := c
	out.Title = r.Text(c.Title, requested)
	out.Description = r.Text(c.Description, requested)

	if c.Publisher != nil {
		p := *c.Publisher
		out.Publisher = &p
	}

	return out
}

// Dataset returns a copy of d with every multilingual field resolved,
// including those of its themes and distributions
func (r *Resolver) Dataset(d domain.Dataset, requested string) domain.Dataset {
	out := d
	out.Title = r.Text(d.Title, requested)
	out.Description = r.Text(d.Description, requested)
	out.Keyword = r.List(d.Keyword, requested)

	if d.ContactPoint != nil {
		cp := *d.ContactPoint
		out.ContactPoint = &cp
	}

	if d.Theme != nil {
		out.Theme = make([]domain.DataTheme, 0, len(d.Theme))
		for _, t := range d.Theme {
			out.Theme = append(out.Theme, r.Theme(t, requested))
		}
	}

	if d.Distribution != nil {
		out.Distribution = make([]domain.Distribution, 0, len(d.Distribution))
		for _, dist := range d.Distribution {
			out.Distribution = append(out.Distribution, r.Distribution(dist, requested))
		}
	}

	out.ConformsTo = cloneStrings(d.ConformsTo)
	out.Spatial = cloneStrings(d.Spatial)
	out.AccessRightsComment = cloneStrings(d.AccessRightsComment)
	out.References = cloneStrings(d.References)

	if d.Temporal != nil {
		out.Temporal = append([]domain.PeriodOfTime{}, d.Temporal...)
	}

	return out
}

func (r *Resolver) Distribution(d domain.Distribution, requested string) domain.Distribution {
	out := d
	out.Title = r.Text(d.Title, requested)
	out.Description = r.Text(d.Description, requested)
	out.AccessURL = cloneStrings(d.AccessURL)
	out.Format = cloneStrings(d.Format)
	return out
}

func (r *Resolver) Theme(t domain.DataTheme, requested string) domain.DataTheme {
	out := t
	out.Title = r.Text(t.Title, requested)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
