package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diwise/api-dcat/internal/pkg/application/services/catalogs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-dcat/api")

var errBadRequest = errors.New("bad request")

const (
	contentTypeJSON string = "application/json"
	contentTypeHAL  string = "application/hal+json"
	contentTypeRDF  string = "application/rdf+xml"
)

const DefaultPageSize int = 20

//Paging holds the default and the maximum page size of the list handlers
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// pageParams reads the zero based page number and the page size from the
// query. Sizes above the maximum are capped.
func (p Paging) pageParams(r *http.Request) (page, size int, err error) {
	size = p.DefaultSize
	if size <= 0 {
		size = DefaultPageSize
	}

	if v := r.URL.Query().Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 0 {
			return 0, 0, fmt.Errorf("%w: invalid page number %q", errBadRequest, v)
		}
	}

	if v := r.URL.Query().Get("size"); v != "" {
		size, err = strconv.Atoi(v)
		if err != nil || size <= 0 {
			return 0, 0, fmt.Errorf("%w: invalid page size %q", errBadRequest, v)
		}
	}

	if p.MaxSize > 0 && size > p.MaxSize {
		size = p.MaxSize
	}

	return page, size, nil
}

func pathParam(r *http.Request, name string) string {
	value, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return chi.URLParam(r, name)
	}
	return value
}

// requestURI rebuilds the absolute uri of a request, to be used as the base
// of the links in paged responses
func requestURI(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}

	return u.String()
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: request body is missing", errBadRequest)
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: failed to decode request body: %s", errBadRequest, err.Error())
	}

	return nil
}

// writeResponse encodes body without html escaping, so that the & in page
// links is written as is
func writeResponse(w http.ResponseWriter, log zerolog.Logger, contentType string, body any) {
	buf := &bytes.Buffer{}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to marshal response body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

func addWarnings(w http.ResponseWriter, warnings []string) {
	for _, warning := range warnings {
		w.Header().Add("Warning", fmt.Sprintf("199 - %q", warning))
	}
}

// writeError maps an error to its status code. Missing resources are not
// logged as errors.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error, msg string) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, catalogs.ErrValidation):
		status = http.StatusBadRequest
		log.Warn().Err(err).Msg(msg)
	case errors.Is(err, catalogs.ErrNotFound):
		status = http.StatusNotFound
		log.Debug().Err(err).Msg(msg)
	case errors.Is(err, catalogs.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
		log.Error().Err(err).Msg(msg)
	default:
		log.Error().Err(err).Msg(msg)
	}

	w.WriteHeader(status)
}
