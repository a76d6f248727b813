package organisations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/diwise/api-dcat/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-dcat/svcs/organisations")

const (
	DefaultRegistryURL string        = "http://data.brreg.no/enhetsregisteret/enhet"
	DefaultTimeout     time.Duration = 5 * time.Second
)

// NewEnhetsregisteret creates a registry that looks up organisations in the
// Brønnøysund register of legal entities at baseURL. Every lookup is bounded
// by timeout.
func NewEnhetsregisteret(baseURL string, timeout time.Duration) Registry {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &enhetsregisteret{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
	}
}

type enhetsregisteret struct {
	baseURL string
	timeout time.Duration
}

// LookupURI is the canonical uri of an organisation in the register
func (e *enhetsregisteret) LookupURI(organisationID string) string {
	return fmt.Sprintf("%s/%s.json", e.baseURL, url.PathEscape(organisationID))
}

func (e *enhetsregisteret) Get(ctx context.Context, organisationID string) (org *domain.Publisher, err error) {
	ctx, span := tracer.Start(ctx, "lookup-organisation")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   e.timeout,
	}

	lookupURI := e.LookupURI(organisationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURI, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %s", ErrLookupFailed, err.Error())
	}

	req.Header.Add("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %s", ErrLookupFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log.Warn().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("organisation lookup failed")
		return nil, fmt.Errorf("%w: registry returned status code %d", ErrLookupFailed, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %s", ErrLookupFailed, err.Error())
	}

	entity := enhet{}
	if err = json.Unmarshal(respBody, &entity); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal response: %s", ErrLookupFailed, err.Error())
	}

	return &domain.Publisher{
		ID:   organisationID,
		Name: entity.Navn,
		URI:  lookupURI,
	}, nil
}

type enhet struct {
	Organisasjonsnummer string `json:"organisasjonsnummer"`
	Navn                string `json:"navn"`
}
