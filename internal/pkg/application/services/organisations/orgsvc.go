package organisations

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/diwise/api-dcat/internal/pkg/domain"
	"gopkg.in/yaml.v2"
)

var (
	ErrNotFound     = errors.New("organisation not found")
	ErrLookupFailed = errors.New("organisation lookup failed")
)

// Registry looks up legal entities by organisation number
//
//go:generate moq -rm -out orgsvc_mock.go . Registry
type Registry interface {
	Get(ctx context.Context, organisationID string) (*domain.Publisher, error)
}

// NewRegistry creates a registry that answers from a static yaml list of
// organisations instead of an external service
func NewRegistry(input io.Reader) (Registry, error) {
	config := registryConfig{}

	b, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read organisations: %w", err)
	}

	if err = yaml.Unmarshal(b, &config); err != nil {
		return nil, fmt.Errorf("failed to parse organisations: %w", err)
	}

	r := &registry{organisations: map[string]domain.Publisher{}}

	for _, o := range config.Organisations {
		if o.ID == "" {
			return nil, fmt.Errorf("organisation %q has no id", o.Name)
		}
		r.organisations[o.ID] = domain.Publisher{ID: o.ID, Name: o.Name, URI: o.URI}
	}

	return r, nil
}

type registryConfig struct {
	Organisations []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
		URI  string `yaml:"uri"`
	} `yaml:"organisations"`
}

type registry struct {
	organisations map[string]domain.Publisher
}

func (r *registry) Get(ctx context.Context, organisationID string) (*domain.Publisher, error) {
	org, ok := r.organisations[organisationID]
	if !ok {
		return nil, ErrNotFound
	}

	return &org, nil
}
