package catalogs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diwise/api-dcat/internal/pkg/application/locale"
	"github.com/diwise/api-dcat/internal/pkg/application/services/organisations"
	"github.com/diwise/api-dcat/internal/pkg/domain"
	"github.com/diwise/api-dcat/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-dcat/svcs/catalogs")

var (
	ErrValidation     = errors.New("validation failed")
	ErrUnknownCatalog = fmt.Errorf("%w: unknown catalog", ErrValidation)
	ErrNotFound       = errors.New("not found")

	ErrStoreUnavailable = database.ErrStoreUnavailable
	ErrCorruptRecord    = database.ErrCorruptRecord
)

const (
	// lookups failing with anything but not found are retried once
	maxLookupAttempts int = 2
)

type Config struct {
	CatalogBaseURI string
}

// WriteResult is the stored catalog together with any soft warnings that
// were raised while writing it
type WriteResult struct {
	Catalog  domain.Catalog
	Warnings []string
}

//go:generate moq -rm -out catalogsvc_mock.go . CatalogService
type CatalogService interface {
	SaveCatalog(ctx context.Context, catalog domain.Catalog) (*WriteResult, error)
	UpdateCatalog(ctx context.Context, id string, catalog domain.Catalog) (*WriteResult, error)
	GetCatalog(ctx context.Context, id, lang string) (*domain.Catalog, error)
	ListCatalogs(ctx context.Context, lang string, page, size int) ([]domain.Catalog, int, error)
	DeleteCatalog(ctx context.Context, id string) error
	ExportCatalog(ctx context.Context, id string) (*domain.Catalog, []domain.Dataset, error)

	SaveDataset(ctx context.Context, catalogID string, dataset domain.Dataset) (*domain.Dataset, error)
	UpdateDataset(ctx context.Context, catalogID, id string, dataset domain.Dataset) (*domain.Dataset, error)
	GetDataset(ctx context.Context, id, lang string) (*domain.Dataset, error)
	ListDatasets(ctx context.Context, catalogID, status, lang string, page, size int) ([]domain.Dataset, int, error)
	DeleteDataset(ctx context.Context, catalogID, id string) error
}

func NewCatalogService(db *database.Database, registry organisations.Registry, resolver *locale.Resolver, cfg Config) CatalogService {
	cfg.CatalogBaseURI = strings.TrimSuffix(cfg.CatalogBaseURI, "/")

	return &catalogSvc{
		catalogs: database.NewCollection(db, database.KindCatalog, func(c domain.Catalog) database.Index {
			return database.Index{ID: c.ID}
		}),
		datasets: database.NewCollection(db, database.KindDataset, func(d domain.Dataset) database.Index {
			return database.Index{ID: d.ID, Catalog: d.Catalog, Status: d.RegistrationStatus}
		}),
		registry: registry,
		resolver: resolver,
		cfg:      cfg,
	}
}

type catalogSvc struct {
	catalogs *database.Collection[domain.Catalog]
	datasets *database.Collection[domain.Dataset]
	registry organisations.Registry
	resolver *locale.Resolver
	cfg      Config
}

func (svc *catalogSvc) SaveCatalog(ctx context.Context, catalog domain.Catalog) (result *WriteResult, err error) {
	ctx, span := tracer.Start(ctx, "save-catalog")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if isBlank(catalog.ID) {
		return nil, fmt.Errorf("%w: a catalog must have an identifier", ErrValidation)
	}

	return svc.writeCatalog(ctx, catalog)
}

func (svc *catalogSvc) UpdateCatalog(ctx context.Context, id string, catalog domain.Catalog) (result *WriteResult, err error) {
	ctx, span := tracer.Start(ctx, "update-catalog")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if isBlank(id) {
		return nil, fmt.Errorf("%w: a catalog must have an identifier", ErrValidation)
	}

	if catalog.ID == "" {
		catalog.ID = id
	} else if catalog.ID != id {
		return nil, fmt.Errorf("%w: catalog identifier %s does not match %s", ErrValidation, catalog.ID, id)
	}

	if _, err = svc.catalogs.Lookup(ctx, id); err != nil {
		return nil, svc.notFoundOr(err, "catalog", id)
	}

	return svc.writeCatalog(ctx, catalog)
}

func (svc *catalogSvc) writeCatalog(ctx context.Context, catalog domain.Catalog) (*WriteResult, error) {
	defaultLocale := svc.resolver.DefaultLocale()

	catalog.URI = svc.catalogURI(catalog.ID)
	catalog.Title = catalog.Title.InLocale(defaultLocale)
	catalog.Description = catalog.Description.InLocale(defaultLocale)

	publisher, warnings := svc.lookupPublisher(ctx, catalog.ID)
	catalog.Publisher = publisher

	stored, err := svc.catalogs.Put(ctx, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to store catalog %s: %w", catalog.ID, err)
	}

	return &WriteResult{Catalog: *stored, Warnings: warnings}, nil
}

// lookupPublisher returns the publisher of the organisation that owns a
// catalog. Name and uri are only ever taken from the registry. Failing
// lookups are retried once and then reported as a warning instead of an error.
func (svc *catalogSvc) lookupPublisher(ctx context.Context, organisationID string) (*domain.Publisher, []string) {
	log := logging.GetFromContext(ctx)
	publisher := &domain.Publisher{ID: organisationID}

	var org *domain.Publisher
	var err error

	for attempt := 1; attempt <= maxLookupAttempts; attempt++ {
		org, err = svc.registry.Get(ctx, organisationID)
		if err == nil || errors.Is(err, organisations.ErrNotFound) {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Msgf("failed to look up organisation %s", organisationID)
	}

	switch {
	case err == nil:
		publisher.Name = org.Name
		publisher.URI = org.URI
	case errors.Is(err, organisations.ErrNotFound):
		log.Info().Msgf("organisation %s is not registered, storing catalog without publisher name", organisationID)
	default:
		return publisher, []string{fmt.Sprintf("publisher lookup for %s failed, publisher name and uri are missing", organisationID)}
	}

	return publisher, nil
}

func (svc *catalogSvc) GetCatalog(ctx context.Context, id, lang string) (catalog *domain.Catalog, err error) {
	ctx, span := tracer.Start(ctx, "get-catalog")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	stored, err := svc.catalogs.Get(ctx, id)
	if err != nil {
		return nil, svc.notFoundOr(err, "catalog", id)
	}

	resolved := svc.resolver.Catalog(*stored, lang)
	return &resolved, nil
}

func (svc *catalogSvc) ListCatalogs(ctx context.Context, lang string, page, size int) (result []domain.Catalog, total int, err error) {
	ctx, span := tracer.Start(ctx, "list-catalogs")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = checkPage(page, size); err != nil {
		return nil, 0, err
	}

	stored, total, err := svc.catalogs.Query(ctx, database.Filter{}, page, size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query catalogs: %w", err)
	}

	result = make([]domain.Catalog, 0, len(stored))
	for _, c := range stored {
		result = append(result, svc.resolver.Catalog(c, lang))
	}

	return result, total, nil
}

// DeleteCatalog removes a catalog and every dataset it owns. Deleting a
// catalog that does not exist succeeds.
func (svc *catalogSvc) DeleteCatalog(ctx context.Context, id string) (err error) {
	ctx, span := tracer.Start(ctx, "delete-catalog")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if isBlank(id) {
		return fmt.Errorf("%w: a catalog must have an identifier", ErrValidation)
	}

	count, err := svc.datasets.DeleteWhere(ctx, database.Filter{Catalog: id})
	if err != nil {
		return fmt.Errorf("failed to delete datasets in catalog %s: %w", id, err)
	}

	if count > 0 {
		log.Info().Msgf("deleted %d datasets along with catalog %s", count, id)
	}

	err = svc.catalogs.Delete(ctx, id)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("failed to delete catalog %s: %w", id, err)
	}

	return nil
}

// ExportCatalog returns a stored catalog together with every dataset it
// owns, with all their locales intact
func (svc *catalogSvc) ExportCatalog(ctx context.Context, id string) (catalog *domain.Catalog, datasets []domain.Dataset, err error) {
	ctx, span := tracer.Start(ctx, "export-catalog")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	catalog, err = svc.catalogs.Get(ctx, id)
	if err != nil {
		return nil, nil, svc.notFoundOr(err, "catalog", id)
	}

	stored, _, err := svc.datasets.Query(ctx, database.Filter{Catalog: id}, 0, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query datasets in catalog %s: %w", id, err)
	}

	datasets = make([]domain.Dataset, 0, len(stored))
	for _, d := range stored {
		if d.Catalog == id {
			datasets = append(datasets, d)
		}
	}

	return catalog, datasets, nil
}

func (svc *catalogSvc) catalogURI(id string) string {
	return svc.cfg.CatalogBaseURI + "/" + id
}

func (svc *catalogSvc) datasetURI(catalogID, id string) string {
	return svc.catalogURI(catalogID) + "/datasets/" + id
}

// checkPage rejects page numbers and sizes that can not be queried. Defaults
// and limits for sizes are applied by the caller.
func checkPage(page, size int) error {
	if page < 0 {
		return fmt.Errorf("%w: invalid page number %d", ErrValidation, page)
	}
	if size <= 0 {
		return fmt.Errorf("%w: invalid page size %d", ErrValidation, size)
	}
	return nil
}

func (svc *catalogSvc) notFoundOr(err error, kind, id string) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: no %s with id %s", ErrNotFound, kind, id)
	}
	return fmt.Errorf("failed to retrieve %s %s: %w", kind, id, err)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func newDatasetID() string {
	return uuid.NewString()
}
