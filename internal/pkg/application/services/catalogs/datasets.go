package catalogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/api-dcat/internal/pkg/domain"
	"github.com/diwise/api-dcat/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

func (svc *catalogSvc) SaveDataset(ctx context.Context, catalogID string, dataset domain.Dataset) (result *domain.Dataset, err error) {
	ctx, span := tracer.Start(ctx, "save-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = svc.claim(catalogID, &dataset); err != nil {
		return nil, err
	}

	if isBlank(dataset.ID) {
		dataset.ID = newDatasetID()
	} else {
		existing, err := svc.datasets.Lookup(ctx, dataset.ID)
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("failed to retrieve dataset %s: %w", dataset.ID, err)
		}

		if existing != nil {
			if existing.Catalog != catalogID {
				return nil, fmt.Errorf("%w: dataset %s belongs to catalog %s", ErrValidation, dataset.ID, existing.Catalog)
			}
			if dataset.RegistrationStatus == "" {
				dataset.RegistrationStatus = existing.Status
			}
		}
	}

	if dataset.RegistrationStatus == "" {
		dataset.RegistrationStatus = domain.StatusDraft
	}

	return svc.writeDataset(ctx, dataset)
}

func (svc *catalogSvc) UpdateDataset(ctx context.Context, catalogID, id string, dataset domain.Dataset) (result *domain.Dataset, err error) {
	ctx, span := tracer.Start(ctx, "update-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if isBlank(id) {
		return nil, fmt.Errorf("%w: a dataset must have an identifier", ErrValidation)
	}

	if dataset.ID == "" {
		dataset.ID = id
	} else if dataset.ID != id {
		return nil, fmt.Errorf("%w: dataset identifier %s does not match %s", ErrValidation, dataset.ID, id)
	}

	if err = svc.claim(catalogID, &dataset); err != nil {
		return nil, err
	}

	existing, err := svc.datasets.Lookup(ctx, id)
	if err != nil {
		return nil, svc.notFoundOr(err, "dataset", id)
	}

	if existing.Catalog != catalogID {
		return nil, fmt.Errorf("%w: no dataset with id %s in catalog %s", ErrNotFound, id, catalogID)
	}

	if dataset.RegistrationStatus == "" {
		dataset.RegistrationStatus = existing.Status
	}

	return svc.writeDataset(ctx, dataset)
}

// claim binds a dataset to the catalog it is written through
func (svc *catalogSvc) claim(catalogID string, dataset *domain.Dataset) error {
	if isBlank(catalogID) {
		return fmt.Errorf("%w: a dataset must belong to a catalog", ErrValidation)
	}

	if dataset.Catalog != "" && dataset.Catalog != catalogID {
		return fmt.Errorf("%w: dataset claims catalog %s but was written to %s", ErrValidation, dataset.Catalog, catalogID)
	}

	dataset.Catalog = catalogID
	return nil
}

func (svc *catalogSvc) writeDataset(ctx context.Context, dataset domain.Dataset) (*domain.Dataset, error) {
	if _, err := svc.catalogs.Lookup(ctx, dataset.Catalog); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCatalog, dataset.Catalog)
		}
		return nil, fmt.Errorf("failed to retrieve catalog %s: %w", dataset.Catalog, err)
	}

	dataset.URI = svc.datasetURI(dataset.Catalog, dataset.ID)
	normalizeDataset(&dataset, svc.resolver.DefaultLocale())

	stored, err := svc.datasets.Put(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to store dataset %s: %w", dataset.ID, err)
	}

	return stored, nil
}

// normalizeDataset stores texts that were written as plain strings under
// the default locale
func normalizeDataset(d *domain.Dataset, defaultLocale string) {
	d.Title = d.Title.InLocale(defaultLocale)
	d.Description = d.Description.InLocale(defaultLocale)
	d.Keyword = d.Keyword.InLocale(defaultLocale)

	d.Theme = append([]domain.DataTheme(nil), d.Theme...)
	for i := range d.Theme {
		d.Theme[i].Title = d.Theme[i].Title.InLocale(defaultLocale)
	}

	d.Distribution = append([]domain.Distribution(nil), d.Distribution...)
	for i := range d.Distribution {
		d.Distribution[i].Title = d.Distribution[i].Title.InLocale(defaultLocale)
		d.Distribution[i].Description = d.Distribution[i].Description.InLocale(defaultLocale)
	}
}

func (svc *catalogSvc) GetDataset(ctx context.Context, id, lang string) (dataset *domain.Dataset, err error) {
	ctx, span := tracer.Start(ctx, "get-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	stored, err := svc.datasets.Get(ctx, id)
	if err != nil {
		return nil, svc.notFoundOr(err, "dataset", id)
	}

	resolved := svc.resolver.Dataset(*stored, lang)
	return &resolved, nil
}

func (svc *catalogSvc) ListDatasets(ctx context.Context, catalogID, status, lang string, page, size int) (result []domain.Dataset, total int, err error) {
	ctx, span := tracer.Start(ctx, "list-datasets")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if isBlank(catalogID) {
		return nil, 0, fmt.Errorf("%w: a catalog identifier is required", ErrValidation)
	}

	if err = checkPage(page, size); err != nil {
		return nil, 0, err
	}

	stored, total, err := svc.datasets.Query(ctx, database.Filter{Catalog: catalogID, Status: status}, page, size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query datasets in catalog %s: %w", catalogID, err)
	}

	result = make([]domain.Dataset, 0, len(stored))
	for _, d := range stored {
		if d.Catalog != catalogID {
			log.Warn().Msgf("dataset %s is indexed under catalog %s but claims %s", d.ID, catalogID, d.Catalog)
			continue
		}
		result = append(result, svc.resolver.Dataset(d, lang))
	}

	return result, total, nil
}

// DeleteDataset removes a dataset from a catalog. Ownership is read from the
// index, so datasets that can not be decoded are removed as well. Deleting a
// dataset that does not exist, or that belongs to another catalog, succeeds
// without touching the store.
func (svc *catalogSvc) DeleteDataset(ctx context.Context, catalogID, id string) (err error) {
	ctx, span := tracer.Start(ctx, "delete-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if isBlank(id) {
		return fmt.Errorf("%w: a dataset must have an identifier", ErrValidation)
	}

	log := logging.GetFromContext(ctx)

	existing, err := svc.datasets.Lookup(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to retrieve dataset %s: %w", id, err)
	}

	if existing.Catalog != catalogID {
		log.Info().Msgf("not deleting dataset %s since it belongs to catalog %s", id, existing.Catalog)
		return nil
	}

	err = svc.datasets.Delete(ctx, id)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("failed to delete dataset %s: %w", id, err)
	}

	return nil
}
