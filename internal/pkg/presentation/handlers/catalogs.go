package handlers

import (
	"net/http"

	"github.com/diwise/api-dcat/internal/pkg/application/dcat"
	"github.com/diwise/api-dcat/internal/pkg/application/locale"
	"github.com/diwise/api-dcat/internal/pkg/application/services/catalogs"
	"github.com/diwise/api-dcat/internal/pkg/domain"
	"github.com/diwise/api-dcat/internal/pkg/presentation/hal"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

func NewRetrieveCatalogsHandler(logger zerolog.Logger, svc catalogs.CatalogService, paging Paging) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-catalogs")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		page, size, err := paging.pageParams(r)
		if err != nil {
			writeError(w, log, err, "bad request")
			return
		}

		result, total, err := svc.ListCatalogs(ctx, locale.FromRequest(r), page, size)
		if err != nil {
			writeError(w, log, err, "failed to list catalogs")
			return
		}

		writeResponse(w, log, contentTypeHAL, hal.Assemble(result, "catalogs", page, size, total, requestURI(r)))
	})
}

func NewCreateCatalogHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "create-catalog")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		catalog := domain.Catalog{}
		if err = decodeBody(r, &catalog); err != nil {
			writeError(w, log, err, "bad request")
			return
		}

		result, err := svc.SaveCatalog(ctx, catalog)
		if err != nil {
			writeError(w, log, err, "failed to save catalog")
			return
		}

		addWarnings(w, result.Warnings)
		writeResponse(w, log, contentTypeJSON, result.Catalog)
	})
}

func NewRetrieveCatalogByIDHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-catalog-by-id")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		catalog, err := svc.GetCatalog(ctx, pathParam(r, "id"), locale.FromRequest(r))
		if err != nil {
			writeError(w, log, err, "failed to retrieve catalog")
			return
		}

		writeResponse(w, log, contentTypeJSON, catalog)
	})
}

func NewUpdateCatalogHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "update-catalog")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		catalog := domain.Catalog{}
		if err = decodeBody(r, &catalog); err != nil {
			writeError(w, log, err, "bad request")
			return
		}

		result, err := svc.UpdateCatalog(ctx, pathParam(r, "id"), catalog)
		if err != nil {
			writeError(w, log, err, "failed to update catalog")
			return
		}

		addWarnings(w, result.Warnings)
		writeResponse(w, log, contentTypeJSON, result.Catalog)
	})
}

func NewDeleteCatalogHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "delete-catalog")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		if err = svc.DeleteCatalog(ctx, pathParam(r, "id")); err != nil {
			writeError(w, log, err, "failed to delete catalog")
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

func NewRetrieveCatalogDCATHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-catalog-dcat")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		catalog, datasets, err := svc.ExportCatalog(ctx, pathParam(r, "id"))
		if err != nil {
			writeError(w, log, err, "failed to export catalog")
			return
		}

		responseBody, err := dcat.Marshal(*catalog, datasets)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal catalog to rdf")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", contentTypeRDF)
		w.WriteHeader(http.StatusOK)
		w.Write(responseBody)
	})
}
