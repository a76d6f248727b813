package handlers

import (
	"net/http"

	"github.com/diwise/api-dcat/internal/pkg/application/locale"
	"github.com/diwise/api-dcat/internal/pkg/application/services/catalogs"
	"github.com/diwise/api-dcat/internal/pkg/domain"
	"github.com/diwise/api-dcat/internal/pkg/presentation/hal"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

func NewRetrieveDatasetsHandler(logger zerolog.Logger, svc catalogs.CatalogService, paging Paging) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-datasets")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		page, size, err := paging.pageParams(r)
		if err != nil {
			writeError(w, log, err, "bad request")
			return
		}

		catalogID := pathParam(r, "id")
		status := r.URL.Query().Get("status")

		result, total, err := svc.ListDatasets(ctx, catalogID, status, locale.FromRequest(r), page, size)
		if err != nil {
			writeError(w, log, err, "failed to list datasets")
			return
		}

		writeResponse(w, log, contentTypeHAL, hal.Assemble(result, "datasets", page, size, total, requestURI(r)))
	})
}

func NewCreateDatasetHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "create-dataset")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		dataset := domain.Dataset{}
		if err = decodeBody(r, &dataset); err != nil {
			writeError(w, log, err, "bad request")
			return
		}

		stored, err := svc.SaveDataset(ctx, pathParam(r, "id"), dataset)
		if err != nil {
			writeError(w, log, err, "failed to save dataset")
			return
		}

		writeResponse(w, log, contentTypeJSON, stored)
	})
}

func NewUpdateDatasetHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "update-dataset")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		dataset := domain.Dataset{}
		if err = decodeBody(r, &dataset); err != nil {
			writeError(w, log, err, "bad request")
			return
		}

		stored, err := svc.UpdateDataset(ctx, pathParam(r, "id"), pathParam(r, "datasetID"), dataset)
		if err != nil {
			writeError(w, log, err, "failed to update dataset")
			return
		}

		writeResponse(w, log, contentTypeJSON, stored)
	})
}

func NewDeleteDatasetHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "delete-dataset")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		if err = svc.DeleteDataset(ctx, pathParam(r, "id"), pathParam(r, "datasetID")); err != nil {
			writeError(w, log, err, "failed to delete dataset")
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

func NewRetrieveDatasetByIDHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-dataset-by-id")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		dataset, err := svc.GetDataset(ctx, pathParam(r, "id"), locale.FromRequest(r))
		if err != nil {
			writeError(w, log, err, "failed to retrieve dataset")
			return
		}

		writeResponse(w, log, contentTypeJSON, dataset)
	})
}
