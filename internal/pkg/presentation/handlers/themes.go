package handlers

import (
	"net/http"

	"github.com/diwise/api-dcat/internal/pkg/application/locale"
	"github.com/diwise/api-dcat/internal/pkg/application/services/themes"
	"github.com/diwise/api-dcat/internal/pkg/presentation/hal"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

func NewRetrieveThemesHandler(logger zerolog.Logger, svc themes.ThemeService, paging Paging) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-themes")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		page, size, err := paging.pageParams(r)
		if err != nil {
			writeError(w, log, err, "bad request")
			return
		}

		all, err := svc.ListThemes(ctx, locale.FromRequest(r))
		if err != nil {
			writeError(w, log, err, "failed to list themes")
			return
		}

		w.Header().Add("Cache-Control", "max-age=600")
		writeResponse(w, log, contentTypeHAL, hal.Assemble(hal.Page(all, page, size), "themes", page, size, len(all), requestURI(r)))
	})
}
