package presentation

import (
	"context"
	"io"
	"net/http"

	"github.com/diwise/api-dcat/internal/pkg/application/services/catalogs"
	"github.com/diwise/api-dcat/internal/pkg/application/services/themes"
	"github.com/diwise/api-dcat/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/api-dcat/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type Config struct {
	Paging handlers.Paging
}

type dcatAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, db database.Datastore, catalogSvc catalogs.CatalogService, themeSvc themes.ThemeService, cfg Config) API {
	return newDcatAPI(ctx, r, db, catalogSvc, themeSvc, cfg)
}

func newDcatAPI(ctx context.Context, r chi.Router, db database.Datastore, catalogSvc catalogs.CatalogService, themeSvc themes.ThemeService, cfg Config) *dcatAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	r.Use(newCompressor().Handler)
	r.Use(otelchi.Middleware("api-dcat", otelchi.WithChiRoutes(r)))

	a := &dcatAPI{
		router: r,
		log:    log,
	}

	a.addCatalogHandlers(r, catalogSvc, cfg.Paging)
	a.addThemeHandlers(r, themeSvc, cfg.Paging)
	a.addProbeHandlers(r, db)

	return a
}

// newCompressor compresses json responses with zstd, gzip or deflate,
// depending on what the client accepts
func newCompressor() *middleware.Compressor {
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"application/json", "application/hal+json", "application/rdf+xml",
	)

	compressor.SetEncoder("deflate", func(w io.Writer, level int) io.Writer {
		fw, err := flate.NewWriter(w, level)
		if err != nil {
			return nil
		}
		return fw
	})

	compressor.SetEncoder("gzip", func(w io.Writer, level int) io.Writer {
		gw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil
		}
		return gw
	})

	compressor.SetEncoder("zstd", func(w io.Writer, level int) io.Writer {
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil
		}
		return zw
	})

	return compressor
}

func (a *dcatAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-dcat on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *dcatAPI) addCatalogHandlers(r chi.Router, svc catalogs.CatalogService, paging handlers.Paging) {
	r.Route("/catalogs", func(r chi.Router) {
		r.Get("/", handlers.NewRetrieveCatalogsHandler(a.log, svc, paging))
		r.Post("/", handlers.NewCreateCatalogHandler(a.log, svc))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewRetrieveCatalogByIDHandler(a.log, svc))
			r.Put("/", handlers.NewUpdateCatalogHandler(a.log, svc))
			r.Delete("/", handlers.NewDeleteCatalogHandler(a.log, svc))
			r.Get("/dcat", handlers.NewRetrieveCatalogDCATHandler(a.log, svc))

			r.Get("/datasets", handlers.NewRetrieveDatasetsHandler(a.log, svc, paging))
			r.Post("/datasets", handlers.NewCreateDatasetHandler(a.log, svc))
			r.Put("/datasets/{datasetID}", handlers.NewUpdateDatasetHandler(a.log, svc))
			r.Delete("/datasets/{datasetID}", handlers.NewDeleteDatasetHandler(a.log, svc))
		})
	})

	r.Get("/datasets/{id}", handlers.NewRetrieveDatasetByIDHandler(a.log, svc))
}

func (a *dcatAPI) addThemeHandlers(r chi.Router, svc themes.ThemeService, paging handlers.Paging) {
	r.Get("/themes", handlers.NewRetrieveThemesHandler(a.log, svc, paging))
}

func (a *dcatAPI) addProbeHandlers(r chi.Router, db database.Datastore) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			a.log.Warn().Err(err).Msg("health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
