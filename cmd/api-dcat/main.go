package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/api-dcat/internal/pkg/application/locale"
	"github.com/diwise/api-dcat/internal/pkg/application/services/catalogs"
	"github.com/diwise/api-dcat/internal/pkg/application/services/organisations"
	"github.com/diwise/api-dcat/internal/pkg/application/services/themes"
	"github.com/diwise/api-dcat/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/api-dcat/internal/pkg/presentation"
	"github.com/diwise/api-dcat/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

var organisationsFileName string
var themesFileName string

func main() {
	serviceName := "api-dcat"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&organisationsFileName, "organisations", os.Getenv("ORGANISATIONS_FILE"), "A yaml list of organisations to use instead of the register of legal entities")
	flag.StringVar(&themesFileName, "themes", env.GetVariableOrDefault(log, "DCAT_THEMES_FILE", "/opt/diwise/config/themes.yaml"), "The theme vocabulary to load at startup")
	flag.Parse()

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	db, err := database.NewDatabaseConnection(ctx, newConnector(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database, shutting down...")
	}
	defer db.Close()

	defaultLocale := env.GetVariableOrDefault(log, "DCAT_DEFAULT_LOCALE", "nb")
	fallbacks := splitList(env.GetVariableOrDefault(log, "DCAT_LOCALE_FALLBACKS", "nb,no,nn,en"))

	resolver, err := locale.NewResolver(defaultLocale, fallbacks...)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid locale configuration")
	}

	paging := handlers.Paging{
		DefaultSize: intOrDefault(log, "DCAT_DEFAULT_PAGE_SIZE", handlers.DefaultPageSize),
		MaxSize:     intOrDefault(log, "DCAT_MAX_PAGE_SIZE", 1000),
	}

	catalogSvc := catalogs.NewCatalogService(db, newRegistry(ctx, log), resolver, catalogs.Config{
		CatalogBaseURI: env.GetVariableOrDefault(log, "DCAT_CATALOG_BASE_URI", "http://localhost:8099/catalogs"),
	})

	themeSvc := themes.NewThemeService(db, resolver)
	seedThemes(ctx, themeSvc, themesFileName)

	api := presentation.NewAPI(ctx, chi.NewRouter(), db, catalogSvc, themeSvc, presentation.Config{Paging: paging})

	err = api.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}

func newConnector(log zerolog.Logger) database.ConnectorFunc {
	driver := env.GetVariableOrDefault(log, "DCAT_STORE_DRIVER", "sqlite")

	switch driver {
	case "postgres":
		dsn := env.GetVariableOrDie(log, "DCAT_STORE_DSN", "postgres connection string")
		timeout := durationOrDefault(log, "DCAT_STORE_CONNECT_TIMEOUT", 5*time.Second)
		return database.NewPostgreSQLConnector(dsn, timeout)
	case "sqlite":
		return database.NewSQLiteConnector(env.GetVariableOrDefault(log, "DCAT_STORE_DSN", "file:dcat.db"))
	default:
		log.Fatal().Msgf("unsupported store driver %q", driver)
		return nil
	}
}

func newRegistry(ctx context.Context, log zerolog.Logger) organisations.Registry {
	if organisationsFileName != "" {
		f, err := os.Open(organisationsFileName)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to open organisations file %s", organisationsFileName)
		}
		defer f.Close()

		registry, err := organisations.NewRegistry(f)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to load organisations from %s", organisationsFileName)
		}

		log.Info().Msgf("looking up organisations in %s", organisationsFileName)
		return registry
	}

	registryURL := env.GetVariableOrDefault(log, "ENHETSREGISTERET_URL", organisations.DefaultRegistryURL)
	timeout := durationOrDefault(log, "ENHETSREGISTERET_TIMEOUT", organisations.DefaultTimeout)

	return organisations.NewEnhetsregisteret(registryURL, timeout)
}

func seedThemes(ctx context.Context, svc themes.ThemeService, path string) {
	log := logging.GetFromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("failed to open the theme vocabulary %s, no themes loaded", path)
		return
	}
	defer f.Close()

	if _, err = svc.Seed(ctx, f); err != nil {
		log.Fatal().Err(err).Msgf("failed to load themes from %s", path)
	}
}

func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func intOrDefault(log zerolog.Logger, name string, defaultValue int) int {
	value := env.GetVariableOrDefault(log, name, strconv.Itoa(defaultValue))

	i, err := strconv.Atoi(value)
	if err != nil || i <= 0 {
		log.Fatal().Msgf("%s must be a positive number, not %q", name, value)
	}

	return i
}

func durationOrDefault(log zerolog.Logger, name string, defaultValue time.Duration) time.Duration {
	value := env.GetVariableOrDefault(log, name, defaultValue.String())

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatal().Msgf("%s must be a duration such as 5s, not %q", name, value)
	}

	return d
}
