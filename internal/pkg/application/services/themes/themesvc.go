package themes

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/diwise/api-dcat/internal/pkg/application/locale"
	"github.com/diwise/api-dcat/internal/pkg/domain"
	"github.com/diwise/api-dcat/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"gopkg.in/yaml.v2"
)

var tracer = otel.Tracer("api-dcat/svcs/themes")

//go:generate moq -rm -out themesvc_mock.go . ThemeService
type ThemeService interface {
	ListThemes(ctx context.Context, lang string) ([]domain.DataTheme, error)
	Seed(ctx context.Context, input io.Reader) (int, error)
}

func NewThemeService(db *database.Database, resolver *locale.Resolver) ThemeService {
	return &themeSvc{
		themes: database.NewCollection(db, database.KindTheme, func(t domain.DataTheme) database.Index {
			return database.Index{ID: t.ID}
		}),
		resolver: resolver,
	}
}

type themeSvc struct {
	themes   *database.Collection[domain.DataTheme]
	resolver *locale.Resolver
}

//ListThemes returns every theme in the vocabulary with its title resolved and ordered by that title
func (svc *themeSvc) ListThemes(ctx context.Context, lang string) (result []domain.DataTheme, err error) {
	ctx, span := tracer.Start(ctx, "list-themes")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	stored, _, err := svc.themes.Query(ctx, database.Filter{}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}

	result = make([]domain.DataTheme, 0, len(stored))
	for _, t := range stored {
		result = append(result, svc.resolver.Theme(t, lang))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Title.String() < result[j].Title.String()
	})

	return result, nil
}

//Seed stores the themes of a yaml vocabulary, replacing any theme with the same id
func (svc *themeSvc) Seed(ctx context.Context, input io.Reader) (count int, err error) {
	ctx, span := tracer.Start(ctx, "seed-themes")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	b, err := io.ReadAll(input)
	if err != nil {
		return 0, fmt.Errorf("failed to read themes: %w", err)
	}

	vocabulary := vocabularyFile{}
	if err = yaml.Unmarshal(b, &vocabulary); err != nil {
		return 0, fmt.Errorf("failed to parse themes: %w", err)
	}

	for _, t := range vocabulary.Themes {
		if t.ID == "" {
			return count, fmt.Errorf("theme %q has no id", t.Code)
		}

		theme := domain.DataTheme{
			ID:    t.ID,
			Code:  t.Code,
			Title: domain.NewLocalizedText(t.Title),
		}

		if _, err = svc.themes.Put(ctx, theme); err != nil {
			return count, fmt.Errorf("failed to store theme %s: %w", t.ID, err)
		}
		count++
	}

	log.Info().Msgf("loaded %d themes", count)

	return count, nil
}

type vocabularyFile struct {
	Themes []struct {
		ID    string            `yaml:"id"`
		Code  string            `yaml:"code"`
		Title map[string]string `yaml:"title"`
	} `yaml:"themes"`
}
