package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/diwise/api-dcat/internal/pkg/application/services/catalogs"
	"github.com/diwise/api-dcat/internal/pkg/domain"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestGetDatasetsInCatalog(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := mockDatasetSvc(is)
	r.Get("/catalogs/{id}/datasets", NewRetrieveDatasetsHandler(zerolog.Logger{}, svc, testPaging))

	resp, body := newRequest(is, ts, http.MethodGet, "/catalogs/910244132/datasets?status=PUBLISH&lang=en", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	call := svc.ListDatasetsCalls()[0]
	is.Equal(call.CatalogID, "910244132")
	is.Equal(call.Status, domain.StatusPublish)
	is.Equal(call.Lang, "en")
	is.Equal(call.Size, 20)

	envelope := struct {
		Embedded struct {
			Datasets []domain.Dataset `json:"datasets"`
		} `json:"_embedded"`
	}{}
	is.NoErr(json.Unmarshal([]byte(body), &envelope))
	is.Equal(len(envelope.Embedded.Datasets), 1)
	is.Equal(envelope.Embedded.Datasets[0].Title.String(), "Bus stops")
	is.Equal(envelope.Embedded.Datasets[0].Keyword.Items(), []string{"bus", "stops"})
}

func TestGetDatasetsUsesAcceptLanguage(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := mockDatasetSvc(is)
	r.Get("/catalogs/{id}/datasets", NewRetrieveDatasetsHandler(zerolog.Logger{}, svc, testPaging))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/catalogs/910244132/datasets", nil)
	is.NoErr(err)
	req.Header.Add("Accept-Language", "nn-NO, en;q=0.5")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(svc.ListDatasetsCalls()[0].Lang, "nn")
}

func TestCreateDataset(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := mockDatasetSvc(is)
	r.Post("/catalogs/{id}/datasets", NewCreateDatasetHandler(zerolog.Logger{}, svc))

	resp, body := newRequest(is, ts, http.MethodPost, "/catalogs/910244132/datasets", bytes.NewBufferString(`{"title":{"en":"Bus stops"}}`))

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(svc.SaveDatasetCalls()[0].CatalogID, "910244132")
	is.Equal(body, `{"id":"7d9f3a2e","catalog":"910244132","title":{"en":"Bus stops"},"description":{},"keyword":{},"registrationStatus":"DRAFT"}`)
}

func TestCreateDatasetInUnknownCatalog(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := mockDatasetSvc(is)
	r.Post("/catalogs/{id}/datasets", NewCreateDatasetHandler(zerolog.Logger{}, svc))

	resp, _ := newRequest(is, ts, http.MethodPost, "/catalogs/nope/datasets", bytes.NewBufferString(`{"title":{"en":"Bus stops"}}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestUpdateDataset(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := mockDatasetSvc(is)
	r.Put("/catalogs/{id}/datasets/{datasetID}", NewUpdateDatasetHandler(zerolog.Logger{}, svc))

	resp, _ := newRequest(is, ts, http.MethodPut, "/catalogs/910244132/datasets/ds1", bytes.NewBufferString(`{"registrationStatus":"PUBLISH"}`))

	is.Equal(resp.StatusCode, http.StatusOK)
	call := svc.UpdateDatasetCalls()[0]
	is.Equal(call.CatalogID, "910244132")
	is.Equal(call.Id, "ds1")
	is.Equal(call.Dataset.RegistrationStatus, domain.StatusPublish)
}

func TestDeleteDataset(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := mockDatasetSvc(is)
	r.Delete("/catalogs/{id}/datasets/{datasetID}", NewDeleteDatasetHandler(zerolog.Logger{}, svc))

	resp, _ := newRequest(is, ts, http.MethodDelete, "/catalogs/910244132/datasets/ds1", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(svc.DeleteDatasetCalls()[0].Id, "ds1")
}

func TestGetDatasetByID(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := mockDatasetSvc(is)
	r.Get("/datasets/{id}", NewRetrieveDatasetByIDHandler(zerolog.Logger{}, svc))

	resp, body := newRequest(is, ts, http.MethodGet, "/datasets/ds1?lang=en", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"id":"ds1","catalog":"910244132","title":"Bus stops","description":"","keyword":["bus","stops"],"registrationStatus":"PUBLISH"}`)

	resp, _ = newRequest(is, ts, http.MethodGet, "/datasets/ds2", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestGetCorruptDataset(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := mockDatasetSvc(is)
	svc.GetDatasetFunc = func(ctx context.Context, id, lang string) (*domain.Dataset, error) {
		return nil, fmt.Errorf("failed to retrieve dataset %s: %w", id, catalogs.ErrCorruptRecord)
	}
	r.Get("/datasets/{id}", NewRetrieveDatasetByIDHandler(zerolog.Logger{}, svc))

	resp, _ := newRequest(is, ts, http.MethodGet, "/datasets/ds1", nil)
	is.Equal(resp.StatusCode, http.StatusInternalServerError)
}

func mockDatasetSvc(is *is.I) *catalogs.CatalogServiceMock {
	resolved := func() domain.Dataset {
		return domain.Dataset{
			ID:                 "ds1",
			Catalog:            "910244132",
			Title:              domain.Text("Bus stops"),
			Description:        domain.Text(""),
			Keyword:            domain.List("bus", "stops"),
			RegistrationStatus: domain.StatusPublish,
		}
	}

	return &catalogs.CatalogServiceMock{
		ListDatasetsFunc: func(ctx context.Context, catalogID, status, lang string, page, size int) ([]domain.Dataset, int, error) {
			return []domain.Dataset{resolved()}, 1, nil
		},
		SaveDatasetFunc: func(ctx context.Context, catalogID string, dataset domain.Dataset) (*domain.Dataset, error) {
			if catalogID != "910244132" {
				return nil, fmt.Errorf("%w: %s", catalogs.ErrUnknownCatalog, catalogID)
			}
			dataset.ID = "7d9f3a2e"
			dataset.Catalog = catalogID
			dataset.RegistrationStatus = domain.StatusDraft
			return &dataset, nil
		},
		UpdateDatasetFunc: func(ctx context.Context, catalogID, id string, dataset domain.Dataset) (*domain.Dataset, error) {
			dataset.ID = id
			dataset.Catalog = catalogID
			return &dataset, nil
		},
		DeleteDatasetFunc: func(ctx context.Context, catalogID, id string) error {
			return nil
		},
		GetDatasetFunc: func(ctx context.Context, id, lang string) (*domain.Dataset, error) {
			if id != "ds1" {
				return nil, catalogs.ErrNotFound
			}
			d := resolved()
			return &d, nil
		},
	}
}
