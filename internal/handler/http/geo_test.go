package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/veepo/internal/service"
	"github.com/MKhiriev/veepo/models"
)

func TestGeoRoutes(t *testing.T) {
	f := newHandlerFixture(t)
	f.geo.EXPECT().States(gomock.Any()).Return([]models.State{{ID: 35, Sigla: "SP", Nome: "São Paulo"}}, nil)
	f.geo.EXPECT().Cities(gomock.Any(), "sp").Return([]models.City{{ID: 3509502, Nome: "Campinas"}}, nil)
	f.geo.EXPECT().CNAEClasses(gomock.Any()).Return([]models.CNAEClass{}, nil)

	rr := f.do(http.MethodGet, "/api/geo/states", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"SP"`)

	rr = f.do(http.MethodGet, "/api/geo/states/sp/cities", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Campinas")

	rr = f.do(http.MethodGet, "/api/geo/cnae-classes", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGeo_UpstreamFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.geo.EXPECT().States(gomock.Any()).Return(nil, service.ErrUpstreamUnavailable)

	rr := f.do(http.MethodGet, "/api/geo/states", "", false)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
