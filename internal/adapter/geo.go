package adapter

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

type ibgeGeoProvider struct {
	client *utils.HTTPClient
}

// NewGeoProvider returns a [GeoProvider] backed by the public IBGE API.
func NewGeoProvider(cfg config.GeoAdapter) GeoProvider {
	return &ibgeGeoProvider{client: utils.NewHTTPClient(cfg.URL, cfg.Timeout)}
}

func (p *ibgeGeoProvider) States(ctx context.Context) ([]models.State, error) {
	var states []models.State
	err := p.get(ctx, "ibge states", "/api/v1/localidades/estados?orderBy=nome", &states)
	return states, err
}

func (p *ibgeGeoProvider) Cities(ctx context.Context, uf string) ([]models.City, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if uf == "" {
		return []models.City{}, nil
	}

	var cities []models.City
	err := p.get(ctx, "ibge cities", "/api/v1/localidades/estados/"+url.PathEscape(uf)+"/municipios", &cities)
	return cities, err
}

func (p *ibgeGeoProvider) CNAEClasses(ctx context.Context) ([]models.CNAEClass, error) {
	var classes []models.CNAEClass
	err := p.get(ctx, "ibge cnae classes", "/api/v2/cnae/classes", &classes)
	return classes, err
}

func (p *ibgeGeoProvider) get(ctx context.Context, op, path string, result any) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return requestError(op+" request", err)
	}
	return mapHTTPError(resp)
}
