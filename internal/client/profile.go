package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
)

// ProfileForm is the editable part of the provider profile as typed by the
// user. Blank fields are left untouched.
type ProfileForm struct {
	BusinessName string
	Segment      string
	State        string
	City         string
	CNAE         string
}

// Profile is the provider profile of the signed-in user together with the
// reference lists its form is checked against.
type Profile struct {
	// Provider is the zero value until the profile is first saved.
	Provider    *resource.Resource[models.Provider]
	States      *resource.Resource[[]models.State]
	CNAEClasses *resource.Resource[[]models.CNAEClass]

	api adapter.APIClient
}

func NewProfile(ctx context.Context, api adapter.APIClient, sessions resource.SessionSource, log *logger.Logger) *Profile {
	p := &Profile{api: api}
	p.Provider = resource.New(ctx, "profile", sessions, func(ctx context.Context, _ session.Snapshot) (models.Provider, error) {
		provider, err := api.Profile(ctx)
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Provider{}, nil
		}
		return provider, err
	}, log)
	p.States = resource.New(ctx, "geo_states", sessions, func(ctx context.Context, _ session.Snapshot) ([]models.State, error) {
		return api.States(ctx), nil
	}, log)
	p.CNAEClasses = resource.New(ctx, "geo_cnae_classes", sessions, func(ctx context.Context, _ session.Snapshot) ([]models.CNAEClass, error) {
		return api.CNAEClasses(ctx), nil
	}, log)
	return p
}

// Load fetches the profile and the reference lists.
func (p *Profile) Load() {
	p.Provider.Refetch()
	p.States.Refetch()
	p.CNAEClasses.Refetch()
}

func (p *Profile) Refresh() {
	p.Provider.Refetch()
}

// Exists reports whether the user already has a profile.
func (p *Profile) Exists() bool {
	return p.Provider.State().Data.ID != ""
}

// Cities lists the municipalities of uf; empty when they cannot be loaded.
func (p *Profile) Cities(ctx context.Context, uf string) []models.City {
	return p.api.Cities(ctx, uf)
}

// StateName returns the name of the federative unit uf, or uf itself.
func (p *Profile) StateName(uf string) string {
	for _, s := range p.States.State().Data {
		if strings.EqualFold(s.Sigla, uf) {
			return s.Nome
		}
	}
	return uf
}

// CNAEDescription returns the description of the cnae class id, or "".
func (p *Profile) CNAEDescription(id string) string {
	for _, c := range p.CNAEClasses.State().Data {
		if c.ID == id {
			return c.Descricao
		}
	}
	return ""
}

// Save checks form against the reference lists and saves the profile.
// A reference list that could not be loaded does not restrict its field.
func (p *Profile) Save(ctx context.Context, form ProfileForm) (models.Provider, error) {
	update, err := p.update(ctx, form)
	if err != nil {
		return models.Provider{}, err
	}

	saved, err := p.api.SaveProfile(ctx, update)
	if err != nil {
		return saved, err
	}
	p.Provider.Mutate(func(models.Provider) models.Provider { return saved })
	return saved, nil
}

func (p *Profile) update(ctx context.Context, form ProfileForm) (models.ProviderUpdate, error) {
	var update models.ProviderUpdate
	set := func(v string) *string {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil
		}
		return &v
	}
	update.BusinessName = set(form.BusinessName)
	update.Segment = set(form.Segment)

	uf := strings.ToUpper(strings.TrimSpace(form.State))
	if uf != "" {
		states := p.States.State().Data
		if len(states) > 0 && !hasState(states, uf) {
			return update, fmt.Errorf("%w: %s", ErrUnknownState, uf)
		}
		update.State = &uf
	}

	if city := strings.TrimSpace(form.City); city != "" {
		if uf == "" {
			uf = strings.ToUpper(p.Provider.State().Data.State)
		}
		if cities := p.Cities(ctx, uf); len(cities) > 0 {
			name, ok := cityName(cities, city)
			if !ok {
				return update, fmt.Errorf("%w: %s", ErrUnknownCity, city)
			}
			city = name
		}
		update.City = &city
	}

	if cnae := strings.TrimSpace(form.CNAE); cnae != "" {
		classes := p.CNAEClasses.State().Data
		if len(classes) > 0 && !hasCNAE(classes, cnae) {
			return update, fmt.Errorf("%w: %s", ErrUnknownCNAE, cnae)
		}
		update.CNAE = &cnae
	}

	return update, nil
}

func (p *Profile) Close() {
	p.Provider.Close()
	p.States.Close()
	p.CNAEClasses.Close()
}

func hasState(states []models.State, uf string) bool {
	for _, s := range states {
		if s.Sigla == uf {
			return true
		}
	}
	return false
}

// cityName matches city case-insensitively and returns the spelling IBGE uses.
func cityName(cities []models.City, city string) (string, bool) {
	for _, c := range cities {
		if strings.EqualFold(c.Nome, city) {
			return c.Nome, true
		}
	}
	return "", false
}

func hasCNAE(classes []models.CNAEClass, id string) bool {
	for _, c := range classes {
		if c.ID == id {
			return true
		}
	}
	return false
}
