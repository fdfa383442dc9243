package client

import (
	"context"
	"sync"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
)

// DirectorySorts is the order the sort selector cycles through.
var DirectorySorts = []models.ProviderSort{models.ProviderSortNewest, models.ProviderSortRating, models.ProviderSortRanking}

// Directory is the public provider directory narrowed by a filter.
type Directory struct {
	res *resource.Resource[[]models.Provider]

	mu     sync.Mutex
	filter models.ProviderFilter
}

func NewDirectory(ctx context.Context, api adapter.APIClient, sessions resource.SessionSource, log *logger.Logger) *Directory {
	d := &Directory{}
	d.res = resource.New(ctx, "providers", sessions, func(ctx context.Context, _ session.Snapshot) ([]models.Provider, error) {
		return api.ListProviders(ctx, d.Filter())
	}, log)
	return d
}

func (d *Directory) Filter() models.ProviderFilter {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filter
}

// SetFilter refetches once when f differs from the current filter.
func (d *Directory) SetFilter(f models.ProviderFilter) bool {
	d.mu.Lock()
	if f == d.filter {
		d.mu.Unlock()
		return false
	}
	d.filter = f
	d.mu.Unlock()

	d.res.Refetch()
	return true
}

// NextSort switches to the sort order after the current one.
func (d *Directory) NextSort() models.ProviderSort {
	f := d.Filter()
	next := DirectorySorts[0]
	for i, s := range DirectorySorts {
		if s == f.SortBy {
			next = DirectorySorts[(i+1)%len(DirectorySorts)]
			break
		}
	}
	f.SortBy = next
	d.SetFilter(f)
	return next
}

func (d *Directory) State() resource.State[[]models.Provider] {
	return d.res.State()
}

func (d *Directory) Subscribe(fn func(resource.State[[]models.Provider])) func() {
	return d.res.Subscribe(fn)
}

func (d *Directory) Refresh() {
	d.res.Refetch()
}

func (d *Directory) Close() {
	d.res.Close()
}
