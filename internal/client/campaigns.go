package client

import (
	"context"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
)

// Campaigns is the campaign list of the signed-in owner. The server does not
// stream campaign changes, so the list follows fetches and local edits only.
type Campaigns struct {
	List *resource.LiveList[models.Campaign]

	res *resource.Resource[[]models.Campaign]
	api adapter.APIClient
}

func NewCampaigns(ctx context.Context, api adapter.APIClient, sessions resource.SessionSource, log *logger.Logger) *Campaigns {
	c := &Campaigns{
		List: resource.NewLiveList[models.Campaign](log),
		api:  api,
	}
	c.res = resource.New(ctx, "campaigns", sessions, func(ctx context.Context, _ session.Snapshot) ([]models.Campaign, error) {
		return api.ListCampaigns(ctx)
	}, log)
	feedList(c.res, c.List, itself[models.Campaign])

	return c
}

func (c *Campaigns) State() resource.State[[]models.Campaign] {
	return c.res.State()
}

func (c *Campaigns) Subscribe(fn func(resource.State[[]models.Campaign])) func() {
	return c.res.Subscribe(fn)
}

func (c *Campaigns) Refresh() {
	c.res.Refetch()
}

// ToggleActive flips is_active of the campaign with id.
func (c *Campaigns) ToggleActive(ctx context.Context, id string) error {
	current, ok := c.List.Get(id)
	if !ok {
		return ErrUnknownItem
	}

	active := !current.IsActive
	updated, err := c.api.UpdateCampaign(ctx, models.CampaignInput{ID: id, IsActive: &active})
	if err != nil {
		return err
	}
	// the update answer has no joined qr_code_name
	if updated.QRCodeName == nil {
		updated.QRCodeName = current.QRCodeName
	}
	c.List.ApplyInsert(updated)
	return nil
}

func (c *Campaigns) Delete(ctx context.Context, id string) error {
	if err := c.api.DeleteCampaign(ctx, id); err != nil {
		return err
	}
	c.List.ApplyDelete(id)
	return nil
}

func (c *Campaigns) Close() {
	c.res.Close()
}
