package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

type campaignService struct {
	campaigns store.CampaignRepository
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

func NewCampaignService(campaigns store.CampaignRepository, log *logger.Logger) CampaignService {
	return &campaignService{campaigns: campaigns, ids: utils.NewUUIDGenerator(), logger: log}
}

func (s *campaignService) ListCampaigns(ctx context.Context, userID string) ([]models.Campaign, error) {
	return s.campaigns.ListCampaigns(ctx, userID)
}

func (s *campaignService) GetCampaign(ctx context.Context, id, userID string) (models.Campaign, error) {
	return s.campaigns.GetCampaign(ctx, id, userID)
}

// CreateCampaign inserts a campaign. Campaigns are active unless the input
// says otherwise.
func (s *campaignService) CreateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error) {
	campaign := models.Campaign{
		ID:        s.ids.Generate(),
		UserID:    input.UserID,
		QRCodeID:  input.QRCodeID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		IsActive:  true,
	}
	if input.Name != nil {
		campaign.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		campaign.Description = strings.TrimSpace(*input.Description)
	}
	if input.IsActive != nil {
		campaign.IsActive = *input.IsActive
	}

	return s.campaigns.CreateCampaign(ctx, campaign)
}

func (s *campaignService) UpdateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error) {
	return s.campaigns.UpdateCampaign(ctx, input)
}

func (s *campaignService) DeleteCampaign(ctx context.Context, id, userID string) error {
	return s.campaigns.DeleteCampaign(ctx, id, userID)
}
