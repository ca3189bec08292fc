package dto

type PledgeRequest struct {
	CampaignID string `json:"campaign_id" validate:"required"`
	OriginURL  string `json:"origin_url" validate:"required,url"`
}
