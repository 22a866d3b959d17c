package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateBannerRequest struct {
	ImageURL   string `json:"image_url"   validate:"required,url"`
	LinkURL    string `json:"link_url"    validate:"omitempty,url"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
	IsActive   bool   `json:"is_active"`
}

type UpdateBannerRequest struct {
	ImageURL   string `json:"image_url"   validate:"omitempty,url"`
	LinkURL    string `json:"link_url"    validate:"omitempty,url"`
	OrderIndex *int   `json:"order_index" validate:"omitempty,gte=0"`
	IsActive   *bool  `json:"is_active"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// PublicBannerResponse is what the login page sees: image and link, nothing else.
type PublicBannerResponse struct {
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
}

type PublicBannersResponse struct {
	Banners []PublicBannerResponse `json:"banners"`
}

type BannerResponse struct {
	ID         string `json:"id"`
	ImageURL   string `json:"image_url"`
	LinkURL    string `json:"link_url"`
	OrderIndex int    `json:"order_index"`
	IsActive   bool   `json:"is_active"`
}
