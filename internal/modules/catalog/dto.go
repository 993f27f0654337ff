package catalog

// PricePreviewRow shows what one service costs for a given
// photographer, next to the undiscounted catalog price.
type PricePreviewRow struct {
	ServiceID      int64   `json:"service_id"`
	ServiceName    string  `json:"service_name"`
	BasePrice      float64 `json:"base_price"`
	EffectivePrice float64 `json:"effective_price"`
	Discounted     bool    `json:"discounted"`
}

type PricePreview struct {
	PhotographerID int64             `json:"photographer_id"`
	B2B            bool              `json:"b2b"`
	Rows           []PricePreviewRow `json:"rows"`
}
