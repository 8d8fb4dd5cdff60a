package vo

import "github.com/joshuarp/image-derivative-api/internal/domain"

type StyleSummary struct {
	ID      string          `json:"id"`
	Label   string          `json:"label"`
	Effects []domain.Effect `json:"effects"`
}

type StyleURL struct {
	URL           string `json:"url"`
	DerivativeURI string `json:"derivative_uri"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
}

type FlushResult struct {
	StyleID string `json:"style_id,omitempty"`
	Source  string `json:"source,omitempty"`
	Removed int    `json:"removed"`
}
