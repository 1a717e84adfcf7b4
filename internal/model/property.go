package model

// Property is a selectable traffic source (a publisher domain) from the
// static catalog. Reference data only; never mutated after load.
type Property struct {
	ID               string  `json:"id" mapstructure:"id"`
	Name             string  `json:"name" mapstructure:"name"`
	MonthlyPageviews float64 `json:"monthly_pageviews" mapstructure:"monthly_pageviews"`
	AdsPerPage       float64 `json:"ads_per_page" mapstructure:"ads_per_page"`
	DisplayCPM       float64 `json:"display_cpm" mapstructure:"display_cpm"`
	VideoCPM         float64 `json:"video_cpm" mapstructure:"video_cpm"`
	// DisplayShare is the fraction of impressions served as display; the
	// remainder is video.
	DisplayShare float64 `json:"display_share" mapstructure:"display_share"`
	Category     string  `json:"category" mapstructure:"category"`
	// SafariShare is the fraction of the audience on Safari/ITP browsers.
	SafariShare float64 `json:"safari_share" mapstructure:"safari_share"`
}
