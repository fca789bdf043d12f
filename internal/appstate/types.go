package appstate

import "insight-srv/internal/model"

const (
	DefaultBrand      = "TechStart Inc"
	DefaultAlertCount = 3
)

// Config - Store configuration
type Config struct {
	DefaultBrand string
}

// State is a point-in-time copy of the application state.
type State struct {
	SidebarCollapsed bool               `json:"sidebarCollapsed"`
	SelectedBrand    string             `json:"selectedBrand"`
	AlertCount       int                `json:"alertCount"`
	RealTimeEnabled  bool               `json:"isRealTimeEnabled"`
	HasSeenTour      bool               `json:"hasSeenTour"`
	Comparison       []model.Influencer `json:"comparison"`
}

// CompanyID is the normalized id of the selected brand.
func (s State) CompanyID() string {
	return model.NormalizeCompanyID(s.SelectedBrand)
}

// Page identifies a dashboard page whose loads are tracked by generation.
type Page string

const (
	PageOverview    Page = "overview"
	PageAlerts      Page = "alerts"
	PageMentions    Page = "mentions"
	PageInfluencers Page = "influencers"
)

var Pages = []Page{PageOverview, PageAlerts, PageMentions, PageInfluencers}
