package model

// Influencer is a recommended account to engage with.
type Influencer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Handle         string   `json:"handle"`
	Platform       Platform `json:"platform"`
	AvatarURL      string   `json:"avatarUrl"`
	MatchScore     int      `json:"matchScore"`
	Reach          int      `json:"reach"`
	EngagementRate float64  `json:"engagementRate"`
	ToxicityScore  int      `json:"toxicityScore"`
	RecentTopics   []string `json:"recentTopics"`
	WhyRecommended string   `json:"whyRecommended"`
}

// AvatarURL builds the generated avatar reference for seed.
func AvatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}
