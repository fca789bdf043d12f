package backend

import "time"

const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultTimeout   = 10 * time.Second
	DefaultRetries   = 1
	DefaultRetryWait = 500 * time.Millisecond
)

// API paths. Company-scoped paths take the normalized company id as the last segment.
const (
	PathCompanies = "/api/companies"
	PathSentiment = "/api/sentiment"
	PathKeywords  = "/api/keywords"
	PathThemes    = "/api/themes"
	PathHealth    = "/api/health"
)

// Mention sources served by the backend, one path each (/api/{source}/{companyId}).
const (
	SourceNews    = "news"
	SourceReddit  = "reddit"
	SourceTwitter = "twitter"
)

// Sources lists every mention source in fetch order.
var Sources = []string{SourceNews, SourceReddit, SourceTwitter}
