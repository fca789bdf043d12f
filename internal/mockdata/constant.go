package mockdata

const (
	DefaultSentimentDays   = 30
	DefaultAlertCount      = 10
	DefaultInfluencerCount = 5
	DefaultMentionCount    = 20
	SpikeCount             = 5
	ThemeCount             = 4
)

var keywords = []string{
	"product launch", "customer service", "innovation", "sustainability",
	"leadership", "controversy", "partnership", "expansion",
}

var authors = []string{
	"@techcrunch", "@forbes", "@bloomberg", "@reuters", "@wsj", "u/tech_enthusiast", "u/business_insider",
}

var riskThreats = []string{
	"Negative sentiment spike on social media",
	"Competitor product launch",
	"Customer service complaints trending",
}

var alertTitles = []string{
	"Negative sentiment spike detected",
	"Unusual mention volume increase",
	"Competitor comparison trending",
	"Customer service complaints rising",
	"Product quality concerns mentioned",
	"Positive brand advocacy detected",
	"Influencer engagement opportunity",
	"Crisis keyword detected",
}

var alertDescriptions = []string{
	"Social media mentions show increased negative sentiment over the past 24 hours",
	"Mention volume is 3x higher than normal baseline",
	"Users are comparing your product unfavorably to competitors",
	"Customer service response time complaints are trending",
	"Multiple mentions of product defects or quality issues",
	"Brand advocates are actively promoting your products",
	"High-reach influencer mentioned your brand positively",
	"Keywords associated with crisis situations detected",
}

var influencerNames = []string{
	"Sarah Tech", "Mike Business", "Emma Innovation", "John Industry", "Lisa Digital",
	"Alex Marketing", "Chris Strategy", "Taylor Growth", "Jordan Analytics", "Casey Brand",
}

var influencerTopics = [][]string{
	{"technology", "innovation", "startups"},
	{"business", "leadership", "strategy"},
	{"marketing", "branding", "social media"},
	{"sustainability", "ESG", "corporate responsibility"},
	{"customer experience", "service", "support"},
}

const influencerWhy = "High reach in target demographic, low toxicity, recent relevant content about industry trends"

var mentionTexts = []string{
	"Just tried the new product and I'm impressed! Great quality and customer service.",
	"Disappointed with the recent update. Several features are now broken.",
	"Neutral experience overall. Product works as advertised but nothing special.",
	"Customer support was incredibly helpful in resolving my issue quickly.",
	"Pricing seems high compared to competitors offering similar features.",
	"Love the company's commitment to sustainability and ethical practices.",
	"The latest announcement shows they're really listening to customer feedback.",
	"Had a terrible experience with shipping delays and poor communication.",
}

// SpikeMetrics are the metric names spike detections are reported for.
var SpikeMetrics = []string{"mention_volume", "negative_sentiment", "engagement_rate", "share_velocity"}
