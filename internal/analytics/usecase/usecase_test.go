package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"insight-srv/internal/analytics"
	"insight-srv/internal/analytics/repository"
	"insight-srv/internal/mockdata"
	"insight-srv/internal/model"
	"insight-srv/internal/xai"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/log"
	"insight-srv/pkg/random"

	"github.com/m-mizutani/gt"
)

var (
	fixedNow      = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	errBackendOff = errors.New("connection refused")
)

type fakeBackend struct {
	mu        sync.Mutex
	companies []backend.Company
	sentiment backend.Sentiment
	keywords  []backend.Keyword
	themes    []string
	mentions  map[string][]backend.RawMention
	err       error
	calls     int
}

func (f *fakeBackend) called() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeBackend) GetCompanies(context.Context) ([]backend.Company, error) {
	return f.companies, f.called()
}

func (f *fakeBackend) GetSentiment(context.Context, string) (backend.Sentiment, error) {
	return f.sentiment, f.called()
}

func (f *fakeBackend) GetKeywords(context.Context, string) ([]backend.Keyword, error) {
	return f.keywords, f.called()
}

func (f *fakeBackend) GetThemes(context.Context, string) ([]string, error) {
	return f.themes, f.called()
}

func (f *fakeBackend) GetMentions(_ context.Context, source, _ string) ([]backend.RawMention, error) {
	return f.mentions[source], f.called()
}

func (f *fakeBackend) Health(context.Context) error {
	return f.called()
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return v, nil
}

func (m *memCache) Save(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

type recordingPublisher struct {
	companyID string
	alerts    []model.Alert
	err       error
}

func (p *recordingPublisher) PublishDerivedAlerts(_ context.Context, companyID string, alerts []model.Alert) error {
	p.companyID = companyID
	p.alerts = alerts
	return p.err
}

func newTestUseCase(be backend.IBackend, cfg Config, opts ...Option) analytics.UseCase {
	src := random.New(7)
	clock := func() time.Time { return fixedNow }
	opts = append([]Option{WithClock(clock)}, opts...)
	return New(be, mockdata.New(src, clock), src, log.NewNop(), cfg, opts...)
}

func mentionsWith(n int, sentiment string) []backend.RawMention {
	out := make([]backend.RawMention, n)
	for i := range out {
		out[i] = backend.RawMention{
			"text":      fmt.Sprintf("mention %d", i),
			"author":    fmt.Sprintf("user%d", i),
			"sentiment": sentiment,
		}
	}
	return out
}

func TestRiskFromSentiment(t *testing.T) {
	testCases := []struct {
		name      string
		sentiment backend.Sentiment
		level     model.RiskLevel
		score     int
	}{
		{"empty", backend.Sentiment{}, model.RiskAmber, 50},
		{"mostly negative", backend.Sentiment{Positive: 10, Neutral: 10, Negative: 80}, model.RiskRed, 94},
		{"elevated negative", backend.Sentiment{Positive: 40, Neutral: 30, Negative: 30}, model.RiskAmber, 52},
		{"low positive", backend.Sentiment{Positive: 20, Neutral: 70, Negative: 10}, model.RiskAmber, 44},
		{"healthy", backend.Sentiment{Positive: 60, Neutral: 30, Negative: 10}, model.RiskGreen, 23},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := riskFromSentiment(tc.sentiment, fixedNow)
			gt.Equal(t, got.CurrentLevel, tc.level)
			gt.Equal(t, got.Score, tc.score)
			gt.Equal(t, got.Trend, model.TrendStable)
			gt.True(t, got.Score >= 0 && got.Score <= 100)
		})
	}

	t.Run("threat text", func(t *testing.T) {
		got := riskFromSentiment(backend.Sentiment{Positive: 60, Neutral: 30, Negative: 10}, fixedNow)
		gt.Equal(t, got.TopThreats, []string{
			"10 negative mentions detected",
			"Negative sentiment ratio: 10.0%",
			"Positive sentiment ratio: 60.0%",
		})
	})

	t.Run("insufficient data", func(t *testing.T) {
		got := riskFromSentiment(backend.Sentiment{}, fixedNow)
		gt.Equal(t, got.TopThreats, []string{"Insufficient data for analysis"})
		gt.Equal(t, got.Recommendation, "Run analysis to gather data for this company")
	})
}

func TestGetRiskSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("empty company", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{}, DefaultConfig())
		_, err := uc.GetRiskSummary(ctx, "  ")
		gt.True(t, errors.Is(err, analytics.ErrCompanyRequired))
	})

	t.Run("backend failure is masked", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{err: errBackendOff}, DefaultConfig())
		got, err := uc.GetRiskSummary(ctx, "Acme Corporation")
		gt.NoError(t, err)
		gt.True(t, got.CurrentLevel.Rank() >= 0)
		gt.True(t, len(got.TopThreats) > 0)
	})

	t.Run("mock mode skips backend", func(t *testing.T) {
		be := &fakeBackend{}
		cfg := DefaultConfig()
		cfg.UseMock = true
		uc := newTestUseCase(be, cfg)
		_, err := uc.GetRiskSummary(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, be.calls, 0)
	})
}

func TestGetSentimentSeries(t *testing.T) {
	ctx := context.Background()

	t.Run("single point", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{sentiment: backend.Sentiment{Positive: 30, Neutral: 50, Negative: 20}}, DefaultConfig())
		got, err := uc.GetSentimentSeries(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), 1)
		gt.Equal(t, got[0].Overall, 0.1)
		gt.Equal(t, got[0].Timestamp, fixedNow)
	})

	t.Run("zero total", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{}, DefaultConfig())
		got, err := uc.GetSentimentSeries(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, got[0].Overall, 0.0)
	})

	t.Run("fallback", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{err: errBackendOff}, DefaultConfig())
		got, err := uc.GetSentimentSeries(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), mockdata.DefaultSentimentDays+1)
	})
}

func TestListAlerts(t *testing.T) {
	ctx := context.Background()

	t.Run("no mentions", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{}, DefaultConfig())
		got, err := uc.ListAlerts(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), 0)
	})

	t.Run("negative spike", func(t *testing.T) {
		pub := &recordingPublisher{}
		be := &fakeBackend{mentions: map[string][]backend.RawMention{
			backend.SourceNews:    mentionsWith(7, "Negative"),
			backend.SourceTwitter: mentionsWith(5, "negative"),
		}}
		uc := newTestUseCase(be, DefaultConfig(), WithPublisher(pub))

		got, err := uc.ListAlerts(ctx, "Acme Corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), 1)
		gt.Equal(t, got[0].ID, negativeSpikeAlertID)
		gt.Equal(t, got[0].Severity, model.SeverityHigh)
		gt.Equal(t, got[0].RelatedMentions, 12)
		gt.Equal(t, pub.companyID, "acme_corporation")
		gt.Equal(t, len(pub.alerts), 1)
	})

	t.Run("volume spike", func(t *testing.T) {
		be := &fakeBackend{mentions: map[string][]backend.RawMention{
			backend.SourceReddit: mentionsWith(51, "positive"),
		}}
		uc := newTestUseCase(be, DefaultConfig())
		got, err := uc.ListAlerts(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), 1)
		gt.Equal(t, got[0].ID, volumeSpikeAlertID)
		gt.Equal(t, got[0].Severity, model.SeverityMedium)
	})

	t.Run("quiet period", func(t *testing.T) {
		be := &fakeBackend{mentions: map[string][]backend.RawMention{
			backend.SourceNews: mentionsWith(3, "negative"),
		}}
		uc := newTestUseCase(be, DefaultConfig())
		got, err := uc.ListAlerts(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), quietAlertCount)
	})

	t.Run("publish failure is not surfaced", func(t *testing.T) {
		be := &fakeBackend{mentions: map[string][]backend.RawMention{
			backend.SourceNews: mentionsWith(25, "negative"),
		}}
		uc := newTestUseCase(be, DefaultConfig(), WithPublisher(&recordingPublisher{err: errors.New("broker down")}))
		got, err := uc.ListAlerts(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, got[0].Severity, model.SeverityCritical)
	})

	t.Run("backend failure", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{err: errBackendOff}, DefaultConfig())
		got, err := uc.ListAlerts(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), mockdata.DefaultAlertCount)
	})
}

func TestNegativeSpikeSeverity(t *testing.T) {
	gt.Equal(t, negativeSpikeSeverity(6), model.SeverityMedium)
	gt.Equal(t, negativeSpikeSeverity(10), model.SeverityMedium)
	gt.Equal(t, negativeSpikeSeverity(11), model.SeverityHigh)
	gt.Equal(t, negativeSpikeSeverity(21), model.SeverityCritical)
}

func TestListInfluencers(t *testing.T) {
	ctx := context.Background()

	t.Run("ranked by mention count", func(t *testing.T) {
		be := &fakeBackend{mentions: map[string][]backend.RawMention{
			backend.SourceReddit: {
				{"author": "alice", "sentiment": "negative"},
				{"author": "bob"},
				{"author": "alice"},
				{"author": "Unknown"},
				{"author": ""},
			},
			backend.SourceTwitter: {
				{"author": "carol", "source": "reddit"},
				{"author": "alice"},
				{"author": "bob"},
			},
		}}
		uc := newTestUseCase(be, DefaultConfig())

		got, err := uc.ListInfluencers(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), 3)
		gt.Equal(t, got[0].Name, "alice")
		gt.Equal(t, got[0].MatchScore, 76)
		gt.Equal(t, got[0].Platform, model.PlatformReddit)
		gt.True(t, got[0].ToxicityScore >= 30 && got[0].ToxicityScore < 70)
		gt.Equal(t, got[1].Name, "bob")
		gt.Equal(t, got[2].Name, "carol")
		gt.Equal(t, got[2].Platform, model.PlatformReddit)
		gt.Equal(t, got[2].Handle, "@carol")
		gt.Equal(t, got[2].WhyRecommended, "Active contributor with 1 mentions about your brand")

		for _, inf := range got {
			gt.True(t, inf.Reach >= 100000 && inf.Reach < 600000)
			gt.True(t, inf.EngagementRate >= 3 && inf.EngagementRate < 8)
		}
	})

	t.Run("match score is capped", func(t *testing.T) {
		be := &fakeBackend{mentions: map[string][]backend.RawMention{
			backend.SourceTwitter: func() []backend.RawMention {
				out := make([]backend.RawMention, 20)
				for i := range out {
					out[i] = backend.RawMention{"author": "dave"}
				}
				return out
			}(),
		}}
		uc := newTestUseCase(be, DefaultConfig())
		got, err := uc.ListInfluencers(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, got[0].MatchScore, 95)
		gt.Equal(t, got[0].Platform, model.PlatformTwitter)
	})

	t.Run("at most five", func(t *testing.T) {
		be := &fakeBackend{mentions: map[string][]backend.RawMention{
			backend.SourceTwitter: mentionsWith(9, "neutral"),
		}}
		uc := newTestUseCase(be, DefaultConfig())
		got, err := uc.ListInfluencers(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), 5)
	})

	t.Run("no authors", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{}, DefaultConfig())
		got, err := uc.ListInfluencers(ctx, "acme_corporation")
		gt.NoError(t, err)
		gt.Equal(t, len(got), mockdata.DefaultInfluencerCount)
	})
}

func TestListMentions(t *testing.T) {
	ctx := context.Background()
	be := &fakeBackend{mentions: map[string][]backend.RawMention{
		backend.SourceNews: {
			{"title": "Old article", "date": "2025-01-01", "url": "https://news/1"},
			{"content": "no date"},
		},
		backend.SourceReddit: {
			{"text": "Newest post", "date": "2025-02-20T10:00:00Z", "author": "alice", "score": 12.0, "num_comments": 4.0},
			{"author": "ghost", "date": "2025-01-15"},
		},
	}}

	t.Run("merged and sorted", func(t *testing.T) {
		uc := newTestUseCase(be, DefaultConfig())
		got, err := uc.ListMentions(ctx, "acme_corporation", analytics.MentionQuery{})
		gt.NoError(t, err)
		gt.Equal(t, len(got), 4)
		gt.Equal(t, got[0].Text, "no date")
		gt.Equal(t, got[0].Timestamp, fixedNow)
		gt.Equal(t, got[1].Text, "Newest post")
		gt.Equal(t, got[2].Text, "")
		gt.Equal(t, got[2].Author, "ghost")
		gt.Equal(t, got[3].Text, "Old article")
		for i := 1; i < len(got); i++ {
			gt.False(t, got[i].Timestamp.After(got[i-1].Timestamp))
		}
	})

	t.Run("single source with limit", func(t *testing.T) {
		uc := newTestUseCase(be, DefaultConfig())
		got, err := uc.ListMentions(ctx, "acme_corporation", analytics.MentionQuery{Source: "Reddit", Limit: 1})
		gt.NoError(t, err)
		gt.Equal(t, len(got), 1)
		gt.Equal(t, got[0].Platform, model.PlatformReddit)
		gt.Equal(t, got[0].Engagement, model.Engagement{Likes: 12, Shares: 4, Comments: 4})
	})

	t.Run("invalid source", func(t *testing.T) {
		uc := newTestUseCase(be, DefaultConfig())
		_, err := uc.ListMentions(ctx, "acme_corporation", analytics.MentionQuery{Source: "wikipedia"})
		gt.True(t, errors.Is(err, analytics.ErrInvalidSource))
	})

	t.Run("negative limit", func(t *testing.T) {
		uc := newTestUseCase(be, DefaultConfig())
		_, err := uc.ListMentions(ctx, "acme_corporation", analytics.MentionQuery{Limit: -1})
		gt.True(t, errors.Is(err, analytics.ErrInvalidLimit))
	})

	t.Run("fallback honours limit", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{err: errBackendOff}, DefaultConfig())
		got, err := uc.ListMentions(ctx, "acme_corporation", analytics.MentionQuery{Limit: 4})
		gt.NoError(t, err)
		gt.Equal(t, len(got), 4)
	})

	t.Run("mock default count", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.UseMock = true
		uc := newTestUseCase(&fakeBackend{}, cfg)
		got, err := uc.ListMentions(ctx, "acme_corporation", analytics.MentionQuery{})
		gt.NoError(t, err)
		gt.Equal(t, len(got), mockdata.DefaultMentionCount)
	})
}

func TestToMention(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := toMention(backend.RawMention{"content": "body"}, backend.SourceTwitter, fixedNow)
		gt.Equal(t, m.Text, "body")
		gt.Equal(t, m.Author, "Unknown")
		gt.Equal(t, m.AuthorHandle, "@unknown")
		gt.Equal(t, m.URL, "#")
		gt.Equal(t, m.Sentiment, model.SentimentNeutral)
		gt.Equal(t, m.Platform, model.PlatformTwitter)
		gt.Equal(t, m.Entities, []string{})
		gt.True(t, m.ID != "")
	})

	t.Run("url is the id", func(t *testing.T) {
		m := toMention(backend.RawMention{"text": "t", "url": "https://x/1", "id": "42"}, backend.SourceNews, fixedNow)
		gt.Equal(t, m.ID, "https://x/1")
	})

	t.Run("id without url", func(t *testing.T) {
		m := toMention(backend.RawMention{"text": "t", "id": "42"}, backend.SourceNews, fixedNow)
		gt.Equal(t, m.ID, "42")
		gt.Equal(t, m.URL, "#")
	})

	t.Run("no text keeps the record", func(t *testing.T) {
		m := toMention(backend.RawMention{"author": "x"}, backend.SourceNews, fixedNow)
		gt.Equal(t, m.Text, "")
		gt.Equal(t, m.Author, "x")
		gt.Equal(t, m.AuthorHandle, "x")
		gt.True(t, m.ID != "")
	})

	t.Run("date layouts", func(t *testing.T) {
		for _, v := range []string{"2025-02-01T08:00:00Z", "Sat, 01 Feb 2025 08:00:00 GMT", "2025-02-01 08:00:00"} {
			gt.True(t, parseMentionDate(v, fixedNow).Equal(time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)))
		}
		gt.Equal(t, parseMentionDate("yesterday", fixedNow), fixedNow)
	})
}

func TestListKeywordTrends(t *testing.T) {
	be := &fakeBackend{keywords: []backend.Keyword{{Keyword: "outage", Count: 250}, {Keyword: "launch", Count: 12}, {Count: 3}}}
	uc := newTestUseCase(be, DefaultConfig())

	got, err := uc.ListKeywordTrends(context.Background(), "acme_corporation")
	gt.NoError(t, err)
	gt.Equal(t, len(got), 2)
	gt.Equal(t, got[0].Intensity, 100)
	gt.Equal(t, got[1].Intensity, 12)
	gt.Equal(t, got[1].Sentiment, model.SentimentNeutral)
	gt.Equal(t, got[1].Trend, model.TrendSteady)
}

func TestListCompanies(t *testing.T) {
	ctx := context.Background()

	t.Run("remote", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{companies: []backend.Company{{ID: "acme"}, {ID: "beta", DisplayName: "Beta"}}}, DefaultConfig())
		got, err := uc.ListCompanies(ctx)
		gt.NoError(t, err)
		gt.Equal(t, got, []model.Company{{ID: "acme", DisplayName: "acme"}, {ID: "beta", DisplayName: "Beta"}})
	})

	t.Run("fallback", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{err: errBackendOff}, DefaultConfig())
		got, err := uc.ListCompanies(ctx)
		gt.NoError(t, err)
		gt.Equal(t, got, model.DefaultCompanies())
	})
}

func TestGeneratedAccessors(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(&fakeBackend{err: errBackendOff}, DefaultConfig())

	spikes, err := uc.ListSpikeDetections(ctx, "acme_corporation")
	gt.NoError(t, err)
	gt.Equal(t, len(spikes), mockdata.SpikeCount)

	exp, err := uc.GetXAIExplanation(ctx, "alert-3")
	gt.NoError(t, err)
	gt.Equal(t, exp.AlertID, "alert-3")

	_, err = uc.GetXAIExplanation(ctx, "")
	gt.True(t, errors.Is(err, analytics.ErrAlertIDRequired))

	gt.False(t, uc.CheckHealth(ctx))
	gt.True(t, newTestUseCase(&fakeBackend{}, DefaultConfig()).CheckHealth(ctx))

	t.Run("composed explanation", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{err: errBackendOff}, DefaultConfig(), WithExplainer(xai.New(random.New(7))))
		exp, err := uc.GetXAIExplanation(ctx, " alert-9 ")
		gt.NoError(t, err)
		gt.Equal(t, exp.AlertID, "alert-9")
		gt.Equal(t, len(exp.TopFeatures), 5)
		gt.Equal(t, exp.TopFeatures[0].Feature, "negative_keywords")
		gt.Equal(t, exp.TopFeatures[0].Contribution, 0.65)
		gt.True(t, exp.Confidence >= 0.5 && exp.Confidence <= 0.95)
		gt.S(t, exp.Reasoning).Contains("negative keywords")

		_, err = uc.GetXAIExplanation(ctx, "  ")
		gt.True(t, errors.Is(err, analytics.ErrAlertIDRequired))
	})
}

func TestCachedResponses(t *testing.T) {
	ctx := context.Background()
	be := &fakeBackend{sentiment: backend.Sentiment{Positive: 5, Neutral: 3, Negative: 2}}
	cache := &memCache{data: map[string][]byte{}}
	uc := newTestUseCase(be, DefaultConfig(), WithCache(cache))

	first, err := uc.GetRiskSummary(ctx, "acme_corporation")
	gt.NoError(t, err)
	second, err := uc.GetRiskSummary(ctx, "acme_corporation")
	gt.NoError(t, err)

	gt.Equal(t, be.calls, 1)
	gt.Equal(t, first, second)
	_, ok := cache.data["sentiment:acme_corporation"]
	gt.True(t, ok)
}
