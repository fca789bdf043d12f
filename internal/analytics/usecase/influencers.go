package usecase

import (
	"context"
	"fmt"
	"sort"

	"insight-srv/internal/mockdata"
	"insight-srv/internal/model"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/random"
)

var influencerSources = []string{backend.SourceReddit, backend.SourceTwitter}

type authorStats struct {
	name      string
	count     int
	platform  model.Platform
	sentiment model.Sentiment
}

func (uc *implUseCase) ListInfluencers(ctx context.Context, companyID string) ([]model.Influencer, error) {
	id, err := normalizeCompany(companyID)
	if err != nil {
		return nil, err
	}
	if uc.cfg.UseMock {
		return uc.mock.Influencers(mockdata.DefaultInfluencerCount), nil
	}

	mentions, err := uc.fetchMentions(ctx, id, influencerSources)
	if err != nil {
		uc.fallback(ctx, "ListInfluencers", err)
		return uc.mock.Influencers(mockdata.DefaultInfluencerCount), nil
	}

	authors := rankAuthors(mentions)
	if len(authors) == 0 {
		return uc.mock.Influencers(mockdata.DefaultInfluencerCount), nil
	}
	if len(authors) > mockdata.DefaultInfluencerCount {
		authors = authors[:mockdata.DefaultInfluencerCount]
	}

	influencers := make([]model.Influencer, len(authors))
	for i, a := range authors {
		toxicity := random.Int(uc.rnd, 0, 30)
		if a.sentiment == model.SentimentNegative {
			toxicity = random.Int(uc.rnd, 30, 70)
		}
		influencers[i] = model.Influencer{
			ID:             fmt.Sprintf("influencer-%d", i+1),
			Name:           a.name,
			Handle:         "@" + a.name,
			Platform:       a.platform,
			AvatarURL:      model.AvatarURL(a.name),
			MatchScore:     min(95, 70+2*a.count),
			Reach:          random.Int(uc.rnd, 100000, 600000),
			EngagementRate: random.Float(uc.rnd, 3, 8),
			ToxicityScore:  toxicity,
			RecentTopics:   []string{"brand mentions", "product discussion"},
			WhyRecommended: fmt.Sprintf("Active contributor with %d mentions about your brand", a.count),
		}
	}
	return influencers, nil
}

// rankAuthors groups mentions by author and orders them by mention count, ties in first-seen order.
// Platform and sentiment come from the author's first mention.
func rankAuthors(mentions []sourcedMention) []authorStats {
	index := make(map[string]int)
	var authors []authorStats
	for _, m := range mentions {
		name := m.raw.String("author")
		if name == "" || name == unknownAuthor {
			continue
		}
		if i, ok := index[name]; ok {
			authors[i].count++
			continue
		}

		sentiment, ok := model.ParseSentiment(m.raw.String("sentiment"))
		if !ok {
			sentiment = model.SentimentNeutral
		}
		index[name] = len(authors)
		authors = append(authors, authorStats{
			name:      name,
			count:     1,
			platform:  influencerPlatform(m),
			sentiment: sentiment,
		})
	}

	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].count > authors[j].count
	})
	return authors
}

func influencerPlatform(m sourcedMention) model.Platform {
	source := m.raw.String("source")
	if source == "" {
		source = m.source
	}
	if source == backend.SourceReddit {
		return model.PlatformReddit
	}
	return model.PlatformTwitter
}
