package mockdata

import (
	"fmt"
	"strings"

	"insight-srv/internal/model"
	"insight-srv/pkg/random"
)

func (g *implGenerator) Mentions(count int) []model.Mention {
	if count < 0 {
		count = 0
	}
	out := make([]model.Mention, count)
	for i := range out {
		out[i] = model.Mention{
			ID:           fmt.Sprintf("mention-%d", i+1),
			Text:         random.Item(g.src, mentionTexts),
			Author:       g.pickAuthor(),
			AuthorHandle: random.Item(g.src, authors),
			Platform:     random.Item(g.src, model.MentionSources),
			Timestamp:    g.randomDate(14),
			Sentiment:    random.Item(g.src, model.Sentiments),
			Engagement: model.Engagement{
				Likes:    random.Int(g.src, 0, 1000),
				Shares:   random.Int(g.src, 0, 500),
				Comments: random.Int(g.src, 0, 200),
			},
			Entities: g.pickKeywords(2),
			URL:      fmt.Sprintf("https://example.com/post/%d", i+1),
		}
	}
	return out
}

// pickAuthor strips the "u/" prefix of reddit handles; twitter handles are redrawn as-is.
func (g *implGenerator) pickAuthor() string {
	if _, name, ok := strings.Cut(random.Item(g.src, authors), "/"); ok {
		return name
	}
	return random.Item(g.src, authors)
}
