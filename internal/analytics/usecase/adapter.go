package usecase

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/pkg/backend"

	"github.com/google/uuid"
)

const (
	unknownAuthor = "Unknown"
	unknownHandle = "@unknown"
	missingURL    = "#"
)

var mentionDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// toMention converts a backend record. A record without text, title or content keeps an empty Text.
func toMention(raw backend.RawMention, source string, now time.Time) model.Mention {
	text := firstNonEmpty(raw.String("text"), raw.String("title"), raw.String("content"))

	author := raw.String("author")
	handle := author
	if author == "" {
		author = unknownAuthor
		handle = unknownHandle
	}

	url := raw.String("url")
	id := firstNonEmpty(url, raw.String("id"))
	if id == "" {
		id = uuid.NewString()
	}
	if url == "" {
		url = missingURL
	}

	sentiment, ok := model.ParseSentiment(raw.String("sentiment"))
	if !ok {
		sentiment = model.SentimentNeutral
	}

	platform, ok := model.ParsePlatform(source)
	if !ok {
		platform = model.PlatformNews
	}

	entities := raw.Strings("entities")
	if entities == nil {
		entities = []string{}
	}

	return model.Mention{
		ID:           id,
		Text:         text,
		Author:       author,
		AuthorHandle: handle,
		Platform:     platform,
		Timestamp:    parseMentionDate(raw.String("date"), now),
		Sentiment:    sentiment,
		Engagement: model.Engagement{
			Likes:    firstPositive(raw.Int("likes"), raw.Int("score")),
			Shares:   firstPositive(raw.Int("shares"), raw.Int("num_comments")),
			Comments: firstPositive(raw.Int("comments"), raw.Int("num_comments")),
		},
		Entities: entities,
		URL:      url,
		Title:    raw.String("title"),
		Content:  raw.String("content"),
		Source:   raw.String("source"),
	}
}

func parseMentionDate(value string, now time.Time) time.Time {
	if value == "" {
		return now
	}
	for _, layout := range mentionDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return now
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
