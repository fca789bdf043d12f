package model

import "time"

// Mention is a single post or article that references the brand.
type Mention struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	Author       string     `json:"author"`
	AuthorHandle string     `json:"authorHandle"`
	Platform     Platform   `json:"platform"`
	Timestamp    time.Time  `json:"timestamp"`
	Sentiment    Sentiment  `json:"sentiment"`
	Engagement   Engagement `json:"engagement"`
	Entities     []string   `json:"entities"`
	URL          string     `json:"url"`

	// Optional fields carried over from backend records.
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Engagement holds interaction counts. All counts are >= 0.
type Engagement struct {
	Likes    int `json:"likes"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}
