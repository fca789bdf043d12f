package analytics

// MentionQuery narrows ListMentions. An empty Source means all sources; Limit 0 means no limit
// for backend data and the default count for generated data.
type MentionQuery struct {
	Source string
	Limit  int
}
