package paginator

const (
	// DefaultPage is used when the requested page is below 1.
	DefaultPage = 1
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit = 20
	// MaxLimit caps the page size.
	MaxLimit = 100
)
