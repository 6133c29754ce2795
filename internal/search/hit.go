// internal/search/hit.go
package search

import "context"

// Mode selects how the backend matches a term
type Mode string

const (
	ModeFulltext Mode = "fulltext"
)

// Hit is one matched document returned by a search backend
type Hit struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Path    string `json:"path"`
	Section string `json:"section"`
}

// Params describes a single search request
type Params struct {
	Term  string
	Mode  Mode
	Limit int
}

// Response holds the raw hits for a term, in backend ranking order
type Response struct {
	Hits []Hit
}

// Client queries a search index. A nil Response with a nil error means the
// backend had nothing to say about the term and is treated as zero hits.
type Client interface {
	Search(ctx context.Context, params Params) (*Response, error)
}
