// internal/search/local.go
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
)

const defaultLocalLimit = 20

var hitFields = []string{"title", "content", "path", "section"}

// IndexMapping returns the bleve mapping shared by the indexer and LocalClient
func IndexMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Store = true

	kw := bleve.NewTextFieldMapping()
	kw.Analyzer = keyword.Name
	kw.Store = true

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", text)
	doc.AddFieldMappingsAt("content", text)
	doc.AddFieldMappingsAt("path", kw)
	doc.AddFieldMappingsAt("section", kw)

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	return im
}

// LocalClient searches an on-disk bleve index built by the indexer
type LocalClient struct {
	path  string
	index bleve.Index
}

// OpenLocal opens an existing index for reading
func OpenLocal(path string) (*LocalClient, error) {
	idx, err := bleve.Open(path)
	if err != nil {
		return nil, &IndexError{Path: path, Underlying: err}
	}
	return &LocalClient{path: path, index: idx}, nil
}

// NewLocalClient wraps an already opened index
func NewLocalClient(idx bleve.Index) *LocalClient {
	return &LocalClient{path: idx.Name(), index: idx}
}

// Close releases the index
func (c *LocalClient) Close() error {
	return c.index.Close()
}

// Search runs a full-text query against the index
func (c *LocalClient) Search(ctx context.Context, params Params) (*Response, error) {
	term := strings.TrimSpace(params.Term)
	if term == "" {
		return nil, nil
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLocalLimit
	}

	req := bleve.NewSearchRequestOptions(buildQuery(term), limit, 0, false)
	req.Fields = hitFields

	res, err := c.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, &IndexError{Path: c.path, Underlying: err}
	}

	out := &Response{Hits: make([]Hit, 0, len(res.Hits))}
	for _, dm := range res.Hits {
		out.Hits = append(out.Hits, Hit{
			Title:   fieldString(dm.Fields["title"]),
			Content: fieldString(dm.Fields["content"]),
			Path:    fieldString(dm.Fields["path"]),
			Section: fieldString(dm.Fields["section"]),
		})
	}
	return out, nil
}

// buildQuery matches the whole term (fuzzy for longer words) or the last word
// as a prefix, so partially typed input still finds documents.
func buildQuery(term string) query.Query {
	match := bleve.NewMatchQuery(term)
	if len([]rune(term)) > 3 {
		match.SetFuzziness(1)
	}

	words := strings.Fields(strings.ToLower(term))
	last := words[len(words)-1]

	titlePrefix := bleve.NewPrefixQuery(last)
	titlePrefix.SetField("title")
	titlePrefix.SetBoost(2)

	contentPrefix := bleve.NewPrefixQuery(last)
	contentPrefix.SetField("content")

	return bleve.NewDisjunctionQuery(match, titlePrefix, contentPrefix)
}

func fieldString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(t)
	}
}
