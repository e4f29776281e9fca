// Package searchindex serves site search from a pre-built JSON bundle.
//
// A bundle holds every searchable document:
//
//	{"documents": [{"id": "...", "url": "...", "kind": "review", "title": "...", "excerpt": "..."}]}
//
// Documents stay as raw JSON until a result handle asks for them.
package searchindex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"filmlog/internal/domain"
	"filmlog/internal/logging"
	"filmlog/internal/ui/services/search"
)

// ErrNotInitialized is returned when searching before Init or after Destroy
var ErrNotInitialized = errors.New("search index not initialized")

// cancellation is checked every this many documents while scoring
const checkEvery = 256

var _ search.Provider = (*Index)(nil)

type bundle struct {
	Documents []json.RawMessage `json:"documents"`
}

// indexed fields of one document
type fields struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Excerpt string            `json:"excerpt"`
	Meta    map[string]string `json:"meta"`
}

type document struct {
	id     string
	raw    json.RawMessage
	title  map[string]bool
	tokens map[string]bool
}

// Index is an in-memory token index
type Index struct {
	mu     sync.RWMutex
	docs   []document
	terms  []string // sorted vocabulary
	posts  map[string][]int
	loaded bool
}

// New creates an empty index. Call Init before searching.
func New() *Index {
	return &Index{}
}

// Init reads and indexes the bundle at path. It does nothing when the index
// is already loaded.
func (ix *Index) Init(ctx context.Context, path string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.loaded {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read search bundle: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("failed to parse search bundle: %w", err)
	}

	docs := make([]document, 0, len(b.Documents))
	posts := make(map[string][]int)
	for i, raw := range b.Documents {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		var f fields
		if err := json.Unmarshal(raw, &f); err != nil {
			return fmt.Errorf("failed to parse search document %d: %w", i, err)
		}
		if f.ID == "" {
			return fmt.Errorf("search document %d has no id", i)
		}

		d := document{id: f.ID, raw: raw, title: set(tokenize(f.Title)), tokens: map[string]bool{}}
		for t := range d.title {
			d.tokens[t] = true
		}
		for _, t := range tokenize(f.Excerpt) {
			d.tokens[t] = true
		}
		for _, v := range f.Meta {
			for _, t := range tokenize(v) {
				d.tokens[t] = true
			}
		}
		for t := range d.tokens {
			posts[t] = append(posts[t], len(docs))
		}
		docs = append(docs, d)
	}

	terms := make([]string, 0, len(posts))
	for t := range posts {
		terms = append(terms, t)
	}
	slices.Sort(terms)

	ix.docs, ix.terms, ix.posts, ix.loaded = docs, terms, posts, true

	log := logging.Logger()
	log.Info().Str("bundle", path).Int("documents", len(docs)).Int("terms", len(terms)).Msg("search index loaded")
	return nil
}

// Search returns every document matching all query words, title matches
// first. A word matches any indexed word it is a prefix of.
func (ix *Index) Search(ctx context.Context, query string) (search.Response, error) {
	requestID := uuid.NewString()
	log := logging.Logger().With().Str("request_id", requestID).Str("query", query).Logger()

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if !ix.loaded {
		return search.Response{}, ErrNotInitialized
	}

	words := tokenize(query)
	if len(words) == 0 {
		return search.Response{}, nil
	}

	var candidates []int
	for i, w := range words {
		if err := aborted(ctx); err != nil {
			log.Debug().Msg("search aborted")
			return search.Response{}, err
		}
		matches := ix.prefixMatches(w)
		if i == 0 {
			candidates = matches
		} else {
			candidates = intersect(candidates, matches)
		}
		if len(candidates) == 0 {
			break
		}
	}

	type scored struct {
		doc   int
		score int
	}
	ranked := make([]scored, 0, len(candidates))
	for n, doc := range candidates {
		if n%checkEvery == 0 {
			if err := aborted(ctx); err != nil {
				log.Debug().Msg("search aborted")
				return search.Response{}, err
			}
		}
		ranked = append(ranked, scored{doc: doc, score: ix.score(doc, words)})
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	results := make([]search.ResultHandle, len(ranked))
	for i, r := range ranked {
		d := ix.docs[r.doc]
		results[i] = handle{id: d.id, raw: d.raw}
	}
	log.Debug().Int("results", len(results)).Msg("search complete")
	return search.Response{Results: results, TotalResultCount: len(results)}, nil
}

// Destroy drops the loaded index
func (ix *Index) Destroy(ctx context.Context) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.docs, ix.terms, ix.posts, ix.loaded = nil, nil, nil, false
	return nil
}

// Len returns the number of indexed documents
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.docs)
}

// prefixMatches returns the sorted ids of documents with a word starting with w
func (ix *Index) prefixMatches(w string) []int {
	start := sort.SearchStrings(ix.terms, w)
	seen := map[int]bool{}
	var out []int
	for _, t := range ix.terms[start:] {
		if !strings.HasPrefix(t, w) {
			break
		}
		for _, doc := range ix.posts[t] {
			if !seen[doc] {
				seen[doc] = true
				out = append(out, doc)
			}
		}
	}
	slices.Sort(out)
	return out
}

// score counts exact word hits, with title hits weighted double
func (ix *Index) score(doc int, words []string) int {
	d := ix.docs[doc]
	score := 0
	for _, w := range words {
		if d.title[w] {
			score += 2
		} else if d.tokens[w] {
			score++
		}
	}
	return score
}

func aborted(ctx context.Context) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", search.ErrAborted, ctx.Err())
	}
	return nil
}

type handle struct {
	id  string
	raw json.RawMessage
}

func (h handle) ID() string { return h.id }

func (h handle) Data(ctx context.Context) (domain.Document, error) {
	if err := aborted(ctx); err != nil {
		return domain.Document{}, err
	}
	var doc domain.Document
	if err := json.Unmarshal(h.raw, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("failed to decode document %s: %w", h.id, err)
	}
	return doc, nil
}

// tokenize splits s into lower-cased, accent-folded words
func tokenize(s string) []string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func set(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// intersect merges two sorted id lists
func intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
