package domain

// Title represents a film, reviewed or not. Watchlist entries and the title
// lists on cast/crew and collection pages share this shape.
type Title struct {
	ImdbID          string   `json:"imdbId"`
	Title           string   `json:"title"`
	SortTitle       string   `json:"sortTitle"`
	ReleaseYear     string   `json:"releaseYear"`
	ReleaseSequence string   `json:"releaseSequence"` // release date + imdb id, unique per title
	ReviewDate      string   `json:"reviewDate,omitempty"`
	ReviewYear      string   `json:"reviewYear,omitempty"`
	ReviewSequence  string   `json:"reviewSequence,omitempty"`
	Grade           string   `json:"grade,omitempty"` // "" when ungraded
	GradeValue      int      `json:"gradeValue,omitempty"`
	Genres          []string `json:"genres"`
	Slug            string   `json:"slug,omitempty"` // "" when not reviewed

	// Watchlist credits
	Directors   []string `json:"directorNames,omitempty"`
	Performers  []string `json:"performerNames,omitempty"`
	Writers     []string `json:"writerNames,omitempty"`
	Collections []string `json:"collectionNames,omitempty"`
}

// Reviewed reports whether the title has a review page
func (t Title) Reviewed() bool {
	return t.Slug != ""
}

// Graded reports whether the title carries a grade
func (t Title) Graded() bool {
	return t.Grade != ""
}

// CastAndCrewMember represents a person credited on reviewed titles
type CastAndCrewMember struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	CreditedAs  []string `json:"creditedAs"` // director, performer, writer
	ReviewCount int      `json:"reviewCount"`
	TotalCount  int      `json:"totalCount"`
}

// Collection represents a named set of titles
type Collection struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ReviewCount int    `json:"reviewCount"`
	TitleCount  int    `json:"titleCount"`
}

// Document is a search result payload resolved from the static index
type Document struct {
	ID      string            `json:"id"`
	URL     string            `json:"url"`
	Kind    string            `json:"kind"` // review, castandcrew, collection
	Title   string            `json:"title"`
	Excerpt string            `json:"excerpt"`
	Meta    map[string]string `json:"meta,omitempty"`
}
