package vectorstore

// PropertyKind is the semantic type of a collection property.
type PropertyKind string

const (
	KindText     PropertyKind = "text"
	KindNumber   PropertyKind = "number"
	KindBoolean  PropertyKind = "boolean"
	KindTextList PropertyKind = "text_list"
)

// PropertyDefinition describes a single property of a collection schema.
type PropertyDefinition struct {
	// Name is the property name records are keyed by
	Name string `json:"name"`

	// Kind is the semantic type of the property
	Kind PropertyKind `json:"kind"`

	// Description is an optional human-readable description
	Description string `json:"description,omitempty"`
}

// CollectionSchema declares the shape of a collection: its unique name, an
// ordered property list and the optional vectorization/generative integration
// tags interpreted by the remote store. Name uniqueness is enforced by the
// remote store, not locally.
type CollectionSchema struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Properties  []PropertyDefinition `json:"properties"`

	// Vectorizer selects the embedding integration for the collection
	// (e.g. "text2vec-openai", "text2vec-cohere" or "none").
	Vectorizer string `json:"vectorizer,omitempty"`

	// Generative selects the text-generation integration used by
	// generative search (e.g. "generative-openai").
	Generative string `json:"generative,omitempty"`
}

// PropertyNames returns the declared property names in order.
func (s CollectionSchema) PropertyNames() []string {
	names := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		names[i] = p.Name
	}
	return names
}

// Record is a single object to be stored in a collection: a mapping from
// property name to value plus an optional explicit identifier. When ID is
// empty the store assigns an opaque one.
type Record struct {
	ID         string         `json:"id,omitempty"`
	Properties map[string]any `json:"properties"`
}

// MissingFields returns the names from required that the record does not
// carry a usable value for, in the order given. A property that is absent,
// nil or an empty string counts as missing.
func (r Record) MissingFields(required []string) []string {
	var missing []string
	for _, name := range required {
		value, ok := r.Properties[name]
		if !ok || value == nil {
			missing = append(missing, name)
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ResultItem is a single normalized search result. Exactly which relevance
// field is populated depends on the search mode: Distance for vector search,
// Score (and possibly ExplainScore) for keyword and hybrid search. Generated
// is set by generative search only.
type ResultItem struct {
	// ID is the identifier of the matched object
	ID string `json:"id,omitempty"`

	// Properties contains the stored property values
	Properties map[string]any `json:"properties"`

	// Score is the lexical or fused relevance score (higher is better)
	Score *float64 `json:"score,omitempty"`

	// Distance is the vector distance (lower is better)
	Distance *float64 `json:"distance,omitempty"`

	// ExplainScore is the store's score breakdown, when requested
	ExplainScore string `json:"explain_score,omitempty"`

	// Generated is the generative-search output for this item, when any
	Generated string `json:"generated,omitempty"`
}

// QueryResult is an ordered sequence of results in the relevance order
// returned by the store. This package never re-sorts results locally.
type QueryResult []ResultItem

// Query carries the parameters shared by all search modes.
type Query struct {
	// Collection is the target collection name
	Collection string `json:"collection"`

	// Text is the search text (embedded, BM25-ranked or both depending
	// on the mode)
	Text string `json:"text"`

	// Limit caps the number of results
	Limit int `json:"limit"`

	// Alpha blends vector and keyword signals for hybrid search:
	// 0 = pure keyword, 1 = pure vector
	Alpha float64 `json:"alpha,omitempty"`

	// Prompt is the generation prompt template for generative search.
	// Occurrences of "{query}" are replaced with Text.
	Prompt string `json:"prompt,omitempty"`

	// Properties selects which properties to return. When empty the
	// adapter derives the projection from the live collection schema.
	Properties []string `json:"properties,omitempty"`
}

// RecordFailure identifies one record that was not ingested and why.
// Index refers to the record's position in the original input sequence.
type RecordFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BatchReport summarizes a batched write: how many records were handed in,
// how many the store accepted, and the per-record failures. Per-record
// failures are data, not errors—callers decide what to do with them.
type BatchReport struct {
	Submitted int             `json:"submitted"`
	Succeeded int             `json:"succeeded"`
	Failures  []RecordFailure `json:"failures,omitempty"`
}

// Fail records a per-record failure.
func (r *BatchReport) Fail(index int, reason string) {
	r.Failures = append(r.Failures, RecordFailure{Index: index, Reason: reason})
}

// ReasonMissingFields marks records excluded from submission because one or
// more required properties were absent.
const ReasonMissingFields = "missing_fields"

// WriteOptions tunes a batched write.
type WriteOptions struct {
	// BatchSize is the number of records submitted per remote call.
	// Implementations fall back to their default when zero.
	BatchSize int

	// Required lists the property names every record must carry.
	// Records missing one are excluded, not submitted and rejected remotely.
	Required []string
}
