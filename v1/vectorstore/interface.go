package vectorstore

import "context"

// Store is the common interface for document/vector stores.
// It provides a store-agnostic abstraction over collection management,
// batched ingestion and the four search modes offered by hosted vector
// databases (vector, keyword, hybrid and generative search), allowing
// applications to switch between backends without changing application code.
//
// Example usage:
//
//	func NewSearchService(store vectorstore.Store) *SearchService {
//	    return &SearchService{store: store}
//	}
//
//	// Works with any implementation:
//	// - weaviate.NewClient(cfg)
//	// - a test fake
type Store interface {
	// EnsureCollection creates the collection described by schema.
	// If a collection with the same name already exists it is deleted
	// first—this is a destructive full-replace, not a merge.
	EnsureCollection(ctx context.Context, schema CollectionSchema) error

	// DropCollection removes a collection and all of its objects.
	// Dropping a collection that does not exist is not an error.
	DropCollection(ctx context.Context, name string) error

	// CollectionExists reports whether a collection with the given name exists.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// DeriveSchema introspects a live collection and returns an equivalent
	// schema descriptor carrying the new name. Used by the migration runner
	// to clone a collection shape.
	DeriveSchema(ctx context.Context, source, newName string) (CollectionSchema, error)

	// Count returns the total number of objects stored in a collection.
	Count(ctx context.Context, collection string) (int64, error)

	// Write ingests records into a collection in fixed-size contiguous
	// batches, submitted sequentially. Records missing one of
	// opts.Required are excluded from submission and reported in the
	// returned BatchReport with reason "missing_fields". Per-record
	// failures reported by the remote never abort the write; an error is
	// returned only on total failure, carrying the partial report.
	Write(ctx context.Context, collection string, records []Record, opts WriteOptions) (*BatchReport, error)

	// Iterate returns a forward, single-pass cursor over all objects of a
	// collection. The cursor is restartable from the start only.
	Iterate(ctx context.Context, collection string, pageSize int) (Cursor, error)

	// VectorSearch performs nearest-neighbor search over the embedding of
	// q.Text. Result relevance is a distance (lower is better).
	VectorSearch(ctx context.Context, q Query) (QueryResult, error)

	// KeywordSearch performs BM25 lexical ranking over q.Text.
	// Result relevance is a score (higher is better).
	KeywordSearch(ctx context.Context, q Query) (QueryResult, error)

	// HybridSearch blends vector and keyword signals. q.Alpha must lie in
	// [0,1]; implementations reject out-of-range values before issuing any
	// remote call.
	HybridSearch(ctx context.Context, q Query) (QueryResult, error)

	// GenerativeSearch runs a vector search and invokes the store's
	// generative integration with q.Prompt for each result, attaching the
	// generated text to the ResultItem. A generation failure for one item
	// leaves that item's Generated field empty rather than failing the query.
	GenerativeSearch(ctx context.Context, q Query) (QueryResult, error)
}

// Cursor is a forward iterator over the records of a collection.
// It is finite and single-pass: once Next returns (nil, nil) the cursor is
// exhausted and cannot be rewound.
type Cursor interface {
	// Next returns the next record, or (nil, nil) when the cursor is
	// exhausted.
	Next(ctx context.Context) (*Record, error)
}
