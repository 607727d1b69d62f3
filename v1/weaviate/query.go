package weaviate

import (
	"context"
	"fmt"
	"strings"

	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

// defaultGenerativePrompt is used when a generative query carries no prompt.
// The {query} placeholder is replaced with the query text.
const defaultGenerativePrompt = "Explain in one short paragraph why this result is relevant to the query: {query}"

// VectorSearch performs nearest-neighbor search over the embedding of
// q.Text. Results carry a distance where lower is better.
func (c *Client) VectorSearch(ctx context.Context, q vectorstore.Query) (vectorstore.QueryResult, error) {
	if err := c.validateQuery(q); err != nil {
		return nil, err
	}

	properties, err := c.projection(ctx, q)
	if err != nil {
		return nil, err
	}

	nearText := (&graphql.NearTextArgumentBuilder{}).WithConcepts([]string{q.Text})

	resp, err := c.api.GraphQL().Get().
		WithClassName(q.Collection).
		WithNearText(nearText).
		WithLimit(limitOf(q)).
		WithFields(fieldsFor(properties, "distance")...).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: vector search: %v", vectorstore.ErrQuery, err)
	}
	return parseGetResponse(resp, q.Collection)
}

// KeywordSearch performs BM25 lexical ranking over q.Text. Results carry a
// score where higher is better.
func (c *Client) KeywordSearch(ctx context.Context, q vectorstore.Query) (vectorstore.QueryResult, error) {
	if err := c.validateQuery(q); err != nil {
		return nil, err
	}

	properties, err := c.projection(ctx, q)
	if err != nil {
		return nil, err
	}

	bm25 := (&graphql.BM25ArgumentBuilder{}).WithQuery(q.Text)

	resp, err := c.api.GraphQL().Get().
		WithClassName(q.Collection).
		WithBM25(bm25).
		WithLimit(limitOf(q)).
		WithFields(fieldsFor(properties, "score")...).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: keyword search: %v", vectorstore.ErrQuery, err)
	}
	return parseGetResponse(resp, q.Collection)
}

// HybridSearch blends vector and keyword signals. q.Alpha weights the vector
// side: 0 is pure keyword, 1 is pure vector. Out-of-range alpha is rejected
// before any remote call.
func (c *Client) HybridSearch(ctx context.Context, q vectorstore.Query) (vectorstore.QueryResult, error) {
	if q.Alpha < 0 || q.Alpha > 1 {
		return nil, fmt.Errorf("%w: hybrid alpha %v outside [0,1]", vectorstore.ErrInvalidParameter, q.Alpha)
	}
	if err := c.validateQuery(q); err != nil {
		return nil, err
	}

	properties, err := c.projection(ctx, q)
	if err != nil {
		return nil, err
	}

	hybrid := (&graphql.HybridArgumentBuilder{}).
		WithQuery(q.Text).
		WithAlpha(float32(q.Alpha))

	resp, err := c.api.GraphQL().Get().
		WithClassName(q.Collection).
		WithHybrid(hybrid).
		WithLimit(limitOf(q)).
		WithFields(fieldsFor(properties, "score", "explainScore")...).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: hybrid search: %v", vectorstore.ErrQuery, err)
	}
	return parseGetResponse(resp, q.Collection)
}

// GenerativeSearch runs a vector search and asks the collection's generative
// module to produce text for each result from q.Prompt. A generation failure
// for one item leaves that item's Generated field empty; the query itself
// still succeeds.
func (c *Client) GenerativeSearch(ctx context.Context, q vectorstore.Query) (vectorstore.QueryResult, error) {
	if err := c.validateQuery(q); err != nil {
		return nil, err
	}

	properties, err := c.projection(ctx, q)
	if err != nil {
		return nil, err
	}

	prompt := q.Prompt
	if prompt == "" {
		prompt = defaultGenerativePrompt
	}
	prompt = strings.ReplaceAll(prompt, "{query}", q.Text)

	nearText := (&graphql.NearTextArgumentBuilder{}).WithConcepts([]string{q.Text})
	generative := graphql.NewGenerativeSearch().SingleResult(prompt)

	resp, err := c.api.GraphQL().Get().
		WithClassName(q.Collection).
		WithNearText(nearText).
		WithGenerativeSearch(generative).
		WithLimit(limitOf(q)).
		WithFields(fieldsFor(properties, "distance")...).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: generative search: %v", vectorstore.ErrQuery, err)
	}
	return parseGetResponse(resp, q.Collection)
}

// validateQuery rejects malformed queries before any network round trip.
func (c *Client) validateQuery(q vectorstore.Query) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if q.Collection == "" {
		return fmt.Errorf("%w: collection name is empty", vectorstore.ErrInvalidParameter)
	}
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: query text is empty", vectorstore.ErrInvalidParameter)
	}
	return nil
}

func limitOf(q vectorstore.Query) int {
	if q.Limit > 0 {
		return q.Limit
	}
	return defaultQueryLimit
}

// projection resolves the property names to fetch: the query's explicit list
// when given, otherwise all properties of the live collection.
func (c *Client) projection(ctx context.Context, q vectorstore.Query) ([]string, error) {
	if len(q.Properties) > 0 {
		return q.Properties, nil
	}

	class, err := c.api.Schema().ClassGetter().WithClassName(q.Collection).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve properties of %q: %v", vectorstore.ErrQuery, q.Collection, err)
	}

	names := make([]string, 0, len(class.Properties))
	for _, p := range class.Properties {
		names = append(names, p.Name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: collection %q has no properties", vectorstore.ErrQuery, q.Collection)
	}
	return names, nil
}
