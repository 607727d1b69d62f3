package http

import (
	"github.com/ecommax/weavekit/v1/catalog"
	"github.com/ecommax/weavekit/v1/vectorstore"
)

// SearchRequest is the body of every POST /search/* endpoint.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`

	// Limit caps the number of results. Falls back to the server default.
	Limit int `json:"limit"`

	// Alpha weights hybrid search between keyword (0) and vector (1).
	// Only honored by /search/hybrid. A pointer distinguishes "not set"
	// from an explicit 0.
	Alpha *float64 `json:"alpha,omitempty"`

	// Prompt overrides the generation prompt for /search/rag. The {query}
	// placeholder is replaced with the query text.
	Prompt string `json:"prompt,omitempty"`
}

// SearchResult is one item of a search response.
type SearchResult struct {
	ID           string                 `json:"id"`
	Properties   map[string]interface{} `json:"properties"`
	Score        *float64               `json:"score,omitempty"`
	Distance     *float64               `json:"distance,omitempty"`
	ExplainScore string                 `json:"explain_score,omitempty"`
	Generated    string                 `json:"generated,omitempty"`
}

// SearchResponse is the uniform envelope of every search endpoint. Failed
// queries keep the 200 status and report through Success and Message, so
// clients handle one shape.
type SearchResponse struct {
	Success      bool           `json:"success"`
	Results      []SearchResult `json:"results"`
	Query        string         `json:"query"`
	SearchType   string         `json:"search_type"`
	TotalResults int            `json:"total_results"`
	Message      string         `json:"message,omitempty"`
}

// ProductsRequest is the body of POST /products.
type ProductsRequest struct {
	Products []catalog.Product `json:"products" binding:"required"`
}

// IngestFailure mirrors one skipped or rejected record.
type IngestFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// IngestResponse reports the outcome of an ingestion request.
type IngestResponse struct {
	Success   bool            `json:"success"`
	Submitted int             `json:"submitted"`
	Succeeded int             `json:"succeeded"`
	Failures  []IngestFailure `json:"failures,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Connected        bool   `json:"connected"`
	Collection       string `json:"collection"`
	CollectionExists bool   `json:"collection_exists"`
	TotalProducts    int64  `json:"total_products"`
	Message          string `json:"message,omitempty"`
}

func toSearchResults(items vectorstore.QueryResult) []SearchResult {
	results := make([]SearchResult, len(items))
	for i, item := range items {
		results[i] = SearchResult{
			ID:           item.ID,
			Properties:   item.Properties,
			Score:        item.Score,
			Distance:     item.Distance,
			ExplainScore: item.ExplainScore,
			Generated:    item.Generated,
		}
	}
	return results
}

func toIngestResponse(report *vectorstore.BatchReport) IngestResponse {
	resp := IngestResponse{
		Success:   true,
		Submitted: report.Submitted,
		Succeeded: report.Succeeded,
	}
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, IngestFailure{Index: f.Index, Reason: f.Reason})
	}
	return resp
}
