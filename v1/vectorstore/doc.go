// Package vectorstore provides a store-agnostic abstraction for hosted
// document/vector databases.
//
// # Overview
//
// This package defines a common interface [Store] that can be implemented by
// different vector database adapters (Weaviate today; others later), allowing
// applications to switch between backends without changing application code.
// It also defines the backend-neutral data model: collection schemas, records,
// batch reports and the normalized search result shape shared by all four
// search modes.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────┐
//	│                  Application Layer                      │
//	│   (uses vectorstore.Store - no backend imports)         │
//	└──────────────────────────┬──────────────────────────────┘
//	                           │
//	                           ▼
//	┌─────────────────────────────────────────────────────────┐
//	│                  vectorstore.Store                      │
//	│        (common interface + backend-neutral types)       │
//	└──────────────────────────┬──────────────────────────────┘
//	                           │
//	                           ▼
//	                 ┌───────────────────┐
//	                 │  weaviate.Client  │
//	                 │   (implements)    │
//	                 └───────────────────┘
//
// # Result normalization
//
// All four search modes return the same [QueryResult] shape. Vector search
// populates Distance (lower is better), keyword and hybrid search populate
// Score (higher is better, hybrid optionally with ExplainScore), and
// generative search additionally populates Generated. Downstream code never
// branches on the search mode that produced a result.
//
// # Error model
//
// Adapters wrap their failures in the sentinel errors of this package
// (ErrConfiguration, ErrConnection, ErrSchema, ErrInvalidParameter, ErrQuery,
// ErrIngest) so that callers can classify them with errors.Is. Per-record
// ingestion problems are not errors at all: they accumulate in [BatchReport].
package vectorstore
