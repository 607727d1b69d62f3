// Package weaviate implements the vectorstore.Store interface on top of the
// official Weaviate Go client.
//
// Architecture:
//
//	┌─────────────────────────────────────────────────┐
//	│              application code                   │
//	│        (catalog, migrate, api/http)             │
//	└───────────────────────┬─────────────────────────┘
//	                        │ vectorstore.Store
//	┌───────────────────────▼─────────────────────────┐
//	│              weaviate.Client                    │
//	│  config validation · readiness handshake        │
//	│  schema ops · batch writes · cursor · searches  │
//	└───────────────────────┬─────────────────────────┘
//	                        │ REST + GraphQL
//	┌───────────────────────▼─────────────────────────┐
//	│           Weaviate deployment                   │
//	│  (hosted cluster or local docker container)     │
//	└─────────────────────────────────────────────────┘
//
// The client forwards OpenAI and Cohere API keys as request headers so the
// deployment's vectorizer and generative modules can call the model
// providers on the caller's behalf. All four search modes (vector, keyword,
// hybrid, generative) are translated to GraphQL Get queries and their
// responses parsed back into store-agnostic result items.
package weaviate
