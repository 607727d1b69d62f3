// Package http exposes the catalog search service over REST: health and
// status probes, product ingestion, and the four search endpoints (hybrid,
// vector, keyword, rag).
//
// Every search endpoint shares one response envelope. Remote query failures
// are reported inside the envelope with Success=false rather than as HTTP
// errors, so clients parse a single shape; only malformed requests get a
// 4xx status.
package http
