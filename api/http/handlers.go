package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecommax/weavekit/v1/catalog"
	"github.com/ecommax/weavekit/v1/logger"
	"github.com/ecommax/weavekit/v1/metrics"
	"github.com/ecommax/weavekit/v1/vectorstore"
)

// ReadinessChecker reports whether the backing store accepts requests.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// Handler implements the API endpoints over a vectorstore.Store.
type Handler struct {
	store   vectorstore.Store
	ready   ReadinessChecker
	cfg     *Config
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewHandler builds the endpoint handler. The metrics instance may be nil,
// in which case no instruments are updated.
func NewHandler(store vectorstore.Store, ready ReadinessChecker, cfg *Config, log *logger.Logger, m *metrics.Metrics) *Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		store:   store,
		ready:   ready,
		cfg:     cfg,
		log:     log,
		metrics: m,
	}
}

// Health answers liveness probes without touching the store.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status reports connectivity and catalog size.
func (h *Handler) Status(c *gin.Context) {
	resp := StatusResponse{Collection: h.cfg.Collection}

	if h.ready != nil {
		if err := h.ready.Ready(c.Request.Context()); err != nil {
			resp.Message = err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
	}
	resp.Connected = true

	exists, err := h.store.CollectionExists(c.Request.Context(), h.cfg.Collection)
	if err != nil {
		resp.Message = err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.CollectionExists = exists

	if exists {
		count, err := h.store.Count(c.Request.Context(), h.cfg.Collection)
		if err != nil {
			resp.Message = err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
		resp.TotalProducts = count
	}

	c.JSON(http.StatusOK, resp)
}

// CreateProducts ingests the posted products into the catalog collection.
// Incomplete records are skipped and reported per index; the request as a
// whole fails only when the store rejects entire batches.
func (h *Handler) CreateProducts(c *gin.Context) {
	var req ProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, IngestResponse{Success: false, Message: "invalid request body: " + err.Error()})
		return
	}
	if len(req.Products) == 0 {
		c.JSON(http.StatusBadRequest, IngestResponse{Success: false, Message: "no products in request"})
		return
	}
	h.ingest(c, catalog.Records(req.Products))
}

// SeedSampleProducts ingests the built-in demo catalog.
func (h *Handler) SeedSampleProducts(c *gin.Context) {
	h.ingest(c, catalog.Records(catalog.SampleProducts()))
}

func (h *Handler) ingest(c *gin.Context, records []vectorstore.Record) {
	report, err := h.store.Write(c.Request.Context(), h.cfg.Collection, records, vectorstore.WriteOptions{
		Required: catalog.RequiredFields(),
	})
	if err != nil {
		h.log.Error("ingestion failed", err, map[string]interface{}{
			"collection": h.cfg.Collection,
		})
		resp := IngestResponse{Success: false, Message: err.Error()}
		var ingestErr *vectorstore.IngestError
		if errors.As(err, &ingestErr) && ingestErr.Report != nil {
			resp.Submitted = ingestErr.Report.Submitted
			resp.Succeeded = ingestErr.Report.Succeeded
		}
		c.JSON(http.StatusBadGateway, resp)
		return
	}

	if h.metrics != nil {
		h.metrics.AddIngestedRecords("succeeded", float64(report.Succeeded))
		h.metrics.AddIngestedRecords("failed", float64(len(report.Failures)))
	}
	c.JSON(http.StatusOK, toIngestResponse(report))
}

// SearchHybrid handles POST /search/hybrid.
func (h *Handler) SearchHybrid(c *gin.Context) {
	h.search(c, "hybrid", h.store.HybridSearch)
}

// SearchVector handles POST /search/vector.
func (h *Handler) SearchVector(c *gin.Context) {
	h.search(c, "vector", h.store.VectorSearch)
}

// SearchKeyword handles POST /search/keyword.
func (h *Handler) SearchKeyword(c *gin.Context) {
	h.search(c, "keyword", h.store.KeywordSearch)
}

// SearchRAG handles POST /search/rag.
func (h *Handler) SearchRAG(c *gin.Context) {
	h.search(c, "rag", h.store.GenerativeSearch)
}

type searchFunc func(ctx context.Context, q vectorstore.Query) (vectorstore.QueryResult, error)

// search runs one search mode with the uniform request/response handling:
// malformed requests get a 400, remote query failures are downgraded to a
// 200 with Success=false so clients always parse the same envelope.
func (h *Handler) search(c *gin.Context, mode string, run searchFunc) {
	start := time.Now()

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.countSearch(mode, "invalid")
		c.JSON(http.StatusBadRequest, SearchResponse{
			Success:    false,
			Results:    []SearchResult{},
			SearchType: mode,
			Message:    "invalid request body: " + err.Error(),
		})
		return
	}

	query := vectorstore.Query{
		Collection: h.cfg.Collection,
		Text:       req.Query,
		Limit:      req.Limit,
		Prompt:     req.Prompt,
	}
	if query.Limit <= 0 {
		query.Limit = h.cfg.DefaultLimit
	}
	if mode == "hybrid" {
		query.Alpha = h.cfg.DefaultAlpha
		if req.Alpha != nil {
			query.Alpha = *req.Alpha
		}
	}

	results, err := run(c.Request.Context(), query)
	if err != nil {
		if vectorstore.IsInvalidParameterError(err) {
			h.countSearch(mode, "invalid")
			c.JSON(http.StatusBadRequest, SearchResponse{
				Success:    false,
				Results:    []SearchResult{},
				Query:      req.Query,
				SearchType: mode,
				Message:    err.Error(),
			})
			return
		}

		h.log.Error("search failed", err, map[string]interface{}{
			"mode":  mode,
			"query": req.Query,
		})
		h.countSearch(mode, "error")
		c.JSON(http.StatusOK, SearchResponse{
			Success:    false,
			Results:    []SearchResult{},
			Query:      req.Query,
			SearchType: mode,
			Message:    err.Error(),
		})
		return
	}

	h.countSearch(mode, "success")
	if h.metrics != nil {
		h.metrics.RecordRequestDuration(start, "/search/"+mode)
	}
	c.JSON(http.StatusOK, SearchResponse{
		Success:      true,
		Results:      toSearchResults(results),
		Query:        req.Query,
		SearchType:   mode,
		TotalResults: len(results),
	})
}

func (h *Handler) countSearch(mode, status string) {
	if h.metrics != nil {
		h.metrics.IncrementSearches(mode, status)
	}
}
