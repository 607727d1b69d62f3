package weaviate

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

// Write ingests records into a collection in fixed-size contiguous batches,
// submitted sequentially in record order.
//
// Records missing one of opts.Required are excluded before submission and
// reported in the BatchReport under reason "missing_fields", keyed by their
// position in the input slice. Per-record rejections reported by the remote
// are likewise collected into the report without aborting the remaining
// batches. Only a transport-level failure of a whole batch aborts the write;
// it returns a *vectorstore.IngestError carrying the partial report.
func (c *Client) Write(ctx context.Context, collection string, records []vectorstore.Record, opts vectorstore.WriteOptions) (*vectorstore.BatchReport, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	if collection == "" {
		return nil, fmt.Errorf("%w: collection name is empty", vectorstore.ErrInvalidParameter)
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = c.cfg.BatchSize
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	report := &vectorstore.BatchReport{Submitted: len(records)}

	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		objects := make([]*models.Object, 0, end-start)
		indices := make([]int, 0, end-start)

		for offset, record := range records[start:end] {
			position := start + offset
			if missing := record.MissingFields(opts.Required); len(missing) > 0 {
				report.Fail(position, vectorstore.ReasonMissingFields)
				c.log.Debug("record excluded from batch", nil, map[string]interface{}{
					"collection": collection,
					"position":   position,
					"missing":    missing,
				})
				continue
			}

			obj := &models.Object{
				Class:      collection,
				Properties: record.Properties,
			}
			if record.ID != "" {
				obj.ID = strfmt.UUID(record.ID)
			}
			objects = append(objects, obj)
			indices = append(indices, position)
		}

		if len(objects) == 0 {
			continue
		}

		resp, err := c.api.Batch().ObjectsBatcher().WithObjects(objects...).Do(ctx)
		if err != nil {
			return report, &vectorstore.IngestError{
				Report: report,
				Err:    fmt.Errorf("batch starting at record %d: %v", start, err),
			}
		}

		failed := 0
		for i, item := range resp {
			if i >= len(indices) {
				break
			}
			if reason := batchItemError(item); reason != "" {
				report.Fail(indices[i], reason)
				failed++
			}
		}
		report.Succeeded += len(objects) - failed
	}

	c.log.Info("batch write finished", nil, map[string]interface{}{
		"collection": collection,
		"submitted":  report.Submitted,
		"succeeded":  report.Succeeded,
		"failed":     len(report.Failures),
	})
	return report, nil
}

// batchItemError extracts the failure reason from a single batch response
// item, or "" if the item succeeded.
func batchItemError(item models.ObjectsGetResponse) string {
	if item.Result == nil || item.Result.Errors == nil || len(item.Result.Errors.Error) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(item.Result.Errors.Error))
	for _, e := range item.Result.Errors.Error {
		if e != nil && e.Message != "" {
			msgs = append(msgs, e.Message)
		}
	}
	if len(msgs) == 0 {
		return "unknown batch error"
	}
	return strings.Join(msgs, "; ")
}
