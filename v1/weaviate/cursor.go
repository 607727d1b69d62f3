package weaviate

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate/entities/models"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

// Iterate returns a forward cursor over all objects of a collection, paging
// through the REST object listing with cursor-based pagination. The cursor is
// single-pass; create a new one to iterate again.
func (c *Client) Iterate(ctx context.Context, collection string, pageSize int) (vectorstore.Cursor, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	if collection == "" {
		return nil, fmt.Errorf("%w: collection name is empty", vectorstore.ErrInvalidParameter)
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &objectCursor{
		client:     c,
		collection: collection,
		pageSize:   pageSize,
	}, nil
}

// objectCursor pages through a collection with the "after" cursor of the
// objects endpoint. It buffers one page at a time.
type objectCursor struct {
	client     *Client
	collection string
	pageSize   int

	buf  []*models.Object
	pos  int
	last string // ID of the last object served, used as the page cursor
	done bool
}

// Next returns the next record, or (nil, nil) once the collection is
// exhausted.
func (it *objectCursor) Next(ctx context.Context) (*vectorstore.Record, error) {
	for {
		if it.pos < len(it.buf) {
			obj := it.buf[it.pos]
			it.pos++
			it.last = obj.ID.String()
			return recordFromObject(obj), nil
		}
		if it.done {
			return nil, nil
		}
		if err := it.fetchPage(ctx); err != nil {
			return nil, err
		}
	}
}

func (it *objectCursor) fetchPage(ctx context.Context) error {
	if err := it.client.ensureOpen(); err != nil {
		return err
	}

	getter := it.client.api.Data().ObjectsGetter().
		WithClassName(it.collection).
		WithLimit(it.pageSize)
	if it.last != "" {
		getter = getter.WithAfter(it.last)
	}

	objects, err := getter.Do(ctx)
	if err != nil {
		return fmt.Errorf("%w: iterate %q: %v", vectorstore.ErrQuery, it.collection, err)
	}

	if len(objects) < it.pageSize {
		it.done = true
	}
	it.buf = objects
	it.pos = 0
	return nil
}

func recordFromObject(obj *models.Object) *vectorstore.Record {
	props, _ := obj.Properties.(map[string]interface{})
	if props == nil {
		props = map[string]interface{}{}
	}
	return &vectorstore.Record{
		ID:         obj.ID.String(),
		Properties: props,
	}
}
