package migrate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

// fakeStore is an in-memory vectorstore.Store for exercising the runner
// without a live deployment.
type fakeStore struct {
	collections map[string]vectorstore.CollectionSchema
	objects     map[string][]vectorstore.Record

	// rejectTag simulates per-record remote failures: any record carrying
	// this property is rejected by Write.
	rejectTag string
}

var _ vectorstore.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: map[string]vectorstore.CollectionSchema{},
		objects:     map[string][]vectorstore.Record{},
	}
}

func (f *fakeStore) seed(schema vectorstore.CollectionSchema, records []vectorstore.Record) {
	f.collections[schema.Name] = schema
	f.objects[schema.Name] = append([]vectorstore.Record{}, records...)
}

func (f *fakeStore) EnsureCollection(_ context.Context, schema vectorstore.CollectionSchema) error {
	f.collections[schema.Name] = schema
	f.objects[schema.Name] = nil
	return nil
}

func (f *fakeStore) DropCollection(_ context.Context, name string) error {
	delete(f.collections, name)
	delete(f.objects, name)
	return nil
}

func (f *fakeStore) CollectionExists(_ context.Context, name string) (bool, error) {
	_, ok := f.collections[name]
	return ok, nil
}

func (f *fakeStore) DeriveSchema(_ context.Context, source, newName string) (vectorstore.CollectionSchema, error) {
	schema, ok := f.collections[source]
	if !ok {
		return vectorstore.CollectionSchema{}, fmt.Errorf("%w: no collection %q", vectorstore.ErrSchema, source)
	}
	schema.Name = newName
	return schema, nil
}

func (f *fakeStore) Count(_ context.Context, collection string) (int64, error) {
	return int64(len(f.objects[collection])), nil
}

func (f *fakeStore) Write(_ context.Context, collection string, records []vectorstore.Record, opts vectorstore.WriteOptions) (*vectorstore.BatchReport, error) {
	if _, ok := f.collections[collection]; !ok {
		return nil, fmt.Errorf("%w: no collection %q", vectorstore.ErrSchema, collection)
	}

	report := &vectorstore.BatchReport{Submitted: len(records)}
	for i, record := range records {
		if missing := record.MissingFields(opts.Required); len(missing) > 0 {
			report.Fail(i, vectorstore.ReasonMissingFields)
			continue
		}
		if f.rejectTag != "" {
			if _, rejected := record.Properties[f.rejectTag]; rejected {
				report.Fail(i, "rejected by fake store")
				continue
			}
		}
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		f.objects[collection] = append(f.objects[collection], record)
		report.Succeeded++
	}
	return report, nil
}

func (f *fakeStore) Iterate(_ context.Context, collection string, pageSize int) (vectorstore.Cursor, error) {
	if _, ok := f.collections[collection]; !ok {
		return nil, fmt.Errorf("%w: no collection %q", vectorstore.ErrSchema, collection)
	}
	snapshot := append([]vectorstore.Record{}, f.objects[collection]...)
	return &fakeCursor{records: snapshot}, nil
}

func (f *fakeStore) VectorSearch(context.Context, vectorstore.Query) (vectorstore.QueryResult, error) {
	return vectorstore.QueryResult{}, nil
}

func (f *fakeStore) KeywordSearch(context.Context, vectorstore.Query) (vectorstore.QueryResult, error) {
	return vectorstore.QueryResult{}, nil
}

func (f *fakeStore) HybridSearch(context.Context, vectorstore.Query) (vectorstore.QueryResult, error) {
	return vectorstore.QueryResult{}, nil
}

func (f *fakeStore) GenerativeSearch(context.Context, vectorstore.Query) (vectorstore.QueryResult, error) {
	return vectorstore.QueryResult{}, nil
}

type fakeCursor struct {
	records []vectorstore.Record
	pos     int
}

func (c *fakeCursor) Next(context.Context) (*vectorstore.Record, error) {
	if c.pos >= len(c.records) {
		return nil, nil
	}
	record := c.records[c.pos]
	c.pos++
	return &record, nil
}
