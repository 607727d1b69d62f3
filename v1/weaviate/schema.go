package weaviate

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

// EnsureCollection creates the collection described by schema. An existing
// collection with the same name is deleted first, objects included. This is
// a destructive full replace, not a merge.
func (c *Client) EnsureCollection(ctx context.Context, schema vectorstore.CollectionSchema) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if err := schema.Validate(); err != nil {
		return err
	}

	exists, err := c.CollectionExists(ctx, schema.Name)
	if err != nil {
		return err
	}
	if exists {
		c.log.Warn("replacing existing collection", nil, map[string]interface{}{
			"collection": schema.Name,
		})
		if err := c.DropCollection(ctx, schema.Name); err != nil {
			return err
		}
	}

	class := classFromSchema(schema)
	if err := c.api.Schema().ClassCreator().WithClass(class).Do(ctx); err != nil {
		return fmt.Errorf("%w: create collection %q: %v", vectorstore.ErrSchema, schema.Name, err)
	}

	c.log.Info("collection created", nil, map[string]interface{}{
		"collection": schema.Name,
		"properties": len(schema.Properties),
		"vectorizer": schema.Vectorizer,
	})
	return nil
}

// DropCollection removes a collection and everything in it. Dropping a
// collection that does not exist is not an error.
func (c *Client) DropCollection(ctx context.Context, name string) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	if err := c.api.Schema().ClassDeleter().WithClassName(name).Do(ctx); err != nil {
		return fmt.Errorf("%w: drop collection %q: %v", vectorstore.ErrSchema, name, err)
	}

	c.log.Info("collection dropped", nil, map[string]interface{}{
		"collection": name,
	})
	return nil
}

// CollectionExists reports whether a collection with the given name exists.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	if err := c.ensureOpen(); err != nil {
		return false, err
	}

	exists, err := c.api.Schema().ClassExistenceChecker().WithClassName(name).Do(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: check collection %q: %v", vectorstore.ErrSchema, name, err)
	}
	return exists, nil
}

// DeriveSchema introspects a live collection and returns its schema under
// newName, preserving properties, vectorizer and generative configuration.
func (c *Client) DeriveSchema(ctx context.Context, source, newName string) (vectorstore.CollectionSchema, error) {
	if err := c.ensureOpen(); err != nil {
		return vectorstore.CollectionSchema{}, err
	}

	class, err := c.api.Schema().ClassGetter().WithClassName(source).Do(ctx)
	if err != nil {
		return vectorstore.CollectionSchema{}, fmt.Errorf("%w: read collection %q: %v", vectorstore.ErrSchema, source, err)
	}

	schema := schemaFromClass(class)
	schema.Name = newName
	return schema, nil
}

// Count returns the number of objects in a collection, via an aggregate
// meta{count} query.
func (c *Client) Count(ctx context.Context, collection string) (int64, error) {
	if err := c.ensureOpen(); err != nil {
		return 0, err
	}

	resp, err := c.api.GraphQL().Aggregate().
		WithClassName(collection).
		WithFields(graphql.Field{
			Name:   "meta",
			Fields: []graphql.Field{{Name: "count"}},
		}).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count %q: %v", vectorstore.ErrQuery, collection, err)
	}
	if err := graphqlError(resp); err != nil {
		return 0, err
	}

	agg, ok := resp.Data["Aggregate"].(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("%w: count %q: malformed aggregate response", vectorstore.ErrQuery, collection)
	}
	rows, ok := agg[collection].([]interface{})
	if !ok || len(rows) == 0 {
		return 0, nil
	}
	row, ok := rows[0].(map[string]interface{})
	if !ok {
		return 0, nil
	}
	meta, ok := row["meta"].(map[string]interface{})
	if !ok {
		return 0, nil
	}
	count, ok := meta["count"].(float64)
	if !ok {
		return 0, nil
	}
	return int64(count), nil
}
