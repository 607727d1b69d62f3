package weaviate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

// classFromSchema maps a store-agnostic collection schema onto Weaviate's
// class model.
func classFromSchema(s vectorstore.CollectionSchema) *models.Class {
	props := make([]*models.Property, 0, len(s.Properties))
	for _, p := range s.Properties {
		props = append(props, &models.Property{
			Name:        p.Name,
			DataType:    dataTypeFor(p.Kind),
			Description: p.Description,
		})
	}

	class := &models.Class{
		Class:       s.Name,
		Description: s.Description,
		Properties:  props,
	}
	if s.Vectorizer != "" {
		class.Vectorizer = s.Vectorizer
	}
	if s.Generative != "" {
		class.ModuleConfig = map[string]interface{}{
			s.Generative: map[string]interface{}{},
		}
	}
	return class
}

// schemaFromClass is the inverse of classFromSchema, used when deriving a
// schema from a live collection.
func schemaFromClass(class *models.Class) vectorstore.CollectionSchema {
	schema := vectorstore.CollectionSchema{
		Name:        class.Class,
		Description: class.Description,
		Vectorizer:  class.Vectorizer,
		Generative:  generativeModule(class.ModuleConfig),
	}
	for _, p := range class.Properties {
		schema.Properties = append(schema.Properties, vectorstore.PropertyDefinition{
			Name:        p.Name,
			Kind:        kindFor(p.DataType),
			Description: p.Description,
		})
	}
	return schema
}

func dataTypeFor(kind vectorstore.PropertyKind) []string {
	switch kind {
	case vectorstore.KindNumber:
		return []string{"number"}
	case vectorstore.KindBoolean:
		return []string{"boolean"}
	case vectorstore.KindTextList:
		return []string{"text[]"}
	default:
		return []string{"text"}
	}
}

func kindFor(dataType []string) vectorstore.PropertyKind {
	if len(dataType) == 0 {
		return vectorstore.KindText
	}
	switch dataType[0] {
	case "number", "int":
		return vectorstore.KindNumber
	case "boolean":
		return vectorstore.KindBoolean
	case "text[]", "string[]":
		return vectorstore.KindTextList
	default:
		return vectorstore.KindText
	}
}

// generativeModule extracts the generative module name from a class module
// config, if one is configured.
func generativeModule(moduleConfig interface{}) string {
	mods, ok := moduleConfig.(map[string]interface{})
	if !ok {
		return ""
	}
	for name := range mods {
		if strings.HasPrefix(name, "generative-") {
			return name
		}
	}
	return ""
}

// fieldsFor builds the GraphQL field projection for a Get query: the
// requested properties plus the _additional metadata relevant to the search
// mode.
func fieldsFor(properties []string, additional ...string) []graphql.Field {
	fields := make([]graphql.Field, 0, len(properties)+1)
	for _, p := range properties {
		fields = append(fields, graphql.Field{Name: p})
	}

	meta := make([]graphql.Field, 0, len(additional)+1)
	meta = append(meta, graphql.Field{Name: "id"})
	for _, a := range additional {
		meta = append(meta, graphql.Field{Name: a})
	}
	fields = append(fields, graphql.Field{Name: "_additional", Fields: meta})
	return fields
}

// parseGetResponse turns a GraphQL Get response into store-agnostic result
// items. GraphQL-level errors are surfaced as a query error; a missing class
// key yields an empty result.
func parseGetResponse(resp *models.GraphQLResponse, collection string) (vectorstore.QueryResult, error) {
	if err := graphqlError(resp); err != nil {
		return nil, err
	}

	get, ok := resp.Data["Get"].(map[string]interface{})
	if !ok {
		return vectorstore.QueryResult{}, nil
	}
	raw, ok := get[collection].([]interface{})
	if !ok {
		return vectorstore.QueryResult{}, nil
	}

	results := make(vectorstore.QueryResult, 0, len(raw))
	for _, entry := range raw {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		results = append(results, parseResultItem(obj))
	}
	return results, nil
}

func parseResultItem(obj map[string]interface{}) vectorstore.ResultItem {
	item := vectorstore.ResultItem{
		Properties: make(map[string]interface{}, len(obj)),
	}

	for key, value := range obj {
		if key == "_additional" {
			continue
		}
		item.Properties[key] = value
	}

	additional, ok := obj["_additional"].(map[string]interface{})
	if !ok {
		return item
	}

	if id, ok := additional["id"].(string); ok {
		item.ID = id
	}
	item.Score = toFloat(additional["score"])
	item.Distance = toFloat(additional["distance"])
	if explain, ok := additional["explainScore"].(string); ok {
		item.ExplainScore = explain
	}

	// generate { singleResult, error } from the generative module. A
	// per-item generation error leaves Generated empty.
	if gen, ok := additional["generate"].(map[string]interface{}); ok {
		if gen["error"] == nil {
			if text, ok := gen["singleResult"].(string); ok {
				item.Generated = text
			}
		}
	}

	return item
}

// toFloat normalizes GraphQL numeric metadata. Weaviate returns distance as
// a JSON number but score and explainScore as strings.
func toFloat(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// graphqlError collapses GraphQL-level errors into a single query error.
func graphqlError(resp *models.GraphQLResponse) error {
	if len(resp.Errors) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("%w: %s", vectorstore.ErrQuery, strings.Join(msgs, "; "))
}
