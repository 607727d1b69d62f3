package weaviate

import (
	"errors"
	"testing"

	"github.com/weaviate/weaviate/entities/models"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

func TestClassFromSchemaRoundTrip(t *testing.T) {
	schema := vectorstore.CollectionSchema{
		Name:        "Catalog",
		Description: "Product catalog",
		Vectorizer:  vectorstore.VectorizerOpenAI,
		Generative:  vectorstore.GenerativeOpenAI,
		Properties: []vectorstore.PropertyDefinition{
			vectorstore.NewTextProperty("name", "Product name"),
			vectorstore.NewNumberProperty("price", "Price in USD"),
			vectorstore.NewTextListProperty("tags", "Search tags"),
			{Name: "in_stock", Kind: vectorstore.KindBoolean},
		},
	}

	class := classFromSchema(schema)

	if class.Class != "Catalog" {
		t.Fatalf("class name = %q, want Catalog", class.Class)
	}
	if class.Vectorizer != vectorstore.VectorizerOpenAI {
		t.Errorf("vectorizer = %q", class.Vectorizer)
	}
	if len(class.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(class.Properties))
	}
	if got := class.Properties[1].DataType[0]; got != "number" {
		t.Errorf("price data type = %q, want number", got)
	}
	if got := class.Properties[2].DataType[0]; got != "text[]" {
		t.Errorf("tags data type = %q, want text[]", got)
	}

	back := schemaFromClass(class)
	if back.Name != schema.Name || back.Vectorizer != schema.Vectorizer || back.Generative != schema.Generative {
		t.Errorf("round trip mismatch: %+v", back)
	}
	if len(back.Properties) != len(schema.Properties) {
		t.Fatalf("round trip properties = %d, want %d", len(back.Properties), len(schema.Properties))
	}
	for i, p := range back.Properties {
		if p.Kind != schema.Properties[i].Kind {
			t.Errorf("property %q kind = %q, want %q", p.Name, p.Kind, schema.Properties[i].Kind)
		}
	}
}

func TestClassFromSchemaOmitsEmptyModules(t *testing.T) {
	schema := vectorstore.CollectionSchema{
		Name:       "Plain",
		Vectorizer: vectorstore.VectorizerNone,
		Properties: []vectorstore.PropertyDefinition{
			vectorstore.NewNumberProperty("value", ""),
		},
	}

	class := classFromSchema(schema)
	if class.ModuleConfig != nil {
		t.Errorf("module config = %v, want nil", class.ModuleConfig)
	}
}

func TestFieldsFor(t *testing.T) {
	fields := fieldsFor([]string{"name", "price"}, "score", "explainScore")

	if len(fields) != 3 {
		t.Fatalf("fields = %d, want 3", len(fields))
	}
	meta := fields[2]
	if meta.Name != "_additional" {
		t.Fatalf("last field = %q, want _additional", meta.Name)
	}
	if len(meta.Fields) != 3 || meta.Fields[0].Name != "id" {
		t.Errorf("unexpected _additional fields: %+v", meta.Fields)
	}
}

func TestParseGetResponse(t *testing.T) {
	resp := &models.GraphQLResponse{
		Data: map[string]models.JSONObject{
			"Get": map[string]interface{}{
				"Catalog": []interface{}{
					map[string]interface{}{
						"name":  "Trail Runner",
						"price": 129.99,
						"_additional": map[string]interface{}{
							"id":       "0b1e8f7a-1111-4f7d-9e3a-000000000001",
							"score":    "0.82",
							"distance": 0.31,
							"generate": map[string]interface{}{
								"singleResult": "A lightweight shoe.",
								"error":        nil,
							},
						},
					},
					map[string]interface{}{
						"name": "City Loafer",
						"_additional": map[string]interface{}{
							"id": "0b1e8f7a-1111-4f7d-9e3a-000000000002",
							"generate": map[string]interface{}{
								"singleResult": nil,
								"error":        "provider timeout",
							},
						},
					},
				},
			},
		},
	}

	results, err := parseGetResponse(resp, "Catalog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	first := results[0]
	if first.ID != "0b1e8f7a-1111-4f7d-9e3a-000000000001" {
		t.Errorf("first ID = %q", first.ID)
	}
	if first.Score == nil || *first.Score != 0.82 {
		t.Errorf("first score = %v, want 0.82", first.Score)
	}
	if first.Distance == nil || *first.Distance != 0.31 {
		t.Errorf("first distance = %v, want 0.31", first.Distance)
	}
	if first.Generated != "A lightweight shoe." {
		t.Errorf("first generated = %q", first.Generated)
	}
	if _, ok := first.Properties["_additional"]; ok {
		t.Error("_additional leaked into properties")
	}
	if first.Properties["name"] != "Trail Runner" {
		t.Errorf("first name = %v", first.Properties["name"])
	}

	// A per-item generation error must not fail the query, only leave the
	// generated text empty.
	second := results[1]
	if second.Generated != "" {
		t.Errorf("second generated = %q, want empty", second.Generated)
	}
}

func TestParseGetResponseMissingClass(t *testing.T) {
	resp := &models.GraphQLResponse{
		Data: map[string]models.JSONObject{
			"Get": map[string]interface{}{},
		},
	}

	results, err := parseGetResponse(resp, "Catalog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results = %d, want 0", len(results))
	}
}

func TestParseGetResponseGraphQLErrors(t *testing.T) {
	resp := &models.GraphQLResponse{
		Errors: []*models.GraphQLError{
			{Message: "class Catalog not found"},
		},
	}

	_, err := parseGetResponse(resp, "Catalog")
	if !errors.Is(err, vectorstore.ErrQuery) {
		t.Fatalf("error = %v, want ErrQuery", err)
	}
}

func TestToFloat(t *testing.T) {
	if got := toFloat("0.5"); got == nil || *got != 0.5 {
		t.Errorf("toFloat(string) = %v", got)
	}
	if got := toFloat(1.25); got == nil || *got != 1.25 {
		t.Errorf("toFloat(float64) = %v", got)
	}
	if got := toFloat(nil); got != nil {
		t.Errorf("toFloat(nil) = %v, want nil", got)
	}
	if got := toFloat("not-a-number"); got != nil {
		t.Errorf("toFloat(garbage) = %v, want nil", got)
	}
}

func TestBatchItemError(t *testing.T) {
	ok := models.ObjectsGetResponse{}
	if got := batchItemError(ok); got != "" {
		t.Errorf("no-result item = %q, want empty", got)
	}

	failed := models.ObjectsGetResponse{
		Result: &models.ObjectsGetResponseAO2Result{
			Errors: &models.ErrorResponse{
				Error: []*models.ErrorResponseErrorItems0{
					{Message: "invalid uuid"},
					{Message: "vectorizer unavailable"},
				},
			},
		},
	}
	if got := batchItemError(failed); got != "invalid uuid; vectorizer unavailable" {
		t.Errorf("failed item = %q", got)
	}
}
