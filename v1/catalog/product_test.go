package catalog

import (
	"testing"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

func TestSchemaIsValid(t *testing.T) {
	schema := Schema()
	if err := schema.Validate(); err != nil {
		t.Fatalf("catalog schema invalid: %v", err)
	}
	if schema.Name != CollectionName {
		t.Errorf("schema name = %q, want %q", schema.Name, CollectionName)
	}
}

func TestRequiredFieldsAreSchemaProperties(t *testing.T) {
	names := map[string]bool{}
	for _, n := range Schema().PropertyNames() {
		names[n] = true
	}
	for _, required := range RequiredFields() {
		if !names[required] {
			t.Errorf("required field %q is not a schema property", required)
		}
	}
}

func TestProductRecordRoundTrip(t *testing.T) {
	p := Product{
		ID:          "00000000-0000-0000-0000-000000000042",
		ProductID:   "SKU-9",
		Name:        "Test Product",
		Description: "A product used in tests",
		Category:    "Testing",
		Price:       19.99,
		Brand:       "Acme",
		Tags:        []string{"a", "b"},
	}

	back := FromRecord(p.Record())
	if back.ID != p.ID || back.ProductID != p.ProductID || back.Price != p.Price {
		t.Errorf("round trip mismatch: %+v", back)
	}
	if len(back.Tags) != 2 || back.Tags[0] != "a" {
		t.Errorf("tags mismatch: %v", back.Tags)
	}
}

func TestFromRecordToleratesWireTypes(t *testing.T) {
	// Records read back from the store carry JSON-decoded values: tags come
	// back as []interface{}, not []string.
	r := vectorstore.Record{
		ID: "00000000-0000-0000-0000-000000000007",
		Properties: map[string]interface{}{
			"name":  "Wire Product",
			"price": 5.5,
			"tags":  []interface{}{"x", "y"},
		},
	}

	p := FromRecord(r)
	if p.Name != "Wire Product" || p.Price != 5.5 {
		t.Errorf("unexpected product: %+v", p)
	}
	if len(p.Tags) != 2 || p.Tags[1] != "y" {
		t.Errorf("tags mismatch: %v", p.Tags)
	}
}

func TestSampleProductsPassRequiredFields(t *testing.T) {
	for _, record := range Records(SampleProducts()) {
		if missing := record.MissingFields(RequiredFields()); len(missing) > 0 {
			t.Errorf("sample record missing fields: %v", missing)
		}
	}
}
