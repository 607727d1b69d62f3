package catalog

import (
	"github.com/ecommax/weavekit/v1/vectorstore"
)

// CollectionName is the collection holding the product catalog.
const CollectionName = "Catalog"

// Product is a single catalog entry.
type Product struct {
	// ID is the store-assigned object identifier. Empty for products that
	// have not been ingested yet.
	ID string `json:"id,omitempty"`

	ProductID   string   `json:"product_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Brand       string   `json:"brand"`
	Tags        []string `json:"tags"`
}

// RequiredFields lists the properties a product record must carry to be
// accepted for ingestion. Records missing one of these are skipped and
// reported, never silently ingested half-empty.
func RequiredFields() []string {
	return []string{"product_id", "name", "description"}
}

// Schema describes the Catalog collection: vectorized and generative via the
// store's OpenAI modules, so search quality tracks the product name and
// description text.
func Schema() vectorstore.CollectionSchema {
	return vectorstore.CollectionSchema{
		Name:        CollectionName,
		Description: "E-commerce product catalog with semantic search",
		Vectorizer:  vectorstore.VectorizerOpenAI,
		Generative:  vectorstore.GenerativeOpenAI,
		Properties: []vectorstore.PropertyDefinition{
			vectorstore.NewTextProperty("product_id", "Stable merchant product identifier"),
			vectorstore.NewTextProperty("name", "Product display name"),
			vectorstore.NewTextProperty("description", "Long-form product description"),
			vectorstore.NewTextProperty("category", "Top-level category"),
			vectorstore.NewNumberProperty("price", "Price in USD"),
			vectorstore.NewTextProperty("brand", "Brand name"),
			vectorstore.NewTextListProperty("tags", "Free-form search tags"),
		},
	}
}

// Record converts a product into an ingestible record.
func (p Product) Record() vectorstore.Record {
	return vectorstore.Record{
		ID: p.ID,
		Properties: map[string]interface{}{
			"product_id":  p.ProductID,
			"name":        p.Name,
			"description": p.Description,
			"category":    p.Category,
			"price":       p.Price,
			"brand":       p.Brand,
			"tags":        p.Tags,
		},
	}
}

// Records converts a product slice, preserving order.
func Records(products []Product) []vectorstore.Record {
	records := make([]vectorstore.Record, len(products))
	for i, p := range products {
		records[i] = p.Record()
	}
	return records
}

// FromRecord reconstructs a product from a stored record. Missing or
// mistyped properties are left at their zero value.
func FromRecord(r vectorstore.Record) Product {
	p := Product{ID: r.ID}
	if v, ok := r.Properties["product_id"].(string); ok {
		p.ProductID = v
	}
	if v, ok := r.Properties["name"].(string); ok {
		p.Name = v
	}
	if v, ok := r.Properties["description"].(string); ok {
		p.Description = v
	}
	if v, ok := r.Properties["category"].(string); ok {
		p.Category = v
	}
	if v, ok := r.Properties["price"].(float64); ok {
		p.Price = v
	}
	if v, ok := r.Properties["brand"].(string); ok {
		p.Brand = v
	}
	switch tags := r.Properties["tags"].(type) {
	case []string:
		p.Tags = tags
	case []interface{}:
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				p.Tags = append(p.Tags, s)
			}
		}
	}
	return p
}
