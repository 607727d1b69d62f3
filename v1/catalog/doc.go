// Package catalog defines the product catalog domain: the Product type, the
// Catalog collection schema and conversions to and from store records.
package catalog
