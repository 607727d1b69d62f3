package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecommax/weavekit/v1/catalog"
	"github.com/ecommax/weavekit/v1/vectorstore"
)

var (
	seedRecreate bool
	seedFile     string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the catalog collection and load products",
	Long: `Ensures the Catalog collection exists and ingests products into it.
Without --file the built-in sample catalog is loaded.

With --recreate an existing collection is dropped first, objects included.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedRecreate, "recreate", false, "drop and recreate the collection before seeding")
	seedCmd.Flags().StringVar(&seedFile, "file", "", "JSON file with an array of products to ingest")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, client, err := connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	exists, err := client.CollectionExists(ctx, catalog.CollectionName)
	if err != nil {
		return err
	}
	if !exists || seedRecreate {
		if err := client.EnsureCollection(ctx, catalog.Schema()); err != nil {
			return err
		}
		fmt.Printf("collection %q ready\n", catalog.CollectionName)
	}

	products := catalog.SampleProducts()
	if seedFile != "" {
		products, err = loadProducts(seedFile)
		if err != nil {
			return err
		}
	}

	report, err := client.Write(ctx, catalog.CollectionName, catalog.Records(products), vectorstore.WriteOptions{
		Required: catalog.RequiredFields(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("ingested %d/%d products\n", report.Succeeded, report.Submitted)
	for _, failure := range report.Failures {
		fmt.Printf("  record %d skipped: %s\n", failure.Index, failure.Reason)
	}
	return nil
}

func loadProducts(path string) ([]catalog.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}
	var products []catalog.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse products file: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("products file %s is empty", path)
	}
	return products, nil
}
