package weaviate

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/ecommax/weavekit/v1/logger"
	"github.com/ecommax/weavekit/v1/vectorstore"
)

// WeaviateContainer represents a Weaviate container for testing
type WeaviateContainer struct {
	testcontainers.Container
	URL string
}

// setupWeaviateContainer starts a Weaviate container with anonymous access
// and no vectorizer modules. Searches that need embeddings (vector, hybrid,
// generative) require model provider keys and are exercised against hosted
// deployments instead; everything else is covered here.
func setupWeaviateContainer(ctx context.Context) (*WeaviateContainer, error) {
	req := testcontainers.ContainerRequest{
		Image: "semitechnologies/weaviate:1.28.4",
		Env: map[string]string{
			"AUTHENTICATION_ANONYMOUS_ACCESS_ENABLED": "true",
			"PERSISTENCE_DATA_PATH":                   "/var/lib/weaviate",
			"DEFAULT_VECTORIZER_MODULE":               "none",
			"CLUSTER_HOSTNAME":                        "node1",
		},
		ExposedPorts: []string{"8080/tcp"},
		WaitingFor:   wait.ForListeningPort("8080/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start weaviate container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "8080")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	url := fmt.Sprintf("http://%s", net.JoinHostPort(host, mappedPort.Port()))

	if err := waitForWeaviateReady(url, 30*time.Second); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("weaviate container not ready: %w", err)
	}

	return &WeaviateContainer{
		Container: container,
		URL:       url,
	}, nil
}

// waitForWeaviateReady polls the readiness endpoint until it reports ready or
// the timeout expires.
func waitForWeaviateReady(url string, timeout time.Duration) error {
	startTime := time.Now()
	for {
		if time.Since(startTime) > timeout {
			return fmt.Errorf("timed out waiting for Weaviate to be ready after %s", timeout)
		}

		resp, err := http.Get(url + "/v1/.well-known/ready")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		time.Sleep(500 * time.Millisecond)
	}
}

func testConfig(url string) *Config {
	cfg := DefaultConfig().WithAnonymous(true)
	cfg.URL = url
	cfg.StartupTimeout = 30 * time.Second
	return cfg
}

func plainSchema(name string) vectorstore.CollectionSchema {
	return vectorstore.CollectionSchema{
		Name:       name,
		Vectorizer: vectorstore.VectorizerNone,
		Properties: []vectorstore.PropertyDefinition{
			vectorstore.NewTextProperty("name", "Product name"),
			vectorstore.NewTextProperty("description", "Product description"),
			vectorstore.NewNumberProperty("price", "Price in USD"),
			vectorstore.NewTextListProperty("tags", "Search tags"),
		},
	}
}

// TestMain sets up the testing environment
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// TestWeaviateWithFXModule tests the weaviate package using the existing FX module
func TestWeaviateWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupWeaviateContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	t.Logf("Using Weaviate at %s", containerInstance.URL)

	var client *Client
	var store vectorstore.Store

	app := fxtest.New(t,
		fx.Provide(
			func() *Config { return testConfig(containerInstance.URL) },
			logger.NewNop,
		),
		FXModule,
		fx.Populate(&client, &store),
	)

	err = app.Start(ctx)
	require.NoError(t, err)

	require.NotNil(t, client)
	require.NotNil(t, store)
	require.NoError(t, client.Ready(ctx))

	t.Run("Meta", func(t *testing.T) {
		meta, err := client.Meta(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, meta.Version)
	})

	t.Run("EnsureCollectionReplacesExisting", func(t *testing.T) {
		schema := plainSchema("EnsureTest")
		require.NoError(t, store.EnsureCollection(ctx, schema))

		exists, err := store.CollectionExists(ctx, "EnsureTest")
		require.NoError(t, err)
		assert.True(t, exists)

		// Populate, then ensure again: the collection must come back empty.
		report, err := store.Write(ctx, "EnsureTest", []vectorstore.Record{
			{Properties: map[string]interface{}{"name": "gone soon"}},
		}, vectorstore.WriteOptions{})
		require.NoError(t, err)
		require.Equal(t, 1, report.Succeeded)

		require.NoError(t, store.EnsureCollection(ctx, schema))
		count, err := store.Count(ctx, "EnsureTest")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("DropCollectionIsIdempotent", func(t *testing.T) {
		require.NoError(t, store.EnsureCollection(ctx, plainSchema("DropTest")))
		require.NoError(t, store.DropCollection(ctx, "DropTest"))

		exists, err := store.CollectionExists(ctx, "DropTest")
		require.NoError(t, err)
		assert.False(t, exists)

		// Dropping again is not an error.
		assert.NoError(t, store.DropCollection(ctx, "DropTest"))
	})

	require.NoError(t, app.Stop(ctx))
}

// TestWeaviateWriteAndIterate covers batch ingestion and cursor traversal
func TestWeaviateWriteAndIterate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupWeaviateContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	client, err := NewClient(ctx, testConfig(containerInstance.URL), logger.NewNop())
	require.NoError(t, err)
	defer client.Close()

	collection := "WriteTest"
	require.NoError(t, client.EnsureCollection(ctx, plainSchema(collection)))

	t.Run("WriteSkipsIncompleteRecords", func(t *testing.T) {
		records := []vectorstore.Record{
			{
				ID: "00000000-0000-0000-0000-000000000001",
				Properties: map[string]interface{}{
					"name": "Trail Runner", "description": "Lightweight shoe", "price": 129.99,
				},
			},
			{
				ID: "00000000-0000-0000-0000-000000000003",
				Properties: map[string]interface{}{
					"name": "City Loafer", "description": "Leather loafer", "price": 89.5,
				},
			},
			{
				// Missing name and description; its whole trailing batch
				// ends up empty after exclusion.
				Properties: map[string]interface{}{
					"price": 10.0,
				},
			},
		}

		report, err := client.Write(ctx, collection, records, vectorstore.WriteOptions{
			BatchSize: 2,
			Required:  []string{"name", "description"},
		})
		require.NoError(t, err)

		assert.Equal(t, 3, report.Submitted)
		assert.Equal(t, 2, report.Succeeded)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, 2, report.Failures[0].Index)
		assert.Equal(t, vectorstore.ReasonMissingFields, report.Failures[0].Reason)

		count, err := client.Count(ctx, collection)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("IterateVisitsEveryObjectOnce", func(t *testing.T) {
		// Page size 1 forces multiple round trips.
		cursor, err := client.Iterate(ctx, collection, 1)
		require.NoError(t, err)

		seen := map[string]bool{}
		for {
			record, err := cursor.Next(ctx)
			require.NoError(t, err)
			if record == nil {
				break
			}
			assert.False(t, seen[record.ID], "record %s visited twice", record.ID)
			seen[record.ID] = true
			assert.NotEmpty(t, record.Properties["name"])
		}
		assert.Len(t, seen, 2)

		// Exhausted cursor stays exhausted.
		record, err := cursor.Next(ctx)
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("WritePreservesIDs", func(t *testing.T) {
		cursor, err := client.Iterate(ctx, collection, 10)
		require.NoError(t, err)

		ids := map[string]bool{}
		for {
			record, err := cursor.Next(ctx)
			require.NoError(t, err)
			if record == nil {
				break
			}
			ids[record.ID] = true
		}
		assert.True(t, ids["00000000-0000-0000-0000-000000000001"])
		assert.True(t, ids["00000000-0000-0000-0000-000000000003"])
	})

	t.Run("KeywordSearch", func(t *testing.T) {
		results, err := client.KeywordSearch(ctx, vectorstore.Query{
			Collection: collection,
			Text:       "loafer",
			Limit:      5,
		})
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "City Loafer", results[0].Properties["name"])
		assert.NotNil(t, results[0].Score)
	})

	t.Run("DeriveSchema", func(t *testing.T) {
		derived, err := client.DeriveSchema(ctx, collection, "WriteTestClone")
		require.NoError(t, err)

		assert.Equal(t, "WriteTestClone", derived.Name)
		assert.ElementsMatch(t,
			[]string{"name", "description", "price", "tags"},
			derived.PropertyNames(),
		)
	})
}

// TestWeaviateErrorHandling tests error scenarios
func TestWeaviateErrorHandling(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupWeaviateContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	client, err := NewClient(ctx, testConfig(containerInstance.URL), logger.NewNop())
	require.NoError(t, err)
	defer client.Close()

	t.Run("UnreachableDeployment", func(t *testing.T) {
		cfg := testConfig("http://localhost:1")
		cfg.StartupTimeout = 2 * time.Second

		_, err := NewClient(ctx, cfg, logger.NewNop())
		require.Error(t, err)
		assert.ErrorIs(t, err, vectorstore.ErrConnection)
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.URL = containerInstance.URL

		_, err := NewClient(ctx, cfg, logger.NewNop())
		require.Error(t, err)
		assert.ErrorIs(t, err, vectorstore.ErrConfiguration)
	})

	t.Run("SearchOnNonExistentCollection", func(t *testing.T) {
		_, err := client.KeywordSearch(ctx, vectorstore.Query{
			Collection: "NoSuchCollection",
			Text:       "anything",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, vectorstore.ErrQuery)
	})

	t.Run("InvalidSchemaRejectedLocally", func(t *testing.T) {
		err := client.EnsureCollection(ctx, vectorstore.CollectionSchema{Name: "Empty"})
		require.Error(t, err)
		assert.ErrorIs(t, err, vectorstore.ErrSchema)
	})
}
