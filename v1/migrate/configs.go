package migrate

import (
	"fmt"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

const (
	defaultPageSize  = 100
	defaultBatchSize = 100
)

// Config describes one collection-to-collection migration.
type Config struct {
	// Source is the collection to copy from. It must exist.
	Source string `yaml:"source"`

	// Target is the collection to copy into.
	Target string `yaml:"target"`

	// Overwrite allows replacing an existing target collection. Without it
	// a migration onto an existing target fails before touching anything.
	Overwrite bool `yaml:"overwrite"`

	// PageSize controls how many objects are read per page from the source.
	PageSize int `yaml:"page_size"`

	// BatchSize controls how many records are written per batch into the
	// target.
	BatchSize int `yaml:"batch_size"`
}

// Validate rejects configurations that can never run.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("%w: migration source is empty", vectorstore.ErrInvalidParameter)
	}
	if c.Target == "" {
		return fmt.Errorf("%w: migration target is empty", vectorstore.ErrInvalidParameter)
	}
	if c.Source == c.Target {
		return fmt.Errorf("%w: migration source and target are both %q", vectorstore.ErrInvalidParameter, c.Source)
	}
	return nil
}

func (c *Config) pageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return defaultPageSize
}

func (c *Config) batchSize() int {
	if c.BatchSize > 0 {
		return c.BatchSize
	}
	return defaultBatchSize
}
