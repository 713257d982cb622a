package repository

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

type stagedOp func(tx *gorm.DB) error

// changeSet collects staged writes until they are committed. One change set
// is shared by every repository of a RepositoryWrapper.
type changeSet struct {
	mu  sync.Mutex
	ops []stagedOp
}

func (c *changeSet) stage(op stagedOp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, op)
}

func (c *changeSet) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ops)
}

// commit runs the staged writes in order inside one transaction. The stage is
// cleared whether or not the commit succeeds.
func (c *changeSet) commit(ctx context.Context, db *gorm.DB) error {
	c.mu.Lock()
	ops := c.ops
	c.ops = nil
	c.mu.Unlock()

	if len(ops) == 0 {
		return nil
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	return MapGormErrorToDomain(err)
}
