package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// seqIDs returns a generator producing panel-1, panel-2, ...
func seqIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("panel-%d", n)
	}
}

// newCatalog registers hidden blocks with a 20x20 minimum.
func newCatalog(ids ...entity.BlockID) *entity.Dock {
	d := entity.NewDock()
	for _, id := range ids {
		b := entity.NewBlock(id, "notes", string(id))
		b.MinWidth, b.MinHeight = 20, 20
		d.RegisterBlock(b)
	}
	return d
}

// openAll opens every block in order, producing a single row.
func openAll(ctx context.Context, uc *ManageDockUseCase, d *entity.Dock, ids ...entity.BlockID) {
	for _, id := range ids {
		if _, err := uc.OpenBlock(ctx, d, id); err != nil {
			panic(err)
		}
	}
}
