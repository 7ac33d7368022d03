package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/shadower/internal/model"
)

// MatrixCell is the resolution outcome of one type at one version.
type MatrixCell struct {
	Type    m.TypeID
	Version int
	Shadow  string   // empty on a resolution miss
	Methods []string // signature keys reachable at Version
}

// MatrixResult holds one row of cells per type, one cell per version.
type MatrixResult struct {
	Types    []m.TypeID
	Versions []int
	Rows     [][]MatrixCell
}

// Cell returns the cell for type row i and version column j.
func (r MatrixResult) Cell(i, j int) MatrixCell {
	return r.Rows[i][j]
}

// Matrix resolves every type at every version using up to parallel workers.
// Resolution only reads the sealed registry, so cells are computed
// concurrently and written to distinct slots.
func Matrix(ctx context.Context, resolver *Resolver, types []m.TypeID, versions []int, parallel int) (MatrixResult, error) {
	if parallel <= 0 {
		parallel = 1
	}

	result := MatrixResult{
		Types:    types,
		Versions: versions,
		Rows:     make([][]MatrixCell, len(types)),
	}

	for i := range types {
		result.Rows[i] = make([]MatrixCell, len(versions))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, t := range types {
		for j, v := range versions {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				cell := MatrixCell{Type: t, Version: v}

				if d, ok := resolver.Resolve(t, v); ok {
					cell.Shadow = d.Name()
					cell.Methods = ActiveMethods(d, v)
				}

				result.Rows[i][j] = cell

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return MatrixResult{}, err
	}

	return result, nil
}
