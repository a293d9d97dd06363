// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Deterministic constructors for synthetic road networks (Grid, Path).
//
// Contract:
//   • Every road is two-way: each link emits a forward and a backward edge.
//   • Junction IDs follow fixed schemes: "r,c" for Grid, decimal index for Path.
//   • Edge emission order is stable, so generated edge IDs are reproducible.
//   • Only sentinel errors are returned; constructors never panic.

package roadgraph

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTooFewJunctions is returned when a constructor is asked for a network
// smaller than its minimum size.
var ErrTooFewJunctions = errors.New("roadgraph: too few junctions")

const (
	methodGrid = "Grid"
	methodPath = "Path"
	minGridDim = 1
	minPathLen = 2
	gridIDFmt  = "%d,%d"
)

// Constructor populates a graph. Constructors are composable: Build applies
// them in order to one fresh MemGraph.
type Constructor func(g *MemGraph) error

// Build creates a MemGraph with opts and applies every constructor in order.
func Build(opts []GraphOption, cons ...Constructor) (*MemGraph, error) {
	g := NewMemGraph(opts...)
	for _, c := range cons {
		if err := c(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// GridJunction returns the junction ID Grid uses for cell (r, c).
func GridJunction(r, c int) Junction {
	return Junction(fmt.Sprintf(gridIDFmt, r, c))
}

// Grid returns a Constructor for a rows×cols street grid whose blocks are
// length meters long. For each cell the right link is emitted before the
// bottom link, forward edge before backward edge.
func Grid(rows, cols int, length float64) Constructor {
	return func(g *MemGraph) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewJunctions)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddJunction(GridJunction(r, c)); err != nil {
					return fmt.Errorf("%s: AddJunction(%d,%d): %w", methodGrid, r, c, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridJunction(r, c)
				if c+1 < cols {
					if err := addTwoWay(g, methodGrid, u, GridJunction(r, c+1), length); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addTwoWay(g, methodGrid, u, GridJunction(r+1, c), length); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Path returns a Constructor for a straight road through n junctions named
// "0".."n-1", each link length meters long.
func Path(n int, length float64) Constructor {
	return func(g *MemGraph) error {
		if n < minPathLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathLen, ErrTooFewJunctions)
		}
		for i := 0; i+1 < n; i++ {
			u := Junction(strconv.Itoa(i))
			v := Junction(strconv.Itoa(i + 1))
			if err := addTwoWay(g, methodPath, u, v, length); err != nil {
				return err
			}
		}

		return nil
	}
}

func addTwoWay(g *MemGraph, method string, u, v Junction, length float64) error {
	if _, err := g.AddEdge(u, v, length); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, %g): %w", method, u, v, length, err)
	}
	if _, err := g.AddEdge(v, u, length); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, %g): %w", method, v, u, length, err)
	}

	return nil
}
