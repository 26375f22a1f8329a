// Package gridpath finds the shortest obstacle-free route across a square
// grid of free and blocked cells.
//
// What:
//
//   - Grid holds an N×N blocked/free matrix with two protected corner cells:
//     Source at the bottom-left (N-1, 0) and Target at the top-right (0, N-1).
//   - BuildGraph turns the free cells into a 4-connected graph.Graph[Cell].
//   - FindPath runs one shortest-path query and decodes it back to cells.
//   - Pathfinder.Solve additionally buffers the visit trace for replay.
//
// Why:
//
//   - Interactive maze demos: the visit trace lets a renderer animate how
//     the search spreads before the final path is drawn.
//   - Reachability checks on tile maps.
//
// Graph construction only looks "forward" from each free cell (down and
// right); edge symmetry in graph.Graph supplies the other two directions.
// Blocked cells never become nodes.
//
// Complexity:
//
//   - BuildGraph: O(N²) time and memory.
//   - FindPath:   O(N² log N) with graph.SelectHeap, O(N⁴) with graph.SelectScan.
//
// Errors:
//
//   - ErrEmptyGrid: size < 1 or no rows.
//   - ErrNonSquare: rows of differing length, or not N×N.
//   - ErrOutOfBounds: cell outside the grid.
//   - ErrProtectedCell: attempt to block Source or Target.
//   - ErrBadCell: unrecognized character in a text map.
//   - ErrBadCoordinate: malformed "row,col" text.
//
// No path, or Source equal to Target, is an ordinary empty result and never
// an error.
package gridpath
