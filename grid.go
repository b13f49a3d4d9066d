/*
grid.go, part of Tinku



LICENSE

Copyright (c) 2026 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>


This program, including its documentation,
is free software; you can redistribute it and/or modify
it under the terms of the GNU General Public License version 2.0 as
published by the Free Software Foundation.

This program and its documentation is distributed in the hope that
it will be useful, but WITHOUT ANY WARRANTY; without even the
implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR
PURPOSE.  See the GNU General Public License for more details.

You should have received a copy of the GNU General
Public License along with this program.  If not, see
<http://www.gnu.org/licenses/>.

*/

package tinku

import "math"

// cellGrid is a uniform cell list over atom centers. Cells are cubes of a
// fixed side, stored densely over the bounding box of the model, so a
// fixed-radius query only inspects the cells overlapping the query ball.
type cellGrid struct {
	atoms      []*Atom
	side       float64
	ox, oy, oz float64 //bounding box origin
	nx, ny, nz int
	cells      [][]int //atom indexes per cell
}

// newCellGrid builds a cell list with the given cell side over all atoms.
// The side should be at least the largest query radius so that a query
// never needs to look beyond the adjacent cell layer.
func newCellGrid(atoms []*Atom, side float64) *cellGrid {
	if side <= 0 {
		side = 1.0
	}
	g := &cellGrid{atoms: atoms, side: side}
	if len(atoms) == 0 {
		g.nx, g.ny, g.nz = 1, 1, 1
		g.cells = make([][]int, 1)
		return g
	}
	minx, miny, minz := atoms[0].X, atoms[0].Y, atoms[0].Z
	maxx, maxy, maxz := minx, miny, minz
	for _, a := range atoms[1:] {
		minx = math.Min(minx, a.X)
		miny = math.Min(miny, a.Y)
		minz = math.Min(minz, a.Z)
		maxx = math.Max(maxx, a.X)
		maxy = math.Max(maxy, a.Y)
		maxz = math.Max(maxz, a.Z)
	}
	g.ox, g.oy, g.oz = minx, miny, minz
	g.nx = int((maxx-minx)/side) + 1
	g.ny = int((maxy-miny)/side) + 1
	g.nz = int((maxz-minz)/side) + 1
	g.cells = make([][]int, g.nx*g.ny*g.nz)
	for i, a := range atoms {
		c := g.cellIndex(a.X, a.Y, a.Z)
		g.cells[c] = append(g.cells[c], i)
	}
	return g
}

func (g *cellGrid) cellCoords(x, y, z float64) (int, int, int) {
	cx := int((x - g.ox) / g.side)
	cy := int((y - g.oy) / g.side)
	cz := int((z - g.oz) / g.side)
	return clampInt(cx, 0, g.nx-1), clampInt(cy, 0, g.ny-1), clampInt(cz, 0, g.nz-1)
}

func (g *cellGrid) cellIndex(x, y, z float64) int {
	cx, cy, cz := g.cellCoords(x, y, z)
	return cx + g.nx*(cy+g.ny*cz)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Neighbors appends to buf the indexes of all atoms whose centers lie
// within r of atom i, excluding i itself, and returns the extended slice.
// Coincident centers count as distance zero neighbors.
func (g *cellGrid) Neighbors(i int, r float64, buf []int) []int {
	a := g.atoms[i]
	return g.scan(a.X, a.Y, a.Z, r, i, buf)
}

// NearPoint appends the indexes of all atoms whose centers lie within r of
// an arbitrary point, and returns the extended slice.
func (g *cellGrid) NearPoint(x, y, z, r float64, buf []int) []int {
	return g.scan(x, y, z, r, -1, buf)
}

func (g *cellGrid) scan(x, y, z, r float64, skip int, buf []int) []int {
	if len(g.atoms) == 0 {
		return buf
	}
	reach := int(r/g.side) + 1
	cx, cy, cz := g.cellCoords(x, y, z)
	r2 := r * r
	for dz := -reach; dz <= reach; dz++ {
		wz := cz + dz
		if wz < 0 || wz >= g.nz {
			continue
		}
		for dy := -reach; dy <= reach; dy++ {
			wy := cy + dy
			if wy < 0 || wy >= g.ny {
				continue
			}
			for dx := -reach; dx <= reach; dx++ {
				wx := cx + dx
				if wx < 0 || wx >= g.nx {
					continue
				}
				for _, j := range g.cells[wx+g.nx*(wy+g.ny*wz)] {
					if j == skip {
						continue
					}
					b := g.atoms[j]
					ddx := b.X - x
					ddy := b.Y - y
					ddz := b.Z - z
					if ddx*ddx+ddy*ddy+ddz*ddz <= r2 {
						buf = append(buf, j)
					}
				}
			}
		}
	}
	return buf
}
