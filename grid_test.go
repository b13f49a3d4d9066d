/*
grid_test.go, part of Tinku



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

import (
	"math/rand"
	"sort"
	"testing"
)

func testAtom(i int, x, y, z float64) *Atom {
	return &Atom{
		Index:  i,
		Name:   "CA",
		Symbol: "C",
		Radius: VdwRadius("C"),
		X:      x, Y: y, Z: z,
		Res: ResID{Chain: "A", Num: i + 1, Name: "ALA"},
	}
}

func bruteNeighbors(atoms []*Atom, i int, r float64) []int {
	var out []int
	for j, b := range atoms {
		if j != i && Dist(atoms[i], b) <= r {
			out = append(out, j)
		}
	}
	return out
}

func TestGridMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	atoms := make([]*Atom, 300)
	for i := range atoms {
		atoms[i] = testAtom(i, rng.Float64()*30, rng.Float64()*30, rng.Float64()*30)
	}
	for _, r := range []float64{1.0, 4.0, 9.5} {
		g := newCellGrid(atoms, 4.0)
		for i := range atoms {
			got := g.Neighbors(i, r, nil)
			sort.Ints(got)
			want := bruteNeighbors(atoms, i, r)
			if len(got) != len(want) {
				t.Fatalf("r=%g atom %d: got %d neighbors, want %d", r, i, len(got), len(want))
			}
			for k := range want {
				if got[k] != want[k] {
					t.Fatalf("r=%g atom %d: neighbor %d is %d, want %d", r, i, k, got[k], want[k])
				}
			}
		}
	}
}

func TestGridDegenerateInputs(t *testing.T) {
	g := newCellGrid(nil, 4.0)
	if got := g.NearPoint(0, 0, 0, 10, nil); len(got) != 0 {
		t.Errorf("empty grid returned %d atoms", len(got))
	}

	one := []*Atom{testAtom(0, 1, 2, 3)}
	g = newCellGrid(one, 4.0)
	if got := g.Neighbors(0, 10, nil); len(got) != 0 {
		t.Errorf("single atom has %d neighbors, want 0", len(got))
	}

	//coincident coordinates are valid, distance zero
	twins := []*Atom{testAtom(0, 5, 5, 5), testAtom(1, 5, 5, 5)}
	g = newCellGrid(twins, 4.0)
	got := g.Neighbors(0, 0.001, nil)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("coincident atoms: got neighbors %v, want [1]", got)
	}
}

func TestGridNearPoint(t *testing.T) {
	atoms := []*Atom{
		testAtom(0, 0, 0, 0),
		testAtom(1, 3, 0, 0),
		testAtom(2, 10, 10, 10),
	}
	g := newCellGrid(atoms, 4.0)
	got := g.NearPoint(1.5, 0, 0, 2.0, nil)
	sort.Ints(got)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("NearPoint got %v, want [0 1]", got)
	}
}
