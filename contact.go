/*
contact.go, part of Tinku



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

import "sort"

// Contact is a detected atom pair plus its measured interface. A pair
// counts as a contact when its center distance is within the sum of van
// der Waals radii plus the configured extra distance; whether the spheres
// geometrically overlap (nonzero area/volume) is an independent signal.
type Contact struct {
	I, J     *Atom
	Dist     float64
	Covalent bool
	Type     string

	//Filled by the sampler. AreaI/AreaJ are the buried patches of each
	//atom's own surface; Area is their sum.
	Area, AreaI, AreaJ float64
	Volume             float64
	WVolume            float64 //occupancy-weighted volume, 0 unless enabled
}

//tolerance added to the covalent radius sum when deciding whether two
//atoms are bonded, as in goChem's bond search.
const bondTolerance = 0.45

// bonded returns whether the pair is within covalent bonding distance.
// With hydrogens stripped upstream this captures intra-residue bonds,
// peptide C-N and phosphodiester O3'-P links, and disulfide bridges.
func bonded(a, b *Atom, d float64) bool {
	return d <= covRadius(a.Symbol)+covRadius(b.Symbol)+bondTolerance
}

// DetectContacts finds every unordered atom pair whose distance is within
// the radius sum plus extra, using the grid for neighbor queries. Pairs
// are returned sorted by atom indexes, so the output is deterministic for
// a given atom list.
func DetectContacts(atoms []*Atom, g *cellGrid, extra float64) []*Contact {
	if len(atoms) < 2 {
		return nil
	}
	maxReach := 2*maxVdwRadius + extra
	var contacts []*Contact
	buf := make([]int, 0, 64)
	for i, a := range atoms {
		buf = g.Neighbors(i, maxReach, buf[:0])
		for _, j := range buf {
			if j <= i {
				continue
			}
			b := atoms[j]
			d := Dist(a, b)
			if d > a.Radius+b.Radius+extra {
				continue
			}
			contacts = append(contacts, &Contact{
				I:        a,
				J:        b,
				Dist:     d,
				Covalent: bonded(a, b, d),
			})
		}
	}
	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].I.Index != contacts[j].I.Index {
			return contacts[i].I.Index < contacts[j].I.Index
		}
		return contacts[i].J.Index < contacts[j].J.Index
	})
	return contacts
}

// Pair is the tuple handed to interaction classification for every
// detected contact, independent of the numeric measurement.
type Pair struct {
	I, J     *Atom
	Covalent bool
}

// Pairs extracts the classifier-facing tuples from a contact list.
func Pairs(contacts []*Contact) []Pair {
	ps := make([]Pair, len(contacts))
	for i, c := range contacts {
		ps[i] = Pair{I: c.I, J: c.J, Covalent: c.Covalent}
	}
	return ps
}
