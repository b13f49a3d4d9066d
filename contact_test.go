/*
contact_test.go, part of Tinku



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

import "testing"

func detect(atoms []*Atom, extra float64) []*Contact {
	g := newCellGrid(atoms, 2*maxVdwRadius+extra)
	return DetectContacts(atoms, g, extra)
}

// Two carbons (vdW 1.7 each) at 2.0 A overlap and must come out as one
// candidate; at 4.0 A they are out of range with no extra distance.
func TestCarbonPairDetection(t *testing.T) {
	touching := []*Atom{testAtom(0, 0, 0, 0), testAtom(1, 0, 0, 2.0)}
	touching[1].Res.Num = 2
	contacts := detect(touching, 0)
	if len(contacts) != 1 {
		t.Fatalf("2.0 A apart: got %d candidates, want 1", len(contacts))
	}
	if contacts[0].Covalent {
		t.Error("2.0 A carbon pair misdetected as covalently bonded")
	}

	apart := []*Atom{testAtom(0, 0, 0, 0), testAtom(1, 0, 0, 4.0)}
	apart[1].Res.Num = 2
	if contacts := detect(apart, 0); len(contacts) != 0 {
		t.Fatalf("4.0 A apart: got %d candidates, want 0", len(contacts))
	}
}

// With a positive extra distance the pair is recorded as a contact even
// though the spheres never intersect: it carries zero area and volume but
// still reaches the classifier.
func TestExtraDistanceLoosensContactRule(t *testing.T) {
	atoms := []*Atom{testAtom(0, 0, 0, 0), testAtom(1, 0, 0, 4.0)}
	atoms[1].Res.Num = 2
	contacts := detect(atoms, 1.0)
	if len(contacts) != 1 {
		t.Fatalf("extra=1.0: got %d candidates, want 1", len(contacts))
	}
	s := newSampler(0.2, false, false, false)
	s.measure(contacts[0], nil)
	if contacts[0].Area != 0 || contacts[0].Volume != 0 {
		t.Errorf("non-overlapping candidate measured area %g volume %g, want zero",
			contacts[0].Area, contacts[0].Volume)
	}
	if len(Pairs(contacts)) != 1 {
		t.Error("candidate did not reach the classifier stream")
	}
}

func TestCovalentTagging(t *testing.T) {
	//peptide C-N link between consecutive residues, 1.33 A
	c := testAtom(0, 0, 0, 0)
	c.Name, c.Symbol, c.Radius = "C", "C", VdwRadius("C")
	n := testAtom(1, 0, 0, 1.33)
	n.Name, n.Symbol, n.Radius = "N", "N", VdwRadius("N")
	n.Res.Num = 2
	contacts := detect([]*Atom{c, n}, 0)
	if len(contacts) != 1 || !contacts[0].Covalent {
		t.Fatalf("peptide link not tagged covalent: %+v", contacts)
	}

	//a 3.0 A polar pair is a plain non-covalent contact
	o := testAtom(1, 0, 0, 3.0)
	o.Name, o.Symbol, o.Radius = "O", "O", VdwRadius("O")
	o.Res.Num = 2
	contacts = detect([]*Atom{c, o}, 0)
	if len(contacts) != 1 || contacts[0].Covalent {
		t.Fatalf("3.0 A pair wrongly tagged covalent: %+v", contacts)
	}
}

func TestDetectionIsDeterministic(t *testing.T) {
	atoms := []*Atom{
		testAtom(0, 0, 0, 0),
		testAtom(1, 1.5, 0, 0),
		testAtom(2, 0, 1.5, 0),
		testAtom(3, 1.5, 1.5, 0),
	}
	for i, a := range atoms {
		a.Res.Num = i + 1
	}
	first := detect(atoms, 0)
	second := detect(atoms, 0)
	if len(first) != len(second) {
		t.Fatalf("runs disagree on candidate count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].I.Index != second[i].I.Index || first[i].J.Index != second[i].J.Index {
			t.Fatalf("candidate order differs at %d", i)
		}
		if first[i].J.Index <= first[i].I.Index {
			t.Fatalf("pair %d not ordered by atom index", i)
		}
	}
}
