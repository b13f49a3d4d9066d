/*
classify.go, part of Tinku



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

// Interaction type tags assigned to contacts.
const (
	TypeDisulfide      = "disulfide"
	TypePeptide        = "peptide"
	TypePhosphodiester = "phosphodiester"
	TypeCovalent       = "covalent" //bonded, none of the above
	TypeHBond          = "hbond"
	TypeAromatic       = "aromatic"
	TypeHydrophobic    = "hydrophobic"
	TypePolar          = "polar"
	TypeOther          = "other"
)

//donor/acceptor distance ceiling for a heavy-atom hydrogen bond.
const hbondMaxDist = 3.5

//ring atoms per aromatic residue. Bases of the standard nucleotides are
//covered through their one/two letter residue names.
var aromaticAtoms = map[string]map[string]bool{
	"PHE": ringSet("CG", "CD1", "CD2", "CE1", "CE2", "CZ"),
	"TYR": ringSet("CG", "CD1", "CD2", "CE1", "CE2", "CZ"),
	"TRP": ringSet("CG", "CD1", "CD2", "NE1", "CE2", "CE3", "CZ2", "CZ3", "CH2"),
	"HIS": ringSet("CG", "ND1", "CD2", "CE1", "NE2"),
	"A":   baseRing(), "G": baseRing(), "C": baseRing(), "U": baseRing(),
	"DA": baseRing(), "DG": baseRing(), "DC": baseRing(), "DT": baseRing(),
}

func ringSet(names ...string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

func baseRing() map[string]bool {
	return ringSet("N1", "C2", "N3", "C4", "C5", "C6", "N7", "C8", "N9")
}

func isAromatic(a *Atom) bool {
	ring, ok := aromaticAtoms[a.Res.Name]
	return ok && ring[a.Name]
}

func isPolar(a *Atom) bool {
	return a.Symbol == "N" || a.Symbol == "O"
}

// Classify assigns an interaction type tag to a detected pair, keyed only
// on atom and residue identity plus the covalent flag.
func Classify(p Pair) string {
	a, b := p.I, p.J
	if p.Covalent {
		switch {
		case a.Symbol == "S" && b.Symbol == "S":
			return TypeDisulfide
		case a.Res != b.Res && ((a.Name == "C" && b.Name == "N") || (a.Name == "N" && b.Name == "C")):
			return TypePeptide
		case (a.Symbol == "P" && b.Symbol == "O") || (a.Symbol == "O" && b.Symbol == "P"):
			return TypePhosphodiester
		}
		return TypeCovalent
	}
	switch {
	case isPolar(a) && isPolar(b) && Dist(a, b) <= hbondMaxDist:
		return TypeHBond
	case isAromatic(a) && isAromatic(b):
		return TypeAromatic
	case a.Symbol == "C" && b.Symbol == "C":
		return TypeHydrophobic
	case isPolar(a) || isPolar(b):
		return TypePolar
	}
	return TypeOther
}

// ClassifyContacts tags every contact in place.
func ClassifyContacts(contacts []*Contact) {
	for _, c := range contacts {
		c.Type = Classify(Pair{I: c.I, J: c.J, Covalent: c.Covalent})
	}
}
