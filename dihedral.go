/*
dihedral.go, part of Tinku



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

import chem "github.com/rmera/gochem"

// Dihedrals returns the phi/psi backbone dihedrals (degrees) per protein
// residue for one MODEL. Structures without a contiguous protein
// backbone (nucleic acids, ligand-only models) simply yield nil; the
// residue reports then omit the dihedral columns.
func (st *Structure) Dihedrals(frame int) map[ResID][2]float64 {
	sets, err := chem.RamaList(st.mol, "", []int{0, -1})
	if err != nil || len(sets) == 0 {
		return nil
	}
	angles, err := chem.RamaCalc(st.mol.Coords[frame], sets)
	if err != nil {
		return nil
	}
	out := make(map[ResID][2]float64, len(sets))
	for i, set := range sets {
		ca := st.mol.Atom(set.Ca)
		r := ResID{Chain: ca.Chain, Num: ca.MolID, Name: ca.MolName}
		out[r] = [2]float64{angles[i][0], angles[i][1]}
	}
	return out
}

// attachDihedrals copies phi/psi values into the residue summaries that
// have them.
func attachDihedrals(residues map[ResID]*ResidueSummary, dih map[ResID][2]float64) {
	for r, rs := range residues {
		if a, ok := dih[r]; ok {
			rs.Phi, rs.Psi = a[0], a[1]
			rs.HasDihedral = true
		}
	}
}
