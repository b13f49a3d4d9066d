/*
load.go, part of Tinku



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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/rmera/gochem"
)

//standard residue names, three letter codes for amino acids and one/two
//letter codes for nucleotides.
var standardRes = map[string]bool{
	"ALA": true, "ARG": true, "ASN": true, "ASP": true, "CYS": true,
	"GLN": true, "GLU": true, "GLY": true, "HIS": true, "ILE": true,
	"LEU": true, "LYS": true, "MET": true, "PHE": true, "PRO": true,
	"SER": true, "THR": true, "TRP": true, "TYR": true, "VAL": true,
	"A": true, "G": true, "C": true, "U": true,
	"DA": true, "DG": true, "DC": true, "DT": true,
}

var waterRes = map[string]bool{"HOH": true, "WAT": true, "TIP": true, "SOL": true}

// Structure is one loaded PDB file: the parsed molecule plus the indexes
// of the atoms that survive filtering. MODELs are exposed one at a time
// so the engine never holds more than one MODEL's atom set.
type Structure struct {
	Name string
	mol  *chem.Molecule
	keep []int //topology indexes of engine-relevant atoms
}

// isGzip reports whether the header bytes carry the gzip magic number.
func isGzip(header []byte) bool {
	return len(header) >= 2 && header[0] == 0x1f && header[1] == 0x8b
}

// stemName strips directories and the .pdb/.ent extension, twice when
// the file is compressed (foo.pdb.gz -> foo).
func stemName(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".gz", ".pdb", ".ent"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// gunzipToTemp decompresses a gzipped PDB to a temporary file and returns
// its path. The caller removes the file when done.
func gunzipToTemp(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()
	zr, err := gzip.NewReader(in)
	if err != nil {
		return "", fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()
	tmp, err := os.CreateTemp("", "tinku-*.pdb")
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(tmp, zr); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("gzip: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// LoadStructure reads a plain or gzipped PDB file and filters out the
// atoms the engine never sees: hydrogens, terminal OXT oxygens, waters,
// and duplicated alternate locations (first one wins).
func LoadStructure(path string) (*Structure, error) {
	name := stemName(path)
	header := make([]byte, 2)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	_, err = io.ReadFull(f, header)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: unsupported or empty file: %w", name, err)
	}
	pdbpath := path
	if isGzip(header) {
		pdbpath, err = gunzipToTemp(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		defer os.Remove(pdbpath)
	}
	mol, err := chem.PDBFileRead(pdbpath)
	if err != nil {
		return nil, fmt.Errorf("%s: unsupported or corrupted PDB: %w", name, err)
	}
	mol.FillIndexes()

	st := &Structure{Name: name, mol: mol}
	type atomKey struct {
		res  ResID
		name string
	}
	seen := make(map[atomKey]bool)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if at.Symbol == "H" || at.Symbol == "D" || at.Name == "OXT" {
			continue
		}
		if waterRes[at.MolName] {
			continue
		}
		k := atomKey{res: ResID{Chain: at.Chain, Num: at.MolID, Name: at.MolName}, name: at.Name}
		if seen[k] {
			continue
		}
		seen[k] = true
		st.keep = append(st.keep, i)
	}
	return st, nil
}

// NModels returns how many MODELs (coordinate frames) the file carries.
func (st *Structure) NModels() int {
	return len(st.mol.Coords)
}

// NAtoms returns the number of atoms that survived filtering.
func (st *Structure) NAtoms() int {
	return len(st.keep)
}

// Model materializes the filtered atom list for one MODEL, baking in that
// frame's coordinates. The slice is freshly allocated; dropping it after
// use releases the MODEL.
func (st *Structure) Model(frame int) []*Atom {
	coords := st.mol.Coords[frame]
	atoms := make([]*Atom, 0, len(st.keep))
	for _, i := range st.keep {
		at := st.mol.Atom(i)
		v := coords.VecView(i)
		atoms = append(atoms, &Atom{
			Index:  len(atoms),
			Name:   at.Name,
			Symbol: at.Symbol,
			Radius: VdwRadius(at.Symbol),
			X:      v.At(0, 0),
			Y:      v.At(0, 1),
			Z:      v.At(0, 2),
			Res: ResID{
				Chain: at.Chain,
				Num:   at.MolID,
				Name:  at.MolName,
			},
			Standard: standardRes[at.MolName],
		})
	}
	return atoms
}
