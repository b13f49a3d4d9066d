/*
report.go, part of Tinku



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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

//the fixed column order for per-type buried area in the residue tables.
var reportTypes = []string{
	TypeDisulfide, TypePeptide, TypePhosphodiester, TypeCovalent,
	TypeHBond, TypeAromatic, TypeHydrophobic, TypePolar, TypeOther,
}

// residueOrder sorts residue identifiers by chain, then number, then name.
type residueOrder []ResID

func (a residueOrder) Len() int { return len(a) }
func (a residueOrder) Less(i, j int) bool {
	if a[i].Chain != a[j].Chain {
		return a[i].Chain < a[j].Chain
	}
	if a[i].Num != a[j].Num {
		return a[i].Num < a[j].Num
	}
	return a[i].Name < a[j].Name
}
func (a residueOrder) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

func sortedResidues[V any](m map[ResID]V) []ResID {
	keys := make(residueOrder, 0, len(m))
	for r := range m {
		keys = append(keys, r)
	}
	sort.Sort(keys)
	return keys
}

// csvFile wraps a CSV writer over a plain or gzipped file.
type csvFile struct {
	f  *os.File
	gz *gzip.Writer
	w  *csv.Writer
}

func newCSVFile(path string, compress bool) (*csvFile, error) {
	if compress {
		path += ".gz"
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	c := &csvFile{f: f}
	var w io.Writer = f
	if compress {
		c.gz = gzip.NewWriter(f)
		w = c.gz
	}
	c.w = csv.NewWriter(w)
	return c, nil
}

func (c *csvFile) Close() error {
	c.w.Flush()
	err := c.w.Error()
	if c.gz != nil {
		if e := c.gz.Close(); err == nil {
			err = e
		}
	}
	if e := c.f.Close(); err == nil {
		err = e
	}
	return err
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// ReportWriter writes the CSV tables of one structure file under
// cfg.OutDir/<name>/, one MODEL at a time, so a MODEL's tables can be
// flushed and its results dropped before the next MODEL is computed.
type ReportWriter struct {
	dir      string
	name     string
	multi    bool
	compress bool
}

// NewReportWriter creates the output directory for one structure file.
// It is only called for files that actually produce results; skipped
// files never get an output directory.
func NewReportWriter(cfg *Config, res *Result) (*ReportWriter, error) {
	dir := filepath.Join(cfg.OutDir, res.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%s: %w", res.Name, err)
	}
	return &ReportWriter{
		dir:      dir,
		name:     res.Name,
		multi:    res.NModels > 1,
		compress: cfg.Compress,
	}, nil
}

// WriteModel writes one MODEL's contact and residue tables.
func (w *ReportWriter) WriteModel(mr *ModelResult) error {
	suffix := ""
	if w.multi {
		suffix = fmt.Sprintf("_MODEL_%d", mr.Index)
	}
	base := filepath.Join(w.dir, w.name+suffix)
	if err := writeContacts(base+"_contacts.csv", mr, w.compress); err != nil {
		return fmt.Errorf("%s: %w", w.name, err)
	}
	if err := writeResidues(base+"_residues.csv", mr, w.compress); err != nil {
		return fmt.Errorf("%s: %w", w.name, err)
	}
	return nil
}

// WriteStats writes the cross-MODEL statistics table.
func (w *ReportWriter) WriteStats(stats map[ResID]SeriesStats) error {
	path := filepath.Join(w.dir, w.name+"_stats.csv")
	if err := writeStats(path, stats, w.compress); err != nil {
		return fmt.Errorf("%s: %w", w.name, err)
	}
	return nil
}

// WriteFile runs one structure file through the engine with the report
// writer as the per-MODEL sink: each MODEL's tables hit the disk before
// the next MODEL is computed, and nothing but the statistics series is
// retained across MODELs. Skipped files produce no output at all.
func WriteFile(eng *Engine, cfg *Config, path string) (*Result, error) {
	var rw *ReportWriter
	res, err := eng.RunFile(path, func(res *Result, mr *ModelResult) error {
		if rw == nil {
			var werr error
			if rw, werr = NewReportWriter(cfg, res); werr != nil {
				return werr
			}
		}
		return rw.WriteModel(mr)
	})
	if err != nil {
		return nil, err
	}
	if res.Stats != nil && rw != nil {
		if err := rw.WriteStats(res.Stats); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func writeContacts(path string, mr *ModelResult, compress bool) error {
	c, err := newCSVFile(path, compress)
	if err != nil {
		return err
	}
	c.w.Write([]string{"Residue1", "Atom1", "Residue2", "Atom2",
		"Distance", "Category", "Type", "Area", "Volume", "WeightedVolume"})
	for _, ct := range mr.Contacts {
		cat := "non-covalent"
		if ct.Covalent {
			cat = "covalent"
		}
		c.w.Write([]string{
			ct.I.Res.String(), ct.I.Name,
			ct.J.Res.String(), ct.J.Name,
			ff(ct.Dist), cat, ct.Type,
			ff(ct.Area), ff(ct.Volume), ff(ct.WVolume),
		})
	}
	return c.Close()
}

func writeResidues(path string, mr *ModelResult, compress bool) error {
	c, err := newCSVFile(path, compress)
	if err != nil {
		return err
	}
	header := []string{"Residue", "BSA", "CovalentBSA", "NonCovalentBSA",
		"Volume", "WeightedVolume", "Phi", "Psi"}
	for _, t := range reportTypes {
		header = append(header, "BSA_"+t)
	}
	c.w.Write(header)
	for _, r := range sortedResidues(mr.Residues) {
		rs := mr.Residues[r]
		phi, psi := "", ""
		if rs.HasDihedral {
			phi, psi = ff(rs.Phi), ff(rs.Psi)
		}
		row := []string{r.String(), ff(rs.BSA), ff(rs.CovalentBSA),
			ff(rs.NonCovalentBSA), ff(rs.Volume), ff(rs.WVolume), phi, psi}
		for _, t := range reportTypes {
			row = append(row, ff(rs.ByType[t]))
		}
		c.w.Write(row)
	}
	return c.Close()
}

func writeStats(path string, stats map[ResID]SeriesStats, compress bool) error {
	c, err := newCSVFile(path, compress)
	if err != nil {
		return err
	}
	c.w.Write([]string{"Residue", "Max", "Min", "Range", "Mean", "RMSD", "CV"})
	for _, r := range sortedResidues(stats) {
		s := stats[r]
		c.w.Write([]string{r.String(), ff(s.Max), ff(s.Min), ff(s.Range),
			ff(s.Mean), ff(s.RMSD), ff(s.CV)})
	}
	return c.Close()
}
