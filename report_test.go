/*
report_test.go, part of Tinku



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
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func sampleModel(index int) *ModelResult {
	c := carbonPair(2.0)
	c.AreaI, c.AreaJ, c.Area = 3.0, 5.0, 8.0
	c.Volume = 2.0
	c.Type = TypeHydrophobic
	contacts := []*Contact{c}
	return &ModelResult{
		Index:    index,
		NAtoms:   2,
		Contacts: contacts,
		Residues: Summarize(contacts),
	}
}

func TestReportTables(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutDir = filepath.Join(t.TempDir(), "out")
	res := &Result{Name: "sample", NModels: 1}
	rw, err := NewReportWriter(cfg, res)
	if err != nil {
		t.Fatal(err)
	}
	if err := rw.WriteModel(sampleModel(1)); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(cfg.OutDir, "sample")

	f, err := os.Open(filepath.Join(dir, "sample_contacts.csv"))
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(f).ReadAll()
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("contacts table has %d rows, want header plus one", len(rows))
	}
	if rows[1][0] != "A1-ALA" || rows[1][6] != TypeHydrophobic {
		t.Errorf("unexpected contact row %v", rows[1])
	}

	f, err = os.Open(filepath.Join(dir, "sample_residues.csv"))
	if err != nil {
		t.Fatal(err)
	}
	rows, err = csv.NewReader(f).ReadAll()
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("residue table has %d rows, want header plus two residues", len(rows))
	}
	if rows[1][0] != "A1-ALA" || rows[1][1] != "3.000" {
		t.Errorf("unexpected residue row %v", rows[1])
	}
	if rows[2][0] != "A2-ALA" || rows[2][1] != "5.000" {
		t.Errorf("unexpected residue row %v", rows[2])
	}

	//single MODEL: no suffix, no stats table
	if _, err := os.Stat(filepath.Join(dir, "sample_stats.csv")); !os.IsNotExist(err) {
		t.Error("stats table written without a finalize step")
	}
}

func TestReportCompressed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutDir = filepath.Join(t.TempDir(), "out")
	cfg.Compress = true
	rw, err := NewReportWriter(cfg, &Result{Name: "sample", NModels: 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := rw.WriteModel(sampleModel(1)); err != nil {
		t.Fatal(err)
	}
	gz := filepath.Join(cfg.OutDir, "sample", "sample_contacts.csv.gz")
	if _, err := os.Stat(gz); err != nil {
		t.Fatalf("compressed table missing: %v", err)
	}
	plain := filepath.Join(cfg.OutDir, "sample", "sample_contacts.csv")
	if _, err := os.Stat(plain); !os.IsNotExist(err) {
		t.Error("plain table written alongside the compressed one")
	}
}

func TestReportStats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutDir = filepath.Join(t.TempDir(), "out")
	res := &Result{Name: "sample", NModels: 2}
	rw, err := NewReportWriter(cfg, res)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 2; i++ {
		if err := rw.WriteModel(sampleModel(i)); err != nil {
			t.Fatal(err)
		}
	}
	stats := map[ResID]SeriesStats{
		{Chain: "A", Num: 1, Name: "ALA"}: {Max: 12, Min: 10, Range: 2, Mean: 11, RMSD: 0.816, CV: 0.074},
	}
	if err := rw.WriteStats(stats); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(cfg.OutDir, "sample")
	//multi-MODEL runs suffix the per-MODEL tables
	if _, err := os.Stat(filepath.Join(dir, "sample_MODEL_2_contacts.csv")); err != nil {
		t.Fatalf("suffixed table missing: %v", err)
	}
	f, err := os.Open(filepath.Join(dir, "sample_stats.csv"))
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(f).ReadAll()
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1][1] != "12.000" || rows[1][4] != "11.000" {
		t.Errorf("unexpected stats rows %v", rows)
	}
}

func TestWriteFileEndToEnd(t *testing.T) {
	content := "MODEL        1\n" + glyGly(0) + "ENDMDL\n" +
		"MODEL        2\n" + glyGly(0.3) + "ENDMDL\nEND\n"
	path := writeTestPDB(t, "digly.pdb", content)
	cfg := DefaultConfig()
	cfg.OutDir = filepath.Join(t.TempDir(), "out")
	eng, err := NewEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	res, err := WriteFile(eng, cfg, path)
	if err != nil {
		t.Fatal(err)
	}
	if res.Skipped {
		t.Fatalf("unexpected skip: %s", res.SkipReason)
	}
	dir := filepath.Join(cfg.OutDir, "digly")
	for _, name := range []string{
		"digly_MODEL_1_contacts.csv", "digly_MODEL_1_residues.csv",
		"digly_MODEL_2_contacts.csv", "digly_MODEL_2_residues.csv",
		"digly_stats.csv",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output table %s: %v", name, err)
		}
	}
}

func TestWriteFileSkippedNoOutput(t *testing.T) {
	content := pdbLine("HETATM", 1, "O", "HOH", "A", 1, 0, 0, 0, "O") + "END\n"
	path := writeTestPDB(t, "waters.pdb", content)
	cfg := DefaultConfig()
	cfg.OutDir = filepath.Join(t.TempDir(), "out")
	eng, err := NewEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	res, err := WriteFile(eng, cfg, path)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Skipped {
		t.Fatal("water-only file not skipped")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutDir, "waters")); !os.IsNotExist(err) {
		t.Error("skipped file still produced an output directory")
	}
}
