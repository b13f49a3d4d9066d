/*
engine.go, part of Tinku



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
	"fmt"
	"math"
	"runtime"
)

//sample spacings, in A.
const (
	NormalResolution   = 0.5
	EnhancedResolution = 0.25
)

// Config is the full configuration surface of the engine. It is explicit
// and injectable: CPU count and available memory are plain fields, so the
// engine is testable with artificial resource limits.
type Config struct {
	Enhanced     bool    //enhanced precision (halves the sample spacing)
	Resolution   float64 //sample spacing override, 0 selects by Enhanced
	AreaCutoff   float64
	VolumeCutoff float64
	ExtraDist    float64 //extends the contact rule beyond touching spheres
	Weighted     bool    //atomic-overlap weighted volumes
	SurfaceOnly  bool    //areas only, no volume sampling at all
	SampledAreas bool    //dot-array areas instead of analytic caps
	Threads      int     //worker count, clamped to MaxThreads
	MaxThreads   int     //usually runtime.NumCPU(); 0 selects it
	MemoryBudget int64   //bytes available for one run; 0 disables the check
	OutDir       string
	Compress     bool //gzip the output CSVs
}

// DefaultConfig returns the defaults: normal precision, 0.5/0.2 cutoffs,
// no extra distance, no weighting, full (surface and volume) run, as many
// threads as CPUs.
func DefaultConfig() *Config {
	return &Config{
		AreaCutoff:   DefaultAreaCutoff,
		VolumeCutoff: DefaultVolumeCutoff,
		Threads:      runtime.NumCPU(),
		MaxThreads:   runtime.NumCPU(),
		OutDir:       "tinku_out",
	}
}

// Validate normalizes the configuration and rejects inconsistent
// settings. It is called by NewEngine; calling it twice is harmless.
func (c *Config) Validate() error {
	if c.MaxThreads <= 0 {
		c.MaxThreads = runtime.NumCPU()
	}
	if c.Threads <= 0 || c.Threads > c.MaxThreads {
		c.Threads = c.MaxThreads
	}
	if c.Resolution == 0 {
		if c.Enhanced {
			c.Resolution = EnhancedResolution
		} else {
			c.Resolution = NormalResolution
		}
	}
	if c.Resolution < 0 {
		return fmt.Errorf("resolution must be positive, got %g", c.Resolution)
	}
	if c.AreaCutoff < 0 || c.VolumeCutoff < 0 {
		return fmt.Errorf("cutoffs must be non-negative, got %g/%g", c.AreaCutoff, c.VolumeCutoff)
	}
	if c.ExtraDist < 0 {
		return fmt.Errorf("extra contact distance must be non-negative, got %g", c.ExtraDist)
	}
	if c.SurfaceOnly && c.Weighted {
		return fmt.Errorf("overlap weighting requires volume sampling, which surface-only mode disables")
	}
	return nil
}

// ModelResult holds everything computed for one MODEL, after cutoff
// filtering and aggregation.
type ModelResult struct {
	Index    int //1-based MODEL number; 1 for single-model files
	NAtoms   int
	Contacts []*Contact
	Residues map[ResID]*ResidueSummary
}

// Result is the outcome of one structure file. Per-MODEL results are not
// retained here; they are handed to the caller's sink one at a time.
type Result struct {
	Name       string
	NModels    int
	Stats      map[ResID]SeriesStats //cross-MODEL, nil for single-MODEL files
	Skipped    bool
	SkipReason string
}

// ModelSink receives each MODEL's results as soon as that MODEL is done.
// The parent Result already carries the structure's name and MODEL count
// when the sink runs, but not yet the cross-MODEL statistics.
type ModelSink func(res *Result, mr *ModelResult) error

// Engine runs the contact analysis for whole structure files, one MODEL
// at a time.
type Engine struct {
	cfg *Config
}

// NewEngine validates the configuration and builds an engine around it.
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

//record size guesses for the memory estimate.
const (
	atomRecordBytes    = 160
	contactRecordBytes = 176
	contactsPerAtom    = 32 //generous upper bound on coordination
)

// EstimateMemory returns a conservative peak-memory estimate, in bytes,
// for a MODEL with n atoms at the configured resolution. The dominant
// resolution-dependent term is the per-pair sample lattice working set,
// which grows with the cube of the inverse spacing.
func (e *Engine) EstimateMemory(n int) int64 {
	h := e.cfg.Resolution
	edge := (4*maxVdwRadius + e.cfg.ExtraDist) / h
	perPair := int64(edge*edge*edge) * 8
	if e.cfg.SurfaceOnly {
		perPair = int64(4*math.Pi*maxVdwRadius*maxVdwRadius/(h*h)) * 24
	}
	pairs := int64(n) * contactsPerAtom / 2
	return int64(n)*atomRecordBytes + pairs*contactRecordBytes + int64(e.cfg.Threads)*perPair
}

// RunFile analyzes one structure file end to end, flushing each MODEL's
// results to sink before the next MODEL starts. Only the per-residue
// series for the cross-MODEL statistics survives between MODELs, so peak
// memory stays at one MODEL regardless of how many the file holds. A nil
// sink discards the per-MODEL results.
//
// Files that would exceed the memory budget, or that hold no valid
// atoms, come back with Skipped set and a reason instead of an error:
// they are diagnostics, not failures of the batch. Parse failures and
// internal geometry errors are returned as errors and abort only this
// file.
func (e *Engine) RunFile(path string, sink ModelSink) (*Result, error) {
	st, err := LoadStructure(path)
	if err != nil {
		return nil, err
	}
	res := &Result{Name: st.Name, NModels: st.NModels()}
	if st.NAtoms() == 0 {
		res.Skipped = true
		res.SkipReason = "no valid atoms after filtering"
		return res, nil
	}
	if est := e.EstimateMemory(st.NAtoms()); e.cfg.MemoryBudget > 0 && est > e.cfg.MemoryBudget {
		res.Skipped = true
		res.SkipReason = fmt.Sprintf("estimated memory %d bytes exceeds budget %d bytes", est, e.cfg.MemoryBudget)
		return res, nil
	}
	acc := NewModelAccumulator()
	for frame := 0; frame < st.NModels(); frame++ {
		atoms := st.Model(frame)
		mr, err := e.runModel(atoms, frame+1)
		if err != nil {
			return nil, fmt.Errorf("%s MODEL %d: %w", st.Name, frame+1, err)
		}
		attachDihedrals(mr.Residues, st.Dihedrals(frame))
		acc.Add(mr.Residues)
		if sink != nil {
			if err := sink(res, mr); err != nil {
				return nil, fmt.Errorf("%s MODEL %d: %w", st.Name, frame+1, err)
			}
		}
	}
	if acc.Models() > 1 {
		res.Stats = acc.Finalize()
	}
	return res, nil
}

// RunModel analyzes a single atom set. It is the per-MODEL pipeline:
// spatial index, contact detection, classification, sampling,
// cutoff filtering and residue aggregation.
func (e *Engine) RunModel(atoms []*Atom) (*ModelResult, error) {
	return e.runModel(atoms, 1)
}

func (e *Engine) runModel(atoms []*Atom, index int) (*ModelResult, error) {
	cfg := e.cfg
	cell := 2*maxVdwRadius + cfg.ExtraDist
	g := newCellGrid(atoms, cell)
	contacts := DetectContacts(atoms, g, cfg.ExtraDist)
	ClassifyContacts(contacts)

	s := newSampler(cfg.Resolution, cfg.Weighted, cfg.SurfaceOnly, cfg.SampledAreas)
	buf := make([]int, 0, 64)
	for _, c := range contacts {
		var occ []*Atom
		if cfg.Weighted {
			mx := (c.I.X + c.J.X) / 2
			my := (c.I.Y + c.J.Y) / 2
			mz := (c.I.Z + c.J.Z) / 2
			reach := c.Dist/2 + c.I.Radius + c.J.Radius + maxVdwRadius
			buf = g.NearPoint(mx, my, mz, reach, buf[:0])
			for _, j := range buf {
				if a := atoms[j]; a != c.I && a != c.J {
					occ = append(occ, a)
				}
			}
		}
		s.measure(c, occ)
		if c.Area < 0 || c.Volume < 0 || c.WVolume < 0 {
			return nil, fmt.Errorf("internal error: negative measure for %s-%s (area %g, volume %g)",
				c.I.Res, c.J.Res, c.Area, c.Volume)
		}
		if cfg.Weighted && c.WVolume < c.Volume {
			return nil, fmt.Errorf("internal error: weighted volume %g below volume %g for %s-%s",
				c.WVolume, c.Volume, c.I.Res, c.J.Res)
		}
	}
	kept := ApplyCutoffs(contacts, cfg.AreaCutoff, cfg.VolumeCutoff)
	return &ModelResult{
		Index:    index,
		NAtoms:   len(atoms),
		Contacts: kept,
		Residues: Summarize(kept),
	}, nil
}
