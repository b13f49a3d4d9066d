/*
aggregate.go, part of Tinku



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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Default lower cutoffs below which a measurement is discarded from
// aggregation. A contact survives if its area or its volume reaches the
// respective cutoff.
const (
	DefaultAreaCutoff   = 0.5
	DefaultVolumeCutoff = 0.2
)

// ParseCutoffs validates a user-supplied cutoff list: exactly two values
// (area, volume) or none at all, in which case the defaults apply.
func ParseCutoffs(vals []float64) (area, volume float64, err error) {
	switch len(vals) {
	case 0:
		return DefaultAreaCutoff, DefaultVolumeCutoff, nil
	case 2:
		if vals[0] < 0 || vals[1] < 0 {
			return 0, 0, fmt.Errorf("cutoffs must be non-negative, got %v", vals)
		}
		return vals[0], vals[1], nil
	}
	return 0, 0, fmt.Errorf("expected exactly two cutoff values (area, volume) or none, got %d", len(vals))
}

// ApplyCutoffs returns the contacts surviving the lower cutoffs. A
// contact is dropped only when both its area and its volume fall below
// the respective cutoff, so the filter is idempotent and raising a cutoff
// can only shrink the result.
func ApplyCutoffs(contacts []*Contact, areaCut, volumeCut float64) []*Contact {
	kept := make([]*Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Area < areaCut && c.Volume < volumeCut {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// ResidueSummary aggregates the surviving contacts of one residue in one
// MODEL. Contacts are held by reference; the numeric totals split the
// buried area by bond category and by interaction type.
type ResidueSummary struct {
	Res     ResID
	BSA     float64 //buried surface area: this residue's own buried patches
	Volume  float64 //summed contact volume over this residue's contacts
	WVolume float64 //summed occupancy-weighted volume

	CovalentBSA    float64
	NonCovalentBSA float64
	ByType         map[string]float64 //buried area per interaction type

	Phi, Psi    float64 //backbone dihedrals, degrees
	HasDihedral bool

	Contacts []*Contact
}

// Summarize reduces a filtered contact list into per-residue summaries.
// Each atom's own buried patch goes to its residue, so a contact between
// two residues contributes one half to each and is never double counted
// within a residue; the shared volume counts for both participants.
func Summarize(contacts []*Contact) map[ResID]*ResidueSummary {
	out := make(map[ResID]*ResidueSummary)
	get := func(r ResID) *ResidueSummary {
		rs, ok := out[r]
		if !ok {
			rs = &ResidueSummary{Res: r, ByType: make(map[string]float64)}
			out[r] = rs
		}
		return rs
	}
	add := func(rs *ResidueSummary, c *Contact, ownArea float64) {
		rs.BSA += ownArea
		rs.Volume += c.Volume
		rs.WVolume += c.WVolume
		if c.Covalent {
			rs.CovalentBSA += ownArea
		} else {
			rs.NonCovalentBSA += ownArea
		}
		rs.ByType[c.Type] += ownArea
		rs.Contacts = append(rs.Contacts, c)
	}
	for _, c := range contacts {
		ri := get(c.I.Res)
		add(ri, c, c.AreaI)
		if c.J.Res == c.I.Res {
			ri.BSA += c.AreaJ //intra-residue contact: both patches are ours
			continue
		}
		add(get(c.J.Res), c, c.AreaJ)
	}
	return out
}

// SeriesStats are the per-residue statistics over the MODELs of one
// structure. RMSD is the population standard deviation about the mean,
// CV the ratio of RMSD to the mean.
type SeriesStats struct {
	Max, Min, Range, Mean, RMSD, CV float64
}

func seriesStats(xs []float64) SeriesStats {
	s := SeriesStats{
		Max:  floats.Max(xs),
		Min:  floats.Min(xs),
		Mean: stat.Mean(xs, nil),
		RMSD: stat.PopStdDev(xs, nil),
	}
	s.Range = s.Max - s.Min
	if s.Mean != 0 {
		s.CV = s.RMSD / s.Mean
	}
	return s
}

// ModelAccumulator collects per-MODEL residue summaries across a whole
// structure, then computes cross-MODEL statistics in an explicit finalize
// step. Only the BSA series per residue is retained between MODELs, not
// the raw measurements.
type ModelAccumulator struct {
	series map[ResID][]float64
	models int
}

func NewModelAccumulator() *ModelAccumulator {
	return &ModelAccumulator{series: make(map[ResID][]float64)}
}

// Add records one MODEL's summaries. Residues absent from a MODEL enter
// its slot as zero, so every series stays aligned with the MODEL count.
func (ma *ModelAccumulator) Add(residues map[ResID]*ResidueSummary) {
	for r, rs := range residues {
		xs, ok := ma.series[r]
		if !ok {
			xs = make([]float64, ma.models)
		}
		ma.series[r] = append(xs, rs.BSA)
	}
	ma.models++
	for r, xs := range ma.series {
		if len(xs) < ma.models {
			ma.series[r] = append(xs, 0)
		}
	}
}

// Models returns how many MODELs have been accumulated.
func (ma *ModelAccumulator) Models() int {
	return ma.models
}

// Finalize computes the statistics over every accumulated residue series.
// It must only be called after the last MODEL of the structure.
func (ma *ModelAccumulator) Finalize() map[ResID]SeriesStats {
	out := make(map[ResID]SeriesStats, len(ma.series))
	for r, xs := range ma.series {
		out[r] = seriesStats(xs)
	}
	return out
}
