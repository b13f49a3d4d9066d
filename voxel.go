/*
voxel.go, part of Tinku



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

import "math"

// sampler measures the shared surface and volume of contact pairs at a
// fixed sample spacing h. All sampling is on regular lattices, so results
// are deterministic for a given atom set and resolution.
type sampler struct {
	h            float64
	weighted     bool //accumulate occupancy-weighted volume
	surfaceOnly  bool //skip volume sampling altogether
	sampledAreas bool //dot-array areas instead of analytic caps
	dotCache     map[int][][3]float64
}

func newSampler(h float64, weighted, surfaceOnly, sampledAreas bool) *sampler {
	return &sampler{
		h:            h,
		weighted:     weighted,
		surfaceOnly:  surfaceOnly,
		sampledAreas: sampledAreas,
		dotCache:     make(map[int][][3]float64),
	}
}

// measure fills the area, volume and weighted-volume fields of a contact.
// occ lists the atoms other than the pair itself whose spheres can reach
// the pair's overlap region; it is only consulted for occupancy weighting.
func (s *sampler) measure(c *Contact, occ []*Atom) {
	a, b := c.I, c.J
	if s.sampledAreas {
		c.AreaI = s.sampledBuriedArea(a, b)
		c.AreaJ = s.sampledBuriedArea(b, a)
	} else {
		c.AreaI = buriedCapArea(a.Radius, b.Radius, c.Dist)
		c.AreaJ = buriedCapArea(b.Radius, a.Radius, c.Dist)
	}
	c.Area = c.AreaI + c.AreaJ
	if s.surfaceOnly {
		return
	}
	c.Volume, c.WVolume = s.sampleVolume(a, b, occ)
}

// buriedCapArea returns the area of sphere a's surface buried inside
// sphere b, for radii ra, rb at center distance d. This is the analytic
// spherical cap cut by the intersection circle, clamped so that a sphere
// engulfed by the other reports its full surface, and an engulfing sphere
// reports zero.
func buriedCapArea(ra, rb, d float64) float64 {
	if d >= ra+rb {
		return 0
	}
	if d < 1e-9 {
		//coincident centers: buried iff not larger than the other
		if ra <= rb {
			return 4 * math.Pi * ra * ra
		}
		return 0
	}
	h := ra - (d*d+ra*ra-rb*rb)/(2*d)
	if h < 0 {
		h = 0
	}
	if h > 2*ra {
		h = 2 * ra
	}
	return 2 * math.Pi * ra * h
}

// dots returns n points quasi-uniformly distributed on the unit sphere,
// placed on a golden-angle spiral. The layout depends only on n.
func (s *sampler) dots(n int) [][3]float64 {
	if d, ok := s.dotCache[n]; ok {
		return d
	}
	golden := math.Pi * (3 - math.Sqrt(5))
	d := make([][3]float64, n)
	for i := 0; i < n; i++ {
		z := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - z*z)
		th := golden * float64(i)
		d[i] = [3]float64{r * math.Cos(th), r * math.Sin(th), z}
	}
	s.dotCache[n] = d
	return d
}

func (s *sampler) dotCount(r float64) int {
	n := int(4 * math.Pi * r * r / (s.h * s.h))
	if n < 64 {
		n = 64
	}
	return n
}

// sampledBuriedArea is the dot-array reference for buriedCapArea: the
// fraction of a's surface dots falling inside b, times a's total surface.
func (s *sampler) sampledBuriedArea(a, b *Atom) float64 {
	n := s.dotCount(a.Radius)
	inside := 0
	rb2 := b.Radius * b.Radius
	for _, d := range s.dots(n) {
		x := a.X + a.Radius*d[0] - b.X
		y := a.Y + a.Radius*d[1] - b.Y
		z := a.Z + a.Radius*d[2] - b.Z
		if x*x+y*y+z*z < rb2 {
			inside++
		}
	}
	return 4 * math.Pi * a.Radius * a.Radius * float64(inside) / float64(n)
}

func insideSphere(a *Atom, x, y, z float64) bool {
	dx := x - a.X
	dy := y - a.Y
	dz := z - a.Z
	return dx*dx+dy*dy+dz*dz < a.Radius*a.Radius
}

// sampleVolume walks a lattice with spacing h over the box where the two
// spheres can overlap, counting h^3 per sample inside both. With
// weighting on, a sample inside the pair plus k more spheres contributes
// h^3*(2+k) to the weighted accumulator.
func (s *sampler) sampleVolume(a, b *Atom, occ []*Atom) (vol, wvol float64) {
	lox := math.Max(a.X-a.Radius, b.X-b.Radius)
	loy := math.Max(a.Y-a.Radius, b.Y-b.Radius)
	loz := math.Max(a.Z-a.Radius, b.Z-b.Radius)
	hix := math.Min(a.X+a.Radius, b.X+b.Radius)
	hiy := math.Min(a.Y+a.Radius, b.Y+b.Radius)
	hiz := math.Min(a.Z+a.Radius, b.Z+b.Radius)
	if lox >= hix || loy >= hiy || loz >= hiz {
		return 0, 0
	}
	h := s.h
	h3 := h * h * h
	for x := lox + h/2; x < hix; x += h {
		for y := loy + h/2; y < hiy; y += h {
			for z := loz + h/2; z < hiz; z += h {
				if !insideSphere(a, x, y, z) || !insideSphere(b, x, y, z) {
					continue
				}
				vol += h3
				if s.weighted {
					k := 2
					for _, o := range occ {
						if insideSphere(o, x, y, z) {
							k++
						}
					}
					wvol += h3 * float64(k)
				}
			}
		}
	}
	return vol, wvol
}
