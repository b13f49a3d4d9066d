/*

Tinku, an inter-residue contact surface and volume profiler.

This program makes extensive use of the goChem Computational Chemistry library.
If you use this program, we kindly ask you support it by to citing the library as:

R. Mera-Adasme, G. Savasci and J. Pesonen, "goChem, a library for computational chemistry", http://www.gochem.org.


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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml"
	"github.com/rmera/scu"
	"github.com/rmera/tinku"
)

// fileConfig mirrors the flag surface for TOML run files. Pointer fields
// distinguish "absent" from zero values.
type fileConfig struct {
	Enhanced    *bool     `toml:"enhanced"`
	SurfaceOnly *bool     `toml:"surface_only"`
	Weighted    *bool     `toml:"weighted"`
	SampledSurf *bool     `toml:"sampled_surface"`
	ExtraDist   *float64  `toml:"extra_distance"`
	Cutoffs     []float64 `toml:"cutoffs"`
	Threads     *int      `toml:"threads"`
	OutDir      *string   `toml:"out_dir"`
	Compress    *bool     `toml:"compress"`
	MaxMemMB    *int64    `toml:"max_memory_mb"`
}

func applyTOML(cfg *tinku.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	var fc fileConfig
	if err := toml.NewDecoder(f).Decode(&fc); err != nil {
		return fmt.Errorf("configuration file %s: %w", path, err)
	}
	if fc.Enhanced != nil {
		cfg.Enhanced = *fc.Enhanced
	}
	if fc.SurfaceOnly != nil {
		cfg.SurfaceOnly = *fc.SurfaceOnly
	}
	if fc.Weighted != nil {
		cfg.Weighted = *fc.Weighted
	}
	if fc.SampledSurf != nil {
		cfg.SampledAreas = *fc.SampledSurf
	}
	if fc.ExtraDist != nil {
		cfg.ExtraDist = *fc.ExtraDist
	}
	if len(fc.Cutoffs) > 0 {
		a, v, err := tinku.ParseCutoffs(fc.Cutoffs)
		if err != nil {
			return err
		}
		cfg.AreaCutoff, cfg.VolumeCutoff = a, v
	}
	if fc.Threads != nil {
		cfg.Threads = *fc.Threads
	}
	if fc.OutDir != nil {
		cfg.OutDir = *fc.OutDir
	}
	if fc.Compress != nil {
		cfg.Compress = *fc.Compress
	}
	if fc.MaxMemMB != nil {
		cfg.MemoryBudget = *fc.MaxMemMB << 20
	}
	return nil
}

// availableMemory probes MemAvailable from /proc/meminfo, in bytes.
// Returns 0 (no limit enforced) when the probe fails.
func availableMemory() int64 {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[0] == "MemAvailable:" {
			kb, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return 0
			}
			return kb << 10
		}
	}
	return 0
}

// outcome of one input file, sent from a worker to the collector.
type outcome struct {
	file string
	res  *tinku.Result
	err  error
	cost time.Duration
}

func worker(eng *tinku.Engine, cfg *tinku.Config, files chan string, results chan outcome) {
	for file := range files {
		start := time.Now()
		res, err := tinku.WriteFile(eng, cfg, file)
		results <- outcome{file: file, res: res, err: err, cost: time.Since(start)}
	}
}

func main() {
	enhanced := flag.Bool("enhanced", false, "Enhanced precision: half the sample spacing, eight times the samples")
	surfonly := flag.Bool("surfonly", false, "Compute contact surfaces only, skipping all volume sampling")
	weighted := flag.Bool("weighted", false, "Weight contact volumes by the number of overlapping atoms")
	sampledsurf := flag.Bool("sampledsurf", false, "Use the dot-array surface sampler instead of the analytic formula")
	extra := flag.Float64("extra", 0, "Extra distance, in A, added to the van der Waals contact rule")
	cutoffs := flag.String("cutoffs", "", "Lower cutoffs as area,volume (exactly two values); empty for the defaults 0.5,0.2")
	threads := flag.Int("threads", 0, "Number of files to process in parallel (0 or above the CPU count means all CPUs)")
	out := flag.String("out", "tinku_out", "Output directory")
	compress := flag.Bool("gz", false, "Compress the output CSV files with gzip")
	maxmem := flag.Int64("maxmem", 0, "Memory budget in MB; 0 probes the available system memory")
	conf := flag.String("conf", "", "TOML configuration file; explicit flags still take precedence")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Tinku: contact surfaces and volumes for biomolecular structures.\n Usage:\n  %s [flags] file1.pdb [file2.pdb.gz ...] \n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := tinku.DefaultConfig()
	if *conf != "" {
		scu.QErr(applyTOML(cfg, *conf))
	}
	//explicit flags override whatever the TOML file said
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "enhanced":
			cfg.Enhanced = *enhanced
		case "surfonly":
			cfg.SurfaceOnly = *surfonly
		case "weighted":
			cfg.Weighted = *weighted
		case "sampledsurf":
			cfg.SampledAreas = *sampledsurf
		case "extra":
			cfg.ExtraDist = *extra
		case "threads":
			cfg.Threads = *threads
		case "out":
			cfg.OutDir = *out
		case "gz":
			cfg.Compress = *compress
		case "maxmem":
			cfg.MemoryBudget = *maxmem << 20
		case "cutoffs":
			var vals []float64
			for _, s := range strings.Split(*cutoffs, ",") {
				if s = strings.TrimSpace(s); s != "" {
					vals = append(vals, scu.MustParseFloat(s))
				}
			}
			a, v, err := tinku.ParseCutoffs(vals)
			scu.QErr(err)
			cfg.AreaCutoff, cfg.VolumeCutoff = a, v
		}
	})
	if cfg.MemoryBudget == 0 {
		//leave a safety margin against what the system reports as free
		cfg.MemoryBudget = availableMemory() * 8 / 10
	}
	eng, err := tinku.NewEngine(cfg)
	scu.QErr(err)

	files := make(chan string, flag.NArg())
	results := make(chan outcome, flag.NArg())
	for i := 0; i < cfg.Threads; i++ {
		go worker(eng, cfg, files, results)
	}
	for _, file := range flag.Args() {
		files <- file
	}
	close(files)

	failed := 0
	for i := 0; i < flag.NArg(); i++ {
		o := <-results
		switch {
		case o.err != nil:
			fmt.Fprintf(os.Stderr, "%s failed: %v\n", o.file, o.err)
			failed++
		case o.res.Skipped:
			fmt.Fprintf(os.Stderr, "Skipping %s: %s\n", o.res.Name, o.res.SkipReason)
		default:
			fmt.Printf("The PDB %s ran OK, %d MODEL(s), time cost: %.3fs\n",
				o.res.Name, o.res.NModels, o.cost.Seconds())
		}
	}
	if failed == flag.NArg() {
		os.Exit(1)
	}
}
