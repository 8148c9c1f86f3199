/*
 * main.go, part of goTPS.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//gotps samples transition paths of small model systems and archives
//them for analysis.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	chem "github.com/rmera/gotps"
	"github.com/rmera/gotps/config"
	"github.com/rmera/gotps/network"
	"github.com/rmera/gotps/pathstat"
	"github.com/rmera/gotps/shoot"
	"github.com/rmera/gotps/traj/ptf"
	"github.com/rmera/gotps/volume"
)

var (
	cfgPath   string
	force     bool
	bootTemp  float64
	bootTries int
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	root := &cobra.Command{
		Use:           "gotps",
		Short:         "transition path sampling for small model systems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "gotps.yaml", "run configuration file")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(cfgPath); err == nil && !force {
				return fmt.Errorf("%s exists, use --force to overwrite", cfgPath)
			}
			if err := config.Save(cfgPath, config.DefaultConfig()); err != nil {
				return err
			}
			log.Info().Str("file", cfgPath).Msg("wrote default configuration")
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	bootstrapCmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "generate an initial transition path by high-temperature dynamics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap(cmd.Context(), log)
		},
	}
	bootstrapCmd.Flags().Float64Var(&bootTemp, "temp-factor", 2.5, "temperature boost factor for the bootstrap dynamics")
	bootstrapCmd.Flags().IntVar(&bootTries, "tries", 20, "velocity redraws before giving up")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "check the initial paths against the configured network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(log)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the sampling and archive the accepted paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sample(cmd.Context(), log)
		},
	}

	root.AddCommand(initCmd, bootstrapCmd, checkCmd, runCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("gotps failed")
		os.Exit(1)
	}
}

//bootstrap runs dynamics at a boosted temperature from the model's
//reference conformation until another stable state is reached, trims the
//trajectory down to a proper transition path and archives it.
func bootstrap(ctx context.Context, log zerolog.Logger) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	r, err := buildRun(cfg)
	if err != nil {
		return err
	}
	//a hotter engine decorrelates much faster; the sampling itself then
	//relaxes the path to the target temperature
	hot, err := buildEngine(cfg, r.top, r.sys, cfg.Dynamics.Temperature*bootTemp)
	if err != nil {
		return err
	}
	start := chem.NewFrame(r.coords.Clone())
	s0 := r.net.InState(start)
	if s0 == nil {
		return fmt.Errorf("the reference conformation of %q lies in no configured state", cfg.System)
	}
	log.Info().Str("start", s0.Name()).Float64("temperature", hot.Temperature()).Msg("bootstrapping an initial path")
	stop := func(f *chem.Frame) bool {
		s := r.net.InState(f)
		return s != nil && s != s0
	}
	for try := 1; try <= bootTries; try++ {
		s := start.Copy()
		hot.MaxwellBoltzmann(s)
		seg, reached, err := hot.PropagateUntil(ctx, s, stop, cfg.Sampling.MaxLength*4, cfg.Sampling.Stride)
		if err != nil {
			return err
		}
		if !reached {
			log.Info().Int("try", try).Msg("no transition within the frame cap, redrawing velocities")
			continue
		}
		full := chem.NewPath(seg.Len() + 1)
		full.Append(start.Copy())
		full = full.Splice(seg)
		p := trimToTransition(full, r.net, s0)
		ens := r.net.Ensembles()[0]
		if p == nil || !ens.Contains(p) {
			log.Info().Int("try", try).Msg("trajectory did not trim to a valid path, redrawing velocities")
			continue
		}
		w, err := ptf.NewWriter(cfg.Files.InitialPath, r.top.Len(), map[string]string{"system": cfg.System})
		if err != nil {
			return err
		}
		defer w.Close()
		if err := w.WritePath(p, map[string]string{"origin": "bootstrap", "ensemble": ens.Name()}); err != nil {
			return err
		}
		log.Info().Int("frames", p.Len()).Str("file", cfg.Files.InitialPath).Msg("initial path archived")
		return nil
	}
	return fmt.Errorf("no transition found in %d tries; raise --temp-factor or max_length", bootTries)
}

//trimToTransition cuts a trajectory that starts inside s0 and ends at
//the first frame inside another state down to the segment between the
//last exit from s0 and that arrival.
func trimToTransition(p *chem.Path, net *network.Network, s0 volume.Volume) *chem.Path {
	last := -1
	for i := 0; i < p.Len()-1; i++ {
		if net.InState(p.Frame(i)) == s0 {
			last = i
		}
	}
	if last < 0 || p.Len()-last < 2 {
		return nil
	}
	return p.Slice(last, p.Len())
}

func check(log zerolog.Logger) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	r, err := buildRun(cfg)
	if err != nil {
		return err
	}
	if len(r.states) > 2 {
		log.Warn().Int("states", len(r.states)).Msg("only the first two states form the network")
	}
	reader, _, err := ptf.New(cfg.Files.InitialPath)
	if err != nil {
		return err
	}
	defer reader.Close()
	paths, _, err := reader.ReadAll()
	if err != nil {
		return err
	}
	for i, p := range paths {
		log.Info().Int("path", i).Int("frames", p.Len()).
			Str("first", stateOf(r.net, p.First())).
			Str("last", stateOf(r.net, p.Last())).
			Msg("endpoint classification")
	}
	asg := r.net.AssignInitial(paths...)
	fmt.Print(asg.Report())
	if !asg.OK() {
		return fmt.Errorf("initial conditions are inconsistent with the network")
	}
	log.Info().Msg("initial conditions are consistent")
	return nil
}

func sample(ctx context.Context, log zerolog.Logger) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	r, err := buildRun(cfg)
	if err != nil {
		return err
	}
	reader, _, err := ptf.New(cfg.Files.InitialPath)
	if err != nil {
		return err
	}
	initial, _, err := reader.ReadAll()
	reader.Close()
	if err != nil {
		return err
	}

	writer, err := ptf.NewWriter(cfg.Files.Archive, r.top.Len(), map[string]string{"system": cfg.System})
	if err != nil {
		return err
	}
	defer writer.Close()

	mover := shoot.NewOneWayShooter(r.eng, r.net, cfg.Sampling.MaxLength, cfg.Sampling.Stride)
	scheme := shoot.NewScheme()
	scheme.Add(mover, 1)
	sampler, err := shoot.NewSampler(scheme, r.net, writer, cfg.Sampling.Seed)
	if err != nil {
		return err
	}
	asg, err := sampler.Init(initial...)
	if err != nil {
		fmt.Print(asg.Report())
		return err
	}
	sampler.OnStep = func(step int, res *shoot.Result) {
		if step%100 == 0 {
			log.Info().Int("step", step).Bool("accepted", res.Accepted).Msg("sampling")
		}
	}

	log.Info().Int("steps", cfg.Sampling.Steps).Float64("temperature", cfg.Dynamics.Temperature).Msg("sampling started")
	started := time.Now()
	stats, err := sampler.Run(ctx, cfg.Sampling.Steps)
	if err != nil {
		return err
	}
	writer.Close()
	log.Info().Dur("elapsed", time.Since(started)).Int("archived", writer.Paths()).Msg("sampling finished")

	summary := pathstat.Summarize(stats.AcceptTrace, stats.Lengths)
	fmt.Printf("\nAttempted %d moves, accepted %d (%.1f%%), mean path length %.1f +- %.1f frames\n\n",
		summary.Attempted, summary.Accepted, 100*summary.Acceptance, summary.MeanLength, summary.StdLength)
	if len(stats.AcceptTrace) > 1 {
		fmt.Println(asciigraph.Plot(pathstat.RunningMean(stats.AcceptTrace, 25),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("running acceptance"),
		))
		fmt.Println()
	}
	if len(stats.Lengths) > 1 {
		fmt.Println(asciigraph.Plot(stats.Lengths,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("path length per step"),
		))
		fmt.Println()
	}
	return plots(cfg, r, log)
}

//plots writes the configured PNG diagnostics from the archived paths.
func plots(cfg *config.Config, r *run, log zerolog.Logger) error {
	if cfg.Files.DensityPlot == "" && cfg.Files.LengthPlot == "" {
		return nil
	}
	reader, _, err := ptf.New(cfg.Files.Archive)
	if err != nil {
		return err
	}
	defer reader.Close()
	paths, _, err := reader.ReadAll()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Warn().Msg("no accepted paths archived, skipping plots")
		return nil
	}
	if cfg.Files.DensityPlot != "" {
		if len(r.cvs) < 2 {
			log.Warn().Msg("a density plot needs two CVs, skipping")
		} else {
			if err := pathstat.DensityPlot(cfg.Files.DensityPlot, cfg.System, paths, r.cvs[0], r.cvs[1]); err != nil {
				return err
			}
			log.Info().Str("file", cfg.Files.DensityPlot).Msg("density plot written")
		}
	}
	if cfg.Files.LengthPlot != "" {
		lengths := make([]float64, len(paths))
		for i, p := range paths {
			lengths[i] = float64(p.Len())
		}
		if err := pathstat.LengthPlot(cfg.Files.LengthPlot, lengths); err != nil {
			return err
		}
		log.Info().Str("file", cfg.Files.LengthPlot).Msg("length plot written")
	}
	return nil
}
