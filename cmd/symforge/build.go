package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"symforge/internal/host"
	"symforge/internal/manifest"
	"symforge/internal/objfile"
	"symforge/internal/snapshot"
	"symforge/internal/trace"
)

var (
	buildOutDir string
	buildJobs   int
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", ".", "directory for container snapshots")
	buildCmd.Flags().IntVarP(&buildJobs, "jobs", "j", 0, "parallel builds (0 = GOMAXPROCS)")
}

var buildCmd = &cobra.Command{
	Use:   "build <manifest.toml> [more manifests...]",
	Short: "Build containers from manifests and write snapshots",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		tracer, err := tracerFromFlags(cmd)
		if err != nil {
			return err
		}
		defer tracer.Close()

		for _, path := range args {
			if !manifest.Exists(path) {
				return fmt.Errorf("no manifest at %s", path)
			}
		}
		if err := os.MkdirAll(buildOutDir, 0o755); err != nil {
			return err
		}

		// One registry plays host for the whole invocation: every built
		// container is published to it, in completion order.
		registry := host.NewRegistry()

		jobs := buildJobs
		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}
		var g errgroup.Group
		g.SetLimit(min(jobs, len(args)))

		outputs := make([]string, len(args))
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				m, err := manifest.Load(path)
				if err != nil {
					return err
				}
				of, err := m.Build(objfile.BuildContext{
					Context: registry,
					Events:  registry,
					Tracer:  tracer,
				})
				if err != nil {
					return err
				}
				out := filepath.Join(buildOutDir, of.Name()+".mp")
				if err := snapshot.Write(out, snapshot.Capture(of)); err != nil {
					return err
				}
				outputs[i] = out
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if !quiet {
			for i, out := range outputs {
				of, _ := registry.Lookup(strings.TrimSuffix(filepath.Base(out), ".mp"))
				if of != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %d minimal, %d full -> %s\n",
						args[i], of.Minimal().Len(), of.Compunit().Len(), out)
				}
			}
		}
		return nil
	},
}

// tracerFromFlags builds a stderr tracer from the persistent --trace flag.
func tracerFromFlags(cmd *cobra.Command) (trace.Tracer, error) {
	value, _ := cmd.Flags().GetString("trace")
	level, err := trace.ParseLevel(value)
	if err != nil {
		return nil, err
	}
	if level == trace.LevelOff {
		return trace.Nop, nil
	}
	return trace.NewStream(cmd.ErrOrStderr(), level), nil
}
