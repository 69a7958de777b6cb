// ffiprobe CLI — drive the boundary probes from a shell.
//
// Subcommands:
//
//	list                 Enumerate registered probes with signatures and docs.
//	call NAME [ARG...]   Invoke one probe. @name passes another probe as a
//	                     callback argument.
//	bench                Compare timedIncrementLoop against a native loop.
//	repl                 Interactive probe shell.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ffiprobe "github.com/daios-ai/ffiprobe"
)

const appName = "ffiprobe"

func main() {
	root := &cobra.Command{
		Use:           appName,
		Short:         "FFI boundary probe fixtures",
		Version:       ffiprobe.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"emit probe observability output (callback addresses, first results)")

	newHarness := func() *ffiprobe.Harness {
		h := ffiprobe.New()
		if verbose {
			lg := logrus.New()
			lg.SetLevel(logrus.DebugLevel)
			h.SetLogger(lg)
		}
		return h
	}

	root.AddCommand(listCmd(newHarness))
	root.AddCommand(callCmd(newHarness))
	root.AddCommand(benchCmd(newHarness))
	root.AddCommand(replCmd(newHarness))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func listCmd(newHarness func() *ffiprobe.Harness) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Enumerate registered probes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, m := range newHarness().Probes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s(%s) -> %s\n",
					m.Name, formatParams(m.Params), m.Ret)
				if m.Doc != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n",
						strings.SplitN(m.Doc, "\n", 2)[0])
				}
			}
			return nil
		},
	}
}

func callCmd(newHarness func() *ffiprobe.Harness) *cobra.Command {
	return &cobra.Command{
		Use:   "call NAME [ARG...]",
		Short: "Invoke one probe",
		Long: `Invoke one probe with literal arguments.

Arguments parse as Int, then Num; @name passes the named probe as a callback
argument, e.g.:

	ffiprobe call invokeTwice @invokeBinary`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := newHarness()
			v, err := evalLine(h, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
}

func benchCmd(newHarness func() *ffiprobe.Harness) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Compare boundary-crossing cost against a native loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := newHarness()
			v, err := h.Call("timedIncrementLoop")
			if err != nil {
				return err
			}
			boundary := v.Data.(float64)

			// Same shape, no boundary: a plain accumulator loop.
			start := time.Now()
			var acc int64
			for i := 0; i < 1_000_000; i++ {
				acc++
			}
			native := time.Since(start).Seconds()
			_ = acc

			fmt.Fprintf(cmd.OutOrStdout(), "boundary loop: %.6fs\n", boundary)
			fmt.Fprintf(cmd.OutOrStdout(), "native loop:   %.6fs\n", native)
			return nil
		},
	}
}

// evalLine turns ["name", "arg"...] into a probe invocation.
func evalLine(h *ffiprobe.Harness, fields []string) (ffiprobe.Value, error) {
	name := fields[0]
	args := make([]ffiprobe.Value, 0, len(fields)-1)
	for _, raw := range fields[1:] {
		v, err := parseArg(h, raw)
		if err != nil {
			return ffiprobe.Null, err
		}
		args = append(args, v)
	}
	return h.Call(name, args...)
}

func parseArg(h *ffiprobe.Harness, raw string) (ffiprobe.Value, error) {
	if strings.HasPrefix(raw, "@") {
		return h.ProbeFun(strings.TrimPrefix(raw, "@"))
	}
	if raw == "null" {
		return ffiprobe.Null, nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ffiprobe.Int(n), nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return ffiprobe.Num(f), nil
	}
	return ffiprobe.Null, fmt.Errorf("cannot parse argument %q (want Int, Num, null, or @probe)", raw)
}

func formatParams(ps []ffiprobe.ParamSpec) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Name + ": " + p.Type
	}
	return strings.Join(parts, ", ")
}
