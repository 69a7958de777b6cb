package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	ffiprobe "github.com/daios-ai/ffiprobe"
)

const (
	historyFile = ".ffiprobe_history"
	prompt      = "ffi> "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func replCmd(newHarness func() *ffiprobe.Harness) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive probe shell",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			runRepl(newHarness())
			return nil
		},
	}
}

func runRepl(h *ffiprobe.Harness) {
	fmt.Printf("ffiprobe %s probe shell\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit, :list for probes.\n",
		ffiprobe.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// Complete probe names at the start of the line.
	ln.SetCompleter(func(line string) (out []string) {
		for _, m := range h.Probes() {
			if strings.HasPrefix(m.Name, line) {
				out = append(out, m.Name)
			}
		}
		return out
	})

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			continue
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return
			case ":list":
				for _, m := range h.Probes() {
					fmt.Printf("%s(%s) -> %s\n", m.Name, formatParams(m.Params), m.Ret)
				}
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		v, err := evalLine(h, strings.Fields(code))
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(blue(v.String()))
		ln.AppendHistory(code)
	}
}
