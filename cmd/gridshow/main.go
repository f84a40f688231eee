// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/matrix"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errConn signals a -conn value other than 4 or 8.
var errConn = errors.New("gridshow: -conn must be 4 or 8")

// config holds the parsed command line.
type config struct {
	grid    string
	rows    int
	cols    int
	fill    int
	islands bool
	conn    int
	trace   string
}

func main() {
	initDisplay()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// parseFlags reads args into a config. Flag errors are reported on stderr.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridshow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.grid, "grid", "", "grid literal, rows separated by ';', cells by ','")
	fs.IntVar(&cfg.rows, "rows", 3, "row count when -grid is not given")
	fs.IntVar(&cfg.cols, "cols", 3, "column count when -grid is not given")
	fs.IntVar(&cfg.fill, "fill", 0, "cell value when -grid is not given")
	fs.BoolVar(&cfg.islands, "islands", false, "label islands of land cells (value ≥ 1)")
	fs.IntVar(&cfg.conn, "conn", 4, "island connectivity [4|8]")
	fs.StringVar(&cfg.trace, "trace", "Error", "Trace level [Debug|Info|Error]")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.conn != 4 && cfg.conn != 8 {
		fmt.Fprintln(stderr, errConn)
		return cfg, errConn
	}

	return cfg, nil
}

// run executes gridshow and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetOutput(stderr)
	tracer().SetTraceLevel(tracing.TraceLevelFromString(cfg.trace))
	tracer().Infof("Trace level is %s", cfg.trace)

	if err := show(cfg, stdout); err != nil {
		pterm.Error.WithWriter(stderr).Println(err)
		return exitError
	}

	return exitOK
}

// show builds the grid described by cfg and writes its report to w.
func show(cfg config, w io.Writer) error {
	m, err := buildMatrix(cfg)
	if err != nil {
		return err
	}
	tracer().Debugf("grid:\n%s", m)

	if err := renderTable(w, tableData(m, cellText)); err != nil {
		return err
	}
	rows, cols := m.Shape()
	pterm.Info.WithWriter(w).Printfln("shape %dx%d, %d cells", rows, cols, m.Len())
	fp, err := m.Fingerprint()
	if err != nil {
		return err
	}
	pterm.Info.WithWriter(w).Printfln("fingerprint %s", fp)

	if !cfg.islands {
		return nil
	}
	opts := gridgraph.DefaultGridOptions()
	if cfg.conn == 8 {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.FromMatrix(m, opts)
	if err != nil {
		return err
	}
	labels, err := gg.Labels()
	if err != nil {
		return err
	}
	pterm.Info.WithWriter(w).Printfln("%d islands (conn %s)", len(gg.ConnectedComponents()), opts.Conn)

	return renderTable(w, tableData(labels, labelText))
}

// buildMatrix creates the matrix from -grid, or from -rows/-cols/-fill.
func buildMatrix(cfg config) (*matrix.Matrix[int], error) {
	if cfg.grid == "" {
		return matrix.Filled(cfg.rows, cfg.cols, cfg.fill)
	}
	rows, err := parseGrid(cfg.grid)
	if err != nil {
		return nil, err
	}

	return matrix.FromRows(rows)
}

// renderTable writes data as a pterm table with a header row.
func renderTable(w io.Writer, data [][]string) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)

	return err
}
