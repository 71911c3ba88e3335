// Command anlz-dump lists the tags of ANLZ analysis files and the fields
// extracted from them. Useful to confirm what a given export actually holds.
//
// Usage:
//
//	anlz-dump [-v] [-version] ANLZ0000.DAT [ANLZ0000.EXT ...]
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/anlz"
)

func main() {
	verbose := flag.Bool("v", false, "log extraction diagnostics to stderr")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: anlz-dump [-v] [-version] <ANLZ0000.DAT|ANLZ0000.EXT>...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		info := anlz.GetVersionInfo()
		fmt.Printf("anlz-dump %s (commit %s, built %s, %s)\n", info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer func() { _ = log.Sync() }()

	reports, err := dumpAll(context.Background(), log, paths)
	for _, r := range reports {
		fmt.Print(r)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// dumpAll dumps every path concurrently and returns the reports in argument
// order. Reports of files that failed are left empty.
func dumpAll(ctx context.Context, log *zap.Logger, paths []string) ([]string, error) {
	reports := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := dumpFile(&buf, log, path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = buf.String()
			return nil
		})
	}

	return reports, g.Wait()
}
