package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lookbusy1344/word24asm/assemble"
	"github.com/lookbusy1344/word24asm/config"
	"github.com/lookbusy1344/word24asm/objfile"
	"github.com/lookbusy1344/word24asm/parser"
	"github.com/lookbusy1344/word24asm/preprocess"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to a TOML configuration file overriding defaults")
		verboseMode = flag.Bool("verbose", false, "Print each file's entry symbols after a successful assembly")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s file1 [file2 ...]\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	exitCode := 0
	for _, base := range args {
		if !assembleFile(base, cfg, *verboseMode) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// assembleFile runs the full pipeline -- preprocess, pass one, pass two,
// emit -- over a single base name, per spec.md §5's per-file
// independence (a fresh Context and macro table for every file). It
// reports all accumulated diagnostics to stderr and returns false if
// the file produced any, in which case no ".ob"/".ext"/".ent" is
// written (spec.md §7).
func assembleFile(base string, cfg *config.Config, verbose bool) bool {
	srcPath := base + ".as"
	source, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", srcPath, err)
		return false
	}

	macros := parser.NewMacroTable()
	pre := preprocess.Run(string(source), srcPath, macros, cfg)
	if !reportErrors(pre.Errors) {
		return false
	}

	if err := os.WriteFile(base+".am", []byte(pre.Output), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write %s.am: %v\n", base, err)
		return false
	}

	ctx := assemble.NewContext(cfg)
	ctx.Macros = macros
	assemble.RunPass1(pre.Output, base+".am", ctx)
	assemble.RunPass2(ctx)
	if !reportErrors(ctx.Errors) {
		return false
	}

	if verbose {
		for _, sym := range ctx.Symbols.EntrySymbols() {
			fmt.Fprintf(os.Stderr, "%s: %s\n", base, sym)
		}
	}

	return writeOutputs(base, ctx)
}

// reportErrors prints every accumulated diagnostic and returns false if
// the file contains any error (warnings alone do not invalidate it).
func reportErrors(errs *parser.ErrorList) bool {
	for _, w := range errs.Warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	for _, e := range errs.Errors {
		fmt.Fprintf(os.Stderr, "%s\n", e)
	}
	return !errs.HasErrors()
}

func writeOutputs(base string, ctx *assemble.Context) bool {
	obFile, err := os.Create(base + ".ob")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %s.ob: %v\n", base, err)
		return false
	}
	defer obFile.Close()
	if err := objfile.WriteObject(obFile, ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s.ob: %v\n", base, err)
		return false
	}

	if err := writeIfNonEmpty(base+".ext", func(w *os.File) (bool, error) {
		return objfile.WriteExternals(w, ctx)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s.ext: %v\n", base, err)
		return false
	}

	if err := writeIfNonEmpty(base+".ent", func(w *os.File) (bool, error) {
		return objfile.WriteEntries(w, ctx)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s.ent: %v\n", base, err)
		return false
	}

	return true
}

// writeIfNonEmpty creates path, invokes write, and removes the file
// again if write reports nothing was emitted -- spec.md §6 requires
// ".ext"/".ent" to exist only when the file has content for them.
func writeIfNonEmpty(path string, write func(*os.File) (bool, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	wrote, writeErr := write(f)
	closeErr := f.Close()
	if writeErr != nil {
		os.Remove(path)
		return writeErr
	}
	if closeErr != nil {
		return closeErr
	}
	if !wrote {
		return os.Remove(path)
	}
	return nil
}
