package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DeadSix27/dfind/app"
	"github.com/DeadSix27/dfind/models"
	"github.com/DeadSix27/dfind/ui"
)

func main() {
	cfg, err := app.LoadConfig(app.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "index":
		runIndex(cfg, args[1:])
	case "search":
		runSearchCmd(cfg, args[1:])
	case "top":
		runTop(cfg, args[1:])
	default:
		if strings.HasPrefix(args[0], "-") {
			usage()
			os.Exit(1)
		}
		// Bare text is shorthand for a default wildcard search.
		runSearch(cfg, strings.Join(args, " "), false, false, false)
	}
}

func runIndex(cfg *models.Config, args []string) {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	singleThreaded := fs.Bool("single-threaded", false, "index roots one after another instead of concurrently")
	fs.Parse(args)

	ix := app.NewIndexer(cfg)
	if err := ix.Run(*singleThreaded); err != nil {
		if errors.Is(err, app.ErrNoRootsConfigured) {
			fmt.Fprintln(os.Stderr, "There are no roots set to be indexed, please fix your config.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "indexing failed: %v\n", err)
		os.Exit(1)
	}
}

func runSearchCmd(cfg *models.Config, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	exact := fs.Bool("exact-match", false, "match the text verbatim instead of as a wildcard pattern")
	caseSensitive := fs.Bool("case-sensitive", false, "distinguish upper and lower case")
	withUI := fs.Bool("with-ui", false, "browse the results in an interactive table")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "search: missing search text")
		os.Exit(1)
	}
	runSearch(cfg, strings.Join(fs.Args(), " "), *exact, *caseSensitive, *withUI)
}

func runSearch(cfg *models.Config, text string, exact, caseSensitive, withUI bool) {
	searcher := app.NewSearcher(cfg)
	res, err := searcher.Search(text, exact, caseSensitive)
	if err != nil {
		if errors.Is(err, app.ErrNoIndex) {
			requireIndex()
		}
		fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		os.Exit(1)
	}

	if withUI {
		if res.Count == 0 {
			fmt.Println("No results.")
			fmt.Printf("Query: %s\n", res.Query)
			return
		}
		if err := ui.Show(res); err != nil {
			fmt.Fprintf(os.Stderr, "viewer failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if res.Count == 0 {
		fmt.Fprintf(os.Stderr, "Error: Found nothing for: %q, maybe try re-indexing via the command: dfind index\n", text)
		os.Exit(1)
	}

	printResults(os.Stdout, res)
}

// printResults writes one full path per line, nothing else, so the
// output can be piped into other tools.
func printResults(w io.Writer, res *models.SearchResult) {
	for _, item := range res.Items {
		fmt.Fprintln(w, item.FullPath)
	}
}

func runTop(cfg *models.Config, args []string) {
	fs := flag.NewFlagSet("top", flag.ExitOnError)
	kind := fs.String("type", "folders", "what to rank: files or folders")
	max := fs.Int("max", 10, "number of entries to show (1-100)")
	ascending := fs.Bool("ascending", false, "smallest first instead of largest first")
	fs.Parse(args)

	searcher := app.NewSearcher(cfg)
	entries, err := searcher.Top(*kind, *max, *ascending)
	if err != nil {
		if errors.Is(err, app.ErrNoIndex) {
			requireIndex()
		}
		fmt.Fprintf(os.Stderr, "top failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top %d %s:\n", *max, *kind)
	for i, e := range entries {
		fmt.Println(app.FormatTopEntry(i+1, e))
	}
}

func requireIndex() {
	fmt.Fprintln(os.Stderr, "No index database found, please create one using the command:")
	fmt.Fprintln(os.Stderr, "  dfind index")
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  dfind index [--single-threaded]
  dfind search <text> [--exact-match] [--case-sensitive] [--with-ui]
  dfind top [--type files|folders] [--max N] [--ascending]
  dfind <text>                         shorthand for a default search`)
}
