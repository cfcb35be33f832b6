package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
)

func main() {
	log.SetFlags(0)
	var (
		configFile  = flag.String("config", "", "INI config file (default: advent2020.ini in the user config dir)")
		inputFile   = flag.String("f", "", "read puzzle input from this file instead of stdin")
		interactive = flag.Bool("i", false, "type puzzle input at a prompt (end with Ctrl-D)")
		verbose     = flag.Bool("v", false, "print diagnostics to stderr")
		profileFile = flag.String("fgprof", "", "write a wall-clock profile of the run to this file")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	name := flag.Arg(0)
	fn, ok := solutions[name]
	if !ok {
		log.Fatalf("unknown solution %q", name)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		cfg.verbose = true
	}
	debug = cfg.verbose

	src := inputSource{
		interactive: *interactive,
		file:        *inputFile,
		dir:         cfg.inputDir,
		day:         dayOf(name),
	}
	lines, err := src.readLines()
	if err != nil {
		log.Fatal(err)
	}

	var answer int64
	err = withProfile(*profileFile, func() error {
		var err error
		answer, err = fn(lines)
		return err
	})
	if err != nil {
		log.Fatalf("solution %s: %s", name, err)
	}
	fmt.Println(formatAnswer(answer, cfg.comma))
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] solution\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A solution turns the puzzle input lines into a single answer.
type solution func(lines []string) (int64, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// debug enables the stderr diagnostics some solutions print.
var debug bool

func debugf(format string, args ...interface{}) {
	if debug {
		log.Printf(format, args...)
	}
}

func formatAnswer(n int64, comma bool) string {
	if comma {
		return humanize.Comma(n)
	}
	return strconv.FormatInt(n, 10)
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

// dayOf returns the day number prefix of a solution name ("10" for "10b").
func dayOf(name string) int {
	n, _ := splitName(name)
	return n
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
