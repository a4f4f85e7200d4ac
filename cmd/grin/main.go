// Command grin compresses and decompresses .grin files.
//
//     grin [-v] encode <infile> <outfile>
//     grin [-v] decode <infile> <outfile>
//
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chronos-tachyon/grin"
)

const usage = "Usage: grin [-v] <encode|decode> <infile> <outfile>"

var verbose = flag.Bool("v", false, "log statistics about the operation")

func main() {
	log.SetFlags(0)
	log.SetPrefix("grin: ")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	verb, inPath, outPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	var op func(string, string) (grin.Stats, error)
	switch verb {
	case "encode":
		op = grin.EncodeFile
	case "decode":
		op = grin.DecodeFile
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown operation %q\n", verb)
		flag.Usage()
		os.Exit(2)
	}

	stats, err := op(inPath, outPath)
	if err != nil {
		log.Fatalf("%s %s: %v", verb, inPath, err)
	}

	if *verbose {
		log.Printf("%s %s -> %s: %d bytes in, %d bytes out (%.1f%%), %d symbols, %d-bit tree",
			verb, inPath, outPath,
			stats.InputBytes, stats.OutputBytes, 100*stats.Ratio(),
			stats.Symbols, stats.TreeBits)
	}
}
