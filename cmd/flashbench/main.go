// Command flashbench drives a set of fixed-shape timing tests —
// scatter, alignment, intervals, find-fat, open-au — against a raw
// block device, and can also run an interpreter program directly.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/flashbench-go/flashbench"
	"github.com/flashbench-go/flashbench/internal/constants"
	"github.com/flashbench-go/flashbench/internal/device"
	"github.com/flashbench-go/flashbench/internal/logging"
)

type config struct {
	outPath string

	scatter      bool
	scatterOrder int
	scatterSpan  int

	align bool

	interval      bool
	intervalOrder int

	findFAT bool
	fatNr   int

	openAU   bool
	openAUNr int

	offset  int64
	random  bool
	verbose bool
	cpu     int

	count     int
	blocksize int64
	erasesize int64
}

func parseFlags(args []string) (*config, string, error) {
	fs := flag.NewFlagSet("flashbench", flag.ContinueOnError)

	var blocksizeStr, erasesizeStr string
	cfg := &config{}

	fs.StringVar(&cfg.outPath, "out", "", "write output to FILE instead of stdout")
	fs.StringVar(&cfg.outPath, "o", "", "shorthand for --out")

	fs.BoolVar(&cfg.scatter, "scatter", false, "run the scatter test")
	fs.BoolVar(&cfg.scatter, "s", false, "shorthand for --scatter")
	fs.IntVar(&cfg.scatterOrder, "scatter-order", constants.DefaultScatterOrder, "log2 of the scatter sample count")
	fs.IntVar(&cfg.scatterSpan, "scatter-span", constants.DefaultScatterSpan, "blocks between scatter samples")

	fs.BoolVar(&cfg.align, "align", false, "run the alignment test")
	fs.BoolVar(&cfg.align, "a", false, "shorthand for --align")

	fs.BoolVar(&cfg.interval, "interval", false, "run the interval (geometric length) test")
	fs.BoolVar(&cfg.interval, "i", false, "shorthand for --interval")
	fs.IntVar(&cfg.intervalOrder, "interval-order", 4, "number of lengths in the interval test, each double the last")

	fs.BoolVar(&cfg.findFAT, "find-fat", false, "run the erase-block-size search")
	fs.BoolVar(&cfg.findFAT, "f", false, "shorthand for --find-fat")
	fs.IntVar(&cfg.fatNr, "fat-nr", constants.DefaultFATCandidates, "number of candidate erase-block sizes to probe")

	fs.BoolVar(&cfg.openAU, "open-au", false, "run the open-allocation-unit search")
	fs.BoolVar(&cfg.openAU, "O", false, "shorthand for --open-au")
	fs.IntVar(&cfg.openAUNr, "open-au-nr", constants.DefaultOpenAUCandidates, "maximum round-robin width to probe")

	fs.Int64Var(&cfg.offset, "offset", 0, "base offset into the device, in bytes")
	fs.BoolVar(&cfg.random, "random", false, "randomize scatter sample order")
	fs.BoolVar(&cfg.random, "r", false, "shorthand for --random")
	fs.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.verbose, "v", false, "shorthand for --verbose")
	fs.IntVar(&cfg.cpu, "cpu", -1, "pin the calling thread to this CPU before running, best effort (-1 disables)")

	fs.IntVar(&cfg.count, "count", constants.DefaultCount, "sample count for the alignment and open-au tests")
	fs.StringVar(&blocksizeStr, "blocksize", strconv.FormatInt(constants.DefaultBlockSize, 10), "transfer size for timed primitives, in bytes (suffixes K/M/G accepted)")
	fs.StringVar(&erasesizeStr, "erasesize", strconv.FormatInt(constants.DefaultEraseSize, 10), "erase-block size candidate ceiling, in bytes (suffixes K/M/G accepted)")

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}

	blocksize, err := parseSize(blocksizeStr)
	if err != nil {
		return nil, "", fmt.Errorf("--blocksize: %w", err)
	}
	erasesize, err := parseSize(erasesizeStr)
	if err != nil {
		return nil, "", fmt.Errorf("--erasesize: %w", err)
	}
	cfg.blocksize = blocksize
	cfg.erasesize = erasesize

	if fs.NArg() < 1 {
		return nil, "", fmt.Errorf("missing device path")
	}
	return cfg, fs.Arg(0), nil
}

func run(args []string) error {
	cfg, devPath, err := parseFlags(args)
	if err != nil {
		return err
	}

	logConfig := logging.DefaultConfig()
	if cfg.verbose {
		logConfig.Level = logging.LevelDebug
	}
	logger := logging.NewLogger(logConfig)
	logging.SetDefault(logger)

	if cfg.cpu >= 0 {
		if err := device.PinCPU(cfg.cpu); err != nil {
			logger.Warn("failed to pin CPU", "cpu", cfg.cpu, "error", err)
		}
	}

	out := os.Stdout
	if cfg.outPath != "" {
		f, err := os.Create(cfg.outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", cfg.outPath, err)
		}
		defer f.Close()
		out = f
	}

	metrics := flashbench.NewMetrics()
	dev, err := flashbench.Open(devPath, flashbench.Options{Metrics: metrics})
	if err != nil {
		return fmt.Errorf("opening %s: %w", devPath, err)
	}
	defer dev.Close()

	logger.Info("opened device", "path", devPath, "size", formatSize(dev.Size()), "blocksize", formatSize(cfg.blocksize))

	switch {
	case cfg.scatter:
		return runScatter(dev, out, cfg.offset, cfg.blocksize, cfg.scatterOrder, cfg.scatterSpan, cfg.random)
	case cfg.align:
		return runAlign(dev, out, cfg.offset, cfg.blocksize, cfg.count)
	case cfg.interval:
		return runIntervals(dev, out, cfg.offset, cfg.blocksize, cfg.intervalOrder)
	case cfg.findFAT:
		return runFindFAT(dev, out, cfg.offset, cfg.blocksize, cfg.erasesize, cfg.fatNr)
	case cfg.openAU:
		return runOpenAU(dev, out, cfg.offset, cfg.blocksize, cfg.erasesize, cfg.openAUNr, cfg.count)
	default:
		return fmt.Errorf("no test selected: pass one of --scatter, --align, --interval, --find-fat, --open-au")
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "flashbench: %v\n", err)
		os.Exit(1)
	}
}
