// Command memgrep prints the lines of files that contain any of the given
// patterns. Files are memory mapped where the platform allows it.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jeschkies/go-strstr/pkg/search"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

type config struct {
	patterns []string
	kernel   string
	count    bool
	logLevel string
	files    []string
}

func (c *config) registerFlags(app *kingpin.Application) {
	app.Flag("pattern", "Pattern to search for. Repeat to match lines containing any of them.").
		Short('e').Required().StringsVar(&c.patterns)
	app.Flag("kernel", "Search kernel to use.").
		Default("auto").Envar("MEMGREP_KERNEL").EnumVar(&c.kernel, "auto", "packed", "generic")
	app.Flag("count", "Only print the number of matching lines per file.").
		Short('c').BoolVar(&c.count)
	app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").Envar("MEMGREP_LOG_LEVEL").EnumVar(&c.logLevel, "debug", "info", "warn", "error")
	app.Arg("file", "Files to search.").Required().StringsVar(&c.files)
}

func main() {
	var cfg config
	app := kingpin.New("memgrep", "Print lines of files that contain any of the given patterns.")
	cfg.registerFlags(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		logger.WithError(err).Fatal("invalid log level")
	}
	logger.SetLevel(level)

	os.Exit(run(&cfg, os.Stdout, logger))
}

// run greps every file of cfg and returns the exit status.
func run(cfg *config, out io.Writer, logger logrus.FieldLogger) int {
	kernel, err := search.ParseKernel(cfg.kernel)
	if err != nil {
		logger.WithError(err).Error("invalid kernel")
		return exitError
	}

	matcher, err := newLineMatcher(cfg.patterns, kernel)
	if err != nil {
		logger.WithError(err).Error("invalid patterns")
		return exitError
	}
	logger.WithFields(logrus.Fields{
		"patterns": len(cfg.patterns),
		"kernel":   kernel,
	}).Debug("searching")

	w := bufio.NewWriter(out)

	status := exitNoMatch
	failed := false
	for _, path := range cfg.files {
		n, err := grepFile(w, path, matcher, cfg.count)
		var oerr outputError
		if errors.As(err, &oerr) {
			logger.WithError(err).Error("cannot write output")
			return exitError
		}
		if err != nil {
			logger.WithError(err).WithField("file", path).Error("cannot search file")
			failed = true
			continue
		}
		logger.WithFields(logrus.Fields{"file": path, "matches": n}).Debug("searched file")
		if n > 0 {
			status = exitMatch
		}
	}

	if err := w.Flush(); err != nil {
		logger.WithError(errors.Wrap(err, "failed to write output")).Error("cannot write output")
		return exitError
	}
	if failed {
		return exitError
	}
	return status
}

// outputError is a failure to write results. It ends the run.
type outputError struct {
	err error
}

func (e outputError) Error() string { return "failed to write output: " + e.err.Error() }

func (e outputError) Unwrap() error { return e.err }

// grepFile writes the matching lines of the file at path to w and returns
// how many there were.
func grepFile(w io.Writer, path string, m lineMatcher, count bool) (int, error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return 0, err
	}
	defer unmap() //nolint:errcheck

	matches := 0
	lineNo := 0
	var werr error
	eachLine(data, func(line []byte) {
		lineNo++
		if !m.Match(line) {
			return
		}
		matches++
		if !count && werr == nil {
			_, werr = fmt.Fprintf(w, "%s:%d:%s\n", path, lineNo, line)
		}
	})

	if count && werr == nil {
		_, werr = fmt.Fprintf(w, "%s:%d\n", path, matches)
	}
	if werr != nil {
		return matches, outputError{werr}
	}
	return matches, nil
}
