package check

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// StdinSource is the source name that stands for the standard input
const StdinSource = "-"

// maxLineSize is the longest line the checker accepts
const maxLineSize = 1024 * 1024

// Stats counts the lines checked per outcome
type Stats struct {
	Valid             int
	InvalidExpression int
	InvalidLetter     int
}

func (s *Stats) add(o Outcome) {
	switch o {
	case Valid:
		s.Valid++
	case InvalidExpression:
		s.InvalidExpression++
	case InvalidLetter:
		s.InvalidLetter++
	}
}

// Total returns the number of lines checked
func (s Stats) Total() int {
	return s.Valid + s.InvalidExpression + s.InvalidLetter
}

// Checker reads lines from sources and reports the outcome of each one
type Checker struct {
	reporter Reporter
	logger   zerolog.Logger
	stdin    io.Reader
	stats    Stats
}

// Option configures a Checker
type Option func(*Checker)

// WithStdin sets the reader used for the "-" source
func WithStdin(r io.Reader) Option {
	return func(c *Checker) {
		c.stdin = r
	}
}

// WithLogger sets the logger that traces sources and the summary of a run
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker creates a checker that sends its results to the given reporter
func NewChecker(reporter Reporter, opts ...Option) *Checker {
	c := &Checker{
		reporter: reporter,
		logger:   zerolog.Nop(),
		stdin:    os.Stdin,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stats returns the counts accumulated since the checker was created
func (c *Checker) Stats() Stats {
	return c.stats
}

// CheckReader checks every line of r, in order. Errors from reading r are
// reported and returned as a *SourceError; errors from the reporter are
// returned as-is.
func (c *Checker) CheckReader(name string, r io.Reader) error {
	c.logger.Debug().Str("source", name).Msg("checking source")

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s.Split(bufio.ScanLines)

	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		res := Result{Source: name, Line: line, Text: text, Outcome: CheckLine(text)}
		c.stats.add(res.Outcome)
		if err := c.reporter.Report(res); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		err = NewSourceError(name, "read", err)
		c.reporter.Error(err)
		return err
	}

	c.logger.Debug().Str("source", name).Int("lines", line).Msg("source checked")
	return nil
}

// CheckFile checks every line of the file at path. A file that cannot be
// opened is reported, and none of its lines are checked.
func (c *Checker) CheckFile(path string) error {
	if path == StdinSource {
		return c.CheckReader(StdinSource, c.stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		err = NewSourceError(path, "open", err)
		c.reporter.Error(err)
		return err
	}
	defer f.Close()

	return c.CheckReader(path, f)
}

// CheckSources checks every source in order, the standard input when none is
// given. A source that fails does not stop the ones after it; the failures are
// returned joined together, along with a failing flush. A reporter that fails
// to write a result stops the run.
func (c *Checker) CheckSources(paths []string) error {
	if len(paths) == 0 {
		paths = []string{StdinSource}
	}

	var errs []error
	for _, path := range paths {
		err := c.CheckFile(path)
		if err == nil {
			continue
		}
		var srcErr *SourceError
		if !errors.As(err, &srcErr) {
			return err
		}
		c.logger.Info().Str("source", path).AnErr("cause", srcErr.Err).Msg("skipping source")
		errs = append(errs, err)
	}

	if err := c.reporter.Flush(); err != nil {
		return errors.Join(append(errs, err)...)
	}
	c.logger.Info().
		Int("sources", len(paths)).
		Int("lines", c.stats.Total()).
		Int("valid", c.stats.Valid).
		Int("invalid_expression", c.stats.InvalidExpression).
		Int("invalid_letter", c.stats.InvalidLetter).
		Msg("check finished")
	return errors.Join(errs...)
}
