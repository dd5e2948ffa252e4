package check

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Result is the outcome of one line of a source
type Result struct {
	Source  string  `yaml:"source"`
	Line    int     `yaml:"line"`
	Text    string  `yaml:"text"`
	Outcome Outcome `yaml:"outcome"`
}

// Reporter defines the interface for structure that can display results and
// errors to the user. Results go to the output, errors go to a separate
// diagnostic stream.
type Reporter interface {
	Report(res Result) error
	Error(err error)
	HadError() bool
	Reset()
	Flush() error
}

// diagnostics writes errors as-is to the inner writer
type diagnostics struct {
	writer io.Writer
	hadErr bool
}

func (d *diagnostics) Error(err error) {
	d.hadErr = true
	fmt.Fprintln(d.writer, err)
}

func (d *diagnostics) HadError() bool {
	return d.hadErr
}

func (d *diagnostics) Reset() {
	d.hadErr = false
}

// TextReporter writes one sentence per result, as soon as it is reported
type TextReporter struct {
	diagnostics
	out io.Writer
}

func NewTextReporter(out, diag io.Writer) *TextReporter {
	return &TextReporter{diagnostics{diag, false}, out}
}

func (reporter *TextReporter) Report(res Result) error {
	_, err := fmt.Fprintln(reporter.out, res.Text+" "+res.Outcome.Message())
	return err
}

func (reporter *TextReporter) Flush() error {
	return nil
}

// YAMLReporter collects results and writes them as a single YAML sequence
// when flushed.
type YAMLReporter struct {
	diagnostics
	out     io.Writer
	results []Result
}

func NewYAMLReporter(out, diag io.Writer) *YAMLReporter {
	return &YAMLReporter{diagnostics{diag, false}, out, make([]Result, 0)}
}

func (reporter *YAMLReporter) Report(res Result) error {
	reporter.results = append(reporter.results, res)
	return nil
}

func (reporter *YAMLReporter) Flush() error {
	enc := yaml.NewEncoder(reporter.out)
	enc.SetIndent(2)
	if err := enc.Encode(reporter.results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	reporter.results = reporter.results[:0]
	return enc.Close()
}
