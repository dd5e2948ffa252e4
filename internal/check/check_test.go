package check

type mockReporter struct {
	results []Result
	errors  []error
	hadErr   bool
	flushed  int
	flushErr error
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]Result, 0), make([]error, 0), false, 0, nil}
}

func (reporter *mockReporter) Report(res Result) error {
	reporter.results = append(reporter.results, res)
	return nil
}

func (reporter *mockReporter) Error(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) Flush() error {
	reporter.flushed++
	return reporter.flushErr
}

func (reporter *mockReporter) outcomes() []Outcome {
	outcomes := make([]Outcome, 0, len(reporter.results))
	for _, res := range reporter.results {
		outcomes = append(outcomes, res.Outcome)
	}
	return outcomes
}
