// Package timer measures how long code takes to run.
//
// A Timer keeps a single start mark for ad-hoc Start/Stop measurements and can
// time a function over several iterations, writing a line per iteration to
// either its log file (once one has been created) or the writer it was
// constructed with. The wall clock is injected so tests can drive time
// explicitly.
package timer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/basekit/internal/errors"
	"github.com/conneroisu/basekit/internal/logging"
)

// Unit is a time unit expressed as ticks per second.
type Unit int64

const (
	Seconds      Unit = 1
	Milliseconds Unit = 1_000
	Microseconds Unit = 1_000_000
	Nanoseconds  Unit = 1_000_000_000
)

// String returns the unit suffix used in reports.
func (u Unit) String() string {
	switch u {
	case Seconds:
		return "s"
	case Milliseconds:
		return "ms"
	case Microseconds:
		return "us"
	case Nanoseconds:
		return "ns"
	default:
		return "unknown"
	}
}

// Convert expresses d as a fractional count of u.
func (u Unit) Convert(d time.Duration) float64 {
	return float64(d) * float64(u) / float64(time.Second)
}

// ParseUnit accepts either the suffix ("ms") or the long name
// ("milliseconds").
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sec", "second", "seconds":
		return Seconds, nil
	case "ms", "millisecond", "milliseconds":
		return Milliseconds, nil
	case "us", "µs", "microsecond", "microseconds":
		return Microseconds, nil
	case "ns", "nanosecond", "nanoseconds":
		return Nanoseconds, nil
	default:
		return 0, errors.NewValidationError(errors.ErrCodeInvalidArg,
			fmt.Sprintf("unknown time unit %q (expected s, ms, us or ns)", s))
	}
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Timer times code execution. It is not safe for concurrent use.
type Timer struct {
	clock  Clock
	out    io.Writer
	logger logging.Logger

	logOnce sync.Once
	logFile *os.File
	logErr  error

	start time.Time
	unit  Unit
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(t *Timer) { t.clock = c }
}

// WithOutput sets where reports go when no log file has been created.
func WithOutput(w io.Writer) Option {
	return func(t *Timer) { t.out = w }
}

// WithLogger attaches a structured logger.
func WithLogger(l logging.Logger) Option {
	return func(t *Timer) { t.logger = l.WithComponent("timer") }
}

// New creates a Timer whose start mark is the current time.
func New(opts ...Option) *Timer {
	t := &Timer{
		clock:  systemClock{},
		out:    os.Stdout,
		logger: logging.NewNop(),
		unit:   Seconds,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.start = t.clock.Now()

	return t
}

// Start resets the start mark.
func (t *Timer) Start() {
	t.start = t.clock.Now()
}

// Stop returns the time elapsed since Start in unit and remembers the unit.
func (t *Timer) Stop(unit Unit) float64 {
	t.unit = unit
	return unit.Convert(t.clock.Now().Sub(t.start))
}

// Unit returns the unit passed to the most recent Stop.
func (t *Timer) Unit() Unit {
	return t.unit
}

// CreateLogFile opens path for appending and routes later reports to it.
// Only the first call opens a file; subsequent calls return the first
// call's result.
func (t *Timer) CreateLogFile(path string) error {
	t.logOnce.Do(func() {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			t.logErr = errors.NewIOError(errors.ErrCodeLogFile, "failed to open timer log file", err).
				WithContext("path", path)
			return
		}
		t.logFile = f
	})

	return t.logErr
}

// Close closes the log file if one is open.
func (t *Timer) Close() error {
	if t.logFile == nil {
		return nil
	}
	err := t.logFile.Close()
	t.logFile = nil

	return err
}

func (t *Timer) output() io.Writer {
	if t.logFile != nil {
		return t.logFile
	}

	return t.out
}

// Report is the result of TimeFunction.
type Report struct {
	RunID      string    `yaml:"run_id" json:"run_id"`
	Identifier string    `yaml:"identifier" json:"identifier"`
	Unit       string    `yaml:"unit" json:"unit"`
	Iterations []float64 `yaml:"iterations" json:"iterations"`
	Average    float64   `yaml:"average" json:"average"`
}

// YAML renders the report as a YAML document.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// TimeFunction runs fn iterations times, timing each run in unit. Each
// iteration is written as it completes; an average follows when more than one
// iteration ran.
func (t *Timer) TimeFunction(identifier string, iterations int, unit Unit, fn func()) (*Report, error) {
	if iterations < 0 {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidArg,
			fmt.Sprintf("iterations must not be negative, got %d", iterations))
	}
	if fn == nil {
		return nil, errors.NewValidationError(errors.ErrCodeNilPredicate, "nothing to time")
	}

	out := t.output()
	report := &Report{
		RunID:      uuid.NewString(),
		Identifier: identifier,
		Unit:       unit.String(),
		Iterations: make([]float64, 0, iterations),
	}

	if _, err := fmt.Fprintf(out, "Timing function: %s\n", identifier); err != nil {
		return nil, writeError(err)
	}

	var total float64
	for i := 0; i < iterations; i++ {
		begin := t.clock.Now()
		fn()
		elapsed := unit.Convert(t.clock.Now().Sub(begin))

		total += elapsed
		report.Iterations = append(report.Iterations, elapsed)

		if _, err := fmt.Fprintf(out, "\tIteration %d: %v%s\n", i+1, elapsed, unit); err != nil {
			return nil, writeError(err)
		}
	}

	if iterations > 0 {
		report.Average = total / float64(iterations)
	}

	if iterations > 1 {
		if _, err := fmt.Fprintf(out, "\tAverage: %v%s\n", report.Average, unit); err != nil {
			return nil, writeError(err)
		}
	}

	t.logger.Debug(context.Background(), "Timed function",
		"identifier", identifier,
		"iterations", iterations,
		"average", report.Average,
		"unit", unit.String(),
		"run_id", report.RunID)

	return report, nil
}

func writeError(err error) error {
	return errors.NewIOError(errors.ErrCodeLogFile, "failed to write timing report", err)
}
