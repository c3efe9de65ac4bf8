// Package input reads validated values from a line-oriented text stream such
// as a terminal.
//
// Every extraction is a retry loop: the prompt is written, a token (or a whole
// line) is read and checked, and on any recoverable failure the error text is
// written and the user is asked again. A caller therefore never sees an
// invalid value. The loop ends only on success, on context cancellation
// between attempts, or when the stream is exhausted, which is reported as
// ErrStreamClosed.
//
// Tokens are whitespace-delimited and leading blank lines are skipped, so an
// empty Enter press simply waits for more input. After every attempt the
// remainder of the current line is consumed, leaving the stream at the start
// of the next line.
package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/conneroisu/basekit/internal/errors"
	"github.com/conneroisu/basekit/internal/logging"
)

const (
	// DefaultPrompt is written before each attempt unless overridden.
	DefaultPrompt = "Please enter a value: "
	// DefaultErrorMessage is written after a malformed attempt.
	DefaultErrorMessage = "Invalid input. Please try again."
)

var (
	// ErrStreamClosed is returned once the input stream can supply no more
	// data. It also matches io.EOF under errors.Is.
	ErrStreamClosed = errors.NewIOError(errors.ErrCodeStreamClosed, "input stream closed", io.EOF)

	// ErrEmptyRange is returned by Between when no value can satisfy the bounds.
	ErrEmptyRange = errors.NewValidationError(errors.ErrCodeEmptyRange, "range is empty")

	// ErrNoChoices is returned by OneOf when given an empty choice list.
	ErrNoChoices = errors.NewValidationError(errors.ErrCodeNoChoices, "no choices to select from")

	// ErrNilPredicate is returned when a required function argument is nil.
	ErrNilPredicate = errors.NewValidationError(errors.ErrCodeNilPredicate, "predicate is nil")
)

// Reader extracts validated values from an input stream and writes prompts
// and feedback to an output sink. A Reader must not be used from more than
// one goroutine at a time.
type Reader struct {
	in       *bufio.Reader
	out      io.Writer
	logger   logging.Logger
	defaults Options
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithLogger attaches a structured logger; failed attempts are logged at
// debug level.
func WithLogger(l logging.Logger) ReaderOption {
	return func(r *Reader) { r.logger = l.WithComponent("input") }
}

// WithDefaults changes the options every call starts from.
func WithDefaults(opts ...Option) ReaderOption {
	return func(r *Reader) {
		for _, opt := range opts {
			opt(&r.defaults)
		}
	}
}

// NewReader creates a Reader over in that writes prompts to out. If in is
// already a *bufio.Reader it is used directly so that buffered data is shared
// with the caller.
func NewReader(in io.Reader, out io.Writer, opts ...ReaderOption) *Reader {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	if out == nil {
		out = io.Discard
	}

	r := &Reader{
		in:       br,
		out:      out,
		logger:   logging.NewNop(),
		defaults: DefaultOptions(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Options holds the per-call prompt/error message pair and flags.
type Options struct {
	// Prompt is written before reading. Empty means no prompt.
	Prompt string
	// ErrorMessage is written, followed by a newline, after a malformed
	// attempt. Empty means no message.
	ErrorMessage string
	// Strict rejects input with further non-blank content on the same line.
	Strict bool
	// PromptShown suppresses the prompt on the first attempt.
	PromptShown bool
}

// DefaultOptions returns the options a fresh Reader uses.
func DefaultOptions() Options {
	return Options{
		Prompt:       DefaultPrompt,
		ErrorMessage: DefaultErrorMessage,
		Strict:       true,
	}
}

// Option adjusts Options for a single call.
type Option func(*Options)

// WithPrompt sets the prompt text.
func WithPrompt(prompt string) Option {
	return func(o *Options) { o.Prompt = prompt }
}

// WithErrorMessage sets the text shown after a malformed attempt.
func WithErrorMessage(msg string) Option {
	return func(o *Options) { o.ErrorMessage = msg }
}

// WithStrict toggles trailing-content checking.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// PromptShown suppresses the prompt on the first attempt, for callers that
// have already printed context such as a range.
func PromptShown() Option {
	return func(o *Options) { o.PromptShown = true }
}

func (r *Reader) options(opts []Option) Options {
	o := r.defaults
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Parse extracts one whitespace-delimited token and converts it with parse,
// retrying until parse succeeds and, in strict mode, nothing but blanks
// follows the token on its line. It is the general form of Value for types
// with their own grammar.
func Parse[T any](ctx context.Context, r *Reader, parse func(string) (T, error), opts ...Option) (T, error) {
	var zero T
	if parse == nil {
		return zero, errors.NewValidationError(errors.ErrCodeNilPredicate, "parser is nil")
	}

	return extract(ctx, r, r.options(opts), func(o Options) (T, bool, error) {
		token, err := r.readToken()
		if err != nil {
			return zero, false, err
		}

		value, perr := parse(token)
		if perr != nil {
			if err := r.discardLine(); err != nil {
				return zero, false, err
			}
			r.logger.Debug(ctx, "Malformed input", "reason", perr.Error())

			return zero, false, nil
		}

		rest, err := r.restOfLine()
		if err != nil {
			return zero, false, err
		}
		if o.Strict && strings.TrimSpace(rest) != "" {
			r.logger.Debug(ctx, "Trailing input rejected", "trailing_len", len(rest))

			return zero, false, nil
		}

		return value, true, nil
	})
}

// Line extracts a whole line of text. Leading whitespace and blank lines are
// skipped; the line terminator is removed. Strict mode does not apply.
func Line(ctx context.Context, r *Reader, opts ...Option) (string, error) {
	return extract(ctx, r, r.options(opts), func(Options) (string, bool, error) {
		if err := r.skipSpace(); err != nil {
			return "", false, err
		}

		line, err := r.restOfLine()
		if err != nil {
			return "", false, err
		}

		return line, true, nil
	})
}

// extract runs the prompt/read/feedback loop around attempt. attempt reports
// ok=false for a recoverable failure, after which the error message is shown
// and the loop repeats.
func extract[T any](ctx context.Context, r *Reader, o Options, attempt func(Options) (T, bool, error)) (T, error) {
	var zero T
	showPrompt := !o.PromptShown

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		if showPrompt {
			r.print(o.Prompt, false)
		}
		showPrompt = true

		value, ok, err := attempt(o)
		if err != nil {
			return zero, r.readError(ctx, err, n)
		}
		if ok {
			return value, nil
		}

		r.print(o.ErrorMessage, true)
		r.logger.Debug(ctx, "Retrying input", "attempt", n)
	}
}

func (r *Reader) readError(ctx context.Context, err error, attempt int) error {
	if err == io.EOF {
		r.logger.Debug(ctx, "Input stream closed", "attempt", attempt)

		return ErrStreamClosed
	}

	return errors.NewIOError(errors.ErrCodeReadFailed, "failed to read input", err).
		WithComponent("input").
		WithContext("attempt", attempt)
}

func (r *Reader) print(msg string, newline bool) {
	if msg == "" {
		return
	}
	if newline {
		fmt.Fprintln(r.out, msg)

		return
	}
	fmt.Fprint(r.out, msg)
}

func (r *Reader) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

// skipSpace consumes whitespace, including newlines, up to the next
// non-space rune.
func (r *Reader) skipSpace() error {
	for {
		c, _, err := r.in.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(c) {
			return r.in.UnreadRune()
		}
	}
}

// readToken returns the next whitespace-delimited token, leaving the
// delimiter unread. End of input right after a token ends the token.
func (r *Reader) readToken() (string, error) {
	if err := r.skipSpace(); err != nil {
		return "", err
	}

	var b strings.Builder
	for {
		c, _, err := r.in.ReadRune()
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(c) {
			return b.String(), r.in.UnreadRune()
		}
		b.WriteRune(c)
	}
}

// restOfLine consumes through the next newline and returns what preceded it,
// without the terminator. End of input counts as the end of the line.
func (r *Reader) restOfLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

func (r *Reader) discardLine() error {
	_, err := r.restOfLine()
	return err
}
