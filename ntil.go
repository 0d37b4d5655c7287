package ntil

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/juju/errors"
)

// Checker decides whether a set of result values is acceptable. Returning
// true ends the sequence with success; anything else counts as a rejection
// and drives another attempt.
type Checker func(results ...any) bool

// Next is the completion callback handed to a Performer. The performer must
// invoke it exactly once per attempt, with zero or more result values. A
// performer that never invokes it leaves its sequence suspended forever;
// that is the caller's contract to uphold.
type Next func(results ...any)

// Performer is the asynchronous operation under retry. It receives the
// arguments of the originating handler call followed by the completion
// callback. A panic during the call is recovered, logged as a warning, and
// treated as a completion with no result values.
type Performer func(args []any, next Next)

// Callback receives the result values on acceptance (success) or after the
// attempt budget is exhausted (failure).
type Callback func(results ...any)

// Handler starts one independent attempt sequence per call. The call is
// non-blocking; outcomes are observable only through the configured logger
// and the success/failure callbacks. There is no cancellation and no
// per-attempt timeout: once started, a sequence runs until it is accepted
// or exhausted.
type Handler func(args ...any)

// fallback label when the performer's own name cannot be determined
const anonymousName = "anonymous function"

// New builds a Handler that invokes performer with the handler call's
// arguments plus a completion callback, evaluates checker on the completed
// result values, and retries with exponential backoff until checker accepts
// or the attempt budget runs out. On acceptance success is invoked with the
// result values; on exhaustion failure is, if provided. Both may be nil.
//
// checker and performer are required; a nil value for either fails with a
// NotValid error.
func New(checker Checker, performer Performer, success, failure Callback, opts ...Option) (Handler, error) {
	if checker == nil {
		return nil, errors.NotValidf("nil checker")
	}
	if performer == nil {
		return nil, errors.NotValidf("nil performer")
	}

	o := newOptions(opts...)
	if o.name == "" {
		o.name = performerName(performer)
	}

	h := &handler{
		checker:   checker,
		performer: performer,
		success:   success,
		failure:   failure,
		opts:      o,
	}
	return h.call, nil
}

// handler holds the configuration shared by every sequence. It is never
// mutated after New returns.
type handler struct {
	checker   Checker
	performer Performer
	success   Callback
	failure   Callback
	opts      options
}

// sequence tracks one handler call from its first attempt to a terminal
// outcome. Each call owns its own sequence; attempts within it are strictly
// ordered, so no locking is needed.
type sequence struct {
	h        *handler
	args     []any
	wait     time.Duration
	failures int
}

func (h *handler) call(args ...any) {
	s := &sequence{h: h, args: args, wait: h.opts.initialWait}
	s.attempt()
}

// attempt invokes the performer once, converting a panic into an empty
// rejected result. This is the only recovery point: a panicking checker or
// callback propagates.
func (s *sequence) attempt() {
	defer func() {
		if r := recover(); r != nil {
			s.h.warn(fmt.Sprintf("%s: exception %q", s.h.opts.name, fmt.Sprint(r)))
			s.complete()
		}
	}()
	s.h.performer(s.args, s.complete)
}

func (s *sequence) complete(results ...any) {
	h := s.h
	if h.checker(results...) {
		h.info(fmt.Sprintf("%s: success", h.opts.name))
		if h.success != nil {
			h.success(results...)
		}
		return
	}

	s.failures++
	if s.failures < h.opts.maxAttempts {
		wait := s.wait
		h.info(fmt.Sprintf("%s: %d %s - trying again in %g seconds",
			h.opts.name, s.failures, plural("failure", s.failures), wait.Seconds()))
		s.wait = time.Duration(float64(s.wait) * h.opts.waitMultiplier)

		expired := h.opts.clock.After(wait)
		go func() {
			<-expired
			s.attempt()
		}()
		return
	}

	h.warn(fmt.Sprintf("%s: too many failures (%d)", h.opts.name, s.failures))
	if h.failure != nil {
		h.failure(results...)
	}
}

func (h *handler) info(msg string) {
	if h.opts.logger != nil {
		h.opts.logger.Info(msg)
	}
}

func (h *handler) warn(msg string) {
	if h.opts.logger != nil {
		h.opts.logger.Warn(msg)
	}
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// matches the tail segment of a function literal's generated name, e.g.
// "func2" in "ntil.TestFoo.func2" or "3" in "ntil.TestFoo.func2.3"
var literalName = regexp.MustCompile(`^(func)?\d+$`)

// performerName resolves the default log label: the performer's own
// function name, or anonymousName for function literals.
func performerName(p Performer) string {
	fn := runtime.FuncForPC(reflect.ValueOf(p).Pointer())
	if fn == nil {
		return anonymousName
	}
	name := strings.TrimSuffix(fn.Name(), "-fm")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || literalName.MatchString(name) {
		return anonymousName
	}
	return name
}
