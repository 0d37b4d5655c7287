package ntil

import "github.com/juju/errors"

// Builder accumulates handler configuration through chained calls, for
// callers who prefer deferred construction over passing everything to New
// at once. The checker is fixed when the builder is created; every other
// slot may be set in any order, and setting a slot twice overwrites the
// earlier value. Func materializes the handler.
type Builder struct {
	checker   Checker
	performer Performer
	success   Callback
	failure   Callback
	opts      []Option
}

// NewBuilder starts a builder for the given checker, which is required and
// cannot be changed afterwards.
func NewBuilder(checker Checker) (*Builder, error) {
	if checker == nil {
		return nil, errors.NotValidf("nil checker")
	}
	return &Builder{checker: checker}, nil
}

// Exec sets the performer. Required before Func.
func (b *Builder) Exec(performer Performer) *Builder {
	b.performer = performer
	return b
}

// Done sets the success callback.
func (b *Builder) Done(success Callback) *Builder {
	b.success = success
	return b
}

// Fail sets the failure callback.
func (b *Builder) Fail(failure Callback) *Builder {
	b.failure = failure
	return b
}

// Opts sets the configuration options, replacing any set earlier.
func (b *Builder) Opts(opts ...Option) *Builder {
	b.opts = opts
	return b
}

// Func produces a handler from the accumulated configuration. Calling it
// without a performer fails exactly as New does.
func (b *Builder) Func() (Handler, error) {
	return New(b.checker, b.performer, b.success, b.failure, b.opts...)
}
