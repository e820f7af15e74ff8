package forms

import "context"

// State is a step of a form's submission lifecycle:
//
//	Idle → Validating → Invalid → Idle
//	Idle → Validating → Submitting → Success → Idle
//	Idle → Validating → Submitting → Failed → Idle
type State int

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is what a submit handler reports back to the form. Errors is set
// when the handler rejected the input before any network call.
type Result struct {
	OK     bool
	Errors FieldErrors
}

// Form holds the values and inline errors of one form.
type Form[T any] struct {
	Values T
	Errors FieldErrors

	// OnTransition, when set, observes every state change.
	OnTransition func(from, to State)

	validate func(T) FieldErrors
	state    State
}

func NewForm[T any](validate func(T) FieldErrors) *Form[T] {
	return &Form[T]{validate: validate}
}

func (f *Form[T]) State() State { return f.state }

// Submit validates the current values and, when they pass, hands them to
// submit. It returns the outcome (Invalid, Success or Failed) and leaves the
// form Idle again. Values are reset only on Success; errors stay visible
// only after Invalid.
func (f *Form[T]) Submit(ctx context.Context, submit func(context.Context, T) Result) State {
	f.moveTo(StateValidating)

	if errs := f.validate(f.Values); len(errs) > 0 {
		return f.settle(StateInvalid, errs)
	}

	f.Errors = nil
	f.moveTo(StateSubmitting)

	res := submit(ctx, f.Values)
	switch {
	case len(res.Errors) > 0:
		return f.settle(StateInvalid, res.Errors)
	case res.OK:
		var zero T
		f.Values = zero
		return f.settle(StateSuccess, nil)
	default:
		return f.settle(StateFailed, nil)
	}
}

func (f *Form[T]) settle(outcome State, errs FieldErrors) State {
	f.Errors = errs
	f.moveTo(outcome)
	f.moveTo(StateIdle)
	return outcome
}

func (f *Form[T]) moveTo(s State) {
	from := f.state
	f.state = s
	if f.OnTransition != nil {
		f.OnTransition(from, s)
	}
}
