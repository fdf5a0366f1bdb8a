package decimal

import "fmt"

// Context bundles the precision, rounding mode, and exception signal state
// that Decimal's arithmetic methods round results through. It plays the
// same role the host library's Context64/Context32 play in the teacher
// codebase, collapsed to a single non-generic type since Decimal's
// mantissa is arbitrary-width rather than a fixed 32/64-bit packed word.
type Context struct {
	Precision Precision
	Rounding  Rounding
	Traps     Signal
	signals   Signal
}

var (
	ErrUnsupportedPrecision = fmt.Errorf("decimal: unsupported precision")
	ErrUnknownRounding      = fmt.Errorf("decimal: unknown rounding mode")
)

// BasicTraps is the Traps set a BasicContext is configured with. Operations
// record raised signals on the Context (see Signals); none of them consults
// Traps.
const BasicTraps Signal = SignalInvalidOperation | SignalOverflow | SignalDivisionByZero

// NewContext validates and constructs a Context.
func NewContext(precision Precision, rounding Rounding, traps Signal) (*Context, error) {
	if precision < PrecisionMinimum || precision > PrecisionMaximum {
		return nil, ErrUnsupportedPrecision
	}
	if rounding < DefaultRoundingMode || rounding > MaxRoundingMode {
		return nil, ErrUnknownRounding
	}
	return &Context{Precision: precision, Rounding: rounding, Traps: traps}, nil
}

// BasicContext returns a Context with PrecisionDefault, RoundTiesToEven,
// and the basic IEEE-style traps.
func BasicContext() *Context {
	ctx, err := NewContext(PrecisionDefault, DefaultRoundingMode, BasicTraps)
	if err != nil {
		panic(err)
	}
	return ctx
}

func (ctx *Context) orBasic() *Context {
	if ctx == nil {
		return BasicContext()
	}
	return ctx
}

// Signals reports the signal state accumulated across operations performed
// with this Context.
func (ctx *Context) Signals() Signal {
	if ctx == nil {
		return SignalClear
	}
	return ctx.signals
}

// ClearSignals resets the accumulated signal state.
func (ctx *Context) ClearSignals() {
	if ctx != nil {
		ctx.signals = SignalClear
	}
}

func (ctx *Context) raise(s Signal) {
	if ctx != nil {
		ctx.signals |= s
	}
}

// Clone copies the Context, optionally clearing its accumulated signals.
func (ctx *Context) Clone(clearSignals bool) *Context {
	if ctx == nil {
		return nil
	}
	signals := ctx.signals
	if clearSignals {
		signals = SignalClear
	}
	return &Context{Precision: ctx.Precision, Rounding: ctx.Rounding, Traps: ctx.Traps, signals: signals}
}

func (ctx *Context) String() string {
	if ctx == nil {
		return "Context(nil)"
	}
	return fmt.Sprintf("Context{precision: %d, rounding: %s, traps: %s, signals: %s}",
		ctx.Precision, ctx.Rounding, ctx.Traps, ctx.signals)
}
