package decimal

// Precision is the number of significant decimal digits an operation's
// result is rounded to.
type Precision uint

const (
	PrecisionMinimum Precision = 1
	PrecisionDefault Precision = 20
	// PrecisionMaximum is a sanity ceiling enforced by NewContext, not a
	// representation limit: the limb slice and the math/big arithmetic
	// behind it have no fixed width.
	PrecisionMaximum Precision = 100
)
