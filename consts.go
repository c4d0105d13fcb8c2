package copri

import "math/big"

// Small constants reused across the package. Never mutated: every use
// is as a read-only argument, avoiding a fresh allocation per call.
var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)
