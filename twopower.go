package copri

import "math/big"

// TwoPower sets rot to rot^(2^n) by n repeated in-place squarings.
// n == 0 is the identity. Algorithm 10.1.
func TwoPower(rot *big.Int, n uint64) {
	for ; n > 0; n-- {
		rot.Mul(rot, rot)
	}
}
