// Package testutil generates deterministic synthetic test corpora for
// the copri algorithms without touching the filesystem. It never
// performs primality testing (copri itself only ever operates on
// already-factored or already-composite BigInt values): every prime
// it hands out comes from a fixed table of known primes, and the
// corpus generators only ever multiply and select among them.
package testutil

import (
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// KeyedStream wraps a blake2b XOF, trimmed to the one operation the
// corpus generators below need: a deterministic, seed-reproducible
// stream of selection indices. Not safe for concurrent use.
type KeyedStream struct {
	xof blake2b.XOF
}

// NewKeyedStream seeds a stream from seed. The same seed always
// produces the same sequence of Intn results, which is what makes
// corpora built from it reproducible across test runs.
func NewKeyedStream(seed []byte) (*KeyedStream, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed)
	if err != nil {
		return nil, err
	}
	return &KeyedStream{xof: xof}, nil
}

// Intn returns a deterministic value in [0, n). Uses rejection
// sampling over the stream's bytes to avoid modulo bias.
func (k *KeyedStream) Intn(n int) int {
	if n <= 0 {
		panic("testutil: Intn requires n > 0")
	}
	const span = uint64(1) << 32
	limit := uint64(n)
	threshold := span - span%limit
	var buf [4]byte
	for {
		if _, err := k.xof.Read(buf[:]); err != nil {
			panic(err)
		}
		v := uint64(buf[0])<<24 | uint64(buf[1])<<16 | uint64(buf[2])<<8 | uint64(buf[3])
		// Reject values in the final partial bucket so every
		// remaining outcome is equally likely.
		if v < threshold {
			return int(v % limit)
		}
	}
}

// KnownPrimes is a fixed table of primes spanning a range of bit
// lengths, large enough to build nontrivial coprime-base test cases
// without needing a primality test. Includes 65537, 65539, and 65543,
// a close cluster of Fermat-adjacent primes useful for building moduli
// that share no factors despite being numerically close together,
// alongside smaller and larger examples.
var KnownPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
	101, 103, 107, 109, 113,
	1009, 1013, 1019, 1021, 1031,
	65537, 65539, 65543, 65551, 65557,
	1000000007, 1000000009, 1000000021,
}

// Prime returns the i-th entry of KnownPrimes as a *big.Int.
func Prime(i int) *big.Int {
	return big.NewInt(KnownPrimes[i%len(KnownPrimes)])
}

// SharedFactorModuli builds n "RSA modulus" values of the form p*q_i,
// where p is a single prime shared across every modulus (the batch-GCD
// attack's target case) and each q_i is a distinct prime drawn from
// KnownPrimes. Returns the moduli and the shared prime.
func SharedFactorModuli(stream *KeyedStream, n int) (moduli []*big.Int, shared *big.Int) {
	shared = Prime(stream.Intn(len(KnownPrimes)))

	used := map[int]bool{}
	moduli = make([]*big.Int, 0, n)
	for len(moduli) < n {
		idx := stream.Intn(len(KnownPrimes))
		q := KnownPrimes[idx]
		if big.NewInt(q).Cmp(shared) == 0 || used[idx] {
			continue
		}
		used[idx] = true
		m := new(big.Int).Mul(shared, big.NewInt(q))
		moduli = append(moduli, m)
	}
	return moduli, shared
}

// CoprimeModuli builds n moduli, each the product of two distinct
// primes drawn from KnownPrimes, such that no prime is reused across
// any two moduli — the natural coprime base of the resulting set is
// the n moduli themselves.
func CoprimeModuli(stream *KeyedStream, n int) []*big.Int {
	used := map[int]bool{}
	next := func() int64 {
		for {
			idx := stream.Intn(len(KnownPrimes))
			if !used[idx] {
				used[idx] = true
				return KnownPrimes[idx]
			}
		}
	}

	moduli := make([]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		p := next()
		q := next()
		moduli = append(moduli, new(big.Int).Mul(big.NewInt(p), big.NewInt(q)))
	}
	return moduli
}
