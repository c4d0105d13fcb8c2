// Package copri implements D. J. Bernstein's "factoring into coprimes
// in essentially linear time": a family of divide-and-conquer
// algorithms over arbitrary-precision integers that compute the
// natural coprime base of a finite set of integers and factor each
// member of the set over that base. The motivating use case is
// batch-GCD style attacks on RSA: given many moduli, cheaply expose
// any pair that shares a prime factor.
package copri
