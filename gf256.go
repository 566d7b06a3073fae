/*
 * Copyright © 2026, the qrcode project authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

// gfExp and gfLog are the antilog and log tables of GF(256) under the QR
// primitive polynomial x^8+x^4+x^3+x^2+1. gfExp is indexed by an exponent in
// [0,255]; gfLog is indexed by a nonzero field element in [1,255].
var (
	gfExp [256]int
	gfLog [256]int
)

func init() {
	for i := 0; i < 8; i++ {
		gfExp[i] = 1 << i
	}
	for i := 8; i < 256; i++ {
		gfExp[i] = gfExp[i-4] ^ gfExp[i-5] ^ gfExp[i-6] ^ gfExp[i-8]
	}
	for i := 0; i < 255; i++ {
		gfLog[gfExp[i]] = i
	}
}

// gfLogOf returns log[n]. n must be nonzero; 0 has no logarithm in GF(256)
// and callers invoking it on 0 have violated an internal invariant.
func gfLogOf(n int) int {
	if n < 1 {
		panic(&Error{Kind: InternalInvariant, Msg: "gf256: log of zero"})
	}
	return gfLog[n]
}

// gfExpOf returns exp[n mod 255], wrapping the exponent the way multiplying
// two already-reduced logarithms requires.
func gfExpOf(n int) int {
	m := n % 255
	if m < 0 {
		m += 255
	}
	return gfExp[m]
}

// polynomial is an ordered list of GF(256) coefficients, highest power
// first, with leading zero coefficients trimmed on construction.
type polynomial []int

func newPolynomial(coeffs []int) polynomial {
	i := 0
	for i < len(coeffs)-1 && coeffs[i] == 0 {
		i++
	}
	p := make(polynomial, len(coeffs)-i)
	copy(p, coeffs[i:])
	return p
}

// mul returns the product of p and q over GF(256); the result has
// len(p)+len(q)-1 coefficients.
func (p polynomial) mul(q polynomial) polynomial {
	result := make([]int, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			if b == 0 {
				continue
			}
			result[i+j] ^= gfExpOf(gfLogOf(a) + gfLogOf(b))
		}
	}
	return newPolynomial(result)
}

// mod returns p mod q by iterative long division: the recursive tail call
// in the source is unrolled into a loop so degree-254 generators never grow
// the call stack.
func (p polynomial) mod(q polynomial) polynomial {
	rem := polynomial(append([]int(nil), p...))
	for len(rem) >= len(q) {
		if rem[0] == 0 {
			rem = newPolynomial(rem[1:])
			continue
		}
		ratio := gfLogOf(rem[0]) - gfLogOf(q[0])
		next := make([]int, len(rem))
		copy(next, rem)
		for i, qi := range q {
			if qi == 0 {
				continue
			}
			next[i] ^= gfExpOf(gfLogOf(qi) + ratio)
		}
		rem = newPolynomial(next[1:])
	}
	return rem
}

// rsGeneratorCache memoizes generator polynomials of degree == ec codeword
// count, since the same few degrees recur across every RS block in a
// symbol.
var rsGeneratorCache = map[int]polynomial{}

// rsGenerator returns G(x) = Product_{i=0..degree-1} (x - alpha^i) over
// GF(256), i.e. the Reed-Solomon generator polynomial of the given degree.
func rsGenerator(degree int) polynomial {
	if g, ok := rsGeneratorCache[degree]; ok {
		return g
	}
	g := newPolynomial([]int{1})
	for i := 0; i < degree; i++ {
		g = g.mul(newPolynomial([]int{1, gfExpOf(i)}))
	}
	rsGeneratorCache[degree] = g
	return g
}
