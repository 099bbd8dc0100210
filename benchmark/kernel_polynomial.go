package benchmark

// NaivePolynomial evaluates Σ p[i]·alpha^i with one exponentiation per
// coefficient, the textbook-slow baseline Horner is compared against.
type NaivePolynomial struct {
	alpha int
}

// NewNaivePolynomial creates the naive kernel evaluating at alpha.
func NewNaivePolynomial(alpha int) *NaivePolynomial {
	return &NaivePolynomial{alpha: alpha}
}

func (k *NaivePolynomial) Name() string {
	return string(KernelNaivePolynomial)
}

func (k *NaivePolynomial) Description() string {
	return "Polynomial evaluation with one power call per coefficient"
}

// Ops counts one power call, one multiply and one add per coefficient.
func (k *NaivePolynomial) Ops(n int) int {
	return 3 * n
}

func (k *NaivePolynomial) Run(data []int) int {
	res := 0
	for i, c := range data {
		res += c * ipow(k.alpha, i)
	}
	return res
}

// ipow is integer exponentiation by squaring. The naive kernel pays one
// call per coefficient where Horner pays none.
func ipow(base, exp int) int {
	res := 1
	for exp > 0 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
		exp >>= 1
	}
	return res
}

// HornerPolynomial evaluates the same polynomial via nested
// multiplication, no power calls.
type HornerPolynomial struct {
	alpha int
}

// NewHornerPolynomial creates the Horner kernel evaluating at alpha.
func NewHornerPolynomial(alpha int) *HornerPolynomial {
	return &HornerPolynomial{alpha: alpha}
}

func (k *HornerPolynomial) Name() string {
	return string(KernelHornerPolynomial)
}

func (k *HornerPolynomial) Description() string {
	return "Polynomial evaluation via Horner's nested multiplication"
}

// Ops counts one multiply and one add per coefficient.
func (k *HornerPolynomial) Ops(n int) int {
	return 2 * n
}

func (k *HornerPolynomial) Run(data []int) int {
	res := 0
	for i := len(data) - 1; i >= 0; i-- {
		res = res*k.alpha + data[i]
	}
	return res
}
