package classify

import (
	"go.uber.org/zap"
)

// Range is an inclusive integer interval. A range with Lower > Upper is
// empty.
type Range struct {
	Lower int `json:"lower" yaml:"lower"`
	Upper int `json:"upper" yaml:"upper"`
}

// DefaultRange is the range classified when nothing else is configured.
var DefaultRange = Range{Lower: 1, Upper: 100}

// Empty reports whether the range contains no integers.
func (r Range) Empty() bool {
	return r.Lower > r.Upper
}

// Len returns the number of integers in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Upper - r.Lower + 1
}

// Classifier runs classification passes. The zero value is not usable;
// construct with New.
type Classifier struct {
	logger *zap.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for per-pass debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Classifier. Without options it logs nothing.
func New(opts ...Option) *Classifier {
	c := &Classifier{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify runs a classification pass over r.
func (c *Classifier) Classify(r Range) Result {
	res := Classify(r)
	c.logger.Debug("classification pass complete",
		zap.Int("lower", r.Lower),
		zap.Int("upper", r.Upper),
		zap.Int("primes", len(res.Primes)),
		zap.Int("odds", len(res.Odds)),
		zap.Int("evens", len(res.Evens)),
	)
	return res
}

// Classify visits every integer in r in ascending order and routes it to
// exactly one of the three result sequences.
func Classify(r Range) Result {
	res := Result{
		Primes: []Prime{},
		Odds:   []Odd{},
		Evens:  []Even{},
	}
	if r.Empty() {
		return res
	}

	// Stop on equality rather than n <= Upper so Upper == MaxInt terminates.
	for n := r.Lower; ; n++ {
		switch num := ClassifyOne(n).(type) {
		case Prime:
			res.Primes = append(res.Primes, num)
		case Odd:
			res.Odds = append(res.Odds, num)
		case Even:
			res.Evens = append(res.Evens, num)
		}
		if n == r.Upper {
			break
		}
	}
	return res
}

// ClassifyOne classifies a single integer.
func ClassifyOne(n int) Number {
	switch KindOf(n) {
	case KindPrime:
		return Prime{Value: n}
	case KindEven:
		return Even{Value: n, Divisors: Divisors(n)}
	default:
		return Odd{Value: n, Divisors: Divisors(n)}
	}
}

// KindOf returns the category n belongs to. Primality is checked first,
// so 2 is a prime and never an even.
func KindOf(n int) Kind {
	if IsPrime(n) {
		return KindPrime
	}
	if n%2 == 0 {
		return KindEven
	}
	return KindOdd
}

// IsPrime reports whether n is prime by trial division over 2..n/2.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i <= n/2; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Divisors returns the positive divisors of n in ascending order. It
// returns an empty slice for n <= 0.
func Divisors(n int) []int {
	divisors := make([]int, 0)
	if n <= 0 {
		return divisors
	}
	// No divisor of n other than n lies above n/2.
	for i := 1; i <= n/2; i++ {
		if n%i == 0 {
			divisors = append(divisors, i)
		}
	}
	return append(divisors, n)
}
