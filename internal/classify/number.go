package classify

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind labels the category a number was routed to.
type Kind string

const (
	KindPrime Kind = "prime"
	KindOdd   Kind = "odd"
	KindEven  Kind = "even"
)

// Number is one classified integer. It is implemented only by Prime, Odd
// and Even.
type Number interface {
	Kind() Kind
	Int() int
	String() string
	sealed()
}

// Prime is a number with no divisors other than 1 and itself.
type Prime struct {
	Value int `json:"value" yaml:"value"`
}

// Odd is a non-prime number not divisible by 2.
type Odd struct {
	Value    int   `json:"value" yaml:"value"`
	Divisors []int `json:"divisors" yaml:"divisors"`
}

// Even is a non-prime number divisible by 2.
type Even struct {
	Value    int   `json:"value" yaml:"value"`
	Divisors []int `json:"divisors" yaml:"divisors"`
}

func (Prime) Kind() Kind { return KindPrime }
func (Odd) Kind() Kind   { return KindOdd }
func (Even) Kind() Kind  { return KindEven }

func (p Prime) Int() int { return p.Value }
func (o Odd) Int() int   { return o.Value }
func (e Even) Int() int  { return e.Value }

func (Prime) sealed() {}
func (Odd) sealed()   {}
func (Even) sealed()  {}

func (p Prime) String() string {
	return fmt.Sprintf("Prime Number: %d", p.Value)
}

func (o Odd) String() string {
	return fmt.Sprintf("Odd Number: %d, Divisors: %s", o.Value, FormatDivisors(o.Divisors))
}

func (e Even) String() string {
	return fmt.Sprintf("Even Number: %d, Divisors: %s", e.Value, FormatDivisors(e.Divisors))
}

// FormatDivisors renders divisors as a bracketed, comma separated list,
// e.g. "[1, 3]". An empty list renders as "[]".
func FormatDivisors(divisors []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, d := range divisors {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(d))
	}
	sb.WriteByte(']')
	return sb.String()
}
