package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_String(t *testing.T) {
	tests := []struct {
		num  Number
		want string
	}{
		{Prime{Value: 7}, "Prime Number: 7"},
		{Odd{Value: 9, Divisors: []int{1, 3, 9}}, "Odd Number: 9, Divisors: [1, 3, 9]"},
		{Even{Value: 4, Divisors: []int{1, 2, 4}}, "Even Number: 4, Divisors: [1, 2, 4]"},
		{Odd{Value: -1, Divisors: []int{}}, "Odd Number: -1, Divisors: []"},
		{Even{Value: 0}, "Even Number: 0, Divisors: []"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.num.String())
	}
}

func TestClassifyOne(t *testing.T) {
	assert.Equal(t, Prime{Value: 13}, ClassifyOne(13))
	assert.Equal(t, Odd{Value: 15, Divisors: []int{1, 3, 5, 15}}, ClassifyOne(15))
	assert.Equal(t, Even{Value: 12, Divisors: []int{1, 2, 3, 4, 6, 12}}, ClassifyOne(12))
}

func TestResult_NumbersOrder(t *testing.T) {
	res := Classify(Range{Lower: 1, Upper: 6})

	var kinds []Kind
	var values []int
	for _, n := range res.Numbers() {
		kinds = append(kinds, n.Kind())
		values = append(values, n.Int())
	}
	assert.Equal(t, []Kind{KindPrime, KindPrime, KindPrime, KindOdd, KindEven, KindEven}, kinds)
	assert.Equal(t, []int{2, 3, 5, 1, 4, 6}, values)
}

func TestFormatDivisors(t *testing.T) {
	assert.Equal(t, "[]", FormatDivisors(nil))
	assert.Equal(t, "[1]", FormatDivisors([]int{1}))
	assert.Equal(t, "[1, 3]", FormatDivisors([]int{1, 3}))
}
