package classify

// Result holds the three partitions of one classification pass. Each
// sequence is in the ascending order the range was visited.
type Result struct {
	Primes []Prime `json:"primes" yaml:"primes"`
	Odds   []Odd   `json:"odds" yaml:"odds"`
	Evens  []Even  `json:"evens" yaml:"evens"`
}

// Counts summarises how many numbers landed in each partition.
type Counts struct {
	Primes int `json:"primes" yaml:"primes"`
	Odds   int `json:"odds" yaml:"odds"`
	Evens  int `json:"evens" yaml:"evens"`
}

// Total returns the number of classified integers.
func (c Counts) Total() int {
	return c.Primes + c.Odds + c.Evens
}

// Counts returns the size of each partition.
func (r Result) Counts() Counts {
	return Counts{
		Primes: len(r.Primes),
		Odds:   len(r.Odds),
		Evens:  len(r.Evens),
	}
}

// Numbers returns every entry in output order: primes, then odds, then
// evens.
func (r Result) Numbers() []Number {
	out := make([]Number, 0, len(r.Primes)+len(r.Odds)+len(r.Evens))
	for _, p := range r.Primes {
		out = append(out, p)
	}
	for _, o := range r.Odds {
		out = append(out, o)
	}
	for _, e := range r.Evens {
		out = append(out, e)
	}
	return out
}
