package generator

import (
	"math/rand/v2"
	"time"
)

// Source is the random capability every non-deterministic generator draws from.
// Float64 returns a value in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a seeded PCG source. Two sources with the same seed produce
// the same sequence.
func NewSource(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func defaultSource() Source {
	return NewSource(time.Now().UnixNano())
}

// intn returns a uniform int in [0, n). n <= 0 yields 0.
func intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func int64n(src Source, n int64) int64 {
	if n <= 0 {
		return 0
	}
	i := int64(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// percent reports whether a draw falls under p percent.
func percent(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	return src.Float64()*100 < p
}

func pick(src Source, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[intn(src, len(pool))]
}

func rotate(pool []string, rowIndex int) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rowIndex%len(pool)]
}

// byteReader adapts a Source to io.Reader for libraries that want raw entropy.
type byteReader struct {
	src Source
}

func (r byteReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(intn(r.src, 256))
	}
	return len(p), nil
}

// randSource adapts a Source to math/rand/v2's Source so libraries that take
// one draw from the same sequence as the generator.
type randSource struct {
	src Source
}

func (r randSource) Uint64() uint64 {
	return uint64(r.src.Float64() * 0x1p64)
}
