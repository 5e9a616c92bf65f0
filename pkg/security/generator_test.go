package security

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	// 26 lower, 26 upper, 10 digits, 8 specials
	assert.Len(t, Alphabet, 70)
	assert.True(t, strings.HasSuffix(Alphabet, SpecialChars))

	seen := make(map[rune]bool)
	for _, r := range Alphabet {
		assert.False(t, seen[r], "duplicate %q", r)
		seen[r] = true
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	distinct := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		pw := GenerateStrongPassword()
		require.Len(t, pw, 12)
		for _, r := range pw {
			require.True(t, strings.ContainsRune(Alphabet, r), "unexpected %q", r)
		}
		distinct[pw] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
}

func TestGenerator_SeededIsReproducible(t *testing.T) {
	a := NewGenerator(DefaultGeneratorConfig(), WithRand(rand.New(rand.NewPCG(1, 2))))
	b := NewGenerator(DefaultGeneratorConfig(), WithRand(rand.New(rand.NewPCG(1, 2))))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGenerator_Length(t *testing.T) {
	g := NewGenerator(GeneratorConfig{Length: 32})
	assert.Len(t, g.Generate(), 32)

	g = NewGenerator(GeneratorConfig{Length: -1})
	assert.Len(t, g.Generate(), DefaultGeneratedLen)
}

func TestGenerator_RequireStrong(t *testing.T) {
	g := NewGenerator(GeneratorConfig{RequireStrong: true, MaxAttempts: 50},
		WithRand(rand.New(rand.NewPCG(7, 7))))

	for i := 0; i < 50; i++ {
		assert.Equal(t, MaxScore, Evaluate(g.Generate()).Score)
	}
}

func TestGenerator_RequireStrongGivesUp(t *testing.T) {
	calls := 0
	g := NewGenerator(GeneratorConfig{RequireStrong: true, MaxAttempts: 3})
	// always index 0: "aaaaaaaaaaaa" never scores 5
	g.intN = func(int) int {
		calls++
		return 0
	}

	assert.Equal(t, "aaaaaaaaaaaa", g.Generate())
	assert.Equal(t, 3*DefaultGeneratedLen, calls)
}

func TestGenerateStrongPassword_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = Evaluate(GenerateStrongPassword())
			}
		}()
	}
	wg.Wait()
}
