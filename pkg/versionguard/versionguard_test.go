package versionguard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastRequestWins(t *testing.T) {
	var g Guard

	first := g.Begin()
	assert.True(t, g.Current(first))

	second := g.Begin()
	assert.False(t, g.Current(first))
	assert.True(t, g.Current(second))
}

func TestStaleTokenAfterFirstBegin(t *testing.T) {
	var g Guard
	g.Begin()
	assert.False(t, g.Current(Token(0)))
}

func TestConcurrentBegins(t *testing.T) {
	var g Guard
	var wg sync.WaitGroup

	tokens := make([]Token, 100)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = g.Begin()
		}(i)
	}
	wg.Wait()

	seen := make(map[Token]bool, len(tokens))
	current := 0
	for _, token := range tokens {
		assert.False(t, seen[token], "token handed out twice")
		seen[token] = true
		if g.Current(token) {
			current++
		}
	}
	assert.Equal(t, 1, current)
}
