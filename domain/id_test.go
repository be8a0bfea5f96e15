package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDPrefix(t *testing.T) {
	id := NewID("dist")
	assert.True(t, strings.HasPrefix(id, "dist-"), id)
}

func TestNewIDUniqueUnderRapidCreation(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID("sec")
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewIDUniqueAcrossGoroutines(t *testing.T) {
	const workers = 8
	const perWorker = 200

	results := make(chan string, workers*perWorker)
	for w := 0; w < workers; w++ {
		go func() {
			for i := 0; i < perWorker; i++ {
				results <- NewID("doc")
			}
		}()
	}

	seen := make(map[string]struct{}, workers*perWorker)
	for i := 0; i < workers*perWorker; i++ {
		id := <-results
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
