package main

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/session"
	"github.com/stretchr/testify/assert"
)

func TestRandomInputRate(t *testing.T) {
	var cmds session.Commands

	never := NewRandomInput(rand.New(rand.NewPCG(1, 1)), 0)
	for i := 0; i < 100; i++ {
		assert.False(t, never.Feed(&cmds))
	}
	assert.Equal(t, 0, cmds.Len())

	always := NewRandomInput(rand.New(rand.NewPCG(1, 1)), 1)
	for i := 0; i < 100; i++ {
		assert.True(t, always.Feed(&cmds))
	}
	assert.Equal(t, 100, cmds.Len())
}

func TestRandomInputIsSeeded(t *testing.T) {
	feed := func() int {
		var cmds session.Commands
		input := NewRandomInput(rand.New(rand.NewPCG(9, 9)), 0.5)
		queued := 0
		for i := 0; i < 200; i++ {
			if input.Feed(&cmds) {
				queued++
			}
		}
		assert.Equal(t, queued, cmds.Len())
		return queued
	}

	assert.Equal(t, feed(), feed())
}
