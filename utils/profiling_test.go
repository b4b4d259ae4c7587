package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileBySource(t *testing.T) {
	a := SourceInfo{File: "a.go", Line: 3}
	b := SourceInfo{File: "a.go", Line: 7}
	p := ProfileBySource([]SourceInfo{a, a, b, a}, []bool{true, false, false, true})
	assert.Equal(t, map[SourceInfo]LineProfile{
		a: {NbAnd: 2, NbXor: 1},
		b: {NbXor: 1},
	}, p)
	assert.Equal(t, 2*CostOfAndGate+CostOfXorGate, p[a].Cost())
}

func TestShowProfiling(t *testing.T) {
	file := filepath.Join(t.TempDir(), "steps.go")
	require.NoError(t, os.WriteFile(file, []byte("package steps\nx := xor()\ny := and()\n"), 0o644))
	info := []SourceInfo{{file, 2}, {file, 3}, {file, 3}, {"missing.go", 9}}
	isAnd := []bool{false, true, true, false}

	var buf bytes.Buffer
	ShowProfiling(&buf, info, isAnd)

	// an unreadable file still reports its lines, without code
	assert.Contains(t, buf.String(), "File: missing.go | AND: 0 | XOR: 1 | Cost: 3\n"+
		"    AND |     XOR |    Cost | Line | Code\n"+
		"      0 |       1 |       3 |    9 | \n")
	assert.Contains(t, buf.String(), "| AND: 2 | XOR: 1 | Cost: 23")
	// the AND line costs more and comes first
	and := strings.Index(buf.String(), "y := and()")
	xor := strings.Index(buf.String(), "x := xor()")
	assert.True(t, and >= 0 && xor > and)
}
