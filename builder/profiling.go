package builder

import (
	"io"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/ir"
	"github.com/PolyhedraZK/ExpanderKeccakCircuit/utils"
)

// GateSourceInfo returns, for each gate, the source line that emitted it.
// It is empty unless the builder was created WithProfiling.
func (b *Builder) GateSourceInfo() []utils.SourceInfo {
	return b.gateSourceInfo
}

// ShowProfiling prints the AND and XOR gates attributed to each emitting source line.
func (b *Builder) ShowProfiling(w io.Writer) {
	isAnd := make([]bool, len(b.gates))
	for i, g := range b.gates {
		isAnd[i] = g.Op == ir.OpAnd
	}
	utils.ShowProfiling(w, b.gateSourceInfo, isAnd)
}
