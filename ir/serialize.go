package ir

import (
	"errors"
	"fmt"

	"github.com/PolyhedraZK/ExpanderKeccakCircuit/utils"
)

const circuitMagic uint64 = 0x4b43434b47415445

var ErrInvalidHeader = errors.New("invalid circuit header")

// Serialize converts a Circuit into a byte array for storage or transmission.
// Each gate is packed as op, pin a, pin b followed by the three references.
func (c *Circuit) Serialize() []byte {
	o := utils.OutputBuf{}
	o.AppendUint64(circuitMagic)
	o.AppendUint32(c.NbRef)
	o.AppendUint64(uint64(len(c.Inputs)))
	for _, in := range c.Inputs {
		o.AppendUint32(uint32(in))
	}
	o.AppendUint64(uint64(len(c.Gates)))
	for _, g := range c.Gates {
		o.AppendUint8(uint8(g.Op))
		o.AppendUint8(uint8(g.PinA))
		o.AppendUint8(uint8(g.PinB))
		o.AppendUint32(uint32(g.A))
		o.AppendUint32(uint32(g.B))
		o.AppendUint32(uint32(g.Out))
	}
	o.AppendUint64(uint64(len(c.Outputs)))
	for _, out := range c.Outputs {
		o.AppendUint32(uint32(out))
	}
	return o.Bytes()
}

// DeserializeCircuit decodes the output of Serialize and validates the result.
func DeserializeCircuit(buf []byte) (*Circuit, error) {
	in := utils.NewInputBuf(buf)
	if in.ReadUint64() != circuitMagic {
		return nil, ErrInvalidHeader
	}
	c := &Circuit{}
	c.NbRef = in.ReadUint32()

	// every count is bounded by what the remaining bytes can hold, and Validate
	// ties NbRef to those counts before anything is sized by it
	readLen := func(what string, itemSize int) (int, error) {
		n := in.ReadUint64()
		if err := in.Err(); err != nil {
			return 0, fmt.Errorf("reading %s count: %w", what, err)
		}
		if n > uint64(in.Remaining()/itemSize) {
			return 0, fmt.Errorf("%s count %d exceeds buffer: %w", what, n, utils.ErrShortBuffer)
		}
		return int(n), nil
	}

	nbInput, err := readLen("input", 4)
	if err != nil {
		return nil, err
	}
	c.Inputs = make([]Ref, nbInput)
	for i := range c.Inputs {
		c.Inputs[i] = Ref(in.ReadUint32())
	}
	nbGate, err := readLen("gate", 15)
	if err != nil {
		return nil, err
	}
	c.Gates = make([]Gate, nbGate)
	for i := range c.Gates {
		g := &c.Gates[i]
		g.Op = Op(in.ReadUint8())
		g.PinA = Pin(in.ReadUint8())
		g.PinB = Pin(in.ReadUint8())
		g.A = Ref(in.ReadUint32())
		g.B = Ref(in.ReadUint32())
		g.Out = Ref(in.ReadUint32())
	}
	nbOutput, err := readLen("output", 4)
	if err != nil {
		return nil, err
	}
	c.Outputs = make([]Ref, nbOutput)
	for i := range c.Outputs {
		c.Outputs[i] = Ref(in.ReadUint32())
	}
	if err := in.Err(); err != nil {
		return nil, err
	}
	if in.Remaining() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after circuit", in.Remaining())
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("deserialized circuit is invalid: %w", err)
	}
	return c, nil
}
