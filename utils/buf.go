package utils

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is reported by InputBuf when a read runs past the end of the data.
var ErrShortBuffer = errors.New("unexpected end of buffer")

type OutputBuf struct {
	buf []byte
}

func (o *OutputBuf) AppendUint8(x uint8) {
	o.buf = append(o.buf, x)
}

func (o *OutputBuf) AppendUint32(x uint32) {
	o.buf = binary.LittleEndian.AppendUint32(o.buf, x)
}

func (o *OutputBuf) AppendUint64(x uint64) {
	o.buf = binary.LittleEndian.AppendUint64(o.buf, x)
}

func (o *OutputBuf) Bytes() []byte {
	return o.buf
}

// InputBuf reads values back from an OutputBuf encoding. The first short
// read sticks: every later read returns zero and Err reports ErrShortBuffer.
type InputBuf struct {
	buf []byte
	err error
}

func NewInputBuf(buf []byte) *InputBuf {
	return &InputBuf{buf: buf}
}

func (i *InputBuf) take(n int) []byte {
	if i.err != nil {
		return nil
	}
	if len(i.buf) < n {
		i.err = ErrShortBuffer
		i.buf = nil
		return nil
	}
	b := i.buf[:n]
	i.buf = i.buf[n:]
	return b
}

func (i *InputBuf) ReadUint8() uint8 {
	b := i.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (i *InputBuf) ReadUint32() uint32 {
	b := i.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (i *InputBuf) ReadUint64() uint64 {
	b := i.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Remaining returns the number of unread bytes.
func (i *InputBuf) Remaining() int {
	return len(i.buf)
}

func (i *InputBuf) Err() error {
	return i.err
}
