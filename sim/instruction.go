package sim

import (
	"fmt"
	"io"
)

const (
	// BurstCreate marks a task creation instruction.
	BurstCreate = 0
	// BurstExit marks a task termination report.
	BurstExit = -1
)

// InstructionKind classifies an Instruction by its burst field.
type InstructionKind int

const (
	KindCreate InstructionKind = iota
	KindBurst
	KindExit
	KindInvalid
)

func (k InstructionKind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindBurst:
		return "burst"
	case KindExit:
		return "exit"
	default:
		return "invalid"
	}
}

// Instruction is one immutable input record.
type Instruction struct {
	Tick   int64  // tick at which the instruction applies
	TaskID TaskID // task the instruction refers to
	Burst  int    // 0 = create, -1 = exit, > 0 = CPU burst length
}

// Kind derives the instruction kind from Burst.
func (in Instruction) Kind() InstructionKind {
	switch {
	case in.Burst == BurstCreate:
		return KindCreate
	case in.Burst == BurstExit:
		return KindExit
	case in.Burst > 0:
		return KindBurst
	default:
		return KindInvalid
	}
}

func (in Instruction) String() string {
	return fmt.Sprintf("%d,%d,%d", in.Tick, in.TaskID, in.Burst)
}

// InstructionSource yields instructions in file order.
// Next returns io.EOF once the stream is exhausted.
type InstructionSource interface {
	Next() (Instruction, error)
}

// SliceSource serves instructions from memory.
type SliceSource struct {
	instructions []Instruction
	pos          int
}

// NewSliceSource creates a source over the given instructions.
func NewSliceSource(instructions ...Instruction) *SliceSource {
	return &SliceSource{instructions: instructions}
}

// Next returns the next instruction or io.EOF.
func (s *SliceSource) Next() (Instruction, error) {
	if s.pos >= len(s.instructions) {
		return Instruction{}, io.EOF
	}
	in := s.instructions[s.pos]
	s.pos++
	return in, nil
}
