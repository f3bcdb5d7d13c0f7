// Package bf provides an implementation of a Brainfuck machine, called
// Machine, that can be used to execute Brainfuck source text.
package bf

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTapeSize is the tape size used by a default Config.
const DefaultTapeSize = 30000

// Machine is an implementation of a Brainfuck machine: a byte tape, a
// data pointer, and a console device for the input and output
// instructions.
type Machine struct {
	Tape []byte
	Ptr  int
	Con  Console

	cfg Config
}

// Console provides access to the input and output streams connected to
// the machine. Which read method Execute uses for the `,` instruction
// is governed by the machine's Config, not by the program.
type Console interface {
	ReadLine() (string, error) // line and hexadecimal input modes
	ReadKey() (byte, error)    // realtime input mode
	WriteByte(b byte)          // `.` output
}

// NewMachine returns a Machine with a zeroed tape of cfg.TapeSize cells
// and the pointer at zero. A nil cfg means the default Config. If the
// tape size is not positive the tape is left unallocated and the first
// Execute call reports BadTape. Con must be set before executing a
// program that performs I/O.
func NewMachine(cfg *Config) *Machine {
	if cfg == nil {
		cfg = NewConfig()
	}
	m := &Machine{cfg: *cfg}
	if cfg.TapeSize > 0 {
		m.Tape = make([]byte, cfg.TapeSize)
	}
	return m
}

// Execute runs the given source text to completion and returns a
// FaultError if execution halted on a fault condition. Unless the Raw
// mode is set, characters outside the instruction alphabet <>.,[]+- are
// stripped before execution; in Raw mode they are no-ops.
//
// Whether the run completes or faults, the tape is zeroed and the
// pointer reset before Execute returns, so the machine may immediately
// run another program.
func (m *Machine) Execute(source string) (err error) {
	prog := []byte(source)
	if !m.cfg.Raw {
		prog = filter(prog)
	}

	var i int
	defer m.reset()
	defer func() {
		if e := recover(); e != nil {
			if code, ok := e.(FaultCode); ok {
				fe := FaultError{FaultCode: code, Ptr: m.Ptr}
				if code != BadTape && i < len(prog) {
					fe.Instr, fe.Pos = prog[i], i
				}
				err = fe
			} else {
				panic(e)
			}
		}
	}()

	if len(prog) > 0 && len(m.Tape) == 0 {
		panic(BadTape)
	}

	for i = 0; i < len(prog); i++ {
		switch prog[i] {
		case '<':
			switch {
			case m.Ptr > 0:
				m.Ptr--
			case m.cfg.Wrap:
				m.Ptr = len(m.Tape) - 1
			default:
				panic(Underflow)
			}
		case '>':
			switch {
			case m.Ptr < len(m.Tape)-1:
				m.Ptr++
			case m.cfg.Wrap:
				m.Ptr = 0
			default:
				panic(Overflow)
			}
		case '+':
			m.Tape[m.Ptr]++
		case '-':
			m.Tape[m.Ptr]--
		case ',':
			m.Tape[m.Ptr] = m.read()
		case '.':
			m.Con.WriteByte(m.Tape[m.Ptr])
		case '[':
			if m.Tape[m.Ptr] == 0 {
				i = matchForward(prog, i)
			}
		case ']':
			if m.Tape[m.Ptr] != 0 {
				i = matchBackward(prog, i)
			}
		}
	}
	return nil
}

// read consumes one input byte for the `,` instruction according to the
// configured input mode.
func (m *Machine) read() byte {
	if m.cfg.RealtimeInput {
		b, err := m.Con.ReadKey()
		if err != nil {
			panic(BadInput)
		}
		return b
	}
	line, err := m.Con.ReadLine()
	if err != nil {
		panic(BadInput)
	}
	if m.cfg.BinaryInput {
		s := strings.TrimSpace(line)
		v, err := strconv.ParseUint(s, 16, 8)
		if len(s) != 2 || err != nil {
			panic(BadInput)
		}
		return byte(v)
	}
	if len(line) == 0 {
		return 0
	}
	return line[0]
}

// matchForward returns the index of the loop-end matching the
// loop-start at open. Matching is computed by scanning rightward with a
// depth counter rather than from a precomputed table.
func matchForward(prog []byte, open int) int {
	depth := 1
	for j := open + 1; j < len(prog); j++ {
		switch prog[j] {
		case '[':
			depth++
		case ']':
			if depth--; depth == 0 {
				return j
			}
		}
	}
	panic(Unbalanced)
}

// matchBackward returns the index of the loop-start matching the
// loop-end at close.
func matchBackward(prog []byte, close int) int {
	depth := 1
	for j := close - 1; j >= 0; j-- {
		switch prog[j] {
		case ']':
			depth++
		case '[':
			if depth--; depth == 0 {
				return j
			}
		}
	}
	panic(Unbalanced)
}

// reset returns the machine to its idle state: tape zeroed, pointer at
// zero.
func (m *Machine) reset() {
	for i := range m.Tape {
		m.Tape[i] = 0
	}
	m.Ptr = 0
}

func filter(src []byte) []byte {
	prog := make([]byte, 0, len(src))
	for _, c := range src {
		switch c {
		case '<', '>', ',', '.', '[', ']', '+', '-':
			prog = append(prog, c)
		}
	}
	return prog
}

// FaultError is returned by Execute if execution is halted by a fault
// condition.
type FaultError struct {
	FaultCode
	Instr byte // instruction being executed, 0 if none
	Pos   int  // index into the executed token sequence
	Ptr   int  // pointer value when the fault was raised
}

func (e FaultError) Error() string {
	if e.Instr == 0 {
		return e.FaultCode.String()
	}
	return fmt.Sprintf("%s executing %c at %d (pointer %d)", e.FaultCode, e.Instr, e.Pos, e.Ptr)
}

// FaultCode signifies the type of condition that halted execution.
type FaultCode byte

const (
	Underflow  FaultCode = iota // pointer moved below zero without wrap
	Overflow                    // pointer moved past the last cell without wrap
	Unbalanced                  // bracket scan ran past the program bounds
	BadInput                    // malformed hexadecimal input or input stream failure
	BadTape                     // machine constructed with a non-positive tape size
)

func (c FaultCode) String() string {
	if s, ok := map[FaultCode]string{
		Underflow:  "pointer underflow",
		Overflow:   "pointer overflow",
		Unbalanced: "unbalanced brackets",
		BadInput:   "invalid input",
		BadTape:    "invalid tape size",
	}[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown (%.2x)", byte(c))
}
