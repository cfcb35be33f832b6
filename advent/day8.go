package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kr/pretty"
)

func init() {
	register("8", day8)
}

func day8(lines []string) (int64, error) {
	prog, err := parseProgram(lines)
	if err != nil {
		return 0, err
	}
	debugf("program: %# v", pretty.Formatter(prog))
	st, err := runUntilLoop(prog)
	if err != nil {
		return 0, err
	}
	debugf("visit order: %v; loops back to %d", st.order, st.pc)
	return st.acc, nil
}

type opcode int

const (
	opAcc opcode = iota
	opJmp
	opNop
)

var mnemonics = map[string]opcode{
	"acc": opAcc,
	"jmp": opJmp,
	"nop": opNop,
}

func (op opcode) String() string {
	switch op {
	case opAcc:
		return "acc"
	case opJmp:
		return "jmp"
	case opNop:
		return "nop"
	}
	return fmt.Sprintf("opcode(%d)", int(op))
}

type instruction struct {
	op  opcode
	arg int64
}

func (insn instruction) String() string {
	return fmt.Sprintf("%s %+d", insn.op, insn.arg)
}

var (
	errInvalidInstruction = errors.New("invalid instruction")
	errOutOfBounds        = errors.New("instruction pointer out of bounds")
)

func parseInstruction(s string) (instruction, error) {
	var insn instruction
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return insn, fmt.Errorf("malformed instruction %q", s)
	}
	op, ok := mnemonics[parts[0]]
	if !ok {
		return insn, fmt.Errorf("%w %q", errInvalidInstruction, s)
	}
	arg, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return insn, fmt.Errorf("bad argument in %q: %s", s, err)
	}
	insn.op = op
	insn.arg = arg
	return insn, nil
}

func parseProgram(lines []string) ([]instruction, error) {
	prog := make([]instruction, 0, len(lines))
	for i, line := range lines {
		insn, err := parseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		prog = append(prog, insn)
	}
	return prog, nil
}

// bootState is the machine state between two steps. The visited set has
// one entry per instruction and is shared by states derived from the same
// initial state.
type bootState struct {
	pc      int
	acc     int64
	visited []bool
	order   []int // pointers in execution order
}

func newBootState(n int) bootState {
	return bootState{visited: make([]bool, n)}
}

// step executes the instruction at st.pc and returns the resulting state.
// The caller must ensure st.pc is in range.
func step(prog []instruction, st bootState) bootState {
	insn := prog[st.pc]
	st.visited[st.pc] = true
	st.order = append(st.order, st.pc)
	switch insn.op {
	case opAcc:
		st.acc += insn.arg
		st.pc++
	case opJmp:
		st.pc += int(insn.arg)
	case opNop:
		st.pc++
	default:
		panic("unhandled " + insn.op.String())
	}
	return st
}

// runUntilLoop runs prog from the start until it is about to execute some
// instruction a second time and returns the state at that moment.
// Leaving the program, including by stepping just past its end, is an
// error.
func runUntilLoop(prog []instruction) (bootState, error) {
	st := newBootState(len(prog))
	for {
		if st.pc < 0 || st.pc >= len(prog) {
			return st, fmt.Errorf("%w: pointer %d after %d steps (program has %d instructions)",
				errOutOfBounds, st.pc, len(st.order), len(prog))
		}
		if st.visited[st.pc] {
			return st, nil
		}
		st = step(prog, st)
	}
}
