package main

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
)

var bootExample = []string{
	"nop +0",
	"acc +1",
	"jmp +4",
	"acc +3",
	"jmp -3",
	"acc -99",
	"acc +1",
	"jmp -4",
	"acc +6",
}

func TestParseInstruction(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want instruction
	}{
		{"nop +0", instruction{opNop, 0}},
		{"acc +7", instruction{opAcc, 7}},
		{"jmp -20", instruction{opJmp, -20}},
		{"acc 3", instruction{opAcc, 3}},
		{"jmp\t+2", instruction{opJmp, 2}},
	} {
		got, err := parseInstruction(tt.s)
		if err != nil {
			t.Errorf("parseInstruction(%q): %s", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseInstruction(%q): got %s; want %s", tt.s, got, tt.want)
		}
	}
}

func TestParseInstructionErrors(t *testing.T) {
	for _, tt := range []struct {
		s       string
		invalid bool
	}{
		{"mul +3", true},
		{"ACC +1", true},
		{"acc", false},
		{"acc +1 +2", false},
		{"acc one", false},
		{"jmp ++1", false},
		{"", false},
	} {
		_, err := parseInstruction(tt.s)
		if err == nil {
			t.Errorf("parseInstruction(%q): got nil error", tt.s)
			continue
		}
		if got := errors.Is(err, errInvalidInstruction); got != tt.invalid {
			t.Errorf("parseInstruction(%q): errors.Is(%q, errInvalidInstruction) = %t; want %t",
				tt.s, err, got, tt.invalid)
		}
	}
}

func TestParseProgram(t *testing.T) {
	got, err := parseProgram(bootExample[:3])
	if err != nil {
		t.Fatal(err)
	}
	want := []instruction{{opNop, 0}, {opAcc, 1}, {opJmp, 4}}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("program differs from expected:\n%s", diff)
	}

	_, err = parseProgram([]string{"nop +0", "hcf +1"})
	if !errors.Is(err, errInvalidInstruction) {
		t.Errorf("got error %v; want errInvalidInstruction", err)
	}
}

func TestRunUntilLoop(t *testing.T) {
	prog, err := parseProgram(bootExample)
	if err != nil {
		t.Fatal(err)
	}
	st, err := runUntilLoop(prog)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(5); st.acc != want {
		t.Errorf("got acc %d; want %d", st.acc, want)
	}
	if want := 1; st.pc != want {
		t.Errorf("loop detected at pointer %d; want %d", st.pc, want)
	}
	if diff := pretty.Diff(st.order, []int{0, 1, 2, 6, 7, 3, 4}); len(diff) > 0 {
		t.Errorf("visit order differs from expected:\n%s", diff)
	}
}

func TestDay8(t *testing.T) {
	got, err := day8(bootExample)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(5); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestRunUntilLoopOutOfBounds(t *testing.T) {
	for _, lines := range [][]string{
		nil,
		{"nop +0", "acc +1"},
		{"acc +1", "jmp -2"},
		{"jmp +5", "nop +0"},
	} {
		prog, err := parseProgram(lines)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := runUntilLoop(prog); !errors.Is(err, errOutOfBounds) {
			t.Errorf("runUntilLoop(%q): got error %v; want errOutOfBounds", lines, err)
		}
	}
}

func TestSelfLoop(t *testing.T) {
	prog, err := parseProgram([]string{"acc -3", "jmp +0"})
	if err != nil {
		t.Fatal(err)
	}
	st, err := runUntilLoop(prog)
	if err != nil {
		t.Fatal(err)
	}
	if st.acc != -3 || st.pc != 1 {
		t.Errorf("got acc=%d pc=%d; want acc=-3 pc=1", st.acc, st.pc)
	}
}

func TestStepGrowsVisited(t *testing.T) {
	prog, err := parseProgram(bootExample)
	if err != nil {
		t.Fatal(err)
	}
	st := newBootState(len(prog))
	for n := 1; !st.visited[st.pc]; n++ {
		st = step(prog, st)
		var visited int
		for _, v := range st.visited {
			if v {
				visited++
			}
		}
		if visited != n {
			t.Fatalf("after %d steps, %d instructions visited", n, visited)
		}
		if len(st.order) != n {
			t.Fatalf("after %d steps, order has %d entries", n, len(st.order))
		}
	}
}
