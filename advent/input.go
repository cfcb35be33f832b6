package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// inputSource says where a solution's puzzle input comes from.
// Precedence: interactive prompt, explicit file, <dir>/<day>.txt, stdin.
type inputSource struct {
	interactive bool
	file        string
	dir         string
	day         int
}

func (s inputSource) readLines() ([]string, error) {
	if s.interactive {
		return promptLines()
	}
	name := s.file
	if name == "" && s.dir != "" {
		p := filepath.Join(s.dir, fmt.Sprintf("%d.txt", s.day))
		if _, err := os.Stat(p); err == nil {
			name = p
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if name == "" {
		return readLines(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

// readLines returns the non-blank lines of r with surrounding whitespace
// removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func promptLines() ([]string, error) {
	var history string
	if dir, err := os.UserCacheDir(); err == nil {
		history = filepath.Join(dir, "advent2020-history.txt")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: history,
	})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	var lines []string
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return lines, nil
		default:
			return nil, err
		}
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
}
