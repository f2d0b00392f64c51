package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// ErrInterrupted is returned by Run when the user aborts the prompt with Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// commands are the words offered on Tab.
var commands = []string{"defined", "exit"}

// completeCommand returns the commands starting with line.
func completeCommand(line string) []string {
	if line == "" {
		return nil
	}
	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, line) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// lineReader reads one line per prompt, io.EOF once the input is exhausted.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// scanReader reads plain lines, used for non terminal input.
type scanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newScanReader(in io.Reader, out io.Writer) *scanReader {
	return &scanReader{scanner: bufio.NewScanner(in), out: out}
}

func (s *scanReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (*scanReader) Close() error { return nil }

// termReader edits lines on the terminal, with history and command
// completion.
type termReader struct {
	state *liner.State
}

func newTermReader() *termReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(completeCommand)
	return &termReader{state: state}
}

func (t *termReader) ReadLine(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		t.state.AppendHistory(line)
	}
	return line, nil
}

func (t *termReader) Close() error { return t.state.Close() }
