// Package input reads line-oriented puzzle input.
//
// Lines are returned without their terminators ("\n" or "\r\n"). Trailing
// blank lines are dropped so that a final newline in the file does not
// produce an empty row; blank lines in the middle are kept.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNilReader is returned when Lines is called with a nil reader.
var ErrNilReader = errors.New("input: reader is nil")

// maxLine bounds a single line; puzzle rows are far shorter.
const maxLine = 1 << 20

// ReadLines opens the file at path and returns its lines.
// Errors from os.Open are wrapped, so errors.Is(err, fs.ErrNotExist) works.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %q: %w", path, err)
	}
	defer f.Close()

	lines, err := Lines(f)
	if err != nil {
		return nil, fmt.Errorf("input: read %q: %w", path, err)
	}

	return lines, nil
}

// Lines scans r to EOF and returns every line.
func Lines(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}
