// Package console reads the numeric run parameters from an interactive
// terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInput reports missing or non-numeric input.
var ErrInput = errors.New("error reading input")

const (
	// ReadError is printed before exiting on ErrInput.
	ReadError = "Error reading input"
	// PointsPrompt asks for the grid dimension.
	PointsPrompt = "Enter the number of points in each dimension, currently %d"
	// StepsPrompt asks for the number of time steps.
	StepsPrompt = "Enter the number of time steps, currently %d"
)

// Prompter writes prompts to out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter constructs a Prompter over the provided streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Int prints the prompt (formatted with def) and parses one integer answer.
// A blank line keeps def; end of input or a non-numeric answer is ErrInput.
func (p *Prompter) Int(prompt string, def int) (int, error) {
	fmt.Fprintf(p.out, prompt+"\n", def)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInput, err)
		}
		return 0, fmt.Errorf("%w: end of input", ErrInput)
	}
	line := strings.TrimSpace(p.in.Text())
	if line == "" {
		return def, nil
	}
	fields := strings.Fields(line)
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInput, fields[0])
	}
	return v, nil
}
