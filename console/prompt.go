package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads answers line by line and writes prompts and results.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask prints question and returns the trimmed answer. It returns io.EOF once
// the input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Choose prints a numbered menu below title followed by a last entry named
// last, and returns the chosen index into options. ok is false when last was
// chosen; an answer outside the menu returns errInvalidChoice.
func (p *Prompter) Choose(title string, options []string, last string) (index int, ok bool, err error) {
	p.Printf("\n%s\n", title)
	for i, o := range options {
		p.Printf("%d. %s\n", i+1, o)
	}
	p.Printf("%d. %s\n", len(options)+1, last)

	answer, err := p.Ask("Sua escolha: ")
	if err != nil {
		return 0, false, err
	}

	n, convErr := strconv.Atoi(answer)
	if convErr != nil || n < 1 || n > len(options)+1 {
		return 0, false, errInvalidChoice
	}
	if n == len(options)+1 {
		return 0, false, nil
	}
	return n - 1, true, nil
}
