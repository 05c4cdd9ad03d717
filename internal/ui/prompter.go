// Package ui covers terminal input and output for the dashboards: prompts,
// form validation, and table rendering. Input and output streams are
// injected so dashboard flows can be driven from tests.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	done    bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompter) Out() io.Writer {
	return p.out
}

// Done reports that input is exhausted; prompts will keep returning blanks.
func (p *Prompter) Done() bool {
	return p.done
}

func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Ask reads one trimmed line. Returns "" on end of input.
func (p *Prompter) Ask(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.scanner.Scan() {
		p.done = true
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}

// AskDefault is Ask with a fallback for blank input.
func (p *Prompter) AskDefault(label, fallback string) string {
	fmt.Fprintf(p.out, "%s [%s]: ", label, fallback)
	if !p.scanner.Scan() {
		p.done = true
		return fallback
	}
	answer := strings.TrimSpace(p.scanner.Text())
	if answer == "" {
		return fallback
	}
	return answer
}

// AskInt reads an integer; blank or unparsable input takes the fallback.
func (p *Prompter) AskInt(label string, fallback int) int {
	answer := p.AskDefault(label, strconv.Itoa(fallback))
	value, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintf(p.out, "not a number, using %d\n", fallback)
		return fallback
	}
	return value
}

func (p *Prompter) Confirm(label string) bool {
	answer := strings.ToLower(p.Ask(label + " (y/N)"))
	return answer == "y" || answer == "yes"
}

// ReadCommand prompts for the next dashboard command and splits it into a
// verb and arguments. ok is false once input is exhausted.
func (p *Prompter) ReadCommand() (verb string, args []string, ok bool) {
	fmt.Fprint(p.out, "> ")
	if !p.scanner.Scan() {
		p.done = true
		return "", nil, false
	}
	fields := strings.Fields(p.scanner.Text())
	if len(fields) == 0 {
		return "", nil, true
	}
	return strings.ToLower(fields[0]), fields[1:], true
}
