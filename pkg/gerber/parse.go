package gerber

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseError reports that the Gerber source could not be read.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("gerber: read source: %v", e.Err)
	}
	return fmt.Sprintf("gerber: read %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser turns Gerber text into commands. The zero value is ready to use.
type Parser struct {
	// OnSkip, if set, is called for each non-blank, non-comment line that
	// no recognizer accepted. lineNo is 1-based.
	OnSkip func(lineNo int, line string)
}

// Parse parses Gerber text with a zero Parser.
func Parse(text string) ([]Command, error) {
	var p Parser
	return p.Parse(text)
}

// ParseReader parses Gerber text from r with a zero Parser.
func ParseReader(r io.Reader) ([]Command, error) {
	var p Parser
	return p.ParseReader(r, "")
}

// ParseFile reads and parses the Gerber file at path with a zero Parser.
func ParseFile(path string) ([]Command, error) {
	var p Parser
	return p.ParseFile(path)
}

// Parse parses Gerber text. It only fails if the text cannot be read, which
// for an in-memory string never happens.
func (p *Parser) Parse(text string) ([]Command, error) {
	return p.ParseReader(strings.NewReader(text), "")
}

// ParseFile reads and parses the Gerber file at path.
func (p *Parser) ParseFile(path string) ([]Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	defer f.Close()
	return p.ParseReader(f, path)
}

// ParseReader parses Gerber text from r. source names r in errors.
func (p *Parser) ParseReader(r io.Reader, source string) ([]Command, error) {
	var commands []Command
	st := InitialState()

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &ParseError{Source: source, Err: err}
		}
		if raw == "" && err == io.EOF {
			break
		}
		lineNo++
		line := strings.TrimSpace(raw)
		if line != "" && !strings.HasPrefix(line, "G04") {
			next, cmd, ok := Step(st, line)
			st = next
			if ok {
				commands = append(commands, cmd)
			} else if p.OnSkip != nil {
				p.OnSkip(lineNo, line)
			}
		}
		if err == io.EOF {
			break
		}
	}
	return commands, nil
}
