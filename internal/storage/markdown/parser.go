package markdown

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// Field is a single "- key: value" line within a section.
type Field struct {
	Key   string
	Value string
}

// Section groups the fields beneath one "## heading".
type Section struct {
	Heading string
	Fields  []Field
}

// Parser incrementally reads Markdown data files and emits sections as they are discovered.
type Parser struct {
	r        io.Reader
	scanner  *bufio.Scanner
	pending  *Section
	initDone bool
}

// NewParser returns a parser ready to tokenize Markdown from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: r}
}

// NextSection returns the next parsed Section, or io.EOF when the input is exhausted.
func (p *Parser) NextSection() (*Section, error) {
	if !p.initDone {
		if p.r == nil {
			return nil, io.EOF
		}
		p.scanner = bufio.NewScanner(p.r)
		p.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		p.initDone = true
	}

	section := p.pending
	p.pending = nil

	if section == nil {
		var err error
		section, err = p.consumeUntilSection()
		if err != nil {
			return nil, err
		}
		if section == nil {
			return nil, io.EOF
		}
	}

	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())
		if heading, ok := parseSectionHeading(line); ok {
			p.pending = &Section{Heading: heading}
			return section, nil
		}

		if field, ok := parseFieldLine(line); ok {
			section.Fields = append(section.Fields, field)
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	return section, nil
}

func (p *Parser) consumeUntilSection() (*Section, error) {
	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())
		if heading, ok := parseSectionHeading(line); ok {
			return &Section{Heading: heading}, nil
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

// Get returns the value of the first field named key.
func (s *Section) Get(key string) (string, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// All returns every value recorded under key, in file order.
func (s *Section) All(key string) []string {
	var values []string
	for _, f := range s.Fields {
		if f.Key == key {
			values = append(values, f.Value)
		}
	}
	return values
}

var fieldPattern = regexp.MustCompile(`^- ([a-z]+):(?: (.*))?$`)

func parseFieldLine(line string) (Field, bool) {
	matches := fieldPattern.FindStringSubmatch(line)
	if matches == nil {
		return Field{}, false
	}
	return Field{Key: matches[1], Value: strings.TrimSpace(matches[2])}, true
}

func parseSectionHeading(line string) (string, bool) {
	if !strings.HasPrefix(line, "## ") {
		return "", false
	}
	heading := strings.TrimSpace(line[3:])
	if heading == "" {
		return "", false
	}
	return heading, true
}
