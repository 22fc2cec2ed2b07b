package command

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	prefixTitle       = "t/"
	prefixDescription = "d/"
)

// ParseAddLog parses "INDEX t/TITLE [d/DESCRIPTION]" where INDEX is the
// 1-based position shown to the user.
func ParseAddLog(args string) (*AddLogCommand, error) {
	preamble, fields := tokenize(args, prefixTitle, prefixDescription)

	index, err := strconv.Atoi(preamble)
	if err != nil || index <= 0 {
		return nil, usageError()
	}

	descriptor, err := descriptorFromFields(fields)
	if err != nil {
		return nil, err
	}
	return NewAddLogByIndex(index-1, descriptor), nil
}

// ParseAddLogByName parses "t/TITLE [d/DESCRIPTION]" for the friend called name.
func ParseAddLogByName(name, args string) (*AddLogCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, usageError()
	}
	descriptor, err := ParseAddLogDescriptor(args)
	if err != nil {
		return nil, err
	}
	return NewAddLogByName(name, descriptor), nil
}

// ParseAddLogDescriptor parses "t/TITLE [d/DESCRIPTION]" with no preamble.
func ParseAddLogDescriptor(args string) (AddLogDescriptor, error) {
	preamble, fields := tokenize(args, prefixTitle, prefixDescription)
	if preamble != "" {
		return AddLogDescriptor{}, usageError()
	}
	return descriptorFromFields(fields)
}

func descriptorFromFields(fields map[string]string) (AddLogDescriptor, error) {
	title, ok := fields[prefixTitle]
	if !ok || title == "" {
		return AddLogDescriptor{}, usageError()
	}

	var d AddLogDescriptor
	d.SetTitle(title)
	if desc, ok := fields[prefixDescription]; ok {
		d.SetDescription(desc)
	}
	if _, err := d.Log(); err != nil {
		return AddLogDescriptor{}, err
	}
	return d, nil
}

func usageError() error {
	return fmt.Errorf("%w\n%s", ErrInvalidCommandFormat, MessageAddLogUsage)
}

type prefixPosition struct {
	prefix string
	start  int
}

// tokenize splits args into the text before the first prefix and the value of
// each prefix. A prefix only counts at the start or after whitespace. When a
// prefix repeats, the last value wins.
func tokenize(args string, prefixes ...string) (string, map[string]string) {
	var positions []prefixPosition
	for _, prefix := range prefixes {
		from := 0
		for {
			i := strings.Index(args[from:], prefix)
			if i < 0 {
				break
			}
			at := from + i
			if at == 0 || args[at-1] == ' ' || args[at-1] == '\t' {
				positions = append(positions, prefixPosition{prefix: prefix, start: at})
			}
			from = at + len(prefix)
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	fields := make(map[string]string, len(positions))
	if len(positions) == 0 {
		return strings.TrimSpace(args), fields
	}

	preamble := strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		fields[pos.prefix] = strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
	}
	return preamble, fields
}
