package person

import (
	"fmt"
	"strings"
)

// Card renders the friend as a plain-text contact card, one field per line,
// followed by the numbered logs.
func (p Person) Card() string {
	var b strings.Builder
	b.WriteString(p.Name + "\n")

	for _, field := range []struct{ label, value string }{
		{"Phone", p.Phone},
		{"Email", p.Email},
		{"Address", p.Address},
		{"Description", p.Description},
	} {
		if field.value != "" {
			fmt.Fprintf(&b, "%s: %s\n", field.label, field.value)
		}
	}

	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: #%s\n", strings.Join(p.Tags, " #"))
	}

	if len(p.Logs) > 0 {
		b.WriteString("Logs:\n")
		for i, l := range p.Logs {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, l)
		}
	}

	return b.String()
}
