package report

import "strings"

const (
	duplicatesHeader = "Duplicates -------"
	similarHeader    = "Similar ----------"
)

// Text renders r as plain text: a duplicates section then a similarity
// section, each key followed by its folder names indented two spaces.
func Text(r Report, colorize bool) string {
	var b strings.Builder

	b.WriteString(header(duplicatesHeader, colorize))
	b.WriteByte('\n')
	for _, group := range r.Duplicates {
		writeGroup(&b, group.Key, group.RawNames)
	}
	b.WriteByte('\n')

	b.WriteString(header(similarHeader, colorize))
	b.WriteByte('\n')
	for _, group := range r.Similar {
		names := make([]string, 0, len(group.Entries))
		for _, entry := range group.Entries {
			names = append(names, entry.RawName)
		}
		writeGroup(&b, group.Key, names)
	}
	b.WriteByte('\n')

	return b.String()
}

func writeGroup(b *strings.Builder, key string, names []string) {
	b.WriteString(key)
	b.WriteString(":\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteByte('\n')
	}
}
