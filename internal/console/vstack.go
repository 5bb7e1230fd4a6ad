package console

import (
	"strings"
	"unicode/utf8"
)

const vstackSeparator = "    |    "

// VStack lays two blocks of text side by side, padding the left
// block to its widest line. Lines of the longer block that have no
// partner are dropped.
func VStack(s1, s2 string) string {
	lines1 := strings.Split(s1, "\n")
	lines2 := strings.Split(s2, "\n")

	maxLen := 0
	for _, line := range lines1 {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	var sb strings.Builder
	for i := 0; i < min(len(lines1), len(lines2)); i++ {
		sb.WriteString(lines1[i])
		sb.WriteString(strings.Repeat(" ", maxLen-utf8.RuneCountInString(lines1[i])))
		sb.WriteString(vstackSeparator)
		sb.WriteString(lines2[i])
		sb.WriteByte('\n')
	}
	return sb.String()
}
