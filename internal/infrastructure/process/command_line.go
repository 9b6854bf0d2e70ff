package process

import (
	"fmt"
	"strings"

	"github.com/google/shlex"

	"github.com/czokomaster/czokomaster/internal/core/domain"
)

// ParseCommandLine splits line the way a POSIX shell would, honouring quotes,
// so "pip install 'a b'" keeps 'a b' as one argument.
func ParseCommandLine(line string) (domain.Command, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return domain.Command{}, fmt.Errorf("failed to tokenize %q: %w", line, err)
	}
	return domain.NewCommandFromTokens(tokens)
}

// JoinCommandLine is the inverse of ParseCommandLine: every argument that
// needs it is double quoted.
func JoinCommandLine(args ...string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, quoteArg(arg))
	}
	return strings.Join(quoted, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.IndexFunc(arg, needsQuoting) < 0 {
		return arg
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("-_./=:@%+,", r):
		return false
	default:
		return true
	}
}
