package permission

import (
	"strings"

	"github.com/google/shlex"
)

// SplitCommand tokenizes a task command the way a POSIX shell would.
// Commands with unbalanced quotes fall back to whitespace splitting so a
// malformed task is still inspected.
func SplitCommand(command string) []string {
	args, err := shlex.Split(command)
	if err != nil {
		return strings.Fields(command)
	}
	return args
}
