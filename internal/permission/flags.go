// Package permission decodes runtime permission flags from task
// command lines.
package permission

import "strings"

// Kind is a permission category.
type Kind string

// Permission kinds, in canonical order.
const (
	Read    Kind = "read"
	Write   Kind = "write"
	Import  Kind = "import"
	Env     Kind = "env"
	Net     Kind = "net"
	Run     Kind = "run"
	FFI     Kind = "ffi"
	Sys     Kind = "sys"
	Scripts Kind = "scripts"
)

// Kinds lists every kind that can be granted with an --allow-* flag.
var Kinds = []Kind{Read, Write, Import, Env, Net, Run, FFI, Sys, Scripts}

// byShortName maps short flag letters to kinds. run, ffi and scripts
// have no short form.
var byShortName = map[byte]Kind{
	'R': Read,
	'W': Write,
	'I': Import,
	'E': Env,
	'N': Net,
	'S': Sys,
}

const (
	allowPrefix   = "--allow-"
	allowAllLong  = "--allow-all"
	allowAllShort = 'A'
	noLockFlag    = "--no-lock"
)

// Flag returns the long flag granting k, e.g. "--allow-net".
func (k Kind) Flag() string {
	return allowPrefix + string(k)
}

// IsAllowAllFlag reports whether arg grants every permission: the long
// form --allow-all or -A, alone or inside a short cluster such as -rAq.
// Letters after '=' in a cluster are a value and are not inspected.
func IsAllowAllFlag(arg string) bool {
	if arg == allowAllLong || arg == "-A" {
		return true
	}
	if !isShortCluster(arg) {
		return false
	}
	for i := 1; i < len(arg) && arg[i] != '='; i++ {
		if arg[i] == allowAllShort {
			return true
		}
	}
	return false
}

// IsNoLockFlag reports whether arg disables the lockfile.
func IsNoLockFlag(arg string) bool {
	return arg == noLockFlag
}

// FindLaxFlags returns the kinds granted by args without an allow list,
// in the order they are first seen. A flag carries an allow list when it
// has a non-empty "=value" suffix; a short cluster with such a suffix is
// exempt as a whole, so "-RE=foo" reports nothing.
func FindLaxFlags(args []string) []Kind {
	var found []Kind
	add := func(k Kind) {
		for _, f := range found {
			if f == k {
				return
			}
		}
		found = append(found, k)
	}

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, allowPrefix):
			flag, list, _ := strings.Cut(arg, "=")
			if list != "" {
				continue
			}
			for _, k := range Kinds {
				if flag == k.Flag() {
					add(k)
					break
				}
			}
		case isShortCluster(arg):
			flag, list, _ := strings.Cut(arg, "=")
			if list != "" {
				continue
			}
			for i := 1; i < len(flag); i++ {
				if k, ok := byShortName[flag[i]]; ok {
					add(k)
				}
			}
		}
	}
	return found
}

func isShortCluster(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] != '-'
}
