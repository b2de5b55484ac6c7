package imgraph

import (
	"fmt"
	"os"
)

// Debug enables diagnostic output on stderr. Off by default; intended for
// development, not end users.
var Debug bool

func debugf(format string, args ...any) {
	if !Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "imgraph: "+format+"\n", args...)
}
