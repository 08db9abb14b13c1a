package argsext

import (
	"github.com/cardinalby/go-args-ext/cmdargs"
)

// Parse drives fn over the process arguments (os.Args without the program name)
func Parse[T any](state *T, fn Func[T], opts ...Option) error {
	return WithArgs(cmdargs.OSArgs(), state, fn, opts...)
}
