package argsext

import (
	"flag"
	"fmt"
	"os"

	"github.com/cardinalby/go-args-ext/cmdargs"
	"github.com/cardinalby/go-args-ext/stdutil"
)

type flagSetState struct {
	fls        *flag.FlagSet
	formal     stdutil.FormalFlagNames
	positional []string
}

var osExit = os.Exit

// ParseFlagSet sets flags defined in `fls` from the tokens of `src`.
// Unlike fls.Parse(), short clusters are supported: "-bn x" sets bool flag "b" and then "n" to "x".
// Because of that, flags with multi-letter names must be passed with "--": "--count 3".
// "-count 3" is the cluster c, o, u, n, t and fails with unknown argument "-c".
// Short and long tokens are looked up by the same name. Bool flags never consume a value.
// Values not consumed by flags are returned as positional args in the original order.
//
// Errors are handled according to fls.ErrorHandling(), as fls.Parse() does:
// with ExitOnError the error is printed to fls.Output() and the process exits with code 2,
// with PanicOnError it panics with the error. Usage is not printed.
func ParseFlagSet(fls *flag.FlagSet, src cmdargs.Source, opts ...Option) (positional []string, err error) {
	state := flagSetState{
		fls:    fls,
		formal: stdutil.GetFormalFlagNames(fls),
	}
	if err = WithArgs(src, &state, applyFlagSetToken, opts...); err != nil {
		switch fls.ErrorHandling() {
		case flag.ExitOnError:
			fmt.Fprintln(fls.Output(), err)
			osExit(2)
		case flag.PanicOnError:
			panic(err)
		}
	}
	return state.positional, err
}

func applyFlagSetToken(cur *cmdargs.Cursor, state *flagSetState, token cmdargs.Token) error {
	if token.IsValue() {
		state.positional = append(state.positional, token.Qualifier())
		return nil
	}
	isBool, known := state.formal[token.Qualifier()]
	if !known {
		return NewUnknownArgumentError(token)
	}
	value := "true"
	if !isBool {
		var err error
		if value, err = cur.EnforceNextValue(token); err != nil {
			return err
		}
	}
	if err := state.fls.Set(token.Qualifier(), value); err != nil {
		return fmt.Errorf("invalid value %q for flag %s: %w", value, token, err)
	}
	return nil
}
