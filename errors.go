package argsext

import (
	"errors"
	"fmt"

	"github.com/cardinalby/go-args-ext/cmdargs"
)

var ErrUnknownArgument = errors.New("unknown argument")

// UnknownArgumentError can be returned by Func for tokens it doesn't recognize
type UnknownArgumentError struct {
	Token cmdargs.Token
}

func NewUnknownArgumentError(token cmdargs.Token) *UnknownArgumentError {
	return &UnknownArgumentError{Token: token}
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument %q", e.Token.String())
}

func (e *UnknownArgumentError) Is(target error) bool {
	return target == ErrUnknownArgument
}
