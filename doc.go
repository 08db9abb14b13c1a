/*
Package argsext drives user code over tokenized command line arguments.

Arguments are split into tokens by cmdargs.Tokenize: "--name" becomes a long flag,
"-abc" becomes three short flags "a", "b", "c" and everything else is a value.
Drive calls a callback for every token. The callback gets the Cursor over the
remaining tokens, so a flag that requires a value takes it from the cursor itself:

	type options struct {
		name    string
		verbose bool
	}

	func apply(cur *cmdargs.Cursor, opts *options, token cmdargs.Token) error {
		switch token.Qualifier() {
		case "n", "name":
			name, err := cur.EnforceNextValue(token)
			if err != nil {
				return err
			}
			opts.name = name
		case "b", "verbose":
			opts.verbose = true
		default:
			return argsext.NewUnknownArgumentError(token)
		}
		return nil
	}

	var opts options
	err := argsext.Parse(&opts, apply)

The first error returned by the callback stops the iteration and is returned as is.
Changes the callback has already made to the state are kept, so a callback should
assign a field only after EnforceNextValue succeeded.
*/
package argsext
