package argsext

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardinalby/go-args-ext/cmdargs"
)

type testOptions struct {
	Name    string
	Value   string
	Verbose bool
}

func applyTestOption(cur *cmdargs.Cursor, opts *testOptions, token cmdargs.Token) error {
	var field *string
	switch token.Qualifier() {
	case "n", "name":
		field = &opts.Name
	case "v", "value":
		field = &opts.Value
	case "b", "verbose":
		opts.Verbose = true
		return nil
	default:
		return NewUnknownArgumentError(token)
	}
	value, err := cur.EnforceNextValue(token)
	if err != nil {
		return err
	}
	*field = value
	return nil
}

func TestWithArgs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		src      cmdargs.Source
		expected testOptions
	}{
		{
			name:     "separate flags",
			src:      cmdargs.Split("-n Something -v TheValue", " "),
			expected: testOptions{Name: "Something", Value: "TheValue"},
		},
		{
			name:     "cluster",
			src:      cmdargs.Slice{"-bn", "Something"},
			expected: testOptions{Name: "Something", Verbose: true},
		},
		{
			name:     "cluster and value",
			src:      cmdargs.Split("-bn Something -v TheValue", " "),
			expected: testOptions{Name: "Something", Value: "TheValue", Verbose: true},
		},
		{
			name:     "long flags",
			src:      cmdargs.Fields("--verbose --name N --value V"),
			expected: testOptions{Name: "N", Value: "V", Verbose: true},
		},
		{
			name:     "last wins",
			src:      cmdargs.Slice{"-n", "a", "--name", "b"},
			expected: testOptions{Name: "b"},
		},
		{
			name:     "empty",
			src:      cmdargs.Slice{},
			expected: testOptions{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var opts testOptions
			require.NoError(t, WithArgs(tc.src, &opts, applyTestOption))
			require.Equal(t, tc.expected, opts)
		})
	}
}

func TestWithArgsMissingValue(t *testing.T) {
	t.Parallel()

	var opts testOptions
	err := WithArgs(cmdargs.Slice{"-n", "Something", "-v"}, &opts, applyTestOption)
	require.ErrorIs(t, err, cmdargs.ErrMissingValue)
	require.EqualError(t, err, "argument -v requires a value")

	var missingErr *cmdargs.MissingValueError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "v", missingErr.Flag.Qualifier())
	require.True(t, missingErr.Flag.IsShort())

	// changes made before the failure are kept
	require.Equal(t, "Something", opts.Name)
}

func TestWithArgsMissingValueKeepsPreviousValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected testOptions
	}{
		{
			name:     "repeated flag at the end",
			args:     []string{"--name", "X", "-b", "--name"},
			expected: testOptions{Name: "X", Verbose: true},
		},
		{
			name:     "repeated flag followed by flag",
			args:     []string{"-n", "X", "-v", "V", "-nb"},
			expected: testOptions{Name: "X", Value: "V"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var opts testOptions
			err := WithArgs(cmdargs.Slice(tc.args), &opts, applyTestOption)
			require.ErrorIs(t, err, cmdargs.ErrMissingValue)
			require.Equal(t, tc.expected, opts)
		})
	}
}

func TestWithArgsUnknown(t *testing.T) {
	t.Parallel()

	var opts testOptions
	err := WithArgs(cmdargs.Slice{"-bx", "-n", "N"}, &opts, applyTestOption)
	require.ErrorIs(t, err, ErrUnknownArgument)
	require.EqualError(t, err, `unknown argument "-x"`)
	require.True(t, opts.Verbose)
	require.Empty(t, opts.Name, "iteration stops at the first error")
}

func TestDriveEmpty(t *testing.T) {
	t.Parallel()

	calls := 0
	var state struct{}
	err := Drive(nil, &state, func(*cmdargs.Cursor, *struct{}, cmdargs.Token) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Zero(t, calls)
}

func TestDriveVisitsUnconsumedTokens(t *testing.T) {
	t.Parallel()

	tokens := cmdargs.Tokenize([]string{"-ab", "x", "--c", "y", "z"})
	var visited []string
	err := Drive(tokens, &visited, func(cur *cmdargs.Cursor, visited *[]string, token cmdargs.Token) error {
		*visited = append(*visited, token.String())
		if token.Qualifier() == "c" {
			_, err := cur.EnforceNextValue(token)
			return err
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"-a", "-b", "x", "--c", "z"}, visited)
}

func TestDriveStopsOnError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")
	tokens := cmdargs.Tokenize([]string{"a", "b", "c"})
	var visited []string
	err := Drive(tokens, &visited, func(_ *cmdargs.Cursor, visited *[]string, token cmdargs.Token) error {
		*visited = append(*visited, token.Qualifier())
		if token.IsNFromFirst(1) {
			return errStop
		}
		return nil
	})
	require.Same(t, errStop, err)
	require.Equal(t, []string{"a", "b"}, visited)
}

func TestDriveLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var opts testOptions
	err := WithArgs(cmdargs.Slice{"-b", "--oops"}, &opts, applyTestOption, WithLogger(logger))
	require.Error(t, err)

	logs := buf.String()
	require.Contains(t, logs, "msg=token kind=short qualifier=b position=0")
	require.Contains(t, logs, "msg=\"callback failed\" token=--oops")
	require.NotContains(t, logs, "drive finished")

	buf.Reset()
	require.NoError(t, WithArgs(cmdargs.Slice{"-b"}, &opts, applyTestOption, WithLogger(logger)))
	require.Contains(t, buf.String(), "msg=\"drive finished\" processed=1 total=1")
}

func TestWithLoggerNil(t *testing.T) {
	t.Parallel()

	var opts testOptions
	require.NoError(t, WithArgs(cmdargs.Slice{"-b"}, &opts, applyTestOption, WithLogger(nil)))
	require.True(t, opts.Verbose)
}

// not parallel: modifies os.Args
func TestParse(t *testing.T) {
	saved := os.Args
	defer func() { os.Args = saved }()
	os.Args = []string{"prog", "-bn", "Something", "--value", "TheValue"}

	var opts testOptions
	require.NoError(t, Parse(&opts, applyTestOption))
	require.Equal(t, testOptions{Name: "Something", Value: "TheValue", Verbose: true}, opts)
}
