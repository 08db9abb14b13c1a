package cmdargs

import (
	"iter"
	"os"
	"slices"
	"strings"
)

// Source provides raw command line arguments. The program name should not be included
type Source interface {
	RawArgs() []string
}

// Slice is a Source over already split arguments
type Slice []string

func (s Slice) RawArgs() []string {
	return s
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func() []string

func (f SourceFunc) RawArgs() []string {
	return f()
}

// Split returns a Source splitting s around each instance of sep.
// As with strings.Split, adjacent separators produce empty values
func Split(s, sep string) Source {
	return SourceFunc(func() []string {
		if s == "" {
			return nil
		}
		return strings.Split(s, sep)
	})
}

// Fields returns a Source splitting s around runs of white space
func Fields(s string) Source {
	return SourceFunc(func() []string {
		return strings.Fields(s)
	})
}

// Seq returns a Source collecting all strings yielded by seq
func Seq(seq iter.Seq[string]) Source {
	return SourceFunc(func() []string {
		return slices.Collect(seq)
	})
}

// OSArgs returns a Source over the process arguments with the program name skipped
func OSArgs() Source {
	return SourceFunc(func() []string {
		if len(os.Args) < 2 {
			return nil
		}
		return os.Args[1:]
	})
}
