package stdutil

import "flag"

type boolFlag interface {
	IsBoolFlag() bool
}

// FormalFlagNames is a map where key is a flag name and value indicates it's a bool flag
type FormalFlagNames map[string]bool

// IsBoolFlag reports whether the flag doesn't need a value, as flag.FlagSet.Parse() treats it
func IsBoolFlag(f *flag.Flag) bool {
	if bf, ok := f.Value.(boolFlag); ok {
		return bf.IsBoolFlag()
	}
	return false
}

// GetFormalFlagNames returns all flags defined in flagSet, whether they were set or not
func GetFormalFlagNames(flagSet *flag.FlagSet) FormalFlagNames {
	flags := make(FormalFlagNames)
	flagSet.VisitAll(func(f *flag.Flag) {
		flags[f.Name] = IsBoolFlag(f)
	})
	return flags
}
