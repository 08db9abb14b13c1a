package cmdargs

type Kind int

const (
	KindShort Kind = iota + 1
	KindLong
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindShort:
		return "short"
	case KindLong:
		return "long"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Token is a single classified unit of the command line.
// Tokens are produced by Tokenize and never change afterwards.
type Token struct {
	kind      Kind
	qualifier string
	position  int
	total     int
}

func (t Token) Kind() Kind {
	return t.kind
}

// Qualifier returns the flag name for Short and Long tokens and the raw string for Value tokens
func (t Token) Qualifier() string {
	return t.qualifier
}

func (t Token) IsShort() bool {
	return t.kind == KindShort
}

func (t Token) IsLong() bool {
	return t.kind == KindLong
}

func (t Token) IsValue() bool {
	return t.kind == KindValue
}

// IsFlag reports whether the token is either Short or Long
func (t Token) IsFlag() bool {
	return t.kind == KindShort || t.kind == KindLong
}

// Position is a zero-based index of the token in the whole tokenized sequence
func (t Token) Position() int {
	return t.position
}

// TotalCount is the number of tokens in the sequence the token belongs to
func (t Token) TotalCount() int {
	return t.total
}

func (t Token) FromFirst() int {
	return t.position
}

// FromLast returns 0 for the last token of the sequence
func (t Token) FromLast() int {
	return t.total - 1 - t.position
}

func (t Token) IsFirst() bool {
	return t.position == 0
}

func (t Token) IsLast() bool {
	return t.FromLast() == 0
}

func (t Token) IsNFromFirst(n int) bool {
	return t.FromFirst() == n
}

func (t Token) IsNFromLast(n int) bool {
	return t.FromLast() == n
}

// String returns the display form of the token: "-a", "--name" or "value"
func (t Token) String() string {
	switch t.kind {
	case KindShort:
		return "-" + t.qualifier
	case KindLong:
		return "--" + t.qualifier
	default:
		return t.qualifier
	}
}
