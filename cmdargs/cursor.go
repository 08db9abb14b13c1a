package cmdargs

// Cursor is a forward-only view over the tokens that were not consumed yet.
// It's not safe for concurrent use.
type Cursor struct {
	tokens []Token
	next   int
}

func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next consumes and returns the next token. ok is false if there are no tokens left
func (c *Cursor) Next() (token Token, ok bool) {
	token, ok = c.Peek()
	if ok {
		c.next++
	}
	return token, ok
}

// Peek returns the next token without consuming it
func (c *Cursor) Peek() (token Token, ok bool) {
	if c.next >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.next], true
}

func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.next
}

// Rest returns a copy of the remaining tokens. The cursor is not advanced
func (c *Cursor) Rest() []Token {
	return append([]Token(nil), c.tokens[c.next:]...)
}

// EnforceNextValue consumes the next token and returns its qualifier if it's a value.
// Otherwise, it returns MissingValueError naming the `flag` that requires the value.
// The consumed flag token (if any) is not put back
func (c *Cursor) EnforceNextValue(flag Token) (string, error) {
	next, ok := c.Next()
	if !ok {
		return "", &MissingValueError{Flag: flag}
	}
	if !next.IsValue() {
		return "", &MissingValueError{Flag: flag, Found: next, HasFound: true}
	}
	return next.Qualifier(), nil
}
