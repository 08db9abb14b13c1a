package cmdargs

import (
	"strings"
	"unicode/utf8"
)

// Tokenize splits raw args (without the program name) into tokens.
//
//   - "--name" gives a single KindLong token "name". "--" gives KindLong with empty qualifier
//   - "-abc" gives KindShort tokens "a", "b", "c", one per rune (or per byte of invalid UTF-8). "-" gives no tokens at all
//   - anything else gives a KindValue token with the arg unchanged
//
// Positions are assigned over the flattened sequence.
func Tokenize(args []string) []Token {
	tokens := make([]Token, 0, len(args))
	for _, arg := range args {
		tokens = appendArgTokens(tokens, arg)
	}
	for i := range tokens {
		tokens[i].position = i
		tokens[i].total = len(tokens)
	}
	return tokens
}

// TokenizeSource is Tokenize over the args provided by src
func TokenizeSource(src Source) []Token {
	return Tokenize(src.RawArgs())
}

func appendArgTokens(tokens []Token, arg string) []Token {
	if name, isLong := strings.CutPrefix(arg, "--"); isLong {
		return append(tokens, Token{kind: KindLong, qualifier: name})
	}
	if cluster, isShort := strings.CutPrefix(arg, "-"); isShort {
		// each invalid UTF-8 byte is a separate token, qualifiers are substrings of arg
		for len(cluster) > 0 {
			_, size := utf8.DecodeRuneInString(cluster)
			tokens = append(tokens, Token{kind: KindShort, qualifier: cluster[:size]})
			cluster = cluster[size:]
		}
		return tokens
	}
	return append(tokens, Token{kind: KindValue, qualifier: arg})
}
