package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (fatal for the file)
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedRegex        Code = 1004
	LexBadNumber                Code = 1005
	LexUnmatchedDedent          Code = 1006
	LexBadIndentCharacter       Code = 1007
	LexBadRegex                 Code = 1008
	LexUnterminatedInterp       Code = 1009

	// Syntax (recoverable)
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectIdentifier     Code = 2002
	SynExpectExpression     Code = 2003
	SynUnclosedParen        Code = 2004
	SynUnclosedBrace        Code = 2005
	SynUnclosedBracket      Code = 2006
	SynCommaNotAllowed      Code = 2007
	SynExpectBlock          Code = 2008
	SynExpectModuleString   Code = 2009
	SynBadDestructuring     Code = 2010
	SynBadNumberProperty    Code = 2011
	SynUnclosedJSX          Code = 2012
	SynMismatchedJSXClose   Code = 2013
	SynBadSliceAssign       Code = 2014
	SynExpectCatchOrFinally Code = 2015

	// Advisory warnings
	WarnInfo             Code = 4000
	WarnUnknownDirective Code = 4001
	WarnLegacyBehavior   Code = 4002
	WarnMapLookupMiss    Code = 4003
	WarnBadRegex         Code = 4004
)

func (c Code) String() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 4000 && c < 5000:
		return fmt.Sprintf("WARN%04d", uint16(c))
	default:
		return fmt.Sprintf("ESP%04d", uint16(c))
	}
}

// Fatal reports whether a diagnostic code aborts compilation for the file.
func (c Code) Fatal() bool {
	return c >= 1000 && c < 2000
}
