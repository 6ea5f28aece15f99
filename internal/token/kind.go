package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Newline separates logical lines at the current indentation level.
	Newline
	// Indent opens an indentation block.
	Indent
	// Dedent closes an indentation block.
	Dedent

	// Ident represents an identifier token.
	Ident
	// PrivateName represents a #name class-private identifier.
	PrivateName

	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwUnless represents the 'unless' keyword.
	KwUnless // unless
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwUntil represents the 'until' keyword.
	KwUntil // until
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwOf represents the 'of' keyword.
	KwOf // of
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwWhen represents the 'when' case keyword.
	KwWhen // when
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwYield represents the 'yield' keyword.
	KwYield // yield
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwNot represents the 'not' word operator (emitted as '!').
	KwNot // not
	// KwAnd represents the 'and' word operator (emitted as '&&').
	KwAnd // and
	// KwOr represents the 'or' word operator (emitted as '||').
	KwOr // or
	// KwIs represents the 'is' word operator (emitted as '===').
	KwIs // is
	// KwIsnt represents the 'isnt' word operator (emitted as '!==').
	KwIsnt // isnt

	// Num represents any numeric literal (integer, float, exponent, bigint).
	Num
	// Str represents a plain string literal without interpolation.
	Str
	// TemplateOpen opens an interpolated string up to the first `${`.
	TemplateOpen
	// TemplateMid continues an interpolated string between interpolations.
	TemplateMid
	// TemplateClose ends an interpolated string after the last interpolation.
	TemplateClose
	// Regex represents a regular-expression literal.
	Regex
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwUndefined represents the 'undefined' keyword.
	KwUndefined // undefined

	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// StarStar represents '**'.
	StarStar // **
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Assign represents '='.
	Assign // =
	// PlusAssign represents '+='.
	PlusAssign // +=
	// MinusAssign represents '-='.
	MinusAssign // -=
	// StarAssign represents '*='.
	StarAssign // *=
	// SlashAssign represents '/='.
	SlashAssign // /=
	// PercentAssign represents '%='.
	PercentAssign // %=
	// AndAndAssign represents '&&='.
	AndAndAssign // &&=
	// OrOrAssign represents '||='.
	OrOrAssign // ||=
	// QQAssign represents '??='.
	QQAssign // ??=
	// EqEq represents '=='.
	EqEq // ==
	// BangEq represents '!='.
	BangEq // !=
	// EqEqEq represents '==='.
	EqEqEq // ===
	// BangEqEq represents '!=='.
	BangEqEq // !==
	// Lt represents '<'.
	Lt // <
	// LtEq represents '<='.
	LtEq // <=
	// Gt represents '>'.
	Gt // >
	// GtEq represents '>='.
	GtEq // >=
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||
	// QQ represents '??'.
	QQ // ??
	// Bang represents '!'.
	Bang // !
	// Amp represents '&'.
	Amp // &
	// Pipe represents '|'.
	Pipe // |
	// Caret represents '^'.
	Caret // ^
	// Tilde represents '~'.
	Tilde // ~
	// Shl represents '<<'.
	Shl // <<
	// Shr represents '>>'.
	Shr // >>
	// UShr represents '>>>'.
	UShr // >>>
	// PipeGt represents the pipe operator '|>'.
	PipeGt // |>
	// Question represents '?'.
	Question // ?
	// QDot represents '?.'.
	QDot // ?.
	// QLParen represents '?(' (optional call shorthand).
	QLParen // ?(
	// QLBracket represents '?[' (optional index shorthand).
	QLBracket // ?[
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// DotDot represents the inclusive range operator '..'.
	DotDot // ..
	// DotDotDot represents spread/rest or the exclusive range operator '...'.
	DotDotDot // ...
	// Arrow represents '->'.
	Arrow // ->
	// FatArrow represents '=>'.
	FatArrow // =>
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// At represents the this-shorthand '@' (emitted as 'this.').
	At // @
	// InterpOpen opens an interpolation fragment inside a string.
	InterpOpen // ${
	// InterpClose closes an interpolation fragment.
	InterpClose // }

	// JSXText represents raw text between JSX tags.
	JSXText
	// LtSlash represents '</' inside JSX.
	LtSlash // </
	// SlashGt represents '/>' inside JSX.
	SlashGt // />
)

// String returns a short human-readable name for the kind, for diagnostics
// and the tokenize debug command.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

var kindNames = [...]string{
	Invalid: "Invalid", EOF: "EOF",
	Newline: "Newline", Indent: "Indent", Dedent: "Dedent",
	Ident: "Ident", PrivateName: "PrivateName",
	KwIf: "if", KwUnless: "unless", KwElse: "else", KwThen: "then",
	KwWhile: "while", KwUntil: "until", KwLoop: "loop", KwFor: "for",
	KwIn: "in", KwOf: "of", KwSwitch: "switch", KwWhen: "when",
	KwBreak: "break", KwContinue: "continue",
	KwReturn: "return", KwThrow: "throw", KwTry: "try", KwCatch: "catch",
	KwFinally: "finally", KwFunction: "function", KwClass: "class",
	KwExtends: "extends", KwStatic: "static", KwNew: "new",
	KwDelete: "delete", KwTypeof: "typeof", KwInstanceof: "instanceof",
	KwImport: "import", KwExport: "export", KwFrom: "from", KwAs: "as",
	KwDefault: "default", KwLet: "let", KwConst: "const", KwVar: "var",
	KwThis: "this", KwAwait: "await", KwYield: "yield", KwAsync: "async",
	KwDo: "do", KwNot: "not", KwAnd: "and", KwOr: "or", KwIs: "is",
	KwIsnt: "isnt",
	Num:  "Num", Str: "Str", TemplateOpen: "TemplateOpen",
	TemplateMid: "TemplateMid", TemplateClose: "TemplateClose",
	Regex: "Regex", KwTrue: "true", KwFalse: "false", KwNull: "null",
	KwUndefined: "undefined",
	Plus:        "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/",
	Percent: "%", Assign: "=", PlusAssign: "+=", MinusAssign: "-=",
	StarAssign: "*=", SlashAssign: "/=", PercentAssign: "%=",
	AndAndAssign: "&&=", OrOrAssign: "||=", QQAssign: "??=",
	EqEq: "==", BangEq: "!=", EqEqEq: "===", BangEqEq: "!==",
	Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=", AndAnd: "&&", OrOr: "||",
	QQ: "??", Bang: "!", Amp: "&", Pipe: "|", Caret: "^", Tilde: "~",
	Shl: "<<", Shr: ">>", UShr: ">>>", PipeGt: "|>",
	Question: "?", QDot: "?.", QLParen: "?(", QLBracket: "?[",
	Colon: ":", Semicolon: ";", Comma: ",", Dot: ".", DotDot: "..",
	DotDotDot: "...", Arrow: "->", FatArrow: "=>",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]", At: "@",
	InterpOpen: "${", InterpClose: "}",
	JSXText: "JSXText", LtSlash: "</", SlashGt: "/>",
}
