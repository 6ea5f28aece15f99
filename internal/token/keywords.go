package token

var keywords = map[string]Kind{
	"if":         KwIf,
	"unless":     KwUnless,
	"else":       KwElse,
	"then":       KwThen,
	"while":      KwWhile,
	"until":      KwUntil,
	"loop":       KwLoop,
	"for":        KwFor,
	"in":         KwIn,
	"of":         KwOf,
	"switch":     KwSwitch,
	"when":       KwWhen,
	"break":      KwBreak,
	"continue":   KwContinue,
	"return":     KwReturn,
	"throw":      KwThrow,
	"try":        KwTry,
	"catch":      KwCatch,
	"finally":    KwFinally,
	"function":   KwFunction,
	"class":      KwClass,
	"extends":    KwExtends,
	"static":     KwStatic,
	"new":        KwNew,
	"delete":     KwDelete,
	"typeof":     KwTypeof,
	"instanceof": KwInstanceof,
	"import":     KwImport,
	"export":     KwExport,
	"from":       KwFrom,
	"as":         KwAs,
	"default":    KwDefault,
	"let":        KwLet,
	"const":      KwConst,
	"var":        KwVar,
	"this":       KwThis,
	"await":      KwAwait,
	"yield":      KwYield,
	"async":      KwAsync,
	"do":         KwDo,
	"not":        KwNot,
	"and":        KwAnd,
	"or":         KwOr,
	"is":         KwIs,
	"isnt":       KwIsnt,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"undefined":  KwUndefined,
}

// LookupKeyword maps an identifier spelling to its keyword kind, if any.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// wordOperators maps word-operator kinds to their ECMAScript spellings.
var wordOperators = map[Kind]string{
	KwNot:  "!",
	KwAnd:  "&&",
	KwOr:   "||",
	KwIs:   "===",
	KwIsnt: "!==",
}

// WordOperatorText returns the output spelling for word operators
// ('and' => '&&') and ok=false for everything else.
func WordOperatorText(k Kind) (string, bool) {
	s, ok := wordOperators[k]
	return s, ok
}
