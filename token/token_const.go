package token

const (
	Undetermined Token = iota

	Illegal
	Eof

	String
	Number
	RegExp

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd // &&
	LogicalOr  // ||
	Increment  // ++
	Decrement  // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Assign      // =
	Not         // !

	BitwiseNot // ~

	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?

	Identifier

	// Everything from Keyword on is a reserved word.
	Keyword
	Boolean
	Null

	If
	In
	Do

	Var
	For
	New
	Try

	This
	Else
	Case
	Void
	With

	While
	Break
	Catch
	Throw

	Return
	Typeof
	Delete
	Switch

	Default
	Finally

	Function
	Continue
	Debugger

	InstanceOf
)

var token2string = [...]string{
	Illegal:                  "Illegal",
	Eof:                      "Eof",
	Keyword:                  "Keyword",
	String:                   "String",
	Boolean:                  "Boolean",
	Null:                     "Null",
	Number:                   "Number",
	RegExp:                   "RegExp",
	Identifier:               "Identifier",
	Plus:                     "+",
	Minus:                    "-",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	Less:                     "<",
	Greater:                  ">",
	Assign:                   "=",
	Not:                      "!",
	BitwiseNot:               "~",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	If:                       "if",
	In:                       "in",
	Do:                       "do",
	Var:                      "var",
	For:                      "for",
	New:                      "new",
	Try:                      "try",
	This:                     "this",
	Else:                     "else",
	Case:                     "case",
	Void:                     "void",
	With:                     "with",
	While:                    "while",
	Break:                    "break",
	Catch:                    "catch",
	Throw:                    "throw",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Switch:                   "switch",
	Default:                  "default",
	Finally:                  "finally",
	Function:                 "function",
	Continue:                 "continue",
	Debugger:                 "debugger",
	InstanceOf:               "instanceof",
}

var keywordTable = map[string]keyword{
	"if":         {token: If},
	"in":         {token: In},
	"do":         {token: Do},
	"var":        {token: Var},
	"for":        {token: For},
	"new":        {token: New},
	"try":        {token: Try},
	"this":       {token: This},
	"else":       {token: Else},
	"case":       {token: Case},
	"void":       {token: Void},
	"with":       {token: With},
	"while":      {token: While},
	"break":      {token: Break},
	"catch":      {token: Catch},
	"throw":      {token: Throw},
	"return":     {token: Return},
	"typeof":     {token: Typeof},
	"delete":     {token: Delete},
	"switch":     {token: Switch},
	"default":    {token: Default},
	"finally":    {token: Finally},
	"function":   {token: Function},
	"continue":   {token: Continue},
	"debugger":   {token: Debugger},
	"instanceof": {token: InstanceOf},
	"false":      {token: Boolean},
	"true":       {token: Boolean},
	"null":       {token: Null},

	"class":   {token: Keyword, futureKeyword: true},
	"const":   {token: Keyword, futureKeyword: true},
	"enum":    {token: Keyword, futureKeyword: true},
	"export":  {token: Keyword, futureKeyword: true},
	"extends": {token: Keyword, futureKeyword: true},
	"import":  {token: Keyword, futureKeyword: true},
	"super":   {token: Keyword, futureKeyword: true},

	"implements": {token: Identifier, strict: true},
	"interface":  {token: Identifier, strict: true},
	"let":        {token: Identifier, strict: true},
	"package":    {token: Identifier, strict: true},
	"private":    {token: Identifier, strict: true},
	"protected":  {token: Identifier, strict: true},
	"public":     {token: Identifier, strict: true},
	"static":     {token: Identifier, strict: true},
	"yield":      {token: Identifier, strict: true},
}
