package model

// MetricType identifies a single counter kept on every Unit
type MetricType int

// Reserved keyword metrics
const (
	MetricKeywordBool MetricType = iota
	MetricKeywordChar
	MetricKeywordDouble
	MetricKeywordFloat
	MetricKeywordInt
	MetricKeywordLong
	MetricKeywordShort
	MetricKeywordSigned
	MetricKeywordUnsigned
	MetricKeywordVoid
	MetricKeywordConst
	MetricKeywordFriend
	MetricKeywordVolatile
	MetricKeywordExtern
	MetricKeywordInline
	MetricKeywordRegister
	MetricKeywordStatic
	MetricKeywordTypedef
	MetricKeywordVirtual
	MetricKeywordMutable
	MetricKeywordAuto
	MetricKeywordAsm
	MetricKeywordBreak
	MetricKeywordCase
	MetricKeywordClass
	MetricKeywordContinue
	MetricKeywordDefault
	MetricKeywordDelete
	MetricKeywordDo
	MetricKeywordElse
	MetricKeywordEnum
	MetricKeywordFor
	MetricKeywordGoto
	MetricKeywordIf
	MetricKeywordNew
	MetricKeywordOperator
	MetricKeywordPrivate
	MetricKeywordProtected
	MetricKeywordPublic
	MetricKeywordReturn
	MetricKeywordSizeof
	MetricKeywordStruct
	MetricKeywordSwitch
	MetricKeywordThis
	MetricKeywordUnion
	MetricKeywordWhile
	MetricKeywordNamespace
	MetricKeywordUsing
	MetricKeywordTry
	MetricKeywordCatch
	MetricKeywordThrow
	MetricKeywordTypeid
	MetricKeywordTemplate
	MetricKeywordExplicit
	MetricKeywordTrue
	MetricKeywordFalse
	MetricKeywordTypename
)

// Operator and punctuator metrics
const (
	MetricOpNot MetricType = iota + MetricKeywordTypename + 1
	MetricOpModulo
	MetricOpModuloAssign
	MetricOpAmp
	MetricOpAmpAmp
	MetricOpPipePipe
	MetricOpAndAssign
	MetricOpLParen
	MetricOpRParen
	MetricOpAsterisk
	MetricOpAsteriskAssign
	MetricOpPlus
	MetricOpPlusPlus
	MetricOpPlusAssign
	MetricOpComma
	MetricOpMinus
	MetricOpMinusMinus
	MetricOpMinusAssign
	MetricOpMemberPointer
	MetricOpMemberRef
	MetricOpEllipsis
	MetricOpSlash
	MetricOpSlashAssign
	MetricOpColon
	MetricOpColonColon
	MetricOpLess
	MetricOpLessLess
	MetricOpLessLessAssign
	MetricOpLessEqual
	MetricOpAssign
	MetricOpComparison
	MetricOpMore
	MetricOpMoreEqual
	MetricOpMoreMore
	MetricOpMoreMoreAssign
	MetricOpQuestion
	MetricOpLSquare
	MetricOpRSquare
	MetricOpCaret
	MetricOpCaretAssign
	MetricOpLBrace
	MetricOpRBrace
	MetricOpPipe
	MetricOpPipeAssign
	MetricOpTilde
)

// Aggregate metrics
const (
	MetricNumericConstants MetricType = iota + MetricOpTilde + 1
	MetricNumericConstantsUnique
	MetricStringLiterals
	MetricStringLiteralsUnique
	MetricIdentifiers
	MetricIdentifiersUnique
	MetricLineCount

	// MetricCount is the number of metric types, not a metric itself
	MetricCount
)

type metricInfo struct {
	name        string
	description string
}

var metricInfos = [MetricCount]metricInfo{
	MetricKeywordBool:      {"keyword.bool", "occurrences of the bool keyword"},
	MetricKeywordChar:      {"keyword.char", "occurrences of the char keyword"},
	MetricKeywordDouble:    {"keyword.double", "occurrences of the double keyword"},
	MetricKeywordFloat:     {"keyword.float", "occurrences of the float keyword"},
	MetricKeywordInt:       {"keyword.int", "occurrences of the int keyword"},
	MetricKeywordLong:      {"keyword.long", "occurrences of the long keyword"},
	MetricKeywordShort:     {"keyword.short", "occurrences of the short keyword"},
	MetricKeywordSigned:    {"keyword.signed", "occurrences of the signed keyword"},
	MetricKeywordUnsigned:  {"keyword.unsigned", "occurrences of the unsigned keyword"},
	MetricKeywordVoid:      {"keyword.void", "occurrences of the void keyword"},
	MetricKeywordConst:     {"keyword.const", "occurrences of the const keyword"},
	MetricKeywordFriend:    {"keyword.friend", "occurrences of the friend keyword"},
	MetricKeywordVolatile:  {"keyword.volatile", "occurrences of the volatile keyword"},
	MetricKeywordExtern:    {"keyword.extern", "occurrences of the extern keyword"},
	MetricKeywordInline:    {"keyword.inline", "occurrences of the inline keyword"},
	MetricKeywordRegister:  {"keyword.register", "occurrences of the register keyword"},
	MetricKeywordStatic:    {"keyword.static", "occurrences of the static keyword"},
	MetricKeywordTypedef:   {"keyword.typedef", "occurrences of the typedef keyword"},
	MetricKeywordVirtual:   {"keyword.virtual", "occurrences of the virtual keyword"},
	MetricKeywordMutable:   {"keyword.mutable", "occurrences of the mutable keyword"},
	MetricKeywordAuto:      {"keyword.auto", "occurrences of the auto keyword"},
	MetricKeywordAsm:       {"keyword.asm", "occurrences of the asm keyword"},
	MetricKeywordBreak:     {"keyword.break", "occurrences of the break keyword"},
	MetricKeywordCase:      {"keyword.case", "occurrences of the case keyword"},
	MetricKeywordClass:     {"keyword.class", "occurrences of the class keyword"},
	MetricKeywordContinue:  {"keyword.continue", "occurrences of the continue keyword"},
	MetricKeywordDefault:   {"keyword.default", "occurrences of the default keyword"},
	MetricKeywordDelete:    {"keyword.delete", "occurrences of the delete keyword"},
	MetricKeywordDo:        {"keyword.do", "occurrences of the do keyword"},
	MetricKeywordElse:      {"keyword.else", "occurrences of the else keyword"},
	MetricKeywordEnum:      {"keyword.enum", "occurrences of the enum keyword"},
	MetricKeywordFor:       {"keyword.for", "occurrences of the for keyword"},
	MetricKeywordGoto:      {"keyword.goto", "occurrences of the goto keyword"},
	MetricKeywordIf:        {"keyword.if", "occurrences of the if keyword"},
	MetricKeywordNew:       {"keyword.new", "occurrences of the new keyword"},
	MetricKeywordOperator:  {"keyword.operator", "occurrences of the operator keyword"},
	MetricKeywordPrivate:   {"keyword.private", "occurrences of the private keyword"},
	MetricKeywordProtected: {"keyword.protected", "occurrences of the protected keyword"},
	MetricKeywordPublic:    {"keyword.public", "occurrences of the public keyword"},
	MetricKeywordReturn:    {"keyword.return", "occurrences of the return keyword"},
	MetricKeywordSizeof:    {"keyword.sizeof", "occurrences of the sizeof keyword"},
	MetricKeywordStruct:    {"keyword.struct", "occurrences of the struct keyword"},
	MetricKeywordSwitch:    {"keyword.switch", "occurrences of the switch keyword"},
	MetricKeywordThis:      {"keyword.this", "occurrences of the this keyword"},
	MetricKeywordUnion:     {"keyword.union", "occurrences of the union keyword"},
	MetricKeywordWhile:     {"keyword.while", "occurrences of the while keyword"},
	MetricKeywordNamespace: {"keyword.namespace", "occurrences of the namespace keyword"},
	MetricKeywordUsing:     {"keyword.using", "occurrences of the using keyword"},
	MetricKeywordTry:       {"keyword.try", "occurrences of the try keyword"},
	MetricKeywordCatch:     {"keyword.catch", "occurrences of the catch keyword"},
	MetricKeywordThrow:     {"keyword.throw", "occurrences of the throw keyword"},
	MetricKeywordTypeid:    {"keyword.typeid", "occurrences of the typeid keyword"},
	MetricKeywordTemplate:  {"keyword.template", "occurrences of the template keyword"},
	MetricKeywordExplicit:  {"keyword.explicit", "occurrences of the explicit keyword"},
	MetricKeywordTrue:      {"keyword.true", "occurrences of the true keyword"},
	MetricKeywordFalse:     {"keyword.false", "occurrences of the false keyword"},
	MetricKeywordTypename:  {"keyword.typename", "occurrences of the typename keyword"},

	MetricOpNot:            {"operator.not", "logical not (! and !=)"},
	MetricOpModulo:         {"operator.modulo", "%"},
	MetricOpModuloAssign:   {"operator.modulo_assign", "%="},
	MetricOpAmp:            {"operator.amp", "&"},
	MetricOpAmpAmp:         {"operator.ampamp", "&&"},
	MetricOpPipePipe:       {"operator.pipepipe", "||"},
	MetricOpAndAssign:      {"operator.and_assign", "&="},
	MetricOpLParen:         {"operator.lparen", "("},
	MetricOpRParen:         {"operator.rparen", ")"},
	MetricOpAsterisk:       {"operator.asterisk", "*"},
	MetricOpAsteriskAssign: {"operator.asterisk_assign", "*="},
	MetricOpPlus:           {"operator.plus", "+"},
	MetricOpPlusPlus:       {"operator.plusplus", "++"},
	MetricOpPlusAssign:     {"operator.plus_assign", "+="},
	MetricOpComma:          {"operator.comma", ","},
	MetricOpMinus:          {"operator.minus", "-"},
	MetricOpMinusMinus:     {"operator.minusminus", "--"},
	MetricOpMinusAssign:    {"operator.minus_assign", "-="},
	MetricOpMemberPointer:  {"operator.member_pointer", "->"},
	MetricOpMemberRef:      {"operator.member_ref", "."},
	MetricOpEllipsis:       {"operator.ellipsis", "..."},
	MetricOpSlash:          {"operator.slash", "/"},
	MetricOpSlashAssign:    {"operator.slash_assign", "/="},
	MetricOpColon:          {"operator.colon", ":"},
	MetricOpColonColon:     {"operator.coloncolon", "::"},
	MetricOpLess:           {"operator.less", "<"},
	MetricOpLessLess:       {"operator.lessless", "<<"},
	MetricOpLessLessAssign: {"operator.lessless_assign", "<<="},
	MetricOpLessEqual:      {"operator.less_equal", "<="},
	MetricOpAssign:         {"operator.assign", "="},
	MetricOpComparison:     {"operator.comparison", "=="},
	MetricOpMore:           {"operator.more", ">"},
	MetricOpMoreEqual:      {"operator.more_equal", ">="},
	MetricOpMoreMore:       {"operator.moremore", ">>"},
	MetricOpMoreMoreAssign: {"operator.moremore_assign", ">>="},
	MetricOpQuestion:       {"operator.question", "?"},
	MetricOpLSquare:        {"operator.lsquare", "["},
	MetricOpRSquare:        {"operator.rsquare", "]"},
	MetricOpCaret:          {"operator.caret", "^"},
	MetricOpCaretAssign:    {"operator.caret_assign", "^="},
	MetricOpLBrace:         {"operator.lbrace", "{"},
	MetricOpRBrace:         {"operator.rbrace", "}"},
	MetricOpPipe:           {"operator.pipe", "|"},
	MetricOpPipeAssign:     {"operator.pipe_assign", "|="},
	MetricOpTilde:          {"operator.tilde", "~"},

	MetricNumericConstants:       {"numeric_constants", "numeric literals"},
	MetricNumericConstantsUnique: {"numeric_constants.unique", "distinct numeric literals within a function"},
	MetricStringLiterals:         {"string_literals", "string literals"},
	MetricStringLiteralsUnique:   {"string_literals.unique", "distinct string literals within a function"},
	MetricIdentifiers:            {"identifiers", "identifiers that are not reserved keywords"},
	MetricIdentifiersUnique:      {"identifiers.unique", "distinct unreserved identifiers within a function"},
	MetricLineCount:              {"lines", "newline count of the file"},
}

var metricsByName = func() map[string]MetricType {
	m := make(map[string]MetricType, MetricCount)
	for i := MetricType(0); i < MetricCount; i++ {
		m[metricInfos[i].name] = i
	}
	return m
}()

// String returns the dotted metric name, e.g. "keyword.int"
func (m MetricType) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return metricInfos[m].name
}

// Description returns a short human readable description
func (m MetricType) Description() string {
	if !m.Valid() {
		return ""
	}
	return metricInfos[m].description
}

// Valid reports whether m is one of the defined metric types
func (m MetricType) Valid() bool {
	return m >= 0 && m < MetricCount
}

// IsUnique reports whether m is committed once per function at scope close
func (m MetricType) IsUnique() bool {
	switch m {
	case MetricNumericConstantsUnique, MetricStringLiteralsUnique, MetricIdentifiersUnique:
		return true
	}
	return false
}

// MetricByName looks up a metric by its dotted name
func MetricByName(name string) (MetricType, bool) {
	m, ok := metricsByName[name]
	return m, ok
}

// AllMetrics returns every metric type in declaration order
func AllMetrics() []MetricType {
	all := make([]MetricType, MetricCount)
	for i := range all {
		all[i] = MetricType(i)
	}
	return all
}
