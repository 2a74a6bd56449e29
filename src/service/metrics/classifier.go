package metrics

import (
	"srcmetrics/src/model"
	"srcmetrics/src/service/lexer"
)

// keywordMetrics maps reserved keyword spellings to their metric
var keywordMetrics = map[string]model.MetricType{
	"bool":      model.MetricKeywordBool,
	"char":      model.MetricKeywordChar,
	"double":    model.MetricKeywordDouble,
	"float":     model.MetricKeywordFloat,
	"int":       model.MetricKeywordInt,
	"long":      model.MetricKeywordLong,
	"short":     model.MetricKeywordShort,
	"signed":    model.MetricKeywordSigned,
	"unsigned":  model.MetricKeywordUnsigned,
	"void":      model.MetricKeywordVoid,
	"const":     model.MetricKeywordConst,
	"friend":    model.MetricKeywordFriend,
	"volatile":  model.MetricKeywordVolatile,
	"extern":    model.MetricKeywordExtern,
	"inline":    model.MetricKeywordInline,
	"register":  model.MetricKeywordRegister,
	"static":    model.MetricKeywordStatic,
	"typedef":   model.MetricKeywordTypedef,
	"virtual":   model.MetricKeywordVirtual,
	"mutable":   model.MetricKeywordMutable,
	"auto":      model.MetricKeywordAuto,
	"asm":       model.MetricKeywordAsm,
	"break":     model.MetricKeywordBreak,
	"case":      model.MetricKeywordCase,
	"class":     model.MetricKeywordClass,
	"continue":  model.MetricKeywordContinue,
	"default":   model.MetricKeywordDefault,
	"delete":    model.MetricKeywordDelete,
	"do":        model.MetricKeywordDo,
	"else":      model.MetricKeywordElse,
	"enum":      model.MetricKeywordEnum,
	"for":       model.MetricKeywordFor,
	"goto":      model.MetricKeywordGoto,
	"if":        model.MetricKeywordIf,
	"new":       model.MetricKeywordNew,
	"operator":  model.MetricKeywordOperator,
	"private":   model.MetricKeywordPrivate,
	"protected": model.MetricKeywordProtected,
	"public":    model.MetricKeywordPublic,
	"return":    model.MetricKeywordReturn,
	"sizeof":    model.MetricKeywordSizeof,
	"struct":    model.MetricKeywordStruct,
	"switch":    model.MetricKeywordSwitch,
	"this":      model.MetricKeywordThis,
	"union":     model.MetricKeywordUnion,
	"while":     model.MetricKeywordWhile,
	"namespace": model.MetricKeywordNamespace,
	"using":     model.MetricKeywordUsing,
	"try":       model.MetricKeywordTry,
	"catch":     model.MetricKeywordCatch,
	"throw":     model.MetricKeywordThrow,
	"typeid":    model.MetricKeywordTypeid,
	"template":  model.MetricKeywordTemplate,
	"explicit":  model.MetricKeywordExplicit,
	"true":      model.MetricKeywordTrue,
	"false":     model.MetricKeywordFalse,
	"typename":  model.MetricKeywordTypename,
}

// kindMetrics maps punctuator kinds to their metric. Kinds missing here
// (semicolons, comments, char constants, preprocessor hashes) are not counted.
var kindMetrics = map[lexer.Kind]model.MetricType{
	lexer.KindExclaim:             model.MetricOpNot,
	lexer.KindExclaimEqual:        model.MetricOpNot,
	lexer.KindPercent:             model.MetricOpModulo,
	lexer.KindPercentEqual:        model.MetricOpModuloAssign,
	lexer.KindAmp:                 model.MetricOpAmp,
	lexer.KindAmpAmp:              model.MetricOpAmpAmp,
	lexer.KindPipePipe:            model.MetricOpPipePipe,
	lexer.KindAmpEqual:            model.MetricOpAndAssign,
	lexer.KindLParen:              model.MetricOpLParen,
	lexer.KindRParen:              model.MetricOpRParen,
	lexer.KindStar:                model.MetricOpAsterisk,
	lexer.KindStarEqual:           model.MetricOpAsteriskAssign,
	lexer.KindPlus:                model.MetricOpPlus,
	lexer.KindPlusPlus:            model.MetricOpPlusPlus,
	lexer.KindPlusEqual:           model.MetricOpPlusAssign,
	lexer.KindComma:               model.MetricOpComma,
	lexer.KindMinus:               model.MetricOpMinus,
	lexer.KindMinusMinus:          model.MetricOpMinusMinus,
	lexer.KindMinusEqual:          model.MetricOpMinusAssign,
	lexer.KindArrow:               model.MetricOpMemberPointer,
	lexer.KindPeriod:              model.MetricOpMemberRef,
	lexer.KindEllipsis:            model.MetricOpEllipsis,
	lexer.KindSlash:               model.MetricOpSlash,
	lexer.KindSlashEqual:          model.MetricOpSlashAssign,
	lexer.KindColon:               model.MetricOpColon,
	lexer.KindColonColon:          model.MetricOpColonColon,
	lexer.KindLess:                model.MetricOpLess,
	lexer.KindLessLess:            model.MetricOpLessLess,
	lexer.KindLessLessEqual:       model.MetricOpLessLessAssign,
	lexer.KindLessEqual:           model.MetricOpLessEqual,
	lexer.KindEqual:               model.MetricOpAssign,
	lexer.KindEqualEqual:          model.MetricOpComparison,
	lexer.KindGreater:             model.MetricOpMore,
	lexer.KindGreaterEqual:        model.MetricOpMoreEqual,
	lexer.KindGreaterGreater:      model.MetricOpMoreMore,
	lexer.KindGreaterGreaterEqual: model.MetricOpMoreMoreAssign,
	lexer.KindQuestion:            model.MetricOpQuestion,
	lexer.KindLSquare:             model.MetricOpLSquare,
	lexer.KindRSquare:             model.MetricOpRSquare,
	lexer.KindCaret:               model.MetricOpCaret,
	lexer.KindCaretEqual:          model.MetricOpCaretAssign,
	lexer.KindLBrace:              model.MetricOpLBrace,
	lexer.KindRBrace:              model.MetricOpRBrace,
	lexer.KindPipe:                model.MetricOpPipe,
	lexer.KindPipeEqual:           model.MetricOpPipeAssign,
	lexer.KindTilde:               model.MetricOpTilde,
}

// IsKeyword reports whether text is one of the reserved keywords
func IsKeyword(text string) bool {
	_, ok := keywordMetrics[text]
	return ok
}

// Accumulators collects the distinct identifier, numeric and string texts
// of the function currently being processed.
type Accumulators struct {
	identifiers map[string]struct{}
	numerics    map[string]struct{}
	strings     map[string]struct{}
}

// NewAccumulators creates empty accumulators
func NewAccumulators() *Accumulators {
	return &Accumulators{
		identifiers: make(map[string]struct{}),
		numerics:    make(map[string]struct{}),
		strings:     make(map[string]struct{}),
	}
}

// Sizes returns the current identifier, numeric and string cardinalities
func (a *Accumulators) Sizes() (identifiers, numerics, strings int) {
	return len(a.identifiers), len(a.numerics), len(a.strings)
}

// Drain commits the cardinalities into the unique metrics of u and empties
// the accumulators.
func (a *Accumulators) Drain(u *model.Unit) {
	u.Set(model.MetricNumericConstantsUnique, len(a.numerics))
	u.Set(model.MetricStringLiteralsUnique, len(a.strings))
	u.Set(model.MetricIdentifiersUnique, len(a.identifiers))
	clear(a.numerics)
	clear(a.strings)
	clear(a.identifiers)
}

// Classify maps tok to a metric and increments it on unit. When unit is a
// function, literal and identifier texts are also recorded in acc. The
// second result is false for kinds that have no metric.
func Classify(tok lexer.Token, unit *model.Unit, acc *Accumulators) (model.MetricType, bool) {
	switch tok.Kind {
	case lexer.KindRawIdentifier:
		if m, ok := keywordMetrics[tok.Text]; ok {
			unit.Increment(m)
			return m, true
		}
		if unit.IsFunctionScope() {
			acc.identifiers[tok.Text] = struct{}{}
		}
		unit.Increment(model.MetricIdentifiers)
		return model.MetricIdentifiers, true

	case lexer.KindNumericConstant:
		if unit.IsFunctionScope() {
			acc.numerics[tok.Text] = struct{}{}
		}
		unit.Increment(model.MetricNumericConstants)
		return model.MetricNumericConstants, true

	case lexer.KindStringLiteral:
		if unit.IsFunctionScope() {
			acc.strings[tok.Text] = struct{}{}
		}
		unit.Increment(model.MetricStringLiterals)
		return model.MetricStringLiterals, true
	}

	if m, ok := kindMetrics[tok.Kind]; ok {
		unit.Increment(m)
		return m, true
	}
	return 0, false
}
