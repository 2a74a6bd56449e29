package lexer

import "srcmetrics/src/model"

// Kind is the lexical category of a token
type Kind int

const (
	KindEOF Kind = iota
	KindUnknown
	KindComment
	KindRawIdentifier
	KindNumericConstant
	KindStringLiteral
	KindCharConstant

	KindLSquare       // [
	KindRSquare       // ]
	KindLParen        // (
	KindRParen        // )
	KindLBrace        // {
	KindRBrace        // }
	KindPeriod        // .
	KindEllipsis      // ...
	KindAmp           // &
	KindAmpAmp        // &&
	KindAmpEqual      // &=
	KindStar          // *
	KindStarEqual     // *=
	KindPlus          // +
	KindPlusPlus      // ++
	KindPlusEqual     // +=
	KindMinus         // -
	KindArrow         // ->
	KindMinusMinus    // --
	KindMinusEqual    // -=
	KindTilde         // ~
	KindExclaim       // !
	KindExclaimEqual  // !=
	KindSlash         // /
	KindSlashEqual    // /=
	KindPercent       // %
	KindPercentEqual  // %=
	KindLess          // <
	KindLessLess      // <<
	KindLessEqual     // <=
	KindLessLessEqual // <<=
	KindSpaceship     // <=>
	KindGreater       // >
	KindGreaterGreater
	KindGreaterEqual
	KindGreaterGreaterEqual
	KindCaret      // ^
	KindCaretEqual // ^=
	KindPipe       // |
	KindPipePipe   // ||
	KindPipeEqual  // |=
	KindQuestion   // ?
	KindColon      // :
	KindColonColon // ::
	KindSemi       // ;
	KindEqual      // =
	KindEqualEqual // ==
	KindComma      // ,
	KindHash       // #
	KindHashHash   // ##
	KindPeriodStar // .*
	KindArrowStar  // ->*
)

var kindNames = map[Kind]string{
	KindEOF:                 "eof",
	KindUnknown:             "unknown",
	KindComment:             "comment",
	KindRawIdentifier:       "raw_identifier",
	KindNumericConstant:     "numeric_constant",
	KindStringLiteral:       "string_literal",
	KindCharConstant:        "char_constant",
	KindLSquare:             "l_square",
	KindRSquare:             "r_square",
	KindLParen:              "l_paren",
	KindRParen:              "r_paren",
	KindLBrace:              "l_brace",
	KindRBrace:              "r_brace",
	KindPeriod:              "period",
	KindEllipsis:            "ellipsis",
	KindAmp:                 "amp",
	KindAmpAmp:              "ampamp",
	KindAmpEqual:            "ampequal",
	KindStar:                "star",
	KindStarEqual:           "starequal",
	KindPlus:                "plus",
	KindPlusPlus:            "plusplus",
	KindPlusEqual:           "plusequal",
	KindMinus:               "minus",
	KindArrow:               "arrow",
	KindMinusMinus:          "minusminus",
	KindMinusEqual:          "minusequal",
	KindTilde:               "tilde",
	KindExclaim:             "exclaim",
	KindExclaimEqual:        "exclaimequal",
	KindSlash:               "slash",
	KindSlashEqual:          "slashequal",
	KindPercent:             "percent",
	KindPercentEqual:        "percentequal",
	KindLess:                "less",
	KindLessLess:            "lessless",
	KindLessEqual:           "lessequal",
	KindLessLessEqual:       "lesslessequal",
	KindSpaceship:           "spaceship",
	KindGreater:             "greater",
	KindGreaterGreater:      "greatergreater",
	KindGreaterEqual:        "greaterequal",
	KindGreaterGreaterEqual: "greatergreaterequal",
	KindCaret:               "caret",
	KindCaretEqual:          "caretequal",
	KindPipe:                "pipe",
	KindPipePipe:            "pipepipe",
	KindPipeEqual:           "pipeequal",
	KindQuestion:            "question",
	KindColon:               "colon",
	KindColonColon:          "coloncolon",
	KindSemi:                "semi",
	KindEqual:               "equal",
	KindEqualEqual:          "equalequal",
	KindComma:               "comma",
	KindHash:                "hash",
	KindHashHash:            "hashhash",
	KindPeriodStar:          "periodstar",
	KindArrowStar:           "arrowstar",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is one lexical element. Text holds the exact source spelling.
type Token struct {
	Kind Kind
	Text string
	Pos  model.Position
}

// Is reports whether the token has the given kind
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}
