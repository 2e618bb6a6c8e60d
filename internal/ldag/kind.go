package ldag

import "fmt"

// KindTag distinguishes the two node variants.
type KindTag int

const (
	// KindOperator marks an operator application such as '+' or '*'.
	KindOperator KindTag = iota
	// KindOperand marks a leaf operand reference such as 'A'.
	KindOperand
)

// String returns the lower-case name used in tree description files.
func (t KindTag) String() string {
	switch t {
	case KindOperator:
		return "operator"
	case KindOperand:
		return "operand"
	default:
		return fmt.Sprintf("KindTag(%d)", int(t))
	}
}

// ParseKindTag maps "operator" or "operand" to its tag.
func ParseKindTag(s string) (KindTag, error) {
	switch s {
	case "operator":
		return KindOperator, nil
	case "operand":
		return KindOperand, nil
	default:
		return 0, fmt.Errorf("unknown node kind %q: must be 'operator' or 'operand'", s)
	}
}

// Kind is the variant of a node together with its symbol. Exactly one variant
// is active at a time, so the symbol always belongs to that variant.
type Kind struct {
	tag    KindTag
	symbol string
}

// NewKind returns the variant selected by tag with the given symbol.
func NewKind(tag KindTag, symbol string) Kind {
	return Kind{tag: tag, symbol: symbol}
}

// OperatorKind returns an operator variant with the given symbol.
func OperatorKind(symbol string) Kind {
	return Kind{tag: KindOperator, symbol: symbol}
}

// OperandKind returns an operand variant with the given symbol.
func OperandKind(symbol string) Kind {
	return Kind{tag: KindOperand, symbol: symbol}
}

// Tag reports which variant is active.
func (k Kind) Tag() KindTag { return k.tag }

// Symbol returns the symbol of the active variant.
func (k Kind) Symbol() string { return k.symbol }

// IsOperator reports whether k is an operator application.
func (k Kind) IsOperator() bool { return k.tag == KindOperator }

// IsOperand reports whether k is an operand reference.
func (k Kind) IsOperand() bool { return k.tag == KindOperand }

func (k Kind) String() string {
	return k.tag.String() + "(" + k.symbol + ")"
}
