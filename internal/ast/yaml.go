package ast

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/loxexpr/internal/token"
)

// Expression trees have a YAML form with one single-key mapping per node:
//
//	binary:
//	  op: "+"
//	  left: {literal: 2}
//	  right: {grouping: {inner: {literal: 3}}}
//
// Composite nodes accept optional line and column keys. A literal is either
// a scalar or a mapping {value, line, column}.

const (
	keyLiteral  = "literal"
	keyGrouping = "grouping"
	keyUnary    = "unary"
	keyBinary   = "binary"
	keyTernary  = "ternary"
)

// DecodeError reports a malformed tree document.
type DecodeError struct {
	Line    int
	Column  int
	Message string
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("yaml %d:%d: %s", e.Line, e.Column, e.Message)
	}
	return "yaml: " + e.Message
}

func decodeErr(n *yaml.Node, format string, a ...interface{}) error {
	return &DecodeError{Line: n.Line, Column: n.Column, Message: fmt.Sprintf(format, a...)}
}

// DecodeYAML parses a single expression tree document.
func DecodeYAML(src []byte) (Expr, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("decode expression: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &DecodeError{Message: "empty document"}
	}
	return DecodeNode(doc.Content[0])
}

// DecodeNode converts an already parsed YAML node into an expression tree.
func DecodeNode(n *yaml.Node) (Expr, error) {
	if n == nil {
		return nil, &DecodeError{Message: "missing expression"}
	}
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, decodeErr(n, "expression must be a mapping with exactly one node key")
	}

	key, body := n.Content[0], n.Content[1]
	switch key.Value {
	case keyLiteral:
		return decodeLiteral(body)
	case keyGrouping:
		return decodeGrouping(body)
	case keyUnary:
		return decodeUnary(body)
	case keyBinary:
		return decodeBinary(body)
	case keyTernary:
		return decodeTernary(body)
	default:
		return nil, decodeErr(key, "unknown node kind %q", key.Value)
	}
}

// fields indexes a mapping body, rejecting keys outside allowed.
func fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, decodeErr(n, "expected a mapping")
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		ok := false
		for _, a := range allowed {
			if k.Value == a {
				ok = true
				break
			}
		}
		if !ok {
			return nil, decodeErr(k, "unexpected key %q", k.Value)
		}
		if _, dup := out[k.Value]; dup {
			return nil, decodeErr(k, "duplicate key %q", k.Value)
		}
		out[k.Value] = n.Content[i+1]
	}
	return out, nil
}

func position(f map[string]*yaml.Node) (line, column int, err error) {
	if n, ok := f["line"]; ok {
		if err := n.Decode(&line); err != nil {
			return 0, 0, decodeErr(n, "line must be an integer")
		}
	}
	if n, ok := f["column"]; ok {
		if err := n.Decode(&column); err != nil {
			return 0, 0, decodeErr(n, "column must be an integer")
		}
	}
	return line, column, nil
}

func child(parent *yaml.Node, f map[string]*yaml.Node, name string) (Expr, error) {
	n, ok := f[name]
	if !ok {
		return nil, decodeErr(parent, "missing %q", name)
	}
	return DecodeNode(n)
}

func operator(parent *yaml.Node, f map[string]*yaml.Node) (token.TokenType, error) {
	n, ok := f["op"]
	if !ok {
		return token.ILLEGAL, decodeErr(parent, "missing \"op\"")
	}
	tt := token.LookupOperator(n.Value)
	if tt == token.ILLEGAL {
		return tt, decodeErr(n, "unknown operator %q", n.Value)
	}
	return tt, nil
}

func decodeLiteral(n *yaml.Node) (Expr, error) {
	line, column := 0, 0
	valueNode := n
	if n.Kind == yaml.MappingNode {
		f, err := fields(n, "value", "line", "column")
		if err != nil {
			return nil, err
		}
		if line, column, err = position(f); err != nil {
			return nil, err
		}
		v, ok := f["value"]
		if !ok {
			return nil, decodeErr(n, "missing \"value\"")
		}
		valueNode = v
	}

	value, err := scalar(valueNode)
	if err != nil {
		return nil, err
	}
	lit := NewLiteral(value)
	lit.Token.Line, lit.Token.Column = line, column
	return lit, nil
}

func scalar(n *yaml.Node) (interface{}, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, decodeErr(n, "literal must be a scalar")
	}
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, decodeErr(n, "invalid boolean %q", n.Value)
		}
		return b, nil
	case "!!int":
		// yaml.v3 resolves hex, octal and binary forms as !!int.
		var i int64
		if err := n.Decode(&i); err == nil {
			return float64(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return float64(u), nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, decodeErr(n, "invalid number %q", n.Value)
		}
		return f, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, decodeErr(n, "invalid number %q", n.Value)
		}
		return f, nil
	case "!!str":
		return n.Value, nil
	default:
		return nil, decodeErr(n, "unsupported literal tag %s", n.ShortTag())
	}
}

func decodeGrouping(n *yaml.Node) (Expr, error) {
	f, err := fields(n, "inner", "line", "column")
	if err != nil {
		return nil, err
	}
	line, column, err := position(f)
	if err != nil {
		return nil, err
	}
	inner, err := child(n, f, "inner")
	if err != nil {
		return nil, err
	}
	g := NewGrouping(inner)
	g.Token.Line, g.Token.Column = line, column
	return g, nil
}

func decodeUnary(n *yaml.Node) (Expr, error) {
	f, err := fields(n, "op", "operand", "line", "column")
	if err != nil {
		return nil, err
	}
	line, column, err := position(f)
	if err != nil {
		return nil, err
	}
	op, err := operator(n, f)
	if err != nil {
		return nil, err
	}
	if !op.IsPrefix() {
		return nil, decodeErr(f["op"], "%q is not a unary operator", op)
	}
	operand, err := child(n, f, "operand")
	if err != nil {
		return nil, err
	}
	return &Unary{Operator: token.New(op, line, column), Operand: operand}, nil
}

func decodeBinary(n *yaml.Node) (Expr, error) {
	f, err := fields(n, "op", "left", "right", "line", "column")
	if err != nil {
		return nil, err
	}
	line, column, err := position(f)
	if err != nil {
		return nil, err
	}
	op, err := operator(n, f)
	if err != nil {
		return nil, err
	}
	if !op.IsInfix() {
		return nil, decodeErr(f["op"], "%q is not a binary operator", op)
	}
	left, err := child(n, f, "left")
	if err != nil {
		return nil, err
	}
	right, err := child(n, f, "right")
	if err != nil {
		return nil, err
	}
	return &Binary{Operator: token.New(op, line, column), Left: left, Right: right}, nil
}

func decodeTernary(n *yaml.Node) (Expr, error) {
	f, err := fields(n, "condition", "then", "else", "line", "column")
	if err != nil {
		return nil, err
	}
	line, column, err := position(f)
	if err != nil {
		return nil, err
	}
	cond, err := child(n, f, "condition")
	if err != nil {
		return nil, err
	}
	then, err := child(n, f, "then")
	if err != nil {
		return nil, err
	}
	els, err := child(n, f, "else")
	if err != nil {
		return nil, err
	}
	return &Ternary{Token: token.New(token.QUESTION, line, column), Condition: cond, Then: then, Else: els}, nil
}

// EncodeYAML renders expr in the YAML tree form accepted by DecodeYAML.
func EncodeYAML(expr Expr) ([]byte, error) {
	n, err := EncodeNode(expr)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

// EncodeNode converts expr into a YAML node tree.
func EncodeNode(expr Expr) (*yaml.Node, error) {
	switch e := expr.(type) {
	case *Literal:
		v, err := scalarNode(e.Value)
		if err != nil {
			return nil, err
		}
		if e.Token.Line > 0 {
			v = mapping(e.Token, pair("value", v))
		}
		return mapping(token.Token{}, pair(keyLiteral, v)), nil
	case *Grouping:
		inner, err := EncodeNode(e.Inner)
		if err != nil {
			return nil, err
		}
		return mapping(token.Token{}, pair(keyGrouping, mapping(e.Token, pair("inner", inner)))), nil
	case *Unary:
		operand, err := EncodeNode(e.Operand)
		if err != nil {
			return nil, err
		}
		body := mapping(e.Operator, pair("op", str(e.Operator.Lexeme)), pair("operand", operand))
		return mapping(token.Token{}, pair(keyUnary, body)), nil
	case *Binary:
		left, err := EncodeNode(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := EncodeNode(e.Right)
		if err != nil {
			return nil, err
		}
		body := mapping(e.Operator, pair("op", str(e.Operator.Lexeme)), pair("left", left), pair("right", right))
		return mapping(token.Token{}, pair(keyBinary, body)), nil
	case *Ternary:
		cond, err := EncodeNode(e.Condition)
		if err != nil {
			return nil, err
		}
		then, err := EncodeNode(e.Then)
		if err != nil {
			return nil, err
		}
		els, err := EncodeNode(e.Else)
		if err != nil {
			return nil, err
		}
		body := mapping(e.Token, pair("condition", cond), pair("then", then), pair("else", els))
		return mapping(token.Token{}, pair(keyTernary, body)), nil
	default:
		return nil, fmt.Errorf("encode expression: unsupported node %T", expr)
	}
}

type kv struct {
	key   string
	value *yaml.Node
}

func pair(k string, v *yaml.Node) kv { return kv{k, v} }

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}

// mapping builds a mapping node, adding line/column when pos carries them.
func mapping(pos token.Token, pairs ...kv) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range pairs {
		m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.key}, p.value)
	}
	if pos.Line > 0 {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "line"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(pos.Line)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "column"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(pos.Column)},
		)
	}
	return m
}

func scalarNode(v interface{}) (*yaml.Node, error) {
	switch v := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	case float64:
		switch {
		case math.IsInf(v, 1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}, nil
		case math.IsInf(v, -1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}, nil
		case math.IsNaN(v):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}, nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	case string:
		return str(v), nil
	default:
		return nil, fmt.Errorf("encode expression: unsupported literal %T", v)
	}
}
