package manifest

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tanema/declcheck/src/types"
)

// Expr decodes a single expression node. Scalars become raw values, a mapping
// with a type key becomes a type reference and a mapping with a call key
// becomes a call whose args are decoded the same way.
type Expr struct{ types.Expression }

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	expr, err := decodeExpr(node)
	if err != nil {
		return err
	}
	e.Expression = expr
	return nil
}

// ParseExpr decodes one expression from src, usually written in flow style:
//
//	{call: addNumbers, args: [{type: number}, 5]}
func ParseExpr(src string) (types.Expression, error) {
	var e Expr
	if err := yaml.Unmarshal([]byte(src), &e); err != nil {
		return nil, errors.Wrap(err, "parse expression")
	} else if e.Expression == nil {
		return nil, errors.New("parse expression: empty input")
	}
	return e.Expression, nil
}

func decodeExpr(node *yaml.Node) (types.Expression, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeExpr(node.Content[0])
	case yaml.AliasNode:
		return decodeExpr(node.Alias)
	case yaml.ScalarNode:
		var val any
		if err := node.Decode(&val); err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		return types.Value{Val: val}, nil
	case yaml.MappingNode:
		return decodeMapping(node)
	default:
		return nil, errors.Errorf("line %d: expected a value, {type: ...} or {call: ...}", node.Line)
	}
}

func decodeMapping(node *yaml.Node) (types.Expression, error) {
	var typeName, funcName *yaml.Node
	var args *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "type":
			typeName = val
		case "call":
			funcName = val
		case "args":
			args = val
		default:
			return nil, errors.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
	}

	switch {
	case typeName != nil && funcName != nil:
		return nil, errors.Errorf("line %d: type and call cannot be combined", node.Line)
	case typeName != nil:
		if args != nil {
			return nil, errors.Errorf("line %d: a type reference takes no args", node.Line)
		} else if typeName.Kind != yaml.ScalarNode || typeName.Value == "" {
			return nil, errors.Errorf("line %d: type must be a name", typeName.Line)
		}
		return types.New(typeName.Value), nil
	case funcName != nil:
		if funcName.Kind != yaml.ScalarNode || funcName.Value == "" {
			return nil, errors.Errorf("line %d: call must be a function name", funcName.Line)
		}
		call := &types.CallExpression{FuncName: funcName.Value, Args: []types.Expression{}}
		if args == nil {
			return call, nil
		} else if args.Kind != yaml.SequenceNode {
			return nil, errors.Errorf("line %d: args must be a list", args.Line)
		}
		for _, argNode := range args.Content {
			arg, err := decodeExpr(argNode)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}
		return call, nil
	default:
		return nil, errors.Errorf("line %d: expected a type or call key", node.Line)
	}
}
