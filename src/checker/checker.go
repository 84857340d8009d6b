// Package checker validates call expressions against registered function
// declarations before anything is executed. A TypeChecker owns two registries,
// functions and custom types, both keyed by name. Registration never validates
// anything; every lookup happens when a check runs.
package checker

import (
	"slices"
	"strings"
	"sync"

	"github.com/tanema/declcheck/src/lerrors"
	"github.com/tanema/declcheck/src/types"
)

// TypeChecker holds the registries that calls are checked against. It is safe
// for concurrent use.
type TypeChecker struct {
	mut         sync.RWMutex
	opts        options
	functions   map[string]*types.FunctionDeclaration
	customTypes map[string]*types.Type
}

// New creates a checker with empty registries.
func New(opts ...Option) *TypeChecker {
	tc := &TypeChecker{
		functions:   map[string]*types.FunctionDeclaration{},
		customTypes: map[string]*types.Type{},
	}
	for _, opt := range opts {
		opt(&tc.opts)
	}
	if tc.opts.prelude {
		for name, defn := range types.DefaultTypes {
			tc.customTypes[name] = defn
		}
	}
	return tc
}

// AddFunction registers a function declaration. A previous declaration with
// the same name is replaced.
func (tc *TypeChecker) AddFunction(decl *types.FunctionDeclaration) {
	tc.mut.Lock()
	defer tc.mut.Unlock()
	tc.functions[decl.Name] = decl
}

// AddCustomType registers a type. A previous type with the same name is replaced.
func (tc *TypeChecker) AddCustomType(t *types.Type) {
	tc.mut.Lock()
	defer tc.mut.Unlock()
	tc.customTypes[t.Name] = t
}

// Function looks up a registered function by name.
func (tc *TypeChecker) Function(name string) (*types.FunctionDeclaration, bool) {
	tc.mut.RLock()
	defer tc.mut.RUnlock()
	decl, ok := tc.functions[name]
	return decl, ok
}

// CustomType looks up a registered type by name.
func (tc *TypeChecker) CustomType(name string) (*types.Type, bool) {
	tc.mut.RLock()
	defer tc.mut.RUnlock()
	t, ok := tc.customTypes[name]
	return t, ok
}

// Functions returns all registered functions sorted by name.
func (tc *TypeChecker) Functions() []*types.FunctionDeclaration {
	tc.mut.RLock()
	defer tc.mut.RUnlock()
	decls := make([]*types.FunctionDeclaration, 0, len(tc.functions))
	for _, decl := range tc.functions {
		decls = append(decls, decl)
	}
	slices.SortFunc(decls, func(a, b *types.FunctionDeclaration) int { return strings.Compare(a.Name, b.Name) })
	return decls
}

// CustomTypes returns all registered types sorted by name.
func (tc *TypeChecker) CustomTypes() []*types.Type {
	tc.mut.RLock()
	defer tc.mut.RUnlock()
	defns := make([]*types.Type, 0, len(tc.customTypes))
	for _, defn := range tc.customTypes {
		defns = append(defns, defn)
	}
	slices.SortFunc(defns, func(a, b *types.Type) int { return strings.Compare(a.Name, b.Name) })
	return defns
}

// CheckType validates expr, optionally against an expected type. It returns
// true when the expression is valid and otherwise a *lerrors.Error describing
// the first failure found; it never returns false without an error. The
// registries are read locked for the whole check so a check always sees one
// consistent snapshot.
func (tc *TypeChecker) CheckType(expr types.Expression, expected *types.Type) (bool, error) {
	tc.mut.RLock()
	defer tc.mut.RUnlock()
	ok, err := tc.check(expr, expected)
	if err != nil {
		return false, err
	} else if !ok {
		return false, &lerrors.Error{
			Kind:     lerrors.ArgumentTypeMismatch,
			Expected: expected.String(),
			Received: tc.describe(expr),
		}
	}
	return true, nil
}

// check returns false without an error when expr is well formed but does not
// have the expected type. The caller decides how to report that.
func (tc *TypeChecker) check(expr types.Expression, expected *types.Type) (bool, error) {
	switch te := expr.(type) {
	case *types.CallExpression:
		return tc.checkCall(te, expected)
	case *types.Type:
		return tc.checkTypeRef(te, expected)
	case types.Value:
		return tc.checkValue(te, expected)
	default:
		return false, &lerrors.Error{Kind: lerrors.UnsupportedExpression, Received: types.Describe(expr)}
	}
}

func (tc *TypeChecker) checkCall(call *types.CallExpression, expected *types.Type) (bool, error) {
	if call == nil {
		return false, &lerrors.Error{Kind: lerrors.UnsupportedExpression, Received: "<nil>"}
	}
	decl, found := tc.functions[call.FuncName]
	if !found {
		return false, &lerrors.Error{Kind: lerrors.UnknownFunction, Func: call.FuncName}
	} else if decl.Arity() != len(call.Args) {
		return false, &lerrors.Error{
			Kind:          lerrors.ArityMismatch,
			Func:          call.FuncName,
			ExpectedCount: decl.Arity(),
			ReceivedCount: len(call.Args),
		}
	}
	for i, param := range decl.Params {
		ok, err := tc.check(call.Args[i], param.Type)
		if err != nil {
			return false, err
		} else if !ok {
			return false, &lerrors.Error{
				Kind:     lerrors.ArgumentTypeMismatch,
				Func:     call.FuncName,
				Position: i + 1,
				Expected: param.Type.String(),
				Received: tc.describe(call.Args[i]),
			}
		}
	}
	if tc.opts.returnTypes && expected != nil {
		return types.Equal(decl.Return, expected), nil
	}
	return true, nil
}

func (tc *TypeChecker) checkTypeRef(ref *types.Type, expected *types.Type) (bool, error) {
	if ref == nil {
		return false, &lerrors.Error{Kind: lerrors.UnsupportedExpression, Received: "<nil>"}
	} else if _, found := tc.customTypes[ref.Name]; !found {
		return false, &lerrors.Error{Kind: lerrors.UnknownType, Name: ref.Name}
	} else if tc.opts.strictTypeRefs && expected != nil {
		return types.Equal(ref, expected), nil
	}
	return true, nil
}

func (tc *TypeChecker) checkValue(val types.Value, expected *types.Type) (bool, error) {
	if !tc.opts.classifyValues {
		return false, &lerrors.Error{Kind: lerrors.UnsupportedExpression, Received: tc.describeValue(val)}
	}
	name, ok := types.Classify(val.Val)
	if !ok {
		return false, &lerrors.Error{Kind: lerrors.UnsupportedExpression, Received: tc.describeValue(val)}
	} else if expected == nil {
		return true, nil
	}
	return name == expected.Name, nil
}

func (tc *TypeChecker) describe(expr types.Expression) string {
	if call, isCall := expr.(*types.CallExpression); isCall && call != nil {
		if decl, found := tc.functions[call.FuncName]; found && decl.Return != nil {
			return decl.Return.Name
		}
	}
	return types.Describe(expr)
}

func (tc *TypeChecker) describeValue(val types.Value) string {
	return val.String() + " (" + types.Describe(val) + ")"
}
