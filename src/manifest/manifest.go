// Package manifest decodes a yaml document that declares types, functions and
// the calls to check against them. The document is already structured data; it
// is only mapped onto the values in the types package.
//
//	types: [number, string]
//	functions:
//	  - name: addNumbers
//	    params:
//	      - {name: x, type: number}
//	      - {name: y, type: number}
//	    returns: number
//	calls:
//	  - call: addNumbers
//	    args: [{type: number}, {type: number}]
package manifest

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tanema/declcheck/src/checker"
	"github.com/tanema/declcheck/src/types"
)

type (
	// Registry is anything that declarations can be registered with.
	Registry interface {
		AddFunction(decl *types.FunctionDeclaration)
		AddCustomType(t *types.Type)
	}
	// Manifest is a decoded manifest document.
	Manifest struct {
		Path      string             `yaml:"-"`
		Options   Options            `yaml:"options"`
		Types     []string           `yaml:"types"`
		Functions []FunctionSpec     `yaml:"functions"`
		RawCalls  []yaml.Node        `yaml:"calls"`
		Calls     []types.Expression `yaml:"-"`
	}
	// Options toggles checker behaviour from the manifest.
	Options struct {
		ClassifyValues bool `yaml:"classify_values"`
		StrictTypeRefs bool `yaml:"strict_type_refs"`
		ReturnTypes    bool `yaml:"return_types"`
		Prelude        bool `yaml:"prelude"`
	}
	// FunctionSpec declares a single function.
	FunctionSpec struct {
		Name    string      `yaml:"name"`
		Params  []ParamSpec `yaml:"params"`
		Returns string      `yaml:"returns"`
	}
	// ParamSpec declares a single function parameter.
	ParamSpec struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	}
)

// LoadFile reads and decodes the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open manifest")
	}
	defer func() { _ = src.Close() }()
	return Load(path, src)
}

// Load decodes a manifest from src. path is only used in error messages.
func Load(path string, src io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	m := &Manifest{Path: path}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := m.validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return m, nil
}

func (m *Manifest) validate() error {
	for i, name := range m.Types {
		if name == "" {
			return errors.Errorf("types[%d]: name is required", i)
		}
	}
	m.Calls = make([]types.Expression, len(m.RawCalls))
	for i := range m.RawCalls {
		node := &m.RawCalls[i]
		if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
			return errors.Errorf("calls[%d]: line %d: expression is required", i, node.Line)
		}
		expr, err := decodeExpr(node)
		if err != nil {
			return errors.Wrapf(err, "calls[%d]", i)
		}
		m.Calls[i] = expr
	}
	for i, fn := range m.Functions {
		if fn.Name == "" {
			return errors.Errorf("functions[%d]: name is required", i)
		}
		for j, param := range fn.Params {
			if param.Name == "" {
				return errors.Errorf("functions[%d] (%s): params[%d]: name is required", i, fn.Name, j)
			} else if param.Type == "" {
				return errors.Errorf("functions[%d] (%s): param %s: type is required", i, fn.Name, param.Name)
			}
		}
	}
	return nil
}

// CheckerOptions converts the manifest options into checker options.
func (m *Manifest) CheckerOptions() []checker.Option {
	return []checker.Option{
		checker.WithValueClassification(m.Options.ClassifyValues),
		checker.WithStrictTypeRefs(m.Options.StrictTypeRefs),
		checker.WithReturnTypes(m.Options.ReturnTypes),
		checker.WithPrelude(m.Options.Prelude),
	}
}

// Register adds every declared type and then every declared function to reg.
// Types that share a name are shared as one *types.Type between the
// declarations that refer to them.
func (m *Manifest) Register(reg Registry) {
	defns := map[string]*types.Type{}
	lookup := func(name string) *types.Type {
		if name == "" {
			return nil
		} else if defn, ok := defns[name]; ok {
			return defn
		}
		defn := types.New(name)
		defns[name] = defn
		return defn
	}
	for _, name := range m.Types {
		reg.AddCustomType(lookup(name))
	}
	for _, fn := range m.Functions {
		params := make([]types.ParamDeclaration, len(fn.Params))
		for i, param := range fn.Params {
			params[i] = types.Param(param.Name, lookup(param.Type))
		}
		reg.AddFunction(types.NewFunction(fn.Name, lookup(fn.Returns), params...))
	}
}

// Expressions returns the decoded calls in document order.
func (m *Manifest) Expressions() []types.Expression {
	return m.Calls
}
