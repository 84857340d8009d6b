package checker

type (
	// Option configures a TypeChecker when it is created.
	Option  func(*options)
	options struct {
		classifyValues bool
		strictTypeRefs bool
		returnTypes    bool
		prelude        bool
	}
)

// WithValueClassification makes raw argument values checkable. Each value is
// classified into a builtin type name and compared with the parameter type.
// When disabled, raw values are an unsupported expression.
func WithValueClassification(enabled bool) Option {
	return func(o *options) { o.classifyValues = enabled }
}

// WithStrictTypeRefs requires a type reference argument to name the same type
// as the parameter it is passed to, not only a registered one.
func WithStrictTypeRefs(enabled bool) Option {
	return func(o *options) { o.strictTypeRefs = enabled }
}

// WithReturnTypes checks the declared return type of a nested call against the
// parameter type it is passed to.
func WithReturnTypes(enabled bool) Option {
	return func(o *options) { o.returnTypes = enabled }
}

// WithPrelude registers the builtin types number, string, bool and nil.
func WithPrelude(enabled bool) Option {
	return func(o *options) { o.prelude = enabled }
}
