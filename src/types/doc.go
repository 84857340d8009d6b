// Package types contains the declarations that a checker registers and the
// expressions it checks. Types are nominal: two types are the same type when
// they have the same name and nothing else about them is compared.
// Expressions form a closed set of variants (calls, type references and raw
// values) so that checking code can switch over every case.
package types //nolint:revive
