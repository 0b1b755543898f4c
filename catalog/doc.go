// Package catalog provides the immutable skill-tier lookup consulted during
// action selection and resolution: given a skill and tier, it returns the
// fixed parameter block (damage, probabilities, costs) that stage.
//
// A Catalog is built once per run from already-decoded data and never
// mutated afterward; loading that data from disk or validating its JSON
// schema is a concern of the host, not this package.
package catalog
