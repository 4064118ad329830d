// Package ir defines the language-neutral intermediate representation that
// sits between the Boutiques frontend and the per-target backends: packages,
// interfaces, parameters (with their tagged body variants), conditional
// command-line groups, and output templates.
//
// Nodes are immutable once the frontend returns them, except that
// normalization may rename structs and parameters for uniqueness. Identity is
// by integer id, scoped to a single Interface; there are no cross-interface
// references.
package ir
