// Package gdevelop provides the extension registry core of a block-based,
// visual programming platform.
//
// # Architecture
//
// Independently developed extensions contribute vocabulary to the platform:
// the conditions, actions and expressions authors can place in their
// projects, plus object types, behavior types and custom event types. An
// extension declares its contributions once, during a sequential loading
// phase at startup; afterwards the registries are read-only and every other
// part of the platform (editor, code generator, validators) resolves
// contributions by string identifier.
//
//	┌─────────────────────────────────────┐
//	│            Loader                   │  Sequential load phase
//	│  (register, strip, freeze)          │  Load diagnostics
//	└─────────────────────────────────────┘
//	           ↓ populates
//	┌─────────────────────────────────────┐
//	│          Extensions                 │  Namespaced registries of
//	│  (objects, behaviors, events,       │  metadata records and
//	│   conditions, actions, expressions) │  factory capabilities
//	└─────────────────────────────────────┘
//	           ↓ consulted by
//	┌─────────────────────────────────────┐
//	│     Editor / Generator / Tools      │  External collaborators,
//	│        (not in this module)         │  lookup by identifier
//	└─────────────────────────────────────┘
//
// # Packages
//
//   - extension: the core registry, metadata records, sentinel lookup and
//     owner partitioning
//   - loader: load-phase orchestration and structured load diagnostics
//   - errors: classified error handling shared by all packages
//   - metric: Prometheus instrumentation of registration and lookup activity
//
// # Lookup policy
//
// Lookups never fail: a miss resolves to a shared, immutable sentinel record
// of the matching kind, so call sites can treat every result uniformly.
// Callers that must distinguish a real record from a miss compare against the
// exported sentinel accessors.
package gdevelop
