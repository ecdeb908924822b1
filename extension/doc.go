// Package extension implements the registry through which extensions declare
// their contributions to the platform: conditions, actions, expressions,
// object types, behavior types and custom event types.
//
// # Declaration
//
// An extension registers once, during the sequential loading phase. It first
// sets its identity, which derives the namespace prefixed to every identifier
// it declares, then calls the Add* builders. Each builder stores a record and
// returns a live reference for fluent configuration:
//
//	ext := extension.New()
//	ext.SetExtensionInformation("Physics", "Physics engine",
//	    "Rigid body simulation for objects", "Platform developers", "MIT")
//
//	ext.AddAction("ApplyForce",
//	    "Apply a force", "Apply a force to the object.",
//	    "Apply force _PARAM1_;_PARAM2_ to _PARAM0_",
//	    "Physics", "res/physics24.png", "res/physics16.png").
//	    AddParameter("object", "Object", false).
//	    AddParameter("expression", "X component", false).
//	    AddParameter("expression", "Y component", false).
//	    SetOwnerObject("Physics::Body").
//	    SetFunctionName("ApplyForce")
//
// Returned record references stay valid for the lifetime of the registry:
// records are heap-allocated and the maps store pointers, so configuration
// chains and cached handles never go stale.
//
// # Lookup
//
// After loading, the rest of the platform resolves identifiers (namespaced or
// bare) through the Get* methods. A miss is not an error: metadata lookups
// return the shared sentinel record of the matching kind and factory lookups
// return a nil capability. See sentinel.go for the identity accessors.
//
// # Partitioning
//
// Instructions and expressions may be bound to an owner object or behavior
// type. The GetAll*ForObject and GetAll*ForBehavior methods derive the subset
// bound to a given owner on each call.
//
// # Concurrency
//
// All methods are safe for concurrent use. The intended lifecycle is still
// single-threaded registration followed by read-only lookups;
// StripUnimplementedInstructionsAndExpressions in particular must run once,
// after all declarations, and never concurrently with further Add* calls.
package extension
