package extension

// Instruction is a single condition or action as placed in a project: the
// namespaced type of the declaration it instantiates plus the author-supplied
// parameter values. The core never executes instructions; this value type
// exists so external tools (resource inventory, code generator) have a
// uniform shape to visit.
type Instruction struct {
	// Type is the namespaced identifier of the instruction declaration
	Type string

	// Parameters holds the parameter values in declaration order
	Parameters []string
}

// ResourceWorker is the visitor supplied by an external resource-inventory
// tool. The worker is asked about every resource reference embedded in an
// instruction and may rewrite it (e.g. to relocate a file). The core never
// implements rewriting itself.
type ResourceWorker interface {
	// ExposeResource reports a resource path to the worker and returns the
	// path to use from now on, which may be unchanged
	ExposeResource(resourcePath string) string
}

// ResourceExposer lets an extension point the resource-inventory visitor at
// the resource references embedded in one of its instruction instances
type ResourceExposer func(instruction *Instruction, worker ResourceWorker)

// SetConditionsResourceExposer overrides the hook used to inventory resources
// embedded in the extension's conditions. The default is a no-op.
func (e *Extension) SetConditionsResourceExposer(exposer ResourceExposer) *Extension {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.exposeConditions = exposer
	return e
}

// SetActionsResourceExposer overrides the hook used to inventory resources
// embedded in the extension's actions. The default is a no-op.
func (e *Extension) SetActionsResourceExposer(exposer ResourceExposer) *Extension {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.exposeActions = exposer
	return e
}

// ExposeConditionsResources is called by an external resource-inventory tool
// so the extension can report and rewrite resource references used by a
// condition. Does nothing unless a hook was set.
func (e *Extension) ExposeConditionsResources(condition *Instruction, worker ResourceWorker) {
	e.mu.RLock()
	exposer := e.exposeConditions
	e.mu.RUnlock()

	if exposer != nil {
		exposer(condition, worker)
	}
}

// ExposeActionsResources is called by an external resource-inventory tool so
// the extension can report and rewrite resource references used by an
// action. Does nothing unless a hook was set.
func (e *Extension) ExposeActionsResources(action *Instruction, worker ResourceWorker) {
	e.mu.RLock()
	exposer := e.exposeActions
	e.mu.RUnlock()

	if exposer != nil {
		exposer(action, worker)
	}
}
