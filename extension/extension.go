package extension

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/Okanegahoshi/GDevelop/errors"
	"github.com/Okanegahoshi/GDevelop/metric"
)

// NamespaceSeparator is the string separating the extension name from the
// identifier of an instruction, expression, object, behavior or event. It is
// fixed for the lifetime of the process.
const NamespaceSeparator = "::"

// Metadata kind labels used for instrumentation
const (
	kindCondition     = "condition"
	kindAction        = "action"
	kindExpression    = "expression"
	kindStrExpression = "strexpression"
	kindObject        = "object"
	kindBehavior      = "behavior"
	kindEvent         = "event"
)

// Extension is the registry for one extension's contributions to the
// platform: the conditions, actions, expressions, object types, behavior
// types and custom event types it declares.
//
// An Extension is populated during the sequential loading phase through the
// Add* builder methods, each of which stores a new metadata record under a
// namespaced key and returns a reference to it for fluent configuration.
// After loading the registry is read-only; lookups resolve identifiers
// (namespaced or bare) to records, degrading to shared sentinel records on a
// miss instead of failing.
type Extension struct {
	mu sync.RWMutex

	compilationInfo CompilationInfo
	duplicatePolicy DuplicatePolicy
	metrics         *metric.MetricsRegistry

	name        string // Name identifying the extension
	nameSpace   string // name + NamespaceSeparator, prefixed to every declared identifier
	fullname    string // Name displayed to users at edit time
	description string
	author      string
	license     string
	helpPath    string // Relative path to the extension help in the documentation
	deprecated  bool

	loadErrors []error

	objectsInfos        map[string]*ObjectMetadata
	behaviorsInfos      map[string]*BehaviorMetadata
	conditionsInfos     map[string]*InstructionMetadata
	actionsInfos        map[string]*InstructionMetadata
	expressionsInfos    map[string]*ExpressionMetadata
	strExpressionsInfos map[string]*ExpressionMetadata
	eventsInfos         map[string]*EventMetadata

	exposeConditions ResourceExposer
	exposeActions    ResourceExposer
}

// New creates an empty extension registry
func New(opts ...Option) *Extension {
	e := &Extension{
		compilationInfo:     CompleteCompilationInformation(false),
		objectsInfos:        make(map[string]*ObjectMetadata),
		behaviorsInfos:      make(map[string]*BehaviorMetadata),
		conditionsInfos:     make(map[string]*InstructionMetadata),
		actionsInfos:        make(map[string]*InstructionMetadata),
		expressionsInfos:    make(map[string]*ExpressionMetadata),
		strExpressionsInfos: make(map[string]*ExpressionMetadata),
		eventsInfos:         make(map[string]*EventMetadata),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SetExtensionInformation declares the main information about the extension.
// It must be called before any Add* call: the namespace derived from name is
// baked into every identifier declared afterwards.
//
// An invalid name (empty, containing the namespace separator, or with
// characters outside the identifier charset) is not applied: the previous
// name and namespace stay in effect and the problem is recorded, retrievable
// via LoadErrors.
func (e *Extension) SetExtensionInformation(
	name, fullname, description, author, license string,
) *Extension {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.fullname = fullname
	e.description = description
	e.author = author
	e.license = license

	if err := ValidateExtensionName(name); err != nil {
		e.recordLoadError(errors.Wrap(err, "Extension", "SetExtensionInformation", "name validation"))
		return e
	}

	e.name = name
	e.nameSpace = name + NamespaceSeparator
	return e
}

// SetExtensionHelpPath sets the path to the help, relative to the
// documentation root. Instructions, objects and behaviors declared afterwards
// inherit it unless they set their own.
func (e *Extension) SetExtensionHelpPath(helpPath string) *Extension {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.helpPath = helpPath
	return e
}

// MarkAsDeprecated flags the extension as deprecated so the editor hides it
// from users
func (e *Extension) MarkAsDeprecated() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.deprecated = true
}

// GetName returns the name identifying the extension
func (e *Extension) GetName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.name
}

// GetFullName returns the extension user friendly name
func (e *Extension) GetFullName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fullname
}

// GetDescription returns a description of the extension
func (e *Extension) GetDescription() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.description
}

// GetAuthor returns the name of the extension developer
func (e *Extension) GetAuthor() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.author
}

// GetLicense returns the name of the extension license
func (e *Extension) GetLicense() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.license
}

// GetHelpPath returns the help path of the extension, relative to the
// documentation root
func (e *Extension) GetHelpPath() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.helpPath
}

// GetNameSpace returns the namespace of the extension: its name concatenated
// with the namespace separator
func (e *Extension) GetNameSpace() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.nameSpace
}

// IsDeprecated reports whether the extension is flagged as deprecated
func (e *Extension) IsDeprecated() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.deprecated
}

// IsBuiltin reports whether the extension is a standard extension provided by
// the platform itself, which cannot be deactivated. Classification keys on
// the name set by SetExtensionInformation.
func (e *Extension) IsBuiltin() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return IsBuiltinExtension(e.name)
}

// Compilation returns the compilation stamp of the extension
func (e *Extension) Compilation() CompilationInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.compilationInfo
}

// LoadErrors returns the problems recorded while declaring contributions
// (invalid names, rejected duplicates). Lookup misses are never recorded
// here.
func (e *Extension) LoadErrors() []error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.loadErrors)
}

// recordLoadError appends a declaration problem. Callers must hold e.mu.
func (e *Extension) recordLoadError(err error) {
	e.loadErrors = append(e.loadErrors, err)
	if e.metrics != nil {
		e.metrics.Metrics.LoadErrorsTotal.WithLabelValues(e.name).Inc()
	}
}

// countDeclaration increments the declaration counter. Callers must hold e.mu.
func (e *Extension) countDeclaration(kind string) {
	if e.metrics != nil {
		e.metrics.Metrics.DeclarationsTotal.WithLabelValues(e.name, kind).Inc()
	}
}

// countMiss increments the sentinel-resolution counter. Callers must hold
// e.mu for reading.
func (e *Extension) countMiss(kind string) {
	if e.metrics != nil {
		e.metrics.Metrics.LookupMissesTotal.WithLabelValues(e.name, kind).Inc()
	}
}

// storeRecord inserts a record under its namespaced key, applying the
// duplicate policy. In reject mode the first record is kept and the new one
// is returned unstored so the caller's fluent chain stays safe.
func storeRecord[M any](
	e *Extension, infos map[string]*M, kind, method, typeName string, record *M,
) *M {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := infos[typeName]; exists && e.duplicatePolicy == RejectDuplicates {
		e.recordLoadError(errors.WrapInvalid(
			fmt.Errorf("%w: %s %q", errors.ErrDuplicateDeclaration, kind, typeName),
			"Extension", method, "duplicate declaration check"))
		return record
	}

	infos[typeName] = record
	e.countDeclaration(kind)
	return record
}

// findRecord resolves a namespaced or bare identifier. Callers must hold
// e.mu for reading.
func findRecord[M any](e *Extension, infos map[string]*M, typeName string) (*M, bool) {
	if m, ok := infos[typeName]; ok {
		return m, true
	}
	if m, ok := infos[e.nameSpace+typeName]; ok {
		return m, true
	}
	return nil, false
}

// AddCondition declares a new condition as being part of the extension.
// The returned record reference stays valid for the lifetime of the registry
// and can be configured through its fluent setters.
func (e *Extension) AddCondition(
	name, fullname, description, sentence, group, icon, smallIcon string,
) *InstructionMetadata {
	record := e.newInstruction(name, fullname, description, sentence, group, icon, smallIcon)
	return storeRecord(e, e.conditionsInfos, kindCondition, "AddCondition", record.typeName, record)
}

// AddAction declares a new action as being part of the extension
func (e *Extension) AddAction(
	name, fullname, description, sentence, group, icon, smallIcon string,
) *InstructionMetadata {
	record := e.newInstruction(name, fullname, description, sentence, group, icon, smallIcon)
	return storeRecord(e, e.actionsInfos, kindAction, "AddAction", record.typeName, record)
}

// AddExpression declares a new numeric expression as being part of the
// extension
func (e *Extension) AddExpression(
	name, fullname, description, group, smallIcon string,
) *ExpressionMetadata {
	record := e.newExpression(name, fullname, description, group, smallIcon, false)
	return storeRecord(e, e.expressionsInfos, kindExpression, "AddExpression", record.typeName, record)
}

// AddStrExpression declares a new string expression as being part of the
// extension
func (e *Extension) AddStrExpression(
	name, fullname, description, group, smallIcon string,
) *ExpressionMetadata {
	record := e.newExpression(name, fullname, description, group, smallIcon, true)
	return storeRecord(e, e.strExpressionsInfos, kindStrExpression, "AddStrExpression", record.typeName, record)
}

// AddObject declares a new object type as being part of the extension,
// constructed by the given factory. Use NewCreator to bind the factory to a
// concrete object variant.
func (e *Extension) AddObject(
	name, fullname, description, icon string, create CreateFunc,
) *ObjectMetadata {
	e.mu.RLock()
	record := &ObjectMetadata{
		typeName:   e.nameSpace + name,
		helpPath:   e.helpPath,
		createFunc: create,
	}
	if !e.compilationInfo.RuntimeOnly {
		record.displayName = fullname
		record.description = description
		record.iconFilename = icon
	}
	e.mu.RUnlock()

	return storeRecord(e, e.objectsInfos, kindObject, "AddObject", record.typeName, record)
}

// AddObjectFromInstance declares a new object type constructed by cloning the
// supplied prototype instance
func (e *Extension) AddObjectFromInstance(
	name, fullname, description, icon string, instance Object,
) *ObjectMetadata {
	var create CreateFunc
	if instance != nil {
		create = func(objectName string) Object {
			clone := instance.Clone()
			clone.SetName(objectName)
			return clone
		}
	}
	return e.AddObject(name, fullname, description, icon, create)
}

// AddBehavior declares a new behavior type as being part of the extension.
// The factory produces behavior instances; sharedData optionally produces the
// data shared by all behaviors of this type within one context and may be
// nil.
func (e *Extension) AddBehavior(
	name, fullname, defaultName, description, group, icon string,
	factory BehaviorFactory, sharedData SharedDataFactory,
) *BehaviorMetadata {
	e.mu.RLock()
	record := &BehaviorMetadata{
		typeName:          e.nameSpace + name,
		defaultName:       defaultName,
		helpPath:          e.helpPath,
		factory:           factory,
		sharedDataFactory: sharedData,
	}
	if !e.compilationInfo.RuntimeOnly {
		record.displayName = fullname
		record.description = description
		record.group = group
		record.iconFilename = icon
	}
	e.mu.RUnlock()

	return storeRecord(e, e.behaviorsInfos, kindBehavior, "AddBehavior", record.typeName, record)
}

// AddEvent declares a new custom event type as being part of the extension,
// constructed by cloning the supplied prototype instance
func (e *Extension) AddEvent(
	name, fullname, description, group, smallIcon string, instance BaseEvent,
) *EventMetadata {
	e.mu.RLock()
	record := &EventMetadata{
		typeName:  e.nameSpace + name,
		prototype: instance,
	}
	if !e.compilationInfo.RuntimeOnly {
		record.displayName = fullname
		record.description = description
		record.group = group
		record.smallIconFilename = smallIcon
	}
	e.mu.RUnlock()

	return storeRecord(e, e.eventsInfos, kindEvent, "AddEvent", record.typeName, record)
}

// newInstruction builds an instruction record with the current namespace and
// help path baked in
func (e *Extension) newInstruction(
	name, fullname, description, sentence, group, icon, smallIcon string,
) *InstructionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	record := &InstructionMetadata{
		typeName: e.nameSpace + name,
		helpPath: e.helpPath,
	}
	if e.compilationInfo.RuntimeOnly {
		// Editor metadata is not needed at runtime
		return record
	}

	record.displayName = fullname
	record.description = description
	record.sentence = sentence
	record.group = group
	record.iconFilename = icon
	record.smallIconFilename = smallIcon
	return record
}

// newExpression builds an expression record with the current namespace and
// help path baked in
func (e *Extension) newExpression(
	name, fullname, description, group, smallIcon string, isString bool,
) *ExpressionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	record := &ExpressionMetadata{
		typeName: e.nameSpace + name,
		helpPath: e.helpPath,
		isString: isString,
	}
	if e.compilationInfo.RuntimeOnly {
		return record
	}

	record.displayName = fullname
	record.description = description
	record.group = group
	record.smallIconFilename = smallIcon
	return record
}

// GetObjectMetadata returns the metadata record for an object type,
// namespaced or bare. Unknown types resolve to the shared sentinel record,
// never to nil.
func (e *Extension) GetObjectMetadata(objectType string) *ObjectMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.objectsInfos, objectType); ok {
		return m
	}
	e.countMiss(kindObject)
	return badObjectMetadata
}

// GetBehaviorMetadata returns the metadata record for a behavior type, or the
// shared sentinel record if the type is unknown
func (e *Extension) GetBehaviorMetadata(behaviorType string) *BehaviorMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.behaviorsInfos, behaviorType); ok {
		return m
	}
	e.countMiss(kindBehavior)
	return badBehaviorMetadata
}

// GetConditionMetadata returns the metadata record for a condition, or the
// shared sentinel record if the condition is unknown
func (e *Extension) GetConditionMetadata(conditionType string) *InstructionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.conditionsInfos, conditionType); ok {
		return m
	}
	e.countMiss(kindCondition)
	return badInstructionMetadata
}

// GetActionMetadata returns the metadata record for an action, or the shared
// sentinel record if the action is unknown
func (e *Extension) GetActionMetadata(actionType string) *InstructionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.actionsInfos, actionType); ok {
		return m
	}
	e.countMiss(kindAction)
	return badInstructionMetadata
}

// GetExpressionMetadata returns the metadata record for a numeric expression,
// or the shared sentinel record if the expression is unknown
func (e *Extension) GetExpressionMetadata(expressionType string) *ExpressionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.expressionsInfos, expressionType); ok {
		return m
	}
	e.countMiss(kindExpression)
	return badExpressionMetadata
}

// GetStrExpressionMetadata returns the metadata record for a string
// expression, or the shared sentinel record if the expression is unknown
func (e *Extension) GetStrExpressionMetadata(expressionType string) *ExpressionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.strExpressionsInfos, expressionType); ok {
		return m
	}
	e.countMiss(kindStrExpression)
	return badExpressionMetadata
}

// GetEventMetadata returns the metadata record for a custom event type, or
// the shared sentinel record if the type is unknown
func (e *Extension) GetEventMetadata(eventType string) *EventMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.eventsInfos, eventType); ok {
		return m
	}
	e.countMiss(kindEvent)
	return badEventMetadata
}

// GetExtensionObjectsTypes returns the identifiers of all object types
// declared by the extension, sorted. Consumers must not depend on
// registration order.
func (e *Extension) GetExtensionObjectsTypes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return sortedKeys(e.objectsInfos)
}

// GetBehaviorsTypes returns the identifiers of all behavior types declared by
// the extension, sorted
func (e *Extension) GetBehaviorsTypes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return sortedKeys(e.behaviorsInfos)
}

func sortedKeys[M any](infos map[string]*M) []string {
	keys := make([]string, 0, len(infos))
	for key := range infos {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// GetObjectCreationFunction returns the factory capability for an object
// type, or nil if the type is not provided by the extension
func (e *Extension) GetObjectCreationFunction(objectType string) CreateFunc {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.objectsInfos, objectType); ok {
		return m.createFunc
	}
	return nil
}

// CreateEvent creates a custom event by cloning the declared prototype.
// Returns nil if the event type is not provided by the extension.
func (e *Extension) CreateEvent(eventType string) BaseEvent {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.eventsInfos, eventType); ok {
		return m.CreateInstance()
	}
	return nil
}

// GetBehavior creates a behavior instance of the given type. Returns nil if
// the type is not provided by the extension or was declared without a
// factory.
func (e *Extension) GetBehavior(behaviorType string) Behavior {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.behaviorsInfos, behaviorType); ok && m.factory != nil {
		return m.factory()
	}
	return nil
}

// GetBehaviorSharedDatas creates the shared data for behaviors of the given
// type. Returns nil if the type is unknown or declares no shared data.
func (e *Extension) GetBehaviorSharedDatas(behaviorType string) BehaviorsSharedData {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := findRecord(e, e.behaviorsInfos, behaviorType); ok && m.sharedDataFactory != nil {
		return m.sharedDataFactory()
	}
	return nil
}

// GetAllConditions returns all conditions declared by the extension, keyed by
// namespaced identifier. The map is a copy; the records are the live ones.
func (e *Extension) GetAllConditions() map[string]*InstructionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyRecords(e.conditionsInfos)
}

// GetAllActions returns all actions declared by the extension
func (e *Extension) GetAllActions() map[string]*InstructionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyRecords(e.actionsInfos)
}

// GetAllExpressions returns all numeric expressions declared by the extension
func (e *Extension) GetAllExpressions() map[string]*ExpressionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyRecords(e.expressionsInfos)
}

// GetAllStrExpressions returns all string expressions declared by the
// extension
func (e *Extension) GetAllStrExpressions() map[string]*ExpressionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyRecords(e.strExpressionsInfos)
}

// GetAllEvents returns all custom event types declared by the extension
func (e *Extension) GetAllEvents() map[string]*EventMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyRecords(e.eventsInfos)
}

func copyRecords[M any](infos map[string]*M) map[string]*M {
	result := make(map[string]*M, len(infos))
	maps.Copy(result, infos)
	return result
}

// GetAllActionsForObject returns the actions bound to the given object type.
// The result is derived per call; an object type with no bound actions yields
// an empty map.
func (e *Extension) GetAllActionsForObject(objectType string) map[string]*InstructionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return filterRecords(e.actionsInfos, func(m *InstructionMetadata) bool {
		return m.ownerObjectType == objectType
	})
}

// GetAllConditionsForObject returns the conditions bound to the given object
// type
func (e *Extension) GetAllConditionsForObject(objectType string) map[string]*InstructionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return filterRecords(e.conditionsInfos, func(m *InstructionMetadata) bool {
		return m.ownerObjectType == objectType
	})
}

// GetAllExpressionsForObject returns the numeric expressions bound to the
// given object type
func (e *Extension) GetAllExpressionsForObject(objectType string) map[string]*ExpressionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return filterRecords(e.expressionsInfos, func(m *ExpressionMetadata) bool {
		return m.ownerObjectType == objectType
	})
}

// GetAllStrExpressionsForObject returns the string expressions bound to the
// given object type
func (e *Extension) GetAllStrExpressionsForObject(objectType string) map[string]*ExpressionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return filterRecords(e.strExpressionsInfos, func(m *ExpressionMetadata) bool {
		return m.ownerObjectType == objectType
	})
}

// GetAllActionsForBehavior returns the actions bound to the given behavior
// type
func (e *Extension) GetAllActionsForBehavior(behaviorType string) map[string]*InstructionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return filterRecords(e.actionsInfos, func(m *InstructionMetadata) bool {
		return m.ownerBehaviorType == behaviorType
	})
}

// GetAllConditionsForBehavior returns the conditions bound to the given
// behavior type
func (e *Extension) GetAllConditionsForBehavior(behaviorType string) map[string]*InstructionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return filterRecords(e.conditionsInfos, func(m *InstructionMetadata) bool {
		return m.ownerBehaviorType == behaviorType
	})
}

// GetAllExpressionsForBehavior returns the numeric expressions bound to the
// given behavior type
func (e *Extension) GetAllExpressionsForBehavior(behaviorType string) map[string]*ExpressionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return filterRecords(e.expressionsInfos, func(m *ExpressionMetadata) bool {
		return m.ownerBehaviorType == behaviorType
	})
}

// GetAllStrExpressionsForBehavior returns the string expressions bound to the
// given behavior type
func (e *Extension) GetAllStrExpressionsForBehavior(behaviorType string) map[string]*ExpressionMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return filterRecords(e.strExpressionsInfos, func(m *ExpressionMetadata) bool {
		return m.ownerBehaviorType == behaviorType
	})
}

func filterRecords[M any](infos map[string]*M, keep func(*M) bool) map[string]*M {
	result := make(map[string]*M)
	for key, record := range infos {
		if keep(record) {
			result[key] = record
		}
	}
	return result
}

// StripUnimplementedInstructionsAndExpressions removes every instruction and
// expression that has neither a named implementation function nor a custom
// code generator. Such records are documentation stubs. Objects, behaviors
// and events are left untouched.
//
// This mutates the registry and must only run once, after the extension has
// finished registering; it is not safe to run concurrently with further Add*
// calls.
func (e *Extension) StripUnimplementedInstructionsAndExpressions() {
	e.mu.Lock()
	defer e.mu.Unlock()

	stripped := 0
	stripped += stripUnimplemented(e.conditionsInfos, (*InstructionMetadata).IsImplemented)
	stripped += stripUnimplemented(e.actionsInfos, (*InstructionMetadata).IsImplemented)
	stripped += stripUnimplemented(e.expressionsInfos, (*ExpressionMetadata).IsImplemented)
	stripped += stripUnimplemented(e.strExpressionsInfos, (*ExpressionMetadata).IsImplemented)

	if e.metrics != nil && stripped > 0 {
		e.metrics.Metrics.StrippedTotal.WithLabelValues(e.name).Add(float64(stripped))
	}
}

func stripUnimplemented[M any](infos map[string]*M, implemented func(*M) bool) int {
	stripped := 0
	for key, record := range infos {
		if !implemented(record) {
			delete(infos, key)
			stripped++
		}
	}
	return stripped
}
