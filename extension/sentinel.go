package extension

// Sentinel records returned by the Get*Metadata lookups when an identifier is
// unknown. One shared instance exists per metadata kind; lookups never return
// nil or an error, so call sites can treat every result uniformly. The
// sentinels carry no factory capabilities and must never be mutated.
//
// Callers that need to distinguish a real record from a miss compare against
// the accessor of the matching kind:
//
//	if ext.GetObjectMetadata(t) == extension.BadObjectMetadata() {
//	    // t is not declared by ext
//	}
var (
	badObjectMetadata      = &ObjectMetadata{}
	badBehaviorMetadata    = &BehaviorMetadata{}
	badInstructionMetadata = &InstructionMetadata{}
	badExpressionMetadata  = &ExpressionMetadata{}
	badEventMetadata       = &EventMetadata{}
)

// BadObjectMetadata returns the shared sentinel for object lookups
func BadObjectMetadata() *ObjectMetadata { return badObjectMetadata }

// BadBehaviorMetadata returns the shared sentinel for behavior lookups
func BadBehaviorMetadata() *BehaviorMetadata { return badBehaviorMetadata }

// BadInstructionMetadata returns the shared sentinel for condition and action
// lookups
func BadInstructionMetadata() *InstructionMetadata { return badInstructionMetadata }

// BadExpressionMetadata returns the shared sentinel for expression lookups
func BadExpressionMetadata() *ExpressionMetadata { return badExpressionMetadata }

// BadEventMetadata returns the shared sentinel for event lookups
func BadEventMetadata() *EventMetadata { return badEventMetadata }
