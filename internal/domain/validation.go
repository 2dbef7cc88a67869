package domain

// ValidationBehavior selects how strictly the validation server checks a
// payload.
type ValidationBehavior string

const (
	ValidationRelaxed                ValidationBehavior = "RELAXED"
	ValidationEnforceRecommendations ValidationBehavior = "ENFORCE_RECOMMENDATIONS"
)

// ValidationMessage is one diagnostic returned by the validation endpoint.
// An empty list of messages means the payload is well formed.
type ValidationMessage struct {
	FieldPath      string `json:"fieldPath,omitempty"`
	Description    string `json:"description"`
	ValidationCode string `json:"validationCode"`
}

// ValidationResponse is the body of the validation endpoint.
type ValidationResponse struct {
	ValidationMessages []ValidationMessage `json:"validationMessages"`
}

// Validation codes returned by the validation server.
const (
	CodeValueInvalid        = "VALUE_INVALID"
	CodeValueRequired       = "VALUE_REQUIRED"
	CodeNameInvalid         = "NAME_INVALID"
	CodeNameReserved        = "NAME_RESERVED"
	CodeValueOutOfBounds    = "VALUE_OUT_OF_BOUNDS"
	CodeExceededMaxEntities = "EXCEEDED_MAX_ENTITIES"
	CodeNameDuplicated      = "NAME_DUPLICATED"
)
