package delta

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnknownTag          WarningType = "unknown_tag"
	WarningInvalidStyle        WarningType = "invalid_style"
	WarningMissingAttribute    WarningType = "missing_attribute"
	WarningDroppedFeature      WarningType = "dropped_feature"
	WarningUnresolvedReference WarningType = "unresolved_reference"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type    WarningType `json:"type"`
	Tag     string      `json:"tag,omitempty"`
	Message string      `json:"message"`
}
