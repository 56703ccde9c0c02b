package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Context Errors (V001-V009)
	// ============================================

	"V001": {
		Category: CategoryContext,
		Message:  "Context read outside of a component call",
		Detail:   "Context values can only be read while a component function, or a ref callback of an element it renders, is running.",
	},
	"V002": {
		Category: CategoryContext,
		Message:  "Context added outside of a component call",
		Detail:   "Context values can only be added while the component function body itself is executing.",
	},
	"V003": {
		Category: CategoryContext,
		Message:  "Context default set during render",
		Detail:   "Stack-wide defaults can only be set while no component frame is active.",
	},

	// ============================================
	// Structure Errors (V010-V019)
	// ============================================

	"V010": {
		Category: CategoryStructure,
		Message:  "Unexpected structure node",
		Detail:   "A structure node must be text, an element, a component, a stream or an already realized DOM node.",
	},
	"V011": {
		Category: CategoryStructure,
		Message:  "Unexpected space in tag name",
		Detail:   "Element tag names cannot contain spaces.",
	},
	"V012": {
		Category: CategoryStructure,
		Message:  "Cannot render a stream root",
		Detail:   "A stream must be nested inside a concrete element so the returned node can be updated in place.",
	},
	"V013": {
		Category: CategoryStructure,
		Message:  "Nested stream emission",
		Detail:   "A stream node emitted another stream node. Streams are not nested at this level.",
	},

	// ============================================
	// Attribute Errors (V020-V029)
	// ============================================

	"V020": {
		Category: CategoryConfig,
		Message:  "Cannot combine $style with a streamed style attribute",
		Detail:   "Update ordering between two independently streamed whole-style sources is undefined.",
	},
	"V021": {
		Category: CategoryConfig,
		Message:  "Unexpected type for style attribute",
		Detail:   "style accepts a string, a Style mapping, or a stream of strings.",
	},

	// ============================================
	// Hook Errors (V030-V039)
	// ============================================

	"V030": {
		Category: CategoryHook,
		Message:  "Dev hook failed",
		Detail:   "The configured dev inspection hook returned an error or panicked.",
	},

	// ============================================
	// Config Errors (V040-V049)
	// ============================================

	"V040": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The viewspec.json file failed validation.",
	},
	"V041": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No viewspec.json was found in the directory.",
	},
	"V042": {
		Category: CategoryConfig,
		Message:  "Cannot read configuration",
		Detail:   "The viewspec.json file could not be read or is not valid JSON.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds or replaces an error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
