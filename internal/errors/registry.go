package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Document Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryDocument,
		Message:  "Document not found",
		Detail:   "The document path does not exist or is not readable.",
	},
	"E101": {
		Category: CategoryDocument,
		Message:  "Document could not be read",
		Detail:   "Reading the document source failed.",
	},
	"E102": {
		Category: CategoryDocument,
		Message:  "Document could not be parsed",
		Detail:   "The document is not parseable HTML.",
	},
	"E103": {
		Category: CategoryDocument,
		Message:  "Unsupported document source",
		Detail:   "Documents can be read from a file path, '-' for stdin, or an s3://bucket/key URL.",
	},
	"E104": {
		Category: CategoryDocument,
		Message:  "S3 object could not be fetched",
		Detail:   "The S3 GetObject request failed.",
	},
	"E105": {
		Category: CategoryDocument,
		Message:  "Document too large",
		Detail:   "The document exceeds the configured size limit.",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid vsel.json",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No vsel.json was found in the given directory.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
	},

	// ============================================
	// Plan Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryPlan,
		Message:  "Plan could not be parsed",
		Detail:   "The join plan is not valid JSON.",
	},
	"E141": {
		Category: CategoryPlan,
		Message:  "Unknown plan step",
		Detail:   "Valid steps are select, selectAll, data, attr and exit.",
	},
	"E142": {
		Category: CategoryPlan,
		Message:  "Invalid selector",
		Detail:   "The selector could not be parsed.",
	},
	"E143": {
		Category: CategoryPlan,
		Message:  "Missing step field",
		Detail:   "A required field of a plan step is empty.",
	},
	"E144": {
		Category: CategoryPlan,
		Message:  "Step out of order",
		Detail:   "The exit step requires a preceding data step.",
	},

	// ============================================
	// Request Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryRequest,
		Message:  "Invalid request body",
		Detail:   "The request body must be a JSON object with html and plan fields.",
	},
	"E161": {
		Category: CategoryRequest,
		Message:  "Request body too large",
		Detail:   "The request body exceeds the configured limit.",
	},

	// ============================================
	// CLI Errors (E180-E199)
	// ============================================

	"E180": {
		Category: CategoryCLI,
		Message:  "Missing required flag",
		Detail:   "A required command-line flag was not provided.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
