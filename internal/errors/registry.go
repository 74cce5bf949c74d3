package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render errors (R001-R099)
	// ============================================

	"R001": {
		Category: CategoryRender,
		Message:  "unknown node kind",
		Detail:   "The node's Value() returned a Kind the writer does not recognize. Only elements and text leaves can be serialized.",
		DocURL:   "https://treefold.dev/docs/errors/R001",
	},
	"R002": {
		Category: CategoryRender,
		Message:  "sink write failed",
		Detail:   "The output sink returned an error. The fold was aborted and any partial output should be discarded.",
		DocURL:   "https://treefold.dev/docs/errors/R002",
	},
	"R003": {
		Category: CategoryRender,
		Message:  "element has empty tag name",
		Detail:   "An element node reported an empty tag name, which cannot be serialized as markup.",
		DocURL:   "https://treefold.dev/docs/errors/R003",
	},

	// ============================================
	// Codegen errors (G001-G099)
	// ============================================

	"G001": {
		Category: CategoryCodegen,
		Message:  "generated source does not format",
		Detail:   "go/format rejected the generated source. This is a bug in the generator templates.",
		DocURL:   "https://treefold.dev/docs/errors/G001",
	},
	"G002": {
		Category: CategoryCodegen,
		Message:  "invalid tuple arity",
		Detail:   "Tuple generation requires an arity between 2 and 10.",
		DocURL:   "https://treefold.dev/docs/errors/G002",
	},
	"G003": {
		Category: CategoryCodegen,
		Message:  "cannot write generated file",
		Detail:   "The generated source could not be written to the output path.",
		DocURL:   "https://treefold.dev/docs/errors/G003",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	tmpl, ok := registry[code]
	return tmpl, ok
}
