package config

// ConfigFileName is the default name of the evaluator options file.
const ConfigFileName = "evaluator.yaml"

// SourceFileExtensions are the recognized extensions of YAML expression tree files.
var SourceFileExtensions = []string{".yaml", ".yml"}

// Evaluation limits
const (
	// DefaultMaxDepth is the maximum nesting depth of one evaluation.
	DefaultMaxDepth = 10000
	// MaxAllowedDepth caps configured depths; deeper trees risk exhausting the goroutine stack.
	MaxAllowedDepth = 1_000_000
	// DefaultConcurrency of 0 lets batch evaluation use GOMAXPROCS workers.
	DefaultConcurrency = 0
)

// Runtime type names as they appear in error messages.
const (
	NilTypeName     = "NIL"
	BooleanTypeName = "BOOLEAN"
	NumberTypeName  = "NUMBER"
	StringTypeName  = "STRING"
)
