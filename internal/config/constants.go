package config

// FileName is the runtime configuration file looked up in the working directory.
const FileName = "aardvark.yaml"

// EnvPrefix prefixes environment overrides (AARDVARK_SEED, ...).
const EnvPrefix = "AARDVARK"

// FileTypeTag is the type string accepted by the two-argument File constructor.
const FileTypeTag = "FILE"

// Canonical boolean texts. The casing is part of the emitted output.
const (
	TrueText  = "True"
	FalseText = "False"
)

// Missing-file policies for whole-file reads.
const (
	MissingError = "error"
	MissingEmpty = "empty"
)

// Log levels accepted in configuration.
var LogLevels = []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}

// Configuration keys shared by the YAML loader and the env/flag overlay.
const (
	KeySeed     = "seed"
	KeyMissing  = "missing"
	KeyLogLevel = "log_level"
)
