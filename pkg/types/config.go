package types

// ConverterBackend identifies how documents are handed to pandoc.
type ConverterBackend string

const (
	// BackendPandoc runs a locally installed pandoc binary.
	BackendPandoc ConverterBackend = "pandoc"
	// BackendContainer runs pandoc inside a docker or podman container.
	BackendContainer ConverterBackend = "container"
)

// ConverterConfig holds settings for the Convert operation.
type ConverterConfig struct {
	// Backend selects the conversion strategy: pandoc or container.
	Backend ConverterBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Binary is the converter executable for the pandoc backend (default "pandoc").
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`

	// Args are extra arguments appended after "<input> -o <output>"
	// (e.g. "--pdf-engine=xelatex").
	Args []string `json:"args,omitempty" yaml:"args,omitempty" mapstructure:"args"`

	// Image is the container image for the container backend.
	Image string `json:"image" yaml:"image" mapstructure:"image"`

	// Runtime forces "docker" or "podman"; empty or "auto" detects one.
	Runtime string `json:"runtime,omitempty" yaml:"runtime,omitempty" mapstructure:"runtime"`
}

// FormatsConfig overrides the extension allow-lists.
type FormatsConfig struct {
	// Convertible replaces the built-in list of convertible extensions
	// (without leading dot). Empty keeps the default list.
	Convertible []string `json:"convertible,omitempty" yaml:"convertible,omitempty" mapstructure:"convertible"`
}

// Config is the full pdfdrop configuration, read from pdfdrop.yaml,
// PDFDROP_* environment variables, and command-line flags.
type Config struct {
	// OutputDir is the default destination directory for all modes.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	Converter ConverterConfig `json:"converter" yaml:"converter" mapstructure:"converter"`
	Formats   FormatsConfig   `json:"formats" yaml:"formats" mapstructure:"formats"`
}

const (
	DefaultConverterBinary = "pandoc"
	DefaultConverterImage  = "pandoc/latex:latest"
	// MergedFileName is the fixed name of the Merge output.
	MergedFileName = "merged.pdf"
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Converter: ConverterConfig{
			Backend: BackendPandoc,
			Binary:  DefaultConverterBinary,
			Image:   DefaultConverterImage,
		},
	}
}
