package cliconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Serde serializes and deserializes a configuration value in one of the
// supported textual formats. Implementations are pure text transforms with no
// side effects.
type Serde interface {
	// SerializeConfig renders config pretty-printed in the codec's format.
	// A non-empty tailComment is appended as a documentation block using the
	// format's native comment syntax, preceded by a DOCS banner.
	SerializeConfig(config any, tailComment string) (string, error)

	// DeserializeConfig parses text strictly in the codec's format into
	// target, which must be a non-nil pointer to the configuration type.
	DeserializeConfig(text string, target any) error
}

// Format identifies a supported config file format
type Format string

const (
	// FormatRon is a RON-like format: pretty-printed object notation with
	// block-comment support (trailing comments and commas are tolerated
	// when parsing)
	FormatRon Format = "ron"
	// FormatYaml is the YAML format
	FormatYaml Format = "yaml"
	// FormatToml is the TOML format
	FormatToml Format = "toml"
)

const (
	ronDocsBanner  = "///////////////////////////// DOCS //////////////////////////////"
	hashDocsBanner = "############################# DOCS ##############################"
)

// commentLineStart matches the start of every line of a multi-line
// documentation text, so each one can be prefixed with a comment marker.
var commentLineStart = regexp.MustCompile(`(?m)^`)

// FormatForExtension maps a file extension (with the leading dot) to its
// Format. Unrecognized extensions, including the empty one, yield an
// ErrUnsupportedConfigFileFormat naming the offending extension -- there is
// no silent default.
func FormatForExtension(ext string) (Format, error) {
	switch strings.ToLower(ext) {
	case ".ron":
		return FormatRon, nil
	case ".yaml", ".yml":
		return FormatYaml, nil
	case ".toml":
		return FormatToml, nil
	default:
		return "", fmt.Errorf("%w: unsupported config file extension %q; supported extensions are '.ron', '.yaml', '.yml' and '.toml'",
			ErrUnsupportedConfigFileFormat, ext)
	}
}

// SerdeFor returns the codec for the given format.
func SerdeFor(format Format) Serde {
	switch format {
	case FormatYaml:
		return yamlSerde{}
	case FormatToml:
		return tomlSerde{}
	default:
		return ronSerde{}
	}
}

// SerdeForFileExtension resolves the codec from a file extension, combining
// [FormatForExtension] and [SerdeFor].
func SerdeForFileExtension(ext string) (Serde, error) {
	format, err := FormatForExtension(ext)
	if err != nil {
		return nil, err
	}
	return SerdeFor(format), nil
}

// ronSerde implements the RON-like codec. Go has no RON implementation, so
// the on-disk rendition is pretty-printed object notation handled by
// encoding/json, made comment-friendly on the way in by jsonc (which strips
// block/line comments and trailing commas before strict parsing). The
// documentation block is wrapped once in a '/* ... */' delimiter pair; any
// '*/' occurring inside the documentation is escaped so it cannot terminate
// the block early.
type ronSerde struct{}

func (ronSerde) SerializeConfig(config any, tailComment string) (string, error) {
	rendered, err := json.MarshalIndent(config, "", "    ")
	if err != nil {
		return "", fmt.Errorf("%w: serialization error for config %T: %w", ErrRon, config, err)
	}
	var builder strings.Builder
	builder.Write(rendered)
	if tailComment != "" {
		builder.WriteString("\n\n/*\n")
		builder.WriteString(ronDocsBanner)
		builder.WriteString("\n")
		builder.WriteString(strings.ReplaceAll(tailComment, "*/", `*\/`))
		builder.WriteString("\n*/\n")
	}
	return builder.String(), nil
}

func (ronSerde) DeserializeConfig(text string, target any) error {
	if err := json.Unmarshal(jsonc.ToJSON([]byte(text)), target); err != nil {
		return fmt.Errorf("%w: deserialization error into %T: %w", ErrRon, target, err)
	}
	return nil
}

// yamlSerde implements the YAML codec. Every line of the documentation block
// is individually prefixed with '# ', keeping multi-line docs valid YAML.
type yamlSerde struct{}

func (yamlSerde) SerializeConfig(config any, tailComment string) (string, error) {
	rendered, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("%w: serialization error for config %T: %w", ErrYaml, config, err)
	}
	return string(rendered) + hashCommentBlock(tailComment), nil
}

func (yamlSerde) DeserializeConfig(text string, target any) error {
	if err := yaml.Unmarshal([]byte(text), target); err != nil {
		return fmt.Errorf("%w: deserialization error into %T: %w", ErrYaml, target, err)
	}
	return nil
}

// tomlSerde implements the TOML codec. Documentation is appended the same way
// as for YAML: a '#' banner followed by '# '-prefixed lines.
type tomlSerde struct{}

func (tomlSerde) SerializeConfig(config any, tailComment string) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return "", fmt.Errorf("%w: serialization error for config %T: %w", ErrToml, config, err)
	}
	return buf.String() + hashCommentBlock(tailComment), nil
}

func (tomlSerde) DeserializeConfig(text string, target any) error {
	if err := toml.Unmarshal([]byte(text), target); err != nil {
		return fmt.Errorf("%w: deserialization error into %T: %w", ErrToml, target, err)
	}
	return nil
}

// hashCommentBlock renders tailComment as a '#'-commented documentation block,
// or "" when there is nothing to document.
func hashCommentBlock(tailComment string) string {
	if tailComment == "" {
		return ""
	}
	return "\n" + hashDocsBanner + "\n" + commentLineStart.ReplaceAllString(tailComment, "# ")
}
