package brandgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyInstructions is returned when the instruction template has no content.
var ErrEmptyInstructions = errors.New("instructions cannot be empty")

// Spec is a caller-supplied asset description. It is opaque here and is
// forwarded verbatim to the prompt model.
type Spec map[string]any

// LoadSpec reads and decodes a JSON spec file.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}

	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode spec %s: %w", path, err)
	}
	return spec, nil
}

// LoadInstructions reads the instruction template used as the system prompt.
func LoadInstructions(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read instructions: %w", err)
	}
	instructions := string(data)
	if err := ValidateInstructions(instructions); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return instructions, nil
}

// UserMessage renders the spec as the user-role message sent to the prompt model.
func (s Spec) UserMessage() (string, error) {
	body, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode spec: %w", err)
	}

	var b strings.Builder
	b.WriteString("JSON SPEC:\n")
	b.Write(body)
	b.WriteString("\n\n")
	return b.String(), nil
}
