package dirload

import (
	"fmt"
	"os"

	"github.com/fablekit/tng/debug"
	"github.com/fablekit/tng/parse"

	"github.com/goccy/go-yaml"
)

const (
	EnvMarkers = "TNG_MARKERS"
)

// LoadEnv decodes marker overrides from $TNG_MARKERS, a YAML or JSON
// mapping such as {sectionStart: Begin, sectionEnd: End}.
func LoadEnv() (parse.Markers, error) {
	var m parse.Markers
	envEnv := os.Getenv(EnvMarkers)
	if envEnv == "" {
		return m, nil
	}
	if err := yaml.Unmarshal([]byte(envEnv), &m); err != nil {
		return m, fmt.Errorf("error decoding $%s: %w", EnvMarkers, err)
	}
	if debug.Load() {
		debug.Logf("\nloaded markers from env: %s\n", debug.JSON{V: m})
	}
	return m, nil
}
