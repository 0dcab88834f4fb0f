package cloud

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Params is the open string-keyed transformation parameter set accepted from
// callers. Recognized keys are mapped onto the provider's transformation
// chain; unrecognized keys are ignored rather than rejected.
type Params map[string]interface{}

// paramPrefixes maps recognized parameter names to their chain component
// prefix, e.g. {"height": 250} -> "h_250".
var paramPrefixes = map[string]string{
	"height": "h",
	"width":  "w",
	"effect": "e",
	"crop":   "c",
	"border": "bo",
	"angle":  "a",
}

// Chain renders params into a comma-separated transformation chain with a
// stable component order. It fails if no recognized parameter is present, so
// a caller can never request an empty transformation.
func (p Params) Chain() (string, error) {
	keys := make([]string, 0, len(p))
	for key := range p {
		if _, ok := paramPrefixes[key]; ok {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return "", errors.New("at least one transformation parameter must be specified")
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := strings.TrimSpace(fmt.Sprintf("%v", p[key]))
		if value == "" {
			continue
		}
		parts = append(parts, paramPrefixes[key]+"_"+value)
	}
	if len(parts) == 0 {
		return "", errors.New("at least one transformation parameter must be specified")
	}
	return strings.Join(parts, ","), nil
}
