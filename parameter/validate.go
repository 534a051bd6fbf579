package parameter

import (
	"fmt"
	"strings"

	"github.com/sporadisk/punchout/format"
)

// Validate checks a config parameter against the valid options and
// returns the canonical option value.
func Validate(param string, validOptions []string) (string, error) {
	cleanParam := format.CleanParam(param)

	for _, option := range validOptions {
		if strings.EqualFold(cleanParam, option) {
			return option, nil
		}
	}

	validParamStr := strings.Join(validOptions, ", ")
	return "", fmt.Errorf("invalid param %q: Expected one of: %s", cleanParam, validParamStr)
}
