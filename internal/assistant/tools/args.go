package tools

import (
	"fmt"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/go-viper/mapstructure/v2"
)

// decodeArguments decodes bound tool arguments into the target struct using
// its `mapstructure` tags. JSON numbers and numeric strings are converted to
// the field types.
func decodeArguments(args domain.ToolArguments, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(map[string]any(args)); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
