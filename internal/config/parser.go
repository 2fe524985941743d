// Package config resolves command-line flags into settings.
package config

import (
	"fmt"

	"github.com/fgeck/data-mirror/internal/models"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. They match the flag names they are bound to.
const (
	KeyType    = "type"
	KeyVerbose = "verbose"
	KeyQuiet   = "quiet"
	KeyJSON    = "json"
)

// Parser handles settings resolution.
type Parser struct {
	v *viper.Viper
}

// NewParser creates a new settings parser with defaults registered.
func NewParser() *Parser {
	v := viper.New()
	v.SetDefault(KeyType, models.DefaultDatabaseType)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyJSON, false)
	return &Parser{v: v}
}

// BindFlags binds every flag in the set. Only flags the user changed
// override the registered defaults.
func (p *Parser) BindFlags(flags *pflag.FlagSet) error {
	if flags == nil {
		return fmt.Errorf("flag set is nil")
	}
	if err := p.v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// Settings returns the resolved settings.
func (p *Parser) Settings() models.Settings {
	return models.Settings{
		Type: p.v.GetString(KeyType),
		Log: models.LogSettings{
			Verbose: p.v.GetBool(KeyVerbose),
			Quiet:   p.v.GetBool(KeyQuiet),
			JSON:    p.v.GetBool(KeyJSON),
		},
	}
}
