package config

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/goxchange/goxchange/currency"
	"github.com/goxchange/goxchange/exchanges/trade"
)

// Config holds the runtime settings for every adapter and the trade
// history driver defaults.
type Config struct {
	Name      string           `mapstructure:"name"`
	LogLevel  string           `mapstructure:"logLevel"`
	History   HistoryConfig    `mapstructure:"history"`
	Exchanges []ExchangeConfig `mapstructure:"exchanges"`
}

// HistoryConfig carries the default budgets applied to trade history
// collection when a run does not set its own.
type HistoryConfig struct {
	PageLength        int `mapstructure:"pageLength"`
	TradeCountLimit   int `mapstructure:"tradeCountLimit"`
	APICallCountLimit int `mapstructure:"apiCallCountLimit"`
}

// ExchangeConfig holds per-exchange adaptation settings
type ExchangeConfig struct {
	Name                string   `mapstructure:"name"`
	Enabled             bool     `mapstructure:"enabled"`
	SupportedCurrencies []string `mapstructure:"supportedCurrencies"`
	PairDelimiter       string   `mapstructure:"pairDelimiter"`
	FeeScale            int32    `mapstructure:"feeScale"`
	FeeRounding         string   `mapstructure:"feeRounding"`
	TimeScale           string   `mapstructure:"timeScale"`

	// Settings carries venue specific options that have no dedicated
	// field, e.g. API host overrides.
	Settings map[string]interface{} `mapstructure:"settings"`
}

// setting looks a loose key up case-insensitively. Viper lowercases all
// config keys during decoding, so a camelCase key only exists in its
// lowercased form after Load.
func (e *ExchangeConfig) setting(key string) interface{} {
	if v, ok := e.Settings[key]; ok {
		return v
	}
	return e.Settings[strings.ToLower(key)]
}

// SettingString reads a loose setting as a string, returning the empty
// string when absent
func (e *ExchangeConfig) SettingString(key string) string {
	return cast.ToString(e.setting(key))
}

// SettingInt reads a loose setting as an int, returning zero when absent
func (e *ExchangeConfig) SettingInt(key string) int {
	return cast.ToInt(e.setting(key))
}

// SettingBool reads a loose setting as a bool, returning false when
// absent
func (e *ExchangeConfig) SettingBool(key string) bool {
	return cast.ToBool(e.setting(key))
}

// Currencies returns the configured allow-list as currency codes
func (e *ExchangeConfig) Currencies() currency.Codes {
	codes := make(currency.Codes, 0, len(e.SupportedCurrencies))
	for _, s := range e.SupportedCurrencies {
		codes = codes.Add(currency.NewCode(s))
	}
	return codes
}

// FeeRoundingMode maps the configured rounding name onto the fee
// calculation mode, defaulting to ceiling which is how most venues
// settle in their own favour.
func (e *ExchangeConfig) FeeRoundingMode() trade.FeeRounding {
	if e.FeeRounding == "half-up" {
		return trade.FeeRoundHalfUp
	}
	return trade.FeeRoundCeiling
}
