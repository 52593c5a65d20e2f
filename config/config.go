// Package config loads and validates the application settings file. A
// config names the enabled exchanges, their currency allow-lists and fee
// conventions, and the default budgets for trade history collection.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/goxchange/goxchange/common/convert"
	"github.com/goxchange/goxchange/exchanges/tradehistory"
	"github.com/goxchange/goxchange/log"
)

// ErrExchangeNotFound is returned when an exchange name is not present
// in the loaded config
var ErrExchangeNotFound = errors.New("exchange not found in config")

const defaultConfigName = "goxchange"

// Default returns a config with every supported exchange enabled under
// its documented conventions.
func Default() *Config {
	return &Config{
		Name:     defaultConfigName,
		LogLevel: "info",
		History: HistoryConfig{
			PageLength:        tradehistory.DefaultPageLength,
			TradeCountLimit:   tradehistory.DefaultTradeCountLimit,
			APICallCountLimit: tradehistory.DefaultAPICallCountLimit,
		},
		Exchanges: []ExchangeConfig{
			{
				Name:                "Gatecoin",
				Enabled:             true,
				SupportedCurrencies: []string{"BTC", "USD", "HKD", "EUR"},
				FeeScale:            8,
				FeeRounding:         "ceiling",
				TimeScale:           "seconds",
			},
			{
				Name:                "Bitstamp",
				Enabled:             true,
				SupportedCurrencies: []string{"BTC", "XRP", "USD", "EUR"},
				PairDelimiter:       "_",
				FeeScale:            8,
				FeeRounding:         "half-up",
				TimeScale:           "seconds",
			},
			{
				Name:                "HitBTC",
				Enabled:             true,
				SupportedCurrencies: []string{"BTC", "USD", "EUR"},
				FeeScale:            8,
				FeeRounding:         "ceiling",
				TimeScale:           "milliseconds",
			},
		},
	}
}

// Load reads the config file at path, fills unset history budgets with
// the package defaults and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Infof("config: loaded %q with %d exchange(s) from %s",
		cfg.Name, len(cfg.Exchanges), path)
	return cfg, nil
}

func (c *Config) fillDefaults() {
	if c.Name == "" {
		c.Name = defaultConfigName
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.History.PageLength == 0 {
		c.History.PageLength = tradehistory.DefaultPageLength
	}
	if c.History.TradeCountLimit == 0 {
		c.History.TradeCountLimit = tradehistory.DefaultTradeCountLimit
	}
	if c.History.APICallCountLimit == 0 {
		c.History.APICallCountLimit = tradehistory.DefaultAPICallCountLimit
	}
	for x := range c.Exchanges {
		if c.Exchanges[x].FeeScale == 0 {
			c.Exchanges[x].FeeScale = 8
		}
		if c.Exchanges[x].TimeScale == "" {
			c.Exchanges[x].TimeScale = "milliseconds"
		}
	}
}

// Validate checks the config for settings that would misadapt data at
// runtime
func (c *Config) Validate() error {
	if c.History.PageLength < 0 {
		return errors.Wrap(tradehistory.ErrInvalidPageLength, "history.pageLength")
	}
	if c.History.TradeCountLimit < 0 || c.History.APICallCountLimit < 0 {
		return errors.New("history limits cannot be negative")
	}

	seen := make(map[string]struct{}, len(c.Exchanges))
	for x := range c.Exchanges {
		e := &c.Exchanges[x]
		if e.Name == "" {
			return errors.Errorf("exchanges[%d]: name is required", x)
		}
		key := strings.ToLower(e.Name)
		if _, ok := seen[key]; ok {
			return errors.Errorf("duplicate exchange %q", e.Name)
		}
		seen[key] = struct{}{}

		if e.FeeScale < 0 {
			return errors.Errorf("%s: feeScale cannot be negative", e.Name)
		}
		switch e.FeeRounding {
		case "", "ceiling", "half-up":
		default:
			return errors.Errorf("%s: unknown feeRounding %q", e.Name, e.FeeRounding)
		}
		if _, err := e.TimeScaleFactor(); err != nil {
			return err
		}
		if e.Enabled && len(e.SupportedCurrencies) == 0 {
			log.Warnf("config: %s enabled with an empty currency allow-list, all balances will be dropped", e.Name)
		}
	}
	return nil
}

// GetExchangeConfig looks an exchange up by name, case-insensitively
func (c *Config) GetExchangeConfig(name string) (*ExchangeConfig, error) {
	for x := range c.Exchanges {
		if strings.EqualFold(c.Exchanges[x].Name, name) {
			return &c.Exchanges[x], nil
		}
	}
	return nil, errors.Wrap(ErrExchangeNotFound, name)
}

// HistoryParams builds a trade history config carrying this file's
// default budgets; callers layer their filters on top.
func (c *Config) HistoryParams() tradehistory.Config {
	return tradehistory.Config{
		Paging:            tradehistory.Paging{PageLength: c.History.PageLength},
		TradeCountLimit:   c.History.TradeCountLimit,
		APICallCountLimit: c.History.APICallCountLimit,
	}
}

// TimeScaleFactor resolves the configured timestamp unit to the factor
// used when normalising exchange timestamps to milliseconds.
func (e *ExchangeConfig) TimeScaleFactor() (int64, error) {
	switch e.TimeScale {
	case "seconds":
		return convert.TimeScaleSeconds, nil
	case "", "milliseconds":
		return convert.TimeScaleMilliseconds, nil
	}
	return 0, errors.Errorf("%s: unknown timeScale %q", e.Name, e.TimeScale)
}
