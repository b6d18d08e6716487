package settings

import (
	"strings"

	"github.com/bsv-blockchain/go-chaincfg"
	"github.com/sat20-labs/satsnet-slices/errors"
)

const (
	AssetInfoEncodingCompact = "compact"
	AssetInfoEncodingFixed   = "fixed"
)

// NewSettings reads every setting from gocore config (settings.conf, settings_local.conf and the
// environment), falling back to the defaults below. An unknown network falls back to mainnet;
// call Validate to reject it instead.
func NewSettings() *Settings {
	network := getString("network", "mainnet")

	params, err := GetChainParams(network)
	if err != nil {
		params = &chaincfg.MainNetParams
	}

	return &Settings{
		ClientName:     getString("clientName", "bsldump"),
		LogLevel:       getString("logLevel", "INFO"),
		LoggerType:     getString("loggerType", "zerolog"),
		PrettyLogs:     getBool("PRETTY_LOGS", true),
		Network:        network,
		ChainCfgParams: params,
		Decoder: DecoderSettings{
			AssetInfoEncoding:   strings.ToLower(getString("bsl_assetInfoEncoding", AssetInfoEncodingCompact)),
			StrictCompactLength: getBool("bsl_strictCompactLength", false),
			SatsNet:             getBool("bsl_satsnet", false),
			ConvertConcurrency:  getInt("bsl_convertConcurrency", 32),
		},
	}
}

// GetChainParams maps a network name to its chain parameters.
func GetChainParams(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "mainnet", "main":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3", "test":
		return &chaincfg.TestNetParams, nil
	case "regtest", "regression":
		return &chaincfg.RegressionNetParams, nil
	case "stn":
		return &chaincfg.StnParams, nil
	default:
		return nil, errors.NewConfigurationError("unknown network %q", network)
	}
}

// Validate reports the first setting that the decoder cannot honour.
func (s *Settings) Validate() error {
	if _, err := GetChainParams(s.Network); err != nil {
		return err
	}

	switch s.Decoder.AssetInfoEncoding {
	case AssetInfoEncodingCompact, AssetInfoEncodingFixed:
	default:
		return errors.NewConfigurationError("bsl_assetInfoEncoding must be %q or %q, got %q",
			AssetInfoEncodingCompact, AssetInfoEncodingFixed, s.Decoder.AssetInfoEncoding)
	}

	if s.Decoder.ConvertConcurrency <= 0 {
		return errors.NewConfigurationError("bsl_convertConcurrency must be positive, got %d", s.Decoder.ConvertConcurrency)
	}

	return nil
}
