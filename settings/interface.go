package settings

import (
	"github.com/bsv-blockchain/go-chaincfg"
)

type Settings struct {
	ClientName     string
	LogLevel       string
	LoggerType     string
	PrettyLogs     bool
	Network        string
	ChainCfgParams *chaincfg.Params
	Decoder        DecoderSettings
}

type DecoderSettings struct {
	// AssetInfoEncoding selects the asset info wire variant, "compact" (canonical) or "fixed".
	AssetInfoEncoding string
	// StrictCompactLength rejects CompactLength values that are not minimally encoded.
	StrictCompactLength bool
	// SatsNet selects the satsnet output layout (outputs carry asset infos).
	SatsNet bool
	// ConvertConcurrency bounds the goroutines used when materialising a block into the domain model.
	ConvertConcurrency int
}
