package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sat20-labs/satsnet-slices/bsl"
	"github.com/sat20-labs/satsnet-slices/errors"
	"github.com/sat20-labs/satsnet-slices/model"
	"github.com/sat20-labs/satsnet-slices/settings"
	"github.com/sat20-labs/satsnet-slices/ulogger"
	"github.com/urfave/cli/v2"
)

const (
	kindLen        = "len"
	kindString     = "string"
	kindAssetInfo  = "assetinfo"
	kindAssetInfos = "assetinfos"
	kindSatsRanges = "satsranges"
	kindTx         = "tx"
	kindHeader     = "header"
	kindBlock      = "block"
)

type options struct {
	strict      bool
	satsNet     bool
	encoding    bsl.AssetInfoEncoding
	verify      bool
	concurrency int
	genesisHash string
}

func optionsFromContext(c *cli.Context, tSettings *settings.Settings) options {
	opts := options{
		strict:      c.Bool("strict"),
		satsNet:     c.Bool("satsnet"),
		encoding:    bsl.AssetInfoEncodingCompact,
		verify:      c.Bool("verify"),
		concurrency: tSettings.Decoder.ConvertConcurrency,
		genesisHash: tSettings.ChainCfgParams.GenesisHash.String(),
	}

	if c.Bool("fixed") {
		opts.encoding = bsl.AssetInfoEncodingFixed
	}

	if c.IsSet("concurrency") {
		opts.concurrency = c.Int("concurrency")
	}

	return opts
}

// dialect applies --strict to every CompactLength, not only the top level one.
func (o options) dialect() bsl.Dialect {
	return bsl.Dialect{
		SatsNet:           o.satsNet,
		AssetInfoEncoding: o.encoding,
		Canonical:         o.strict,
	}
}

// readInput returns the bytes given by --hex or --file, or hex read from r when neither is set.
func readInput(hexInput, file string, r io.Reader) ([]byte, error) {
	switch {
	case hexInput != "" && file != "":
		return nil, errors.NewInvalidArgumentError("--hex and --file are mutually exclusive")
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.NewInvalidArgumentError("failed to read %s", file, err)
		}

		return b, nil
	case hexInput == "":
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.NewInvalidArgumentError("failed to read stdin", err)
		}

		hexInput = string(b)
	}

	b, err := hex.DecodeString(strings.TrimSpace(hexInput))
	if err != nil {
		return nil, errors.NewInvalidArgumentError("input is not valid hex", err)
	}

	return b, nil
}

type dumper struct {
	w      io.Writer
	logger ulogger.Logger
	opts   options
}

func (d *dumper) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(d.w, format+"\n", args...)
}

func (d *dumper) dump(ctx context.Context, kind string, input []byte) error {
	var (
		consumed int
		err      error
	)

	switch kind {
	case kindLen:
		consumed, err = d.dumpLen(input)
	case kindString:
		consumed, err = d.dumpString(input)
	case kindAssetInfo:
		consumed, err = d.dumpAssetInfo(input)
	case kindAssetInfos:
		consumed, err = d.dumpAssetInfos(input)
	case kindSatsRanges:
		consumed, err = d.dumpSatsRanges(input)
	case kindTx:
		consumed, err = d.dumpTx(input)
	case kindHeader:
		consumed, err = d.dumpHeader(input)
	case kindBlock:
		consumed, err = d.dumpBlock(ctx, input)
	default:
		return errors.NewInvalidArgumentError("unknown record kind %q", kind)
	}

	if err != nil {
		if data, ok := errors.ShortRead(err); ok {
			d.logger.Debugf("[%s] short read, needed %d bytes, %d available", kind, data.Needed, data.Available)
		}

		return errors.NewProcessingError("[%s] failed to decode %d bytes (%s)", kind, len(input), errors.GetErrorCategory(err), err)
	}

	d.printf("consumed: %d", consumed)
	d.printf("remaining: %d", len(input)-consumed)

	return nil
}

func (d *dumper) dumpLen(input []byte) (int, error) {
	parse := bsl.ParseLen
	if d.opts.strict {
		parse = bsl.ParseLenCanonical
	}

	l, err := parse(input)
	if err != nil {
		return 0, err
	}

	d.printf("value: %d", l.N())
	d.printf("canonical: %t", l.Consumed() == bsl.LenSize(l.N()))

	return l.Consumed(), nil
}

func (d *dumper) dumpString(input []byte) (int, error) {
	r, err := d.opts.dialect().VarString()(input)
	if err != nil {
		return 0, err
	}

	d.printVarString("", r.Parsed())

	return r.Consumed(), nil
}

func (d *dumper) printVarString(label string, v bsl.VarString) {
	d.printf("%slength: %d", label, v.Len())

	s, err := v.String()
	if err != nil {
		d.printf("%spayload (hex): %s", label, hex.EncodeToString(v.Payload()))
		return
	}

	d.printf("%spayload: %q", label, s)
}

func (d *dumper) dumpAssetInfo(input []byte) (int, error) {
	r, err := d.opts.dialect().AssetInfo()(input)
	if err != nil {
		return 0, err
	}

	if err := d.printAssetInfo("", r.Parsed()); err != nil {
		return 0, err
	}

	return r.Consumed(), nil
}

func (d *dumper) printAssetInfo(indent string, info bsl.AssetInfo) error {
	asset, err := model.NewAssetFromSlice(info)
	if err != nil {
		return err
	}

	d.printf("%sname: %s", indent, asset.Name())
	d.printf("%samount: %d", indent, asset.Amount)
	d.printf("%sbinding sat: %d", indent, asset.BindingSat)

	return nil
}

func (d *dumper) dumpAssetInfos(input []byte) (int, error) {
	r, err := d.opts.dialect().AssetInfos()(input)
	if err != nil {
		return 0, err
	}

	if err := d.printAssetInfos("", r.Parsed()); err != nil {
		return 0, err
	}

	return r.Consumed(), nil
}

func (d *dumper) printAssetInfos(indent string, infos bsl.AssetInfos) error {
	d.printf("%sassets: %d", indent, infos.N())

	i := 0

	it := infos.Iter()
	for info, ok := it.Next(); ok; info, ok = it.Next() {
		d.printf("%s  [%d]", indent, i)

		if err := d.printAssetInfo(indent+"    ", info); err != nil {
			return err
		}

		i++
	}

	return it.Err()
}

func (d *dumper) dumpSatsRanges(input []byte) (int, error) {
	r, err := d.opts.dialect().SatsRanges()(input)
	if err != nil {
		return 0, err
	}

	ranges, err := model.NewSatsRangesFromSlice(r.Parsed())
	if err != nil {
		return 0, err
	}

	d.printf("ranges: %d", len(ranges))

	for i, sr := range ranges {
		end, err := sr.End()
		if err != nil {
			return 0, err
		}

		d.printf("  [%d] start: %d size: %d end: %d", i, sr.Start, sr.Size, end)
	}

	total, err := model.TotalSats(ranges)
	if err != nil {
		return 0, err
	}

	d.printf("total sats: %d", total)

	return r.Consumed(), nil
}

func (d *dumper) dumpTx(input []byte) (int, error) {
	r, err := d.opts.dialect().Transaction()(input)
	if err != nil {
		return 0, err
	}

	if err := d.printTx("", r.Parsed()); err != nil {
		return 0, err
	}

	return r.Consumed(), nil
}

func (d *dumper) printTx(indent string, tx bsl.Transaction) error {
	d.printf("%stxid: %s", indent, tx.TxID().String())

	if tx.IsSegwit() {
		d.printf("%swtxid: %s", indent, tx.WTxID().String())
	}

	d.printf("%sversion: %d", indent, tx.Version())
	d.printf("%ssize: %d", indent, len(tx.Bytes()))
	d.printf("%scoinbase: %t", indent, tx.IsCoinbase())
	d.printf("%sinputs: %d", indent, tx.Inputs().N())

	i := 0

	inputs := tx.Inputs().Iter()
	for in, ok := inputs.Next(); ok; in, ok = inputs.Next() {
		d.printf("%s  [%d] %s:%d sequence: %08x script: %s", indent, i,
			in.PrevOut().TxID().String(), in.PrevOut().Vout(), in.SequenceNumber(), hex.EncodeToString(in.UnlockingScript().Script()))

		i++
	}

	if err := inputs.Err(); err != nil {
		return err
	}

	d.printf("%soutputs: %d", indent, tx.Outputs().N())

	i = 0

	outputs := tx.Outputs().Iter()
	for out, ok := outputs.Next(); ok; out, ok = outputs.Next() {
		d.printf("%s  [%d] value: %d script: %s", indent, i, out.Value(), hex.EncodeToString(out.LockingScript().Script()))

		if out.LockingScript().IsProvablyUnspendable() {
			d.printf("%s      unspendable", indent)
		}

		if !out.Assets().IsEmpty() {
			if err := d.printAssetInfos(indent+"      ", out.Assets()); err != nil {
				return err
			}
		}

		i++
	}

	if err := outputs.Err(); err != nil {
		return err
	}

	d.printf("%slocktime: %d", indent, tx.Locktime())

	return nil
}

func (d *dumper) dumpHeader(input []byte) (int, error) {
	r, err := bsl.ParseBlockHeader(input)
	if err != nil {
		return 0, err
	}

	d.printHeader(r.Parsed())

	return r.Consumed(), nil
}

func (d *dumper) printHeader(h bsl.BlockHeader) {
	header := model.NewBlockHeaderFromSlice(h)

	met, hash, _ := header.HasMetTargetDifficulty()

	d.printf("hash: %s", hash.String())
	d.printf("version: %d", h.Version())
	d.printf("previous: %s", header.HashPrevBlock.String())
	d.printf("merkle root: %s", header.HashMerkleRoot.String())
	d.printf("time: %d", header.Timestamp)
	d.printf("bits: %s", header.Bits.String())
	d.printf("difficulty: %s", header.Bits.CalculateDifficulty().Text('f', 8))
	d.printf("nonce: %d", header.Nonce)
	d.printf("target met: %t", met)

	if hash.String() == d.opts.genesisHash {
		d.printf("genesis: true")
	}
}

func (d *dumper) dumpBlock(ctx context.Context, input []byte) (int, error) {
	r, err := d.opts.dialect().Block()(input)
	if err != nil {
		return 0, err
	}

	b := r.Parsed()

	d.printHeader(b.Header())

	d.printf("transactions: %d", b.Transactions().N())

	i := 0

	txs := b.Transactions().Iter()
	for tx, ok := txs.Next(); ok; tx, ok = txs.Next() {
		d.printf("  [%d]", i)

		if err := d.printTx("    ", tx); err != nil {
			return 0, err
		}

		i++
	}

	if err := txs.Err(); err != nil {
		return 0, err
	}

	if d.opts.verify {
		block, err := model.NewBlockFromSlice(ctx, d.logger, b, d.opts.concurrency)
		if err != nil {
			return 0, err
		}

		if err := block.CheckMerkleRoot(); err != nil {
			return 0, err
		}

		d.printf("merkle root: valid")
		d.logger.Infof("[bsldump] block %s verified, %d outputs carry assets", block.Hash().String(), len(block.Assets))
	}

	return r.Consumed(), nil
}
