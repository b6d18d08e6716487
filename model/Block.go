package model

import (
	"context"
	"fmt"
	"time"

	"github.com/bsv-blockchain/go-bc"
	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/sat20-labs/satsnet-slices/bsl"
	"github.com/sat20-labs/satsnet-slices/errors"
	"github.com/sat20-labs/satsnet-slices/ulogger"
	"github.com/sat20-labs/satsnet-slices/util"
	"golang.org/x/sync/errgroup"
)

// OutputAssets lists the assets carried by one output of a satsnet block.
type OutputAssets struct {
	TxIndex int      `json:"txIndex"`
	Vout    int      `json:"vout"`
	Assets  []*Asset `json:"assets"`
}

type Block struct {
	Header           *BlockHeader
	Transactions     []*bt.Tx
	TransactionCount uint64
	Assets           []OutputAssets

	// local
	hash *chainhash.Hash
}

// NewBlockFromSlice converts a parsed block into owned go-bt transactions. Transactions are
// converted concurrently, at most concurrency at a time; the order of the block is kept.
func NewBlockFromSlice(ctx context.Context, logger ulogger.Logger, b bsl.Block, concurrency int) (block *Block, err error) {
	initPrometheusMetrics()

	start := time.Now()

	defer func() {
		prometheusBlockConversions.Inc()
		prometheusBlockConversionDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)

		if err != nil {
			prometheusBlockConversionErrors.Inc()
			return
		}

		prometheusConvertedTransactions.Add(float64(block.TransactionCount))
		prometheusConvertedAssetOutputs.Add(float64(len(block.Assets)))
	}()

	header := NewBlockHeaderFromSlice(b.Header())
	blockHash := header.Hash()

	txs, err := b.Transactions().Collect()
	if err != nil {
		return nil, errors.NewProcessingError("[NewBlockFromSlice][%s] failed to iterate transactions", blockHash.String(), err)
	}

	block = &Block{
		Header:           header,
		Transactions:     make([]*bt.Tx, len(txs)),
		TransactionCount: uint64(len(txs)),
		hash:             blockHash,
	}

	assets := make([][]OutputAssets, len(txs))

	g, gCtx := errgroup.WithContext(ctx)
	limit := util.SafeSetLimit(g, concurrency)

	logger.Debugf("[NewBlockFromSlice][%s] converting %d transactions, concurrency %d", blockHash.String(), len(txs), limit)

	for idx, tx := range txs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			btTx, err := NewTxFromSlice(tx)
			if err != nil {
				return errors.NewProcessingError("[NewBlockFromSlice][%s] transaction %d", blockHash.String(), idx, err)
			}

			block.Transactions[idx] = btTx

			outAssets, err := outputAssets(idx, tx)
			if err != nil {
				return errors.NewProcessingError("[NewBlockFromSlice][%s] assets of transaction %d", blockHash.String(), idx, err)
			}

			assets[idx] = outAssets

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, a := range assets {
		block.Assets = append(block.Assets, a...)
	}

	return block, nil
}

func outputAssets(txIndex int, tx bsl.Transaction) ([]OutputAssets, error) {
	var out []OutputAssets

	vout := 0

	it := tx.Outputs().Iter()
	for o, ok := it.Next(); ok; o, ok = it.Next() {
		if !o.Assets().IsEmpty() {
			assets, err := NewAssetsFromSlice(o.Assets())
			if err != nil {
				return nil, err
			}

			out = append(out, OutputAssets{TxIndex: txIndex, Vout: vout, Assets: assets})
		}

		vout++
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (b *Block) Hash() *chainhash.Hash {
	if b.hash != nil {
		return b.hash
	}

	b.hash = b.Header.Hash()

	return b.hash
}

func (b *Block) String() string {
	return fmt.Sprintf("%s (%d transactions, %d outputs with assets)", b.Hash().String(), b.TransactionCount, len(b.Assets))
}

// CheckMerkleRoot rebuilds the merkle root from the transaction ids and compares it with the header.
func (b *Block) CheckMerkleRoot() error {
	if len(b.Transactions) == 0 {
		return errors.NewProcessingError("[CheckMerkleRoot][%s] block has no transactions", b.Hash().String())
	}

	txIDs := make([]string, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		txIDs = append(txIDs, tx.TxID())
	}

	merkleRoot, err := bc.BuildMerkleRoot(txIDs)
	if err != nil {
		return errors.NewProcessingError("[CheckMerkleRoot][%s] failed to build merkle root", b.Hash().String(), err)
	}

	if merkleRoot != b.Header.HashMerkleRoot.String() {
		return errors.NewProcessingError("[CheckMerkleRoot][%s] merkle root mismatch, header %s, calculated %s",
			b.Hash().String(), b.Header.HashMerkleRoot.String(), merkleRoot)
	}

	return nil
}
