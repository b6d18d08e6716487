package model

import (
	"bytes"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"github.com/sat20-labs/satsnet-slices/bsl"
	"github.com/sat20-labs/satsnet-slices/errors"
)

// NewTxFromSlice maps a parsed transaction into an owned go-bt transaction. go-bt has no
// witness support, witnesses are dropped; the txid is unaffected.
func NewTxFromSlice(tx bsl.Transaction) (*bt.Tx, error) {
	inputs, err := tx.Inputs().Collect()
	if err != nil {
		return nil, err
	}

	outputs, err := tx.Outputs().Collect()
	if err != nil {
		return nil, err
	}

	btTx := &bt.Tx{
		Version:  uint32(tx.Version()), //nolint:gosec // same bits, unsigned in go-bt
		LockTime: tx.Locktime(),
		Inputs:   make([]*bt.Input, 0, len(inputs)),
		Outputs:  make([]*bt.Output, 0, len(outputs)),
	}

	for _, in := range inputs {
		input, err := NewInputFromSlice(in)
		if err != nil {
			return nil, err
		}

		btTx.Inputs = append(btTx.Inputs, input)
	}

	for vout, out := range outputs {
		output, err := NewOutputFromSlice(out)
		if err != nil {
			return nil, errors.NewProcessingError("[NewTxFromSlice][%s] output %d", tx.TxID().String(), vout, err)
		}

		btTx.Outputs = append(btTx.Outputs, output)
	}

	return btTx, nil
}

func NewInputFromSlice(in bsl.TxIn) (*bt.Input, error) {
	input := &bt.Input{
		PreviousTxOutIndex: in.PrevOut().Vout(),
		SequenceNumber:     in.SequenceNumber(),
		UnlockingScript:    bscript.NewFromBytes(bytes.Clone(in.UnlockingScript().Script())),
	}

	prevTxID := in.PrevOut().TxID()
	if err := input.PreviousTxIDAdd(&prevTxID); err != nil {
		return nil, errors.NewProcessingError("[NewInputFromSlice] invalid previous txid %s", prevTxID.String(), err)
	}

	return input, nil
}

// NewOutputFromSlice maps a parsed output. Assets carried by satsnet outputs are mapped
// separately by NewAssetsFromSlice.
func NewOutputFromSlice(out bsl.TxOut) (*bt.Output, error) {
	if out.Value() < 0 {
		return nil, errors.NewInvalidEncodingError("[NewOutputFromSlice] negative value %d", out.Value())
	}

	return &bt.Output{
		Satoshis:      uint64(out.Value()),
		LockingScript: bscript.NewFromBytes(bytes.Clone(out.LockingScript().Script())),
	}, nil
}
