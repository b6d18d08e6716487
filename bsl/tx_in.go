package bsl

// TxIn is a transaction input: the spent outpoint, the unlocking script and the sequence number.
type TxIn struct {
	slice           []byte
	prevOut         OutPoint
	unlockingScript Script
	sequenceNumber  uint32
}

func ParseTxIn(slice []byte) (ParseResult[TxIn], error) {
	return parseTxIn(slice, ParseScript)
}

func parseTxIn(slice []byte, parseScript ParseFunc[Script]) (ParseResult[TxIn], error) {
	prevOut, err := ParseOutPoint(slice)
	if err != nil {
		return ParseResult[TxIn]{}, err
	}

	script, err := parseScript(prevOut.remaining)
	if err != nil {
		return ParseResult[TxIn]{}, err
	}

	sequence, err := readUint32(script.remaining)
	if err != nil {
		return ParseResult[TxIn]{}, err
	}

	consumed := prevOut.consumed + script.consumed + sequence.consumed

	return NewParseResult(sequence.remaining, TxIn{
		slice:           slice[:consumed:consumed],
		prevOut:         prevOut.parsed,
		unlockingScript: script.parsed,
		sequenceNumber:  sequence.parsed,
	}, consumed), nil
}

func (in TxIn) Bytes() []byte {
	return in.slice
}

func (in TxIn) PrevOut() OutPoint {
	return in.prevOut
}

func (in TxIn) UnlockingScript() Script {
	return in.unlockingScript
}

func (in TxIn) SequenceNumber() uint32 {
	return in.sequenceNumber
}

type TxIns = Sequence[TxIn]

func ParseTxIns(slice []byte) (ParseResult[TxIns], error) {
	return ParseSequence(slice, ParseTxIn)
}
