package bsl

// Witness is the witness stack of one input.
type Witness = Sequence[VarString]

func ParseWitness(slice []byte) (ParseResult[Witness], error) {
	return ParseSequence(slice, ParseVarString)
}

// Witnesses holds one Witness per input, without a count prefix.
type Witnesses = Sequence[Witness]

func ParseWitnesses(slice []byte, inputs int) (ParseResult[Witnesses], error) {
	return ParseCountedSequence(slice, inputs, ParseWitness)
}
