package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// The module carries no protobuf-generated types, so struct values stored
// through collections use the hand-written codecs below. Checkpoints use a
// fixed-width big-endian layout (they are read on every epoch computation),
// params use JSON (read rarely, mutated only by governance).

var (
	// CheckpointValue is the collections value codec for Checkpoint.
	CheckpointValue collcodec.ValueCodec[Checkpoint] = checkpointValueCodec{}
	// ParamsValue is the collections value codec for Params.
	ParamsValue collcodec.ValueCodec[Params] = paramsValueCodec{}
)

type checkpointValueCodec struct{}

// Encode lays out the four uint64 fields big-endian, followed by the
// variable-length EmissionsPerEpoch bytes.
func (checkpointValueCodec) Encode(value Checkpoint) ([]byte, error) {
	amtBz, err := value.EmissionsPerEpoch.Marshal()
	if err != nil {
		return nil, err
	}
	bz := make([]byte, 32, 32+len(amtBz))
	binary.BigEndian.PutUint64(bz[0:8], value.StartTimestamp)
	binary.BigEndian.PutUint64(bz[8:16], value.EpochLength)
	binary.BigEndian.PutUint64(bz[16:24], value.ReductionCliff)
	binary.BigEndian.PutUint64(bz[24:32], value.ReductionBasisPoints)
	return append(bz, amtBz...), nil
}

func (checkpointValueCodec) Decode(b []byte) (Checkpoint, error) {
	if len(b) < 32 {
		return Checkpoint{}, fmt.Errorf("malformed checkpoint value: %d bytes", len(b))
	}
	var c Checkpoint
	c.StartTimestamp = binary.BigEndian.Uint64(b[0:8])
	c.EpochLength = binary.BigEndian.Uint64(b[8:16])
	c.ReductionCliff = binary.BigEndian.Uint64(b[16:24])
	c.ReductionBasisPoints = binary.BigEndian.Uint64(b[24:32])
	if err := c.EmissionsPerEpoch.Unmarshal(b[32:]); err != nil {
		return Checkpoint{}, err
	}
	return c, nil
}

func (checkpointValueCodec) EncodeJSON(value Checkpoint) ([]byte, error) {
	return json.Marshal(value)
}

func (checkpointValueCodec) DecodeJSON(b []byte) (Checkpoint, error) {
	var c Checkpoint
	err := json.Unmarshal(b, &c)
	return c, err
}

func (checkpointValueCodec) Stringify(value Checkpoint) string {
	return fmt.Sprintf("Checkpoint(start=%d, length=%d, emissions=%s, cliff=%d, reduction=%dbps)",
		value.StartTimestamp, value.EpochLength, value.EmissionsPerEpoch, value.ReductionCliff, value.ReductionBasisPoints)
}

func (checkpointValueCodec) ValueType() string {
	return "Checkpoint"
}

type paramsValueCodec struct{}

func (paramsValueCodec) Encode(value Params) ([]byte, error) {
	return json.Marshal(value)
}

func (paramsValueCodec) Decode(b []byte) (Params, error) {
	var p Params
	err := json.Unmarshal(b, &p)
	return p, err
}

func (paramsValueCodec) EncodeJSON(value Params) ([]byte, error) {
	return json.Marshal(value)
}

func (paramsValueCodec) DecodeJSON(b []byte) (Params, error) {
	var p Params
	err := json.Unmarshal(b, &p)
	return p, err
}

func (paramsValueCodec) Stringify(value Params) string {
	return value.String()
}

func (paramsValueCodec) ValueType() string {
	return "Params"
}
