package cadence

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v4"
)

// MessagePackConverter encodes workflow and activity payloads with msgpack
// instead of cadence's default JSON. Both the trigger side and the worker
// install it so argument framing matches.
type MessagePackConverter struct{}

func NewMessagePackConverter() *MessagePackConverter {
	return &MessagePackConverter{}
}

func (c *MessagePackConverter) ToData(values ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)

	for i, v := range values {
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("msgpack encode argument %d (%s): %w", i, reflect.TypeOf(v), err)
		}
	}

	return buf.Bytes(), nil
}

func (c *MessagePackConverter) FromData(data []byte, targets ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))

	for i, v := range targets {
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("msgpack decode argument %d (%s): %w", i, reflect.TypeOf(v), err)
		}
	}

	return nil
}
