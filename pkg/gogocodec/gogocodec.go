// Package gogocodec registers a gRPC codec backed by
// github.com/gogo/protobuf/proto, so grpc.Dial-ed connections marshal
// sensorpb messages the same way whether they reach this agent or any
// other gogo-protobuf Go service. Adapted from grafana-tempo's
// pkg/gogocodec, itself adapted from Jaeger's.
package gogocodec

import (
	"fmt"

	gogoproto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc/encoding"
)

const Name = "proto"

// NewCodec returns a grpc encoding.Codec that marshals gogo-protobuf
// messages directly. A value that doesn't implement gogoproto.Message
// is rejected with an error; there is no fallback to the standard
// golang/protobuf path.
func NewCodec() encoding.Codec {
	return codec{}
}

type codec struct{}

func (codec) Marshal(v interface{}) ([]byte, error) {
	gogoMsg, ok := v.(gogoproto.Message)
	if !ok {
		return nil, fmt.Errorf("gogocodec: %T does not implement gogo proto.Message", v)
	}
	return gogoproto.Marshal(gogoMsg)
}

func (codec) Unmarshal(data []byte, v interface{}) error {
	gogoMsg, ok := v.(gogoproto.Message)
	if !ok {
		return fmt.Errorf("gogocodec: %T does not implement gogo proto.Message", v)
	}
	gogoMsg.Reset()
	return gogoproto.Unmarshal(data, gogoMsg)
}

func (codec) Name() string {
	return Name
}
