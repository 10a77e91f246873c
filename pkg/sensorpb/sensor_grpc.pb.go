// Code generated by protoc-gen-go-grpc from sensor.proto. Hand-maintained
// alongside sensor.pb.go (see that file's header).

package sensorpb

import (
	context "context"

	grpc "google.golang.org/grpc"
)

const (
	SensorService_StreamData_FullMethodName = "/sensorpb.SensorService/StreamData"
)

// SensorServiceClient is the client API for SensorService.
type SensorServiceClient interface {
	// StreamData opens a client-streaming call: the caller sends zero or
	// more SensorEvent messages and receives a single StreamAck when the
	// server closes its half of the stream.
	StreamData(ctx context.Context, opts ...grpc.CallOption) (SensorService_StreamDataClient, error)
}

type sensorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSensorServiceClient wraps an established connection in the
// generated-style client stub.
func NewSensorServiceClient(cc grpc.ClientConnInterface) SensorServiceClient {
	return &sensorServiceClient{cc}
}

func (c *sensorServiceClient) StreamData(ctx context.Context, opts ...grpc.CallOption) (SensorService_StreamDataClient, error) {
	stream, err := c.cc.NewStream(ctx, &SensorService_ServiceDesc.Streams[0], SensorService_StreamData_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &sensorServiceStreamDataClient{stream}, nil
}

// SensorService_StreamDataClient is the client side of the StreamData
// call: one Send per SensorEvent, a single CloseAndRecv at the end.
type SensorService_StreamDataClient interface {
	Send(*SensorEvent) error
	CloseAndRecv() (*StreamAck, error)
	grpc.ClientStream
}

type sensorServiceStreamDataClient struct {
	grpc.ClientStream
}

func (x *sensorServiceStreamDataClient) Send(m *SensorEvent) error {
	return x.ClientStream.SendMsg(m)
}

func (x *sensorServiceStreamDataClient) CloseAndRecv() (*StreamAck, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(StreamAck)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// SensorServiceServer is the server API for SensorService. The agent
// itself never implements this — it is the contract the remote
// collector fulfills — but the stub is kept alongside the client so the
// package fully describes the RPC surface and can back integration
// tests with an in-process fake server.
type SensorServiceServer interface {
	StreamData(SensorService_StreamDataServer) error
}

type SensorService_StreamDataServer interface {
	SendAndClose(*StreamAck) error
	Recv() (*SensorEvent, error)
	grpc.ServerStream
}

type sensorServiceStreamDataServer struct {
	grpc.ServerStream
}

func (x *sensorServiceStreamDataServer) SendAndClose(m *StreamAck) error {
	return x.ServerStream.SendMsg(m)
}

func (x *sensorServiceStreamDataServer) Recv() (*SensorEvent, error) {
	m := new(SensorEvent)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _SensorService_StreamData_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(SensorServiceServer).StreamData(&sensorServiceStreamDataServer{stream})
}

// RegisterSensorServiceServer registers an implementation of
// SensorServiceServer on a *grpc.Server.
func RegisterSensorServiceServer(s grpc.ServiceRegistrar, srv SensorServiceServer) {
	s.RegisterService(&SensorService_ServiceDesc, srv)
}

// SensorService_ServiceDesc is the grpc.ServiceDesc for SensorService,
// used with grpc.ClientConnInterface.NewStream and
// grpc.ServiceRegistrar.RegisterService.
var SensorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sensorpb.SensorService",
	HandlerType: (*SensorServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamData",
			Handler:       _SensorService_StreamData_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "sensor.proto",
}
