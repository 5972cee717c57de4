// Package dating holds the protobuf messages and gRPC bindings of the
// dating service, generated from dating.proto.
package dating

//go:generate protoc --proto_path=../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative internal/proto/dating/dating.proto
