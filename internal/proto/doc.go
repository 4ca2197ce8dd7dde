// Package proto holds the RagServices gRPC contract generated from
// ragflow_register_login_getapi.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ragflow_register_login_getapi.proto
