// Package proto holds the gophgate.v1 onboarding service definition and the
// Go code generated from it.
package proto

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/onboarding.proto
