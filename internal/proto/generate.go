// Package proto holds the generated FileService contract shared by the
// GophDrive server and client. The source lives in proto/gophdrive/v1.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/gophdrive --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/gophdrive gophdrive/v1/file_service.proto
