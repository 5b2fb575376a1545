package proto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	protoenc "google.golang.org/grpc/encoding/proto"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestDescriptor(t *testing.T) {
	fd := File_gophdrive_v1_file_service_proto
	assert.Equal(t, "gophdrive.v1", string(fd.Package()))
	assert.Equal(t, 29, fd.Messages().Len())

	svc := fd.Services().ByName("FileService")
	require.NotNil(t, svc)
	assert.Equal(t, 14, svc.Methods().Len())
	assert.Equal(t, FileService_ServiceDesc.ServiceName, string(svc.FullName()))

	m := svc.Methods().ByName("CreateSignedURL")
	require.NotNil(t, m)
	assert.Equal(t, "gophdrive.v1.CreateSignedURLRequest", string(m.Input().FullName()))
	assert.Equal(t, "gophdrive.v1.CreateSignedURLResponse", string(m.Output().FullName()))

	created := (&File{}).ProtoReflect().Descriptor().Fields().ByName("created_at")
	require.NotNil(t, created)
	assert.Equal(t, "google.protobuf.Timestamp", string(created.Message().FullName()))
}

func TestFullMethodNames(t *testing.T) {
	assert.Equal(t, "/gophdrive.v1.FileService/RefreshToken", FileService_RefreshToken_FullMethodName)
	assert.Equal(t, "/gophdrive.v1.FileService/CreateSignedURL", FileService_CreateSignedURL_FullMethodName)
	assert.Len(t, FileService_ServiceDesc.Methods, 14)
}

// The server and client rely on the codec grpc registers by default.
func TestDefaultCodecRoundTrip(t *testing.T) {
	codec := encoding.GetCodecV2(protoenc.Name)
	require.NotNil(t, codec)

	expires := time.Date(2024, 6, 1, 13, 0, 0, 250, time.UTC)
	in := &ListFilesResponse{Files: []*File{
		{Id: "f1", Name: "a.pdf", Size: 42, Type: "application/pdf", Path: "u1/a.pdf", CreatedAt: timestamppb.New(expires)},
		{Id: "f2", Name: "empty"},
	}}

	data, err := codec.Marshal(in)
	require.NoError(t, err)
	defer data.Free()

	out := &ListFilesResponse{}
	require.NoError(t, codec.Unmarshal(data, out))
	assert.True(t, proto.Equal(in, out))
	assert.True(t, expires.Equal(out.GetFiles()[0].GetCreatedAt().AsTime()))
	assert.Nil(t, out.GetFiles()[1].GetCreatedAt())
}

func TestGettersOnNil(t *testing.T) {
	var r *CreateSignedURLResponse
	assert.Empty(t, r.GetUrl())
	assert.Nil(t, r.GetExpiresAt())

	var f *InsertFileResponse
	assert.Nil(t, f.GetFile())
	assert.Empty(t, f.GetFile().GetPath())
}
