package notesrpc

import (
	"context"

	"google.golang.org/grpc"
)

// NotesClient calls notes.Notes over an established connection.
type NotesClient struct {
	cc grpc.ClientConnInterface
}

func NewNotesClient(cc grpc.ClientConnInterface) *NotesClient {
	return &NotesClient{cc: cc}
}

func (c *NotesClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.invoke(ctx, ListFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *NotesClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*NoteResponse, error) {
	out := new(NoteResponse)
	if err := c.invoke(ctx, GetFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *NotesClient) Create(ctx context.Context, in *CreateRequest, opts ...grpc.CallOption) (*NoteResponse, error) {
	out := new(NoteResponse)
	if err := c.invoke(ctx, CreateFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *NotesClient) Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*NoteResponse, error) {
	out := new(NoteResponse)
	if err := c.invoke(ctx, UpdateFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *NotesClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := c.invoke(ctx, DeleteFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *NotesClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}
