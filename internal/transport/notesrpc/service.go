package notesrpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "notes.Notes"

// Full method names, as seen by interceptors.
const (
	ListFullMethod   = "/" + ServiceName + "/List"
	GetFullMethod    = "/" + ServiceName + "/Get"
	CreateFullMethod = "/" + ServiceName + "/Create"
	UpdateFullMethod = "/" + ServiceName + "/Update"
	DeleteFullMethod = "/" + ServiceName + "/Delete"
)

// NotesServer is implemented by the server-side gRPC handler.
type NotesServer interface {
	List(context.Context, *ListRequest) (*ListResponse, error)
	Get(context.Context, *GetRequest) (*NoteResponse, error)
	Create(context.Context, *CreateRequest) (*NoteResponse, error)
	Update(context.Context, *UpdateRequest) (*NoteResponse, error)
	Delete(context.Context, *DeleteRequest) (*DeleteResponse, error)
}

// ServiceDesc describes notes.Notes for [grpc.ServiceRegistrar.RegisterService].
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NotesServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("List", ListFullMethod, NotesServer.List),
		unary("Get", GetFullMethod, NotesServer.Get),
		unary("Create", CreateFullMethod, NotesServer.Create),
		unary("Update", UpdateFullMethod, NotesServer.Update),
		unary("Delete", DeleteFullMethod, NotesServer.Delete),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "notes.proto",
}

func RegisterNotesServer(s grpc.ServiceRegistrar, srv NotesServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unary builds the method descriptor for one NotesServer method, running it
// through the server's interceptor chain when there is one.
func unary[Req, Resp any](name, fullMethod string, call func(NotesServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(NotesServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(NotesServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
