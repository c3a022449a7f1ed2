package rpc

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	sgferrors "sgf_keeper/internal/errors"
	recorduc "sgf_keeper/internal/usecase/record"
)

const serviceName = "sgf.Formatter"

// FormatterServer is the server side of sgf.Formatter. Requests and replies
// are google.protobuf.StringValue.
type FormatterServer interface {
	Canonicalize(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	CanonicalizeLax(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	GetRecordSGF(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

type stringCall func(srv FormatterServer, ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error)

func unaryHandler(method string, call stringCall) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(wrapperspb.StringValue)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FormatterServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/" + method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(FormatterServer), ctx, req.(*wrapperspb.StringValue))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var formatterServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*FormatterServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Canonicalize", Handler: unaryHandler("Canonicalize", FormatterServer.Canonicalize)},
		{MethodName: "CanonicalizeLax", Handler: unaryHandler("CanonicalizeLax", FormatterServer.CanonicalizeLax)},
		{MethodName: "GetRecordSGF", Handler: unaryHandler("GetRecordSGF", FormatterServer.GetRecordSGF)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sgf/formatter.proto",
}

func RegisterFormatterServer(s grpc.ServiceRegistrar, srv FormatterServer) {
	s.RegisterService(&formatterServiceDesc, srv)
}

type Formatter struct {
	log      *zap.SugaredLogger
	recordUC *recorduc.RecordUseCase
}

func NewFormatter(log *zap.SugaredLogger, recordUC *recorduc.RecordUseCase) *Formatter {
	return &Formatter{log: log, recordUC: recordUC}
}

func (f *Formatter) Canonicalize(_ context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return f.canonicalize(in.GetValue(), true)
}

func (f *Formatter) CanonicalizeLax(_ context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return f.canonicalize(in.GetValue(), false)
}

func (f *Formatter) canonicalize(text string, strict bool) (*wrapperspb.StringValue, error) {
	canonical, _, err := f.recordUC.Canonicalize(text, strict)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(canonical), nil
}

func (f *Formatter) GetRecordSGF(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	text, err := f.recordUC.GetSGF(ctx, in.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(text), nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, sgferrors.ErrMalformedInput), errors.Is(err, sgferrors.ErrUnbalancedBranch):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, sgferrors.ErrRecordNotFound):
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, sgferrors.ErrInternal.Error())
}

// LoggingInterceptor logs every unary call with its duration and status code.
func LoggingInterceptor(log *zap.SugaredLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Infow("grpc call",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		return resp, err
	}
}
