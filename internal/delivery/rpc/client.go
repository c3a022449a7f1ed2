package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type FormatterClient struct {
	cc grpc.ClientConnInterface
}

func NewFormatterClient(cc grpc.ClientConnInterface) *FormatterClient {
	return &FormatterClient{cc: cc}
}

func (c *FormatterClient) call(ctx context.Context, method string, value string, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/"+method, wrapperspb.String(value), out, opts...)
	if err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

func (c *FormatterClient) Canonicalize(ctx context.Context, text string, strict bool, opts ...grpc.CallOption) (string, error) {
	if strict {
		return c.call(ctx, "Canonicalize", text, opts...)
	}
	return c.call(ctx, "CanonicalizeLax", text, opts...)
}

func (c *FormatterClient) GetRecordSGF(ctx context.Context, id string, opts ...grpc.CallOption) (string, error) {
	return c.call(ctx, "GetRecordSGF", id, opts...)
}
