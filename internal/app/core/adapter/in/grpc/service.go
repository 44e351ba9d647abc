package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName 服務全名
const ServiceName = "bank.v1.AccountService"

const (
	methodOpenAccount  = "/" + ServiceName + "/OpenAccount"
	methodGetAccount   = "/" + ServiceName + "/GetAccount"
	methodDeposit      = "/" + ServiceName + "/Deposit"
	methodWithdraw     = "/" + ServiceName + "/Withdraw"
	methodBlock        = "/" + ServiceName + "/Block"
	methodUnblock      = "/" + ServiceName + "/Unblock"
	methodSetMaxCredit = "/" + ServiceName + "/SetMaxCredit"
)

// AccountServiceServer 帳戶服務介面
type AccountServiceServer interface {
	OpenAccount(context.Context, *Empty) (*AccountReply, error)
	GetAccount(context.Context, *AccountRequest) (*AccountReply, error)
	Deposit(context.Context, *AmountRequest) (*AccountReply, error)
	Withdraw(context.Context, *AmountRequest) (*AccountReply, error)
	Block(context.Context, *AccountRequest) (*AccountReply, error)
	Unblock(context.Context, *AccountRequest) (*AccountReply, error)
	SetMaxCredit(context.Context, *AmountRequest) (*AccountReply, error)
}

// RegisterAccountServiceServer 註冊服務
func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&accountServiceDesc, srv)
}

var accountServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "OpenAccount",
			Handler:    unaryHandler(methodOpenAccount, AccountServiceServer.OpenAccount),
		},
		{
			MethodName: "GetAccount",
			Handler:    unaryHandler(methodGetAccount, AccountServiceServer.GetAccount),
		},
		{
			MethodName: "Deposit",
			Handler:    unaryHandler(methodDeposit, AccountServiceServer.Deposit),
		},
		{
			MethodName: "Withdraw",
			Handler:    unaryHandler(methodWithdraw, AccountServiceServer.Withdraw),
		},
		{
			MethodName: "Block",
			Handler:    unaryHandler(methodBlock, AccountServiceServer.Block),
		},
		{
			MethodName: "Unblock",
			Handler:    unaryHandler(methodUnblock, AccountServiceServer.Unblock),
		},
		{
			MethodName: "SetMaxCredit",
			Handler:    unaryHandler(methodSetMaxCredit, AccountServiceServer.SetMaxCredit),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bank/v1/account_service",
}

// unaryHandler 解碼請求並經過 interceptor 呼叫服務方法
func unaryHandler[Req any](fullMethod string, call func(AccountServiceServer, context.Context, *Req) (*AccountReply, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
