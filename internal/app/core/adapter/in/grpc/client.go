package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// Client 帳戶服務的客戶端，每次呼叫都使用 JSON codec
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in any, opts ...grpc.CallOption) (*AccountReply, error) {
	out := new(AccountReply)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) OpenAccount(ctx context.Context, opts ...grpc.CallOption) (*AccountReply, error) {
	return c.invoke(ctx, methodOpenAccount, &Empty{}, opts...)
}

func (c *Client) GetAccount(ctx context.Context, accountID string, opts ...grpc.CallOption) (*AccountReply, error) {
	return c.invoke(ctx, methodGetAccount, &AccountRequest{AccountID: accountID}, opts...)
}

func (c *Client) Deposit(ctx context.Context, accountID string, amount int64, opts ...grpc.CallOption) (*AccountReply, error) {
	return c.invoke(ctx, methodDeposit, &AmountRequest{AccountID: accountID, Amount: amount}, opts...)
}

func (c *Client) Withdraw(ctx context.Context, accountID string, amount int64, opts ...grpc.CallOption) (*AccountReply, error) {
	return c.invoke(ctx, methodWithdraw, &AmountRequest{AccountID: accountID, Amount: amount}, opts...)
}

func (c *Client) Block(ctx context.Context, accountID string, opts ...grpc.CallOption) (*AccountReply, error) {
	return c.invoke(ctx, methodBlock, &AccountRequest{AccountID: accountID}, opts...)
}

func (c *Client) Unblock(ctx context.Context, accountID string, opts ...grpc.CallOption) (*AccountReply, error) {
	return c.invoke(ctx, methodUnblock, &AccountRequest{AccountID: accountID}, opts...)
}

func (c *Client) SetMaxCredit(ctx context.Context, accountID string, maxCredit int64, opts ...grpc.CallOption) (*AccountReply, error) {
	return c.invoke(ctx, methodSetMaxCredit, &AmountRequest{AccountID: accountID, Amount: maxCredit}, opts...)
}
