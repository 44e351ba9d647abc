package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-mem-account/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-account/internal/app/core/usecase"
)

type GrpcServer struct {
	core *usecase.AccountUseCase
}

func NewGrpcServer(core *usecase.AccountUseCase) *GrpcServer {
	return &GrpcServer{
		core: core,
	}
}

func (s *GrpcServer) OpenAccount(ctx context.Context, _ *Empty) (*AccountReply, error) {
	return reply(s.core.OpenAccount(ctx))
}

func (s *GrpcServer) GetAccount(ctx context.Context, req *AccountRequest) (*AccountReply, error) {
	id, err := parseAccountID(req.AccountID)
	if err != nil {
		return nil, err
	}
	snap, err := s.core.GetAccount(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &AccountReply{Success: true, Account: toView(snap)}, nil
}

func (s *GrpcServer) Deposit(ctx context.Context, req *AmountRequest) (*AccountReply, error) {
	id, err := parseAccountID(req.AccountID)
	if err != nil {
		return nil, err
	}
	return reply(s.core.Deposit(ctx, id, req.Amount))
}

func (s *GrpcServer) Withdraw(ctx context.Context, req *AmountRequest) (*AccountReply, error) {
	id, err := parseAccountID(req.AccountID)
	if err != nil {
		return nil, err
	}
	return reply(s.core.Withdraw(ctx, id, req.Amount))
}

func (s *GrpcServer) Block(ctx context.Context, req *AccountRequest) (*AccountReply, error) {
	id, err := parseAccountID(req.AccountID)
	if err != nil {
		return nil, err
	}
	return reply(s.core.Block(ctx, id))
}

func (s *GrpcServer) Unblock(ctx context.Context, req *AccountRequest) (*AccountReply, error) {
	id, err := parseAccountID(req.AccountID)
	if err != nil {
		return nil, err
	}
	return reply(s.core.Unblock(ctx, id))
}

func (s *GrpcServer) SetMaxCredit(ctx context.Context, req *AmountRequest) (*AccountReply, error) {
	id, err := parseAccountID(req.AccountID)
	if err != nil {
		return nil, err
	}
	return reply(s.core.SetMaxCredit(ctx, id, req.Amount))
}

// parseAccountID UUID 解析，格式錯誤回傳 InvalidArgument
func parseAccountID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "invalid account_id: "+err.Error())
	}
	return id, nil
}

// reply 帳戶規則拒絕回傳 Success=false (Soft Failure)，其他錯誤轉成 gRPC status
func reply(snap domain.Snapshot, err error) (*AccountReply, error) {
	if err == nil {
		return &AccountReply{Success: true, Account: toView(snap)}, nil
	}
	if isRejection(err) {
		return &AccountReply{
			Success: false,
			Message: err.Error(),
			Account: toView(snap),
		}, nil
	}
	return nil, toStatus(err)
}

func isRejection(err error) bool {
	switch {
	case errors.Is(err, domain.ErrAmountOutOfRange),
		errors.Is(err, domain.ErrAccountBlocked),
		errors.Is(err, domain.ErrAccountNotBlocked),
		errors.Is(err, domain.ErrInsufficientCredit),
		errors.Is(err, domain.ErrMaxCreditOutOfRange),
		errors.Is(err, domain.ErrCreditLimitExceeded):
		return true
	}
	return false
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAccountAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrRegistryClosed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, err.Error())
}

var _ AccountServiceServer = (*GrpcServer)(nil)
