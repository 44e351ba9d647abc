package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	grpc_adapter "github.com/JoeShih716/go-mem-account/internal/app/core/adapter/in/grpc"
)

// call 包裝單一請求的 timeout 與輸出
func call(cmd *cobra.Command, fn func(ctx context.Context, c *grpc_adapter.Client) (*grpc_adapter.AccountReply, error)) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	reply, err := fn(ctx, c)
	if err != nil {
		return err
	}
	printReply(cmd.OutOrStdout(), reply)
	if !reply.Success {
		return fmt.Errorf("rejected: %s", reply.Message)
	}
	return nil
}

func printReply(w io.Writer, reply *grpc_adapter.AccountReply) {
	if reply.Account == nil {
		fmt.Fprintf(w, "success=%t message=%q\n", reply.Success, reply.Message)
		return
	}
	a := reply.Account
	fmt.Fprintf(w, "id=%s balance=%d max_credit=%d blocked=%t success=%t",
		a.ID, a.Balance, a.MaxCredit, a.Blocked, reply.Success)
	if reply.Message != "" {
		fmt.Fprintf(w, " message=%q", reply.Message)
	}
	fmt.Fprintln(w)
}

func parseAmount(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return v, nil
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a new account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *grpc_adapter.Client) (*grpc_adapter.AccountReply, error) {
			return c.OpenAccount(ctx)
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get ACCOUNT_ID",
	Short: "Show balance, max credit and blocked state of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *grpc_adapter.Client) (*grpc_adapter.AccountReply, error) {
			return c.GetAccount(ctx, args[0])
		})
	},
}

// amountCommand 建立 "<name> ACCOUNT_ID AMOUNT" 形式的子命令
func amountCommand(use, short string, invoke func(context.Context, *grpc_adapter.Client, string, int64) (*grpc_adapter.AccountReply, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ACCOUNT_ID AMOUNT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return call(cmd, func(ctx context.Context, c *grpc_adapter.Client) (*grpc_adapter.AccountReply, error) {
				return invoke(ctx, c, args[0], amount)
			})
		},
	}
}

// stateCommand 建立 "<name> ACCOUNT_ID" 形式的子命令
func stateCommand(use, short string, invoke func(context.Context, *grpc_adapter.Client, string) (*grpc_adapter.AccountReply, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ACCOUNT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, func(ctx context.Context, c *grpc_adapter.Client) (*grpc_adapter.AccountReply, error) {
				return invoke(ctx, c, args[0])
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(
		openCmd,
		getCmd,
		amountCommand("deposit", "Deposit money",
			func(ctx context.Context, c *grpc_adapter.Client, id string, amount int64) (*grpc_adapter.AccountReply, error) {
				return c.Deposit(ctx, id, amount)
			}),
		amountCommand("withdraw", "Withdraw money, down to -max_credit",
			func(ctx context.Context, c *grpc_adapter.Client, id string, amount int64) (*grpc_adapter.AccountReply, error) {
				return c.Withdraw(ctx, id, amount)
			}),
		amountCommand("set-max-credit", "Change the credit limit of a blocked account",
			func(ctx context.Context, c *grpc_adapter.Client, id string, amount int64) (*grpc_adapter.AccountReply, error) {
				return c.SetMaxCredit(ctx, id, amount)
			}),
		stateCommand("block", "Block an account",
			func(ctx context.Context, c *grpc_adapter.Client, id string) (*grpc_adapter.AccountReply, error) {
				return c.Block(ctx, id)
			}),
		stateCommand("unblock", "Unblock an account if its balance is within the credit limit",
			func(ctx context.Context, c *grpc_adapter.Client, id string) (*grpc_adapter.AccountReply, error) {
				return c.Unblock(ctx, id)
			}),
	)
}
