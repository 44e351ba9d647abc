package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/connectivity"

	grpc_adapter "github.com/JoeShih716/go-mem-account/internal/app/core/adapter/in/grpc"
)

func TestPrintReply(t *testing.T) {
	var buf bytes.Buffer
	printReply(&buf, &grpc_adapter.AccountReply{
		Success: false,
		Message: "account is blocked",
		Account: &grpc_adapter.AccountView{ID: "abc", Balance: -5, MaxCredit: 10, Blocked: true},
	})
	assert.Equal(t, "id=abc balance=-5 max_credit=10 blocked=true success=false message=\"account is blocked\"\n", buf.String())

	buf.Reset()
	printReply(&buf, &grpc_adapter.AccountReply{Success: false, Message: "max credit out of range"})
	assert.Equal(t, "success=false message=\"max credit out of range\"\n", buf.String())
}

func TestParseAmount(t *testing.T) {
	v, err := parseAmount("-1000000")
	require.NoError(t, err)
	assert.Equal(t, int64(-1000000), v)

	_, err = parseAmount("12a")
	assert.Error(t, err)
}

func TestCommandArgs(t *testing.T) {
	tests := [][]string{
		{"deposit", "only-id"},
		{"block"},
		{"get", "a", "b"},
		{"withdraw", "id", "not-a-number"},
	}
	for _, args := range tests {
		rootCmd.SetArgs(args)
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		assert.Error(t, rootCmd.Execute(), "%v", args)
	}
}

func TestExecuteClosesPoolOnError(t *testing.T) {
	conn, err := pool.GetConnection(addr)
	require.NoError(t, err)

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	err = execute(context.Background(), []string{"withdraw", "id", "not-a-number"})
	require.Error(t, err)
	assert.Equal(t, connectivity.Shutdown, conn.GetState(), "pool should be closed after a failed command")
}
