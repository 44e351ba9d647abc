package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
)

var (
	benchTotal       int
	benchConcurrency int
	benchAmount      int64
	benchDuration    time.Duration
)

// benchCmd 對單一新帳戶併發存款，量測 TPS
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a concurrent deposit load test against a fresh account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchTotal <= 0 || benchConcurrency <= 0 {
			return errors.New("total and concurrency must be positive")
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), benchDuration)
		defer cancel()

		opened, err := c.OpenAccount(ctx)
		if err != nil {
			return err
		}
		if !opened.Success {
			return fmt.Errorf("open account rejected: %s", opened.Message)
		}
		accountID := opened.Account.ID

		var (
			wg       sync.WaitGroup
			failures atomic.Int64
		)
		wg.Add(benchTotal)
		sem := make(chan struct{}, benchConcurrency)
		startTime := time.Now()

		for i := 0; i < benchTotal; i++ {
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()

				reply, err := c.Deposit(ctx, accountID, benchAmount)
				if err != nil || !reply.Success {
					failures.Add(1)
				}
			}()
		}
		wg.Wait()
		elapsed := time.Since(startTime)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Completed %d requests in %v (%d failed)\n", benchTotal, elapsed, failures.Load())
		fmt.Fprintf(out, "TPS: %.2f\n", float64(benchTotal)/elapsed.Seconds())

		final, err := c.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}
		printReply(out, final)
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchTotal, "total", "n", 100000, "number of deposits")
	benchCmd.Flags().IntVarP(&benchConcurrency, "concurrency", "c", 1000, "number of in-flight requests")
	benchCmd.Flags().Int64Var(&benchAmount, "amount", 1, "amount of every deposit")
	benchCmd.Flags().DurationVar(&benchDuration, "duration", 120*time.Second, "upper bound of the whole run")
	rootCmd.AddCommand(benchCmd)
}
