package main

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
)

func call(cfg *CallConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Call.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: call requires a command", cli.ErrUsage)
	}

	nc, err := net.Dial("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("could not reach %s: %w", cfg.Addr, err)
	}
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(nc))
	ctx := context.Background()
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	defer conn.Close()

	var res any
	method := strings.ToUpper(args[0])
	if _, err := conn.Call(ctx, method, args[1:], &res); err != nil {
		return err
	}
	printReply(cc.Out, res)
	return nil
}
