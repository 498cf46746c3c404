package main

import (
	"github.com/scott-cotton/cli"

	"github.com/RedisLabsModules/RedisDoc/store"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "I",
		Aliases:     []string{"ifmt"},
		Description: "input format: json, bson",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "redisdoc").
		WithSynopsis("redisdoc [opts] command [opts]").
		WithDescription("redisdoc stores, queries and updates document values.").
		WithOpts(opts...).
		WithSubs(
			ServeCommand(cfg),
			ExecCommand(cfg),
			CallCommand(cfg),
			ViewCommand(cfg))
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("serve").
		WithAliases("s").
		WithSynopsis("serve [-config file]").
		WithDescription("serve documents over JSON-RPC").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
	cfg.Serve = cmd
	return cmd
}

func ExecCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExecConfig{MainConfig: mainCfg, File: "redisdoc.snapshot"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("exec").
		WithAliases("x", "e").
		WithSynopsis("exec [-f snapshot] <command> [args]").
		WithDescription("run one command against a snapshot file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exec(cfg, cc, args)
		})
	cfg.Exec = cmd
	return cmd
}

func CallCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CallConfig{MainConfig: mainCfg, Addr: store.DefaultConfig().ListenAddr}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("call").
		WithAliases("c").
		WithSynopsis("call [-addr host:port] <command> [args]").
		WithDescription("send one command to a running server").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return call(cfg, cc, args)
		})
	cfg.Call = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view document files, optionally in color").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}
