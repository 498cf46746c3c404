package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/RedisLabsModules/RedisDoc/codec"
	"github.com/RedisLabsModules/RedisDoc/commands"
	"github.com/RedisLabsModules/RedisDoc/store"
)

func exec(cfg *ExecConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Exec.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: exec requires a command", cli.ErrUsage)
	}

	st := store.New()
	port := codec.Record{}
	if err := st.LoadFile(cfg.File, port); err != nil {
		return fmt.Errorf("could not load %q: %w", cfg.File, err)
	}

	res, err := commands.Dispatch(st, args[0], args[1:])
	if err != nil {
		return err
	}
	printReply(cc.Out, res)

	if err := st.SaveFile(cfg.File, port); err != nil {
		return fmt.Errorf("could not save %q: %w", cfg.File, err)
	}
	return nil
}
