package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/scott-cotton/cli"

	"github.com/RedisLabsModules/RedisDoc/codec"
	"github.com/RedisLabsModules/RedisDoc/server"
	"github.com/RedisLabsModules/RedisDoc/store"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Serve.Parse(cc, args); err != nil {
		return err
	}
	conf := store.DefaultConfig()
	if cfg.ConfigPath != "" {
		var err error
		conf, err = store.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return err
		}
	}

	st := store.New()
	port := codec.Record{}
	if conf.SnapshotPath != "" {
		if err := st.LoadFile(conf.SnapshotPath, port); err != nil {
			return fmt.Errorf("could not load %q: %w", conf.SnapshotPath, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintf(cc.Out, "\nshutting down\n")
		cancel()
	}()

	ln, err := net.Listen("tcp", conf.ListenAddr)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "listening on %s (%d keys)\n", ln.Addr(), st.Len())

	sv := server.New(st)
	if err := sv.Serve(ctx, ln); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	sv.Shutdown()

	if conf.SnapshotPath != "" {
		if err := st.SaveFile(conf.SnapshotPath, port); err != nil {
			return fmt.Errorf("could not save %q: %w", conf.SnapshotPath, err)
		}
	}
	return nil
}
