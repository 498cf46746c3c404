// Package server exposes the document commands over JSON-RPC 2.0. Each
// command is a method (e.g. "JSON.SET") whose params are the positional
// string arguments the command takes.
package server

import (
	"context"
	"encoding/json"
	"net"
	"sync"

	"go.lsp.dev/jsonrpc2"

	"github.com/RedisLabsModules/RedisDoc/commands"
	"github.com/RedisLabsModules/RedisDoc/debug"
	"github.com/RedisLabsModules/RedisDoc/store"
)

type Server struct {
	store *store.Store

	mu    sync.Mutex
	ln    net.Listener
	conns map[jsonrpc2.Conn]struct{}
}

func New(s *store.Store) *Server {
	return &Server{
		store: s,
		conns: make(map[jsonrpc2.Conn]struct{}),
	}
}

// Serve accepts connections on ln until ctx is canceled or ln is closed.
// It always returns a non-nil error; after Shutdown the error is
// net.ErrClosed.
func (sv *Server) Serve(ctx context.Context, ln net.Listener) error {
	sv.mu.Lock()
	sv.ln = ln
	sv.mu.Unlock()

	context.AfterFunc(ctx, func() { ln.Close() })
	for {
		nc, err := ln.Accept()
		if err != nil {
			return err
		}
		if debug.Server() {
			debug.Logf("accept %s", nc.RemoteAddr())
		}
		go sv.serveConn(ctx, nc)
	}
}

// Shutdown closes the listener and all live connections.
func (sv *Server) Shutdown() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.ln != nil {
		sv.ln.Close()
	}
	for conn := range sv.conns {
		conn.Close()
	}
}

func (sv *Server) serveConn(ctx context.Context, nc net.Conn) {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(nc))
	sv.mu.Lock()
	sv.conns[conn] = struct{}{}
	sv.mu.Unlock()

	conn.Go(ctx, sv.handle)
	<-conn.Done()

	sv.mu.Lock()
	delete(sv.conns, conn)
	sv.mu.Unlock()
}

func (sv *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var args []string
	if raw := req.Params(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return reply(ctx, nil, jsonrpc2.ErrParse)
		}
	}
	res, err := commands.Dispatch(sv.store, req.Method(), args)
	if err != nil {
		if debug.Server() {
			debug.Logf("%s: %v", req.Method(), err)
		}
		return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InvalidRequest, err.Error()))
	}
	return reply(ctx, marshalReply(res), nil)
}

// marshalReply maps command results onto JSON-RPC result values. Status
// replies become their string form so "OK" survives the trip.
func marshalReply(res any) any {
	switch v := res.(type) {
	case nil:
		return nil
	case commands.Status:
		return string(v)
	default:
		return v
	}
}
