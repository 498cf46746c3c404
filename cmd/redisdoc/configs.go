package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/RedisLabsModules/RedisDoc/encode"
	"github.com/RedisLabsModules/RedisDoc/format"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=p aliases=pretty desc='pretty-print output'"`

	InFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Pretty {
		res = append(res, encode.Pretty())
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ServeConfig struct {
	*MainConfig

	ConfigPath string `cli:"name=config desc='configuration file (yaml)'"`

	Serve *cli.Command
}

type ExecConfig struct {
	*MainConfig

	File string `cli:"name=f desc='snapshot file'"`

	Exec *cli.Command
}

type CallConfig struct {
	*MainConfig

	Addr string `cli:"name=addr desc='server address'"`

	Call *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Path string `cli:"name=path desc='serialize this path only'"`

	View *cli.Command
}
