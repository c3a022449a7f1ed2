package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"sgf_keeper/internal/delivery/rpc"
	"sgf_keeper/internal/domain/sgf"
	"sgf_keeper/internal/utils"
)

type canonicalizer func(ctx context.Context, text string, strict bool) (string, error)

func localCanonicalize(_ context.Context, text string, strict bool) (string, error) {
	collection, err := sgf.Parse(text, sgf.Strict(strict))
	if err != nil {
		return "", err
	}
	return sgf.Write(collection), nil
}

func main() {
	app := newApp(os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "sgffmt",
		Usage:     "rewrite SGF game records in canonical indented form",
		ArgsUsage: "[FILE|-|SGF]...",
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "lax", Usage: "accept malformed input instead of failing"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the result to `FILE` instead of stdout"},
			&cli.BoolFlag{Name: "check", Usage: "fail when an input is not already canonical"},
			&cli.StringFlag{Name: "remote", Usage: "format through the gRPC service at `ADDR`"},
		},
		Action: func(c *cli.Context) error {
			format := canonicalizer(localCanonicalize)
			if addr := c.String("remote"); addr != "" {
				remote, closeConn, err := dialRemote(addr)
				if err != nil {
					return err
				}
				defer closeConn()
				format = remote
			}
			return run(c, stdin, format)
		},
	}
}

func run(c *cli.Context, stdin io.Reader, format canonicalizer) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		args = []string{"-"}
	}
	strict := !c.Bool("lax")

	outputs := make([]string, 0, len(args))
	var stale []string
	for _, arg := range args {
		text, err := utils.ResolveSource(arg, stdin)
		if err != nil {
			return err
		}
		canonical, err := format(c.Context, text, strict)
		if err != nil {
			return fmt.Errorf("%s: %w", sourceName(arg), err)
		}
		if c.Bool("check") && canonical != strings.TrimSuffix(text, "\n") {
			stale = append(stale, sourceName(arg))
		}
		outputs = append(outputs, canonical)
	}

	if c.Bool("check") {
		if len(stale) > 0 {
			return cli.Exit("not canonical: "+strings.Join(stale, ", "), 1)
		}
		return nil
	}

	result := strings.Join(outputs, "\n") + "\n"
	if out := c.String("out"); out != "" {
		return os.WriteFile(out, []byte(result), 0o644)
	}
	_, err := io.WriteString(c.App.Writer, result)
	return err
}

func sourceName(arg string) string {
	switch {
	case arg == "-":
		return "<stdin>"
	case len(arg) > 32 || strings.ContainsAny(arg, "(;"):
		return "<text>"
	}
	return arg
}

func dialRemote(addr string) (canonicalizer, func(), error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	client := rpc.NewFormatterClient(conn)

	format := func(ctx context.Context, text string, strict bool) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return client.Canonicalize(ctx, text, strict)
	}
	return format, func() { _ = conn.Close() }, nil
}
