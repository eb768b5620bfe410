package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/smokappstore/smopsysql/compiler"
	"github.com/smokappstore/smopsysql/compiler/front"
)

func main() {
	tokensCmd := &cli.Command{
		Name:   "tokens",
		Action: tokensAct,
		Args:   cli.Args{},
	}

	compileCmd := &cli.Command{
		Name:   "compile",
		Action: compileAct,
		Args:   cli.Args{},
	}

	instrsCmd := &cli.Command{
		Name:   "instrs",
		Action: instrsAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "sqlc",
		Description: "sqlc compiles SmopsysQL hardware-control programs for the Q-CORE kernel",
		Commands: []*cli.Command{
			tokensCmd,
			compileCmd,
			instrsCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func tokensAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		text, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		for _, tk := range front.Tokenize(ctx, text) {
			fmt.Printf("%d:%d\t%v\t%q\n", tk.Line, tk.Col, tk.Kind, tk.Text)
		}
	}

	return nil
}

func compileAct(c *cli.Command) (err error) {
	if len(c.Args) != 2 {
		return errors.New("usage: sqlc compile <input.ql> <output.c>")
	}

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	out, err := compiler.CompileFile(ctx, c.Args[0])
	if err != nil {
		return errors.Wrap(err, "compile %v", c.Args[0])
	}

	err = os.WriteFile(c.Args[1], out.Code, 0o644)
	if err != nil {
		return errors.Wrap(err, "write %v", c.Args[1])
	}

	return nil
}

func instrsAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		out, err := compiler.CompileFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "compile %v", a)
		}

		data, err := json.MarshalIndent(out.Records, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal instructions")
		}

		fmt.Printf("%s\n", data)
	}

	return nil
}
