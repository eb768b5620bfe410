package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/smokappstore/smopsysql/compiler/back"
	"github.com/smokappstore/smopsysql/compiler/front"
	"github.com/smokappstore/smopsysql/compiler/ir"
)

// Output is everything one compile call produces. Code and Records are
// two renderings of the same instruction list, Laser and Thermal are the
// subsets routed to the laser and memory subsystems.
type Output struct {
	Code    []byte
	Records []back.Record
	Count   int

	Laser   []ir.PulseEmit
	Thermal []ir.ThermalPageCheck
}

func CompileFile(ctx context.Context, name string) (*Output, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Compile(ctx, name, text)
}

// Compile runs the full pipeline over one compilation unit. Each call
// starts fresh, there is no state shared between compilations.
func Compile(ctx context.Context, name string, text []byte) (*Output, error) {
	tokens := front.Tokenize(ctx, text)

	prog, err := front.Parse(ctx, tokens)
	if err != nil {
		return nil, errors.Wrap(err, "parse text")
	}

	out := &Output{
		Code:    back.GenerateC(prog),
		Records: back.Records(prog),
		Count:   len(prog),
	}

	for _, x := range prog {
		switch x := x.(type) {
		case ir.PulseEmit:
			out.Laser = append(out.Laser, x)
		case ir.ThermalPageCheck:
			out.Thermal = append(out.Thermal, x)
		}
	}

	tlog.SpanFromContext(ctx).Printw("compiled", "name", name, "instructions", out.Count, "laser", len(out.Laser), "thermal", len(out.Thermal))

	return out, nil
}
