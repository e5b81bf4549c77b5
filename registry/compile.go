package registry

import (
	"strings"

	"github.com/sqlast/sqlast"
)

func registerCompilers() {
	if r, ok := functions["CAST"]; ok {
		r.Compile = compileCast
	}
	if r, ok := operators["BETWEEN"]; ok {
		r.Compile = compileBetween("BETWEEN")
	}
	if r, ok := operators["NOT BETWEEN"]; ok {
		r.Compile = compileBetween("NOT BETWEEN")
	}
	if r, ok := functions["ATAN"]; ok {
		r.Compile = compileAtan
	}
	if r, ok := functions["LOG10"]; ok {
		r.Compile = compileLog(1)
	}
	if r, ok := functions["LOG2"]; ok {
		r.Compile = compileLog(2)
	}
	if r, ok := functions["RANDOM"]; ok {
		r.Compile = compileRandom
	}
	if r, ok := functions["TRUNC"]; ok {
		r.Compile = compileTrunc
	}
	if r, ok := functions["CHR"]; ok {
		r.Compile = compileChr
	}
}

// compileCast renders CAST(expr AS type); args[1] is expected to
// already be the bare, unescaped type name (see sqlast.RAW for how
// callers supply it).
func compileCast(dialectName string, args []string) (string, error) {
	if len(args) != 2 {
		return "", sqlast.NewCompileError("CAST expects 2 arguments, got %d", len(args))
	}
	return "CAST(" + args[0] + " AS " + args[1] + ")", nil
}

// compileBetween renders "a BETWEEN b AND c" / "a NOT BETWEEN b AND c".
func compileBetween(kw string) CompileFunc {
	return func(dialectName string, args []string) (string, error) {
		if len(args) != 3 {
			return "", sqlast.NewCompileError("%s expects 3 arguments, got %d", kw, len(args))
		}
		return args[0] + " " + kw + " " + args[1] + " AND " + args[2], nil
	}
}

// compileAtan renders ATAN(x) for one argument, ATAN2(y, x) for two.
func compileAtan(dialectName string, args []string) (string, error) {
	switch len(args) {
	case 1:
		return "ATAN(" + args[0] + ")", nil
	case 2:
		return "ATAN2(" + args[0] + ", " + args[1] + ")", nil
	default:
		return "", sqlast.NewCompileError("ATAN expects 1 or 2 arguments, got %d", len(args))
	}
}

// compileLog renders LOG10/LOG2 as LOG(base, x) everywhere but MySQL,
// which has dedicated LOG10/LOG2 functions.
func compileLog(base int) CompileFunc {
	return func(dialectName string, args []string) (string, error) {
		if len(args) != 1 {
			return "", sqlast.NewCompileError("LOG%d expects 1 argument, got %d", base, len(args))
		}
		if strings.EqualFold(dialectName, "mysql") || strings.EqualFold(dialectName, "mariadb") {
			if base == 1 {
				return "LOG10(" + args[0] + ")", nil
			}
			return "LOG2(" + args[0] + ")", nil
		}
		baseArg := "10"
		if base == 2 {
			baseArg = "2"
		}
		return "LOG(" + baseArg + ", " + args[0] + ")", nil
	}
}

// compileRandom renders RANDOM() everywhere but MySQL, which spells it
// RAND().
func compileRandom(dialectName string, args []string) (string, error) {
	if len(args) != 0 {
		return "", sqlast.NewCompileError("RANDOM expects 0 arguments, got %d", len(args))
	}
	if strings.EqualFold(dialectName, "mysql") || strings.EqualFold(dialectName, "mariadb") {
		return "RAND()", nil
	}
	return "RANDOM()", nil
}

// compileTrunc renders TRUNC(x) / TRUNC(x, n) everywhere but MySQL,
// which lacks a single-argument TRUNC and needs TRUNCATE(x, 0).
func compileTrunc(dialectName string, args []string) (string, error) {
	isMySQL := strings.EqualFold(dialectName, "mysql") || strings.EqualFold(dialectName, "mariadb")
	switch len(args) {
	case 1:
		if isMySQL {
			return "TRUNCATE(" + args[0] + ", 0)", nil
		}
		return "TRUNC(" + args[0] + ")", nil
	case 2:
		if isMySQL {
			return "TRUNCATE(" + args[0] + ", " + args[1] + ")", nil
		}
		return "TRUNC(" + args[0] + ", " + args[1] + ")", nil
	default:
		return "", sqlast.NewCompileError("TRUNC expects 1 or 2 arguments, got %d", len(args))
	}
}

// compileChr renders CHR(n) everywhere but MySQL, which spells it
// CHAR(n).
func compileChr(dialectName string, args []string) (string, error) {
	if len(args) != 1 {
		return "", sqlast.NewCompileError("CHR expects 1 argument, got %d", len(args))
	}
	if strings.EqualFold(dialectName, "mysql") || strings.EqualFold(dialectName, "mariadb") {
		return "CHAR(" + args[0] + ")", nil
	}
	return "CHR(" + args[0] + ")", nil
}
