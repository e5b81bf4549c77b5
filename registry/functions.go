package registry

func fn(name string, minArgs, maxArgs int, category string, flags Flags) *Record {
	return &Record{
		Name: name, NameFmt: name, Flags: FlagFunction | flags,
		MinArgs: minArgs, MaxArgs: maxArgs, Dialects: AllDialects, Category: category,
	}
}

func registerFunctions() {
	scalar := []struct {
		name     string
		min, max int
	}{
		{"UPPER", 1, 1}, {"LOWER", 1, 1}, {"LENGTH", 1, 1}, {"TRIM", 1, 2},
		{"LTRIM", 1, 2}, {"RTRIM", 1, 2}, {"SUBSTRING", 2, 3}, {"CONCAT", 1, -1},
		{"REPLACE", 3, 3}, {"COALESCE", 1, -1}, {"NULLIF", 2, 2}, {"GREATEST", 1, -1},
		{"LEAST", 1, -1}, {"ABS", 1, 1}, {"CEILING", 1, 1}, {"FLOOR", 1, 1},
		{"ROUND", 1, 2}, {"POWER", 2, 2}, {"SQRT", 1, 1}, {"EXP", 1, 1},
		{"LN", 1, 1}, {"LOG10", 1, 1}, {"LOG2", 1, 1}, {"MOD", 2, 2},
		{"SIGN", 1, 1}, {"SIN", 1, 1}, {"COS", 1, 1}, {"TAN", 1, 1},
		{"ATAN", 1, 2}, {"RANDOM", 0, 0}, {"TRUNC", 1, 2}, {"CHR", 1, 1},
		{"NOW", 0, 0}, {"CURRENT_DATE", 0, 0}, {"CURRENT_TIMESTAMP", 0, 0},
		{"EXTRACT", 2, 2}, {"CAST", 2, 2},
	}
	for _, s := range scalar {
		voidFlag := Flags(0)
		if s.max == 0 {
			voidFlag = FlagVoid
		}
		RegisterFunction(fn(s.name, s.min, s.max, "SCALAR", voidFlag))
	}

	aggregate := []struct {
		name     string
		min, max int
	}{
		{"COUNT", 0, 1}, {"SUM", 1, 1}, {"AVG", 1, 1}, {"MIN", 1, 1}, {"MAX", 1, 1},
		{"BOOL_AND", 1, 1}, {"BOOL_OR", 1, 1}, {"ARRAY_AGG", 1, 1}, {"STRING_AGG", 2, 2},
		{"STDDEV_SAMP", 1, 1}, {"STDDEV_POP", 1, 1}, {"VAR_SAMP", 1, 1}, {"VAR_POP", 1, 1},
	}
	for _, a := range aggregate {
		RegisterFunction(fn(a.name, a.min, a.max, "AGGREGATE", FlagAggregate))
	}

	window := []struct {
		name     string
		min, max int
	}{
		{"ROW_NUMBER", 0, 0}, {"RANK", 0, 0}, {"DENSE_RANK", 0, 0},
		{"LAG", 1, 2}, {"LEAD", 1, 2}, {"NTILE", 1, 1},
	}
	for _, w := range window {
		voidFlag := Flags(0)
		if w.max == 0 {
			voidFlag = FlagVoid
		}
		RegisterFunction(fn(w.name, w.min, w.max, "WINDOW", voidFlag))
	}
}

func registerAliases() {
	RegisterAlias("!=", "<>")
	RegisterAlias("POW", "POWER")
	RegisterAlias("CEIL", "CEILING")
	RegisterAlias("EVERY", "BOOL_AND")
	RegisterAlias("STDDEV", "STDDEV_SAMP")
	RegisterAlias("VARIANCE", "VAR_SAMP")
}
