package registry

func registerOperators() {
	comparison := []struct {
		name string
	}{
		{"="}, {"<>"}, {">"}, {"<"}, {">="}, {"<="},
	}
	for _, c := range comparison {
		RegisterOperator(&Record{
			Name: c.name, NameFmt: " " + c.name + " ",
			Flags: FlagBinary, MinArgs: 2, MaxArgs: 2,
			Dialects: AllDialects, Category: "COMPARISON",
		})
	}

	word := []struct {
		name, fmtName, category string
		flags                   Flags
		dialects                Dialects
	}{
		{"IN", "IN", "MULTI_VALUE", FlagBinary | FlagRightValues, AllDialects},
		{"NOT IN", "NOT IN", "MULTI_VALUE", FlagBinary | FlagRightValues, AllDialects},
		{"LIKE", "LIKE", "COMPARISON", FlagBinary, AllDialects},
		{"NOT LIKE", "NOT LIKE", "COMPARISON", FlagBinary, AllDialects},
		{"ILIKE", "ILIKE", "COMPARISON", FlagBinary, Postgres},
		{"NOT ILIKE", "NOT ILIKE", "COMPARISON", FlagBinary, Postgres},
		{"IS", "IS", "COMPARISON", FlagBinary, AllDialects},
		{"IS NOT", "IS NOT", "COMPARISON", FlagBinary, AllDialects},
		{"~", "~", "COMPARISON", FlagBinary, Postgres},
		{"!~", "!~", "COMPARISON", FlagBinary, Postgres},
		{"~*", "~*", "COMPARISON", FlagBinary, Postgres},
		{"!~*", "!~*", "COMPARISON", FlagBinary, Postgres},
	}
	for _, w := range word {
		RegisterOperator(&Record{
			Name: w.name, NameFmt: " " + w.fmtName + " ",
			Flags: w.flags, MinArgs: 2, MaxArgs: 2,
			Dialects: w.dialects, Category: w.category,
		})
	}

	RegisterOperator(&Record{
		Name: "BETWEEN", NameFmt: " BETWEEN ", Flags: FlagBinary,
		MinArgs: 3, MaxArgs: 3, Dialects: AllDialects, Category: "RANGE",
	})
	RegisterOperator(&Record{
		Name: "NOT BETWEEN", NameFmt: " NOT BETWEEN ", Flags: FlagBinary,
		MinArgs: 3, MaxArgs: 3, Dialects: AllDialects, Category: "RANGE",
	})

	arithmetic := []string{"+", "-", "*", "/", "%", "||"}
	for _, op := range arithmetic {
		RegisterOperator(&Record{
			Name: op, NameFmt: " " + op + " ", Flags: FlagBinary,
			MinArgs: 2, MaxArgs: 2, Dialects: AllDialects, Category: "ARITHMETIC",
		})
	}
}

func registerNegations() {
	RegisterNegation("=", "<>")
	RegisterNegation(">", "<=")
	RegisterNegation("<", ">=")
	RegisterNegation("~", "!~")
	RegisterNegation("~*", "!~*")
}
