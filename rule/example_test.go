package rule

import (
	"fmt"
)

func Example() {
	comma := Eat[pat](",")
	ident := Call[pat]("ident")

	binding := ident.Field("name").
		Then(Eat[pat]("=")).
		Then(Call[pat]("expr").Field("value"))
	bindingList := Call[pat]("binding").
		RepeatMore(&Separator[pat]{Rule: comma, Kind: SepSimple}).
		Field("bindings")

	grammar := testGrammar{
		"ident":   Eat[pat]("IDENT"),
		"expr":    Eat[pat]("NUM").Or(ident),
		"binding": binding,
		"let":     Eat[pat]("let").Then(bindingList),
	}

	cache := Cache[pat]{}
	for _, name := range []string{"binding", "let"} {
		named := grammar[name]
		if e := named.Rule().CheckCallNames(grammar); e != nil {
			fmt.Println(e)
			return
		}
		if e := named.Rule().CheckNonEmptyOpt(cache, grammar); e != nil {
			fmt.Println(e)
			return
		}

		fmt.Printf("%s: %s\n", name, named.Rule())
		for _, field := range named.Fields() {
			paths, _ := named.FieldPaths(field)
			fmt.Printf("  %s: paths %v refutable %v\n",
				field, paths.Slice(), named.Rule().FieldPathsetIsRefutable(paths))
		}
	}

	fmt.Println("let can be empty:", grammar["let"].Rule().CanBeEmpty(cache, grammar))
	// Output:
	// binding: ident = expr
	//   name: paths [[0 0]] refutable false
	//   value: paths [[1]] refutable false
	// let: let (binding+ % ,)
	//   bindings: paths [[1]] refutable false
	// let can be empty: known false
}
