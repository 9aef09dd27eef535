/*
Package lattice validates untyped nested records against declaratively built
schemas, producing either an immutable typed instance or a complete,
path-tagged report of every failure.

It separates schema declaration (pkg/schema), syntactic format checks
(pkg/format), and this thin facade, which adds structured logging around
validation. Applications that only need the engine can use pkg/schema
directly.

# Key Features

  - Declarative Schemas: ordered, typed fields with nested objects and lists.
  - Coercion: raw values are converted to the declared types, not just checked.
  - Aggregated Errors: one pass surfaces every problem, with nested paths.
  - Custom Rules: per-field validator chains that can transform values.
  - Plain Projection: validated instances dump back to maps, losslessly.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/lattice"
		"github.com/aretw0/lattice/pkg/schema"
	)

	func main() {
		user, err := schema.New("User",
			schema.NewField("id", schema.Int()),
			schema.NewField("email", schema.Email()),
		)
		if err != nil {
			log.Fatal(err)
		}

		model := lattice.New(user)

		inst, err := model.Validate(map[string]any{
			"id":    1,
			"email": "alice@example.com",
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(inst)
		fmt.Println(inst.AsMap())
	}
*/
package lattice
