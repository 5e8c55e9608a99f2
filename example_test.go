package typeguard_test

import (
	"fmt"

	"github.com/aretw0/typeguard"
)

func ExampleCheckStructure() {
	result := typeguard.CheckStructure(map[string]any{
		"name": "string",
		"age":  "number?",
		"tags": []any{"string"},
	}, map[string]any{
		"name": "Ada",
		"tags": []any{"ops", 7},
	})

	fmt.Println(result.Valid)
	for _, e := range result.Errors {
		fmt.Println(e)
	}
	// Output:
	// false
	// key "tags[1]": expected string, got number
}

func ExampleIs() {
	ok, _ := typeguard.Is(42, "string|number")
	fmt.Println(ok)
	// Output: true
}

func ExampleIsType() {
	decoded, err := typeguard.IsType(`{"retries": 3}`, "json-string")
	if err != nil {
		fmt.Println(err)
		return
	}
	doc := decoded.(map[string]any)
	fmt.Println(doc["retries"])
	// Output: 3
}
