package loader_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/envloader/loader"
	"github.com/jonwraymond/envloader/secret"
)

func ExampleEngine_Load() {
	snap := loader.NewSnapshot([]string{
		"PATH=/bin",
		"MYAPP_DEBUG=value::true",
		"MYAPP_PORT=value::3000",
		"HOME=/root",
	})

	cfg := loader.Config{Pass: []string{"PATH"}}.WithPrefix("MYAPP_")
	engine := loader.NewEngine(cfg, secret.NewResolver())

	env, err := engine.Load(context.Background(), snap)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, kv := range env.Pairs() {
		fmt.Println(kv)
	}
	// Output:
	// HOME=/root
	// DEBUG=true
	// PORT=3000
	// PATH=/bin
}

func ExampleClassify() {
	cfg := loader.Config{}.WithPrefix("APP_")

	for _, v := range []loader.Variable{
		{Name: "APP_TOKEN", Value: "aws_sm::prod/token"},
		{Name: "HOME", Value: "/root"},
	} {
		d := loader.Classify(v, cfg)
		fmt.Println(v.Name, d.Kind, d.OutputName)
	}
	// Output:
	// APP_TOKEN needs_resolution TOKEN
	// HOME out_of_scope HOME
}
