// cmd/exprepl/main.go — line-oriented REPL over the expr package.
//
// Usage:
//   go run cmd/exprepl/main.go -vars x=2,y=3
//
// Enter an expression to parse and print it back. Once an expression is
// loaded, these sub-commands act on it:
//   diff <var>              differentiate with respect to <var>
//   simplify                 reduce in a single bottom-up pass
//   eval <var>=<value>,...   evaluate, overriding the -vars bindings
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/LochieR/expr"
)

func main() {
	varsFlag := flag.String("vars", "", "comma-separated var=value bindings, e.g. x=2,y=3")
	flag.Parse()

	env := parseBindings(*varsFlag)

	expr.Init()

	var current expr.Node
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("exprepl: enter an expression, or 'diff <var>' / 'simplify' / 'eval <var>=<value>,...'")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		handleLine(line, env, &current)
	}
}

func handleLine(line string, env map[string]float64, current *expr.Node) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic handling %q: %v\n%s", line, rec, string(debug.Stack()))
		}
	}()

	switch {
	case strings.HasPrefix(line, "diff "):
		if *current == nil {
			log.Println("no expression loaded yet")
			return
		}
		v := strings.TrimSpace(strings.TrimPrefix(line, "diff "))
		fmt.Println((*current).Differentiate(v).String())

	case line == "simplify":
		if *current == nil {
			log.Println("no expression loaded yet")
			return
		}
		fmt.Println((*current).Simplify().String())

	case strings.HasPrefix(line, "eval"):
		if *current == nil {
			log.Println("no expression loaded yet")
			return
		}
		overrides := parseBindings(strings.TrimSpace(strings.TrimPrefix(line, "eval")))
		merged := make(map[string]float64, len(env)+len(overrides))
		for k, v := range env {
			merged[k] = v
		}
		for k, v := range overrides {
			merged[k] = v
		}
		fmt.Println((*current).Evaluate(merged))

	default:
		node := expr.Parse(line)
		*current = node
		fmt.Println(node.String())
	}
}

// parseBindings parses a comma-separated list of name=value pairs. Any
// entry that doesn't parse as a valid binding is logged and skipped
// rather than aborting the whole set.
func parseBindings(spec string) map[string]float64 {
	env := make(map[string]float64)
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return env
	}
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring malformed binding %q", pair)
			continue
		}
		name := strings.TrimSpace(parts[0])
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			log.Printf("ignoring binding %q: %v", pair, err)
			continue
		}
		env[name] = value
	}
	return env
}
