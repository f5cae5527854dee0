package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Sompom/indirect-append/list"
)

// appender is the strategy used for every append of a run, picked
// once at configuration time. Swap in list.Direct{} to exercise the
// other implementation; call sites do not change.
var appender list.Appender = list.Indirect{}

// `usage` writes the invocation contract
func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "First argument: String to insert into the linked list")
	fmt.Fprintln(out, "Second argument: Number of test iterations to run")
	fmt.Fprintln(out, "Third argument: If exists, silence output")
}

// `run` builds, walks and releases a fresh list once per iteration,
// appending one value per character of the input string. Diagnostic
// output goes to out; each node is printed before it is severed.
func run(args []string, out io.Writer) error {
	if len(args) < 2 {
		usage(out)
		return errNotEnoughArguments
	}
	iterations, err := strconv.Atoi(args[1])
	if err != nil || iterations < 1 {
		return errBadIterationCount
	}
	// a third argument, whatever its value, silences output
	output := len(args) <= 2

	if output {
		fmt.Fprintf(out, "Using %s append\n", appender)
	}

	for iteration := 0; iteration < iterations; iteration++ {
		var head *list.Node
		for index := 0; index < len(args[0]); index++ {
			// character-minus-'0' arithmetic; non-digit characters
			// produce out of range values and are appended as-is
			appender.Append(int(args[0][index])-'0', &head)
		}
		if !output {
			list.Release(&head)
			continue
		}
		l := head
		for l != nil {
			fmt.Fprintf(out, "Iteration: %d, %p: Value: %d, Next: %p\n", iteration, l, l.Value, l.Next)
			prev := l
			l = l.Next
			// sever the node so nothing keeps the chain alive
			prev.Next = nil
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
