// Command aardvark exercises the Aardvark runtime from the shell:
//
//	aardvark eval 3 + 2.5        # 5
//	aardvark eval '"n="' + True  # n=True
//	aardvark write out.txt hello
//	aardvark read out.txt
//	aardvark randint 5 1
//	aardvark factorial 5
package main

import (
	"os"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
