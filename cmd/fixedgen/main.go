// fixedgen generates Go source declaring fixed-point constants from
// decimal literal tokens.
//
// Usage:
//
//	fixedgen -pkg config -out rates_gen.go RATE=0.25u16:3 STEP=-1.1i16
//
// Each definition is NAME=LITERAL[:PRECISION]. The precision defaults
// to the number of fractional digits in the literal, and the literal's
// storage suffix (i8, u8, i16, u16, i32, u32) selects the storage type,
// defaulting to i32. The scaled integer is computed here, with exact
// integer arithmetic, so the emitted source carries only constants and
// the program never parses the literal at run time.
//
// fixedgen is meant to be driven by go generate:
//
//	//go:generate go run github.com/qiuchengxuan/fixed-point/cmd/fixedgen -pkg config -out rates_gen.go RATE=0.25u16:3
package main

import (
	"flag"
	"fmt"
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fixedgen: ")

	pkg := flag.String("pkg", "main", "package name of the generated file")
	out := flag.String("out", "", "output file (stdout if empty)")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("no definitions given")
	}

	defs, err := parseDefinitions(flag.Args())
	if err != nil {
		log.Fatalf("%+v", err)
	}

	file, err := generate(*pkg, defs)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	if *out == "" {
		fmt.Printf("%#v", file)
		return
	}
	if err := file.Save(*out); err != nil {
		log.Fatalf("%+v", err)
	}
}
