package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/mastercactapus/gcode"
)

func main() {
	log.SetFlags(log.Lshortfile)

	lineNumbers := flag.Bool("n", false, "Insert line numbers.")
	start := flag.Int("start", 0, "First line number.")
	step := flag.Int("step", 1, "Line number increment.")
	checksums := flag.Bool("checksums", false, "Append a checksum to every line.")
	crlf := flag.Bool("crlf", false, "Terminate lines with CRLF.")
	sep := flag.String("sep", " ", "Word separator.")
	dumpJSON := flag.Bool("json", false, "Dump the parsed program as JSON instead of reformatting.")
	validate := flag.Bool("validate", false, "Report checksum findings for lines that declare one.")
	flag.Parse()

	var data []byte
	var err error
	if flag.Arg(0) == "" || flag.Arg(0) == "-" {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(flag.Arg(0))
	}
	if err != nil {
		log.Fatal(err)
	}

	p, err := gcode.Parse(string(data))
	if err != nil {
		log.Fatal(err)
	}

	if *validate {
		code := 0
		for i, ln := range p {
			if ln.Checksum == nil {
				continue
			}
			if !ln.ValidateChecksum() {
				fmt.Fprintf(os.Stderr, "line %d: declared checksum %d, computed %d\n",
					i+1, ln.Checksum.Value, ln.ComputeChecksum())
				code = 1
			}
		}
		os.Exit(code)
	}

	if *dumpJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(p)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	opt := gcode.Options{
		LineNumbers:     *lineNumbers,
		LineNumberStart: *start,
		LineNumberStep:  *step,
		Checksums:       *checksums,
		Separator:       *sep,
	}
	if *crlf {
		opt.LineEnding = "\r\n"
	}
	_, err = os.Stdout.WriteString(gcode.Emit(p, opt))
	if err != nil {
		log.Fatal(err)
	}
}
