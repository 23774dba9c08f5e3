package main

import (
	"fmt"
	"strings"

	cnc "github.com/joushou/gocnc/gcode"
	"github.com/joushou/gocnc/vm"

	"github.com/mastercactapus/gcode"
)

// scratch harness: cross-check our parser/emitter against gocnc.
func main() {
	src := strings.TrimSpace(`
		G91 X10
	
	`)

	doc, err := cnc.Parse(src)
	if err != nil {
		panic(err)
	}

	var m vm.Machine
	m.Init()
	m.Process(doc)
	m.Dump()

	p := gcode.MustParse(src)
	fmt.Print(gcode.Emit(p, gcode.Options{}))
}
