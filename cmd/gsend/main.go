package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/mastercactapus/gcode/send"
	"github.com/tarm/serial"
)

func main() {
	log.SetFlags(log.Lshortfile)

	port := flag.String("port", "/dev/ttyUSB0", "Serial port path.")
	baud := flag.Int("baud", 115200, "Serial baud rate.")
	wsURL := flag.String("ws", "", "Websocket URL of a serial bridge to use instead of a local port.")
	flag.Parse()

	var rw io.ReadWriter
	if *wsURL != "" {
		conn, err := send.DialWS(*wsURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()
		rw = conn
	} else {
		p, err := serial.OpenPort(&serial.Config{Name: *port, Baud: *baud})
		if err != nil {
			log.Fatal(err)
		}
		defer p.Close()
		rw = p
	}

	in := io.Reader(os.Stdin)
	if flag.Arg(0) != "" && flag.Arg(0) != "-" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	err := send.New(rw).Send(in)
	if err != nil {
		log.Fatal(err)
	}
}
