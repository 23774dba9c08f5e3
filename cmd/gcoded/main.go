package main

import (
	"flag"
	"log"
	"net/http"
)

func main() {
	log.SetFlags(log.Lshortfile)

	addr := flag.String("addr", ":9092", "Address to bind the gcoded server to.")
	dir := flag.String("dir", "./data", "Data directory to use.")
	flag.Parse()

	api := newAPI(*dir)

	err := http.ListenAndServe(*addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		api.ServeHTTP(w, req)
	}))
	if err != nil {
		log.Fatal(err)
	}
}
