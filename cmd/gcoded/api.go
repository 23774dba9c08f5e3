package main

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"

	"github.com/mastercactapus/gcode"
)

type api struct {
	http.Handler
	dataDir string
	sse     *sse.Server
}

func newAPI(dir string) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		dataDir: dir,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
	}

	fs := http.FileServer(http.Dir(dir))
	r.PathPrefix("/data/").Handler(http.StripPrefix("/data", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case "GET":
			fs.ServeHTTP(w, req)
		case "PUT":
			a.putFile(w, req)
		case "DELETE":
			a.deleteFile(w, req)
		default:
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})))

	r.HandleFunc("/api/parse", a.parse).Methods("POST")
	r.HandleFunc("/api/format", a.format).Methods("POST")

	r.PathPrefix("/events/").Handler(a.sse)

	return a
}

func safePath(base, name string) (bool, string) {
	if filepath.Separator != '/' && strings.ContainsRune(name, filepath.Separator) {
		log.Println("invalid path '" + name + "'")
		return false, ""
	}
	dir := base
	if dir == "" {
		dir = "."
	}
	fullName := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name)))
	return true, fullName
}

func (a *api) notify(op, name string) {
	data, err := json.Marshal(struct {
		Op   string `json:"op"`
		Name string `json:"name"`
	}{Op: op, Name: name})
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		return
	}
	a.sse.SendMessage("/events/data", sse.SimpleMessage(string(data)))
}

type parseErrorJSON struct {
	Line int    `json:"line"`
	Col  int    `json:"col"`
	Kind string `json:"kind"`
}

type checksumFinding struct {
	Line     int  `json:"line"`
	Declared byte `json:"declared"`
	Computed byte `json:"computed"`
	OK       bool `json:"ok"`
}

func writeParseError(w http.ResponseWriter, err error) {
	perr, ok := err.(*gcode.ParseError)
	if !ok {
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(parseErrorJSON{
		Line: perr.Line,
		Col:  perr.Col,
		Kind: perr.Kind.String(),
	})
}

func (a *api) parse(w http.ResponseWriter, req *http.Request) {
	data, err := ioutil.ReadAll(req.Body)
	if err != nil {
		return
	}

	p, err := gcode.Parse(string(data))
	if err != nil {
		writeParseError(w, err)
		return
	}

	var findings []checksumFinding
	for i, ln := range p {
		if ln.Checksum == nil {
			continue
		}
		findings = append(findings, checksumFinding{
			Line:     i + 1,
			Declared: ln.Checksum.Value,
			Computed: ln.ComputeChecksum(),
			OK:       ln.ValidateChecksum(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(struct {
		Lines     gcode.Program     `json:"lines"`
		Checksums []checksumFinding `json:"checksums,omitempty"`
	}{Lines: p, Checksums: findings})
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) format(w http.ResponseWriter, req *http.Request) {
	data, err := ioutil.ReadAll(req.Body)
	if err != nil {
		return
	}

	q := req.URL.Query()
	var opt gcode.Options
	opt.LineNumbers = q.Get("lineNumbers") == "1"
	opt.Checksums = q.Get("checksums") == "1"
	opt.Separator = q.Get("sep")
	if q.Get("crlf") == "1" {
		opt.LineEnding = "\r\n"
	}

	parse := func(param string) (val int) {
		if err != nil || q.Get(param) == "" {
			return 0
		}
		val, err = strconv.Atoi(q.Get(param))
		return val
	}
	opt.LineNumberStart = parse("start")
	opt.LineNumberStep = parse("step")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := gcode.Parse(string(data))
	if err != nil {
		writeParseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	_, err = io.WriteString(w, gcode.Emit(p, opt))
	if err != nil {
		log.Println("ERROR: write:", err)
	}
}

func (a *api) putFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, req.URL.Path)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	os.MkdirAll(filepath.Dir(name), 0755)
	f, err := os.Create(name)
	if err != nil {
		log.Printf("ERROR: create '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
	defer f.Close()
	_, err = io.Copy(f, req.Body)
	if err != nil {
		log.Printf("ERROR: write '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
	a.notify("put", req.URL.Path)
}

func (a *api) deleteFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, req.URL.Path)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	err := os.Remove(name)
	if err != nil {
		log.Printf("ERROR: delete '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
	a.notify("delete", req.URL.Path)
}
