package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/wm75/gxseq/internal/fasta"
)

// RecordView is the JSON shape served by the API endpoints.
type RecordView struct {
	ID     string `json:"id"`
	Desc   string `json:"description,omitempty"`
	Length int    `json:"length"`
	Valid  bool   `json:"valid"`
	Seq    string `json:"sequence,omitempty"`
}

func toView(rec fasta.Record, withSeq bool) RecordView {
	v := RecordView{
		ID:     rec.ID,
		Desc:   rec.Desc,
		Length: rec.Len(),
		Valid:  rec.Check() == nil,
	}
	if withSeq {
		v.Seq = rec.Seq
	}
	return v
}

// RecordsPage carries the data rendered by the index template.
type RecordsPage struct {
	Records []RecordView
	Query   string
	Source  string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><title>gxseq records</title></head>
<body>
<h1>FASTA records from {{.Source}}</h1>
<form method="get"><input name="q" value="{{.Query}}" placeholder="filter by id"><button>Filter</button></form>
<table border="1" cellpadding="4">
<tr><th>ID</th><th>Description</th><th>Length</th><th>Valid</th></tr>
{{range .Records}}
<tr><td><a href="/api/records/{{.ID}}">{{.ID}}</a></td><td>{{.Desc}}</td><td>{{.Length}}</td><td>{{.Valid}}</td></tr>
{{end}}
</table>
</body>
</html>
`))

// statusResponseWriter captures status and bytes written for logging
type statusResponseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// loggingMiddleware logs each request with method, path, status, size and duration
func loggingMiddleware(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w}
		next.ServeHTTP(srw, r)
		if srw.status == 0 {
			srw.status = http.StatusOK
		}
		duration := time.Since(start)
		logger.Printf("%s - %s %s %d %dB %s %q",
			r.RemoteAddr, r.Method, r.URL.RequestURI(), srw.status, srw.written, duration, r.UserAgent())
	})
}

// loadRecords re-reads the FASTA file on every request so edits show up
// without a restart, mirroring how small reference files are curated.
func loadRecords(path string) ([]fasta.Record, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return fasta.NewReader(rc).ReadAll()
}

func indexHandler(fastaPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := loadRecords(fastaPath)
		if err != nil {
			log.Printf("warning: failed to read fasta for index: %v", err)
			records = nil
		}
		q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

		views := make([]RecordView, 0, len(records))
		for _, rec := range records {
			if q != "" && !strings.Contains(strings.ToLower(rec.ID), q) {
				continue
			}
			views = append(views, toView(rec, false))
		}
		sort.Slice(views, func(i, j int) bool {
			return strings.ToLower(views[i].ID) < strings.ToLower(views[j].ID)
		})

		page := RecordsPage{Records: views, Query: r.URL.Query().Get("q"), Source: fastaPath}
		if err := indexTemplate.Execute(w, page); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func apiRecordsHandler(fastaPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := loadRecords(fastaPath)
		if err != nil {
			http.Error(w, "failed to read fasta input", http.StatusInternalServerError)
			return
		}
		views := make([]RecordView, 0, len(records))
		for _, rec := range records {
			views = append(views, toView(rec, false))
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(views)
	}
}

func apiRecordHandler(fastaPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		if len(parts) < 4 || parts[3] == "" {
			http.Error(w, "missing record id", http.StatusBadRequest)
			return
		}
		id := parts[3]
		records, err := loadRecords(fastaPath)
		if err != nil {
			http.Error(w, "failed to read fasta input", http.StatusInternalServerError)
			return
		}
		for _, rec := range records {
			if rec.ID == id {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				_ = json.NewEncoder(w).Encode(toView(rec, true))
				return
			}
		}
		http.Error(w, "record not found", http.StatusNotFound)
	}
}

func newMux(fastaPath string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler(fastaPath))
	mux.HandleFunc("/api/records", apiRecordsHandler(fastaPath))
	mux.HandleFunc("/api/records/", apiRecordHandler(fastaPath))
	return mux
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	fastaPath := flag.String("in", "input.fasta", "path to the FASTA file to serve")
	logFile := flag.String("log", "", "path to write access logs (optional). If empty, logs go to stdout only")
	flag.Parse()

	// configure logger
	var out io.Writer = os.Stdout
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		out = io.MultiWriter(os.Stdout, f)
	}
	logger := log.New(out, "gxseq: ", log.LstdFlags)

	handler := loggingMiddleware(logger, newMux(*fastaPath))

	srv := &http.Server{Addr: *addr, Handler: handler, ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second}
	fmt.Printf("serving records at http://%s/ (in=%s)\n", *addr, *fastaPath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
