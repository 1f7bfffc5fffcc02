// Command server exposes the uywi package as a JSON REST API.
//
// Endpoints:
//
//	GET /api/pages?length=<2|3|4>&page=<n>
//	GET /api/concept?length=<2|3|4>&index=<n>
//	GET /api/concept?length=<2|3|4>&string=<s>&script=<chiffre|ipa>
//	GET /api/word?length=<2|3|4>&index=<n>&stem=<n>&form=<n>&script=<chiffre|ipa>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/uywi-lang/uywi"
)

// ---- JSON response types ------------------------------------------------

type pageJSON struct {
	Index int        `json:"index"`
	Rows  [][]string `json:"rows"`
}

type conceptJSON struct {
	Index  int    `json:"index"`
	Length int    `json:"length"`
	String string `json:"string"`
}

type wordJSON struct {
	StemIndex int    `json:"stem_index"`
	FormIndex int    `json:"form_index"`
	String    string `json:"string"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func parseLength(r *http.Request) (uywi.Length, error) {
	n, err := strconv.Atoi(r.URL.Query().Get("length"))
	if err != nil {
		return 0, &uywi.Error{Kind: uywi.LengthInvalid}
	}
	return uywi.NewLength(n)
}

func parseScript(r *http.Request) uywi.Script {
	switch r.URL.Query().Get("script") {
	case "ipa":
		return uywi.ScriptIpaPeter
	default:
		return uywi.ScriptUywiChiffre
	}
}

func statusForError(err error) int {
	var uerr *uywi.Error
	if e, ok := err.(*uywi.Error); ok {
		uerr = e
	}
	if uerr == nil {
		return http.StatusInternalServerError
	}
	switch uerr.Kind {
	case uywi.ScriptUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusBadRequest
	}
}

// ---- handlers -------------------------------------------------------------

func handlePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		length, err := parseLength(r)
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}
		pageIndex, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing or invalid 'page' query parameter")
			return
		}
		page, err := uywi.PageFromIndex(pageIndex, length)
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}

		script := parseScript(r)
		var rows [][]string

		rowIter := page.Rows()
		for {
			row, ok := rowIter.Next()
			if !ok {
				break
			}
			var cells []string
			conceptIter := row.Concepts()
			for {
				concept, ok := conceptIter.Next()
				if !ok {
					break
				}
				cells = append(cells, concept.Render(script))
			}
			rows = append(rows, cells)
		}

		writeJSON(w, http.StatusOK, pageJSON{Index: page.Index(), Rows: rows})
	}
}

func handleConcept() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		length, err := parseLength(r)
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}
		script := parseScript(r)

		var concept uywi.Concept
		if s := r.URL.Query().Get("string"); s != "" {
			concept, err = script.FromConcept(s)
		} else {
			var index int
			index, err = strconv.Atoi(r.URL.Query().Get("index"))
			if err == nil {
				concept, err = uywi.ConceptFromIndex(index, length)
			}
		}
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}

		writeJSON(w, http.StatusOK, conceptJSON{
			Index:  concept.Index(),
			Length: concept.Length().AsInt(),
			String: concept.Render(script),
		})
	}
}

func handleWord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		length, err := parseLength(r)
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}
		conceptIndex, err := strconv.Atoi(r.URL.Query().Get("index"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing or invalid 'index' query parameter")
			return
		}
		stemIndex, err := strconv.Atoi(r.URL.Query().Get("stem"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing or invalid 'stem' query parameter")
			return
		}
		formIndex, err := strconv.Atoi(r.URL.Query().Get("form"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing or invalid 'form' query parameter")
			return
		}

		concept, err := uywi.ConceptFromIndex(conceptIndex, length)
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}

		found := false
		var word uywi.Word
		stemIter := concept.Stems()
		for {
			stem, ok := stemIter.Next()
			if !ok {
				break
			}
			if stem.StemIndex() != stemIndex {
				continue
			}
			wordIter := stem.Words()
			for {
				w2, ok := wordIter.Next()
				if !ok {
					break
				}
				if w2.FormIndex() == formIndex {
					word = w2
					found = true
				}
			}
		}
		if !found {
			writeError(w, http.StatusBadRequest, "no such (stem_index, form_index) for this length")
			return
		}

		script := parseScript(r)
		writeJSON(w, http.StatusOK, wordJSON{
			StemIndex: word.StemIndex(),
			FormIndex: word.FormIndex(),
			String:    word.Render(script),
		})
	}
}

// ---- middleware -----------------------------------------------------------

type requestIDKey struct{}

// withRequestID stamps every request with a fresh UUID, logged alongside
// the method and path, so a multi-request trace can be correlated after
// the fact.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		log.Printf("%s request_id=%s %s %s", r.RemoteAddr, id, r.Method, r.URL.Path)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ---- main -------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/pages", handlePage())
	mux.HandleFunc("/api/concept", handleConcept())
	mux.HandleFunc("/api/word", handleWord())

	handler := withRequestID(cors.Default().Handler(mux))

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
