package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dshills/screentime/internal/content"
	"github.com/dshills/screentime/internal/render"
	"github.com/dshills/screentime/internal/scoring"
	"github.com/dshills/screentime/internal/survey"
)

const maxBodyBytes = 64 << 10

// PredictResponse is the JSON body returned by POST /api/predict.
type PredictResponse struct {
	Prediction scoring.Prediction `json:"prediction"`
	Input      survey.Input       `json:"input"`
}

// ErrorResponse is the JSON body for rejected API requests.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []survey.FieldError `json:"fields,omitempty"`
}

// PageHandler renders the page with an empty form.
func PageHandler(site *content.Site, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePage(w, http.StatusOK, render.PageData{Site: site, Version: version})
	}
}

// PredictFormHandler scores a form submission. With ?fragment=1 only the
// result panel (or the error list) is returned, for in-page updates.
func PredictFormHandler(site *content.Site, version string, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "malformed form: "+err.Error(), http.StatusBadRequest)
			return
		}
		fragment := r.URL.Query().Get("fragment") == "1"

		in, err := survey.FromValues(r.PostForm)
		if err != nil {
			var ie *survey.InvalidInputError
			if !errors.As(err, &ie) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			logger.Printf("rejected submission: %v", err)
			if fragment {
				writeHTML(w, http.StatusUnprocessableEntity, func(b *bytes.Buffer) error {
					return render.Errors(b, ie.Fields)
				})
				return
			}
			writePage(w, http.StatusUnprocessableEntity, render.PageData{
				Site: site, Version: version, Form: r.PostForm, Errors: ie.Fields,
			})
			return
		}

		p := scoring.Predict(in)
		if fragment {
			writeHTML(w, http.StatusOK, func(b *bytes.Buffer) error {
				return render.Panel(b, p, in)
			})
			return
		}
		writePage(w, http.StatusOK, render.PageData{
			Site: site, Version: version, Form: in.Values(),
			Result: &render.PanelData{Prediction: p, Input: in},
		})
	}
}

// PredictAPIHandler scores a JSON survey object.
func PredictAPIHandler(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.UseNumber()
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed JSON: " + err.Error()}, logger)
			return
		}
		if raw == nil {
			raw = map[string]any{}
		}

		in, err := survey.FromAny(raw)
		if err != nil {
			var ie *survey.InvalidInputError
			if errors.As(err, &ie) {
				writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid input", Fields: ie.Fields}, logger)
				return
			}
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()}, logger)
			return
		}
		writeJSON(w, http.StatusOK, PredictResponse{Prediction: scoring.Predict(in), Input: in}, logger)
	}
}

// ContentHandler returns the page content as JSON.
func ContentHandler(site *content.Site, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, site, logger)
	}
}

// writeJSON buffers the encoding so a failure can still become a 500.
func writeJSON(w http.ResponseWriter, status int, v any, logger *log.Logger) {
	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(v); err != nil {
		logger.Printf("encode %T: %v", v, err)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b.Bytes()); err != nil {
		logger.Printf("write response: %v", err)
	}
}

func writePage(w http.ResponseWriter, status int, d render.PageData) {
	writeHTML(w, status, func(b *bytes.Buffer) error { return render.Page(b, d) })
}

// writeHTML buffers the render; nothing but a 500 is written if it fails.
func writeHTML(w http.ResponseWriter, status int, fn func(*bytes.Buffer) error) {
	var b bytes.Buffer
	if err := fn(&b); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(b.Bytes())
}
