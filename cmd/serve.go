package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/midilint/config"
	"github.com/jsphweid/midilint/lint"
	"github.com/jsphweid/midilint/midi"
	"github.com/jsphweid/midilint/model"
	"github.com/jsphweid/midilint/theory"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the lint pipeline over http",
	Long:  `Serves the lint pipeline over http`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func pipelineFromQuery(r *http.Request) (lint.Pipeline, error) {
	var p lint.Pipeline
	q := r.URL.Query()
	if v := q.Get("velocity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("invalid velocity: %v", v)
		}
		vel := uint8(n)
		p.Velocity = &vel
	}
	if v := q.Get("align"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("invalid align precision: %v", v)
		}
		p.Precision = &n
	}
	if v := q.Get("key"); v != "" {
		key, err := theory.ParseKey(v)
		if err != nil {
			return p, err
		}
		p.Allowed = key.Pitches()
	}
	if v := q.Get("strategy"); v != "" {
		strategy, err := lint.ParseStrategy(v)
		if err != nil {
			return p, err
		}
		p.Strategy = strategy
	}
	return p, nil
}

// HandleLint lints the midi file in the request body with the
// transforms selected by the query parameters and responds with the
// rewritten file.
func HandleLint(w http.ResponseWriter, r *http.Request) {
	pipeline, err := pipelineFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body: "+err.Error())
		return
	}
	s, err := midi.ReadMidi(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := pipeline.Apply(s); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Write(buf.Bytes())
}

// HandleKeys lists every supported key name.
func HandleKeys(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.KeysResponse{Keys: theory.KeyNames()})
}

func serve() error {
	logger := newLogger("serve")
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/lint", HandleLint).Methods("POST")
	router.HandleFunc("/keys", HandleKeys).Methods("GET")
	handler := cors.Default().Handler(router)

	addr := config.GetServeAddr()
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, handler)
}
