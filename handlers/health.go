package handlers

import (
	"io"
	"net/http"
)

func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "Hello world!") //nolint:errcheck
	}
}

func Health(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			writeInternalError(w, "Health", err)
			return
		}
		writeSuccess(w, http.StatusOK, "ok")
	}
}
