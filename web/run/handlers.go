package webapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/DeadSix27/dfind/app"
	"github.com/DeadSix27/dfind/models"
)

func (wa *WebApp) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			renderError(w, http.StatusBadRequest, "missing query parameter: q")
			return
		}
		exact := r.URL.Query().Get("exact") == "1"
		caseSensitive := r.URL.Query().Get("case") == "1"

		res, err := wa.Searcher.Search(q, exact, caseSensitive)
		if err != nil {
			if errors.Is(err, app.ErrNoIndex) {
				renderError(w, http.StatusServiceUnavailable, "no index database, run dfind index first")
				return
			}
			renderError(w, http.StatusInternalServerError, "")
			return
		}
		if res.Items == nil {
			res.Items = []models.FileRecord{}
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (wa *WebApp) top() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("type")
		if kind == "" {
			kind = "folders"
		}
		max := 10
		if v := r.URL.Query().Get("max"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				renderError(w, http.StatusBadRequest, "max must be a number")
				return
			}
			max = n
		}
		ascending := r.URL.Query().Get("ascending") == "1"

		entries, err := wa.Searcher.Top(kind, max, ascending)
		if err != nil {
			if errors.Is(err, app.ErrNoIndex) {
				renderError(w, http.StatusServiceUnavailable, "no index database, run dfind index first")
				return
			}
			renderError(w, http.StatusBadRequest, err.Error())
			return
		}
		if entries == nil {
			entries = []models.TopEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func (wa *WebApp) stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := wa.Searcher.Stats()
		if err != nil {
			if errors.Is(err, app.ErrNoIndex) {
				renderError(w, http.StatusServiceUnavailable, "no index database, run dfind index first")
				return
			}
			renderError(w, http.StatusInternalServerError, "")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
