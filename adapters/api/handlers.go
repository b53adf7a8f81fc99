package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"seedhash/adapters/export"
	"seedhash/adapters/report"
	"seedhash/domain/core"
	"seedhash/domain/experiment"
	"seedhash/domain/seed"
	"seedhash/internal/errors"
)

type generateRequest struct {
	Input string `json:"input"`
	Min   *int64 `json:"min,omitempty"`
	Max   *int64 `json:"max,omitempty"`
	Count int    `json:"count"`
}

type generateResponse struct {
	Seed   int64   `json:"seed"`
	Hash   string  `json:"hash"`
	Values []int64 `json:"values"`
}

func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError("invalid JSON body"))
		return
	}

	min, max := core.DefaultMin, core.DefaultMax
	if req.Min != nil {
		min = *req.Min
	}
	if req.Max != nil {
		max = *req.Max
	}

	gen, err := seed.NewGeneratorWithRange(req.Input, min, max)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	values, err := gen.Generate(req.Count)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Seed:   gen.Seed(),
		Hash:   gen.Hash(),
		Values: values,
	})
}

type sampleRequest struct {
	MasterSeed        int64  `json:"master_seed"`
	Method            string `json:"method"`
	NSamples          int    `json:"n_samples"`
	Min               *int64 `json:"min,omitempty"`
	Max               *int64 `json:"max,omitempty"`
	NStrata           int    `json:"n_strata,omitempty"`
	NClusters         int    `json:"n_clusters,omitempty"`
	SamplesPerCluster int    `json:"samples_per_cluster,omitempty"`
}

type sampleResponse struct {
	Method string  `json:"method"`
	Seeds  []int64 `json:"seeds"`
}

func (a *App) handleSample(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError("invalid JSON body"))
		return
	}

	method, err := seed.ParseMethod(req.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError(err.Error()))
		return
	}

	bounds := core.DefaultRange()
	if req.Min != nil {
		bounds.Min = *req.Min
	}
	if req.Max != nil {
		bounds.Max = *req.Max
	}

	sampler := seed.NewSampler(req.MasterSeed)
	seeds, err := sampler.Sample(method, req.NSamples, bounds, seed.SampleParams{
		NStrata:           req.NStrata,
		NClusters:         req.NClusters,
		SamplesPerCluster: req.SamplesPerCluster,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sampleResponse{Method: method.String(), Seeds: seeds})
}

func (a *App) handleMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]seed.Method{"methods": seed.Methods()})
}

type createExperimentRequest struct {
	Name       string `json:"name"`
	MasterSeed *int64 `json:"master_seed,omitempty"`
	NSeeds     int    `json:"n_seeds,omitempty"`
	NSubSeeds  int    `json:"n_sub_seeds,omitempty"`
	MaxDepth   int    `json:"max_depth,omitempty"`
	Method     string `json:"method,omitempty"`
	Min        *int64 `json:"min,omitempty"`
	Max        *int64 `json:"max,omitempty"`
}

type createExperimentResponse struct {
	Name       string          `json:"name"`
	MasterSeed int64           `json:"master_seed"`
	Hierarchy  map[int][]int64 `json:"hierarchy"`
}

func (a *App) handleCreateExperiment(w http.ResponseWriter, r *http.Request) {
	var req createExperimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError("invalid JSON body"))
		return
	}

	var manager *experiment.Manager
	if req.MasterSeed != nil {
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, errors.ValidationError("experiment name is required"))
			return
		}
		manager = experiment.NewManagerWithSeed(req.Name, *req.MasterSeed)
	} else {
		var err error
		manager, err = experiment.NewManager(req.Name)
		if err != nil {
			writeDomainError(w, err)
			return
		}
	}

	cfg := experiment.HierarchyConfig{
		NSeeds:    req.NSeeds,
		NSubSeeds: req.NSubSeeds,
		MaxDepth:  req.MaxDepth,
	}
	if req.Method != "" {
		method, err := seed.ParseMethod(req.Method)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.ValidationError(err.Error()))
			return
		}
		cfg.Method = method
	}
	if req.Min != nil || req.Max != nil {
		cfg.Range = core.DefaultRange()
		if req.Min != nil {
			cfg.Range.Min = *req.Min
		}
		if req.Max != nil {
			cfg.Range.Max = *req.Max
		}
	}

	hierarchy, err := manager.GenerateHierarchy(cfg)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	a.registerManager(req.Name, manager)

	writeJSON(w, http.StatusOK, createExperimentResponse{
		Name:       req.Name,
		MasterSeed: manager.MasterSeed(),
		Hierarchy:  hierarchy,
	})
}

type addResultRequest struct {
	Seed     int64              `json:"seed"`
	Task     string             `json:"task"`
	Method   string             `json:"method"`
	Metrics  map[string]float64 `json:"metrics"`
	Metadata map[string]string  `json:"metadata,omitempty"`
}

func (a *App) handleAddResult(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	manager, ok := a.manager(name)
	if !ok {
		writeError(w, http.StatusNotFound, errors.NotFound("experiment "+name))
		return
	}

	var req addResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError("invalid JSON body"))
		return
	}

	task, err := experiment.ParseTask(req.Task)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError(err.Error()))
		return
	}
	method, err := seed.ParseMethod(req.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError(err.Error()))
		return
	}

	result := manager.AddResult(req.Seed, task, method, req.Metrics, req.Metadata)

	if a.repo != nil {
		if err := a.repo.SaveResult(r.Context(), name, result); err != nil {
			// Recording stays authoritative in memory; persistence
			// failures are logged, not surfaced as request failures.
			log.Printf("failed to persist result %s: %v", result.ExperimentID, err)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	manager, ok := a.manager(name)
	if !ok {
		writeError(w, http.StatusNotFound, errors.NotFound("experiment "+name))
		return
	}
	writeJSON(w, http.StatusOK, manager.Summarize())
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	manager, ok := a.manager(name)
	if !ok {
		writeError(w, http.StatusNotFound, errors.NotFound("experiment "+name))
		return
	}

	md := report.Markdown(manager.Name(), manager.MasterSeed(), manager.Summarize())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.HTML(md))
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	manager, ok := a.manager(name)
	if !ok {
		writeError(w, http.StatusNotFound, errors.NotFound("experiment "+name))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = string(export.FormatCSV)
	}

	table := manager.ResultsTable()
	switch export.Format(format) {
	case export.FormatCSV:
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.csv"`)
		if err := export.WriteCSV(w, table); err != nil {
			log.Printf("failed to stream CSV for %s: %v", name, err)
		}
	case export.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
		if err := export.WriteJSON(w, table); err != nil {
			log.Printf("failed to stream JSON for %s: %v", name, err)
		}
	default:
		writeError(w, http.StatusBadRequest, errors.ValidationError("unsupported export format "+format+" (valid: csv, json)"))
	}
}

// errorResponse is the JSON envelope for failures.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err *errors.AppError) {
	writeJSON(w, status, errorResponse{Error: err.Message, Code: err.Code})
}

// writeDomainError maps validation kinds to 400 and everything else
// to 500, preserving the domain message for the caller.
func writeDomainError(w http.ResponseWriter, err error) {
	if core.IsValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: errors.CodeValidationError})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: errors.CodeInternalError})
}
