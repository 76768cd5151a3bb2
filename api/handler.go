package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"tariff-compare/adapters/importer"
	"tariff-compare/core/catalog"
	"tariff-compare/core/output"
	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

// maxImportBytes bounds POST /import bodies
const maxImportBytes = 1 << 20

// handleVendors handles GET /vendors
func (s *Server) handleVendors(w http.ResponseWriter, r *http.Request) {
	plans, status := s.engine.Vendors(r.Context())
	s.writeJSON(w, VendorsResponse{Vendors: plans, Count: len(plans), Store: storeResult(status)}, http.StatusOK)
}

// handleCustomVendors handles GET /vendors/custom
func (s *Server) handleCustomVendors(w http.ResponseWriter, r *http.Request) {
	plans, status := s.engine.Custom(r.Context())
	s.writeJSON(w, VendorsResponse{Vendors: plans, Count: len(plans), Store: storeResult(status)}, http.StatusOK)
}

// handleAddVendor handles POST /vendors/custom
func (s *Server) handleAddVendor(w http.ResponseWriter, r *http.Request) {
	plan, err := decodeVendorPlan(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	status := s.engine.AddCustom(r.Context(), plan)
	s.writeJSON(w, VendorResponse{Vendor: plan, Store: storeResult(status)}, http.StatusCreated)
}

// handleReplaceVendor handles PUT /vendors/custom/{index}
func (s *Server) handleReplaceVendor(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	plan, err := decodeVendorPlan(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	status, err := s.engine.ReplaceCustom(r.Context(), index, plan)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, VendorResponse{Vendor: plan, Store: storeResult(status)}, http.StatusOK)
}

func decodeVendorPlan(r *http.Request) (types.VendorPlan, error) {
	req, err := decodeAddVendor(r)
	if err != nil {
		return types.VendorPlan{}, err
	}
	return catalog.FromFields(req.VendorName, req.PlanName, req.FixedFee.String(), req.UnitRate.String(), req.InfoLink)
}

func indexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Input("index must be an integer").WithContext("index", raw)
	}
	return index, nil
}

func decodeAddVendor(r *http.Request) (AddVendorRequest, error) {
	var req AddVendorRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, errors.Wrap(errors.TypeInput, "invalid JSON body", err)
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, errors.Wrap(errors.TypeInput, "invalid form body", err)
	}
	req.VendorName = r.PostFormValue("vendorName")
	req.PlanName = r.PostFormValue("planName")
	req.FixedFee = json.Number(r.PostFormValue("fixedFee"))
	req.UnitRate = json.Number(r.PostFormValue("unitRate"))
	req.InfoLink = r.PostFormValue("infoLink")
	return req, nil
}

// handleRemoveVendor handles DELETE /vendors/custom/{index}
func (s *Server) handleRemoveVendor(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	removed, status, err := s.engine.RemoveCustom(r.Context(), index)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, VendorResponse{Vendor: removed, Store: storeResult(status)}, http.StatusOK)
}

// handleRank handles GET /rank?quantity=
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("quantity")
	if strings.TrimSpace(raw) == "" {
		s.writeError(w, errors.Input("quantity is required"))
		return
	}
	quantity, err := catalog.ParseAmount(raw)
	if err != nil {
		s.writeError(w, err)
		return
	}

	ranked, status := s.engine.RankAt(r.Context(), quantity)
	s.writeJSON(w, RankResponse{
		RankingReport: output.NewRankingReport(quantity, ranked, s.currency),
		Store:         storeResult(status),
	}, http.StatusOK)
}

// handleLadder handles GET /ladder
func (s *Server) handleLadder(w http.ResponseWriter, r *http.Request) {
	buckets, status := s.engine.RankAllLevels(r.Context())
	s.writeJSON(w, LadderResponse{
		LadderReport: output.NewLadderReport(buckets, s.currency),
		Store:        storeResult(status),
	}, http.StatusOK)
}

// handleImport handles POST /import[?format=csv|hcl|yaml][&persist=true]
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	format := importer.FormatCSV
	if f := r.URL.Query().Get("format"); f != "" {
		format = importer.Format(strings.ToLower(f))
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.TypeInput, "read body", err))
		return
	}

	plans, err := importer.Parse(format, body, "request."+string(format))
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := ImportResponse{Vendors: plans, Count: len(plans)}
	if persist, _ := strconv.ParseBool(r.URL.Query().Get("persist")); persist {
		result := storeResult(s.engine.ImportCustom(r.Context(), plans))
		resp.Persisted = result.Healthy
		resp.Store = &result
	}
	s.writeJSON(w, resp, http.StatusOK)
}
