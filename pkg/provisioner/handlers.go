// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/weftworks/provisioning-service/internal/logging"
	"github.com/weftworks/provisioning-service/internal/monitoring"
	"github.com/weftworks/provisioning-service/internal/tracing"
	"github.com/weftworks/provisioning-service/internal/types"
	"github.com/weftworks/provisioning-service/internal/validation"
	"github.com/weftworks/provisioning-service/pkg/plan"
)

type API struct {
	service   ServiceInterface
	validator *validation.Validator
	baseHost  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	validator *validation.Validator,
	baseHost string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:   service,
		validator: validator,
		baseHost:  baseHost,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/signup", a.signup)
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioner.API.signup")
	defer span.End()

	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.Errorf("failed to decode signup request: %v", err)
		a.writeError(w, &ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid request body",
		})
		return
	}

	if fieldErrs := a.validator.Validate(req); fieldErrs != nil {
		a.writeFieldErrors(w, http.StatusBadRequest, fieldErrs, &req)
		return
	}

	tenant, err := a.service.Provision(ctx, &req)
	if err != nil {
		a.renderProvisionError(w, err, &req)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(&SignupResponse{
		Status: http.StatusCreated,
		Tenant: &TenantResponse{
			ID:        tenant.ID,
			Name:      tenant.Name,
			Subdomain: tenant.Subdomain,
			Schema:    tenant.Schema,
			Active:    tenant.Active,
			CreatedAt: tenant.CreatedAt,
		},
		Confirmation: &ConfirmationResponse{
			CompanyName: tenant.Name,
			URL:         fmt.Sprintf("%s.%s", tenant.Subdomain, a.baseHost),
			AdminEmail:  req.AdminEmail,
			PlanLabel:   plan.Label(req.Plan),
		},
	})
}

func (a *API) renderProvisionError(w http.ResponseWriter, err error, req *types.SignupRequest) {
	if errors.Is(err, ErrSubdomainTaken) {
		a.writeFieldErrors(w, http.StatusConflict, validation.FieldErrors{
			"subdomain": "this subdomain is already taken",
		}, req)
		return
	}

	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		a.writeFieldErrors(w, http.StatusBadRequest, fieldErrs, req)
		return
	}

	a.logger.Errorf("signup failed: %v", err)
	a.writeError(w, &ErrorResponse{
		Status:  http.StatusInternalServerError,
		Message: "unable to complete signup",
	})
}

func (a *API) writeFieldErrors(w http.ResponseWriter, status int, fieldErrs validation.FieldErrors, req *types.SignupRequest) {
	a.writeError(w, &ErrorResponse{
		Status:  status,
		Message: "signup could not be processed",
		Errors:  fieldErrs,
		Values:  submittedValues(req),
	})
}

func (a *API) writeError(w http.ResponseWriter, resp *ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp)
}

// submittedValues echoes the submitted fields back for form redisplay.
// Passwords are never echoed.
func submittedValues(req *types.SignupRequest) map[string]string {
	if req == nil {
		return nil
	}

	return map[string]string{
		"company_name": req.CompanyName,
		"subdomain":    req.Subdomain,
		"admin_name":   req.AdminName,
		"admin_email":  req.AdminEmail,
		"plan":         req.Plan,
	}
}
