package handler

import (
	"encoding/json"
	"net/http"

	"github.com/craftdex/companion/internal/domain"
	"github.com/craftdex/companion/internal/logger"
	"github.com/craftdex/companion/internal/planner"
)

// AddToPlannerRequest adds demand for an item, optionally via a recipe.
type AddToPlannerRequest struct {
	ItemID   string `json:"item_id" validate:"required,itemid"`
	RecipeID string `json:"recipe_id" validate:"omitempty,itemid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// UpdatePlannerRequest overwrites one field of a tracked entry.
type UpdatePlannerRequest struct {
	ItemID   string `json:"item_id" validate:"required,itemid"`
	RecipeID string `json:"recipe_id" validate:"omitempty,itemid"`
	Field    string `json:"field" validate:"required,oneof=needed have"`
	Value    int    `json:"value"`
}

// RemoveFromPlannerRequest identifies the entry to drop.
type RemoveFromPlannerRequest struct {
	ItemID   string `json:"item_id" validate:"required,itemid"`
	RecipeID string `json:"recipe_id" validate:"omitempty,itemid"`
}

// AddCustomIngredientRequest attaches an ad-hoc ingredient note to a planner
// item. The ingredient id is free-form; it does not have to exist in the
// catalog.
type AddCustomIngredientRequest struct {
	PlannerItemID string `json:"planner_item_id" validate:"required,itemid"`
	IngredientID  string `json:"ingredient_id" validate:"required,max=100"`
	Name          string `json:"name" validate:"required,max=100"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
}

// HandleGetPlanner returns a handler that lists the planner ledger with Have
// values reconciled against the inventory at request time.
//
// @Summary Get planner ledger
// @Tags planner
// @Produce json
// @Success 200 {object} DataResponse{data=[]domain.PlannerEntry}
// @Router /api/v1/planner [get]
func HandleGetPlanner(service planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := service.Reconcile(r.Context())
		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}

// HandleAddToPlanner returns a handler that adds demand to the planner,
// expanding the chosen recipe's direct ingredients.
//
// @Summary Add item to planner
// @Tags planner
// @Accept json
// @Produce json
// @Param request body AddToPlannerRequest true "Demand to add"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/planner/add [post]
func HandleAddToPlanner(service planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddToPlannerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("Failed to decode planner add request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Debug("Planner add request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		if err := service.Add(r.Context(), req.ItemID, req.RecipeID, req.Quantity); err != nil {
			log.Warn("Planner add failed", "item", req.ItemID, "recipe", req.RecipeID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Added to planner"})
	}
}

// HandleUpdatePlanner returns a handler that overwrites the needed or have
// field of a tracked entry. Values are stored as given, including negatives.
//
// @Summary Update planner entry field
// @Tags planner
// @Accept json
// @Produce json
// @Param request body UpdatePlannerRequest true "Field update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/planner/update [post]
func HandleUpdatePlanner(service planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpdatePlannerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("Failed to decode planner update request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Debug("Planner update request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		key := domain.PlannerKey{ItemID: req.ItemID, RecipeID: req.RecipeID}
		if err := service.UpdateField(r.Context(), key, req.Field, req.Value); err != nil {
			log.Warn("Planner update failed", "item", req.ItemID, "field", req.Field, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Planner entry updated"})
	}
}

// HandleRemoveFromPlanner returns a handler that removes an entry by its
// identity key. Removing an untracked key succeeds without effect.
//
// @Summary Remove planner entry
// @Tags planner
// @Accept json
// @Produce json
// @Param request body RemoveFromPlannerRequest true "Entry to remove"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/planner/remove [post]
func HandleRemoveFromPlanner(service planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RemoveFromPlannerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("Failed to decode planner remove request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Debug("Planner remove request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		service.Remove(r.Context(), domain.PlannerKey{ItemID: req.ItemID, RecipeID: req.RecipeID})

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Planner entry removed"})
	}
}

// HandleAddCustomIngredient returns a handler that attaches an ad-hoc
// ingredient annotation to a planner item.
//
// @Summary Add custom ingredient annotation
// @Tags planner
// @Accept json
// @Produce json
// @Param request body AddCustomIngredientRequest true "Annotation to add"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/planner/custom-ingredient [post]
func HandleAddCustomIngredient(service planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddCustomIngredientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("Failed to decode custom ingredient request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Debug("Custom ingredient request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		service.AddCustomIngredient(r.Context(), req.PlannerItemID, domain.CustomIngredient{
			ID:   req.IngredientID,
			Name: req.Name,
			Qty:  req.Quantity,
		})

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Custom ingredient added"})
	}
}

// HandleGetCustomIngredients returns a handler that lists all custom
// ingredient annotations keyed by planner item id.
//
// @Summary List custom ingredient annotations
// @Tags planner
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/planner/custom-ingredients [get]
func HandleGetCustomIngredients(service planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: service.CustomIngredients(r.Context())})
	}
}
