package handler

import (
	"encoding/json"
	"net/http"

	"github.com/craftdex/companion/internal/inventory"
	"github.com/craftdex/companion/internal/logger"
)

// AddInventoryRequest merges quantity into the ledger entry for an item.
type AddInventoryRequest struct {
	ItemID   string `json:"item_id" validate:"required,itemid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// SetInventoryRequest overwrites the quantity of a tracked item. The value is
// applied as given.
type SetInventoryRequest struct {
	ItemID   string `json:"item_id" validate:"required,itemid"`
	Quantity int    `json:"quantity"`
}

// RemoveInventoryRequest identifies the entry to drop.
type RemoveInventoryRequest struct {
	ItemID string `json:"item_id" validate:"required,itemid"`
}

// HandleGetInventory returns a handler that lists the inventory ledger.
//
// @Summary Get inventory ledger
// @Tags inventory
// @Produce json
// @Success 200 {object} DataResponse{data=[]domain.InventoryEntry}
// @Router /api/v1/inventory [get]
func HandleGetInventory(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: service.Entries(r.Context())})
	}
}

// HandleAddInventory returns a handler that merges owned quantity into the
// inventory.
//
// @Summary Add to inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AddInventoryRequest true "Quantity to add"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/inventory/add [post]
func HandleAddInventory(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddInventoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("Failed to decode inventory add request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Debug("Inventory add request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		if err := service.Add(r.Context(), req.ItemID, req.Quantity); err != nil {
			log.Warn("Inventory add failed", "item", req.ItemID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Added to inventory"})
	}
}

// HandleSetInventory returns a handler that overwrites the quantity of a
// tracked item.
//
// @Summary Set inventory quantity
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body SetInventoryRequest true "Quantity to set"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/inventory/set [post]
func HandleSetInventory(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SetInventoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("Failed to decode inventory set request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Debug("Inventory set request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		if err := service.SetQuantity(r.Context(), req.ItemID, req.Quantity); err != nil {
			log.Warn("Inventory set failed", "item", req.ItemID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Inventory quantity set"})
	}
}

// HandleRemoveInventory returns a handler that removes an item from the
// inventory. Removing an untracked item succeeds without effect.
//
// @Summary Remove from inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body RemoveInventoryRequest true "Entry to remove"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/inventory/remove [post]
func HandleRemoveInventory(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RemoveInventoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("Failed to decode inventory remove request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Debug("Inventory remove request failed validation", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		service.Remove(r.Context(), req.ItemID)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Removed from inventory"})
	}
}
