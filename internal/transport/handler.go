package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"candyshop-be/internal/utils"
)

// adminPageSize matches the page size of the admin list screens.
const adminPageSize = 5

var timeNow = time.Now

// ownerFrom resolves the client identity for cart-like stores: explicit
// owner query param first, then the device header.
func ownerFrom(r *http.Request) string {
	if owner := r.URL.Query().Get("owner"); owner != "" {
		return owner
	}
	return r.Header.Get("X-Device-ID")
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(r *http.Request, vars map[string]string) (uint, bool) {
	id, err := utils.ToUint(vars["id"])
	if err != nil {
		return 0, false
	}
	return id, true
}

// pagedPayload wraps one page of an already filtered in-memory snapshot.
func pagedPayload(items any, page, total int) map[string]any {
	totalPages := (total + adminPageSize - 1) / adminPageSize
	return map[string]any{
		"items":      items,
		"page":       page,
		"totalPages": totalPages,
		"totalItems": total,
	}
}

// pageParam returns the requested page, or 0 when pagination was not asked for.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 0
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page <= 0 {
		return 0
	}
	return page
}
