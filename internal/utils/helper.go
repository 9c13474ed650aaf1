package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

func StrPtr(s string) *string {
	return &s
}

func ToUint(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	return uint(n), err
}

func ParseUint(s string) uint {
	var id uint
	fmt.Sscan(s, &id)
	return id
}

func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func PtrFloat64(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// PageBounds returns the slice bounds for one page of an in-memory list.
// Pages are 1-based; page values out of range clamp to an empty window.
func PageBounds(total, page, size int) (int, int) {
	if size <= 0 || page <= 0 {
		return 0, 0
	}

	start := (page - 1) * size
	if start >= total {
		return total, total
	}

	end := start + size
	if end > total {
		end = total
	}
	return start, end
}
