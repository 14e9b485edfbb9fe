// file: internals/helpers/json_response.go
package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Pagination (tabel referensi)
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"` // jumlah item di halaman ini
}

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging membaca ?page= & ?per_page= (atau alias ?limit=) dan normalisasi.
// maxPerPage 0 = tanpa batas.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	pageStr := strings.TrimSpace(c.Query("page", "1"))

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultPerPage)))
	}

	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	// batas atas supaya (page-1)*perPage tidak overflow
	if page > math.MaxInt32 {
		page = math.MaxInt32
	}
	if perPage > math.MaxInt32 {
		perPage = math.MaxInt32
	}

	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}
}

func BuildPaginationFromPage(total int64, page, perPage, count int) Pagination {
	if perPage <= 0 {
		perPage = 20
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage)) // ceil
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		Count:      count,
	}
}

// PageSlice memotong slice in-memory sesuai Paging.
func PageSlice[T any](items []T, p Paging) []T {
	if p.Offset < 0 || p.Limit <= 0 || p.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit < end-p.Offset {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" && status >= 500 {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonValidationError: khusus error validasi (422)
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success:   false,
		Message:   "validation failed",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fieldErrors,
	})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonList: list dengan pagination
func JsonList(c *fiber.Ctx, message string, data any, pagination Pagination) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

// JsonListEx: list + includes (misal catatan kebijakan)
func JsonListEx(c *fiber.Ctx, message string, data any, pagination Pagination, includes any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	body := fiber.Map{
		"success":    true,
		"message":    message,
		"data":       data,
		"pagination": pagination,
	}
	if includes != nil {
		body["includes"] = includes
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonOK: response sukses generic
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}
