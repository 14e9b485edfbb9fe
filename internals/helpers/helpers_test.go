package helper

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"unicalc_backend/internals/features/calculators/calcerr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{3, 4}, PageSlice(items, Paging{Offset: 2, Limit: 2}))
	assert.Equal(t, []int{5}, PageSlice(items, Paging{Offset: 4, Limit: 2}))
	assert.Equal(t, []int{}, PageSlice(items, Paging{Offset: 10, Limit: 2}))
	assert.Equal(t, []int{}, PageSlice(items, Paging{Offset: -8, Limit: 2}))
	assert.Equal(t, []int{2, 3, 4, 5}, PageSlice(items, Paging{Offset: 1, Limit: math.MaxInt}))
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(9, 2, 4, 4)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 0, 0, 0)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

type sample struct {
	Name  string   `json:"name" validate:"required"`
	Score *float64 `json:"score" validate:"required,gte=0,lte=4"`
	Items []struct {
		Credit float64 `json:"credit" validate:"gt=0"`
	} `json:"items" validate:"dive"`
}

func TestValidationFieldErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()
	bad := 5.0
	s := sample{Score: &bad}
	s.Items = append(s.Items, struct {
		Credit float64 `json:"credit" validate:"gt=0"`
	}{Credit: 0})

	errs := ValidationFieldErrors(v.Struct(&s))
	assert.Equal(t, []string{"is required"}, errs["name"])
	assert.Equal(t, []string{"must be at most 4"}, errs["score"])
	assert.Equal(t, []string{"must be greater than 0"}, errs["items[0].credit"])
}

func TestValidationFieldErrors_NonValidatorError(t *testing.T) {
	errs := ValidationFieldErrors(fmt.Errorf("boom"))
	assert.Equal(t, []string{"boom"}, errs["_"])
}

func TestFromCalcError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", calcerr.Invalid("prior_cgpa", "is required"), fiber.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"division by zero", fmt.Errorf("cgpa: %w", calcerr.ErrDivisionByZero), fiber.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"fiber error", fiber.NewError(fiber.StatusNotFound, "nope"), fiber.StatusNotFound, "NOT_FOUND"},
		{"other", fmt.Errorf("db down"), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return FromCalcError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var body map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.code, body["error_code"])
		})
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 50)
		return nil
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/?page=3&limit=500", nil))
	require.NoError(t, err)
	assert.Equal(t, Paging{Page: 3, PerPage: 50, Offset: 100, Limit: 50}, got)

	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/?page=-1&per_page=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}, got)
}

func TestResolvePaging_HugePageDoesNotOverflow(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		p := ResolvePaging(c, 20, 0)
		assert.GreaterOrEqual(t, p.Offset, 0)
		page := PageSlice([]string{"a", "b"}, p)
		return JsonList(c, "ok", page, BuildPaginationFromPage(2, p.Page, p.PerPage, len(page)))
	})

	for _, q := range []string{
		"/?page=500000000000000000",
		"/?page=500000000000000000&limit=9000000000000000000",
		"/?page=2&per_page=9000000000000000000",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, q, nil))
		require.NoError(t, err, q)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, q)

		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body), q)
		assert.Empty(t, body["data"], q)
	}
}
