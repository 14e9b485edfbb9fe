package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	refSvc "unicalc_backend/internals/features/references/service"

	gokitlog "github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, body string) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Post("/tuition", NewTuitionController(refSvc.NewStaticStore(), gokitlog.NewNopLogger()).Calculate)

	req := httptest.NewRequest(http.MethodPost, "/tuition", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestCalculate_ExplicitFees(t *testing.T) {
	status, body := post(t, `{
		"new_credit": 12,
		"per_credit_fee": 6500,
		"trimester_fee": 6500,
		"waiver_pct": 25,
		"waiver_in_first_installment": true
	}`)
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]any)
	result := data["result"].(map[string]any)
	assert.Equal(t, 65000.0, result["final_amount"])
	assert.Equal(t, "uniform", result["policy"])

	items := data["installments"].([]any)
	require.Len(t, items, 3)
	first := items[0].(map[string]any)
	assert.Equal(t, 1.0, first["sequence"])
	assert.Equal(t, "1st Installment", first["label"])
	assert.Equal(t, 26000.0, first["amount"])
	assert.Equal(t, 19500.0, items[2].(map[string]any)["amount"])

	inputs := data["inputs"].(map[string]any)
	assert.Equal(t, 25.0, inputs["waiver_pct"])
}

func TestCalculate_FeeScheduleFillsMissingFees(t *testing.T) {
	status, body := post(t, `{"new_credit": 12, "fee_schedule_code": "standard"}`)
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]any)
	result := data["result"].(map[string]any)
	assert.Equal(t, 84500.0, result["final_amount"])
	assert.Equal(t, 33800.0, result["first_installment"])
	assert.Equal(t, "STANDARD", data["inputs"].(map[string]any)["fee_schedule_code"])
}

func TestCalculate_ExplicitFeeWinsOverSchedule(t *testing.T) {
	status, body := post(t, `{"new_credit": 10, "per_credit_fee": 5000, "fee_schedule_code": "STANDARD"}`)
	require.Equal(t, fiber.StatusOK, status)

	result := body["data"].(map[string]any)["result"].(map[string]any)
	assert.Equal(t, 5000.0, result["per_credit_fee"])
	assert.Equal(t, 6500.0, result["trimester_fee"])
	assert.Equal(t, 56500.0, result["final_amount"])
}

func TestCalculate_UnknownFeeSchedule(t *testing.T) {
	status, body := post(t, `{"new_credit": 12, "fee_schedule_code": "NIGHT"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestCalculate_MissingFeesWithoutSchedule(t *testing.T) {
	status, body := post(t, `{"new_credit": 12}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body["errors"].(map[string]any), "input")
}

func TestCalculate_Validation(t *testing.T) {
	status, body := post(t, `{"per_credit_fee": 6500, "trimester_fee": 6500, "scholarship_pct": 120}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "new_credit")
	assert.Contains(t, errs, "scholarship_pct")
}

func TestCalculate_MalformedBody(t *testing.T) {
	status, _ := post(t, `not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCalculate_HugeFeesAreRejected(t *testing.T) {
	status, body := post(t, `{"new_credit": 12, "per_credit_fee": 1e308, "trimester_fee": 1e308}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "per_credit_fee")
	assert.Contains(t, errs, "trimester_fee")
}
