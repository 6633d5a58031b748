package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellekaen/VanityOS-Api/data"
	"github.com/ellekaen/VanityOS-Api/models"
	"github.com/ellekaen/VanityOS-Api/services"
	"github.com/ellekaen/VanityOS-Api/utils"
)

const testKey = "test-key"

func init() { gin.SetMode(gin.TestMode) }

// labelClassifier decodes the image like a real model would, then answers with fixed labels.
type labelClassifier struct {
	preds []models.Prediction
}

func (l labelClassifier) Classify(_ context.Context, img []byte, topK int) ([]models.Prediction, error) {
	if _, err := utils.CheckImage(img); err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrInvalidImage, err)
	}
	if topK < len(l.preds) {
		return l.preds[:topK], nil
	}
	return l.preds, nil
}
func (labelClassifier) Name() string { return "fixed" }
func (labelClassifier) Ready() bool  { return true }

func newTestRouter(t *testing.T, cls services.Classifier) *gin.Engine {
	t.Helper()
	catalog, err := services.NewIngredientCatalog(data.Ingredients())
	require.NoError(t, err)
	verdicts, err := services.LoadVerdictMapper("", data.AcneFoods)
	require.NoError(t, err)

	food := services.NewFoodService(services.FoodDeps{
		Catalog:    catalog,
		Verdicts:   verdicts,
		Classifier: cls,
		TopK:       3,
	})
	return SetupRouter(food, Options{APIKey: testKey, MaxUploadBytes: 64 << 10, Version: "test"})
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func multipartBody(t *testing.T, field, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="photo"`, field))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func do(r *gin.Engine, req *http.Request, key string) *httptest.ResponseRecorder {
	if key != "" {
		req.Header.Set("x-api-key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func upload(t *testing.T, r *gin.Engine, path, field, contentType string, payload []byte, key string) *httptest.ResponseRecorder {
	t.Helper()
	body, ct := multipartBody(t, field, contentType, payload)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", ct)
	return do(r, req, key)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestPublicEndpoints(t *testing.T) {
	r := newTestRouter(t, labelClassifier{})

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["message"], "VanityOS")

	w = do(r, httptest.NewRequest(http.MethodGet, "/health", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["model_ready"])
}

func TestProtectedEndpointsRequireKey(t *testing.T) {
	r := newTestRouter(t, labelClassifier{preds: []models.Prediction{{Label: "pizza", Confidence: 1}}})

	for _, key := range []string{"", "wrong"} {
		w := do(r, httptest.NewRequest(http.MethodGet, "/analyze_food?food=Jojoba+Oil", nil), key)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = upload(t, r, "/analyze_food", "image", "image/png", pngBytes(t), key)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = upload(t, r, "/analyze_image", "file", "image/png", pngBytes(t), key)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = do(r, httptest.NewRequest(http.MethodPost, "/analyze_food", nil), key)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = do(r, httptest.NewRequest(http.MethodGet, "/scans", nil), key)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid API key"}`, w.Body.String())
	}
}

func TestAnalyzeFoodText(t *testing.T) {
	r := newTestRouter(t, labelClassifier{})

	w := do(r, httptest.NewRequest(http.MethodGet, "/analyze_food?food="+url.QueryEscape("Jojoba Oil"), nil), testKey)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Jojoba Oil", body["food"])
	assert.Equal(t, "0", body["comedogenic_grade"])
	assert.Equal(t, false, body["is_comedogenic"])
	assert.Contains(t, body["comedogenic_notes"], "Non-comedogenic")

	w = do(r, httptest.NewRequest(http.MethodGet, "/analyze_food?food="+url.QueryEscape("  coconut OIL "), nil), testKey)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "4", body["comedogenic_grade"])
	assert.EqualValues(t, 4, body["grade_max"])
	assert.Contains(t, body["comedogenic_notes"], "body use only")
}

func TestAnalyzeFoodTextNotFound(t *testing.T) {
	r := newTestRouter(t, labelClassifier{})

	w := do(r, httptest.NewRequest(http.MethodGet, "/analyze_food?food=nonexistent-oil-xyz", nil), testKey)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "nonexistent-oil-xyz", body["food"])
	assert.Nil(t, body["comedogenic_grade"])
	assert.Equal(t, "Ingredient not found in database", body["comedogenic_notes"])

	w = do(r, httptest.NewRequest(http.MethodGet, "/analyze_food?food=%20", nil), testKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeFoodImage(t *testing.T) {
	r := newTestRouter(t, labelClassifier{preds: []models.Prediction{
		{Label: "pumpkin_seeds", Confidence: 0.93},
		{Label: "walnuts", Confidence: 0.04},
	}})

	w := upload(t, r, "/analyze_food", "image", "image/png", pngBytes(t), testKey)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Pumpkin Seeds", body["food"])
	assert.EqualValues(t, 95, body["rating"])
	assert.Equal(t, "Anti-inflammatory", body["category"])
	assert.Equal(t, "pumpkin_seeds", body["detected_label"])
	assert.InDelta(t, 0.93, body["confidence"], 1e-9)
	assert.Equal(t, true, body["recognized"])
	assert.NotEmpty(t, body["reasons"])
	assert.NotEmpty(t, body["alternatives"])
	assert.NotEmpty(t, body["scan_id"])
}

func TestAnalyzeFoodImageUnrecognized(t *testing.T) {
	r := newTestRouter(t, labelClassifier{preds: []models.Prediction{{Label: "tennis_ball", Confidence: 0.8}}})

	w := upload(t, r, "/analyze_food", "file", "application/octet-stream", pngBytes(t), testKey)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, false, body["recognized"])
	assert.Equal(t, "Unrecognized food", body["food"])
	assert.Equal(t, "tennis_ball", body["detected_label"])
}

func TestAnalyzeFoodImageBadInput(t *testing.T) {
	r := newTestRouter(t, labelClassifier{})

	w := upload(t, r, "/analyze_food", "image", "text/plain", []byte("hello"), testKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "Invalid file type")

	w = upload(t, r, "/analyze_food", "image", "image/jpeg", []byte("not really a jpeg"), testKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or unreadable image file", decode(t, w)["error"])

	w = upload(t, r, "/analyze_food", "photo", "image/png", pngBytes(t), testKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = upload(t, r, "/analyze_food", "image", "image/png", bytes.Repeat([]byte{1}, 100<<10), testKey)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestAnalyzeFoodImageModelUnavailable(t *testing.T) {
	r := newTestRouter(t, services.UnavailableClassifier{Reason: fmt.Errorf("model file not found")})

	w := upload(t, r, "/analyze_food", "image", "image/png", pngBytes(t), testKey)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/health", nil), "")
	assert.Equal(t, false, decode(t, w)["model_ready"])
}

func TestAnalyzeImage(t *testing.T) {
	r := newTestRouter(t, labelClassifier{preds: []models.Prediction{{Label: "Pizza", Confidence: 0.77}}})

	w := upload(t, r, "/analyze_image", "file", "image/png", pngBytes(t), testKey)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "pizza", body["food_detected"])
	assert.InDelta(t, 0.77, body["confidence"], 1e-9)

	r = newTestRouter(t, labelClassifier{preds: []models.Prediction{{Label: "laptop", Confidence: 0.9}}})
	w = upload(t, r, "/analyze_image", "file", "image/png", pngBytes(t), testKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "detected: laptop")
}

func TestScansWithoutDatabase(t *testing.T) {
	r := newTestRouter(t, labelClassifier{})

	w := do(r, httptest.NewRequest(http.MethodGet, "/scans", nil), testKey)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/scans?limit=-3", nil), testKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
