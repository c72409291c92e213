package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/example/id-verify/internal/auth"
	"github.com/example/id-verify/internal/faceengine"
	"github.com/example/id-verify/internal/usecase"
)

const testJWTSecret = "test-secret"

type stubEngine struct {
	faceCount    int
	detectErr    error
	embedVectors [][]float64
	embedErr     error
	embedCalls   int
	threshold    float64
}

func (s *stubEngine) Detect(ctx context.Context, image []byte, detector string) (int, error) {
	if s.detectErr != nil {
		return 0, s.detectErr
	}
	return s.faceCount, nil
}

func (s *stubEngine) Embed(ctx context.Context, image []byte, model, detector string) (*faceengine.Embedding, error) {
	call := s.embedCalls
	s.embedCalls++
	if s.embedErr != nil {
		return nil, s.embedErr
	}
	vector := []float64{1, 0, 0}
	if call < len(s.embedVectors) {
		vector = s.embedVectors[call]
	}
	return &faceengine.Embedding{Vector: vector, Model: model, Detector: detector}, nil
}

func (s *stubEngine) ThresholdFor(ctx context.Context, model, metric string) (float64, error) {
	return s.threshold, nil
}

type noopNormalizer struct{}

func (noopNormalizer) Normalize(path string) error { return nil }

func newTestRouter(t *testing.T, engine faceengine.Client, authMiddleware gin.HandlerFunc) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	workDir := t.TempDir()
	uc := usecase.NewVerificationUseCase(engine, noopNormalizer{}, nil, nil, usecase.Options{
		ModelName:         "ArcFace",
		DetectorBackend:   "retinaface",
		DistanceMetric:    usecase.MetricCosine,
		ThresholdFallback: 0.40,
		GatePolicy:        usecase.GateExactlyOne,
		WorkDir:           workDir,
		PipelineTimeout:   5 * time.Second,
	}, zap.NewNop())

	router := gin.New()
	router.MaxMultipartMemory = MaxUploadSize
	RegisterRoutes(router, uc, zap.NewNop(), authMiddleware)
	return router, workDir
}

func buildVerifyBody(t *testing.T, filenames map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, field := range []string{usecase.FieldIDCardFront, usecase.FieldIDCardBack, usecase.FieldSelfie} {
		filename, ok := filenames[field]
		if !ok {
			continue
		}
		part, err := writer.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes for " + field)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func doVerify(t *testing.T, router *gin.Engine, filenames map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	body, contentType := buildVerifyBody(t, filenames)
	req := httptest.NewRequest(http.MethodPost, "/verify", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	payload := map[string]interface{}{}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v (body %q)", err, resp.Body.String())
	}
	return resp, payload
}

func allFields() map[string]string {
	return map[string]string{
		usecase.FieldIDCardFront: "front.jpg",
		usecase.FieldIDCardBack:  "back.jpg",
		usecase.FieldSelfie:      "selfie.png",
	}
}

func assertWorkDirEmpty(t *testing.T, workDir string) {
	t.Helper()
	entries, err := os.ReadDir(workDir)
	if err != nil {
		t.Fatalf("read work dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no residual temporary files, found %d", len(entries))
	}
}

func TestVerifySuccessPayload(t *testing.T) {
	engine := &stubEngine{
		faceCount:    1,
		embedVectors: [][]float64{{1, 0, 0}, {1, 0, 0}},
		threshold:    0.40,
	}
	router, workDir := newTestRouter(t, engine, nil)

	resp, payload := doVerify(t, router, allFields())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body %s", resp.Code, resp.Body.String())
	}
	if payload["status"] != "success" || payload["verified"] != true {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload["model"] != "ArcFace" || payload["detector"] != "retinaface" {
		t.Fatalf("payload missing model tags: %v", payload)
	}
	if _, ok := payload["distance"].(float64); !ok {
		t.Fatalf("payload missing distance: %v", payload)
	}
	assertWorkDirEmpty(t, workDir)
}

func TestVerifyMismatchPayload(t *testing.T) {
	engine := &stubEngine{
		faceCount:    1,
		embedVectors: [][]float64{{1, 0, 0}, {0, 1, 0}},
		threshold:    0.40,
	}
	router, _ := newTestRouter(t, engine, nil)

	resp, payload := doVerify(t, router, allFields())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for mismatch, got %d", resp.Code)
	}
	if payload["status"] != "error" || payload["code"] != usecase.CodeFaceMismatch {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload["verified"] != false {
		t.Fatalf("mismatch must report verified=false: %v", payload)
	}
	distance, ok := payload["distance"].(float64)
	if !ok || distance < 0.99 {
		t.Fatalf("mismatch must echo the computed distance: %v", payload)
	}
	if threshold, ok := payload["threshold"].(float64); !ok || threshold != 0.40 {
		t.Fatalf("mismatch must echo the threshold: %v", payload)
	}
}

func TestVerifyRejectsBadExtension(t *testing.T) {
	engine := &stubEngine{faceCount: 1}
	router, workDir := newTestRouter(t, engine, nil)

	fields := allFields()
	fields[usecase.FieldSelfie] = "selfie.bmp"
	resp, payload := doVerify(t, router, fields)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if payload["code"] != usecase.CodeInvalidFileType {
		t.Fatalf("expected %s, got %v", usecase.CodeInvalidFileType, payload["code"])
	}
	if payload["field"] != usecase.FieldSelfie {
		t.Fatalf("expected field %s, got %v", usecase.FieldSelfie, payload["field"])
	}
	assertWorkDirEmpty(t, workDir)
}

func TestVerifyRejectsMissingPart(t *testing.T) {
	router, _ := newTestRouter(t, &stubEngine{faceCount: 1}, nil)

	fields := allFields()
	delete(fields, usecase.FieldIDCardBack)
	resp, payload := doVerify(t, router, fields)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if payload["code"] != usecase.CodeMissingFile {
		t.Fatalf("expected %s, got %v", usecase.CodeMissingFile, payload["code"])
	}
	if payload["field"] != usecase.FieldIDCardBack {
		t.Fatalf("expected missing field to be named, got %v", payload)
	}
}

func TestVerifyNoFaceReferencesFrontField(t *testing.T) {
	engine := &stubEngine{faceCount: 0}
	router, _ := newTestRouter(t, engine, nil)

	resp, payload := doVerify(t, router, allFields())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if payload["code"] != usecase.CodeNoFaceDetected {
		t.Fatalf("expected %s, got %v", usecase.CodeNoFaceDetected, payload["code"])
	}
	if payload["field"] != usecase.FieldIDCardFront {
		t.Fatalf("expected front field blamed, got %v", payload)
	}
	if engine.embedCalls != 0 {
		t.Fatalf("no embedding may run after gate failure, got %d calls", engine.embedCalls)
	}
}

func TestVerifyInternalFaultReturns500AndCleansUp(t *testing.T) {
	engine := &stubEngine{faceCount: 1, embedErr: errors.New("inference crashed")}
	router, workDir := newTestRouter(t, engine, nil)

	resp, payload := doVerify(t, router, allFields())
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if payload["code"] != usecase.CodeVerificationError {
		t.Fatalf("expected %s, got %v", usecase.CodeVerificationError, payload["code"])
	}
	assertWorkDirEmpty(t, workDir)
}

func TestRootLivenessEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubEngine{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	payload := map[string]interface{}{}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("liveness response is not JSON: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestVerifyRequiresTokenWhenAuthConfigured(t *testing.T) {
	router, _ := newTestRouter(t, &stubEngine{faceCount: 1}, auth.JWTMiddleware(testJWTSecret, ""))

	body, contentType := buildVerifyBody(t, allFields())
	req := httptest.NewRequest(http.MethodPost, "/verify", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestVerifyAcceptsValidToken(t *testing.T) {
	engine := &stubEngine{
		faceCount:    1,
		embedVectors: [][]float64{{1, 0, 0}, {1, 0, 0}},
		threshold:    0.40,
	}
	router, _ := newTestRouter(t, engine, auth.JWTMiddleware(testJWTSecret, ""))

	body, contentType := buildVerifyBody(t, allFields())
	req := httptest.NewRequest(http.MethodPost, "/verify", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+buildTestToken(t, "client-1"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d body %s", resp.Code, resp.Body.String())
	}
}

func buildTestToken(t *testing.T, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}
