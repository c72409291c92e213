package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/id-verify/internal/faceengine"
	"github.com/example/id-verify/internal/logging"
	"github.com/example/id-verify/internal/repository"
)

// Multipart field names of the external contract. The document back is
// accepted and stored for contract stability but is not consumed by the
// matching logic.
const (
	FieldIDCardFront = "idCardFront"
	FieldIDCardBack  = "idCardBack"
	FieldSelfie      = "selfie"
)

// State names the position of a request inside the pipeline. Transitions are
// strictly sequential; a failure terminates the machine in StateRejected
// (validation) or StateFailed (any later stage).
type State string

const (
	StateReceived    State = "RECEIVED"
	StateValidated   State = "VALIDATED"
	StatePersisted   State = "PERSISTED"
	StateNormalized  State = "NORMALIZED"
	StateFrontGated  State = "FRONT_GATED"
	StateSelfieGated State = "SELFIE_GATED"
	StateCompared    State = "COMPARED"
	StateResponded   State = "RESPONDED"
	StateRejected    State = "REJECTED"
	StateFailed      State = "FAILED"
)

// Upload is one client-supplied file part. Open is called at most once, and
// only after every upload in the request has passed extension validation.
type Upload struct {
	Field    string
	Filename string
	Open     func() (io.ReadCloser, error)
}

// VerificationRequest is the three-image input tuple.
type VerificationRequest struct {
	Front  Upload
	Back   Upload
	Selfie Upload
}

// StageTimings records per-stage latency in milliseconds.
type StageTimings struct {
	NormalizeMs int64 `json:"normalize_ms"`
	GateMs      int64 `json:"gate_ms"`
	EmbedMs     int64 `json:"embed_ms"`
	TotalMs     int64 `json:"total_ms"`
}

// VerificationOutcome is the terminal artifact of one request. Verified is
// true iff Distance <= Threshold.
type VerificationOutcome struct {
	RequestID string
	Verified  bool
	Distance  float64
	Threshold float64
	Model     string
	Detector  string
	Timings   StageTimings
}

// Options are the process-wide pipeline settings.
type Options struct {
	ModelName         string
	DetectorBackend   string
	DistanceMetric    string
	ThresholdFallback float64
	GatePolicy        GatePolicy
	WorkDir           string
	PipelineTimeout   time.Duration
}

// Normalizer bounds an on-disk image in place.
type Normalizer interface {
	Normalize(path string) error
}

// VerificationRepository defines the persistence operations needed by the
// use case.
type VerificationRepository interface {
	SaveLog(ctx context.Context, log *repository.VerificationLog) error
	FindByRequestID(ctx context.Context, requestID string) (*repository.VerificationLog, error)
	FindDuplicatesBySelfieHash(ctx context.Context, hash, excludeRequestID string) ([]*repository.VerificationLog, error)
	AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error)
}

// VerificationUseCase sequences intake, normalization, gating, embedding and
// comparison for one request at a time. It holds no per-request state and is
// safe for concurrent use.
type VerificationUseCase struct {
	engine     faceengine.Client
	normalizer Normalizer
	repo       VerificationRepository
	cache      Cache
	logger     *zap.Logger
	opts       Options
}

// DuplicateReport lists past verifications that used the same selfie.
type DuplicateReport struct {
	Request    *repository.VerificationLog
	Duplicates []*repository.VerificationLog
}

type cachedOutcome struct {
	RequestID           string    `json:"request_id"`
	Verified            bool      `json:"verified"`
	Distance            float64   `json:"distance"`
	Threshold           float64   `json:"threshold"`
	Model               string    `json:"model"`
	Detector            string    `json:"detector"`
	SelfieSHA1          string    `json:"selfie_sha1"`
	ProcessingLatencyMs int64     `json:"processing_latency_ms"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewVerificationUseCase constructs the orchestrator. repo and cache may be
// nil; the decision pipeline never depends on either.
func NewVerificationUseCase(
	engine faceengine.Client,
	normalizer Normalizer,
	repo VerificationRepository,
	cache Cache,
	opts Options,
	logger *zap.Logger,
) *VerificationUseCase {
	return &VerificationUseCase{
		engine:     engine,
		normalizer: normalizer,
		repo:       repo,
		cache:      cache,
		logger:     logger.Named("verification_usecase"),
		opts:       opts,
	}
}

// Verify runs the full pipeline for one request. A mismatch is a determinate
// outcome (Verified=false), not an error; errors carry the taxonomy code and
// the upload field at fault. Temporary storage is released on every path.
func (uc *VerificationUseCase) Verify(ctx context.Context, req *VerificationRequest) (outcome *VerificationOutcome, err error) {
	started := time.Now()
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.verify", requestID)

	if uc.opts.PipelineTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.opts.PipelineTimeout)
		defer cancel()
	}

	state := StateReceived
	defer func() {
		if err != nil {
			opLogger.Info("pipeline terminated",
				zap.String("state", string(state)),
				zap.Duration("elapsed", time.Since(started)),
				zap.Error(err))
		}
	}()

	// Validation is the first gate: no byte is persisted and no model is
	// invoked until every upload has an allowed extension.
	uploads := []*Upload{&req.Front, &req.Back, &req.Selfie}
	for _, up := range uploads {
		if _, extErr := allowedExtension(up.Filename); extErr != nil {
			state = StateRejected
			return nil, newPipelineError(CodeInvalidFileType, up.Field, extErr.Error(), extErr)
		}
	}
	state = StateValidated

	tempDir, dirErr := os.MkdirTemp(uc.opts.WorkDir, "idverify-")
	if dirErr != nil {
		state = StateFailed
		return nil, newPipelineError(CodeFileSaveError, "", "could not allocate temporary storage", dirErr)
	}
	defer func() {
		if rmErr := os.RemoveAll(tempDir); rmErr != nil {
			opLogger.Warn("failed to release temporary storage", zap.String("dir", tempDir), zap.Error(rmErr))
		}
	}()

	var paths [3]string
	for i, up := range uploads {
		path, saveErr := persistUpload(tempDir, up)
		if saveErr != nil {
			state = StateFailed
			return nil, newPipelineError(CodeFileSaveError, up.Field, "could not store upload", saveErr)
		}
		paths[i] = path
	}
	frontPath, selfiePath := paths[0], paths[2]
	state = StatePersisted

	// The document back is stored for contract symmetry only; it takes no
	// further part in the pipeline.
	tNormalize := time.Now()
	if normErr := uc.normalizer.Normalize(frontPath); normErr != nil {
		state = StateFailed
		return nil, newPipelineError(CodeImageProcessing, req.Front.Field, "could not decode or resize image", normErr)
	}
	if normErr := uc.normalizer.Normalize(selfiePath); normErr != nil {
		state = StateFailed
		return nil, newPipelineError(CodeImageProcessing, req.Selfie.Field, "could not decode or resize image", normErr)
	}
	normalizeMs := time.Since(tNormalize).Milliseconds()
	state = StateNormalized

	frontImage, readErr := os.ReadFile(frontPath)
	if readErr != nil {
		state = StateFailed
		return nil, newPipelineError(CodeVerificationError, req.Front.Field, "could not read normalized image", readErr)
	}
	selfieImage, readErr := os.ReadFile(selfiePath)
	if readErr != nil {
		state = StateFailed
		return nil, newPipelineError(CodeVerificationError, req.Selfie.Field, "could not read normalized image", readErr)
	}

	// Gates run before the costlier embedding calls, front first so that
	// front errors take precedence when both images would fail.
	tGate := time.Now()
	if !uc.passesGate(ctx, opLogger, req.Front.Field, frontImage) {
		state = StateFailed
		if timeoutErr := uc.timedOut(ctx); timeoutErr != nil {
			return nil, timeoutErr
		}
		return nil, newPipelineError(CodeNoFaceDetected, req.Front.Field, "no usable face found in the document photo", nil)
	}
	state = StateFrontGated
	if !uc.passesGate(ctx, opLogger, req.Selfie.Field, selfieImage) {
		state = StateFailed
		if timeoutErr := uc.timedOut(ctx); timeoutErr != nil {
			return nil, timeoutErr
		}
		return nil, newPipelineError(CodeNoFaceDetected, req.Selfie.Field, "no usable face found in the selfie", nil)
	}
	gateMs := time.Since(tGate).Milliseconds()
	state = StateSelfieGated

	tEmbed := time.Now()
	frontEmbedding, embErr := uc.engine.Embed(ctx, frontImage, uc.opts.ModelName, uc.opts.DetectorBackend)
	if embErr != nil {
		state = StateFailed
		return nil, newPipelineError(CodeVerificationError, req.Front.Field, "embedding extraction failed", embErr)
	}
	selfieEmbedding, embErr := uc.engine.Embed(ctx, selfieImage, uc.opts.ModelName, uc.opts.DetectorBackend)
	if embErr != nil {
		state = StateFailed
		return nil, newPipelineError(CodeVerificationError, req.Selfie.Field, "embedding extraction failed", embErr)
	}
	embedMs := time.Since(tEmbed).Milliseconds()

	threshold := uc.resolveThreshold(ctx, opLogger)
	distance, distErr := Distance(uc.opts.DistanceMetric, frontEmbedding, selfieEmbedding)
	if distErr != nil {
		state = StateFailed
		return nil, newPipelineError(CodeVerificationError, "", "distance computation failed", distErr)
	}
	state = StateCompared

	outcome = &VerificationOutcome{
		RequestID: requestID,
		Verified:  distance <= threshold,
		Distance:  distance,
		Threshold: threshold,
		Model:     uc.opts.ModelName,
		Detector:  uc.opts.DetectorBackend,
		Timings: StageTimings{
			NormalizeMs: normalizeMs,
			GateMs:      gateMs,
			EmbedMs:     embedMs,
			TotalMs:     time.Since(started).Milliseconds(),
		},
	}

	uc.recordOutcome(ctx, opLogger, outcome, selfieImage)
	state = StateResponded

	opLogger.Info("verification completed",
		zap.Bool("verified", outcome.Verified),
		zap.Float64("distance", outcome.Distance),
		zap.Float64("threshold", outcome.Threshold),
		zap.Int64("total_ms", outcome.Timings.TotalMs))
	return outcome, nil
}

// GetResult retrieves a completed verification by request ID, preferring the
// cache and falling back to the audit repository.
func (uc *VerificationUseCase) GetResult(ctx context.Context, requestID string) (*repository.VerificationLog, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, cacheKey(requestID))
		if err == nil {
			var payload cachedOutcome
			if jsonErr := json.Unmarshal([]byte(cached), &payload); jsonErr != nil {
				logging.WithOperation(uc.logger, "usecase.get_result", requestID).
					Warn("failed to decode cached result", zap.Error(jsonErr))
			} else {
				return &repository.VerificationLog{
					RequestID:           payload.RequestID,
					Verified:            payload.Verified,
					Distance:            payload.Distance,
					Threshold:           payload.Threshold,
					Model:               payload.Model,
					Detector:            payload.Detector,
					SelfieSHA1:          payload.SelfieSHA1,
					ProcessingLatencyMs: payload.ProcessingLatencyMs,
					CreatedAt:           payload.CreatedAt,
				}, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logging.WithOperation(uc.logger, "usecase.get_result", requestID).
				Warn("failed to read cache", zap.Error(err))
		}
	}

	if uc.repo == nil {
		return nil, fmt.Errorf("result %s not found", requestID)
	}
	return uc.repo.FindByRequestID(ctx, requestID)
}

// GetDuplicateReport lists past verifications that submitted the same
// selfie image.
func (uc *VerificationUseCase) GetDuplicateReport(ctx context.Context, requestID string) (*DuplicateReport, error) {
	if uc.repo == nil {
		return nil, fmt.Errorf("duplicate lookup unavailable: no repository configured")
	}
	log, err := uc.repo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	duplicates, err := uc.repo.FindDuplicatesBySelfieHash(ctx, log.SelfieSHA1, log.RequestID)
	if err != nil {
		return nil, err
	}
	return &DuplicateReport{Request: log, Duplicates: duplicates}, nil
}

// resolveThreshold asks the face-analysis service for the calibrated
// threshold. Lookup failure degrades to the configured fallback and never
// aborts the request.
func (uc *VerificationUseCase) resolveThreshold(ctx context.Context, opLogger *zap.Logger) float64 {
	threshold, err := uc.engine.ThresholdFor(ctx, uc.opts.ModelName, uc.opts.DistanceMetric)
	if err != nil || threshold <= 0 {
		opLogger.Warn("threshold lookup failed, using configured fallback",
			zap.Float64("fallback", uc.opts.ThresholdFallback),
			zap.Error(err))
		return uc.opts.ThresholdFallback
	}
	return threshold
}

// recordOutcome writes the audit log entry and result cache. Neither write
// may fail the request: the decision was already made.
func (uc *VerificationUseCase) recordOutcome(ctx context.Context, opLogger *zap.Logger, outcome *VerificationOutcome, selfie []byte) {
	hash := sha1.Sum(selfie)
	hashHex := hex.EncodeToString(hash[:])

	if uc.repo != nil {
		entry := &repository.VerificationLog{
			RequestID:           outcome.RequestID,
			Verified:            outcome.Verified,
			Distance:            outcome.Distance,
			Threshold:           outcome.Threshold,
			Model:               outcome.Model,
			Detector:            outcome.Detector,
			SelfieSHA1:          hashHex,
			ProcessingLatencyMs: outcome.Timings.TotalMs,
			CreatedAt:           time.Now().UTC(),
		}
		if err := uc.repo.SaveLog(ctx, entry); err != nil {
			opLogger.Warn("failed to persist verification log", zap.Error(err))
		}
	}

	if uc.cache != nil {
		serialized, err := json.Marshal(cachedOutcome{
			RequestID:           outcome.RequestID,
			Verified:            outcome.Verified,
			Distance:            outcome.Distance,
			Threshold:           outcome.Threshold,
			Model:               outcome.Model,
			Detector:            outcome.Detector,
			SelfieSHA1:          hashHex,
			ProcessingLatencyMs: outcome.Timings.TotalMs,
			CreatedAt:           time.Now().UTC(),
		})
		if err != nil {
			opLogger.Warn("failed to serialize verification result", zap.Error(err))
			return
		}
		if err := uc.cache.Set(ctx, cacheKey(outcome.RequestID), string(serialized), 5*time.Minute); err != nil {
			opLogger.Warn("failed to cache verification result", zap.Error(err))
		}
	}
}

func (uc *VerificationUseCase) timedOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return newPipelineError(CodeVerificationError, "", "verification pipeline timed out", err)
	}
	return nil
}

func cacheKey(requestID string) string {
	return fmt.Sprintf("verification:%s", requestID)
}

// allowedExtension returns the lower-cased extension of filename if it is on
// the allow-list.
func allowedExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return ext, nil
	default:
		return "", fmt.Errorf("file extension %q is not allowed (expected .jpg, .jpeg or .png)", ext)
	}
}

// persistUpload copies one upload into dir under a generated name. Client
// filenames are never trusted on disk.
func persistUpload(dir string, up *Upload) (string, error) {
	ext, err := allowedExtension(up.Filename)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), up.Field, ext)
	path := filepath.Join(dir, name)

	src, err := up.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", up.Field, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
