package usecase

import (
	"context"

	"go.uber.org/zap"
)

// GatePolicy is the face-presence rule applied before the embedding stage.
// One policy is chosen per deployment and applied to both the document front
// and the selfie; it never varies per image.
type GatePolicy string

const (
	// GateExactlyOne rejects images with zero or multiple faces. Multiple
	// faces on a document front usually mean a group photo or a forgery.
	GateExactlyOne GatePolicy = "exactly_one"

	// GateAtLeastOne only requires that some face is present.
	GateAtLeastOne GatePolicy = "at_least_one"
)

// Permits reports whether a detected face count satisfies the policy.
func (p GatePolicy) Permits(count int) bool {
	switch p {
	case GateAtLeastOne:
		return count >= 1
	default:
		return count == 1
	}
}

// passesGate runs the detector on an already-normalized image and applies
// the configured policy. A fault inside the detector is logged and treated
// as "no usable face", never escalated past this boundary.
func (uc *VerificationUseCase) passesGate(ctx context.Context, opLogger *zap.Logger, field string, image []byte) bool {
	count, err := uc.engine.Detect(ctx, image, uc.opts.DetectorBackend)
	if err != nil {
		opLogger.Warn("face detection failed, treating as no face",
			zap.String("field", field), zap.Error(err))
		return false
	}
	if !uc.opts.GatePolicy.Permits(count) {
		opLogger.Info("face gate rejected image",
			zap.String("field", field),
			zap.Int("face_count", count),
			zap.String("policy", string(uc.opts.GatePolicy)))
		return false
	}
	return true
}
