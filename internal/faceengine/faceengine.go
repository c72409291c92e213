package faceengine

import "context"

// Embedding is a fixed-length vector describing one detected face, tagged
// with the model configuration that produced it. Two embeddings are only
// comparable when model and detector match.
type Embedding struct {
	Vector   []float64
	Model    string
	Detector string
}

// Client exposes the narrow subset of the face-analysis service used by the
// verification flow. Implementations must be safe for concurrent use.
type Client interface {
	// Detect returns the number of faces found in the image. A failure
	// inside the underlying model is returned as an error; callers decide
	// whether that degrades to "no face found".
	Detect(ctx context.Context, image []byte, detector string) (int, error)

	// Embed returns the embedding for the primary detected face.
	Embed(ctx context.Context, image []byte, model, detector string) (*Embedding, error)

	// ThresholdFor returns the calibrated distance threshold for the
	// (model, metric) pair.
	ThresholdFor(ctx context.Context, model, metric string) (float64, error)
}
