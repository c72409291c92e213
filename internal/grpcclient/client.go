package grpcclient

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/id-verify/internal/faceengine"
	"github.com/example/id-verify/internal/logging"
	proto "github.com/example/id-verify/proto"
)

// DialFaceAnalysis returns a ready-to-use client for the face-analysis
// sidecar. The returned connection is shared across requests and must be
// closed by the caller on shutdown.
func DialFaceAnalysis(ctx context.Context, addr string, logger *zap.Logger) (faceengine.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_face_analysis", "", err)
		logger.Error("failed to dial face analysis service", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewFaceAnalysisClient(conn)
	return &grpcFaceAnalysis{client: client, logger: logger}, conn, nil
}

type grpcFaceAnalysis struct {
	client proto.FaceAnalysisClient
	logger *zap.Logger
}

func (g *grpcFaceAnalysis) Detect(ctx context.Context, image []byte, detector string) (int, error) {
	resp, err := g.client.DetectFaces(ctx, &proto.DetectRequest{Image: image, DetectorBackend: detector})
	if err != nil {
		return 0, logging.NewOperationError("grpcclient.detect_faces", "", err)
	}
	return int(resp.GetFaceCount()), nil
}

func (g *grpcFaceAnalysis) Embed(ctx context.Context, image []byte, model, detector string) (*faceengine.Embedding, error) {
	resp, err := g.client.ExtractEmbedding(ctx, &proto.EmbedRequest{
		Image:           image,
		ModelName:       model,
		DetectorBackend: detector,
	})
	if err != nil {
		return nil, logging.NewOperationError("grpcclient.extract_embedding", "", err)
	}
	if len(resp.GetEmbedding()) == 0 {
		return nil, logging.NewOperationError("grpcclient.extract_embedding", "",
			fmt.Errorf("empty embedding for model %s", model))
	}
	return &faceengine.Embedding{
		Vector:   resp.GetEmbedding(),
		Model:    resp.GetModelName(),
		Detector: resp.GetDetectorBackend(),
	}, nil
}

func (g *grpcFaceAnalysis) ThresholdFor(ctx context.Context, model, metric string) (float64, error) {
	resp, err := g.client.GetThreshold(ctx, &proto.ThresholdRequest{ModelName: model, DistanceMetric: metric})
	if err != nil {
		return 0, logging.NewOperationError("grpcclient.get_threshold", "", err)
	}
	return resp.GetThreshold(), nil
}
