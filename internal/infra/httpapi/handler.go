package httpapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Abhinandan-srcs/youtube-clone/internal/domain/entity"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// JobRunner runs the pipeline for one file key.
type JobRunner interface {
	Execute(ctx context.Context, fileKey string) error
}

// Handler exposes the trigger endpoint. The event transport delivers a push
// envelope whose message data is base64-encoded JSON carrying the raw
// object's name; everything past decoding that name belongs to the pipeline.
type Handler struct {
	runner JobRunner
	logger *zap.Logger
}

func NewHandler(runner JobRunner, logger *zap.Logger) *Handler {
	return &Handler{runner: runner, logger: logger}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/process-video", h.processVideo).Methods(http.MethodPost)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return r
}

type pushEnvelope struct {
	Message struct {
		Data      string `json:"data"`
		MessageID string `json:"messageId"`
	} `json:"message"`
}

type eventPayload struct {
	Name string `json:"name"`
}

func (h *Handler) processVideo(w http.ResponseWriter, r *http.Request) {
	fileKey, err := decodeEnvelope(r)
	if err != nil {
		h.logger.Warn("invalid delivery envelope", zap.Error(err))
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.logger.Info("processing video", zap.String("file_key", fileKey))

	if err := h.runner.Execute(r.Context(), fileKey); err != nil {
		if errors.Is(err, entity.ErrInvalidRequest) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("video processing failed", zap.String("file_key", fileKey), zap.Error(err))
		http.Error(w, "Processing failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Processing finished successfully"))
}

func decodeEnvelope(r *http.Request) (string, error) {
	var envelope pushEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		return "", err
	}
	if envelope.Message.Data == "" {
		return "", errors.New("missing message data")
	}

	raw, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return "", err
	}

	var payload eventPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", err
	}
	if payload.Name == "" {
		return "", errors.New("missing filename in payload")
	}
	return payload.Name, nil
}
