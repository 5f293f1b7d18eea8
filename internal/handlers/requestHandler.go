package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"docchat/internal/adapter"
	"docchat/internal/api"
	"docchat/internal/config"
	"docchat/internal/domain/docModel"
	"docchat/internal/rag"
	"docchat/internal/rag/embedding"
	"docchat/internal/rag/ingest"
	"docchat/internal/rag/llm"
	"docchat/pkg/logger_i"
)

var (
	serviceInstance rag.Service
	once            sync.Once
	logRH           *logger_i.Logger
)

// user-visible texts for the recoverable failure cases
const (
	msgNoDocuments   = "You haven't uploaded any documents yet. Upload a PDF first and then ask me about it!"
	msgUnsupported   = "I can only read PDF documents. Please upload a PDF file."
	msgEmbeddingDown = "The embedding service is unavailable right now. Please try again shortly."
	msgOracleFailed  = "The model is unavailable at the moment. Please try again shortly."
	msgEmptyDocument = "That document contained no readable text, so there was nothing to index."
)

func InitHandlers(service rag.Service) {
	once.Do(func() {
		serviceInstance = service
		logRH = logger_i.NewLogger("RequestHandler")
		logRH.Info("Starting request handlers")
	})
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ChatHandler godoc
// @Summary      Free-form chat
// @Description  Sends one user message through the persona conversation, without document retrieval, and returns the model's reply.
// @Tags         Messaging
// @Accept       json
// @Produce      json
// @Param        request  body      api.TextMessage  true  "User ID and message text"
// @Success      200      {object}  api.TextReply
// @Failure      400      {object}  api.ErrorReply   "Missing user ID or text"
// @Failure      502      {object}  api.TextReply    "Model endpoint unavailable"
// @Router       /chat [post]
func ChatHandler(w http.ResponseWriter, r *http.Request) {
	message, ok := decodeTextMessage(w, r)
	if !ok {
		return
	}

	reply, err := serviceInstance.Chat(r.Context(), message.UserID, message.Text)
	if err != nil {
		translateCoreError(w, message.UserID, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToTextReply(message.UserID, reply))
}

// AskHandler godoc
// @Summary      Ask a grounded question
// @Description  Retrieves the most relevant chunks from the user's uploaded documents, composes a grounded prompt, and returns the model's answer.
// @Tags         Messaging
// @Accept       json
// @Produce      json
// @Param        request  body      api.TextMessage  true  "User ID and question"
// @Success      200      {object}  api.TextReply
// @Failure      400      {object}  api.ErrorReply  "Missing user ID or text"
// @Failure      502      {object}  api.TextReply   "Model or embedding endpoint unavailable"
// @Router       /ask [post]
func AskHandler(w http.ResponseWriter, r *http.Request) {
	message, ok := decodeTextMessage(w, r)
	if !ok {
		return
	}

	answer, err := serviceInstance.Ask(r.Context(), message.UserID, message.Text)
	if err != nil {
		translateCoreError(w, message.UserID, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToTextReply(message.UserID, answer))
}

// IngestHandler godoc
// @Summary      Upload a document for ingestion
// @Description  Receives a PDF via multipart/form-data, chunks and indexes it into the user's session. Uploads accumulate; nothing is ever evicted.
// @Tags         Ingestion
// @Accept       multipart/form-data
// @Produce      json
// @Param        user_id   formData  string  true  "User identity"
// @Param        document  formData  file    true  "The PDF file to index"
// @Success      200  {object}  api.IngestReply
// @Failure      400  {object}  api.ErrorReply  "Missing fields or file too large"
// @Failure      415  {object}  api.TextReply   "Unsupported media type"
// @Router       /ingest [post]
func IngestHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.MaxUploadSizeBytes); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	userID := r.FormValue("user_id")
	if userID == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	payload, err := io.ReadAll(io.LimitReader(fileReader, config.MaxUploadSizeBytes))
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Read error")
		return
	}

	mediaType := declaredMediaType(fileMetadata.Header.Get("Content-Type"), fileMetadata.Filename)
	count, err := serviceInstance.IngestDocument(r.Context(), userID, fileMetadata.Filename, mediaType, payload)
	if err != nil {
		translateCoreError(w, userID, err)
		return
	}
	if count == 0 {
		writeJsonResponse(w, http.StatusOK, adapter.ToTextReply(userID, msgEmptyDocument))
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToIngestReply(userID, fileMetadata.Filename, count))
}

func decodeTextMessage(w http.ResponseWriter, r *http.Request) (api.TextMessage, bool) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", r.RemoteAddr)
		WriteErrorResponse(w, http.StatusRequestTimeout, "request context no longer valid")
		return api.TextMessage{}, false
	}

	var message api.TextMessage
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logRH.Error("Couldn't close the request body reader :", "error", err)
		}
	}(r.Body)

	if err := json.NewDecoder(r.Body).Decode(&message); err != nil || message.UserID == "" || message.Text == "" {
		logRH.Warn("Bad text message", "error:", err, "request data:", message)
		WriteErrorResponse(w, http.StatusBadRequest, "user_id and text are required")
		return api.TextMessage{}, false
	}
	return message, true
}

// declaredMediaType prefers the multipart header and falls back to the file
// extension, since some clients upload PDFs as application/octet-stream.
func declaredMediaType(header string, filename string) string {
	if header != "" && header != "application/octet-stream" {
		return header
	}
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return docModel.MediaTypePDF
	}
	return header
}

// translateCoreError maps the core taxonomy onto user-facing replies. None
// of these are fatal; the session stays usable.
func translateCoreError(w http.ResponseWriter, userID string, err error) {
	var embeddingErr *embedding.Error
	var oracleErr *llm.OracleError

	switch {
	case errors.Is(err, rag.ErrNoDocuments):
		writeJsonResponse(w, http.StatusOK, adapter.ToTextReply(userID, msgNoDocuments))
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		writeJsonResponse(w, http.StatusUnsupportedMediaType, adapter.ToTextReply(userID, msgUnsupported))
	case errors.As(err, &embeddingErr):
		writeJsonResponse(w, http.StatusBadGateway, adapter.ToTextReply(userID, msgEmbeddingDown))
	case errors.As(err, &oracleErr):
		writeJsonResponse(w, http.StatusBadGateway, adapter.ToTextReply(userID, msgOracleFailed))
	default:
		logRH.Error("Unexpected core error", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
