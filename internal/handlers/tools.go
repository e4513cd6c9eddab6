package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"studybuddy-backend/internal/models"
	"studybuddy-backend/internal/planner"
	"studybuddy-backend/internal/services"
)

const maxUploadBytes = 25 << 20 // 25 MB

type ToolsHandler struct {
	generator   *services.Generator
	fileExtract *services.FileExtractService
	storagePath string
}

func NewToolsHandler(generator *services.Generator, fileExtract *services.FileExtractService, storagePath string) *ToolsHandler {
	return &ToolsHandler{
		generator:   generator,
		fileExtract: fileExtract,
		storagePath: storagePath,
	}
}

// ScheduleGenerator builds a weekly study schedule. The response shape is the
// same whether the provider answered or the deterministic builder did; only
// meta.strategy tells them apart.
func (h *ToolsHandler) ScheduleGenerator(w http.ResponseWriter, r *http.Request) {
	var req models.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid input", r))
		return
	}
	if len(req.Courses) == 0 || req.AvailableHours == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid input", r))
		return
	}

	raw := h.generator.GenerateSchedule(r.Context(), req)
	writeJSON(w, http.StatusOK, raw)
}

// QuizGenerator produces exactly question_count repaired multiple-choice
// questions, from the provider when possible and the synthesizer otherwise.
func (h *ToolsHandler) QuizGenerator(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid input", r))
		return
	}
	if req.QuestionCount <= 0 || req.QuestionTypes == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid input", r))
		return
	}

	result, err := h.generator.GenerateQuiz(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrNoProvider) {
			writeJSON(w, http.StatusNotImplemented, errorResp("NOT_CONFIGURED", "GEMINI_API_KEY not set", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to generate quiz", r))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ExtractText accepts an uploaded pdf/txt/docx file and returns its plain
// text plus the derived subject/topic pair, ready to feed the quiz generator.
func (h *ToolsHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid multipart upload", r))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "file field is required", r))
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.storagePath, 0o755); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store upload", r))
		return
	}

	tmpPath := filepath.Join(h.storagePath, uuid.NewString()+filepath.Ext(header.Filename))
	dst, err := os.Create(tmpPath)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store upload", r))
		return
	}
	defer os.Remove(tmpPath)

	_, err = io.Copy(dst, file)
	dst.Close()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store upload", r))
		return
	}

	text, err := h.fileExtract.ExtractTextFromPath(tmpPath)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("EXTRACTION_FAILED", err.Error(), r))
		return
	}

	subject, topic := planner.DeriveSubjectTopic(text)
	writeJSON(w, http.StatusOK, map[string]string{
		"extracted_text": text,
		"subject":        subject,
		"topic":          topic,
	})
}
