package questions

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/quizsmith/backend/internal/genai"
	"github.com/quizsmith/backend/internal/models"
)

const sessionName = "quizsmith_session"

type Handler struct {
	store   *Store
	genai   *genai.Service
	cookies *sessions.CookieStore
}

func NewHandler(store *Store, svc *genai.Service, cookies *sessions.CookieStore) *Handler {
	return &Handler{store: store, genai: svc, cookies: cookies}
}

// sessionID returns the caller's session identity, minting one on first
// contact.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	sess, _ := h.cookies.Get(r, sessionName)
	sid, ok := sess.Values["sid"].(string)
	if !ok || sid == "" {
		sid = uuid.NewString()
		sess.Values["sid"] = sid
		if err := sess.Save(r, w); err != nil {
			log.Printf("[questions] save session: %v", err)
		}
	}
	return sid
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Subject == "" {
		req.Subject = models.SubjectScience
	}
	if !models.ValidSubjects[req.Subject] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid subject"})
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyEasy
	}
	if !models.ValidDifficulties[req.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be EASY, MEDIUM, HARD, or EXPERT"})
		return
	}
	if req.Class == "" {
		req.Class = "10"
	}
	req.QuestionType = models.QuestionTypeSingleChoice

	// Clamp to the range the UI offers; the normalizer never truncates what
	// the service actually returns.
	if req.Count < 1 {
		req.Count = 1
	}
	if req.Count > models.MaxGenerationCount {
		req.Count = models.MaxGenerationCount
	}

	records, report, err := h.genai.GenerateQuestions(r.Context(), req)
	if err != nil {
		kind := genai.KindOf(err)
		writeJSON(w, statusForKind(kind), models.ErrorResponse{Error: err.Error(), Kind: string(kind)})
		return
	}

	sid := h.sessionID(w, r)
	stored := h.store.Append(sid, records...)

	writeJSON(w, http.StatusOK, models.GenerateQuestionsResponse{
		Questions: stored,
		Total:     len(stored),
		Dropped:   report.Dropped,
	})
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question text is required"})
		return
	}
	if len(req.Options) != models.OptionCount {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "exactly 4 options are required"})
		return
	}
	for _, opt := range req.Options {
		if opt == "" {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "options must not be empty"})
			return
		}
	}
	if req.Subject == "" {
		req.Subject = models.SubjectScience
	}
	if !models.ValidSubjects[req.Subject] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid subject"})
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyEasy
	}
	if !models.ValidDifficulties[req.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be EASY, MEDIUM, HARD, or EXPERT"})
		return
	}
	if req.ClassName == "" {
		req.ClassName = "10"
	}

	sid := h.sessionID(w, r)
	stored := h.store.Append(sid, models.QuestionRecord{
		Subject:     string(req.Subject),
		Difficulty:  string(req.Difficulty),
		ClassName:   req.ClassName,
		Question:    req.Question,
		Options:     req.Options,
		Explanation: req.Explanation,
		Topic:       req.Topic,
		IsGenerated: false,
	})

	writeJSON(w, http.StatusCreated, stored[0])
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sid := h.sessionID(w, r)
	list := h.store.List(sid)
	writeJSON(w, http.StatusOK, models.QuestionListResponse{
		Questions: list,
		Total:     len(list),
	})
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	sid := h.sessionID(w, r)
	id := mux.Vars(r)["id"]
	if !h.store.Remove(sid, id) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	sid := h.sessionID(w, r)
	h.store.Clear(sid)
	w.WriteHeader(http.StatusNoContent)
}

// AIStatus reports the coarse online/offline read the UI polls for its
// status badge.
func (h *Handler) AIStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.genai.Status(r.Context()))
}

// statusForKind maps the classified error taxonomy to HTTP statuses. The
// kind travels in the payload so the UI can phrase each case itself.
func statusForKind(kind genai.ErrorKind) int {
	switch kind {
	case genai.KindValidation:
		return http.StatusBadRequest
	case genai.KindTimeout:
		return http.StatusGatewayTimeout
	case genai.KindNetworkUnreachable, genai.KindServiceError,
		genai.KindMalformedResponse, genai.KindNoUsableQuestions:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
