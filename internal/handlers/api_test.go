package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bportes89/projeto-kanban/internal/ai"
	"github.com/bportes89/projeto-kanban/internal/repo"
	"github.com/bportes89/projeto-kanban/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// Same strict decoding the real router runs with.
	gin.EnableJsonDecoderDisallowUnknownFields()

	store := repo.NewMemStore()
	boardSvc := service.NewBoardService(store.Stores(), store, nil)
	cardSvc := service.NewCardService(store.Stores(), store, nil)

	boardHandler := NewBoardHandler(boardSvc)
	cardHandler := NewCardHandler(cardSvc)
	analysisHandler := NewAnalysisHandler(ai.NewOfflineAnalyzer())

	r := gin.New()
	api := r.Group("/api")
	api.GET("/boards", boardHandler.List)
	api.POST("/boards", boardHandler.Create)
	api.GET("/boards/:id", boardHandler.Detail)
	api.POST("/boards/:id/columns", boardHandler.CreateColumn)
	api.PUT("/columns/:id", boardHandler.UpdateColumn)
	api.POST("/cards", cardHandler.Create)
	api.GET("/cards/:id", cardHandler.Get)
	api.PUT("/cards/:id", cardHandler.Update)
	api.POST("/cards/:id/messages", cardHandler.AppendMessage)
	api.POST("/cards/:id/checklist", cardHandler.AddChecklistItem)
	api.PUT("/checklist/:id", cardHandler.MutateChecklistItem)
	api.DELETE("/checklist/:id", cardHandler.DeleteChecklistItem)
	api.POST("/ai/analyze", analysisHandler.Analyze)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestBoardLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/boards", map[string]any{
		"title":       "Mentoring Q1",
		"description": "first quarter cohort",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	board := decode(t, w)
	boardID := int64(board["id"].(float64))
	columns := board["columns"].([]any)
	require.Len(t, columns, 3)
	first := columns[0].(map[string]any)
	assert.Equal(t, "To Do", first["title"])
	assert.Equal(t, float64(0), first["order"])
	assert.Equal(t, float64(boardID), first["boardId"])

	w = doJSON(t, r, http.MethodGet, "/api/boards", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)["items"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "Mentoring Q1", list[0].(map[string]any)["title"])

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/boards/%d", boardID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)
	assert.Len(t, detail["columns"].([]any), 3)

	// Fourth column defaults to order 3.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/boards/%d/columns", boardID), map[string]any{
		"title": "Backlog",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	col := decode(t, w)
	assert.Equal(t, float64(3), col["order"])

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/columns/%v", col["id"]), map[string]any{
		"title": "Icebox",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Icebox", decode(t, w)["title"])
}

func TestBoardValidationOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/boards", map[string]any{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/boards/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/boards/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/boards/999/columns", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCardFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/boards", map[string]any{"title": "Kickoff"})
	require.Equal(t, http.StatusCreated, w.Code)
	board := decode(t, w)
	boardID := board["id"].(float64)
	columns := board["columns"].([]any)
	todoID := columns[0].(map[string]any)["id"].(float64)
	doingID := columns[1].(map[string]any)["id"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/cards", map[string]any{
		"columnId":     todoID,
		"title":        "Sessão inicial",
		"menteeName":   "Ana",
		"menteeGoal":   "Assumir a liderança do time",
		"phase":        "descoberta",
		"energyMentee": 7,
		"energyMentor": 6,
		"type":         "projeto",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	card := decode(t, w)
	cardID := card["id"].(float64)
	assert.Equal(t, "projeto", card["type"])
	assert.Equal(t, todoID, card["columnId"])

	// Omitted type defaults to generic.
	w = doJSON(t, r, http.MethodPost, "/api/cards", map[string]any{
		"columnId": todoID,
		"title":    "Sessão 2",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "generic", decode(t, w)["type"])

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/cards/%v/messages", cardID), map[string]any{
		"content":    "Alinhamos o objetivo do trimestre.",
		"authorType": "mentor",
		"authorName": "Carlos",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	msg := decode(t, w)
	assert.Equal(t, "mentor", msg["authorType"])

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/cards/%v/checklist", cardID), map[string]any{
		"content": "Mapear stakeholders",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decode(t, w)
	itemID := item["id"].(float64)
	assert.Equal(t, false, item["isCompleted"])

	// Toggle wins over rename when both arrive.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/checklist/%v", itemID), map[string]any{
		"isCompleted": true,
		"content":     "ignored",
	})
	require.Equal(t, http.StatusOK, w.Code)
	toggled := decode(t, w)
	assert.Equal(t, true, toggled["isCompleted"])
	assert.Equal(t, "Mapear stakeholders", toggled["content"])

	// Move the card by columnId.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/cards/%v", cardID), map[string]any{
		"columnId": doingID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, doingID, decode(t, w)["columnId"])

	// The aggregate reflects everything.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/boards/%v", boardID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)
	cols := detail["columns"].([]any)
	doing := cols[1].(map[string]any)
	doingCards := doing["cards"].([]any)
	require.Len(t, doingCards, 1)
	moved := doingCards[0].(map[string]any)
	assert.Equal(t, cardID, moved["id"])
	assert.Len(t, moved["messages"].([]any), 1)
	assert.Len(t, moved["checklist"].([]any), 1)

	// Card detail read.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/cards/%v", cardID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	cardDetail := decode(t, w)
	assert.Len(t, cardDetail["messages"].([]any), 1)

	// Delete is permanent, the second attempt is a 404.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/checklist/%v", itemID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/checklist/%v", itemID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCardValidationOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/boards", map[string]any{"title": "B"})
	require.Equal(t, http.StatusCreated, w.Code)
	todoID := decode(t, w)["columns"].([]any)[0].(map[string]any)["id"].(float64)

	// Binding rejects out-of-range energy before the service sees it.
	w = doJSON(t, r, http.MethodPost, "/api/cards", map[string]any{
		"columnId":     todoID,
		"energyMentee": 11,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cards", map[string]any{
		"columnId": todoID,
		"type":     "epic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cards", map[string]any{"columnId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cards/999/messages", map[string]any{
		"content":    "hi",
		"authorType": "user",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/cards/%v/messages", 1), map[string]any{
		"content":    "hi",
		"authorType": "bot",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownJSONFieldsRejected(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/boards", map[string]any{"title": "B"})
	require.Equal(t, http.StatusCreated, w.Code)
	todoID := decode(t, w)["columns"].([]any)[0].(map[string]any)["id"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/cards", map[string]any{
		"columnId":   todoID,
		"bogusField": "schema drift",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/boards", map[string]any{
		"title": "B2",
		"owner": "nobody",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/ai/analyze", map[string]any{
		"menteeName":   "Ana",
		"menteeGoal":   "Assumir a liderança do time de produto",
		"energyMentee": 8,
		"energyMentor": 9,
	})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Contains(t, res["analysis"], "Sincronia alta")
	assert.NotEmpty(t, res["suggestions"])
}

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(ctx context.Context, card ai.CardSnapshot) (ai.Result, error) {
	return ai.Result{}, ai.ErrUnavailable
}

func TestAnalyzeUnavailableOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalysisHandler(failingAnalyzer{})
	r.POST("/api/ai/analyze", h.Analyze)

	w := doJSON(t, r, http.MethodPost, "/api/ai/analyze", map[string]any{"menteeName": "Ana"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "analysis unavailable", decode(t, w)["error"])
}
