package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"nutriplan/internal/energy"
	"nutriplan/internal/models"
	"nutriplan/internal/planner"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// streamMessage is one frame of a streamed plan generation
type streamMessage struct {
	Type    string             `json:"type"` // "meal", "summary" or "error"
	Meal    *models.MealResult `json:"meal,omitempty"`
	Summary *PlanResponse      `json:"summary,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// wsConn maintains a streaming connection with one client
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
	api  *PlannerAPI
}

// StreamPlan upgrades the connection and serves plan requests over it: each
// incoming PlanRequest message is answered with one "meal" frame per
// composed slot followed by a "summary" frame.
func (p *PlannerAPI) StreamPlan(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	ws := &wsConn{conn: conn, api: p}
	go ws.readLoop()
}

func (w *wsConn) readLoop() {
	defer w.conn.Close()

	w.conn.SetReadLimit(64 * 1024)
	w.conn.SetReadDeadline(time.Now().Add(120 * time.Second))

	for {
		_, message, err := w.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
		w.conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		w.handleRequest(message)
	}
}

func (w *wsConn) handleRequest(message []byte) {
	var req models.PlanRequest
	if err := json.Unmarshal(message, &req); err != nil {
		w.send(streamMessage{Type: "error", Error: "invalid plan request: " + err.Error()})
		return
	}
	if err := models.ValidatePlanRequest(&req); err != nil {
		w.send(streamMessage{Type: "error", Error: err.Error()})
		return
	}

	bmr := energy.BasalMetabolicRate(req.WeightKg, req.HeightCm, req.Age, req.Gender)
	dailyCalories := energy.DailyCalorieTarget(bmr, req.ActivityLevel, req.Goal)
	targets := energy.DeriveTargets(bmr, dailyCalories, req.WeightKg)

	plan, err := planner.GeneratePlanWithObserver(planner.NewRand(), w.api.foods, &req, dailyCalories,
		func(meal models.MealResult) {
			w.send(streamMessage{Type: "meal", Meal: &meal})
		})
	if err != nil {
		w.api.monitor.RecordFailure()
		w.send(streamMessage{Type: "error", Error: err.Error()})
		return
	}
	w.api.monitor.RecordPlan(plan)

	w.send(streamMessage{Type: "summary", Summary: &PlanResponse{
		Name:    req.Name,
		Targets: targets,
		Plan:    plan,
	}})
}

func (w *wsConn) send(msg streamMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling stream message: %v", err)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := w.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("WebSocket write failed: %v", err)
	}
}
