package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"meetngo/internal/presence"
	"meetngo/internal/store"
	"meetngo/pkg/auth"
)

type MeetingsAPI struct {
	DB   *store.Postgres
	Live *presence.Tracker
}

type createMeetingReq struct {
	Title string `json:"title"`
}
type joinMeetingReq struct {
	Code string `json:"code"`
}
type meetingResponse struct {
	Code         string    `json:"code"`
	Title        string    `json:"title"`
	HostID       string    `json:"hostId"`
	Participants int       `json:"participants"`
	LivePeers    int64     `json:"livePeers"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Create makes a new meeting hosted by the authenticated user
func (a *MeetingsAPI) Create(w http.ResponseWriter, r *http.Request) {
	var req createMeetingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	uid := auth.UserID(r.Context())
	m, err := a.DB.CreateMeeting(r.Context(), req.Title, uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"code": m.Code, "title": m.Title})
}

// Join records the authenticated user as a participant of the meeting
func (a *MeetingsAPI) Join(w http.ResponseWriter, r *http.Request) {
	var req joinMeetingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	m, err := a.DB.GetMeetingByCode(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, store.ErrMeetingNotFound) {
			http.Error(w, "meeting not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	uid := auth.UserID(r.Context())
	if err := a.DB.AddParticipant(r.Context(), m.ID, uid); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"joined": true})
}

// Get returns meeting metadata plus persisted and live participant counts
func (a *MeetingsAPI) Get(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		http.Error(w, "code required", http.StatusBadRequest)
		return
	}

	m, err := a.DB.GetMeetingByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, store.ErrMeetingNotFound) {
			http.Error(w, "meeting not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	participants, err := a.DB.CountParticipants(r.Context(), m.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Live count is best-effort; a presence hiccup is not worth a 500.
	live, _ := a.Live.Live(r.Context(), m.Code)

	writeJSON(w, http.StatusOK, meetingResponse{
		Code:         m.Code,
		Title:        m.Title,
		HostID:       m.HostID,
		Participants: participants,
		LivePeers:    live,
		CreatedAt:    m.CreatedAt,
	})
}
