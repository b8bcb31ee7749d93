package models

import "math"

// SessionState represents the score and run flags of a drift session
type SessionState struct {
	Score       float64 // Never negative
	DriftTimer  float64 // Seconds of the current continuous drift
	DriftActive bool
	Running     bool
	Paused      bool
}

// NewSessionState returns the zeroed state used on reset
func NewSessionState() SessionState {
	return SessionState{}
}

// AddScore applies delta, flooring the result at zero
func (s *SessionState) AddScore(delta float64) {
	s.Score = math.Max(0, s.Score+delta)
}

// EndDrift clears the drift bookkeeping without awarding anything
func (s *SessionState) EndDrift() {
	s.DriftTimer = 0
	s.DriftActive = false
}

// DisplayScore returns the score as shown on the HUD
func (s *SessionState) DisplayScore() int {
	return int(math.Floor(s.Score))
}
