package models

import "time"

// EventType classifies feed events for the presentation layer
type EventType string

const (
	EventRoll         EventType = "roll"
	EventMove         EventType = "move"
	EventPassGo       EventType = "pass_go"
	EventPurchase     EventType = "purchase"
	EventRent         EventType = "rent"
	EventTax          EventType = "tax"
	EventCardDrawn    EventType = "card_drawn"
	EventJail         EventType = "jail"
	EventJailRelease  EventType = "jail_release"
	EventFreeParking  EventType = "free_parking"
	EventAuction      EventType = "auction"
	EventBid          EventType = "bid"
	EventPass         EventType = "pass"
	EventDevelopment  EventType = "development"
	EventMortgage     EventType = "mortgage"
	EventLiquidation  EventType = "liquidation"
	EventBankruptcy   EventType = "bankruptcy"
	EventPlayerExited EventType = "player_exited"
	EventTimeAlarm    EventType = "time_alarm"
	EventGameOver     EventType = "game_over"
	EventAnomaly      EventType = "anomaly"
)

// Event is one entry in the game's message feed. The feed is the engine's
// only outward-facing narration; rendering is someone else's problem.
type Event struct {
	// ID is the unique identifier for the event
	ID string `json:"id"`

	// GameID is the session the event belongs to
	GameID string `json:"game_id"`

	// Type classifies the event
	Type EventType `json:"type"`

	// PlayerID is the acting player, when there is one
	PlayerID string `json:"player_id,omitempty"`

	// Position is the board position involved, when there is one
	Position int `json:"position,omitempty"`

	// Amount is the money moved, when there is any
	Amount int `json:"amount,omitempty"`

	// Message is the human-readable narration
	Message string `json:"message"`

	// Timestamp is when the event occurred
	Timestamp time.Time `json:"timestamp"`
}
