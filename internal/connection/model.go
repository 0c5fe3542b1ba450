package connection

import "time"

type Status string

const (
	StatusConnected Status = "CONNECTED"
	StatusPending   Status = "PENDING"
)

type Connection struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainer_id"`
	ClientID  string    `json:"client_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ConnectionWithTrainer struct {
	Connection
	TrainerName string `json:"trainer_name"`
}
