package models

import "time"

// StatusCheck is a diagnostic heartbeat written by clients to verify
// end-to-end connectivity.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
