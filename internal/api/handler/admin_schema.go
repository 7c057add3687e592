package handler

import "time"

type accessChangeRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Reason string `json:"reason"`
}

type accessChangeResponse struct {
	Message string          `json:"message"`
	Data    accountResponse `json:"data"`
}

type listAccountsResponse struct {
	Count int               `json:"count"`
	Data  []accountResponse `json:"data"`
}

type auditEventResponse struct {
	ID           string    `json:"id"`
	SubjectID    string    `json:"subject_id"`
	SubjectEmail string    `json:"subject_email"`
	Action       string    `json:"action"`
	ActorID      string    `json:"actor_id"`
	ActorEmail   string    `json:"actor_email"`
	Reason       string    `json:"reason"`
	Timestamp    time.Time `json:"timestamp"`
}

type historyResponse struct {
	Count int                  `json:"count"`
	Data  []auditEventResponse `json:"data"`
}
