package server

type StartOrdersPayload struct {
	Sheet string `json:"sheet"`
}
