package models

// Record is a message bound for the transactions topic.
type Record struct {
	Key     []byte
	Value   []byte
	Topic   string
	Headers map[string]string
}
