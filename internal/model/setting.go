package model

// Setting is a key/value configuration row.
type Setting struct {
	ID    int64   `json:"id"`
	Key   string  `json:"key"`
	Value *string `json:"value"`
}
