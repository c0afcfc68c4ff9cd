package model

// Result is one block of generator output waiting to be announced.
type Result struct {
	Content string
	// Source names where the content was read from. Used in logs only.
	Source string
}
