package models

type Message struct {
	ID          string `json:"id"`
	ItemOwnerID string `json:"itemOwnerId"`
	SenderID    string `json:"senderId"`
	Content     string `json:"content"`
}

type NewMessage struct {
	ItemOwnerID string `json:"itemOwnerId"`
	SenderID    string `json:"senderId"`
	Content     string `json:"content"`
}
