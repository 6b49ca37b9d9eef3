package model

import "time"

// Source is a provenance unit referenced by id from hotel record fields.
// Never mutated after load.
type Source struct {
	ID           string     `json:"id"`
	Type         SourceType `json:"type"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	Date         time.Time  `json:"date"`
	Reliability  float64    `json:"reliability"`
	Snippet      string     `json:"snippet"`
	LastVerified time.Time  `json:"lastVerified"`
}

// Chunk is a free-text semantic snippet scanned per query. Chunks are
// supporting color only; they never override canonical data.
type Chunk struct {
	ID          string     `json:"id"`
	HotelID     string     `json:"hotelId"`
	Type        SourceType `json:"type"`
	Title       string     `json:"title"`
	Date        time.Time  `json:"date"`
	Reliability float64    `json:"reliability"`
	Text        string     `json:"text"`
}

// ConflictEvent records a detected contradiction between a chunk and
// canonical data. Produced during retrieval, consumed only within the
// response.
type ConflictEvent struct {
	ChunkID         string `json:"chunkId"`
	Reason          string `json:"reason"`
	ContradictsPath string `json:"contradicts"`
}
