package dto

import "encoding/json"

// ImportRequestDTO is a legacy backend export. Records are decoded one by one.
type ImportRequestDTO struct {
	Chits         []json.RawMessage `json:"chits" swaggertype:"array,object"`
	GeneratedRows []json.RawMessage `json:"generatedRows" swaggertype:"array,object"`
	Contributions []json.RawMessage `json:"contributions" swaggertype:"array,object"`
}

type ImportResponseDTO struct {
	Schemes              int `json:"chits"`
	Members              int `json:"members"`
	Rows                 int `json:"generatedRows"`
	Contributions        int `json:"contributions"`
	SkippedSchemes       int `json:"skippedChits"`
	SkippedMembers       int `json:"skippedMembers"`
	SkippedRows          int `json:"skippedGeneratedRows"`
	SkippedContributions int `json:"skippedContributions"`
}
