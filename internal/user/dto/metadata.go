package dto

type MetadataOutput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
