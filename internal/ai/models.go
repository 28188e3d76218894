package ai

// DocumentInput is one document handed to the analysis model: identifying
// metadata plus the text the extraction pipeline produced for it
type DocumentInput struct {
	FileName    string `json:"file_name"`
	FilePath    string `json:"file_path"`
	FileType    string `json:"file_type"`
	TextContent string `json:"text_content"`
}
