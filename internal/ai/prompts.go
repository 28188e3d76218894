package ai

import (
	"fmt"
	"strings"
)

// DocumentAnalysisSystemPrompt frames the model as a KYC document analyst
const DocumentAnalysisSystemPrompt = `You are an advanced document content analyzer supporting a KYC (Know Your Customer) verification workflow. You receive extracted text from customer-submitted documents and produce a structured analysis.

For each document:
1. ANALYZE the document's text content
2. IDENTIFY key information, important data points, and document structure
3. SUMMARIZE the main content and purpose of the document
4. EXTRACT actionable insights and important details

Pay special attention to:
- Main topics and themes
- Important data, numbers, or statistics
- Key names, dates, and locations
- Document purpose and type (form, report, certificate, etc.)

Respond with a comprehensive content analysis report covering every document you were given. Base your analysis strictly on the provided text; never invent content for documents whose text is empty or missing.`

// BuildDocumentAnalysisPrompt builds the user prompt for a document batch
func BuildDocumentAnalysisPrompt(docs []DocumentInput, lang string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Analyze the following %d document(s) and produce a normalized content analysis report.\n\n", len(docs)))

	for i, doc := range docs {
		sb.WriteString(fmt.Sprintf("--- Document %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("File name: %s\n", doc.FileName))
		sb.WriteString(fmt.Sprintf("File type: %s\n", doc.FileType))
		if strings.TrimSpace(doc.TextContent) == "" {
			sb.WriteString("Text content: [no text content extracted]\n\n")
			continue
		}
		sb.WriteString("Text content:\n")
		sb.WriteString(doc.TextContent)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Output: key findings, important information, and actionable insights for each document.")
	sb.WriteString(LanguageInstruction(lang))

	return sb.String()
}

// LanguageInstruction returns the language instruction for prompts
func LanguageInstruction(lang string) string {
	switch lang {
	case "ru":
		return "\n\nIMPORTANT: Respond in Russian (Русский)."
	case "es":
		return "\n\nIMPORTANT: Respond in Spanish (Español)."
	case "de":
		return "\n\nIMPORTANT: Respond in German (Deutsch)."
	default:
		return "" // English is default, no extra instruction needed
	}
}
