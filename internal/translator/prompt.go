package translator

import "fmt"

const systemPrompt = "You are a professional translator, and the content I need translated " +
	"should prioritize terminology related to the field of computer technology."

// DefaultMaxTokens caps the completion length of a single translation.
const DefaultMaxTokens = 1000

// buildUserPrompt asks for the bare translation of text, with a pronunciation
// hint when text is a single word.
func buildUserPrompt(text, targetLang string) string {
	return fmt.Sprintf("Translate the following text to %s and just response translation text"+
		"(If it's just a single word, please also provide the english pronunciation().), "+
		"content below:\n\n%s", targetLang, text)
}
