package openai

import (
	"fmt"
	"strings"

	"github.com/hatmanstack/docpipe/ai"
)

const classificationResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "class": {
      "type": "string"
    },
    "confidence": {
      "type": "number",
      "minimum": 0,
      "maximum": 1
    }
  },
  "required": ["class", "confidence"],
  "additionalProperties": false
}`

const classificationPromptTemplate = `Classify the given document text into exactly one document type and return the result as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The class field must match exactly one of the listed values: %s.
- Confidence is a number from 0.0 (pure guess) to 1.0 (certain). Rate based on how clearly the text matches the chosen type.
- Judge the document as a whole, not individual sentences.
- If the text fits no type well, choose "file folder" with a low confidence.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "INVOICE #2041\nBill to: Acme Corp\nAmount due: $1,200.00\nDue date: March 1"
Output:
{"class":"invoice","confidence":0.95}

Example:
Input: "Dear Dr. Reyes, Thank you for your letter of the 14th. I write to confirm our meeting..."
Output:
{"class":"letter","confidence":0.9}

Example:
Input: "Abstract. We present a novel approach to distributed consensus. 1. Introduction..."
Output:
{"class":"scientific publication","confidence":0.85}`

// buildSystemPrompt creates the system prompt with document classes embedded.
func buildSystemPrompt() string {
	return fmt.Sprintf(classificationPromptTemplate,
		classificationResponseSchema,
		strings.Join(ai.DocumentClasses, ", "))
}
