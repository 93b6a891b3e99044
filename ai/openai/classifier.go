// Copyright 2026 Hatmanstack
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/hatmanstack/docpipe/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Document text beyond this many characters is truncated before
// classification. The opening of a document is almost always enough to
// identify its type, and keeping the prompt small keeps latency down.
const maxClassificationChars = 8000

// Classifier implements ai.Classifier using OpenAI-compatible chat APIs.
type Classifier struct {
	client        llms.Model
	minConfidence float64
	logger        *slog.Logger
}

// classification is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type classification struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// newClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newClassifier(config *ai.Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/classification
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		client:        client,
		minConfidence: config.MinConfidence,
		logger:        slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewClassifier creates a new document classifier using the provided configuration.
//
// Returns ai.Classifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.Classifier, error) {
	return newClassifier(config)
}

// ClassifyDocument assigns a document class to text using an LLM.
// Unknown labels and results below the configured confidence threshold
// fall back to the "file folder" catch-all class.
func (c *Classifier) ClassifyDocument(ctx context.Context, text string) (ai.Classification, error) {
	if len(text) > maxClassificationChars {
		text = text[:maxClassificationChars]
	}

	systemPrompt := buildSystemPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result classification
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			c.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return ai.Classification{}, err
		}

		if len(response.Choices) < 1 {
			c.logger.Debug("no choices returned from model")
			return ai.Classification{Label: "file folder", Confidence: 0}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			c.logger.Warn("error parsing classifier response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		c.logger.Error("failed to parse classifier response after retries", "err", lastErr)
		return ai.Classification{}, lastErr
	}

	label := strings.ToLower(strings.TrimSpace(result.Class))
	if !ai.IsValidDocumentClass(label) {
		c.logger.Warn("classifier returned unknown label", "label", result.Class)
		return ai.Classification{Label: "file folder", Confidence: result.Confidence}, nil
	}
	if result.Confidence < c.minConfidence {
		c.logger.Debug("classification below confidence threshold",
			"label", label,
			"confidence", result.Confidence,
			"threshold", c.minConfidence)
		return ai.Classification{Label: "file folder", Confidence: result.Confidence}, nil
	}

	c.logger.Debug("classified document", "label", label, "confidence", result.Confidence)
	return ai.Classification{Label: label, Confidence: result.Confidence}, nil
}
