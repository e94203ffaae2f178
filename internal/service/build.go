package service

import (
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

// ImageDataURI embeds a base64 JPEG payload in a data URI.
func ImageDataURI(payload string) string {
	return imageDataURIPrefix + payload
}

// BuildMessages returns the single user message carrying the instruction and the image.
func BuildMessages(payload string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(instructionPrompt),
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: ImageDataURI(payload),
			}),
		}),
	}
}

func (e *ExtractService) buildOpenAIReq(payload string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(e.modelName),
		Messages:    BuildMessages(payload),
		Temperature: openai.Float(0),
	}
}
