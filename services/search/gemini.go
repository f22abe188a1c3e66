// File: services/search/gemini.go
package search

import (
	"context"
	"fmt"
	"strings"

	"tripplanner/config"
	"tripplanner/models"
	"tripplanner/utils"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// GeminiSearchService answers queries with the Gemini API. Prices in the
// answer are requested in rupees so the downstream scrape can find them.
type GeminiSearchService struct {
	store Store
}

func NewGeminiSearchService(store Store) *GeminiSearchService {
	return &GeminiSearchService{store: store}
}

func (s *GeminiSearchService) Lookup(ctx context.Context, sessionID, query string) (string, error) {
	apiKey := config.AppConfig.GeminiAPIKey
	if apiKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("creating gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	prompt := fmt.Sprintf(
		"You are a travel information assistant for trips within India. "+
			"Answer the following query concisely and always quote prices in rupees "+
			"with the ₹ symbol (use ₹X - ₹Y for ranges).\n\nQuery: %s", query)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini query failed: %w", err)
	}

	result := collectText(resp)
	if result == "" {
		return "", fmt.Errorf("gemini returned an empty answer")
	}

	if sessionID != "" && s.store != nil {
		if uErr := s.store.Update(ctx, sessionID, func(st *models.SessionState) error {
			st.ConversationResult = result
			return nil
		}); uErr != nil {
			utils.GetLogger().Warn("storing search result failed",
				zap.String("session_id", sessionID), zap.Error(uErr))
		}
	}
	return result, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
