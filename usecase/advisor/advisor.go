package advisor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/usecase/content"
)

// Client generates an advisory reply from a system instruction, the prior
// conversation and the new user message.
type Client interface {
	Generate(ctx context.Context, systemInstruction string, history []domain.ChatMessage, message string) (string, error)
}

// UseCase answers farmer questions with the district soil profile folded
// into the instruction. It never fails: any client error degrades to a
// localized fallback message, so advisory trouble can never corrupt or block
// the content flow.
type UseCase struct {
	store  *content.Store
	client Client
	logger *zap.Logger
}

func New(store *content.Store, client Client, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		store:  store,
		client: client,
		logger: logger,
	}
}

// Advise returns the advisory reply for the message in the requested
// language. The district is looked up by internal name; when it does not
// resolve, the first configured district stands in.
func (uc *UseCase) Advise(ctx context.Context, message string, history []domain.ChatMessage, lang domain.Language, districtName string) string {
	if !lang.Valid() {
		lang = domain.LangAmharic
	}

	snapshot := uc.store.Current()
	district, ok := snapshot.DistrictByName(districtName)
	if !ok {
		if len(snapshot.Districts) == 0 {
			uc.logger.Warn("no districts configured for advisory")
			return fallbackMessage(lang)
		}
		district = snapshot.Districts[0]
	}

	if uc.client == nil {
		return fallbackMessage(lang)
	}

	reply, err := uc.client.Generate(ctx, systemInstruction(district, lang), history, message)
	if err != nil || reply == "" {
		uc.logger.Warn("advisor generation failed",
			zap.String("district", district.Name),
			zap.Error(err))
		return fallbackMessage(lang)
	}
	return reply
}

func systemInstruction(district domain.DistrictData, lang domain.Language) string {
	greeting := "እኔ አማካሪዎ ነኝ"
	langName := "Amharic"
	if lang == domain.LangAfaanOromoo {
		greeting = "Ani Gorsa keessani"
		langName = "Afaan Oromoo"
	}

	return fmt.Sprintf(`You are "Your Advisor", an expert soil health scientist for the %s area in Ethiopia.
User Language: %s.

Area Profile for %s:
- Soil Types: %s
- Characteristics: %s
- Common Issues: %s
- Recommended Crops: %s

Instructions:
1. Provide accurate, scientific, but easy-to-understand advice for farmers.
2. Keep responses empathetic and localized.
3. Start every response with: "%s...".
4. Always respond ONLY in %s.`,
		district.DisplayName.Get(lang),
		langName,
		district.DisplayName.Get(lang),
		district.SoilTypes.Get(lang),
		district.Characteristics.Get(lang),
		district.FrequentIssues.Get(lang),
		district.RecommendedCrops.Get(lang),
		greeting,
		langName,
	)
}

func fallbackMessage(lang domain.Language) string {
	if lang == domain.LangAfaanOromoo {
		return "Gorsaa qunnamuun hin milkoofne. Interneetii keessan mirkaneeffadhaa."
	}
	return "አማካሪውን ማግኘት አልተቻለም። እባክዎ ግንኙነትዎን ያረጋግጡ።"
}
