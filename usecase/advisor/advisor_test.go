package advisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/usecase/content"
)

type memRepo struct {
	stored *domain.SiteContent
}

func (m *memRepo) Load(ctx context.Context) (*domain.SiteContent, error) {
	if m.stored == nil {
		return nil, domain.ErrContentNotFound
	}
	return m.stored.Clone(), nil
}

func (m *memRepo) Save(ctx context.Context, c *domain.SiteContent) error {
	m.stored = c.Clone()
	return nil
}

type fakeClient struct {
	reply       string
	err         error
	instruction string
	history     []domain.ChatMessage
	message     string
}

func (f *fakeClient) Generate(ctx context.Context, systemInstruction string, history []domain.ChatMessage, message string) (string, error) {
	f.instruction = systemInstruction
	f.history = history
	f.message = message
	return f.reply, f.err
}

func newAdvisor(client Client) *UseCase {
	repo := &memRepo{stored: domain.DefaultContent()}
	return New(content.New(repo, nil), client, nil)
}

func TestAdviseReturnsClientReply(t *testing.T) {
	client := &fakeClient{reply: "use compost"}
	uc := newAdvisor(client)

	history := []domain.ChatMessage{{Role: domain.ChatRoleUser, Text: "hello"}}
	reply := uc.Advise(context.Background(), "what fertilizer?", history, domain.LangAmharic, "Haramaya")

	assert.Equal(t, "use compost", reply)
	assert.Equal(t, "what fertilizer?", client.message)
	assert.Equal(t, history, client.history)
}

func TestAdviseBuildsDistrictInstruction(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	uc := newAdvisor(client)

	uc.Advise(context.Background(), "q", nil, domain.LangAfaanOromoo, "Haramaya")

	assert.Contains(t, client.instruction, "Haramayaa")
	assert.Contains(t, client.instruction, "Clay Loam")
	assert.Contains(t, client.instruction, "Ani Gorsa keessani")
	assert.Contains(t, client.instruction, "Afaan Oromoo")

	uc.Advise(context.Background(), "q", nil, domain.LangAmharic, "Haramaya")
	assert.Contains(t, client.instruction, "እኔ አማካሪዎ ነኝ")
	assert.Contains(t, client.instruction, "ሐረማያ")
}

func TestAdviseUnknownDistrictFallsBackToFirst(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	uc := newAdvisor(client)

	uc.Advise(context.Background(), "q", nil, domain.LangAmharic, "Atlantis")
	assert.Contains(t, client.instruction, "ድሬዳዋ")
}

func TestAdviseInvalidLanguageDefaultsToAmharic(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	uc := newAdvisor(client)

	uc.Advise(context.Background(), "q", nil, domain.Language("english"), "Metta")
	assert.Contains(t, client.instruction, "Always respond ONLY in Amharic")
}

func TestAdviseFallbacks(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		client Client
		lang   domain.Language
		want   string
	}{
		{"nil client amharic", nil, domain.LangAmharic, "አማካሪውን ማግኘት አልተቻለም። እባክዎ ግንኙነትዎን ያረጋግጡ።"},
		{"nil client oromo", nil, domain.LangAfaanOromoo, "Gorsaa qunnamuun hin milkoofne. Interneetii keessan mirkaneeffadhaa."},
		{"client error", &fakeClient{err: assert.AnError}, domain.LangAmharic, "አማካሪውን ማግኘት አልተቻለም። እባክዎ ግንኙነትዎን ያረጋግጡ።"},
		{"empty reply", &fakeClient{reply: ""}, domain.LangAfaanOromoo, "Gorsaa qunnamuun hin milkoofne. Interneetii keessan mirkaneeffadhaa."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newAdvisor(tc.client)
			assert.Equal(t, tc.want, uc.Advise(ctx, "q", nil, tc.lang, "Metta"))
		})
	}
}

func TestAdviseNoDistrictsConfigured(t *testing.T) {
	repo := &memRepo{stored: domain.DefaultContent()}
	repo.stored.Districts = nil
	uc := New(content.New(repo, nil), &fakeClient{reply: "ok"}, nil)

	reply := uc.Advise(context.Background(), "q", nil, domain.LangAmharic, "Metta")
	assert.Equal(t, "አማካሪውን ማግኘት አልተቻለም። እባክዎ ግንኙነትዎን ያረጋግጡ።", reply)
}

func TestAdviseNeverMutatesContent(t *testing.T) {
	repo := &memRepo{stored: domain.DefaultContent()}
	store := content.New(repo, nil)
	uc := New(store, &fakeClient{reply: "ok"}, nil)

	before := store.Current()
	uc.Advise(context.Background(), "q", nil, domain.LangAmharic, "Metta")
	require.Equal(t, before, store.Current())
}
