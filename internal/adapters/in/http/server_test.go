package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	maitredhttp "maitred/internal/adapters/in/http"
	"maitred/internal/core/application/usecases/commands"
	"maitred/internal/core/application/usecases/queries"
	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/core/domain/services"
	"maitred/internal/core/domain/services/intents"
	"maitred/internal/core/ports"
	"maitred/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClassifier struct{ mock.Mock }

func (m *MockClassifier) Classify(ctx context.Context, instruction string, history []ports.HistoryEntry, utterance string) (string, error) {
	args := m.Called(ctx, instruction, history, utterance)
	return args.String(0), args.Error(1)
}

type MockTranscriber struct{ mock.Mock }

func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte, format string) (string, error) {
	args := m.Called(ctx, audio, format)
	return args.String(0), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Upsert(ctx context.Context, cart *draft.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) Get(ctx context.Context, sessionID string) (*draft.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*draft.Cart), args.Error(1)
}

func (m *MockCartRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

// fixtureCatalog serves a tiny in-memory catalog to the server under
// test; it backs both the chat turn and the reload endpoint.
type fixtureCatalog struct {
	dinners   []*catalog.Dinner
	styles    []*catalog.Style
	menuItems []*catalog.MenuItem
}

func (f *fixtureCatalog) GetAllDinners(_ context.Context) ([]*catalog.Dinner, error) {
	return f.dinners, nil
}
func (f *fixtureCatalog) GetAllStyles(_ context.Context) ([]*catalog.Style, error) {
	return f.styles, nil
}
func (f *fixtureCatalog) GetAllMenuItems(_ context.Context) ([]*catalog.MenuItem, error) {
	return f.menuItems, nil
}
func (f *fixtureCatalog) GetDinner(_ context.Context, id kernel.UUID) (*catalog.Dinner, error) {
	return nil, errs.NewObjectNotFoundError("dinner", id)
}
func (f *fixtureCatalog) GetStyle(_ context.Context, id kernel.UUID) (*catalog.Style, error) {
	return nil, errs.NewObjectNotFoundError("style", id)
}
func (f *fixtureCatalog) GetMenuItem(_ context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	return nil, errs.NewObjectNotFoundError("menu item", id)
}

func testCatalog(t *testing.T) *fixtureCatalog {
	t.Helper()

	wine, err := catalog.NewComponent("wine", 1, 3000)
	require.NoError(t, err)
	valentine, err := catalog.NewDinner(kernel.NewUUID(), "Valentine Dinner", "발렌타인 디너",
		50000, []catalog.Component{wine}, nil, true)
	require.NoError(t, err)
	deluxe, err := catalog.NewStyle(kernel.NewUUID(), "Deluxe", "디럭스", 5000, true)
	require.NoError(t, err)
	wineBottle, err := catalog.NewMenuItem(kernel.NewUUID(), "Wine", "와인", "wine", 30000, true)
	require.NoError(t, err)

	return &fixtureCatalog{
		dinners:   []*catalog.Dinner{valentine},
		styles:    []*catalog.Style{deluxe},
		menuItems: []*catalog.MenuItem{wineBottle},
	}
}

type serverFixture struct {
	echo       *echo.Echo
	classifier *MockClassifier
	cartRepo   *MockCartRepository
	source     *fixtureCatalog
	cache      *catalog.Cache
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	source := testCatalog(t)
	cache := catalog.NewCache()
	require.NoError(t, cache.Load(context.Background(), source))

	table, err := services.DefaultAliasTable()
	require.NoError(t, err)
	phrases, err := services.DefaultPhrasebook()
	require.NoError(t, err)

	classifier := new(MockClassifier)
	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Maybe()
	uow.On("Begin", mock.Anything).Return(nil).Maybe()
	uow.On("CartRepository").Return(cartRepo).Maybe()
	cartRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*draft.Cart")).Return(nil).Maybe()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()

	logger := slog.New(slog.DiscardHandler)
	processTurn := commands.NewProcessTurnCommandHandler(
		classifier,
		new(MockTranscriber),
		cache,
		table,
		phrases,
		intents.DefaultRegistry(),
		factory,
		logger,
	)
	checkout := commands.NewCheckoutCommandHandler(nil, logger)

	server := maitredhttp.NewServer(
		processTurn,
		checkout,
		queries.NewGetActiveOrdersQueryHandler(nil),
		queries.NewGetMenuQueryHandler(nil),
		cache,
		source,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return &serverFixture{
		echo:       e,
		classifier: classifier,
		cartRepo:   cartRepo,
		source:     source,
		cache:      cache,
	}
}

func (f *serverFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Chat_RunsATurn(t *testing.T) {
	fixture := newServerFixture(t)
	fixture.classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything, "발렌타인 디너 주세요").
		Return(`{"intent":"SELECT_DINNER","entities":{"menuName":"발렌타인 디너"}}`, nil).Once()

	rec := fixture.do(http.MethodPost, "/api/v1/assistant/chat", `{
		"sessionId": "session-1",
		"message": "발렌타인 디너 주세요",
		"flowState": "SELECTING_MENU",
		"selectedAddress": "서울시 강남구 테헤란로 1"
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp maitredhttp.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SELECTING_STYLE", resp.FlowState)
	assert.Equal(t, "SELECT_DINNER", resp.Intent)
	require.Len(t, resp.CurrentOrder, 1)
	assert.Equal(t, "Valentine Dinner", resp.CurrentOrder[0].DinnerName)
	fixture.classifier.AssertExpectations(t)
}

func TestServer_Chat_RoundTripsTheDraft(t *testing.T) {
	fixture := newServerFixture(t)
	fixture.classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(`{"intent":"GREETING","reply":"어서오세요!"}`, nil).Once()

	dinnerID := kernel.NewUUID()
	styleID := kernel.NewUUID()
	rec := fixture.do(http.MethodPost, "/api/v1/assistant/chat", `{
		"sessionId": "session-1",
		"message": "안녕하세요",
		"flowState": "ASKING_MORE",
		"currentOrder": [{
			"dinnerId": "`+dinnerID.String()+`",
			"dinnerName": "Valentine Dinner",
			"styleId": "`+styleID.String()+`",
			"styleName": "Deluxe",
			"styleExtra": 5000,
			"quantity": 1,
			"basePrice": 50000,
			"unitPrice": 55000,
			"itemIndex": 1
		}],
		"selectedAddress": "서울시 강남구 테헤란로 1"
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp maitredhttp.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.CurrentOrder, 1)
	assert.Equal(t, dinnerID.String(), resp.CurrentOrder[0].DinnerID)
	assert.Equal(t, 55000, resp.CurrentOrder[0].UnitPrice)
	assert.Equal(t, 55000, resp.TotalPrice)
}

func TestServer_Chat_RejectsMissingSessionID(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/assistant/chat", `{"message": "안녕하세요"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Chat_RejectsInvalidAudioEncoding(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/assistant/chat", `{
		"sessionId": "session-1",
		"audioBase64": "not base64!!!",
		"audioFormat": "wav"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Checkout_EmptyDraftIsUnprocessable(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/assistant/checkout", `{
		"sessionId": "session-1",
		"address": "서울시 강남구 테헤란로 1",
		"currentOrder": []
	}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	var resp maitredhttp.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestServer_Checkout_RejectsMissingAddress(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/assistant/checkout", `{"sessionId": "session-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ReloadCatalog(t *testing.T) {
	fixture := newServerFixture(t)

	champagne, err := catalog.NewDinner(kernel.NewUUID(), "Champagne Feast", "샴페인 축제 디너",
		70000, nil, nil, true)
	require.NoError(t, err)
	fixture.source.dinners = append(fixture.source.dinners, champagne)

	rec := fixture.do(http.MethodPost, "/api/v1/catalog/reload", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	snapshot, err := fixture.cache.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snapshot.Dinners(), 2)
}
