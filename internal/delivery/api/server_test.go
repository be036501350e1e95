package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inventory/config"
	apimiddleware "inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router"
	"inventory/internal/delivery/api/router/handler"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"
	"inventory/internal/infra/auth"
	"inventory/internal/infra/export"
	"inventory/internal/infra/persistence/memory"
	"inventory/internal/infra/qrcode"
	"inventory/internal/infra/storage"
	mockSvc "inventory/internal/mocks/service"
	"inventory/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret"
	testEmail    = "ada@example.com"
	testPassword = "s3cret-pass"
)

type testApp struct {
	e      *echo.Echo
	mailer *mockSvc.MockMailer

	// logs holds the slog output; echoLogs holds what echo itself prints, such as recovered panics.
	logs     *bytes.Buffer
	echoLogs *bytes.Buffer
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Total   *int64          `json:"total"`
	Records json.RawMessage `json:"records"`
	User    *entity.User    `json:"user"`
	Token   string          `json:"token"`
	Error   *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:    bcrypt.MinCost,
			TokenTTL:      time.Hour,
			ResetTokenTTL: 5 * time.Minute,
			CookieName:    "token",
		},
		Mail:    &config.MailConfig{FrontendBaseURL: "http://localhost:5173"},
		Storage: &config.StorageConfig{PublicBaseURL: "/stock/images"},
	}
	cfg.HTTP.MaxRequestBodySize = "2MB"
	cfg.HTTP.AllowOrigins = []string{"http://localhost:5173"}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	store := memory.NewStore()

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishStockEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	exporter := export.NewExcelExporter()

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     memory.NewUserRepository(store),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Mailer:       mailer,
		Config:       cfg,
		Logger:       logger,
	})
	stockUC := impl.NewStockService(impl.StockServiceParams{
		StockRepo:  memory.NewStockRepository(store),
		QRService:  qrcode.NewQRCodeService(256, "M"),
		ImageStore: storage.NewBlobImageStore(bucket, cfg.Storage.PublicBaseURL),
		Exporter:   exporter,
		Logger:     logger,
	})
	recordUC := impl.NewRecordService(impl.RecordServiceParams{
		TxManager:  memory.NewTransactionManager(store),
		RecordRepo: memory.NewRecordRepository(store),
		Publisher:  publisher,
		Exporter:   exporter,
		Logger:     logger,
	})
	staffUC := impl.NewStaffService(impl.StaffServiceParams{
		StaffRepo: memory.NewStaffRepository(store),
		Logger:    logger,
	})
	workdoneUC := impl.NewWorkdoneService(impl.WorkdoneServiceParams{
		WorkdoneRepo: memory.NewWorkdoneRepository(store),
		Logger:       logger,
	})

	authMiddleware := apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: authUC, Config: cfg})

	routerParams := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC:         authUC,
			AuthMiddleware: authMiddleware,
			Config:         cfg,
			Logger:         logger,
		}),
		StockHandler:    handler.NewStockHandler(handler.StockHandlerParams{StockUC: stockUC, Logger: logger}),
		RecordHandler:   handler.NewRecordHandler(handler.RecordHandlerParams{RecordUC: recordUC, StockUC: stockUC, Logger: logger}),
		StaffHandler:    handler.NewStaffHandler(handler.StaffHandlerParams{StaffUC: staffUC, Logger: logger}),
		WorkdoneHandler: handler.NewWorkdoneHandler(handler.WorkdoneHandlerParams{WorkdoneUC: workdoneUC, Logger: logger}),
		AuthMiddleware:  authMiddleware,
	}

	e := NewEcho(cfg, logger, routerParams)
	echoLogs := &bytes.Buffer{}
	e.Logger.SetOutput(echoLogs)

	return &testApp{
		e:        e,
		mailer:   mailer,
		logs:     logs,
		echoLogs: echoLogs,
	}
}

type requestOption func(*http.Request)

func withCookie(cookie *http.Cookie) requestOption {
	return func(req *http.Request) { req.AddCookie(cookie) }
}

func withBearer(token string) requestOption {
	return func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer "+token) }
}

func (a *testApp) do(t *testing.T, method, target string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data), rec.Body.String())

	return data
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "token" {
			return cookie
		}
	}

	return nil
}

func (a *testApp) signupAndLogin(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/auth/signup", map[string]string{
		"firstname": "Ada",
		"lastname":  "Lovelace",
		"email":     testEmail,
		"password":  testPassword,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/auth/login", map[string]string{"email": testEmail, "password": testPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return rec
}

func TestAuth_CookieTransport(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	login := app.signupAndLogin(t)
	env := decode(t, login)
	assert.True(t, env.Status)
	assert.Equal(t, "Login successful", env.Message)
	assert.Empty(t, env.Token, "token stays out of the body unless tokenInBody is set")
	require.NotNil(t, env.User)
	assert.Equal(t, testEmail, env.User.Email)
	assert.Equal(t, entity.RoleAdmin, env.User.Role)
	assert.NotContains(t, login.Body.String(), "$2a$", "password hash must not be serialized")

	cookie := sessionCookie(login)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Greater(t, cookie.MaxAge, 0)

	rec := app.do(t, http.MethodGet, "/auth/verify", nil, withCookie(cookie))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, testEmail, decode(t, rec).User.Email)

	logout := app.do(t, http.MethodGet, "/auth/logout", nil, withCookie(cookie))
	require.Equal(t, http.StatusOK, logout.Code)
	cleared := sessionCookie(logout)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	// Tokens are stateless: a copy kept after logout still verifies until it expires.
	rec = app.do(t, http.MethodGet, "/auth/verify", nil, withCookie(cookie))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_BearerTransport(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.TokenInBody = true
	app := newTestApp(t, cfg)

	env := decode(t, app.signupAndLogin(t))
	require.NotEmpty(t, env.Token)

	rec := app.do(t, http.MethodGet, "/auth/user", nil, withBearer(env.Token))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, testEmail, decode(t, rec).User.Email)

	rec = app.do(t, http.MethodGet, "/auth/users", nil, withBearer(env.Token))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	users := decodeData[[]map[string]any](t, rec)
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "passwordHash")
	assert.NotContains(t, users[0], "password")
}

func TestAuth_VerifyFailures(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	app.signupAndLogin(t)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		Email: testEmail,
		Type:  constants.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		Email: testEmail,
		Type:  constants.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		opts     []requestOption
		wantCode string
	}{
		{name: "no token", wantCode: "TOKEN_MISSING"},
		{name: "expired token", opts: []requestOption{withBearer(expired)}, wantCode: "TOKEN_EXPIRED"},
		{name: "wrong signature", opts: []requestOption{withBearer(forged)}, wantCode: "TOKEN_INVALID"},
		{name: "garbage cookie", opts: []requestOption{withCookie(&http.Cookie{Name: "token", Value: "garbage"})}, wantCode: "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodGet, "/auth/verify", nil, tt.opts...)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Nil(t, env.Error.Details)
		})
	}
}

func TestAuth_SignupAndLoginErrors(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	app.signupAndLogin(t)

	rec := app.do(t, http.MethodPost, "/auth/signup", map[string]string{
		"firstname": "Ada", "lastname": "Lovelace", "email": testEmail, "password": "other",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)

	rec = app.do(t, http.MethodPost, "/auth/signup", map[string]string{"email": "bob@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Error.Code)

	rec = app.do(t, http.MethodPost, "/auth/login", map[string]string{"email": testEmail, "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
	assert.Nil(t, sessionCookie(rec))
}

func TestAuth_ForgotAndResetPassword(t *testing.T) {
	app := newTestApp(t, newTestConfig())
	app.signupAndLogin(t)

	var sent *service.Mail
	app.mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Mail")).
		Run(func(_ context.Context, mail *service.Mail) {
			sent = mail
		}).
		Return(nil).
		Once()

	rec := app.do(t, http.MethodPost, "/auth/forgot-password", map[string]string{"email": testEmail})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, sent)
	assert.Equal(t, testEmail, sent.To)

	_, rest, found := strings.Cut(sent.Body, "http://localhost:5173/reset-password/")
	require.True(t, found, sent.Body)
	resetToken := strings.Fields(rest)[0]

	// A reset token is not a session token.
	rec = app.do(t, http.MethodGet, "/auth/verify", nil, withBearer(resetToken))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodPost, "/auth/reset-password/"+resetToken, map[string]string{"password": "new-pass"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Password updated successfully", decode(t, rec).Message)

	rec = app.do(t, http.MethodPost, "/auth/login", map[string]string{"email": testEmail, "password": testPassword})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodPost, "/auth/login", map[string]string{"email": testEmail, "password": "new-pass"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPost, "/auth/reset-password/not-a-token", map[string]string{"password": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodPost, "/auth/forgot-password", map[string]string{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResources_ProtectResources(t *testing.T) {
	t.Run("open by default", func(t *testing.T) {
		app := newTestApp(t, newTestConfig())

		rec := app.do(t, http.MethodGet, "/stock/get-stocks", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("gated when enabled", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Auth.ProtectResources = true
		cfg.Auth.TokenInBody = true
		app := newTestApp(t, cfg)

		for _, path := range []string{"/stock/get-stocks", "/record/get-records", "/staffs/get-staffs", "/workdone/get-workdone"} {
			rec := app.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}

		token := decode(t, app.signupAndLogin(t)).Token
		for _, path := range []string{"/stock/get-stocks", "/record/get-records", "/staffs/get-staffs", "/workdone/get-workdone"} {
			rec := app.do(t, http.MethodGet, path, nil, withBearer(token))
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}

		rec := app.do(t, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestStockAndRecord_Flow(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	rec := app.do(t, http.MethodPost, "/stock/add-stock", map[string]any{
		"productName":    "Paper Towels",
		"quantity":       10,
		"price":          2.5,
		"currencySymbol": "$",
		"month":          "May",
		"day":            "4",
		"year":           "2024",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	stock := decodeData[entity.Stock](t, rec)
	assert.Equal(t, 10, stock.QuantityLeft)

	rec = app.do(t, http.MethodPost, "/record/add-record", map[string]any{
		"productName":      "Paper Towels",
		"quantity":         3,
		"pricePerQuantity": 2.5,
		"customer":         "Front desk",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	record := decodeData[entity.Record](t, rec)
	assert.InDelta(t, 7.5, record.TotalAmount, 1e-9)
	assert.Equal(t, stock.ID, record.StockID)

	rec = app.do(t, http.MethodGet, "/stock/preview-stock/"+stock.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, decodeData[entity.Stock](t, rec).QuantityLeft)

	// Editing the stock never moves quantityLeft.
	rec = app.do(t, http.MethodPut, "/stock/edit-stock/"+stock.ID.String(), map[string]any{"quantity": 20, "quantityLeft": 100})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	edited := decodeData[entity.Stock](t, rec)
	assert.Equal(t, 20, edited.Quantity)
	assert.Equal(t, 7, edited.QuantityLeft)

	rec = app.do(t, http.MethodPost, "/record/add-record", map[string]any{"productName": "Unknown", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "STOCK_NOT_FOUND", decode(t, rec).Error.Code)

	rec = app.do(t, http.MethodPost, "/record/add-record", map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Status)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	rec = app.do(t, http.MethodGet, "/record/total-records", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, decode(t, rec).Total)
	assert.EqualValues(t, 1, *decode(t, rec).Total)

	rec = app.do(t, http.MethodGet, "/record/records/Paper%20Towels", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var records []entity.Record
	require.NoError(t, json.Unmarshal(decode(t, rec).Records, &records))
	assert.Len(t, records, 1)

	rec = app.do(t, http.MethodGet, "/record/search-stocks?query=paper", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Stock](t, rec), 1)

	rec = app.do(t, http.MethodGet, "/stock/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "stocks.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())

	rec = app.do(t, http.MethodDelete, "/record/delete-record/"+record.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = app.do(t, http.MethodGet, "/record/preview-record/"+record.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/stock/preview-stock/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
}

func TestStock_LabelAndImage(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	rec := app.do(t, http.MethodPost, "/stock/add-stock", map[string]any{"productName": "Soap", "quantity": 4, "price": 1})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	stock := decodeData[entity.Stock](t, rec)

	rec = app.do(t, http.MethodGet, "/stock/qr/"+stock.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	png := rec.Body.Bytes()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("image", "label.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/stock/upload-image", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	upload := httptest.NewRecorder()
	app.e.ServeHTTP(upload, req)
	require.Equal(t, http.StatusCreated, upload.Code, upload.Body.String())

	imageURL := decodeData[map[string]string](t, upload)["imageUrl"]
	require.True(t, strings.HasPrefix(imageURL, "/stock/images/"), imageURL)
	assert.True(t, strings.HasSuffix(imageURL, ".png"), imageURL)

	rec = app.do(t, http.MethodGet, imageURL, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec = app.do(t, http.MethodGet, "/stock/images/missing.png", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodPost, "/stock/upload-image", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStock_ScanLabel(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	rec := app.do(t, http.MethodPost, "/stock/add-stock", map[string]any{"productName": "Soap", "quantity": 4, "price": 1})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	stock := decodeData[entity.Stock](t, rec)

	label, err := qrcode.EncodeStockLabel(&stock)
	require.NoError(t, err)

	rec = app.do(t, http.MethodPost, "/stock/scan-label", map[string]string{"label": label})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	scanned := decodeData[entity.Stock](t, rec)
	assert.Equal(t, stock.ID, scanned.ID)
	assert.Equal(t, 4, scanned.QuantityLeft)

	rec = app.do(t, http.MethodPost, "/stock/scan-label", map[string]string{"label": "not a label"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)

	missing := stock
	missing.ID = uuid.New()
	label, err = qrcode.EncodeStockLabel(&missing)
	require.NoError(t, err)
	rec = app.do(t, http.MethodPost, "/stock/scan-label", map[string]string{"label": label})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccessLog_OneLinePerRequest(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/stock/get-stocks", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-access")
	rec := httptest.NewRecorder()
	app.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodGet, "/stock/preview-stock/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var lines []string
	var levels []any
	for _, raw := range bytes.Split(bytes.TrimSpace(app.logs.Bytes()), []byte("\n")) {
		var line map[string]any
		require.NoError(t, json.Unmarshal(raw, &line), string(raw))
		if _, ok := line["request"]; ok {
			lines = append(lines, string(raw))
			levels = append(levels, line["level"])
		}
	}

	require.Len(t, lines, 2, app.logs.String())
	assert.Contains(t, lines[0], "/stock/get-stocks")
	assert.Contains(t, lines[0], "req-access")
	assert.Equal(t, []any{"INFO", "WARN"}, levels)
	assert.NotContains(t, app.echoLogs.String(), "PANIC RECOVER")
}

func TestStaff_WorkDoneFlow(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	rec := app.do(t, http.MethodPost, "/staffs/add-staff", map[string]any{
		"staffName": "Grace",
		"email":     "grace@example.com",
		"position":  "Cleaner",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	staff := decodeData[entity.Staff](t, rec)
	staffPath := staff.ID.String()

	for _, work := range []string{"mop floor", "restock shelves"} {
		rec = app.do(t, http.MethodPut, "/staffs/add-work-done/"+staffPath, map[string]any{"workdone": work, "charge": 15})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	staff = decodeData[entity.Staff](t, rec)
	require.Len(t, staff.WorkDone, 2)
	first, second := staff.WorkDone[0], staff.WorkDone[1]

	rec = app.do(t, http.MethodPatch, "/staffs/edit-work-done/"+staffPath+"/"+second.ID.String(), map[string]any{"charge": 40})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	staff = decodeData[entity.Staff](t, rec)
	assert.InDelta(t, 40, staff.WorkDone[1].Charge, 1e-9)
	assert.Equal(t, "restock shelves", staff.WorkDone[1].WorkDone)

	rec = app.do(t, http.MethodDelete, "/staffs/delete-work-done/"+staffPath+"/"+first.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	staff = decodeData[entity.Staff](t, rec)
	require.Len(t, staff.WorkDone, 1)
	assert.Equal(t, second.ID, staff.WorkDone[0].ID)

	rec = app.do(t, http.MethodDelete, "/staffs/delete-workdone/"+staffPath+"/"+first.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "WORK_DONE_NOT_FOUND", decode(t, rec).Error.Code)

	rec = app.do(t, http.MethodDelete, "/staffs/delete-workdone/"+staffPath+"/"+second.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[entity.Staff](t, rec).WorkDone)

	rec = app.do(t, http.MethodDelete, "/staffs/delete-work-done/"+staffPath+"/bad-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPatch, "/staffs/edit-staff/"+staffPath, map[string]any{"position": "Supervisor"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Supervisor", decodeData[entity.Staff](t, rec).Position)

	rec = app.do(t, http.MethodDelete, "/staffs/delete-staff/"+staffPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = app.do(t, http.MethodPut, "/staffs/add-work-done/"+staffPath, map[string]any{"workdone": "late", "charge": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "STAFF_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestWorkdone_Flow(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	rec := app.do(t, http.MethodPost, "/workdone/add-workdone", map[string]any{
		"workDone": "inventory count",
		"charge":   "50",
		"month":    "June",
		"day":      "3",
		"year":     "2024",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	workdone := decodeData[entity.Workdone](t, rec)

	rec = app.do(t, http.MethodPost, "/workdone/add-workdone", map[string]any{"workDone": "no charge"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPatch, "/workdone/edit-workdone/"+workdone.ID.String(), map[string]any{"charge": "75"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "75", decodeData[entity.Workdone](t, rec).Charge)

	rec = app.do(t, http.MethodGet, "/workdone/get-workdone", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Workdone](t, rec), 1)

	rec = app.do(t, http.MethodDelete, "/workdone/delete-workdone/"+workdone.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = app.do(t, http.MethodGet, "/workdone/preview-workdone/"+workdone.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEnvelope_CarriesRequestID(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/stock/total-stocks", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	app.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Status)
	assert.Equal(t, "req-123", env.Meta.RequestID)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	require.NotNil(t, env.Total)
	assert.EqualValues(t, 0, *env.Total)

	rec = app.do(t, http.MethodGet, "/no-such-route", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env = decode(t, rec)
	assert.False(t, env.Status)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
}
