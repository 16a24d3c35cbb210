package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ommivivekanandsai/EduFolio/internal/auth"
	"github.com/ommivivekanandsai/EduFolio/internal/cache"
	"github.com/ommivivekanandsai/EduFolio/internal/config"
	"github.com/ommivivekanandsai/EduFolio/internal/middleware"
	"github.com/ommivivekanandsai/EduFolio/internal/models"
	"github.com/ommivivekanandsai/EduFolio/internal/repositories"
	"github.com/ommivivekanandsai/EduFolio/internal/services"
	"github.com/ommivivekanandsai/EduFolio/internal/storage"
	"github.com/ommivivekanandsai/EduFolio/internal/validator"
)

const testSecret = "handler-test-secret"

type testEnv struct {
	server    *httptest.Server
	db        *gorm.DB
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = testSecret

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.PortfolioRecord{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	uploadDir := t.TempDir()
	storageInstance, err := storage.NewLocalStorage(storage.Config{BasePath: uploadDir, BaseURL: "/files"})
	if err != nil {
		t.Fatalf("Failed to create local storage: %v", err)
	}

	portfolioService := services.NewPortfolioService(
		repositories.NewPortfolioRepository(),
		storageInstance,
		cache.NewMemoryCache(),
		services.UploadLimits{MaxSize: 1024 * 1024},
	)

	baseHandler := NewBaseHandler(validator.New())
	portfolioHandler := NewPortfolioHandler(baseHandler, portfolioService)
	fileHandler := NewFileHandler(baseHandler, storageInstance)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.DBMiddleware(db))

	api := router.Group("/api/v1")
	portfolioHandler.RegisterRoutes(api)
	fileHandler.RegisterRoutes(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, db: db, uploadDir: uploadDir}
}

func studentToken(t *testing.T, studentID string) string {
	t.Helper()
	token, err := auth.GenerateToken(studentID, models.RoleStudent, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("ops-1", models.RoleAdmin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, env *testEnv, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, env.server.URL+path, reader)
	assert.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := env.server.Client().Do(req)
	assert.NoError(t, err)
	resBody, _ := io.ReadAll(res.Body)
	res.Body.Close()
	return res, resBody
}

func savePayload() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Jordan Example",
		"profile_image": "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("profile bytes")),
		"about":         "A short personal introduction.",
		"academics":     "BSc Computer Science, 2024.",
		"projects":      "Built a campus event planner.",
		"skills":        "go,sql",
		"certificates": []map[string]interface{}{
			{
				"name":        "AWS Cloud Practitioner",
				"file":        "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("cert bytes")),
				"file_name":   "aws.pdf",
				"description": "Foundational cloud certification.",
			},
		},
	}
}

func TestSavePortfolioEndpoint(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		env := newTestEnv(t)
		res, _ := doRequest(t, env, http.MethodPut, "/api/v1/portfolio", "", savePayload())
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("two character name is blocked before any side effect", func(t *testing.T) {
		env := newTestEnv(t)

		payload := savePayload()
		payload["name"] = "Jo"

		res, body := doRequest(t, env, http.MethodPut, "/api/v1/portfolio", studentToken(t, "s-1"), payload)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		var errRes struct {
			Error struct {
				Details map[string]string `json:"details"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(body, &errRes))
		assert.Contains(t, errRes.Error.Details, "name")

		// No upload and no document write happened
		entries, _ := os.ReadDir(env.uploadDir)
		assert.Empty(t, entries)
		var count int64
		env.db.Model(&models.PortfolioRecord{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("valid submission saves and resolves files", func(t *testing.T) {
		env := newTestEnv(t)

		res, body := doRequest(t, env, http.MethodPut, "/api/v1/portfolio", studentToken(t, "s-1"), savePayload())
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var saved struct {
			StudentID    string `json:"student_id"`
			ProfileImage string `json:"profile_image"`
			Certificates []struct {
				File string `json:"file"`
			} `json:"certificates"`
		}
		assert.NoError(t, json.Unmarshal(body, &saved))
		assert.Equal(t, "s-1", saved.StudentID)
		assert.Equal(t, "/files/portfolios/s-1/profile.jpg", saved.ProfileImage)
		assert.Equal(t, "/files/portfolios/s-1/certs/aws.pdf", saved.Certificates[0].File)

		// The uploaded objects landed where the URLs point
		_, err := os.Stat(filepath.Join(env.uploadDir, "portfolios", "s-1", "profile.jpg"))
		assert.NoError(t, err)

		// And the file route serves them back
		fileRes, fileBody := doRequest(t, env, http.MethodGet, saved.Certificates[0].File, "", nil)
		assert.Equal(t, http.StatusOK, fileRes.StatusCode)
		assert.Equal(t, "cert bytes", string(fileBody))
	})

	t.Run("record key comes from the token", func(t *testing.T) {
		env := newTestEnv(t)

		res, _ := doRequest(t, env, http.MethodPut, "/api/v1/portfolio", studentToken(t, "s-42"), savePayload())
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var count int64
		env.db.Model(&models.PortfolioRecord{}).Where("student_id = ?", "s-42").Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestGetPortfolioEndpoint(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unknown student is 404", func(t *testing.T) {
		res, _ := doRequest(t, env, http.MethodGet, "/api/v1/portfolio/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("saved portfolio is publicly readable", func(t *testing.T) {
		res, _ := doRequest(t, env, http.MethodPut, "/api/v1/portfolio", studentToken(t, "s-1"), savePayload())
		assert.Equal(t, http.StatusOK, res.StatusCode)

		res, body := doRequest(t, env, http.MethodGet, "/api/v1/portfolio/s-1", "", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var got struct {
			Name string `json:"name"`
		}
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "Jordan Example", got.Name)
	})
}

func TestDeletePortfolioEndpoint(t *testing.T) {
	env := newTestEnv(t)

	res, _ := doRequest(t, env, http.MethodPut, "/api/v1/portfolio", studentToken(t, "s-1"), savePayload())
	assert.Equal(t, http.StatusOK, res.StatusCode)

	t.Run("students cannot delete", func(t *testing.T) {
		res, _ := doRequest(t, env, http.MethodDelete, "/api/v1/admin/portfolio/s-1", studentToken(t, "s-1"), nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("admins can delete", func(t *testing.T) {
		res, _ := doRequest(t, env, http.MethodDelete, "/api/v1/admin/portfolio/s-1", adminToken(t), nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		res, _ = doRequest(t, env, http.MethodGet, "/api/v1/portfolio/s-1", "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}
