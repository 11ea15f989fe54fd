package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(err error) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"empty name", fmt.Errorf("%w: department name", apperrors.ErrEmptyName), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"validation", apperrors.NewValidationError("bad salary"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"duplicate", apperrors.NewDuplicateNameError("CS"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"unknown department", fmt.Errorf("wrap: %w", apperrors.NewUnknownDepartmentError("Math")), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveError(tt.err)
			require.Equal(t, tt.status, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_IncludesDepartmentDetails(t *testing.T) {
	rec := serveError(apperrors.NewUnknownDepartmentError("Math"))

	var resp struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Math", resp.Error.Details["department"])
}

func TestBindJSON_ReportsFieldErrors(t *testing.T) {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req dto.CreateStudentRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	body := `{"name":"Ada","age":12,"departmentName":"CS","attendance":101}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Age must be at least 16")
	assert.Contains(t, rec.Body.String(), "Attendance must be at most 100")
}

func TestBindJSON_MalformedBody(t *testing.T) {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req dto.CreateCourseRequest
		if BindJSON(c, &req) {
			c.Status(http.StatusNoContent)
		}
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDAndLogger(t *testing.T) {
	logs := &bytes.Buffer{}
	router := gin.New()
	router.Use(RequestID(), RequestLogger(zerolog.New(logs)))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	assert.Contains(t, logs.String(), `"requestID":"req-123"`)
	assert.Contains(t, logs.String(), `"path":"/ping"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestBindJSON_RejectsBlankNames(t *testing.T) {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req dto.CreateInstructorRequest
		if BindJSON(c, &req) {
			c.Status(http.StatusNoContent)
		}
	})

	body := `{"name":"   ","subject":"Physics","departmentName":"CS"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name must not be blank")
}
